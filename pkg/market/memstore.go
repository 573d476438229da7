package market

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/debugger-labs/debugger-go/pkg/model"
)

// MemStore is an in-memory stand-in for the private store, metadata store and
// metadata fetcher, used by the -dev server mode so the pipeline runs without
// Lighthouse, S3 or network access.
type MemStore struct {
	mu      sync.Mutex
	seq     int
	objects map[string][]byte
}

// NewMemStore returns an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{objects: make(map[string][]byte)}
}

// UploadJSON stores v and returns a synthetic CID.
func (m *MemStore) UploadJSON(_ context.Context, v any) (string, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	cid := fmt.Sprintf("devcid-%d", m.seq)
	m.objects[cid] = raw
	return cid, nil
}

// PutJSON stores v under key and returns a mem:// URL for it.
func (m *MemStore) PutJSON(_ context.Context, key string, v any) (string, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[key] = raw
	return "mem://" + key, nil
}

// Fetch resolves URLs previously issued by PutJSON.
func (m *MemStore) Fetch(_ context.Context, url string) (*model.PublicMetadata, error) {
	key := strings.TrimPrefix(url, "mem://")
	m.mu.Lock()
	raw, ok := m.objects[key]
	m.mu.Unlock()
	if !ok {
		return nil, fmt.Errorf("no object stored at %q", url)
	}
	var meta model.PublicMetadata
	if err := json.Unmarshal(raw, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}
