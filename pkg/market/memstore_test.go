package market

import (
	"context"
	"testing"

	"github.com/debugger-labs/debugger-go/pkg/model"
)

func TestMemStore_RoundTrip(t *testing.T) {
	m := NewMemStore()
	ctx := context.Background()

	cid, err := m.UploadJSON(ctx, model.PrivatePayload{Code: "x"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cid != "devcid-1" {
		t.Fatalf("got cid %q", cid)
	}

	url, err := m.PutJSON(ctx, "k.json", model.PublicMetadata{Name: "n", PrivateDataCID: cid})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if url != "mem://k.json" {
		t.Fatalf("got url %q", url)
	}

	meta, err := m.Fetch(ctx, url)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if meta.Name != "n" || meta.PrivateDataCID != "devcid-1" {
		t.Fatalf("unexpected metadata: %+v", meta)
	}
}

func TestMemStore_FetchUnknown(t *testing.T) {
	m := NewMemStore()
	if _, err := m.Fetch(context.Background(), "mem://missing"); err == nil {
		t.Fatal("expected error")
	}
}

func TestMemStore_PipelineEndToEnd(t *testing.T) {
	mem := NewMemStore()
	analyzer := &fakeAnalyzer{analysis: goodAnalysis()}
	ledger := &fakeLedger{}
	c := New(analyzer, mem, mem, ledger, mem)

	res, err := c.Submit(context.Background(), goodSubmission())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	meta, err := mem.Fetch(context.Background(), res.TokenURI)
	if err != nil {
		t.Fatalf("token URI does not resolve: %v", err)
	}
	if meta.PrivateDataCID != ledger.privateCid {
		t.Fatalf("metadata cid %q, ledger cid %q", meta.PrivateDataCID, ledger.privateCid)
	}
}
