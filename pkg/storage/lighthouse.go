package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/ipfs/go-cid"
	"go.uber.org/zap"
)

// LighthouseClient talks to the Lighthouse storage network: uploads go to the
// node endpoint (authorized by API key), reads go through the public gateway.
type LighthouseClient struct {
	// NodeURL is the upload node endpoint, e.g. https://node.lighthouse.storage.
	NodeURL string
	// GatewayURL is the read gateway base, e.g. https://gateway.lighthouse.storage/ipfs/.
	GatewayURL string
	// APIKey authorizes uploads.
	APIKey string

	httpClient *http.Client
}

// NewLighthouseClient constructs a Lighthouse client. Timeouts are enforced
// per call through the supplied context; the underlying HTTP client carries a
// generous ceiling as a backstop.
func NewLighthouseClient(nodeURL, gatewayURL, apiKey string) *LighthouseClient {
	return &LighthouseClient{
		NodeURL:    nodeURL,
		GatewayURL: gatewayURL,
		APIKey:     apiKey,
		httpClient: &http.Client{Timeout: 2 * time.Minute},
	}
}

// lighthouseAddResponse mirrors the JSON returned by the node's add endpoint.
type lighthouseAddResponse struct {
	Name string `json:"Name"`
	Hash string `json:"Hash"`
	Size string `json:"Size"`
}

// UploadJSON serializes data to JSON and uploads it to Lighthouse as a single
// file. Returns the CID assigned by the network. A response without a Hash is
// an error: the pipeline must never proceed without a content identifier.
func (c *LighthouseClient) UploadJSON(ctx context.Context, data any) (string, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return c.UploadText(ctx, raw)
}

// UploadText uploads raw bytes to the Lighthouse node as a multipart file and
// returns the resulting CID. The returned hash is checked to be a parsable
// CID before it is handed to callers.
func (c *LighthouseClient) UploadText(ctx context.Context, data []byte) (string, error) {
	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", "blob")
	if err != nil {
		return "", err
	}
	if _, err := part.Write(data); err != nil {
		return "", err
	}
	if err := writer.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.NodeURL+"/api/v0/add", body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.APIKey)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		zap.L().Error("lighthouse upload failed", zap.Error(err))
		return "", fmt.Errorf("lighthouse upload failed: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			zap.L().Error("failed to close lighthouse response", zap.Error(err))
		}
	}()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("lighthouse upload failed: status %d: %s", resp.StatusCode, raw)
	}

	var addResp lighthouseAddResponse
	if err := json.NewDecoder(resp.Body).Decode(&addResp); err != nil {
		return "", fmt.Errorf("lighthouse upload failed: %w", err)
	}
	if addResp.Hash == "" {
		return "", errors.New("lighthouse upload failed, CID not received")
	}
	if _, err := cid.Parse(addResp.Hash); err != nil {
		return "", fmt.Errorf("lighthouse returned invalid CID %q: %w", addResp.Hash, err)
	}

	zap.L().Debug("uploaded to lighthouse", zap.String("cid", addResp.Hash))
	return addResp.Hash, nil
}

// ReadFile fetches a blob from the Lighthouse gateway by CID. The id is
// normalized with formatHash, so both bare CIDs and filecoin:// URIs work.
func (c *LighthouseClient) ReadFile(ctx context.Context, id string) ([]byte, error) {
	cID := formatHash(id)
	zap.L().Debug("getting lighthouse file", zap.String("cid", cID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.GatewayURL+cID, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			zap.L().Error("failed to close lighthouse response", zap.Error(err))
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("lighthouse gateway returned status %d for %s", resp.StatusCode, cID)
	}
	return io.ReadAll(resp.Body)
}
