package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ipfs/go-cid"
	"github.com/ipfs/kubo/client/rpc"
	"go.uber.org/zap"
)

// IPFSClient stores private payloads on an IPFS node via the Kubo HTTP API.
// It is the development-mode alternative to Lighthouse: same CID addressing,
// no API key, no permanence guarantee.
type IPFSClient struct {
	api *rpc.HttpApi
}

// NewIPFSClient constructs a Kubo HTTP API client pointed at url.
// The client uses a short HTTP timeout suitable for small JSON blobs.
func NewIPFSClient(url string) (*IPFSClient, error) {
	httpClient := http.Client{
		Timeout: 5 * time.Second,
	}
	api, err := rpc.NewURLApiWithClient(url, &httpClient)
	if err != nil {
		zap.L().Error("connection failed to IPFS", zap.String("url", url), zap.Error(err))
		return nil, err
	}
	return &IPFSClient{api: api}, nil
}

// UploadJSON serializes data to JSON and adds it to IPFS, returning the CID.
func (c *IPFSClient) UploadJSON(ctx context.Context, data any) (string, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		zap.L().Error("error marshaling data to json", zap.Error(err))
		return "", fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if c.api == nil {
		return "", fmt.Errorf("ipfs client not configured")
	}

	req := c.api.Request("add")
	req.Body(bytes.NewReader(raw))

	resp, err := req.Send(ctx)
	if err != nil {
		zap.L().Error("error uploading to ipfs", zap.Error(err))
		return "", err
	}
	defer func(resp *rpc.Response) {
		if err := resp.Close(); err != nil {
			zap.L().Error("error closing ipfs response", zap.Error(err))
		}
	}(resp)

	if resp.Error != nil {
		zap.L().Error("ipfs add command returned error", zap.Error(resp.Error))
		return "", resp.Error
	}

	body, err := io.ReadAll(resp.Output)
	if err != nil {
		zap.L().Error("error reading ipfs add response", zap.Error(err))
		return "", err
	}

	var addResp struct {
		Hash string `json:"Hash"`
	}
	if err := json.Unmarshal(body, &addResp); err != nil {
		zap.L().Error("error unmarshaling ipfs add response", zap.Error(err))
		return "", err
	}
	if addResp.Hash == "" {
		return "", fmt.Errorf("ipfs add returned no hash")
	}

	zap.L().Debug("uploaded to ipfs", zap.String("hash", addResp.Hash))
	return addResp.Hash, nil
}

// ReadFile fetches content by CID from IPFS using `ipfs cat`. The supplied id
// is normalized via formatHash and parsed as a CID before the request.
func (c *IPFSClient) ReadFile(ctx context.Context, id string) ([]byte, error) {
	if c.api == nil {
		return nil, fmt.Errorf("ipfs client not configured")
	}

	hash := formatHash(id)
	cID, err := cid.Parse(hash)
	if err != nil {
		return nil, fmt.Errorf("invalid CID %q: %w", hash, err)
	}

	req := c.api.Request("cat", cID.String())
	resp, err := req.Send(ctx)
	if err != nil {
		zap.L().Error("error executing the cat command in ipfs", zap.String("cid", hash), zap.Error(err))
		return nil, err
	}
	defer func(resp *rpc.Response) {
		if err := resp.Close(); err != nil {
			zap.L().Error("error closing response in ipfs", zap.String("cid", hash), zap.Error(err))
		}
	}(resp)

	if resp.Error != nil {
		return nil, resp.Error
	}

	content, err := io.ReadAll(resp.Output)
	if err != nil {
		zap.L().Error("error reading ipfs content", zap.String("cid", hash), zap.Error(err))
		return nil, err
	}
	return content, nil
}
