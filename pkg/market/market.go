package market

import (
	"context"
	"fmt"
	"math/big"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/debugger-labs/debugger-go/pkg/blockchain"
	"github.com/debugger-labs/debugger-go/pkg/model"
)

// fetchParallelism bounds concurrent metadata fetches on the read path.
const fetchParallelism = 8

// defaultUniqueness is assigned to new listings; the analyzer scores
// complexity only, and uniqueness is adjusted later through DAO validation.
const defaultUniqueness = 50

// Analyzer produces a structured analysis of one debugging case.
type Analyzer interface {
	Analyze(ctx context.Context, code, errText, solution string) (*model.Analysis, error)
}

// PrivateStore persists the paid payload in a content-addressed store and
// returns its CID.
type PrivateStore interface {
	UploadJSON(ctx context.Context, v any) (string, error)
}

// MetadataStore persists the public preview document under a key and returns
// its public URL.
type MetadataStore interface {
	PutJSON(ctx context.Context, key string, v any) (string, error)
}

// Ledger is the on-chain (or simulated) listing registry.
type Ledger interface {
	ListDataset(ctx context.Context, seller string, price *big.Int, tokenURI, privateCid string, complexity, uniqueness uint8, category string) (uint64, error)
	FetchListings(ctx context.Context) ([]model.Listing, error)
}

// MetadataFetcher dereferences a token URI into its public metadata.
type MetadataFetcher interface {
	Fetch(ctx context.Context, url string) (*model.PublicMetadata, error)
}

// Timeouts bounds the pipeline stages. A zero value means the stage runs
// under the caller's context alone.
type Timeouts struct {
	Analyze time.Duration // AI completion round-trip
	Upload  time.Duration // each storage write
	Chain   time.Duration // listing tx submit + confirmation
	Read    time.Duration // ledger scan on the read path
}

// Core wires the pipeline stages together. All collaborators are required.
type Core struct {
	analyzer Analyzer
	private  PrivateStore
	metadata MetadataStore
	ledger   Ledger
	fetcher  MetadataFetcher

	timeouts Timeouts
	now      func() time.Time
}

// New builds a Core over the given backends.
func New(analyzer Analyzer, private PrivateStore, metadata MetadataStore, ledger Ledger, fetcher MetadataFetcher) *Core {
	return &Core{
		analyzer: analyzer,
		private:  private,
		metadata: metadata,
		ledger:   ledger,
		fetcher:  fetcher,
		now:      time.Now,
	}
}

// SetTimeouts installs per-stage deadlines. Call before serving traffic.
func (c *Core) SetTimeouts(t Timeouts) {
	c.timeouts = t
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, d)
}

// SubmitResult is what a successful submission hands back to the client.
type SubmitResult struct {
	TokenID  uint64
	TokenURI string
}

// Submit runs the full listing pipeline for one submission. Validation
// happens before any side effect; after that the steps run strictly in
// sequence and the first failure aborts the rest.
func (c *Core) Submit(ctx context.Context, sub model.Submission) (*SubmitResult, error) {
	if err := sub.Validate(); err != nil {
		return nil, err
	}

	actx, cancel := withTimeout(ctx, c.timeouts.Analyze)
	analysis, err := c.analyzer.Analyze(actx, sub.Code, sub.Error, sub.Solution)
	cancel()
	if err != nil {
		return nil, fmt.Errorf("analysis failed: %w", err)
	}

	payload := model.PrivatePayload{
		Code:         sub.Code,
		Error:        sub.Error,
		Solution:     sub.Solution,
		FullAnalysis: analysis.FullAnalysis,
	}
	uctx, cancel := withTimeout(ctx, c.timeouts.Upload)
	cid, err := c.private.UploadJSON(uctx, payload)
	cancel()
	if err != nil {
		return nil, fmt.Errorf("private payload upload failed: %w", err)
	}
	zap.L().Info("private payload stored", zap.String("cid", cid))

	meta := model.PublicMetadata{
		Name:           analysis.Title,
		Description:    analysis.Summary,
		Attributes:     analysis.Attributes,
		PrivateDataCID: cid,
	}
	key := metadataKey(c.now(), sub.DeveloperAddress)
	mctx, cancel := withTimeout(ctx, c.timeouts.Upload)
	tokenURI, err := c.metadata.PutJSON(mctx, key, meta)
	cancel()
	if err != nil {
		// The private payload is already stored; its CID is simply never
		// referenced. Surfaced in the error so operators can reap it.
		return nil, fmt.Errorf("public metadata upload failed (orphaned private cid %s): %w", cid, err)
	}

	price, err := blockchain.FilToAttoFil(sub.Price)
	if err != nil {
		return nil, fmt.Errorf("price conversion failed: %w", err)
	}

	lctx, cancel := withTimeout(ctx, c.timeouts.Chain)
	tokenID, err := c.ledger.ListDataset(lctx, sub.DeveloperAddress, price,
		tokenURI, cid, uint8(analysis.ComplexityScore), defaultUniqueness, category(analysis))
	cancel()
	if err != nil {
		return nil, fmt.Errorf("on-chain listing failed (orphaned uploads: cid %s, uri %s): %w", cid, tokenURI, err)
	}

	zap.L().Info("dataset listed",
		zap.Uint64("tokenId", tokenID),
		zap.String("tokenURI", tokenURI),
		zap.String("seller", sub.DeveloperAddress))
	return &SubmitResult{TokenID: tokenID, TokenURI: tokenURI}, nil
}

// metadataKey builds the object-store key for a submission's public metadata:
// {unix-millis}-{6 hex chars of the developer address}-metadata.json.
func metadataKey(t time.Time, developerAddress string) string {
	addr := strings.TrimPrefix(strings.TrimPrefix(developerAddress, "0x"), "0X")
	if len(addr) > 6 {
		addr = addr[:6]
	}
	return fmt.Sprintf("%d-%s-metadata.json", t.UnixMilli(), addr)
}

// category derives the listing category from the analyzer's Language
// attribute, falling back to "General".
func category(a *model.Analysis) string {
	for _, attr := range a.Attributes {
		if strings.EqualFold(attr.TraitType, "Language") && attr.Value != "" {
			return attr.Value
		}
	}
	return "General"
}

// ListAll returns every active listing enriched with its public metadata,
// newest first. Metadata is fetched with bounded parallelism; listings whose
// token URI cannot be dereferenced are logged and skipped.
func (c *Core) ListAll(ctx context.Context) ([]model.EnrichedListing, error) {
	rctx, cancel := withTimeout(ctx, c.timeouts.Read)
	listings, err := c.ledger.FetchListings(rctx)
	cancel()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch listings: %w", err)
	}

	enriched := make([]*model.EnrichedListing, len(listings))

	var g errgroup.Group
	g.SetLimit(fetchParallelism)
	for i, l := range listings {
		g.Go(func() error {
			meta, err := c.fetcher.Fetch(ctx, l.TokenURI)
			if err != nil {
				zap.L().Warn("skipping listing with unreachable metadata",
					zap.Uint64("tokenId", l.TokenID),
					zap.String("tokenURI", l.TokenURI),
					zap.Error(err))
				return nil
			}
			enriched[i] = &model.EnrichedListing{
				TokenID:        l.TokenID,
				Seller:         l.Seller,
				Price:          blockchain.AttoFilToFil(l.Price).String(),
				TokenURI:       l.TokenURI,
				Name:           meta.Name,
				Description:    meta.Description,
				Attributes:     meta.Attributes,
				PrivateDataCID: meta.PrivateDataCID,
			}
			return nil
		})
	}
	_ = g.Wait()

	// The ledger scan is oldest-first; the marketplace shows newest first.
	out := make([]model.EnrichedListing, 0, len(enriched))
	for i := len(enriched) - 1; i >= 0; i-- {
		if enriched[i] != nil {
			out = append(out, *enriched[i])
		}
	}
	return out, nil
}
