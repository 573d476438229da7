// The debugger-server command runs the dataset marketplace backend: it wires
// the AI analyzer, the private and public stores and the on-chain ledger into
// the market core and serves the HTTP API.
//
// Usage:
//
//	debugger-server -config config.json
//	debugger-server -dev
//
// In -dev mode the server runs against an in-memory ledger and stores, so no
// RPC endpoint, Lighthouse key or S3 credentials are needed.
package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/debugger-labs/debugger-go/pkg/ai"
	"github.com/debugger-labs/debugger-go/pkg/api"
	"github.com/debugger-labs/debugger-go/pkg/blockchain"
	"github.com/debugger-labs/debugger-go/pkg/chainsim"
	"github.com/debugger-labs/debugger-go/pkg/config"
	"github.com/debugger-labs/debugger-go/pkg/market"
	"github.com/debugger-labs/debugger-go/pkg/objectstore"
	"github.com/debugger-labs/debugger-go/pkg/storage"
)

func main() {
	configPath := flag.String("config", "", "path to JSON config file")
	dev := flag.Bool("dev", false, "run with in-memory ledger and stores")
	flag.Parse()

	initLogger(false)

	cfg, err := config.LoadFile(*configPath)
	if err != nil {
		zap.L().Fatal("failed to load config", zap.Error(err))
	}
	cfg.FromEnv()
	if *dev {
		// The dev ledger and stores need no endpoints.
		if cfg.RPCAddr == "" {
			cfg.RPCAddr = "dev"
		}
		if cfg.MarketplaceAddr == "" {
			cfg.MarketplaceAddr = "dev"
		}
	}
	if err := cfg.Validate(); err != nil {
		zap.L().Fatal("invalid config", zap.Error(err))
	}
	if cfg.Debug {
		initLogger(true)
	}
	timeouts := cfg.Timeouts.WithDefaults()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	core, cleanup, err := buildCore(ctx, cfg, timeouts, *dev)
	if err != nil {
		zap.L().Fatal("failed to initialize", zap.Error(err))
	}
	defer cleanup()

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           api.NewServer(core),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zap.L().Info("http server listening", zap.String("addr", cfg.HTTPAddr), zap.Bool("dev", *dev))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zap.L().Error("http server stopped", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	zap.L().Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zap.L().Error("shutdown did not complete cleanly", zap.Error(err))
	}
}

// buildCore assembles the pipeline backends for either mode and returns the
// market core plus a cleanup function for held connections.
func buildCore(ctx context.Context, cfg *config.Config, timeouts config.Timeouts, dev bool) (*market.Core, func(), error) {
	analyzer := ai.NewGroqAnalyzer(cfg.Groq)
	cleanup := func() {}

	var (
		private  market.PrivateStore
		metadata market.MetadataStore
		ledger   market.Ledger
		fetcher  market.MetadataFetcher
	)

	if dev {
		mem := market.NewMemStore()
		owner := "0x0000000000000000000000000000000000000001"
		if cfg.PrivateKey != "" {
			if addr, _, err := blockchain.ParsePrivateKeyECDSA(cfg.PrivateKey); err == nil {
				owner = addr.Hex()
			}
		}
		private, metadata, fetcher = mem, mem, mem
		ledger = chainsim.New(owner, owner)
	} else {
		if cfg.IpfsURL != "" {
			ipfs, err := storage.NewIPFSClient(cfg.IpfsURL)
			if err != nil {
				return nil, nil, err
			}
			private = ipfs
		} else {
			private = storage.NewLighthouseClient(cfg.LighthouseNodeURL, cfg.LighthouseGatewayURL, cfg.LighthouseAPIKey)
		}

		store, err := objectstore.New(ctx, cfg.S3)
		if err != nil {
			return nil, nil, err
		}
		if err := store.EnsureBucket(ctx); err != nil {
			return nil, nil, err
		}
		metadata = store

		evm, err := blockchain.InitEvm(cfg.RPCAddr, cfg.MarketplaceAddr, cfg.PrivateKey)
		if err != nil {
			return nil, nil, err
		}
		cleanup = evm.Close
		ledger = evm

		fetcher = market.NewHTTPFetcher(timeouts.MetadataFetch)
	}

	core := market.New(analyzer, private, metadata, ledger, fetcher)
	core.SetTimeouts(market.Timeouts{
		Analyze: timeouts.Analyze,
		Upload:  timeouts.StorageUpload,
		Chain:   timeouts.ChainSubmit + timeouts.ReceiptWait,
		Read:    timeouts.ChainRead,
	})
	return core, cleanup, nil
}

// initLogger installs the global zap logger. Debug mode switches to the
// human-readable development encoder at debug level.
func initLogger(debug bool) {
	var logger *zap.Logger
	var err error
	if debug {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		os.Exit(1)
	}
	zap.ReplaceGlobals(logger)
}
