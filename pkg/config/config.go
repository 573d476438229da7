// Package config defines the runtime configuration for the marketplace
// backend, including chain network settings, RPC endpoint, storage backends,
// AI provider, object store credentials, debug mode, and operation timeouts.
// It also provides validation and defaulting helpers.
package config

import (
	"encoding/json"
	"errors"
	"os"
	"time"
)

// Config holds all settings required to initialize the blockchain, storage,
// AI, and HTTP server components. Use Validate to fill implicit defaults and
// to check for required fields, and FromEnv to overlay secrets from the
// process environment.
type Config struct {
	// Network selects the target chain (chain ID and human-readable name).
	Network Network `json:"network"`
	// RPCAddr is the chain RPC endpoint URL (required).
	RPCAddr string `json:"rpc_addr"`
	// MarketplaceAddr is the deployed Marketplace contract address (required).
	MarketplaceAddr string `json:"marketplace_addr"`
	// PrivateKey is the hex-encoded ECDSA private key of the sponsor wallet
	// that submits listing transactions on behalf of developers.
	PrivateKey string `json:"private_key"`
	// HTTPAddr is the listen address of the HTTP API. Default: ":3001".
	HTTPAddr string `json:"http_addr"`

	// LighthouseNodeURL is the Lighthouse upload node endpoint.
	// Default: https://node.lighthouse.storage
	LighthouseNodeURL string `json:"lighthouse_node_url"`
	// LighthouseGatewayURL is the HTTP gateway used to fetch Filecoin-backed
	// content. Default: https://gateway.lighthouse.storage/ipfs/
	LighthouseGatewayURL string `json:"lighthouse_gateway_url"`
	// LighthouseAPIKey authorizes uploads to the Lighthouse node.
	LighthouseAPIKey string `json:"lighthouse_api_key"`
	// IpfsURL is the HTTP API endpoint of an IPFS node, used as the private
	// store in local development instead of Lighthouse.
	IpfsURL string `json:"ipfs_url"`

	// Groq configures the AI summarizer provider.
	Groq Groq `json:"groq"`
	// S3 configures the S3-compatible public metadata store.
	S3 S3 `json:"s3"`

	// Debug enables verbose logging.
	Debug bool `json:"debug"`
	// Timeouts configures per-operation timeouts. See Timeouts.WithDefaults.
	Timeouts Timeouts `json:"timeouts"`
}

// Network describes a blockchain network (chain ID and name). ChainID is used
// for EIP-155 signing; Name is informational.
type Network struct {
	ChainID string `json:"chain_id"`
	Name    string `json:"network_name"`
}

// FilecoinMainnet is a predefined Network for the Filecoin EVM mainnet.
var FilecoinMainnet = Network{
	ChainID: "314",
	Name:    "filecoin",
}

// Calibration is a predefined Network for the Filecoin Calibration testnet.
var Calibration = Network{
	ChainID: "314159",
	Name:    "calibration",
}

// Groq holds the AI provider settings. The Groq API is OpenAI-compatible, so
// BaseURL points at its OpenAI-style endpoint root.
type Groq struct {
	APIKey  string `json:"api_key"`
	Model   string `json:"model"`
	BaseURL string `json:"base_url"`
}

// S3 holds the object-store settings for the public metadata bucket. The
// endpoint is used path-style: public URLs have the form
// {endpoint}/{bucket}/{key}.
type S3 struct {
	Endpoint        string `json:"endpoint"`
	Region          string `json:"region"`
	Bucket          string `json:"bucket"`
	AccessKeyID     string `json:"access_key_id"`
	SecretAccessKey string `json:"secret_access_key"`
}

// Timeouts controls operation deadlines.
// Zero values will be replaced by sane defaults in WithDefaults.
type Timeouts struct {
	ChainRead     time.Duration // eth_call, counters
	ChainSubmit   time.Duration // send tx
	ReceiptWait   time.Duration // wait tx confirmation
	Analyze       time.Duration // AI completion round-trip
	StorageUpload time.Duration // lighthouse/ipfs/object-store writes
	MetadataFetch time.Duration // token URI dereference during listing reads
}

// Validate normalizes the configuration by applying implicit defaults for the
// storage endpoints, Groq model, HTTP address and Network (defaults to
// Calibration) and verifies that RPCAddr and MarketplaceAddr are provided.
func (c *Config) Validate() error {

	if c.LighthouseNodeURL == "" {
		c.LighthouseNodeURL = "https://node.lighthouse.storage"
	}

	if c.LighthouseGatewayURL == "" {
		c.LighthouseGatewayURL = "https://gateway.lighthouse.storage/ipfs/"
	}

	if c.Groq.Model == "" {
		c.Groq.Model = "deepseek-r1-distill-llama-70b"
	}

	if c.Groq.BaseURL == "" {
		c.Groq.BaseURL = "https://api.groq.com/openai/v1"
	}

	if c.HTTPAddr == "" {
		c.HTTPAddr = ":3001"
	}

	if c.Network.ChainID == "" {
		c.Network = Calibration
	}

	if c.RPCAddr == "" {
		return errors.New("RPC address is required")
	}

	if c.MarketplaceAddr == "" {
		return errors.New("marketplace contract address is required")
	}

	return nil
}

// FromEnv overlays secret material from environment variables onto the
// config, so credentials can stay out of config files. Variables:
//
//	SPONSOR_WALLET_PRIVATE_KEY, FVM_RPC_URL, MARKETPLACE_CONTRACT_ADDRESS,
//	GROQ_API_KEY, LIGHTHOUSE_API_KEY,
//	AKAVE_ENDPOINT, AKAVE_REGION, AKAVE_BUCKET_NAME,
//	AKAVE_ACCESS_KEY_ID, AKAVE_SECRET_ACCESS_KEY
//
// Unset variables leave the corresponding field untouched.
func (c *Config) FromEnv() {
	setIfPresent := func(dst *string, key string) {
		if v, ok := os.LookupEnv(key); ok {
			*dst = v
		}
	}
	setIfPresent(&c.PrivateKey, "SPONSOR_WALLET_PRIVATE_KEY")
	setIfPresent(&c.RPCAddr, "FVM_RPC_URL")
	setIfPresent(&c.MarketplaceAddr, "MARKETPLACE_CONTRACT_ADDRESS")
	setIfPresent(&c.Groq.APIKey, "GROQ_API_KEY")
	setIfPresent(&c.LighthouseAPIKey, "LIGHTHOUSE_API_KEY")
	setIfPresent(&c.S3.Endpoint, "AKAVE_ENDPOINT")
	setIfPresent(&c.S3.Region, "AKAVE_REGION")
	setIfPresent(&c.S3.Bucket, "AKAVE_BUCKET_NAME")
	setIfPresent(&c.S3.AccessKeyID, "AKAVE_ACCESS_KEY_ID")
	setIfPresent(&c.S3.SecretAccessKey, "AKAVE_SECRET_ACCESS_KEY")
}

// LoadFile reads a JSON config file. A missing path returns an empty config
// so that a purely environment-driven deployment works without a file.
func LoadFile(path string) (*Config, error) {
	cfg := new(Config)
	if path == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(raw, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// WithDefaults returns a copy of t with zero values replaced by defaults:
//
//	ChainRead:     12s
//	ChainSubmit:   25s
//	ReceiptWait:   90s
//	Analyze:       60s
//	StorageUpload: 60s
//	MetadataFetch: 10s
func (t Timeouts) WithDefaults() Timeouts {
	tt := t
	if tt.ChainRead == 0 {
		tt.ChainRead = 12 * time.Second
	}
	if tt.ChainSubmit == 0 {
		tt.ChainSubmit = 25 * time.Second
	}
	if tt.ReceiptWait == 0 {
		tt.ReceiptWait = 90 * time.Second
	}
	if tt.Analyze == 0 {
		tt.Analyze = 60 * time.Second
	}
	if tt.StorageUpload == 0 {
		tt.StorageUpload = 60 * time.Second
	}
	if tt.MetadataFetch == 0 {
		tt.MetadataFetch = 10 * time.Second
	}
	return tt
}
