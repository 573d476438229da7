package blockchain

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"time"

	ethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"go.uber.org/zap"
)

// marketContract is the slice of the generated Marketplace binding used by
// EVMClient, extracted so tests can substitute a fake.
type marketContract interface {
	ListDataset(opts *bind.TransactOpts, seller common.Address, price *big.Int, tokenURI string, privateCid string, complexity uint8, uniqueness uint8, category string) (*types.Transaction, error)
	BuyAccess(opts *bind.TransactOpts, tokenId *big.Int) (*types.Transaction, error)
	UpdateDataset(opts *bind.TransactOpts, tokenId *big.Int, newPrice *big.Int, active bool) (*types.Transaction, error)
	SetDAOValidation(opts *bind.TransactOpts, tokenId *big.Int, validated bool) (*types.Transaction, error)
	SetPlatformFee(opts *bind.TransactOpts, newFee *big.Int) (*types.Transaction, error)
	Pause(opts *bind.TransactOpts) (*types.Transaction, error)
	Unpause(opts *bind.TransactOpts) (*types.Transaction, error)

	NextTokenId(opts *bind.CallOpts) (*big.Int, error)
	GetDataset(opts *bind.CallOpts, tokenId *big.Int) (MarketplaceDataset, error)
	Paused(opts *bind.CallOpts) (bool, error)
	PlatformFeePercentage(opts *bind.CallOpts) (*big.Int, error)
	TotalDatasetsListed(opts *bind.CallOpts) (*big.Int, error)
	GetActiveDatasetCount(opts *bind.CallOpts) (*big.Int, error)
	SellerEarnings(opts *bind.CallOpts, arg0 common.Address) (*big.Int, error)
	TotalSalesVolume(opts *bind.CallOpts) (*big.Int, error)

	ParseDatasetListed(log types.Log) (*MarketplaceDatasetListed, error)
	ParseAccessPurchased(log types.Log) (*MarketplaceAccessPurchased, error)
}

// nodeBackend is the slice of ethclient.Client used by EVMClient beyond
// contract calls.
type nodeBackend interface {
	ChainID(ctx context.Context) (*big.Int, error)
	HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error)
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
}

// EVMClient holds a connected ethclient.Client and the typed binding for the
// DatasetMarketplace contract, together with the sponsor wallet used to sign
// listing transactions on behalf of developers.
type EVMClient struct {
	Client      *ethclient.Client
	Marketplace *Marketplace

	market  marketContract
	node    nodeBackend
	sponsor common.Address
	pk      *ecdsa.PrivateKey
}

// InitEvm dials an FEVM endpoint and binds the DatasetMarketplace contract at
// the given address. The private key is the sponsor wallet that pays gas for
// listing transactions; it may be empty for a read-only client.
func InitEvm(endpoint, marketplaceAddr, privateKey string) (*EVMClient, error) {
	var eth = new(EVMClient)

	var err error
	eth.Client, err = ethclient.Dial(endpoint)
	if err != nil {
		zap.L().Error("Failed to ethdial", zap.Error(err))
		return nil, err
	}
	eth.node = eth.Client

	eth.Marketplace, err = NewMarketplace(common.HexToAddress(marketplaceAddr), eth.Client)
	if err != nil {
		zap.L().Error("Failed to bind marketplace contract", zap.Error(err))
		return nil, err
	}
	eth.market = eth.Marketplace

	if privateKey != "" {
		eth.sponsor, eth.pk, err = ParsePrivateKeyECDSA(privateKey)
		if err != nil {
			zap.L().Error("Failed to parse sponsor private key", zap.Error(err))
			return nil, err
		}
		zap.L().Info("sponsor wallet ready", zap.String("address", eth.sponsor.Hex()))
	}

	return eth, nil
}

// Sponsor returns the address of the configured sponsor wallet.
func (evm *EVMClient) Sponsor() common.Address {
	return evm.sponsor
}

// Close releases the underlying RPC connection.
func (evm *EVMClient) Close() {
	if evm.Client != nil {
		evm.Client.Close()
	}
}

// GetCurrentBlockNumber returns the latest block number.
func (evm *EVMClient) GetCurrentBlockNumber(ctx context.Context) (*big.Int, error) {
	header, err := evm.node.HeaderByNumber(ctx, nil)
	if err != nil {
		zap.L().Error("failed to get last block number", zap.Error(err))
		return nil, err
	}
	return header.Number, nil
}

// WaitForTransaction polls for a transaction receipt with exponential backoff,
// until receipt is available, context is done, or an error occurs. If maxBackoff
// is non-zero, backoff will not exceed it. It returns an error if the tx is reverted.
func (evm *EVMClient) WaitForTransaction(ctx context.Context, txHash common.Hash, maxBackoff time.Duration) (*types.Receipt, error) {
	backoff := time.Second
	for {
		receipt, err := evm.node.TransactionReceipt(ctx, txHash)
		switch {
		case err == nil:
			if receipt.Status == types.ReceiptStatusFailed {
				return nil, fmt.Errorf("tx reverted: %s", txHash)
			}
			return receipt, nil
		case errors.Is(err, ethereum.NotFound):
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
			if maxBackoff == 0 || backoff < maxBackoff {
				backoff *= 2
			}
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			return nil, err
		default:
			return nil, fmt.Errorf("receipt error: %w", err)
		}
	}
}
