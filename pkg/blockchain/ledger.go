package blockchain

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"

	"github.com/debugger-labs/debugger-go/pkg/model"
)

// receiptWait bounds the backoff between receipt polls; Filecoin blocks land
// every 30 seconds, so capping well below that keeps the wait responsive.
const receiptWait = 30 * time.Second

// ListDataset submits a sponsored listing transaction, waits for it to be
// mined and returns the minted token ID. The ID is recovered from the
// DatasetListed event in the receipt; when no log is present the client falls
// back to nextTokenId-1, which misattributes the ID if another listing was
// mined in between, so the fallback is logged loudly.
func (evm *EVMClient) ListDataset(ctx context.Context, seller string, price *big.Int, tokenURI, privateCid string, complexity, uniqueness uint8, category string) (uint64, error) {
	opts, err := evm.GetTransactOpts(ctx)
	if err != nil {
		return 0, err
	}

	tx, err := evm.market.ListDataset(opts, common.HexToAddress(seller), price, tokenURI, privateCid, complexity, uniqueness, category)
	if err != nil {
		zap.L().Error("listDataset transaction failed", zap.Error(err))
		return 0, fmt.Errorf("failed to submit listing: %w", err)
	}
	zap.L().Info("listing transaction submitted", zap.String("txHash", tx.Hash().Hex()))

	receipt, err := evm.WaitForTransaction(ctx, tx.Hash(), receiptWait)
	if err != nil {
		return 0, fmt.Errorf("listing not mined: %w", err)
	}

	return evm.listedTokenID(ctx, receipt)
}

// listedTokenID extracts the minted token ID from a listing receipt.
func (evm *EVMClient) listedTokenID(ctx context.Context, receipt *types.Receipt) (uint64, error) {
	for _, lg := range receipt.Logs {
		ev, err := evm.market.ParseDatasetListed(*lg)
		if err != nil {
			continue
		}
		zap.L().Info("dataset listed",
			zap.Uint64("tokenId", ev.TokenId.Uint64()),
			zap.String("seller", ev.Seller.Hex()))
		return ev.TokenId.Uint64(), nil
	}

	// Some RPC providers omit event logs from receipts. nextTokenId-1 is
	// only correct if no other listing was mined since ours.
	zap.L().Warn("DatasetListed event missing from receipt, falling back to nextTokenId-1 (unreliable under concurrent listings)",
		zap.String("txHash", receipt.TxHash.Hex()))
	next, err := evm.market.NextTokenId(GetCallOpts(ctx))
	if err != nil {
		return 0, fmt.Errorf("failed to resolve token id: %w", err)
	}
	if next.Sign() <= 0 {
		return 0, fmt.Errorf("contract reports no minted tokens")
	}
	return new(big.Int).Sub(next, big.NewInt(1)).Uint64(), nil
}

// FetchListings reads every minted listing from the contract, in token ID
// order, skipping inactive ones. A read failure aborts the whole scan: a
// partial marketplace view is worse than an error.
func (evm *EVMClient) FetchListings(ctx context.Context) ([]model.Listing, error) {
	call := GetCallOpts(ctx)

	next, err := evm.market.NextTokenId(call)
	if err != nil {
		zap.L().Error("failed to read nextTokenId", zap.Error(err))
		return nil, err
	}

	listings := make([]model.Listing, 0)
	one := big.NewInt(1)
	for id := big.NewInt(1); id.Cmp(next) < 0; id = new(big.Int).Add(id, one) {
		ds, err := evm.market.GetDataset(call, id)
		if err != nil {
			zap.L().Error("failed to read dataset", zap.String("tokenId", id.String()), zap.Error(err))
			return nil, err
		}
		if !ds.Active {
			continue
		}
		listings = append(listings, model.Listing{
			TokenID:      id.Uint64(),
			Seller:       ds.Seller.Hex(),
			Price:        ds.Price,
			TokenURI:     ds.TokenURI,
			PrivateCID:   ds.PrivateCid,
			Complexity:   ds.Complexity,
			Uniqueness:   ds.Uniqueness,
			Category:     ds.Category,
			Active:       ds.Active,
			TotalSales:   ds.TotalSales.Uint64(),
			DAOValidated: ds.DaoValidated,
		})
	}
	return listings, nil
}

// BuyAccess purchases access to a listing, attaching value as payment.
// The buyer is the sponsor wallet; end-user purchases go straight from the
// frontend to the contract.
func (evm *EVMClient) BuyAccess(ctx context.Context, tokenID uint64, value *big.Int) (common.Hash, error) {
	opts, err := evm.GetTransactOpts(ctx)
	if err != nil {
		return common.Hash{}, err
	}
	opts.Value = value

	tx, err := evm.market.BuyAccess(opts, new(big.Int).SetUint64(tokenID))
	if err != nil {
		return common.Hash{}, fmt.Errorf("failed to buy access: %w", err)
	}
	if _, err := evm.WaitForTransaction(ctx, tx.Hash(), receiptWait); err != nil {
		return common.Hash{}, err
	}
	return tx.Hash(), nil
}

// UpdateDataset changes the price and active flag of an existing listing.
func (evm *EVMClient) UpdateDataset(ctx context.Context, tokenID uint64, newPrice *big.Int, active bool) (common.Hash, error) {
	return evm.submit(ctx, func(opts *bind.TransactOpts) (*types.Transaction, error) {
		return evm.market.UpdateDataset(opts, new(big.Int).SetUint64(tokenID), newPrice, active)
	})
}

// SetDAOValidation marks a listing as validated (or not) by the DAO.
func (evm *EVMClient) SetDAOValidation(ctx context.Context, tokenID uint64, validated bool) (common.Hash, error) {
	return evm.submit(ctx, func(opts *bind.TransactOpts) (*types.Transaction, error) {
		return evm.market.SetDAOValidation(opts, new(big.Int).SetUint64(tokenID), validated)
	})
}

// SetPlatformFee updates the platform fee percentage (owner only, capped at
// 25 by the contract).
func (evm *EVMClient) SetPlatformFee(ctx context.Context, percent uint64) (common.Hash, error) {
	return evm.submit(ctx, func(opts *bind.TransactOpts) (*types.Transaction, error) {
		return evm.market.SetPlatformFee(opts, new(big.Int).SetUint64(percent))
	})
}

// Pause suspends listings and purchases on the contract.
func (evm *EVMClient) Pause(ctx context.Context) (common.Hash, error) {
	return evm.submit(ctx, func(opts *bind.TransactOpts) (*types.Transaction, error) {
		return evm.market.Pause(opts)
	})
}

// Unpause resumes a paused contract.
func (evm *EVMClient) Unpause(ctx context.Context) (common.Hash, error) {
	return evm.submit(ctx, func(opts *bind.TransactOpts) (*types.Transaction, error) {
		return evm.market.Unpause(opts)
	})
}

// submit signs, sends and waits for one state-changing transaction.
func (evm *EVMClient) submit(ctx context.Context, send func(*bind.TransactOpts) (*types.Transaction, error)) (common.Hash, error) {
	opts, err := evm.GetTransactOpts(ctx)
	if err != nil {
		return common.Hash{}, err
	}
	tx, err := send(opts)
	if err != nil {
		return common.Hash{}, err
	}
	if _, err := evm.WaitForTransaction(ctx, tx.Hash(), receiptWait); err != nil {
		return common.Hash{}, err
	}
	return tx.Hash(), nil
}

// MarketStats aggregates the contract's statistics accessors in one call.
type MarketStats struct {
	TotalListed      uint64
	ActiveListings   uint64
	TotalSalesVolume *big.Int
	PlatformFee      uint64
	Paused           bool
}

// GetMarketStats reads the statistics counters from the contract.
func (evm *EVMClient) GetMarketStats(ctx context.Context) (*MarketStats, error) {
	call := GetCallOpts(ctx)

	total, err := evm.market.TotalDatasetsListed(call)
	if err != nil {
		return nil, err
	}
	active, err := evm.market.GetActiveDatasetCount(call)
	if err != nil {
		return nil, err
	}
	volume, err := evm.market.TotalSalesVolume(call)
	if err != nil {
		return nil, err
	}
	fee, err := evm.market.PlatformFeePercentage(call)
	if err != nil {
		return nil, err
	}
	paused, err := evm.market.Paused(call)
	if err != nil {
		return nil, err
	}

	return &MarketStats{
		TotalListed:      total.Uint64(),
		ActiveListings:   active.Uint64(),
		TotalSalesVolume: volume,
		PlatformFee:      fee.Uint64(),
		Paused:           paused,
	}, nil
}

// GetSellerEarnings returns the lifetime earnings credited to a seller.
func (evm *EVMClient) GetSellerEarnings(ctx context.Context, seller string) (*big.Int, error) {
	return evm.market.SellerEarnings(GetCallOpts(ctx), common.HexToAddress(seller))
}
