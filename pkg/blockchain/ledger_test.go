package blockchain

import (
	"context"
	"errors"
	"math/big"
	"testing"

	ethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
)

// fakeNode serves chain metadata and a scripted sequence of receipt lookups.
type fakeNode struct {
	receipts []receiptResult
	calls    int
}

type receiptResult struct {
	receipt *types.Receipt
	err     error
}

func (f *fakeNode) ChainID(context.Context) (*big.Int, error) {
	return big.NewInt(314159), nil
}

func (f *fakeNode) HeaderByNumber(context.Context, *big.Int) (*types.Header, error) {
	return &types.Header{Number: big.NewInt(123)}, nil
}

func (f *fakeNode) TransactionReceipt(context.Context, common.Hash) (*types.Receipt, error) {
	if f.calls >= len(f.receipts) {
		return nil, errors.New("no more scripted receipts")
	}
	r := f.receipts[f.calls]
	f.calls++
	return r.receipt, r.err
}

// fakeMarket scripts the contract surface used by the ledger methods.
type fakeMarket struct {
	nextTokenID *big.Int
	nextErr     error
	datasets    map[uint64]MarketplaceDataset
	datasetErr  error
	listedEvent *MarketplaceDatasetListed
	listErr     error

	listedSeller common.Address
	listedPrice  *big.Int
	listedURI    string
}

func dummyTx() *types.Transaction {
	to := common.HexToAddress("0x1")
	return types.NewTx(&types.LegacyTx{Nonce: 1, To: &to, Gas: 21000, GasPrice: big.NewInt(1)})
}

func (f *fakeMarket) ListDataset(_ *bind.TransactOpts, seller common.Address, price *big.Int, tokenURI, _ string, _, _ uint8, _ string) (*types.Transaction, error) {
	f.listedSeller, f.listedPrice, f.listedURI = seller, price, tokenURI
	if f.listErr != nil {
		return nil, f.listErr
	}
	return dummyTx(), nil
}

func (f *fakeMarket) BuyAccess(*bind.TransactOpts, *big.Int) (*types.Transaction, error) {
	return dummyTx(), nil
}

func (f *fakeMarket) UpdateDataset(*bind.TransactOpts, *big.Int, *big.Int, bool) (*types.Transaction, error) {
	return dummyTx(), nil
}

func (f *fakeMarket) SetDAOValidation(*bind.TransactOpts, *big.Int, bool) (*types.Transaction, error) {
	return dummyTx(), nil
}

func (f *fakeMarket) SetPlatformFee(*bind.TransactOpts, *big.Int) (*types.Transaction, error) {
	return dummyTx(), nil
}

func (f *fakeMarket) Pause(*bind.TransactOpts) (*types.Transaction, error) {
	return dummyTx(), nil
}

func (f *fakeMarket) Unpause(*bind.TransactOpts) (*types.Transaction, error) {
	return dummyTx(), nil
}

func (f *fakeMarket) NextTokenId(*bind.CallOpts) (*big.Int, error) {
	return f.nextTokenID, f.nextErr
}

func (f *fakeMarket) GetDataset(_ *bind.CallOpts, tokenId *big.Int) (MarketplaceDataset, error) {
	if f.datasetErr != nil {
		return MarketplaceDataset{}, f.datasetErr
	}
	ds, ok := f.datasets[tokenId.Uint64()]
	if !ok {
		return MarketplaceDataset{}, errors.New("execution reverted: Marketplace: dataset does not exist")
	}
	return ds, nil
}

func (f *fakeMarket) Paused(*bind.CallOpts) (bool, error)                    { return false, nil }
func (f *fakeMarket) PlatformFeePercentage(*bind.CallOpts) (*big.Int, error) { return big.NewInt(10), nil }
func (f *fakeMarket) TotalDatasetsListed(*bind.CallOpts) (*big.Int, error)   { return big.NewInt(2), nil }
func (f *fakeMarket) GetActiveDatasetCount(*bind.CallOpts) (*big.Int, error) { return big.NewInt(1), nil }
func (f *fakeMarket) SellerEarnings(*bind.CallOpts, common.Address) (*big.Int, error) {
	return big.NewInt(0), nil
}
func (f *fakeMarket) TotalSalesVolume(*bind.CallOpts) (*big.Int, error) { return big.NewInt(0), nil }

func (f *fakeMarket) ParseDatasetListed(types.Log) (*MarketplaceDatasetListed, error) {
	if f.listedEvent == nil {
		return nil, errors.New("event signature mismatch")
	}
	return f.listedEvent, nil
}

func (f *fakeMarket) ParseAccessPurchased(types.Log) (*MarketplaceAccessPurchased, error) {
	return nil, errors.New("event signature mismatch")
}

func newTestEVM(t *testing.T, market *fakeMarket, node *fakeNode) *EVMClient {
	t.Helper()
	pk, err := crypto.GenerateKey()
	if err != nil {
		t.Fatalf("generating key: %v", err)
	}
	return &EVMClient{market: market, node: node, pk: pk, sponsor: crypto.PubkeyToAddress(pk.PublicKey)}
}

func minedReceipt(logs ...*types.Log) *types.Receipt {
	return &types.Receipt{Status: types.ReceiptStatusSuccessful, Logs: logs}
}

func TestListDataset_TokenIDFromEvent(t *testing.T) {
	market := &fakeMarket{
		listedEvent: &MarketplaceDatasetListed{TokenId: big.NewInt(7), Seller: common.HexToAddress("0xabc")},
	}
	node := &fakeNode{receipts: []receiptResult{{receipt: minedReceipt(&types.Log{})}}}
	evm := newTestEVM(t, market, node)

	id, err := evm.ListDataset(context.Background(), "0xabc", big.NewInt(100), "uri", "cid", 50, 60, "Python")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != 7 {
		t.Fatalf("got token id %d, want 7", id)
	}
	if market.listedPrice.Cmp(big.NewInt(100)) != 0 {
		t.Fatalf("price not forwarded: %v", market.listedPrice)
	}
}

func TestListDataset_FallbackToNextTokenID(t *testing.T) {
	market := &fakeMarket{nextTokenID: big.NewInt(5)}
	node := &fakeNode{receipts: []receiptResult{{receipt: minedReceipt()}}}
	evm := newTestEVM(t, market, node)

	id, err := evm.ListDataset(context.Background(), "0xabc", big.NewInt(1), "uri", "cid", 1, 1, "Go")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != 4 {
		t.Fatalf("got token id %d, want 4", id)
	}
}

func TestListDataset_FallbackWithoutMintedTokens(t *testing.T) {
	market := &fakeMarket{nextTokenID: big.NewInt(0)}
	node := &fakeNode{receipts: []receiptResult{{receipt: minedReceipt()}}}
	evm := newTestEVM(t, market, node)

	if _, err := evm.ListDataset(context.Background(), "0xabc", big.NewInt(1), "uri", "cid", 1, 1, "Go"); err == nil {
		t.Fatal("expected error when contract reports no tokens")
	}
}

func TestListDataset_SubmitError(t *testing.T) {
	market := &fakeMarket{listErr: errors.New("execution reverted: Pausable: paused")}
	evm := newTestEVM(t, market, &fakeNode{})

	if _, err := evm.ListDataset(context.Background(), "0xabc", big.NewInt(1), "uri", "cid", 1, 1, "Go"); err == nil {
		t.Fatal("expected error")
	}
}

func TestListDataset_RevertedTx(t *testing.T) {
	market := &fakeMarket{listedEvent: &MarketplaceDatasetListed{TokenId: big.NewInt(1)}}
	node := &fakeNode{receipts: []receiptResult{{receipt: &types.Receipt{Status: types.ReceiptStatusFailed}}}}
	evm := newTestEVM(t, market, node)

	if _, err := evm.ListDataset(context.Background(), "0xabc", big.NewInt(1), "uri", "cid", 1, 1, "Go"); err == nil {
		t.Fatal("expected error for reverted tx")
	}
}

func TestWaitForTransaction_RetriesUntilMined(t *testing.T) {
	node := &fakeNode{receipts: []receiptResult{
		{err: ethereum.NotFound},
		{receipt: minedReceipt()},
	}}
	evm := &EVMClient{node: node}

	receipt, err := evm.WaitForTransaction(context.Background(), common.Hash{}, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if receipt == nil || node.calls != 2 {
		t.Fatalf("expected 2 polls, got %d", node.calls)
	}
}

func TestWaitForTransaction_ContextCancel(t *testing.T) {
	node := &fakeNode{receipts: []receiptResult{
		{err: ethereum.NotFound},
		{err: ethereum.NotFound},
	}}
	evm := &EVMClient{node: node}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := evm.WaitForTransaction(ctx, common.Hash{}, 0); err == nil {
		t.Fatal("expected context error")
	}
}

func TestFetchListings_SkipsInactive(t *testing.T) {
	market := &fakeMarket{
		nextTokenID: big.NewInt(4),
		datasets: map[uint64]MarketplaceDataset{
			1: {Seller: common.HexToAddress("0x1"), Price: big.NewInt(10), TokenURI: "u1", PrivateCid: "c1", Active: true, TotalSales: big.NewInt(3)},
			2: {Seller: common.HexToAddress("0x2"), Price: big.NewInt(20), TokenURI: "u2", PrivateCid: "c2", Active: false, TotalSales: big.NewInt(0)},
			3: {Seller: common.HexToAddress("0x3"), Price: big.NewInt(30), TokenURI: "u3", PrivateCid: "c3", Active: true, TotalSales: big.NewInt(0)},
		},
	}
	evm := &EVMClient{market: market}

	listings, err := evm.FetchListings(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(listings) != 2 {
		t.Fatalf("got %d listings, want 2", len(listings))
	}
	if listings[0].TokenID != 1 || listings[1].TokenID != 3 {
		t.Fatalf("unexpected token ids: %d, %d", listings[0].TokenID, listings[1].TokenID)
	}
	if listings[0].TotalSales != 3 {
		t.Fatalf("total sales not carried over: %d", listings[0].TotalSales)
	}
}

func TestFetchListings_Empty(t *testing.T) {
	evm := &EVMClient{market: &fakeMarket{nextTokenID: big.NewInt(1)}}
	listings, err := evm.FetchListings(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(listings) != 0 {
		t.Fatalf("expected no listings, got %d", len(listings))
	}
}

func TestFetchListings_ReadErrorAborts(t *testing.T) {
	market := &fakeMarket{nextTokenID: big.NewInt(3), datasetErr: errors.New("rpc timeout")}
	evm := &EVMClient{market: market}

	if _, err := evm.FetchListings(context.Background()); err == nil {
		t.Fatal("expected error")
	}
}

func TestGetMarketStats(t *testing.T) {
	evm := &EVMClient{market: &fakeMarket{}}
	stats, err := evm.GetMarketStats(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.TotalListed != 2 || stats.ActiveListings != 1 || stats.PlatformFee != 10 || stats.Paused {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}
