// Package chainsim is an in-memory rendition of the DatasetMarketplace
// contract. It reproduces the contract's state machine, revert reasons and
// fee arithmetic exactly, which makes it both the dev-mode ledger (run the
// server without an RPC endpoint) and the reference against which the
// contract's properties are tested.
//
// The chain serializes transactions; the simulator does the same with a
// single mutex.
package chainsim

import (
	"context"
	"errors"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/common"

	"github.com/debugger-labs/debugger-go/pkg/model"
)

// Revert reasons, byte for byte as the deployed contract emits them.
var (
	ErrPaused          = errors.New("Pausable: paused")
	ErrNotOwner        = errors.New("Ownable: caller is not the owner")
	ErrZeroPrice       = errors.New("Marketplace: price must be greater than 0")
	ErrScoreRange      = errors.New("Marketplace: complexity must be 1-100")
	ErrEmptyTokenURI   = errors.New("Marketplace: tokenURI cannot be empty")
	ErrNoDataset       = errors.New("Marketplace: dataset does not exist")
	ErrInsufficientPay = errors.New("Marketplace: insufficient payment")
	ErrOwnDataset      = errors.New("Marketplace: seller cannot buy own dataset")
	ErrAlreadyHas      = errors.New("Marketplace: already has access")
	ErrNotSeller       = errors.New("Marketplace: not the seller")
	ErrFeeTooHigh      = errors.New("Marketplace: fee cannot exceed 25%")
)

// DefaultFeePercent is the platform fee applied until the owner changes it.
const DefaultFeePercent = 10

// MaxFeePercent is the hard cap on the platform fee.
const MaxFeePercent = 25

// Events mirror the contract's event log.
type (
	DatasetListed struct {
		TokenID    uint64
		Seller     string
		Price      *big.Int
		Category   string
		Complexity uint8
		Uniqueness uint8
	}
	AccessPurchased struct {
		TokenID uint64
		Buyer   string
		Seller  string
		Price   *big.Int
	}
	DatasetUpdated struct {
		TokenID  uint64
		NewPrice *big.Int
		Active   bool
	}
	DAOValidationUpdated struct {
		TokenID   uint64
		Validated bool
	}
	PlatformFeeUpdated struct {
		NewFee uint64
	}
)

type dataset struct {
	seller       string
	price        *big.Int
	tokenURI     string
	privateCid   string
	complexity   uint8
	uniqueness   uint8
	category     string
	active       bool
	totalSales   uint64
	daoValidated bool
}

// Simulator holds the full marketplace state. The zero value is not usable;
// construct with New.
type Simulator struct {
	mu sync.Mutex

	owner        string
	feeRecipient string
	feePercent   uint64
	paused       bool

	nextID   uint64
	datasets map[uint64]*dataset
	access   map[uint64]map[string]bool

	sellerEarnings   map[string]*big.Int
	feeCollected     *big.Int
	totalSalesVolume *big.Int

	events []any
}

// New creates a marketplace with the given owner and fee recipient, the
// default 10% fee, and token IDs starting at 1.
func New(owner, feeRecipient string) *Simulator {
	return &Simulator{
		owner:            addr(owner),
		feeRecipient:     addr(feeRecipient),
		feePercent:       DefaultFeePercent,
		nextID:           1,
		datasets:         make(map[uint64]*dataset),
		access:           make(map[uint64]map[string]bool),
		sellerEarnings:   make(map[string]*big.Int),
		feeCollected:     new(big.Int),
		totalSalesVolume: new(big.Int),
	}
}

// addr normalizes a hex address so lookups are case-insensitive.
func addr(s string) string {
	return common.HexToAddress(s).Hex()
}

// ListDataset mints a new listing and returns its token ID. The context is
// accepted for interface compatibility with the on-chain ledger; the
// simulator never blocks.
func (s *Simulator) ListDataset(_ context.Context, seller string, price *big.Int, tokenURI, privateCid string, complexity, uniqueness uint8, category string) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.paused {
		return 0, ErrPaused
	}
	if price == nil || price.Sign() <= 0 {
		return 0, ErrZeroPrice
	}
	if complexity < 1 || complexity > 100 || uniqueness < 1 || uniqueness > 100 {
		return 0, ErrScoreRange
	}
	if tokenURI == "" {
		return 0, ErrEmptyTokenURI
	}

	id := s.nextID
	s.nextID++
	s.datasets[id] = &dataset{
		seller:     addr(seller),
		price:      new(big.Int).Set(price),
		tokenURI:   tokenURI,
		privateCid: privateCid,
		complexity: complexity,
		uniqueness: uniqueness,
		category:   category,
		active:     true,
	}
	s.access[id] = make(map[string]bool)
	s.events = append(s.events, DatasetListed{
		TokenID:    id,
		Seller:     addr(seller),
		Price:      new(big.Int).Set(price),
		Category:   category,
		Complexity: complexity,
		Uniqueness: uniqueness,
	})
	return id, nil
}

// BuyAccess grants the buyer access to a listing in exchange for value.
// The fee is computed on the attached value, floored; the seller receives
// the remainder, so the two amounts always sum to the full payment.
func (s *Simulator) BuyAccess(buyer string, tokenID uint64, value *big.Int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.paused {
		return ErrPaused
	}
	ds, ok := s.datasets[tokenID]
	if !ok || !ds.active {
		return ErrNoDataset
	}
	if value == nil || value.Cmp(ds.price) < 0 {
		return ErrInsufficientPay
	}
	buyer = addr(buyer)
	if buyer == ds.seller {
		return ErrOwnDataset
	}
	if s.access[tokenID][buyer] {
		return ErrAlreadyHas
	}

	fee := new(big.Int).Mul(value, new(big.Int).SetUint64(s.feePercent))
	fee.Div(fee, big.NewInt(100))
	sellerAmount := new(big.Int).Sub(value, fee)

	s.credit(s.sellerEarnings, ds.seller, sellerAmount)
	s.feeCollected.Add(s.feeCollected, fee)
	s.totalSalesVolume.Add(s.totalSalesVolume, value)
	ds.totalSales++
	s.access[tokenID][buyer] = true

	s.events = append(s.events, AccessPurchased{
		TokenID: tokenID,
		Buyer:   buyer,
		Seller:  ds.seller,
		Price:   new(big.Int).Set(value),
	})
	return nil
}

func (s *Simulator) credit(m map[string]*big.Int, key string, amount *big.Int) {
	if m[key] == nil {
		m[key] = new(big.Int)
	}
	m[key].Add(m[key], amount)
}

// UpdateDataset changes the price and active flag. Only the seller may call it.
func (s *Simulator) UpdateDataset(caller string, tokenID uint64, newPrice *big.Int, active bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ds, ok := s.datasets[tokenID]
	if !ok {
		return ErrNoDataset
	}
	if addr(caller) != ds.seller {
		return ErrNotSeller
	}
	if newPrice == nil || newPrice.Sign() <= 0 {
		return ErrZeroPrice
	}

	ds.price = new(big.Int).Set(newPrice)
	ds.active = active
	s.events = append(s.events, DatasetUpdated{TokenID: tokenID, NewPrice: new(big.Int).Set(newPrice), Active: active})
	return nil
}

// SetDAOValidation flags a listing as validated by the DAO. Owner only.
func (s *Simulator) SetDAOValidation(caller string, tokenID uint64, validated bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if addr(caller) != s.owner {
		return ErrNotOwner
	}
	ds, ok := s.datasets[tokenID]
	if !ok {
		return ErrNoDataset
	}
	ds.daoValidated = validated
	s.events = append(s.events, DAOValidationUpdated{TokenID: tokenID, Validated: validated})
	return nil
}

// SetPlatformFee updates the fee percentage. Owner only, capped at 25.
func (s *Simulator) SetPlatformFee(caller string, percent uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if addr(caller) != s.owner {
		return ErrNotOwner
	}
	if percent > MaxFeePercent {
		return ErrFeeTooHigh
	}
	s.feePercent = percent
	s.events = append(s.events, PlatformFeeUpdated{NewFee: percent})
	return nil
}

// Pause suspends listings and purchases. Owner only.
func (s *Simulator) Pause(caller string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if addr(caller) != s.owner {
		return ErrNotOwner
	}
	s.paused = true
	return nil
}

// Unpause resumes a paused marketplace. Owner only.
func (s *Simulator) Unpause(caller string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if addr(caller) != s.owner {
		return ErrNotOwner
	}
	s.paused = false
	return nil
}

// FetchListings returns every active listing in token ID order, matching the
// on-chain ledger's scan.
func (s *Simulator) FetchListings(_ context.Context) ([]model.Listing, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	listings := make([]model.Listing, 0)
	for id := uint64(1); id < s.nextID; id++ {
		ds, ok := s.datasets[id]
		if !ok || !ds.active {
			continue
		}
		listings = append(listings, model.Listing{
			TokenID:      id,
			Seller:       ds.seller,
			Price:        new(big.Int).Set(ds.price),
			TokenURI:     ds.tokenURI,
			PrivateCID:   ds.privateCid,
			Complexity:   ds.complexity,
			Uniqueness:   ds.uniqueness,
			Category:     ds.category,
			Active:       ds.active,
			TotalSales:   ds.totalSales,
			DAOValidated: ds.daoValidated,
		})
	}
	return listings, nil
}

// NextTokenID returns the ID the next listing will receive.
func (s *Simulator) NextTokenID() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.nextID
}

// HasAccess reports whether account holds an access grant for tokenID.
func (s *Simulator) HasAccess(account string, tokenID uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.access[tokenID][addr(account)]
}

// BalanceOf mirrors the contract's ERC-721-style accessor: 1 if the account
// holds an access grant for tokenID, 0 otherwise.
func (s *Simulator) BalanceOf(account string, tokenID uint64) uint64 {
	if s.HasAccess(account, tokenID) {
		return 1
	}
	return 0
}

// SellerEarnings returns the lifetime earnings credited to a seller.
func (s *Simulator) SellerEarnings(seller string) *big.Int {
	s.mu.Lock()
	defer s.mu.Unlock()
	e := s.sellerEarnings[addr(seller)]
	if e == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(e)
}

// FeeCollected returns the total platform fees taken so far.
func (s *Simulator) FeeCollected() *big.Int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return new(big.Int).Set(s.feeCollected)
}

// TotalSalesVolume returns the sum of all payments attached to purchases.
func (s *Simulator) TotalSalesVolume() *big.Int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return new(big.Int).Set(s.totalSalesVolume)
}

// TotalDatasetsListed returns the number of listings ever minted.
func (s *Simulator) TotalDatasetsListed() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.nextID - 1
}

// ActiveDatasetCount returns the number of listings currently active.
func (s *Simulator) ActiveDatasetCount() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n uint64
	for _, ds := range s.datasets {
		if ds.active {
			n++
		}
	}
	return n
}

// PlatformFeePercentage returns the current fee percentage.
func (s *Simulator) PlatformFeePercentage() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.feePercent
}

// Paused reports whether the marketplace is paused.
func (s *Simulator) Paused() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.paused
}

// Events returns a copy of the emitted event log in order.
func (s *Simulator) Events() []any {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]any, len(s.events))
	copy(out, s.events)
	return out
}
