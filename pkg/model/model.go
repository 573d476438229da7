// Package model defines the data structures exchanged between the submission
// pipeline, the storage backends, and the marketplace contract: submissions,
// AI analyses, private payloads, public metadata, and listings. These structs
// mirror the JSON documents stored in the object store and served over the
// HTTP API.
package model

import (
	"errors"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

// Submission is the client-supplied input of the pipeline: a debugging case
// study (code, error, solution) plus the developer's payout address and the
// asking price in whole native-token units (e.g. "0.1").
type Submission struct {
	DeveloperAddress string `json:"developerAddress"`
	Price            string `json:"price"`
	Code             string `json:"code"`
	Error            string `json:"error"`
	Solution         string `json:"solution"`
}

// ErrMissingFields is returned when any submission field is empty.
var ErrMissingFields = errors.New("missing required fields")

// ErrInvalidPrice is returned when the price is not a positive decimal.
var ErrInvalidPrice = errors.New("price must be a positive decimal number")

// Validate checks that every field is present and that the price parses as a
// positive decimal. It performs no network calls; the pipeline runs it before
// any side effect.
func (s *Submission) Validate() error {
	if strings.TrimSpace(s.DeveloperAddress) == "" ||
		strings.TrimSpace(s.Price) == "" ||
		strings.TrimSpace(s.Code) == "" ||
		strings.TrimSpace(s.Error) == "" ||
		strings.TrimSpace(s.Solution) == "" {
		return ErrMissingFields
	}
	price, err := decimal.NewFromString(s.Price)
	if err != nil || !price.IsPositive() {
		return ErrInvalidPrice
	}
	return nil
}

// Attribute is a single trait on a listing's public metadata. The JSON field
// names follow the NFT metadata convention used by the marketplace frontend.
type Attribute struct {
	TraitType string `json:"trait_type"`
	Value     string `json:"value"`
}

// Analysis is the structured result produced by the AI summarizer for one
// submission. It is never persisted on its own; its fields are folded into
// PrivatePayload and PublicMetadata.
type Analysis struct {
	Title           string      `json:"title"`
	Summary         string      `json:"summary"`
	Attributes      []Attribute `json:"attributes"`
	ComplexityScore int         `json:"complexityScore"`
	FullAnalysis    string      `json:"fullAnalysis"`
}

// Valid reports whether the analysis conforms to the constrained response
// format: non-empty title and summary, complexity score within [1,100].
func (a *Analysis) Valid() error {
	if strings.TrimSpace(a.Title) == "" {
		return errors.New("analysis: empty title")
	}
	if strings.TrimSpace(a.Summary) == "" {
		return errors.New("analysis: empty summary")
	}
	if a.ComplexityScore < 1 || a.ComplexityScore > 100 {
		return errors.New("analysis: complexity score out of range [1,100]")
	}
	return nil
}

// PrivatePayload is the paid content persisted in the content-addressed
// store. It is immutable once uploaded; the pipeline keeps only the CID.
type PrivatePayload struct {
	Code         string `json:"code"`
	Error        string `json:"error"`
	Solution     string `json:"solution"`
	FullAnalysis string `json:"full_analysis"`
}

// PublicMetadata is the free preview document persisted in the object store
// and referenced by a listing's token URI. PrivateDataCID points at the
// corresponding PrivatePayload in the content-addressed store.
type PublicMetadata struct {
	Name           string      `json:"name"`
	Description    string      `json:"description"`
	Attributes     []Attribute `json:"attributes"`
	PrivateDataCID string      `json:"private_data_cid"`
}

// Listing is the canonical on-chain record of one dataset offered for sale.
// Price is in the chain's smallest unit (attoFIL).
type Listing struct {
	TokenID      uint64
	Seller       string
	Price        *big.Int
	TokenURI     string
	PrivateCID   string
	Complexity   uint8
	Uniqueness   uint8
	Category     string
	Active       bool
	TotalSales   uint64
	DAOValidated bool
}

// EnrichedListing merges a Listing's on-chain fields with its dereferenced
// public metadata. Price is formatted back into whole native-token units as a
// decimal string, matching the submission format.
type EnrichedListing struct {
	TokenID        uint64      `json:"tokenId"`
	Seller         string      `json:"seller"`
	Price          string      `json:"price"`
	TokenURI       string      `json:"tokenURI"`
	Name           string      `json:"name"`
	Description    string      `json:"description"`
	Attributes     []Attribute `json:"attributes"`
	PrivateDataCID string      `json:"private_data_cid"`
}
