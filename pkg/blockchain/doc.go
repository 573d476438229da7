// Package blockchain provides low-level FEVM interaction for the dataset
// marketplace.
//
// This package contains the typed binding for the DatasetMarketplace contract
// together with the client and helpers used to drive it:
//
// EVMClient:
//   - Connected ethclient with the Marketplace binding wired
//   - Transaction signing with the sponsor wallet key
//   - Receipt polling with exponential backoff
//   - Read helpers over the full listing range
//
// # Listing Flow
//
// Listings are sponsored: the backend wallet pays gas and passes the
// developer's address through so the contract credits the right seller.
//
//	tokenID, err := evm.ListDataset(ctx, seller, priceAtto,
//		tokenURI, privateCid, complexity, uniqueness, category)
//
// The token ID is recovered from the DatasetListed event in the receipt.
// When a node drops the log, the client falls back to nextTokenId-1, which
// is correct only if no other listing landed in between; the fallback is
// logged as a warning for that reason.
//
// # Units
//
// The contract stores prices in attoFIL. FilToAttoFil and AttoFilToFil
// convert between the human FIL denomination and the 18-decimal base unit.
//
// # Networks
//
// The client is network-agnostic; the chain ID is discovered from the RPC
// endpoint when building transact options. Filecoin mainnet (314) and the
// Calibration testnet (314159) are the deployment targets.
package blockchain
