// Package market orchestrates the dataset marketplace: it owns the
// submission pipeline and the enriched read path, and knows nothing about
// HTTP or about which concrete backends it drives.
//
// # Submission Pipeline
//
// Submit runs a strict sequence with no retries and no rollback:
//
//  1. Validate the submission (no side effects before this passes).
//  2. AI analysis of the debugging case.
//  3. Private payload upload to the content-addressed store (CID).
//  4. Public metadata upload to the object store (token URI).
//  5. On-chain listing through the ledger.
//
// A failure at any step surfaces as a single wrapped error; artifacts
// uploaded by earlier steps are left behind (the stores are content-addressed
// or keyed by timestamp, so orphans are harmless and cheap).
//
// # Read Path
//
// ListAll scans the ledger, dereferences each listing's token URI with
// bounded parallelism, and returns the merged view newest-first. A listing
// whose metadata cannot be fetched is skipped, not fatal: one bad document
// must not blank the whole marketplace.
//
// All collaborators are injected as interfaces; pkg/blockchain, pkg/chainsim,
// pkg/ai, pkg/storage and pkg/objectstore provide the production
// implementations.
package market
