// Package order provides the domain model for completed label purchases.
//
// The package includes:
//   - Label: one purchased shipping label with its tracking metadata
//   - Record: the finalized order stored under its idempotency key
//   - PurchaseResult: the outcome of a sequential purchase run, carrying the
//     labels completed before any failure together with the terminal error
//
// Key business rules:
//   - A Record is created exactly once per idempotency key and never mutated
//     after creation; repeated purchase attempts against the same key are
//     rejected before any carrier call is made
//   - A failed purchase sequence does not discard labels already issued for
//     earlier packages; they are sunk costs the operator reconciles manually
package order
