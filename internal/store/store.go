// Package store provides the persistent key-value store backing all Binder
// state that survives a session: generated code sequences and the vendor
// master sheet. Values are opaque strings (JSON-encoded record lists).
package store

import "context"

// Well-known keys used by the core services.
const (
	KeyBuyerCodes  = "buyerCodes"
	KeyVendorCodes = "vendorCodes"
)

// KeyValueStore is a persistent string-keyed mapping scoped to one device.
// Get reports whether the key was present; a missing key is not an error.
type KeyValueStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
	Close() error
}
