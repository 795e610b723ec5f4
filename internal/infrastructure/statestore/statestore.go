package statestore

import "context"

// Store is a string-keyed JSON blob store. It mirrors the storefront's
// durable client storage: every write is a full overwrite of the value
// under its key, the last writer wins, and there is no versioning.
type Store interface {
	// Put overwrites the value under key.
	Put(ctx context.Context, key string, value []byte) error

	// Get returns the value under key, and whether it exists.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Delete removes the value under key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}

// Well-known key prefixes, one per persisted storefront blob.
const (
	KeyCart       = "cart"
	KeyDiscount   = "discount"
	KeyWishlist   = "wishlist"
	KeyCheckout   = "checkoutCart"
	KeyNewsletter = "newsletter"
)

// Key builds the storage key for a blob scoped to a session or address.
func Key(prefix, scope string) string {
	return prefix + ":" + scope
}
