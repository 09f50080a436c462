// internal/services/errors.go
package services

import "errors"

// Error kinds surfaced to handlers. Services wrap these with context
// (fmt.Errorf("product %d: %w", id, ErrNotFound)) so callers can match
// with errors.Is and map the kind to an HTTP status.
var (
	// ErrValidation marks malformed or out-of-range input, rejected
	// before any storage access.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound marks a missing referenced record (user, product,
	// parent category).
	ErrNotFound = errors.New("not found")

	// ErrConflict marks a uniqueness violation (slug, sku, email,
	// username) so callers can render "already exists" messaging.
	ErrConflict = errors.New("already exists")
)
