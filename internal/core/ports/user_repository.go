package ports

import (
	"context"

	"agrimarket/internal/core/domain/model/kernel"
)

// UserRepository resolves opaque user identifiers (farmers, buyers).
// User account storage is an external collaborator; the fulfillment core only
// needs to check that a referenced identifier resolves.
type UserRepository interface {
	// Exists reports whether a user with the given identifier is known.
	Exists(ctx context.Context, id kernel.UUID) (bool, error)
}
