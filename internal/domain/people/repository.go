package people

import "context"

// Repository describes biographical lookups needed by the resolver.
type Repository interface {
	// FindByName returns every player whose first and last name match the
	// arguments case-insensitively, ordered by debut date ascending with
	// unknown debuts last.
	FindByName(ctx context.Context, first, last string) ([]Player, error)
	// GetByID returns the player for a resolved identifier.
	GetByID(ctx context.Context, playerID string) (Player, bool, error)
}
