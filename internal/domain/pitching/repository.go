package pitching

import "context"

// Repository describes the pitching reads the stats use cases need.
type Repository interface {
	// ListByPlayer returns every pitching row for the player ordered by year
	// ascending. An empty slice means the player never pitched.
	ListByPlayer(ctx context.Context, playerID string) ([]SeasonLine, error)
}
