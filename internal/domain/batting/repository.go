package batting

import "context"

// Repository describes the batting reads the stats use cases need.
type Repository interface {
	// ListByPlayer returns every batting row for the player ordered by year
	// ascending. An empty slice means the player never batted.
	ListByPlayer(ctx context.Context, playerID string) ([]SeasonLine, error)
}
