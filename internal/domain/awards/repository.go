package awards

import "context"

// Repository describes award and all-star reads. These feed enrichment only:
// callers degrade to empty values when a read fails.
type Repository interface {
	// ListByPlayer returns every award row for the player ordered by year
	// ascending.
	ListByPlayer(ctx context.Context, playerID string) ([]Award, error)
	// CountAllStarAppearances returns the number of all-star selections for
	// the player.
	CountAllStarAppearances(ctx context.Context, playerID string) (int, error)
}
