package warvalue

import "context"

// Repository describes supplementary value-metric reads. Enrichment only:
// a failed read degrades to zero values rather than failing the request.
type Repository interface {
	// ListByPlayer returns every value row for the player ordered by year
	// ascending.
	ListByPlayer(ctx context.Context, playerID string) ([]SeasonValue, error)
}
