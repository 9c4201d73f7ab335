package postseason

import "context"

// Repository describes postseason-series reads. Callers pass full lineage
// identifier sets so one query covers relocations and renamings.
type Repository interface {
	// ListByTeams returns every series in which any of the team codes
	// appears as winner or loser, ordered by year ascending.
	ListByTeams(ctx context.Context, teamIDs []string) ([]Series, error)
	// ListBetween returns every series contested between the two identifier
	// sets, ordered by year ascending.
	ListBetween(ctx context.Context, aIDs, bIDs []string) ([]Series, error)
}
