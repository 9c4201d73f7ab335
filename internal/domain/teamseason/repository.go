package teamseason

import "context"

// Repository describes team-season reads. Callers pass the full set of
// historical team codes for a franchise so one widened query covers the
// whole lineage.
type Repository interface {
	// ListByTeams returns seasons for any of the team codes, ordered by year
	// ascending. A non-nil year restricts the result to that single season.
	ListByTeams(ctx context.Context, teamIDs []string, year *int) ([]Season, error)
}
