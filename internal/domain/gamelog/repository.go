package gamelog

import "context"

// Repository describes regular-season game-log reads.
type Repository interface {
	// ListMeetings returns every row where a team from one identifier set
	// faced a team from the other, in either home/away orientation. Both
	// sides of each game are returned. A non-nil year restricts to that
	// season.
	ListMeetings(ctx context.Context, aIDs, bIDs []string, year *int) ([]Row, error)
}
