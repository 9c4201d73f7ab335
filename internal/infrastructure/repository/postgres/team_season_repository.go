package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/dugoutlabs/statlines/internal/domain/teamseason"
	qb "github.com/dugoutlabs/statlines/internal/platform/querybuilder"
)

type TeamSeasonRepository struct {
	db *sqlx.DB
}

var teamSeasonSelectColumns = []string{
	"team_id",
	"year_id",
	"name",
	"COALESCE(g, 0) AS g",
	"COALESCE(w, 0) AS w",
	"COALESCE(l, 0) AS l",
	"COALESCE(r, 0) AS r",
	"COALESCE(ra, 0) AS ra",
}

func NewTeamSeasonRepository(db *sqlx.DB) *TeamSeasonRepository {
	return &TeamSeasonRepository{db: db}
}

func (r *TeamSeasonRepository) ListByTeams(ctx context.Context, teamIDs []string, year *int) ([]teamseason.Season, error) {
	builder := qb.Select(teamSeasonSelectColumns...).From("lahman_teams").
		Where(qb.InStrings("team_id", teamIDs)).
		OrderBy("year_id ASC")
	if year != nil {
		builder = builder.Where(qb.Eq("year_id", *year))
	}

	query, args, err := builder.ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select team seasons query: %w", err)
	}

	var rows []teamSeasonTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select team seasons: %w", err)
	}

	out := make([]teamseason.Season, 0, len(rows))
	for _, row := range rows {
		out = append(out, teamseason.Season{
			TeamID:      row.TeamID,
			Year:        row.YearID,
			Name:        nullString(row.Name),
			Games:       row.Games,
			Wins:        row.Wins,
			Losses:      row.Losses,
			Runs:        row.Runs,
			RunsAllowed: row.RunsAllowed,
		})
	}
	return out, nil
}
