package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/dugoutlabs/statlines/internal/domain/postseason"
	qb "github.com/dugoutlabs/statlines/internal/platform/querybuilder"
)

type PostseasonRepository struct {
	db *sqlx.DB
}

var seriesSelectColumns = []string{
	"year_id",
	"round",
	"team_id_winner",
	"team_id_loser",
	"COALESCE(wins, 0) AS wins",
	"COALESCE(losses, 0) AS losses",
}

func NewPostseasonRepository(db *sqlx.DB) *PostseasonRepository {
	return &PostseasonRepository{db: db}
}

func (r *PostseasonRepository) ListByTeams(ctx context.Context, teamIDs []string) ([]postseason.Series, error) {
	query, args, err := qb.Select(seriesSelectColumns...).From("lahman_seriespost").
		Where(qb.Or(
			qb.InStrings("team_id_winner", teamIDs),
			qb.InStrings("team_id_loser", teamIDs),
		)).
		OrderBy("year_id ASC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select series by teams query: %w", err)
	}

	return r.selectSeries(ctx, query, args)
}

func (r *PostseasonRepository) ListBetween(ctx context.Context, aIDs, bIDs []string) ([]postseason.Series, error) {
	query, args, err := qb.Select(seriesSelectColumns...).From("lahman_seriespost").
		Where(qb.Or(
			qb.And(qb.InStrings("team_id_winner", aIDs), qb.InStrings("team_id_loser", bIDs)),
			qb.And(qb.InStrings("team_id_winner", bIDs), qb.InStrings("team_id_loser", aIDs)),
		)).
		OrderBy("year_id ASC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select series between teams query: %w", err)
	}

	return r.selectSeries(ctx, query, args)
}

func (r *PostseasonRepository) selectSeries(ctx context.Context, query string, args []any) ([]postseason.Series, error) {
	var rows []seriesTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select postseason series: %w", err)
	}

	out := make([]postseason.Series, 0, len(rows))
	for _, row := range rows {
		out = append(out, postseason.Series{
			Year:   row.YearID,
			Round:  row.Round,
			Winner: row.TeamIDWinner,
			Loser:  row.TeamIDLoser,
			Wins:   row.Wins,
			Losses: row.Losses,
		})
	}
	return out, nil
}
