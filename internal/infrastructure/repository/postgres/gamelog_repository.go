package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/dugoutlabs/statlines/internal/domain/gamelog"
	qb "github.com/dugoutlabs/statlines/internal/platform/querybuilder"
)

type GameLogRepository struct {
	db *sqlx.DB
}

var gameLogSelectColumns = []string{
	"team",
	"opp",
	"year_id",
	"date::text AS date",
	"win",
}

func NewGameLogRepository(db *sqlx.DB) *GameLogRepository {
	return &GameLogRepository{db: db}
}

func (r *GameLogRepository) ListMeetings(ctx context.Context, aIDs, bIDs []string, year *int) ([]gamelog.Row, error) {
	builder := qb.Select(gameLogSelectColumns...).From("retrosheet_teamstats").
		Where(qb.Or(
			qb.And(qb.InStrings("team", aIDs), qb.InStrings("opp", bIDs)),
			qb.And(qb.InStrings("team", bIDs), qb.InStrings("opp", aIDs)),
		)).
		OrderBy("year_id ASC", "date ASC")
	if year != nil {
		builder = builder.Where(qb.Eq("year_id", *year))
	}

	query, args, err := builder.ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select matchup games query: %w", err)
	}

	var rows []gameLogTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select matchup games: %w", err)
	}

	out := make([]gamelog.Row, 0, len(rows))
	for _, row := range rows {
		out = append(out, gamelog.Row{
			TeamID:     row.Team,
			OpponentID: row.Opp,
			Year:       row.YearID,
			Date:       nullString(row.Date),
			Win:        row.Win,
		})
	}
	return out, nil
}
