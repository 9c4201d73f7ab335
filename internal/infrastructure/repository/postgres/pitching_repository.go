package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/dugoutlabs/statlines/internal/domain/pitching"
	qb "github.com/dugoutlabs/statlines/internal/platform/querybuilder"
)

type PitchingRepository struct {
	db *sqlx.DB
}

var pitchingSelectColumns = []string{
	"player_id",
	"year_id",
	"team_id",
	"COALESCE(w, 0) AS w",
	"COALESCE(l, 0) AS l",
	"COALESCE(g, 0) AS g",
	"COALESCE(gs, 0) AS gs",
	"COALESCE(cg, 0) AS cg",
	"COALESCE(sho, 0) AS sho",
	"COALESCE(sv, 0) AS sv",
	"COALESCE(ip_outs, 0) AS ip_outs",
	"COALESCE(h, 0) AS h",
	"COALESCE(er, 0) AS er",
	"COALESCE(hr, 0) AS hr",
	"COALESCE(bb, 0) AS bb",
	"COALESCE(so, 0) AS so",
}

func NewPitchingRepository(db *sqlx.DB) *PitchingRepository {
	return &PitchingRepository{db: db}
}

func (r *PitchingRepository) ListByPlayer(ctx context.Context, playerID string) ([]pitching.SeasonLine, error) {
	query, args, err := qb.Select(pitchingSelectColumns...).From("lahman_pitching").
		Where(qb.Eq("player_id", playerID)).
		OrderBy("year_id ASC", "team_id ASC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select pitching by player query: %w", err)
	}

	var rows []pitchingTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select pitching by player: %w", err)
	}

	out := make([]pitching.SeasonLine, 0, len(rows))
	for _, row := range rows {
		out = append(out, pitching.SeasonLine{
			PlayerID:      row.PlayerID,
			Year:          row.YearID,
			TeamID:        row.TeamID,
			Wins:          row.Wins,
			Losses:        row.Losses,
			Games:         row.Games,
			GamesStarted:  row.GamesStarted,
			CompleteGames: row.CompleteGames,
			Shutouts:      row.Shutouts,
			Saves:         row.Saves,
			IPOuts:        row.IPOuts,
			Hits:          row.Hits,
			EarnedRuns:    row.EarnedRuns,
			HomeRuns:      row.HomeRuns,
			Walks:         row.Walks,
			Strikeouts:    row.Strikeouts,
		})
	}
	return out, nil
}
