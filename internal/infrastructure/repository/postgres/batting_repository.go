package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/dugoutlabs/statlines/internal/domain/batting"
	qb "github.com/dugoutlabs/statlines/internal/platform/querybuilder"
)

type BattingRepository struct {
	db *sqlx.DB
}

var battingSelectColumns = []string{
	"player_id",
	"year_id",
	"team_id",
	"COALESCE(g, 0) AS g",
	"COALESCE(ab, 0) AS ab",
	"COALESCE(r, 0) AS r",
	"COALESCE(h, 0) AS h",
	"COALESCE(doubles, 0) AS doubles",
	"COALESCE(triples, 0) AS triples",
	"COALESCE(hr, 0) AS hr",
	"COALESCE(rbi, 0) AS rbi",
	"COALESCE(sb, 0) AS sb",
	"COALESCE(bb, 0) AS bb",
	"COALESCE(so, 0) AS so",
	"COALESCE(hbp, 0) AS hbp",
	"COALESCE(sf, 0) AS sf",
	"COALESCE(sh, 0) AS sh",
}

func NewBattingRepository(db *sqlx.DB) *BattingRepository {
	return &BattingRepository{db: db}
}

func (r *BattingRepository) ListByPlayer(ctx context.Context, playerID string) ([]batting.SeasonLine, error) {
	query, args, err := qb.Select(battingSelectColumns...).From("lahman_batting").
		Where(qb.Eq("player_id", playerID)).
		OrderBy("year_id ASC", "team_id ASC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select batting by player query: %w", err)
	}

	var rows []battingTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select batting by player: %w", err)
	}

	out := make([]batting.SeasonLine, 0, len(rows))
	for _, row := range rows {
		out = append(out, batting.SeasonLine{
			PlayerID:    row.PlayerID,
			Year:        row.YearID,
			TeamID:      row.TeamID,
			Games:       row.Games,
			AtBats:      row.AtBats,
			Runs:        row.Runs,
			Hits:        row.Hits,
			Doubles:     row.Doubles,
			Triples:     row.Triples,
			HomeRuns:    row.HomeRuns,
			RBI:         row.RBI,
			StolenBases: row.StolenBases,
			Walks:       row.Walks,
			Strikeouts:  row.Strikeouts,
			HitByPitch:  row.HitByPitch,
			SacFlies:    row.SacFlies,
			SacHits:     row.SacHits,
		})
	}
	return out, nil
}
