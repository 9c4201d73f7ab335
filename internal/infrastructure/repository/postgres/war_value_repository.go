package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/dugoutlabs/statlines/internal/domain/warvalue"
	qb "github.com/dugoutlabs/statlines/internal/platform/querybuilder"
)

type WarValueRepository struct {
	db *sqlx.DB
}

type warValueTableModel struct {
	PlayerID string  `db:"player_id"`
	YearID   int     `db:"year_id"`
	WAR      float64 `db:"war"`
}

func NewWarValueRepository(db *sqlx.DB) *WarValueRepository {
	return &WarValueRepository{db: db}
}

func (r *WarValueRepository) ListByPlayer(ctx context.Context, playerID string) ([]warvalue.SeasonValue, error) {
	query, args, err := qb.Select("player_id", "year_id", "COALESCE(war, 0) AS war").
		From("jeffbagwell_war").
		Where(qb.Eq("player_id", playerID)).
		OrderBy("year_id ASC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select war values by player query: %w", err)
	}

	var rows []warValueTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select war values by player: %w", err)
	}

	out := make([]warvalue.SeasonValue, 0, len(rows))
	for _, row := range rows {
		out = append(out, warvalue.SeasonValue{
			PlayerID: row.PlayerID,
			Year:     row.YearID,
			WAR:      row.WAR,
		})
	}
	return out, nil
}
