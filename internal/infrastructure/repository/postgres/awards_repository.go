package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/dugoutlabs/statlines/internal/domain/awards"
	qb "github.com/dugoutlabs/statlines/internal/platform/querybuilder"
)

type AwardsRepository struct {
	db *sqlx.DB
}

func NewAwardsRepository(db *sqlx.DB) *AwardsRepository {
	return &AwardsRepository{db: db}
}

func (r *AwardsRepository) ListByPlayer(ctx context.Context, playerID string) ([]awards.Award, error) {
	query, args, err := qb.Select("player_id", "award_id", "year_id", "lg_id").
		From("lahman_awardsplayers").
		Where(qb.Eq("player_id", playerID)).
		OrderBy("year_id ASC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select awards by player query: %w", err)
	}

	var rows []awardTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select awards by player: %w", err)
	}

	out := make([]awards.Award, 0, len(rows))
	for _, row := range rows {
		out = append(out, awards.Award{
			PlayerID: row.PlayerID,
			AwardID:  row.AwardID,
			Year:     row.YearID,
			League:   nullString(row.LgID),
		})
	}
	return out, nil
}

func (r *AwardsRepository) CountAllStarAppearances(ctx context.Context, playerID string) (int, error) {
	query, args, err := qb.Select("count(*)").
		From("lahman_allstarfull").
		Where(qb.Eq("player_id", playerID)).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build count all-star appearances query: %w", err)
	}

	var count int
	if err := r.db.GetContext(ctx, &count, query, args...); err != nil {
		return 0, fmt.Errorf("count all-star appearances: %w", err)
	}
	return count, nil
}
