package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/dugoutlabs/statlines/internal/domain/people"
	qb "github.com/dugoutlabs/statlines/internal/platform/querybuilder"
)

type PeopleRepository struct {
	db *sqlx.DB
}

var peopleSelectColumns = []string{
	"player_id",
	"name_first",
	"name_last",
	"debut::text AS debut",
	"final_game::text AS final_game",
	"birth_year",
	"birth_month",
	"birth_day",
}

func NewPeopleRepository(db *sqlx.DB) *PeopleRepository {
	return &PeopleRepository{db: db}
}

func (r *PeopleRepository) FindByName(ctx context.Context, first, last string) ([]people.Player, error) {
	query, args, err := qb.Select(peopleSelectColumns...).From("lahman_people").
		Where(
			qb.EqFold("name_first", first),
			qb.EqFold("name_last", last),
		).
		OrderBy("debut ASC NULLS LAST", "player_id ASC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select people by name query: %w", err)
	}

	var rows []personTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select people by name: %w", err)
	}

	out := make([]people.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, toPlayer(row))
	}
	return out, nil
}

func (r *PeopleRepository) GetByID(ctx context.Context, playerID string) (people.Player, bool, error) {
	query, args, err := qb.Select(peopleSelectColumns...).From("lahman_people").
		Where(qb.Eq("player_id", playerID)).
		Limit(1).
		ToSQL()
	if err != nil {
		return people.Player{}, false, fmt.Errorf("build select person by id query: %w", err)
	}

	var row personTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return people.Player{}, false, nil
		}
		return people.Player{}, false, fmt.Errorf("select person by id: %w", err)
	}
	return toPlayer(row), true, nil
}

func toPlayer(row personTableModel) people.Player {
	return people.Player{
		ID:         row.PlayerID,
		FirstName:  row.NameFirst,
		LastName:   row.NameLast,
		Debut:      nullString(row.Debut),
		FinalGame:  nullString(row.FinalGame),
		BirthYear:  nullInt(row.BirthYear),
		BirthMonth: nullInt(row.BirthMonth),
		BirthDay:   nullInt(row.BirthDay),
	}
}
