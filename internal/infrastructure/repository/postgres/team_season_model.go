package postgres

import "database/sql"

type teamSeasonTableModel struct {
	TeamID      string         `db:"team_id"`
	YearID      int            `db:"year_id"`
	Name        sql.NullString `db:"name"`
	Games       int            `db:"g"`
	Wins        int            `db:"w"`
	Losses      int            `db:"l"`
	Runs        int            `db:"r"`
	RunsAllowed int            `db:"ra"`
}
