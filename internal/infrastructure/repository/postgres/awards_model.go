package postgres

import "database/sql"

type awardTableModel struct {
	PlayerID string         `db:"player_id"`
	AwardID  string         `db:"award_id"`
	YearID   int            `db:"year_id"`
	LgID     sql.NullString `db:"lg_id"`
}
