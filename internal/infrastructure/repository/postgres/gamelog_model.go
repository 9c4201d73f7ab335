package postgres

import "database/sql"

type gameLogTableModel struct {
	Team   string         `db:"team"`
	Opp    string         `db:"opp"`
	YearID int            `db:"year_id"`
	Date   sql.NullString `db:"date"`
	Win    bool           `db:"win"`
}
