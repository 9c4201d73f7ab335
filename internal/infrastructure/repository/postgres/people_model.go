package postgres

import "database/sql"

type personTableModel struct {
	PlayerID   string         `db:"player_id"`
	NameFirst  string         `db:"name_first"`
	NameLast   string         `db:"name_last"`
	Debut      sql.NullString `db:"debut"`
	FinalGame  sql.NullString `db:"final_game"`
	BirthYear  sql.NullInt64  `db:"birth_year"`
	BirthMonth sql.NullInt64  `db:"birth_month"`
	BirthDay   sql.NullInt64  `db:"birth_day"`
}
