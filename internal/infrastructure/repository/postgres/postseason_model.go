package postgres

type seriesTableModel struct {
	YearID       int    `db:"year_id"`
	Round        string `db:"round"`
	TeamIDWinner string `db:"team_id_winner"`
	TeamIDLoser  string `db:"team_id_loser"`
	Wins         int    `db:"wins"`
	Losses       int    `db:"losses"`
}
