package postgres

type pitchingTableModel struct {
	PlayerID      string `db:"player_id"`
	YearID        int    `db:"year_id"`
	TeamID        string `db:"team_id"`
	Wins          int    `db:"w"`
	Losses        int    `db:"l"`
	Games         int    `db:"g"`
	GamesStarted  int    `db:"gs"`
	CompleteGames int    `db:"cg"`
	Shutouts      int    `db:"sho"`
	Saves         int    `db:"sv"`
	IPOuts        int    `db:"ip_outs"`
	Hits          int    `db:"h"`
	EarnedRuns    int    `db:"er"`
	HomeRuns      int    `db:"hr"`
	Walks         int    `db:"bb"`
	Strikeouts    int    `db:"so"`
}
