package postgres

type battingTableModel struct {
	PlayerID    string `db:"player_id"`
	YearID      int    `db:"year_id"`
	TeamID      string `db:"team_id"`
	Games       int    `db:"g"`
	AtBats      int    `db:"ab"`
	Runs        int    `db:"r"`
	Hits        int    `db:"h"`
	Doubles     int    `db:"doubles"`
	Triples     int    `db:"triples"`
	HomeRuns    int    `db:"hr"`
	RBI         int    `db:"rbi"`
	StolenBases int    `db:"sb"`
	Walks       int    `db:"bb"`
	Strikeouts  int    `db:"so"`
	HitByPitch  int    `db:"hbp"`
	SacFlies    int    `db:"sf"`
	SacHits     int    `db:"sh"`
}
