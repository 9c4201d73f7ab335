package gamelog

// Row is one team's side of one regular-season game. The dataset stores two
// rows per game, one for each participant, so any symmetric count over a
// matchup sees every game exactly twice.
type Row struct {
	TeamID     string
	OpponentID string
	Year       int
	Date       string
	Win        bool
}

// Tally is a head-to-head regular-season record between two identifier sets.
type Tally struct {
	TotalGames int
	AWins      int
	BWins      int
}

// Count folds matchup rows into a tally. Rows must already be restricted to
// games between the two sets; the two-rows-per-game layout is normalized by
// halving the row count. Wins are attributed from side A's rows only so a
// tie row never double-counts.
func Count(rows []Row, aIDs []string) Tally {
	inA := map[string]struct{}{}
	for _, id := range aIDs {
		inA[id] = struct{}{}
	}

	var t Tally
	for _, r := range rows {
		if _, ok := inA[r.TeamID]; ok {
			if r.Win {
				t.AWins++
			}
		} else if r.Win {
			t.BWins++
		}
	}
	t.TotalGames = len(rows) / 2
	return t
}
