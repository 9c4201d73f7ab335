package teamseason

// Season is one team-year record. (TeamID, Year) is unique in the dataset.
type Season struct {
	TeamID      string
	Year        int
	Name        string
	Games       int
	Wins        int
	Losses      int
	Runs        int
	RunsAllowed int
}

// Totals returns the season as a single-year fold.
func (s Season) Totals() Totals {
	return Totals{
		Seasons:     1,
		Games:       s.Games,
		Wins:        s.Wins,
		Losses:      s.Losses,
		Runs:        s.Runs,
		RunsAllowed: s.RunsAllowed,
	}
}

// Totals is the additive fold over team seasons, e.g. a full franchise
// history across every historical team code.
type Totals struct {
	Seasons     int
	Games       int
	Wins        int
	Losses      int
	Runs        int
	RunsAllowed int
}

// Sum folds seasons into franchise totals. Seasons counts rows: a franchise
// fields at most one club per year, so rows and years coincide here.
func Sum(seasons []Season) Totals {
	var t Totals
	for _, s := range seasons {
		t.Seasons++
		t.Games += s.Games
		t.Wins += s.Wins
		t.Losses += s.Losses
		t.Runs += s.Runs
		t.RunsAllowed += s.RunsAllowed
	}
	return t
}

// WinPct is wins over decisions, zero-guarded.
func (t Totals) WinPct() float64 {
	decisions := t.Wins + t.Losses
	if decisions == 0 {
		return 0
	}
	return float64(t.Wins) / float64(decisions)
}

// RunsPerGame is runs scored per game played, zero-guarded.
func (t Totals) RunsPerGame() float64 {
	if t.Games == 0 {
		return 0
	}
	return float64(t.Runs) / float64(t.Games)
}

// RunsAllowedPerGame is runs conceded per game played, zero-guarded.
func (t Totals) RunsAllowedPerGame() float64 {
	if t.Games == 0 {
		return 0
	}
	return float64(t.RunsAllowed) / float64(t.Games)
}
