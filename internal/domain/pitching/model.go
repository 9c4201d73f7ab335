package pitching

// SeasonLine is one raw pitching row for a (player, year, team) combination.
type SeasonLine struct {
	PlayerID      string
	Year          int
	TeamID        string
	Wins          int
	Losses        int
	Games         int
	GamesStarted  int
	CompleteGames int
	Shutouts      int
	Saves         int
	IPOuts        int
	Hits          int
	EarnedRuns    int
	HomeRuns      int
	Walks         int
	Strikeouts    int
}

// Totals returns the line as a single-season fold.
func (l SeasonLine) Totals() Totals {
	return Totals{
		Seasons:       1,
		Wins:          l.Wins,
		Losses:        l.Losses,
		Games:         l.Games,
		GamesStarted:  l.GamesStarted,
		CompleteGames: l.CompleteGames,
		Shutouts:      l.Shutouts,
		Saves:         l.Saves,
		IPOuts:        l.IPOuts,
		Hits:          l.Hits,
		EarnedRuns:    l.EarnedRuns,
		HomeRuns:      l.HomeRuns,
		Walks:         l.Walks,
		Strikeouts:    l.Strikeouts,
	}
}

// Totals is the additive fold over pitching season lines. Seasons counts
// distinct years.
type Totals struct {
	Seasons       int
	Wins          int
	Losses        int
	Games         int
	GamesStarted  int
	CompleteGames int
	Shutouts      int
	Saves         int
	IPOuts        int
	Hits          int
	EarnedRuns    int
	HomeRuns      int
	Walks         int
	Strikeouts    int
}

// Sum folds season lines into career counting totals.
func Sum(lines []SeasonLine) Totals {
	var t Totals
	years := map[int]struct{}{}
	for _, l := range lines {
		years[l.Year] = struct{}{}
		t.Wins += l.Wins
		t.Losses += l.Losses
		t.Games += l.Games
		t.GamesStarted += l.GamesStarted
		t.CompleteGames += l.CompleteGames
		t.Shutouts += l.Shutouts
		t.Saves += l.Saves
		t.IPOuts += l.IPOuts
		t.Hits += l.Hits
		t.EarnedRuns += l.EarnedRuns
		t.HomeRuns += l.HomeRuns
		t.Walks += l.Walks
		t.Strikeouts += l.Strikeouts
	}
	t.Seasons = len(years)
	return t
}

// InningsPitched converts recorded outs to innings.
func (t Totals) InningsPitched() float64 {
	return float64(t.IPOuts) / 3
}

// ERA is earned runs per nine innings, zero-guarded against pitchers with no
// recorded outs.
func (t Totals) ERA() float64 {
	ip := t.InningsPitched()
	if ip == 0 {
		return 0
	}
	return 9 * float64(t.EarnedRuns) / ip
}

// WHIP is walks plus hits per inning pitched, zero-guarded.
func (t Totals) WHIP() float64 {
	ip := t.InningsPitched()
	if ip == 0 {
		return 0
	}
	return float64(t.Hits+t.Walks) / ip
}
