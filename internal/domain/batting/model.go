package batting

// SeasonLine is one raw batting row for a (player, year, team) combination.
// Rows are immutable dataset facts; aggregation only ever reads them.
type SeasonLine struct {
	PlayerID    string
	Year        int
	TeamID      string
	Games       int
	AtBats      int
	Runs        int
	Hits        int
	Doubles     int
	Triples     int
	HomeRuns    int
	RBI         int
	StolenBases int
	Walks       int
	Strikeouts  int
	HitByPitch  int
	SacFlies    int
	SacHits     int
}

// Totals returns the line's counting stats as a single-season fold so the
// derived-rate math below applies to season rows and careers alike.
func (l SeasonLine) Totals() Totals {
	return Totals{
		Seasons:     1,
		Games:       l.Games,
		AtBats:      l.AtBats,
		Runs:        l.Runs,
		Hits:        l.Hits,
		Doubles:     l.Doubles,
		Triples:     l.Triples,
		HomeRuns:    l.HomeRuns,
		RBI:         l.RBI,
		StolenBases: l.StolenBases,
		Walks:       l.Walks,
		Strikeouts:  l.Strikeouts,
		HitByPitch:  l.HitByPitch,
		SacFlies:    l.SacFlies,
		SacHits:     l.SacHits,
	}
}

// Totals is the additive fold over season lines. Seasons counts distinct
// years, not rows, so mid-season trades do not inflate the classifier input.
type Totals struct {
	Seasons     int
	Games       int
	AtBats      int
	Runs        int
	Hits        int
	Doubles     int
	Triples     int
	HomeRuns    int
	RBI         int
	StolenBases int
	Walks       int
	Strikeouts  int
	HitByPitch  int
	SacFlies    int
	SacHits     int
}

// Sum folds season lines into career counting totals.
func Sum(lines []SeasonLine) Totals {
	var t Totals
	years := map[int]struct{}{}
	for _, l := range lines {
		years[l.Year] = struct{}{}
		t.Games += l.Games
		t.AtBats += l.AtBats
		t.Runs += l.Runs
		t.Hits += l.Hits
		t.Doubles += l.Doubles
		t.Triples += l.Triples
		t.HomeRuns += l.HomeRuns
		t.RBI += l.RBI
		t.StolenBases += l.StolenBases
		t.Walks += l.Walks
		t.Strikeouts += l.Strikeouts
		t.HitByPitch += l.HitByPitch
		t.SacFlies += l.SacFlies
		t.SacHits += l.SacHits
	}
	t.Seasons = len(years)
	return t
}

// Singles backs out singles from the extra-base hit breakdown.
func (t Totals) Singles() int {
	return t.Hits - t.Doubles - t.Triples - t.HomeRuns
}

// TotalBases weights each hit type by its base value.
func (t Totals) TotalBases() int {
	return t.Singles() + 2*t.Doubles + 3*t.Triples + 4*t.HomeRuns
}

// PlateAppearances approximates PA from the counting stats the dataset
// carries (AB + BB + HBP + SF + SH).
func (t Totals) PlateAppearances() int {
	return t.AtBats + t.Walks + t.HitByPitch + t.SacFlies + t.SacHits
}

// Average is H/AB with a zero guard: an empty denominator yields 0, never an
// error or NaN.
func (t Totals) Average() float64 {
	if t.AtBats == 0 {
		return 0
	}
	return float64(t.Hits) / float64(t.AtBats)
}

// OnBasePct is (H+BB+HBP)/(AB+BB+HBP+SF), zero-guarded.
func (t Totals) OnBasePct() float64 {
	denom := t.AtBats + t.Walks + t.HitByPitch + t.SacFlies
	if denom == 0 {
		return 0
	}
	return float64(t.Hits+t.Walks+t.HitByPitch) / float64(denom)
}

// SluggingPct is total bases per at-bat, zero-guarded.
func (t Totals) SluggingPct() float64 {
	if t.AtBats == 0 {
		return 0
	}
	return float64(t.TotalBases()) / float64(t.AtBats)
}

// OPS is on-base plus slugging.
func (t Totals) OPS() float64 {
	return t.OnBasePct() + t.SluggingPct()
}
