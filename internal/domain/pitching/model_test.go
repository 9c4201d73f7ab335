package pitching

import (
	"math"
	"testing"
)

func TestCareerDerivedRates(t *testing.T) {
	t.Parallel()

	total := Totals{
		IPOuts:     600,
		EarnedRuns: 80,
		Hits:       180,
		Walks:      60,
	}

	if got := total.InningsPitched(); got != 200 {
		t.Fatalf("InningsPitched = %v, want 200", got)
	}
	if got := total.ERA(); math.Abs(got-3.60) > 1e-9 {
		t.Fatalf("ERA = %v, want 3.60", got)
	}
	if got := total.WHIP(); math.Abs(got-1.20) > 1e-9 {
		t.Fatalf("WHIP = %v, want 1.20", got)
	}
}

func TestZeroInningsYieldsZeroRates(t *testing.T) {
	t.Parallel()

	total := Totals{EarnedRuns: 4, Hits: 3, Walks: 2}
	if total.ERA() != 0 || total.WHIP() != 0 {
		t.Fatalf("no recorded outs must produce zero rates, got ERA=%v WHIP=%v", total.ERA(), total.WHIP())
	}
}

func TestSumCountsDistinctSeasons(t *testing.T) {
	t.Parallel()

	lines := []SeasonLine{
		{PlayerID: "p1", Year: 2004, TeamID: "BOS", IPOuts: 300, Wins: 10},
		{PlayerID: "p1", Year: 2004, TeamID: "NYA", IPOuts: 150, Wins: 5},
		{PlayerID: "p1", Year: 2005, TeamID: "NYA", IPOuts: 540, Wins: 14},
	}

	total := Sum(lines)
	if total.Seasons != 2 {
		t.Fatalf("Seasons = %d, want 2", total.Seasons)
	}
	if total.IPOuts != 990 || total.Wins != 29 {
		t.Fatalf("unexpected counting totals: %+v", total)
	}
}
