package teamseason

import (
	"math"
	"testing"
)

func TestSumAndRates(t *testing.T) {
	t.Parallel()

	seasons := []Season{
		{TeamID: "BSN", Year: 1948, Games: 154, Wins: 91, Losses: 62, Runs: 739, RunsAllowed: 584},
		{TeamID: "ML1", Year: 1957, Games: 155, Wins: 95, Losses: 59, Runs: 772, RunsAllowed: 613},
		{TeamID: "ATL", Year: 1995, Games: 144, Wins: 90, Losses: 54, Runs: 645, RunsAllowed: 540},
	}

	total := Sum(seasons)
	if total.Seasons != 3 || total.Games != 453 || total.Wins != 276 || total.Losses != 175 {
		t.Fatalf("unexpected totals: %+v", total)
	}
	if got := total.WinPct(); math.Abs(got-276.0/451.0) > 1e-9 {
		t.Fatalf("WinPct = %v, want %v", got, 276.0/451.0)
	}
	if got := total.RunsPerGame(); math.Abs(got-2156.0/453.0) > 1e-9 {
		t.Fatalf("RunsPerGame = %v, want %v", got, 2156.0/453.0)
	}
}

func TestEmptyTotalsAreZero(t *testing.T) {
	t.Parallel()

	var total Totals
	if total.WinPct() != 0 || total.RunsPerGame() != 0 || total.RunsAllowedPerGame() != 0 {
		t.Fatal("empty totals must produce zero rates")
	}
}
