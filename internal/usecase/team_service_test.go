package usecase

import (
	"context"
	"errors"
	"sort"
	"testing"

	"github.com/dugoutlabs/statlines/internal/domain/postseason"
	"github.com/dugoutlabs/statlines/internal/domain/teamseason"
)

type stubTeamSeasonRepo struct {
	seasons  []teamseason.Season
	err      error
	gotIDs   []string
	gotYear  *int
	numCalls int
}

func (s *stubTeamSeasonRepo) ListByTeams(_ context.Context, teamIDs []string, year *int) ([]teamseason.Season, error) {
	s.gotIDs = teamIDs
	s.gotYear = year
	s.numCalls++
	if s.err != nil {
		return nil, s.err
	}
	if year != nil {
		var out []teamseason.Season
		for _, season := range s.seasons {
			if season.Year == *year {
				out = append(out, season)
			}
		}
		return out, nil
	}
	return s.seasons, nil
}

type stubPostseasonRepo struct {
	series  []postseason.Series
	err     error
	gotIDs  []string
	gotAIDs []string
	gotBIDs []string
}

func (s *stubPostseasonRepo) ListByTeams(_ context.Context, teamIDs []string) ([]postseason.Series, error) {
	s.gotIDs = teamIDs
	return s.series, s.err
}

func (s *stubPostseasonRepo) ListBetween(_ context.Context, aIDs, bIDs []string) ([]postseason.Series, error) {
	s.gotAIDs = aIDs
	s.gotBIDs = bIDs
	return s.series, s.err
}

func bravesSeasons() []teamseason.Season {
	return []teamseason.Season{
		{TeamID: "BSN", Year: 1948, Name: "Boston Braves", Games: 154, Wins: 91, Losses: 62, Runs: 739, RunsAllowed: 584},
		{TeamID: "ML1", Year: 1957, Name: "Milwaukee Braves", Games: 155, Wins: 95, Losses: 59, Runs: 772, RunsAllowed: 613},
		{TeamID: "ATL", Year: 1995, Name: "Atlanta Braves", Games: 144, Wins: 90, Losses: 54, Runs: 645, RunsAllowed: 540},
	}
}

func TestResolveTeamParsesYearAndCode(t *testing.T) {
	t.Parallel()

	svc := NewTeamService(&stubTeamSeasonRepo{}, &stubPostseasonRepo{}, nil)

	got, err := svc.ResolveTeam(context.Background(), "2004 Red Sox")
	if err != nil {
		t.Fatalf("ResolveTeam: %v", err)
	}
	if got.Code != "BOS" {
		t.Fatalf("code = %q, want BOS", got.Code)
	}
	if got.Year == nil || *got.Year != 2004 {
		t.Fatalf("year = %v, want 2004", got.Year)
	}
	if got.DisplayName != "2004 Boston Red Sox" {
		t.Fatalf("display name = %q", got.DisplayName)
	}
	if got.Logo.Primary == "" {
		t.Fatal("logo primary URL missing")
	}
}

func TestResolveTeamRequiresInput(t *testing.T) {
	t.Parallel()

	svc := NewTeamService(&stubTeamSeasonRepo{}, &stubPostseasonRepo{}, nil)

	if _, err := svc.ResolveTeam(context.Background(), "   "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}

func TestGetTeamStatsFranchiseSweepsLineage(t *testing.T) {
	t.Parallel()

	seasonRepo := &stubTeamSeasonRepo{seasons: bravesSeasons()}
	postRepo := &stubPostseasonRepo{series: []postseason.Series{
		{Year: 1948, Round: "WS", Winner: "CLE", Loser: "BSN", Wins: 4, Losses: 2},
		{Year: 1957, Round: "WS", Winner: "ML1", Loser: "NYA", Wins: 4, Losses: 3},
		{Year: 1995, Round: "WS", Winner: "ATL", Loser: "CLE", Wins: 4, Losses: 2},
	}}
	svc := NewTeamService(seasonRepo, postRepo, nil)

	got, err := svc.GetTeamStats(context.Background(), TeamStatsInput{TeamID: "atl", Mode: "franchise"})
	if err != nil {
		t.Fatalf("GetTeamStats: %v", err)
	}

	wantIDs := []string{"ATL", "BSN", "ML1"}
	gotIDs := append([]string(nil), seasonRepo.gotIDs...)
	sort.Strings(gotIDs)
	if len(gotIDs) != 3 || gotIDs[0] != wantIDs[0] || gotIDs[1] != wantIDs[1] || gotIDs[2] != wantIDs[2] {
		t.Fatalf("queried ids = %v, want full lineage %v", seasonRepo.gotIDs, wantIDs)
	}
	if seasonRepo.gotYear != nil {
		t.Fatalf("year filter = %v, want none in franchise mode", *seasonRepo.gotYear)
	}

	if got.Totals.Seasons != 3 || got.Totals.Wins != 276 || got.Totals.Losses != 175 {
		t.Fatalf("totals = %+v, want 3 seasons 276-175", got.Totals)
	}
	wantPct := float64(276) / float64(276+175)
	if !approxEqual(got.Totals.WinPct, wantPct) {
		t.Fatalf("win pct = %v, want %v", got.Totals.WinPct, wantPct)
	}
	wantRPG := float64(739+772+645) / float64(154+155+144)
	if !approxEqual(got.Totals.RunsPerGame, wantRPG) {
		t.Fatalf("rpg = %v, want %v", got.Totals.RunsPerGame, wantRPG)
	}

	if got.Postseason.Appearances != 3 || got.Postseason.SeriesWins != 2 || got.Postseason.Championships != 2 {
		t.Fatalf("postseason = %+v, want 3 appearances, 2 titles", got.Postseason)
	}
	if got.DisplayName != "Atlanta Braves (All-Time)" {
		t.Fatalf("display name = %q", got.DisplayName)
	}
}

func TestGetTeamStatsSeasonMode(t *testing.T) {
	t.Parallel()

	seasonRepo := &stubTeamSeasonRepo{seasons: bravesSeasons()}
	postRepo := &stubPostseasonRepo{}
	svc := NewTeamService(seasonRepo, postRepo, nil)

	year := 1957
	got, err := svc.GetTeamStats(context.Background(), TeamStatsInput{TeamID: "ATL", Mode: "season", Year: &year})
	if err != nil {
		t.Fatalf("GetTeamStats: %v", err)
	}
	if seasonRepo.gotYear == nil || *seasonRepo.gotYear != 1957 {
		t.Fatalf("year filter = %v, want 1957", seasonRepo.gotYear)
	}
	if len(got.Seasons) != 1 || got.Seasons[0].TeamID != "ML1" {
		t.Fatalf("seasons = %+v, want the single 1957 row", got.Seasons)
	}
	if got.Totals.Wins != 95 {
		t.Fatalf("wins = %d, want 95", got.Totals.Wins)
	}
	if got.DisplayName != "1957 Atlanta Braves" {
		t.Fatalf("display name = %q", got.DisplayName)
	}
	if postRepo.gotIDs != nil {
		t.Fatal("season mode must not load postseason history")
	}
}

func TestGetTeamStatsSeasonModeRequiresYear(t *testing.T) {
	t.Parallel()

	svc := NewTeamService(&stubTeamSeasonRepo{}, &stubPostseasonRepo{}, nil)

	if _, err := svc.GetTeamStats(context.Background(), TeamStatsInput{TeamID: "ATL", Mode: "season"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}

func TestGetTeamStatsUnknownTeam(t *testing.T) {
	t.Parallel()

	svc := NewTeamService(&stubTeamSeasonRepo{}, &stubPostseasonRepo{}, nil)

	if _, err := svc.GetTeamStats(context.Background(), TeamStatsInput{TeamID: "ZZZ"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestGetTeamStatsPostseasonFailureDegrades(t *testing.T) {
	t.Parallel()

	seasonRepo := &stubTeamSeasonRepo{seasons: bravesSeasons()}
	postRepo := &stubPostseasonRepo{err: errors.New("timeout")}
	svc := NewTeamService(seasonRepo, postRepo, nil)

	got, err := svc.GetTeamStats(context.Background(), TeamStatsInput{TeamID: "ATL"})
	if err != nil {
		t.Fatalf("GetTeamStats: %v", err)
	}
	if got.Postseason != (postseason.Record{}) {
		t.Fatalf("postseason = %+v, want empty record on failure", got.Postseason)
	}
	if got.Totals.Seasons != 3 {
		t.Fatalf("totals must survive a postseason failure, got %+v", got.Totals)
	}
}
