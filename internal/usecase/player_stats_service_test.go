package usecase

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/dugoutlabs/statlines/internal/domain/awards"
	"github.com/dugoutlabs/statlines/internal/domain/batting"
	"github.com/dugoutlabs/statlines/internal/domain/people"
	"github.com/dugoutlabs/statlines/internal/domain/pitching"
	"github.com/dugoutlabs/statlines/internal/domain/postseason"
	"github.com/dugoutlabs/statlines/internal/domain/warvalue"
)

type stubBattingRepo struct {
	lines []batting.SeasonLine
	err   error
}

func (s *stubBattingRepo) ListByPlayer(context.Context, string) ([]batting.SeasonLine, error) {
	return s.lines, s.err
}

type stubPitchingRepo struct {
	lines []pitching.SeasonLine
	err   error
}

func (s *stubPitchingRepo) ListByPlayer(context.Context, string) ([]pitching.SeasonLine, error) {
	return s.lines, s.err
}

type stubWarRepo struct {
	values []warvalue.SeasonValue
	err    error
}

func (s *stubWarRepo) ListByPlayer(context.Context, string) ([]warvalue.SeasonValue, error) {
	return s.values, s.err
}

type stubAwardsRepo struct {
	rows     []awards.Award
	allStars int
	rowsErr  error
	countErr error
}

func (s *stubAwardsRepo) ListByPlayer(context.Context, string) ([]awards.Award, error) {
	return s.rows, s.rowsErr
}

func (s *stubAwardsRepo) CountAllStarAppearances(context.Context, string) (int, error) {
	return s.allStars, s.countErr
}

type stubHeadshots struct {
	url string
	err error
}

func (s *stubHeadshots) LookupURL(context.Context, people.Player) (string, error) {
	return s.url, s.err
}

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func newStatsService(peopleRepo *stubPeopleRepo, b *stubBattingRepo, p *stubPitchingRepo, w *stubWarRepo, a *stubAwardsRepo, h HeadshotLookup) *PlayerStatsService {
	return NewPlayerStatsService(peopleRepo, b, p, w, a, &stubPostseasonRepo{}, h, nil, 4)
}

func TestGetPlayerStatsCareerHitter(t *testing.T) {
	t.Parallel()

	peopleRepo := &stubPeopleRepo{byID: map[string]people.Player{
		"aaronha01": {ID: "aaronha01", FirstName: "Hank", LastName: "Aaron", Debut: "1954-04-13", FinalGame: "1976-10-03"},
	}}
	battingRepo := &stubBattingRepo{lines: []batting.SeasonLine{
		{PlayerID: "aaronha01", Year: 1957, TeamID: "ML1", Games: 151, AtBats: 400, Hits: 120, Doubles: 20, HomeRuns: 15, Walks: 40, HitByPitch: 2, SacFlies: 3},
		{PlayerID: "aaronha01", Year: 1958, TeamID: "ML1", Games: 153, AtBats: 600, Hits: 180, Doubles: 30, Triples: 5, HomeRuns: 25, Walks: 60, HitByPitch: 3, SacFlies: 7},
		{PlayerID: "aaronha01", Year: 1959, TeamID: "ML1", Games: 154, AtBats: 500, Hits: 150, Doubles: 25, HomeRuns: 20, Walks: 50, HitByPitch: 0, SacFlies: 5},
	}}
	warRepo := &stubWarRepo{values: []warvalue.SeasonValue{
		{PlayerID: "aaronha01", Year: 1957, WAR: 8.0},
		{PlayerID: "aaronha01", Year: 1958, WAR: 7.3},
	}}
	awardsRepo := &stubAwardsRepo{
		rows:     []awards.Award{{PlayerID: "aaronha01", AwardID: "Most Valuable Player", Year: 1957, League: "NL"}},
		allStars: 25,
	}
	svc := newStatsService(peopleRepo, battingRepo, &stubPitchingRepo{}, warRepo, awardsRepo, &stubHeadshots{url: "https://img.example/aaron.png"})

	got, err := svc.GetPlayerStats(context.Background(), PlayerStatsInput{PlayerID: "aaronha01"})
	if err != nil {
		t.Fatalf("GetPlayerStats: %v", err)
	}
	if got.Role != people.RoleHitter {
		t.Fatalf("role = %q, want hitter", got.Role)
	}
	if got.Mode != ModeCareer {
		t.Fatalf("mode = %q, want default career", got.Mode)
	}
	if got.Batting == nil {
		t.Fatal("career batting stats missing")
	}
	if got.Batting.AtBats != 1500 || got.Batting.Hits != 450 {
		t.Fatalf("totals = %d AB %d H, want 1500/450", got.Batting.AtBats, got.Batting.Hits)
	}
	// Rates come from the summed counts, not averaged season rates.
	if !approxEqual(got.Batting.Average, 0.3) {
		t.Fatalf("average = %v, want .300", got.Batting.Average)
	}
	wantOBP := float64(450+150+5) / float64(1500+150+5+15)
	if !approxEqual(got.Batting.OnBasePct, wantOBP) {
		t.Fatalf("obp = %v, want %v", got.Batting.OnBasePct, wantOBP)
	}
	if !approxEqual(got.Batting.OPS, got.Batting.OnBasePct+got.Batting.SluggingPct) {
		t.Fatalf("ops = %v, want obp+slg", got.Batting.OPS)
	}
	if !approxEqual(got.CareerWAR, 15.3) {
		t.Fatalf("career war = %v, want 15.3", got.CareerWAR)
	}
	if len(got.Awards) != 1 || got.Awards[0].Name != "MVP" {
		t.Fatalf("awards = %+v, want one MVP entry", got.Awards)
	}
	if got.AllStarAppearances != 25 {
		t.Fatalf("all-star appearances = %d, want 25", got.AllStarAppearances)
	}
	if got.Player.PhotoURL != "https://img.example/aaron.png" {
		t.Fatalf("photo = %q", got.Player.PhotoURL)
	}
}

func TestGetPlayerStatsSeasonModeMergesTradeStints(t *testing.T) {
	t.Parallel()

	peopleRepo := &stubPeopleRepo{byID: map[string]people.Player{
		"wandeju01": {ID: "wandeju01", FirstName: "Juan", LastName: "Wanderer"},
	}}
	battingRepo := &stubBattingRepo{lines: []batting.SeasonLine{
		{PlayerID: "wandeju01", Year: 1998, TeamID: "SEA", Games: 60, AtBats: 200, Hits: 50},
		{PlayerID: "wandeju01", Year: 1998, TeamID: "HOU", Games: 40, AtBats: 100, Hits: 40},
		{PlayerID: "wandeju01", Year: 1999, TeamID: "HOU", Games: 150, AtBats: 550, Hits: 170},
		{PlayerID: "wandeju01", Year: 2000, TeamID: "HOU", Games: 140, AtBats: 500, Hits: 140},
	}}
	warRepo := &stubWarRepo{values: []warvalue.SeasonValue{
		{PlayerID: "wandeju01", Year: 1999, WAR: 4.5},
	}}
	svc := newStatsService(peopleRepo, battingRepo, &stubPitchingRepo{}, warRepo, &stubAwardsRepo{}, nil)

	got, err := svc.GetPlayerStats(context.Background(), PlayerStatsInput{PlayerID: "wandeju01", Mode: "season"})
	if err != nil {
		t.Fatalf("GetPlayerStats: %v", err)
	}
	if len(got.BattingSeasons) != 3 {
		t.Fatalf("seasons = %d, want trade year merged into one row", len(got.BattingSeasons))
	}

	traded := got.BattingSeasons[0]
	if traded.Year != 1998 {
		t.Fatalf("first season = %d, want 1998", traded.Year)
	}
	if traded.AtBats != 300 || traded.Hits != 90 {
		t.Fatalf("merged stint = %d AB %d H, want 300/90", traded.AtBats, traded.Hits)
	}
	if !approxEqual(traded.Average, 0.3) {
		t.Fatalf("merged average = %v, want .300", traded.Average)
	}
	if len(traded.Teams) != 2 || traded.Teams[0] != "SEA" || traded.Teams[1] != "HOU" {
		t.Fatalf("teams = %v, want [SEA HOU]", traded.Teams)
	}

	// Missing value-metric seasons read as zero, present ones attach.
	if !approxEqual(traded.WAR, 0) {
		t.Fatalf("1998 war = %v, want 0", traded.WAR)
	}
	if !approxEqual(got.BattingSeasons[1].WAR, 4.5) {
		t.Fatalf("1999 war = %v, want 4.5", got.BattingSeasons[1].WAR)
	}
}

func TestGetPlayerStatsCareerPitcher(t *testing.T) {
	t.Parallel()

	peopleRepo := &stubPeopleRepo{byID: map[string]people.Player{
		"johnsra05": {ID: "johnsra05", FirstName: "Randy", LastName: "Johnson"},
	}}
	pitchingRepo := &stubPitchingRepo{lines: []pitching.SeasonLine{
		{PlayerID: "johnsra05", Year: 2001, TeamID: "ARI", Wins: 21, Losses: 6, Games: 35, GamesStarted: 34, IPOuts: 749, Hits: 181, EarnedRuns: 69, Walks: 71, Strikeouts: 372},
		{PlayerID: "johnsra05", Year: 2002, TeamID: "ARI", Wins: 24, Losses: 5, Games: 35, GamesStarted: 35, IPOuts: 780, Hits: 197, EarnedRuns: 67, Walks: 71, Strikeouts: 334},
	}}
	svc := newStatsService(peopleRepo, &stubBattingRepo{}, pitchingRepo, &stubWarRepo{}, &stubAwardsRepo{}, nil)

	got, err := svc.GetPlayerStats(context.Background(), PlayerStatsInput{PlayerID: "johnsra05"})
	if err != nil {
		t.Fatalf("GetPlayerStats: %v", err)
	}
	if got.Role != people.RolePitcher {
		t.Fatalf("role = %q, want pitcher from starts threshold", got.Role)
	}
	if got.Pitching == nil {
		t.Fatal("career pitching stats missing")
	}
	if got.Pitching.Wins != 45 || got.Pitching.Strikeouts != 706 {
		t.Fatalf("totals = %d W %d K, want 45/706", got.Pitching.Wins, got.Pitching.Strikeouts)
	}
	ip := float64(749+780) / 3
	if !approxEqual(got.Pitching.InningsPitched, ip) {
		t.Fatalf("ip = %v, want %v", got.Pitching.InningsPitched, ip)
	}
	if !approxEqual(got.Pitching.ERA, 9*float64(69+67)/ip) {
		t.Fatalf("era = %v, want rate from summed counts", got.Pitching.ERA)
	}
}

func TestGetPlayerStatsTwoWayRequiresRoleChoice(t *testing.T) {
	t.Parallel()

	peopleRepo := &stubPeopleRepo{byID: map[string]people.Player{
		"ohtansh01": {ID: "ohtansh01", FirstName: "Shohei", LastName: "Ohtani"},
	}}
	battingRepo := &stubBattingRepo{lines: []batting.SeasonLine{
		{PlayerID: "ohtansh01", Year: 2021, TeamID: "LAA", AtBats: 537, Hits: 138, HomeRuns: 46},
	}}
	pitchingRepo := &stubPitchingRepo{lines: []pitching.SeasonLine{
		{PlayerID: "ohtansh01", Year: 2021, TeamID: "LAA", Wins: 9, Games: 23, GamesStarted: 23, IPOuts: 391, EarnedRuns: 46, Strikeouts: 156},
	}}
	svc := newStatsService(peopleRepo, battingRepo, pitchingRepo, &stubWarRepo{}, &stubAwardsRepo{}, nil)

	got, err := svc.GetPlayerStats(context.Background(), PlayerStatsInput{PlayerID: "ohtansh01"})
	if err != nil {
		t.Fatalf("GetPlayerStats: %v", err)
	}
	if !got.RoleChoiceRequired {
		t.Fatal("expected role choice for a curated two-way player")
	}
	if got.Role != people.RoleDualRole {
		t.Fatalf("role = %q, want two-way", got.Role)
	}
	if len(got.RoleChoices) != 2 {
		t.Fatalf("choices = %v, want pitcher and hitter", got.RoleChoices)
	}
	if got.Batting != nil || got.Pitching != nil {
		t.Fatal("stat payload must stay empty until a role is chosen")
	}
}

func TestGetPlayerStatsTwoWayExplicitRole(t *testing.T) {
	t.Parallel()

	peopleRepo := &stubPeopleRepo{byID: map[string]people.Player{
		"ohtansh01": {ID: "ohtansh01", FirstName: "Shohei", LastName: "Ohtani"},
	}}
	battingRepo := &stubBattingRepo{lines: []batting.SeasonLine{
		{PlayerID: "ohtansh01", Year: 2021, TeamID: "LAA", AtBats: 537, Hits: 138},
	}}
	pitchingRepo := &stubPitchingRepo{lines: []pitching.SeasonLine{
		{PlayerID: "ohtansh01", Year: 2021, TeamID: "LAA", Wins: 9, IPOuts: 391, EarnedRuns: 46},
	}}
	svc := newStatsService(peopleRepo, battingRepo, pitchingRepo, &stubWarRepo{}, &stubAwardsRepo{}, nil)

	got, err := svc.GetPlayerStats(context.Background(), PlayerStatsInput{PlayerID: "ohtansh01", Role: "pitcher"})
	if err != nil {
		t.Fatalf("GetPlayerStats: %v", err)
	}
	if got.RoleChoiceRequired {
		t.Fatal("explicit role must not re-prompt")
	}
	if got.Role != people.RolePitcher || got.Pitching == nil {
		t.Fatalf("role = %q pitching=%v, want pitcher stats", got.Role, got.Pitching != nil)
	}
}

func TestGetPlayerStatsTwoWayAmbiguousRoleFallsBackToHitter(t *testing.T) {
	t.Parallel()

	peopleRepo := &stubPeopleRepo{byID: map[string]people.Player{
		"ruthba01": {ID: "ruthba01", FirstName: "Babe", LastName: "Ruth"},
	}}
	battingRepo := &stubBattingRepo{lines: []batting.SeasonLine{
		{PlayerID: "ruthba01", Year: 1927, TeamID: "NYA", AtBats: 540, Hits: 192, HomeRuns: 60},
	}}
	svc := newStatsService(peopleRepo, battingRepo, &stubPitchingRepo{}, &stubWarRepo{}, &stubAwardsRepo{}, nil)

	got, err := svc.GetPlayerStats(context.Background(), PlayerStatsInput{PlayerID: "ruthba01", Role: "slugger"})
	if err != nil {
		t.Fatalf("GetPlayerStats: %v", err)
	}
	if got.RoleChoiceRequired {
		t.Fatal("ambiguous choice resolves, it does not re-prompt")
	}
	if got.Role != people.RoleHitter || got.Batting == nil {
		t.Fatalf("role = %q, want hitter fallback", got.Role)
	}
}

func TestGetPlayerStatsWarFailureDegradesToZero(t *testing.T) {
	t.Parallel()

	peopleRepo := &stubPeopleRepo{byID: map[string]people.Player{
		"aaronha01": {ID: "aaronha01", FirstName: "Hank", LastName: "Aaron"},
	}}
	battingRepo := &stubBattingRepo{lines: []batting.SeasonLine{
		{PlayerID: "aaronha01", Year: 1957, TeamID: "ML1", AtBats: 615, Hits: 198},
	}}
	warRepo := &stubWarRepo{err: errors.New("table missing")}
	svc := newStatsService(peopleRepo, battingRepo, &stubPitchingRepo{}, warRepo, &stubAwardsRepo{}, nil)

	got, err := svc.GetPlayerStats(context.Background(), PlayerStatsInput{PlayerID: "aaronha01"})
	if err != nil {
		t.Fatalf("GetPlayerStats: %v", err)
	}
	if !approxEqual(got.CareerWAR, 0) {
		t.Fatalf("career war = %v, want 0 when the metric source fails", got.CareerWAR)
	}
}

func TestGetPlayerStatsCountsChampionships(t *testing.T) {
	t.Parallel()

	peopleRepo := &stubPeopleRepo{byID: map[string]people.Player{
		"aaronha01": {ID: "aaronha01", FirstName: "Hank", LastName: "Aaron"},
	}}
	battingRepo := &stubBattingRepo{lines: []batting.SeasonLine{
		{PlayerID: "aaronha01", Year: 1957, TeamID: "ML1", AtBats: 615, Hits: 198},
		{PlayerID: "aaronha01", Year: 1958, TeamID: "ML1", AtBats: 601, Hits: 196},
	}}
	postseasonRepo := &stubPostseasonRepo{series: []postseason.Series{
		{Year: 1957, Round: "WS", Winner: "ML1", Loser: "NYA", Wins: 4, Losses: 3},
		{Year: 1958, Round: "WS", Winner: "NYA", Loser: "ML1", Wins: 4, Losses: 3},
		// Won after the player left; must not count.
		{Year: 1995, Round: "WS", Winner: "ATL", Loser: "CLE", Wins: 4, Losses: 2},
	}}
	svc := NewPlayerStatsService(peopleRepo, battingRepo, &stubPitchingRepo{}, &stubWarRepo{}, &stubAwardsRepo{}, postseasonRepo, nil, nil, 4)

	got, err := svc.GetPlayerStats(context.Background(), PlayerStatsInput{PlayerID: "aaronha01"})
	if err != nil {
		t.Fatalf("GetPlayerStats: %v", err)
	}
	if got.Championships != 1 {
		t.Fatalf("championships = %d, want only the season the player was on the winner", got.Championships)
	}
}

func TestGetPlayerStatsLiveModeDisabled(t *testing.T) {
	t.Parallel()

	peopleRepo := &stubPeopleRepo{byID: map[string]people.Player{
		"aaronha01": {ID: "aaronha01", FirstName: "Hank", LastName: "Aaron"},
	}}
	svc := newStatsService(peopleRepo, &stubBattingRepo{}, &stubPitchingRepo{}, &stubWarRepo{}, &stubAwardsRepo{}, nil)

	if _, err := svc.GetPlayerStats(context.Background(), PlayerStatsInput{PlayerID: "aaronha01", Mode: "live"}); !errors.Is(err, ErrDependencyUnavailable) {
		t.Fatalf("live mode err = %v, want ErrDependencyUnavailable", err)
	}
}

func TestGetPlayerStatsEnrichmentFailuresDegrade(t *testing.T) {
	t.Parallel()

	peopleRepo := &stubPeopleRepo{byID: map[string]people.Player{
		"aaronha01": {ID: "aaronha01", FirstName: "Hank", LastName: "Aaron"},
	}}
	battingRepo := &stubBattingRepo{lines: []batting.SeasonLine{
		{PlayerID: "aaronha01", Year: 1957, TeamID: "ML1", AtBats: 615, Hits: 198},
	}}
	awardsRepo := &stubAwardsRepo{rowsErr: errors.New("boom"), countErr: errors.New("boom")}
	headshots := &stubHeadshots{err: errors.New("provider down")}
	svc := newStatsService(peopleRepo, battingRepo, &stubPitchingRepo{}, &stubWarRepo{}, awardsRepo, headshots)

	got, err := svc.GetPlayerStats(context.Background(), PlayerStatsInput{PlayerID: "aaronha01"})
	if err != nil {
		t.Fatalf("GetPlayerStats: %v", err)
	}
	if len(got.Awards) != 0 || got.AllStarAppearances != 0 || got.Player.PhotoURL != "" {
		t.Fatalf("enrichment = %+v, want empty values on failure", got)
	}
}

func TestGetPlayerStatsInputErrors(t *testing.T) {
	t.Parallel()

	peopleRepo := &stubPeopleRepo{byID: map[string]people.Player{}}
	svc := newStatsService(peopleRepo, &stubBattingRepo{}, &stubPitchingRepo{}, &stubWarRepo{}, &stubAwardsRepo{}, nil)

	if _, err := svc.GetPlayerStats(context.Background(), PlayerStatsInput{}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("empty id err = %v, want ErrInvalidInput", err)
	}
	if _, err := svc.GetPlayerStats(context.Background(), PlayerStatsInput{PlayerID: "x", Mode: "weekly"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("bad mode err = %v, want ErrInvalidInput", err)
	}
	if _, err := svc.GetPlayerStats(context.Background(), PlayerStatsInput{PlayerID: "ghost"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("unknown id err = %v, want ErrNotFound", err)
	}
}
