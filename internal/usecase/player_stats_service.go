package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	ants "github.com/panjf2000/ants/v2"

	"github.com/dugoutlabs/statlines/internal/domain/awards"
	"github.com/dugoutlabs/statlines/internal/domain/batting"
	"github.com/dugoutlabs/statlines/internal/domain/people"
	"github.com/dugoutlabs/statlines/internal/domain/pitching"
	"github.com/dugoutlabs/statlines/internal/domain/postseason"
	"github.com/dugoutlabs/statlines/internal/domain/warvalue"
	"github.com/dugoutlabs/statlines/internal/platform/logging"
)

// StatsMode selects career totals or a per-season series.
type StatsMode string

const (
	ModeCareer StatsMode = "career"
	ModeSeason StatsMode = "season"
)

func ParseStatsMode(v string) (StatsMode, bool) {
	switch StatsMode(v) {
	case ModeCareer, "":
		return ModeCareer, true
	case ModeSeason:
		return ModeSeason, true
	default:
		return "", false
	}
}

// HeadshotLookup is the optional external photo provider. Failures degrade
// to an empty URL.
type HeadshotLookup interface {
	LookupURL(ctx context.Context, p people.Player) (string, error)
}

type PlayerSummary struct {
	ID        string
	Name      string
	Debut     string
	FinalGame string
	PhotoURL  string
}

// BattingStats carries counting totals plus the derived rates computed from
// them.
type BattingStats struct {
	Games            int
	AtBats           int
	Runs             int
	Hits             int
	Singles          int
	Doubles          int
	Triples          int
	HomeRuns         int
	TotalBases       int
	RBI              int
	StolenBases      int
	Walks            int
	Strikeouts       int
	HitByPitch       int
	SacFlies         int
	SacHits          int
	PlateAppearances int
	Average          float64
	OnBasePct        float64
	SluggingPct      float64
	OPS              float64
}

type BattingSeason struct {
	Year  int
	Teams []string
	WAR   float64
	BattingStats
}

type PitchingStats struct {
	Wins           int
	Losses         int
	Games          int
	GamesStarted   int
	CompleteGames  int
	Shutouts       int
	Saves          int
	InningsPitched float64
	Hits           int
	EarnedRuns     int
	HomeRuns       int
	Walks          int
	Strikeouts     int
	ERA            float64
	WHIP           float64
}

type PitchingSeason struct {
	Year  int
	Teams []string
	WAR   float64
	PitchingStats
}

// PlayerStats is the full stats payload for one resolved player. When
// RoleChoiceRequired is set the stat fields are empty: the caller must
// re-request with an explicit role.
type PlayerStats struct {
	Player             PlayerSummary
	Mode               StatsMode
	Role               people.Role
	RoleChoiceRequired bool
	RoleChoices        []people.Role
	Batting            *BattingStats
	Pitching           *PitchingStats
	BattingSeasons     []BattingSeason
	PitchingSeasons    []PitchingSeason
	CareerWAR          float64
	Awards             []awards.Summary
	AllStarAppearances int
	Championships      int
}

type PlayerStatsInput struct {
	PlayerID string
	Mode     string
	Role     string
}

type PlayerStatsService struct {
	peopleRepo     people.Repository
	battingRepo    batting.Repository
	pitchingRepo   pitching.Repository
	warRepo        warvalue.Repository
	awardsRepo     awards.Repository
	postseasonRepo postseason.Repository
	headshots      HeadshotLookup
	logger         *logging.Logger
	workers        int
}

func NewPlayerStatsService(
	peopleRepo people.Repository,
	battingRepo batting.Repository,
	pitchingRepo pitching.Repository,
	warRepo warvalue.Repository,
	awardsRepo awards.Repository,
	postseasonRepo postseason.Repository,
	headshots HeadshotLookup,
	logger *logging.Logger,
	workers int,
) *PlayerStatsService {
	if logger == nil {
		logger = logging.NewNop()
	}
	if workers < 1 {
		workers = 1
	}
	return &PlayerStatsService{
		peopleRepo:     peopleRepo,
		battingRepo:    battingRepo,
		pitchingRepo:   pitchingRepo,
		warRepo:        warRepo,
		awardsRepo:     awardsRepo,
		postseasonRepo: postseasonRepo,
		headshots:      headshots,
		logger:         logger,
		workers:        workers,
	}
}

func (s *PlayerStatsService) GetPlayerStats(ctx context.Context, input PlayerStatsInput) (PlayerStats, error) {
	ctx, span := startUsecaseSpan(ctx, "PlayerStatsService.GetPlayerStats")
	defer span.End()

	playerID := strings.TrimSpace(input.PlayerID)
	if playerID == "" {
		return PlayerStats{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}
	rawMode := strings.ToLower(strings.TrimSpace(input.Mode))
	// Live and combined feeds were retired along with the ingestion pipeline.
	if rawMode == "live" || rawMode == "combined" {
		return PlayerStats{}, fmt.Errorf("%w: %s stat mode is disabled", ErrDependencyUnavailable, rawMode)
	}
	mode, ok := ParseStatsMode(rawMode)
	if !ok {
		return PlayerStats{}, fmt.Errorf("%w: mode must be %q or %q", ErrInvalidInput, ModeCareer, ModeSeason)
	}

	player, found, err := s.peopleRepo.GetByID(ctx, playerID)
	if err != nil {
		return PlayerStats{}, fmt.Errorf("get player: %w", err)
	}
	if !found {
		return PlayerStats{}, fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
	}

	battingLines, err := s.battingRepo.ListByPlayer(ctx, playerID)
	if err != nil {
		return PlayerStats{}, fmt.Errorf("list batting seasons: %w", err)
	}
	pitchingLines, err := s.pitchingRepo.ListByPlayer(ctx, playerID)
	if err != nil {
		return PlayerStats{}, fmt.Errorf("list pitching seasons: %w", err)
	}

	out := PlayerStats{
		Player: PlayerSummary{
			ID:        player.ID,
			Name:      player.FullName(),
			Debut:     player.Debut,
			FinalGame: player.FinalGame,
		},
		Mode: mode,
	}

	role, choiceRequired := s.resolveRole(ctx, player, battingLines, pitchingLines, input.Role)
	out.Role = role
	if choiceRequired {
		out.RoleChoiceRequired = true
		out.RoleChoices = []people.Role{people.RolePitcher, people.RoleHitter}
		return out, nil
	}

	warByYear, careerWAR := s.loadWarValues(ctx, playerID)
	out.CareerWAR = careerWAR

	switch role {
	case people.RoleHitter:
		if mode == ModeCareer {
			stats := battingStatsFrom(batting.Sum(battingLines))
			out.Batting = &stats
		} else {
			out.BattingSeasons = battingSeasonsFrom(battingLines, warByYear)
		}
	default:
		if mode == ModeCareer {
			stats := pitchingStatsFrom(pitching.Sum(pitchingLines))
			out.Pitching = &stats
		} else {
			out.PitchingSeasons = pitchingSeasonsFrom(pitchingLines, warByYear)
		}
	}

	s.enrich(ctx, player, battingLines, pitchingLines, &out)
	return out, nil
}

// resolveRole picks the stat family. A curated two-way player needs an
// explicit caller choice; an unparseable choice falls back to hitter, which
// is logged rather than silent. Everyone else is classified from usage, with
// a valid explicit choice taking precedence.
func (s *PlayerStatsService) resolveRole(
	ctx context.Context,
	player people.Player,
	battingLines []batting.SeasonLine,
	pitchingLines []pitching.SeasonLine,
	rawRole string,
) (people.Role, bool) {
	requested, hasChoice := people.ParseRole(strings.TrimSpace(rawRole))

	if people.IsDualRoleOverride(player.ID) {
		if strings.TrimSpace(rawRole) == "" {
			return people.RoleDualRole, true
		}
		if !hasChoice {
			s.logger.WarnContext(ctx, "ambiguous role choice for two-way player, defaulting to hitter",
				"player_id", player.ID, "role", rawRole)
			return people.RoleHitter, false
		}
		return requested, false
	}

	if hasChoice && strings.TrimSpace(rawRole) != "" {
		return requested, false
	}

	bTotals := batting.Sum(battingLines)
	pTotals := pitching.Sum(pitchingLines)
	return people.ClassifyRole(
		people.PitchingUsage{Seasons: pTotals.Seasons, GamesPitched: pTotals.Games, GamesStarted: pTotals.GamesStarted},
		people.BattingUsage{Seasons: bTotals.Seasons, AtBats: bTotals.AtBats},
	), false
}

// loadWarValues reads the supplementary value metric with left-join
// semantics: a failure or a missing season contributes zero, never an error.
func (s *PlayerStatsService) loadWarValues(ctx context.Context, playerID string) (map[int]float64, float64) {
	values, err := s.warRepo.ListByPlayer(ctx, playerID)
	if err != nil {
		s.logger.WarnContext(ctx, "war values unavailable, treating as zero", "player_id", playerID, "error", err)
		return map[int]float64{}, 0
	}
	return warvalue.ByYear(values), warvalue.CareerTotal(values)
}

// countChampionships counts seasons in which a team the player appeared for
// won the World Series that same year.
func (s *PlayerStatsService) countChampionships(
	ctx context.Context,
	battingLines []batting.SeasonLine,
	pitchingLines []pitching.SeasonLine,
) (int, error) {
	playedFor := map[string]map[int]struct{}{}
	record := func(teamID string, year int) {
		if teamID == "" {
			return
		}
		if playedFor[teamID] == nil {
			playedFor[teamID] = map[int]struct{}{}
		}
		playedFor[teamID][year] = struct{}{}
	}
	for _, l := range battingLines {
		record(l.TeamID, l.Year)
	}
	for _, l := range pitchingLines {
		record(l.TeamID, l.Year)
	}
	if len(playedFor) == 0 {
		return 0, nil
	}

	teams := make([]string, 0, len(playedFor))
	for teamID := range playedFor {
		teams = append(teams, teamID)
	}
	sort.Strings(teams)

	series, err := s.postseasonRepo.ListByTeams(ctx, teams)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, sr := range series {
		if sr.Round != "WS" {
			continue
		}
		years, ok := playedFor[sr.Winner]
		if !ok {
			continue
		}
		if _, played := years[sr.Year]; played {
			count++
		}
	}
	return count, nil
}

// enrich fans out the optional lookups (awards, all-star count,
// championships, photo) through a worker pool. Every failure degrades to an
// empty value.
func (s *PlayerStatsService) enrich(
	ctx context.Context,
	player people.Player,
	battingLines []batting.SeasonLine,
	pitchingLines []pitching.SeasonLine,
	out *PlayerStats,
) {
	pool, err := ants.NewPool(s.workers)
	if err != nil {
		s.logger.WarnContext(ctx, "create enrichment worker pool failed, skipping enrichment", "error", err)
		return
	}
	defer pool.Release()

	var wg sync.WaitGroup
	tasks := []func(){
		func() {
			rows, err := s.awardsRepo.ListByPlayer(ctx, player.ID)
			if err != nil {
				s.logger.WarnContext(ctx, "award history unavailable", "player_id", player.ID, "error", err)
				return
			}
			out.Awards = awards.Summarize(rows)
		},
		func() {
			count, err := s.awardsRepo.CountAllStarAppearances(ctx, player.ID)
			if err != nil {
				s.logger.WarnContext(ctx, "all-star count unavailable", "player_id", player.ID, "error", err)
				return
			}
			out.AllStarAppearances = count
		},
		func() {
			count, err := s.countChampionships(ctx, battingLines, pitchingLines)
			if err != nil {
				s.logger.WarnContext(ctx, "championship lookup unavailable", "player_id", player.ID, "error", err)
				return
			}
			out.Championships = count
		},
		func() {
			if s.headshots == nil {
				return
			}
			url, err := s.headshots.LookupURL(ctx, player)
			if err != nil {
				s.logger.WarnContext(ctx, "photo lookup unavailable", "player_id", player.ID, "error", err)
				return
			}
			out.Player.PhotoURL = url
		},
	}

	for _, task := range tasks {
		task := task
		wg.Add(1)
		if err := pool.Submit(func() {
			defer wg.Done()
			task()
		}); err != nil {
			wg.Done()
			s.logger.WarnContext(ctx, "submit enrichment task failed", "error", err)
		}
	}
	wg.Wait()
}

func battingStatsFrom(t batting.Totals) BattingStats {
	return BattingStats{
		Games:            t.Games,
		AtBats:           t.AtBats,
		Runs:             t.Runs,
		Hits:             t.Hits,
		Singles:          t.Singles(),
		Doubles:          t.Doubles,
		Triples:          t.Triples,
		HomeRuns:         t.HomeRuns,
		TotalBases:       t.TotalBases(),
		RBI:              t.RBI,
		StolenBases:      t.StolenBases,
		Walks:            t.Walks,
		Strikeouts:       t.Strikeouts,
		HitByPitch:       t.HitByPitch,
		SacFlies:         t.SacFlies,
		SacHits:          t.SacHits,
		PlateAppearances: t.PlateAppearances(),
		Average:          t.Average(),
		OnBasePct:        t.OnBasePct(),
		SluggingPct:      t.SluggingPct(),
		OPS:              t.OPS(),
	}
}

func pitchingStatsFrom(t pitching.Totals) PitchingStats {
	return PitchingStats{
		Wins:           t.Wins,
		Losses:         t.Losses,
		Games:          t.Games,
		GamesStarted:   t.GamesStarted,
		CompleteGames:  t.CompleteGames,
		Shutouts:       t.Shutouts,
		Saves:          t.Saves,
		InningsPitched: t.InningsPitched(),
		Hits:           t.Hits,
		EarnedRuns:     t.EarnedRuns,
		HomeRuns:       t.HomeRuns,
		Walks:          t.Walks,
		Strikeouts:     t.Strikeouts,
		ERA:            t.ERA(),
		WHIP:           t.WHIP(),
	}
}

// battingSeasonsFrom merges same-year stints into one row per season and
// computes each row's rates independently from that row's counting stats.
func battingSeasonsFrom(lines []batting.SeasonLine, warByYear map[int]float64) []BattingSeason {
	byYear := map[int][]batting.SeasonLine{}
	teamsByYear := map[int][]string{}
	for _, l := range lines {
		byYear[l.Year] = append(byYear[l.Year], l)
		if l.TeamID != "" && !containsString(teamsByYear[l.Year], l.TeamID) {
			teamsByYear[l.Year] = append(teamsByYear[l.Year], l.TeamID)
		}
	}

	out := make([]BattingSeason, 0, len(byYear))
	for year := range byYear {
		out = append(out, BattingSeason{
			Year:         year,
			Teams:        teamsByYear[year],
			WAR:          warByYear[year],
			BattingStats: battingStatsFrom(batting.Sum(byYear[year])),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Year < out[j].Year })
	return out
}

func pitchingSeasonsFrom(lines []pitching.SeasonLine, warByYear map[int]float64) []PitchingSeason {
	byYear := map[int][]pitching.SeasonLine{}
	teamsByYear := map[int][]string{}
	for _, l := range lines {
		byYear[l.Year] = append(byYear[l.Year], l)
		if l.TeamID != "" && !containsString(teamsByYear[l.Year], l.TeamID) {
			teamsByYear[l.Year] = append(teamsByYear[l.Year], l.TeamID)
		}
	}

	out := make([]PitchingSeason, 0, len(byYear))
	for year := range byYear {
		out = append(out, PitchingSeason{
			Year:          year,
			Teams:         teamsByYear[year],
			WAR:           warByYear[year],
			PitchingStats: pitchingStatsFrom(pitching.Sum(byYear[year])),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Year < out[j].Year })
	return out
}

func containsString(items []string, v string) bool {
	for _, item := range items {
		if item == v {
			return true
		}
	}
	return false
}
