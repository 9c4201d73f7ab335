package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/dugoutlabs/statlines/internal/domain/franchise"
	"github.com/dugoutlabs/statlines/internal/domain/postseason"
	"github.com/dugoutlabs/statlines/internal/domain/teamseason"
	"github.com/dugoutlabs/statlines/internal/platform/logging"
)

// TeamMode selects one season or the full franchise history.
type TeamMode string

const (
	TeamModeSeason    TeamMode = "season"
	TeamModeFranchise TeamMode = "franchise"
)

func ParseTeamMode(v string) (TeamMode, bool) {
	switch TeamMode(v) {
	case TeamModeSeason:
		return TeamModeSeason, true
	case TeamModeFranchise, "":
		return TeamModeFranchise, true
	default:
		return "", false
	}
}

// TeamResolution maps free text ("2004 Red Sox", "yankees") to a canonical
// team code plus the year the text carried, if any.
type TeamResolution struct {
	Code        string
	Year        *int
	DisplayName string
	Logo        franchise.Logo
}

type TeamSeasonRow struct {
	Year        int
	TeamID      string
	Name        string
	Games       int
	Wins        int
	Losses      int
	Runs        int
	RunsAllowed int
}

type TeamTotals struct {
	Seasons            int
	Games              int
	Wins               int
	Losses             int
	Runs               int
	RunsAllowed        int
	WinPct             float64
	RunsPerGame        float64
	RunsAllowedPerGame float64
}

type TeamStats struct {
	Code        string
	DisplayName string
	Logo        franchise.Logo
	Mode        TeamMode
	Year        *int
	Seasons     []TeamSeasonRow
	Totals      TeamTotals
	Postseason  postseason.Record
}

type TeamStatsInput struct {
	TeamID string
	Mode   string
	Year   *int
}

type TeamService struct {
	seasonRepo     teamseason.Repository
	postseasonRepo postseason.Repository
	logger         *logging.Logger
}

func NewTeamService(seasonRepo teamseason.Repository, postseasonRepo postseason.Repository, logger *logging.Logger) *TeamService {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &TeamService{seasonRepo: seasonRepo, postseasonRepo: postseasonRepo, logger: logger}
}

// ResolveTeam normalizes free text into a canonical code. Resolution never
// fails: unknown input passes through uppercased and simply misses
// downstream.
func (s *TeamService) ResolveTeam(_ context.Context, freeText string) (TeamResolution, error) {
	if strings.TrimSpace(freeText) == "" {
		return TeamResolution{}, fmt.Errorf("%w: team text is required", ErrInvalidInput)
	}

	code, year := franchise.ParseQuery(freeText)
	return TeamResolution{
		Code:        code,
		Year:        year,
		DisplayName: franchise.DisplayName(code, year),
		Logo:        franchise.LogoURLs(code),
	}, nil
}

// GetTeamStats aggregates team seasons. Both modes expand the code through
// the lineage table so relocations and renamings are never undercounted.
func (s *TeamService) GetTeamStats(ctx context.Context, input TeamStatsInput) (TeamStats, error) {
	ctx, span := startUsecaseSpan(ctx, "TeamService.GetTeamStats")
	defer span.End()

	code := strings.ToUpper(strings.TrimSpace(input.TeamID))
	if code == "" {
		return TeamStats{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}
	mode, ok := ParseTeamMode(strings.TrimSpace(input.Mode))
	if !ok {
		return TeamStats{}, fmt.Errorf("%w: mode must be %q or %q", ErrInvalidInput, TeamModeSeason, TeamModeFranchise)
	}
	if mode == TeamModeSeason && input.Year == nil {
		return TeamStats{}, fmt.Errorf("%w: year is required in season mode", ErrInvalidInput)
	}

	lineage := franchise.Expand(code)

	year := input.Year
	if mode == TeamModeFranchise {
		year = nil
	}
	seasons, err := s.seasonRepo.ListByTeams(ctx, lineage, year)
	if err != nil {
		return TeamStats{}, fmt.Errorf("list team seasons: %w", err)
	}
	if len(seasons) == 0 {
		return TeamStats{}, fmt.Errorf("%w: team=%s", ErrNotFound, code)
	}

	out := TeamStats{
		Code:        code,
		DisplayName: franchise.DisplayName(code, input.Year),
		Logo:        franchise.LogoURLs(code),
		Mode:        mode,
		Year:        input.Year,
		Seasons:     make([]TeamSeasonRow, 0, len(seasons)),
	}
	for _, season := range seasons {
		out.Seasons = append(out.Seasons, TeamSeasonRow{
			Year:        season.Year,
			TeamID:      season.TeamID,
			Name:        season.Name,
			Games:       season.Games,
			Wins:        season.Wins,
			Losses:      season.Losses,
			Runs:        season.Runs,
			RunsAllowed: season.RunsAllowed,
		})
	}

	totals := teamseason.Sum(seasons)
	out.Totals = TeamTotals{
		Seasons:            totals.Seasons,
		Games:              totals.Games,
		Wins:               totals.Wins,
		Losses:             totals.Losses,
		Runs:               totals.Runs,
		RunsAllowed:        totals.RunsAllowed,
		WinPct:             totals.WinPct(),
		RunsPerGame:        totals.RunsPerGame(),
		RunsAllowedPerGame: totals.RunsAllowedPerGame(),
	}

	if mode == TeamModeFranchise {
		// Postseason history is enrichment: a failed read degrades to an
		// empty record.
		series, err := s.postseasonRepo.ListByTeams(ctx, lineage)
		if err != nil {
			s.logger.WarnContext(ctx, "postseason history unavailable", "team", code, "error", err)
		} else {
			out.Postseason = postseason.Summarize(series, lineage)
		}
	}

	return out, nil
}
