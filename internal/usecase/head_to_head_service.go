package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/dugoutlabs/statlines/internal/domain/franchise"
	"github.com/dugoutlabs/statlines/internal/domain/gamelog"
	"github.com/dugoutlabs/statlines/internal/domain/postseason"
	"github.com/dugoutlabs/statlines/internal/platform/logging"
)

// HeadToHeadInput names the two sides as free text. An explicit Year beats a
// year embedded in either team string ("1995 braves").
type HeadToHeadInput struct {
	TeamA string
	TeamB string
	Year  *int
}

// HeadToHeadSide is one franchise's identity in a matchup result.
type HeadToHeadSide struct {
	Code        string
	DisplayName string
	Logo        franchise.Logo
	Wins        int
}

// PostseasonMeeting is one side's showing in one postseason round.
type PostseasonMeeting struct {
	Round      string
	RoundName  string
	ASeries    int
	BSeries    int
	AGameWins  int
	BGameWins  int
	FirstYear  int
	LatestYear int
}

type HeadToHead struct {
	TeamA      HeadToHeadSide
	TeamB      HeadToHeadSide
	Year       *int
	TotalGames int
	Postseason []PostseasonMeeting
}

type HeadToHeadService struct {
	gameLogRepo    gamelog.Repository
	postseasonRepo postseason.Repository
	logger         *logging.Logger
}

func NewHeadToHeadService(gameLogRepo gamelog.Repository, postseasonRepo postseason.Repository, logger *logging.Logger) *HeadToHeadService {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &HeadToHeadService{gameLogRepo: gameLogRepo, postseasonRepo: postseasonRepo, logger: logger}
}

// GetHeadToHead tallies the all-time (or single-season) record between two
// franchises. Both sides expand through the lineage table first, so
// "Brewers vs Pilots" is rejected rather than reported as a rivalry.
func (s *HeadToHeadService) GetHeadToHead(ctx context.Context, input HeadToHeadInput) (HeadToHead, error) {
	ctx, span := startUsecaseSpan(ctx, "HeadToHeadService.GetHeadToHead")
	defer span.End()

	codeA, yearA, err := normalizeSide(input.TeamA)
	if err != nil {
		return HeadToHead{}, err
	}
	codeB, yearB, err := normalizeSide(input.TeamB)
	if err != nil {
		return HeadToHead{}, err
	}

	year := input.Year
	if year == nil {
		if yearA != nil {
			year = yearA
		} else if yearB != nil {
			year = yearB
		}
	}

	if franchise.Overlaps(codeA, codeB) {
		return HeadToHead{}, fmt.Errorf("%w: %s and %s", ErrSameFranchise, codeA, codeB)
	}

	aIDs := franchise.Expand(codeA)
	bIDs := franchise.Expand(codeB)
	rows, err := s.gameLogRepo.ListMeetings(ctx, aIDs, bIDs, year)
	if err != nil {
		return HeadToHead{}, fmt.Errorf("list meetings: %w", err)
	}
	tally := gamelog.Count(rows, aIDs)

	out := HeadToHead{
		TeamA: HeadToHeadSide{
			Code:        codeA,
			DisplayName: franchise.DisplayName(codeA, year),
			Logo:        franchise.LogoURLs(codeA),
			Wins:        tally.AWins,
		},
		TeamB: HeadToHeadSide{
			Code:        codeB,
			DisplayName: franchise.DisplayName(codeB, year),
			Logo:        franchise.LogoURLs(codeB),
			Wins:        tally.BWins,
		},
		Year:       year,
		TotalGames: tally.TotalGames,
	}

	// Postseason meetings are enrichment: the regular-season tally stands
	// even when the series read fails.
	series, err := s.postseasonRepo.ListBetween(ctx, aIDs, bIDs)
	if err != nil {
		s.logger.WarnContext(ctx, "postseason meetings unavailable",
			"team_a", codeA, "team_b", codeB, "error", err)
		return out, nil
	}
	out.Postseason = foldPostseason(series, aIDs)
	return out, nil
}

func normalizeSide(freeText string) (string, *int, error) {
	if strings.TrimSpace(freeText) == "" {
		return "", nil, fmt.Errorf("%w: both teams are required", ErrInvalidInput)
	}
	code, year := franchise.ParseQuery(freeText)
	return code, year, nil
}

// foldPostseason groups series rows by round, ordered by each round's first
// meeting year then round code.
func foldPostseason(series []postseason.Series, aIDs []string) []PostseasonMeeting {
	inA := map[string]struct{}{}
	for _, id := range aIDs {
		inA[id] = struct{}{}
	}

	byRound := map[string]*PostseasonMeeting{}
	for _, s := range series {
		m, ok := byRound[s.Round]
		if !ok {
			m = &PostseasonMeeting{
				Round:      s.Round,
				RoundName:  postseason.RoundName(s.Round),
				FirstYear:  s.Year,
				LatestYear: s.Year,
			}
			byRound[s.Round] = m
		}
		if s.Year < m.FirstYear {
			m.FirstYear = s.Year
		}
		if s.Year > m.LatestYear {
			m.LatestYear = s.Year
		}
		if _, aWon := inA[s.Winner]; aWon {
			m.ASeries++
			m.AGameWins += s.Wins
			m.BGameWins += s.Losses
		} else {
			m.BSeries++
			m.BGameWins += s.Wins
			m.AGameWins += s.Losses
		}
	}

	out := make([]PostseasonMeeting, 0, len(byRound))
	for _, m := range byRound {
		out = append(out, *m)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].FirstYear != out[j].FirstYear {
			return out[i].FirstYear < out[j].FirstYear
		}
		return out[i].Round < out[j].Round
	})
	return out
}
