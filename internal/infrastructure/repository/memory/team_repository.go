package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/dugoutlabs/statlines/internal/domain/gamelog"
	"github.com/dugoutlabs/statlines/internal/domain/postseason"
	"github.com/dugoutlabs/statlines/internal/domain/teamseason"
)

type TeamSeasonRepository struct {
	mu      sync.RWMutex
	seasons []teamseason.Season
}

func NewTeamSeasonRepository(seasons []teamseason.Season) *TeamSeasonRepository {
	ordered := append([]teamseason.Season(nil), seasons...)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Year < ordered[j].Year })
	return &TeamSeasonRepository{seasons: ordered}
}

func (r *TeamSeasonRepository) ListByTeams(_ context.Context, teamIDs []string, year *int) ([]teamseason.Season, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := toSet(teamIDs)
	out := make([]teamseason.Season, 0, len(r.seasons))
	for _, s := range r.seasons {
		if _, ok := ids[s.TeamID]; !ok {
			continue
		}
		if year != nil && s.Year != *year {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

type PostseasonRepository struct {
	mu     sync.RWMutex
	series []postseason.Series
}

func NewPostseasonRepository(series []postseason.Series) *PostseasonRepository {
	ordered := append([]postseason.Series(nil), series...)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Year < ordered[j].Year })
	return &PostseasonRepository{series: ordered}
}

func (r *PostseasonRepository) ListByTeams(_ context.Context, teamIDs []string) ([]postseason.Series, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := toSet(teamIDs)
	out := make([]postseason.Series, 0, len(r.series))
	for _, s := range r.series {
		if _, won := ids[s.Winner]; won {
			out = append(out, s)
			continue
		}
		if _, lost := ids[s.Loser]; lost {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *PostseasonRepository) ListBetween(_ context.Context, aIDs, bIDs []string) ([]postseason.Series, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, b := toSet(aIDs), toSet(bIDs)
	out := make([]postseason.Series, 0, len(r.series))
	for _, s := range r.series {
		_, winA := a[s.Winner]
		_, winB := b[s.Winner]
		_, loseA := a[s.Loser]
		_, loseB := b[s.Loser]
		if (winA && loseB) || (winB && loseA) {
			out = append(out, s)
		}
	}
	return out, nil
}

type GameLogRepository struct {
	mu   sync.RWMutex
	rows []gamelog.Row
}

func NewGameLogRepository(rows []gamelog.Row) *GameLogRepository {
	ordered := append([]gamelog.Row(nil), rows...)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Year != ordered[j].Year {
			return ordered[i].Year < ordered[j].Year
		}
		return ordered[i].Date < ordered[j].Date
	})
	return &GameLogRepository{rows: ordered}
}

func (r *GameLogRepository) ListMeetings(_ context.Context, aIDs, bIDs []string, year *int) ([]gamelog.Row, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, b := toSet(aIDs), toSet(bIDs)
	out := make([]gamelog.Row, 0, len(r.rows))
	for _, row := range r.rows {
		if year != nil && row.Year != *year {
			continue
		}
		_, teamA := a[row.TeamID]
		_, oppB := b[row.OpponentID]
		_, teamB := b[row.TeamID]
		_, oppA := a[row.OpponentID]
		if (teamA && oppB) || (teamB && oppA) {
			out = append(out, row)
		}
	}
	return out, nil
}

func toSet(ids []string) map[string]struct{} {
	out := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		out[id] = struct{}{}
	}
	return out
}
