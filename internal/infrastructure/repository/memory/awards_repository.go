package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/dugoutlabs/statlines/internal/domain/awards"
)

type AwardsRepository struct {
	mu             sync.RWMutex
	byPlayer       map[string][]awards.Award
	allStarCountBy map[string]int
}

func NewAwardsRepository(rows []awards.Award, allStarCounts map[string]int) *AwardsRepository {
	byPlayer := make(map[string][]awards.Award)
	for _, a := range rows {
		byPlayer[a.PlayerID] = append(byPlayer[a.PlayerID], a)
	}
	for id := range byPlayer {
		list := byPlayer[id]
		sort.SliceStable(list, func(i, j int) bool { return list[i].Year < list[j].Year })
	}
	if allStarCounts == nil {
		allStarCounts = map[string]int{}
	}
	return &AwardsRepository{byPlayer: byPlayer, allStarCountBy: allStarCounts}
}

func (r *AwardsRepository) ListByPlayer(_ context.Context, playerID string) ([]awards.Award, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]awards.Award(nil), r.byPlayer[playerID]...), nil
}

func (r *AwardsRepository) CountAllStarAppearances(_ context.Context, playerID string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.allStarCountBy[playerID], nil
}
