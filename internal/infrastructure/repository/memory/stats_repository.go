package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/dugoutlabs/statlines/internal/domain/batting"
	"github.com/dugoutlabs/statlines/internal/domain/pitching"
	"github.com/dugoutlabs/statlines/internal/domain/warvalue"
)

type BattingRepository struct {
	mu       sync.RWMutex
	byPlayer map[string][]batting.SeasonLine
}

func NewBattingRepository(lines []batting.SeasonLine) *BattingRepository {
	byPlayer := make(map[string][]batting.SeasonLine)
	for _, l := range lines {
		byPlayer[l.PlayerID] = append(byPlayer[l.PlayerID], l)
	}
	for id := range byPlayer {
		rows := byPlayer[id]
		sort.SliceStable(rows, func(i, j int) bool { return rows[i].Year < rows[j].Year })
	}
	return &BattingRepository{byPlayer: byPlayer}
}

func (r *BattingRepository) ListByPlayer(_ context.Context, playerID string) ([]batting.SeasonLine, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]batting.SeasonLine(nil), r.byPlayer[playerID]...), nil
}

type PitchingRepository struct {
	mu       sync.RWMutex
	byPlayer map[string][]pitching.SeasonLine
}

func NewPitchingRepository(lines []pitching.SeasonLine) *PitchingRepository {
	byPlayer := make(map[string][]pitching.SeasonLine)
	for _, l := range lines {
		byPlayer[l.PlayerID] = append(byPlayer[l.PlayerID], l)
	}
	for id := range byPlayer {
		rows := byPlayer[id]
		sort.SliceStable(rows, func(i, j int) bool { return rows[i].Year < rows[j].Year })
	}
	return &PitchingRepository{byPlayer: byPlayer}
}

func (r *PitchingRepository) ListByPlayer(_ context.Context, playerID string) ([]pitching.SeasonLine, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]pitching.SeasonLine(nil), r.byPlayer[playerID]...), nil
}

type WarValueRepository struct {
	mu       sync.RWMutex
	byPlayer map[string][]warvalue.SeasonValue
}

func NewWarValueRepository(values []warvalue.SeasonValue) *WarValueRepository {
	byPlayer := make(map[string][]warvalue.SeasonValue)
	for _, v := range values {
		byPlayer[v.PlayerID] = append(byPlayer[v.PlayerID], v)
	}
	for id := range byPlayer {
		rows := byPlayer[id]
		sort.SliceStable(rows, func(i, j int) bool { return rows[i].Year < rows[j].Year })
	}
	return &WarValueRepository{byPlayer: byPlayer}
}

func (r *WarValueRepository) ListByPlayer(_ context.Context, playerID string) ([]warvalue.SeasonValue, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]warvalue.SeasonValue(nil), r.byPlayer[playerID]...), nil
}
