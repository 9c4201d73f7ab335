package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/dugoutlabs/statlines/internal/domain/people"
)

type PeopleRepository struct {
	mu      sync.RWMutex
	players []people.Player
	byID    map[string]people.Player
}

func NewPeopleRepository(players []people.Player) *PeopleRepository {
	byID := make(map[string]people.Player, len(players))
	for _, p := range players {
		byID[p.ID] = p
	}
	return &PeopleRepository{players: players, byID: byID}
}

func (r *PeopleRepository) FindByName(_ context.Context, first, last string) ([]people.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]people.Player, 0, 2)
	for _, p := range r.players {
		if strings.EqualFold(p.FirstName, first) && strings.EqualFold(p.LastName, last) {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return debutKey(out[i]) < debutKey(out[j])
	})
	return out, nil
}

func (r *PeopleRepository) GetByID(_ context.Context, playerID string) (people.Player, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[playerID]
	return p, ok, nil
}

func debutKey(p people.Player) string {
	if strings.TrimSpace(p.Debut) == "" {
		return "9999"
	}
	return p.Debut
}
