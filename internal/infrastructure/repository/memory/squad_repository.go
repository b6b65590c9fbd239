package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/pitchside/fantasy-core/internal/domain/roster"
)

type SquadRepository struct {
	mu    sync.RWMutex
	items map[string]roster.Squad
}

func NewSquadRepository() *SquadRepository {
	return &SquadRepository{items: make(map[string]roster.Squad)}
}

func (r *SquadRepository) GetByID(_ context.Context, leagueID, squadID string) (roster.Squad, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	squad, ok := r.items[squadID]
	if !ok || squad.LeagueID != leagueID {
		return roster.Squad{}, false, nil
	}

	return squad.Clone(), true, nil
}

func (r *SquadRepository) GetByUserAndLeague(_ context.Context, userID, leagueID string) (roster.Squad, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, squad := range r.items {
		if squad.UserID == userID && squad.LeagueID == leagueID {
			return squad.Clone(), true, nil
		}
	}

	return roster.Squad{}, false, nil
}

func (r *SquadRepository) ListByLeague(_ context.Context, leagueID string) ([]roster.Squad, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]roster.Squad, 0, len(r.items))
	for _, squad := range r.items {
		if squad.LeagueID != leagueID {
			continue
		}
		out = append(out, squad.Clone())
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})

	return out, nil
}

func (r *SquadRepository) Upsert(_ context.Context, squad roster.Squad) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[squad.ID] = squad.Clone()
	return nil
}
