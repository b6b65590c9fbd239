package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/pitchside/fantasy-core/internal/domain/scoring"
)

type ScoreRepository struct {
	mu    sync.RWMutex
	items map[string]scoring.ScoreEntry
}

func NewScoreRepository() *ScoreRepository {
	return &ScoreRepository{items: make(map[string]scoring.ScoreEntry)}
}

func (r *ScoreRepository) Insert(_ context.Context, entry scoring.ScoreEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := scoreKey(entry.SquadID, entry.Gameweek)
	if _, exists := r.items[key]; exists {
		return fmt.Errorf("%w: squad=%s gameweek=%d", scoring.ErrAlreadyScored, entry.SquadID, entry.Gameweek)
	}
	r.items[key] = cloneEntry(entry)

	return nil
}

func (r *ScoreRepository) Get(_ context.Context, squadID string, gameweek int) (scoring.ScoreEntry, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.items[scoreKey(squadID, gameweek)]
	if !ok {
		return scoring.ScoreEntry{}, false, nil
	}

	return cloneEntry(entry), true, nil
}

func (r *ScoreRepository) ListBySquad(_ context.Context, squadID string) ([]scoring.ScoreEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]scoring.ScoreEntry, 0)
	for _, entry := range r.items {
		if entry.SquadID != squadID {
			continue
		}
		out = append(out, cloneEntry(entry))
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Gameweek < out[j].Gameweek
	})

	return out, nil
}

func (r *ScoreRepository) ListByLeague(_ context.Context, leagueID string) ([]scoring.ScoreEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]scoring.ScoreEntry, 0)
	for _, entry := range r.items {
		if entry.LeagueID != leagueID {
			continue
		}
		out = append(out, cloneEntry(entry))
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].SquadID != out[j].SquadID {
			return out[i].SquadID < out[j].SquadID
		}
		return out[i].Gameweek < out[j].Gameweek
	})

	return out, nil
}

func scoreKey(squadID string, gameweek int) string {
	return fmt.Sprintf("%s::%d", squadID, gameweek)
}

func cloneEntry(entry scoring.ScoreEntry) scoring.ScoreEntry {
	copied := entry
	copied.Breakdown = append([]scoring.PlayerScore(nil), entry.Breakdown...)
	return copied
}
