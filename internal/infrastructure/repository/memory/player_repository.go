package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/pitchside/fantasy-core/internal/domain/player"
)

type PlayerRepository struct {
	mu    sync.RWMutex
	items map[string]map[string]player.Player
}

func NewPlayerRepository() *PlayerRepository {
	return &PlayerRepository{items: make(map[string]map[string]player.Player)}
}

func (r *PlayerRepository) ListByLeague(_ context.Context, leagueID string, filter player.Filter) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	byID := r.items[leagueID]
	out := make([]player.Player, 0, len(byID))
	for _, item := range byID {
		if !filter.Matches(item) {
			continue
		}
		out = append(out, item)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})

	return out, nil
}

func (r *PlayerRepository) GetByID(_ context.Context, leagueID, playerID string) (player.Player, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[leagueID][playerID]
	if !ok {
		return player.Player{}, false, nil
	}

	return item, true, nil
}

func (r *PlayerRepository) GetByIDs(_ context.Context, leagueID string, playerIDs []string) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	byID := r.items[leagueID]
	out := make([]player.Player, 0, len(playerIDs))
	seen := make(map[string]struct{}, len(playerIDs))
	for _, playerID := range playerIDs {
		if _, ok := seen[playerID]; ok {
			continue
		}
		seen[playerID] = struct{}{}
		if item, ok := byID[playerID]; ok {
			out = append(out, item)
		}
	}

	return out, nil
}

func (r *PlayerRepository) Put(item player.Player) {
	r.mu.Lock()
	defer r.mu.Unlock()

	byID, ok := r.items[item.LeagueID]
	if !ok {
		byID = make(map[string]player.Player)
		r.items[item.LeagueID] = byID
	}
	byID[item.ID] = item
}
