package player

import "context"

// Filter narrows catalog listings. Zero value matches everything.
type Filter struct {
	Positions []Position
	Statuses  []Status
	ClubID    string
}

func (f Filter) Matches(p Player) bool {
	if f.ClubID != "" && p.ClubID != f.ClubID {
		return false
	}
	if len(f.Positions) > 0 && !containsPosition(f.Positions, p.Position) {
		return false
	}
	if len(f.Statuses) > 0 && !containsStatus(f.Statuses, p.Status) {
		return false
	}
	return true
}

func containsPosition(items []Position, v Position) bool {
	for _, item := range items {
		if item == v {
			return true
		}
	}
	return false
}

func containsStatus(items []Status, v Status) bool {
	for _, item := range items {
		if item == v {
			return true
		}
	}
	return false
}

// Repository describes read-only catalog access. The provider owns the data;
// nothing here mutates it.
type Repository interface {
	ListByLeague(ctx context.Context, leagueID string, filter Filter) ([]Player, error)
	GetByID(ctx context.Context, leagueID, playerID string) (Player, bool, error)
	GetByIDs(ctx context.Context, leagueID string, playerIDs []string) ([]Player, error)
}
