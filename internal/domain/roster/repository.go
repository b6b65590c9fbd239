package roster

import "context"

// Repository describes squad persistence needs from use cases. The engine
// itself never writes storage; accepted squads are handed here by callers.
type Repository interface {
	GetByID(ctx context.Context, leagueID, squadID string) (Squad, bool, error)
	GetByUserAndLeague(ctx context.Context, userID, leagueID string) (Squad, bool, error)
	ListByLeague(ctx context.Context, leagueID string) ([]Squad, error)
	Upsert(ctx context.Context, squad Squad) error
}
