package league

import "context"

// Repository describes league lookups needed by use cases.
type Repository interface {
	GetByID(ctx context.Context, leagueID string) (League, bool, error)
	List(ctx context.Context) ([]League, error)
}
