package scoring

import "context"

// Repository stores published score entries. Insert must fail with
// ErrAlreadyScored when an entry for (SquadID, Gameweek) already exists so
// repeated publication can never double-count.
type Repository interface {
	Insert(ctx context.Context, entry ScoreEntry) error
	Get(ctx context.Context, squadID string, gameweek int) (ScoreEntry, bool, error)
	ListBySquad(ctx context.Context, squadID string) ([]ScoreEntry, error)
	ListByLeague(ctx context.Context, leagueID string) ([]ScoreEntry, error)
}
