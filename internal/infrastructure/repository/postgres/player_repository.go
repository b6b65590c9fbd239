package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/pitchside/fantasy-core/internal/domain/player"
)

type PlayerRepository struct {
	db *sqlx.DB
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) ListByLeague(ctx context.Context, leagueID string, filter player.Filter) ([]player.Player, error) {
	const query = `
SELECT public_id, league_public_id, club_public_id, name, position, price, season_points, status, status_reason
FROM players
WHERE league_public_id = $1
  AND deleted_at IS NULL
ORDER BY public_id`

	var rows []playerRow
	if err := r.db.SelectContext(ctx, &rows, query, leagueID); err != nil {
		return nil, fmt.Errorf("list players by league: %w", err)
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		item := row.toDomain()
		if !filter.Matches(item) {
			continue
		}
		out = append(out, item)
	}

	return out, nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, leagueID, playerID string) (player.Player, bool, error) {
	const query = `
SELECT public_id, league_public_id, club_public_id, name, position, price, season_points, status, status_reason
FROM players
WHERE league_public_id = $1
  AND public_id = $2
  AND deleted_at IS NULL`

	var row playerRow
	if err := r.db.GetContext(ctx, &row, query, leagueID, playerID); err != nil {
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		return player.Player{}, false, fmt.Errorf("get player: %w", err)
	}

	return row.toDomain(), true, nil
}

func (r *PlayerRepository) GetByIDs(ctx context.Context, leagueID string, playerIDs []string) ([]player.Player, error) {
	if len(playerIDs) == 0 {
		return []player.Player{}, nil
	}

	const query = `
SELECT public_id, league_public_id, club_public_id, name, position, price, season_points, status, status_reason
FROM players
WHERE league_public_id = ?
  AND public_id IN (?)
  AND deleted_at IS NULL
ORDER BY public_id`

	boundQuery, args, err := sqlx.In(query, leagueID, playerIDs)
	if err != nil {
		return nil, fmt.Errorf("bind players by ids query: %w", err)
	}
	boundQuery = r.db.Rebind(boundQuery)

	var rows []playerRow
	if err := r.db.SelectContext(ctx, &rows, boundQuery, args...); err != nil {
		return nil, fmt.Errorf("list players by ids: %w", err)
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}
