package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/pitchside/fantasy-core/internal/domain/roster"
)

const squadColumns = `
public_id, user_id, league_public_id, name, captain_public_id, budget_cap,
window_gameweek, window_transfers_used, window_penalty_points, created_at, updated_at`

type SquadRepository struct {
	db *sqlx.DB
}

func NewSquadRepository(db *sqlx.DB) *SquadRepository {
	return &SquadRepository{db: db}
}

func (r *SquadRepository) GetByID(ctx context.Context, leagueID, squadID string) (roster.Squad, bool, error) {
	query := `
SELECT ` + squadColumns + `
FROM squads
WHERE league_public_id = $1
  AND public_id = $2
  AND deleted_at IS NULL`

	var row squadRow
	if err := r.db.GetContext(ctx, &row, query, leagueID, squadID); err != nil {
		if isNotFound(err) {
			return roster.Squad{}, false, nil
		}
		return roster.Squad{}, false, fmt.Errorf("get squad: %w", err)
	}

	playerIDs, err := r.listSquadPlayers(ctx, row.PublicID)
	if err != nil {
		return roster.Squad{}, false, err
	}

	return row.toDomain(playerIDs), true, nil
}

func (r *SquadRepository) GetByUserAndLeague(ctx context.Context, userID, leagueID string) (roster.Squad, bool, error) {
	query := `
SELECT ` + squadColumns + `
FROM squads
WHERE user_id = $1
  AND league_public_id = $2
  AND deleted_at IS NULL`

	var row squadRow
	if err := r.db.GetContext(ctx, &row, query, userID, leagueID); err != nil {
		if isNotFound(err) {
			return roster.Squad{}, false, nil
		}
		return roster.Squad{}, false, fmt.Errorf("get squad by user and league: %w", err)
	}

	playerIDs, err := r.listSquadPlayers(ctx, row.PublicID)
	if err != nil {
		return roster.Squad{}, false, err
	}

	return row.toDomain(playerIDs), true, nil
}

func (r *SquadRepository) ListByLeague(ctx context.Context, leagueID string) ([]roster.Squad, error) {
	query := `
SELECT ` + squadColumns + `
FROM squads
WHERE league_public_id = $1
  AND deleted_at IS NULL
ORDER BY public_id`

	var rows []squadRow
	if err := r.db.SelectContext(ctx, &rows, query, leagueID); err != nil {
		return nil, fmt.Errorf("list squads by league: %w", err)
	}

	out := make([]roster.Squad, 0, len(rows))
	for _, row := range rows {
		playerIDs, err := r.listSquadPlayers(ctx, row.PublicID)
		if err != nil {
			return nil, err
		}
		out = append(out, row.toDomain(playerIDs))
	}

	return out, nil
}

func (r *SquadRepository) Upsert(ctx context.Context, squad roster.Squad) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx for squad upsert: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	const upsertSquadQuery = `
INSERT INTO squads (
    public_id, user_id, league_public_id, name, captain_public_id, budget_cap,
    window_gameweek, window_transfers_used, window_penalty_points
) VALUES (
    :public_id, :user_id, :league_public_id, :name, :captain_public_id, :budget_cap,
    :window_gameweek, :window_transfers_used, :window_penalty_points
)
ON CONFLICT (user_id, league_public_id) WHERE deleted_at IS NULL
DO UPDATE SET
    name = EXCLUDED.name,
    captain_public_id = EXCLUDED.captain_public_id,
    budget_cap = EXCLUDED.budget_cap,
    window_gameweek = EXCLUDED.window_gameweek,
    window_transfers_used = EXCLUDED.window_transfers_used,
    window_penalty_points = EXCLUDED.window_penalty_points,
    updated_at = NOW(),
    deleted_at = NULL
RETURNING public_id`

	upsertArgs := map[string]any{
		"public_id":             squad.ID,
		"user_id":               squad.UserID,
		"league_public_id":      squad.LeagueID,
		"name":                  squad.Name,
		"captain_public_id":     squad.CaptainID,
		"budget_cap":            squad.BudgetCap,
		"window_gameweek":       squad.Window.Gameweek,
		"window_transfers_used": squad.Window.TransfersUsed,
		"window_penalty_points": squad.Window.PenaltyPoints,
	}
	upsertSQL, upsertSQLArgs, err := sqlx.Named(upsertSquadQuery, upsertArgs)
	if err != nil {
		return fmt.Errorf("bind upsert squad query: %w", err)
	}
	upsertSQL = tx.Rebind(upsertSQL)

	var publicID string
	if err := tx.GetContext(ctx, &publicID, upsertSQL, upsertSQLArgs...); err != nil {
		return fmt.Errorf("upsert squad: %w", err)
	}

	const clearQuery = `
DELETE FROM squad_players
WHERE squad_public_id = $1`
	if _, err := tx.ExecContext(ctx, clearQuery, publicID); err != nil {
		return fmt.Errorf("clear existing squad players: %w", err)
	}

	const insertPlayerQuery = `
INSERT INTO squad_players (squad_public_id, player_public_id, slot)
VALUES (:squad_public_id, :player_public_id, :slot)`

	for slot, playerID := range squad.PlayerIDs {
		playerSQL, playerArgs, err := sqlx.Named(insertPlayerQuery, map[string]any{
			"squad_public_id":  publicID,
			"player_public_id": playerID,
			"slot":             slot,
		})
		if err != nil {
			return fmt.Errorf("bind insert squad player=%s query: %w", playerID, err)
		}
		playerSQL = tx.Rebind(playerSQL)
		if _, err := tx.ExecContext(ctx, playerSQL, playerArgs...); err != nil {
			return fmt.Errorf("insert squad player=%s: %w", playerID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit squad upsert tx: %w", err)
	}

	return nil
}

func (r *SquadRepository) listSquadPlayers(ctx context.Context, squadID string) ([]string, error) {
	const query = `
SELECT player_public_id
FROM squad_players
WHERE squad_public_id = $1
ORDER BY slot`

	var playerIDs []string
	if err := r.db.SelectContext(ctx, &playerIDs, query, squadID); err != nil {
		return nil, fmt.Errorf("list squad players: %w", err)
	}

	return playerIDs, nil
}
