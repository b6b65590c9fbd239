package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/pitchside/fantasy-core/internal/domain/scoring"
)

const scoreColumns = `
squad_public_id, league_public_id, user_id, gameweek, total, breakdown,
captain_public_id, transfer_penalty, created_at`

type ScoreRepository struct {
	db *sqlx.DB
}

func NewScoreRepository(db *sqlx.DB) *ScoreRepository {
	return &ScoreRepository{db: db}
}

// Insert writes a score entry exactly once. The unique index on
// (squad_public_id, gameweek) is the idempotency guard; a conflict maps to
// scoring.ErrAlreadyScored.
func (r *ScoreRepository) Insert(ctx context.Context, entry scoring.ScoreEntry) error {
	breakdown, err := encodeBreakdown(entry.Breakdown)
	if err != nil {
		return err
	}

	const query = `
INSERT INTO score_entries (
    squad_public_id, league_public_id, user_id, gameweek, total, breakdown,
    captain_public_id, transfer_penalty, created_at
) VALUES (
    :squad_public_id, :league_public_id, :user_id, :gameweek, :total, :breakdown,
    :captain_public_id, :transfer_penalty, :created_at
)`

	args := map[string]any{
		"squad_public_id":   entry.SquadID,
		"league_public_id":  entry.LeagueID,
		"user_id":           entry.UserID,
		"gameweek":          entry.Gameweek,
		"total":             entry.Total,
		"breakdown":         breakdown,
		"captain_public_id": entry.CaptainID,
		"transfer_penalty":  entry.TransferPenalty,
		"created_at":        entry.CreatedAt,
	}
	insertSQL, insertArgs, err := sqlx.Named(query, args)
	if err != nil {
		return fmt.Errorf("bind insert score entry query: %w", err)
	}
	insertSQL = r.db.Rebind(insertSQL)

	if _, err := r.db.ExecContext(ctx, insertSQL, insertArgs...); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: squad=%s gameweek=%d", scoring.ErrAlreadyScored, entry.SquadID, entry.Gameweek)
		}
		return fmt.Errorf("insert score entry: %w", err)
	}

	return nil
}

func (r *ScoreRepository) Get(ctx context.Context, squadID string, gameweek int) (scoring.ScoreEntry, bool, error) {
	query := `
SELECT ` + scoreColumns + `
FROM score_entries
WHERE squad_public_id = $1
  AND gameweek = $2`

	var row scoreRow
	if err := r.db.GetContext(ctx, &row, query, squadID, gameweek); err != nil {
		if isNotFound(err) {
			return scoring.ScoreEntry{}, false, nil
		}
		return scoring.ScoreEntry{}, false, fmt.Errorf("get score entry: %w", err)
	}

	entry, err := row.toDomain()
	if err != nil {
		return scoring.ScoreEntry{}, false, err
	}

	return entry, true, nil
}

func (r *ScoreRepository) ListBySquad(ctx context.Context, squadID string) ([]scoring.ScoreEntry, error) {
	query := `
SELECT ` + scoreColumns + `
FROM score_entries
WHERE squad_public_id = $1
ORDER BY gameweek`

	var rows []scoreRow
	if err := r.db.SelectContext(ctx, &rows, query, squadID); err != nil {
		return nil, fmt.Errorf("list score entries by squad: %w", err)
	}

	return scoreRowsToDomain(rows)
}

func (r *ScoreRepository) ListByLeague(ctx context.Context, leagueID string) ([]scoring.ScoreEntry, error) {
	query := `
SELECT ` + scoreColumns + `
FROM score_entries
WHERE league_public_id = $1
ORDER BY squad_public_id, gameweek`

	var rows []scoreRow
	if err := r.db.SelectContext(ctx, &rows, query, leagueID); err != nil {
		return nil, fmt.Errorf("list score entries by league: %w", err)
	}

	return scoreRowsToDomain(rows)
}

func scoreRowsToDomain(rows []scoreRow) ([]scoring.ScoreEntry, error) {
	out := make([]scoring.ScoreEntry, 0, len(rows))
	for _, row := range rows {
		entry, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, entry)
	}
	return out, nil
}
