package postgres

import (
	"fmt"
	"time"

	"github.com/bytedance/sonic"

	"github.com/pitchside/fantasy-core/internal/domain/scoring"
)

type scoreRow struct {
	SquadPublicID   string    `db:"squad_public_id"`
	LeaguePublicID  string    `db:"league_public_id"`
	UserID          string    `db:"user_id"`
	Gameweek        int       `db:"gameweek"`
	Total           int       `db:"total"`
	Breakdown       []byte    `db:"breakdown"`
	CaptainPublicID string    `db:"captain_public_id"`
	TransferPenalty int       `db:"transfer_penalty"`
	CreatedAt       time.Time `db:"created_at"`
}

func (r scoreRow) toDomain() (scoring.ScoreEntry, error) {
	var breakdown []scoring.PlayerScore
	if len(r.Breakdown) > 0 {
		if err := sonic.Unmarshal(r.Breakdown, &breakdown); err != nil {
			return scoring.ScoreEntry{}, fmt.Errorf("decode score breakdown: %w", err)
		}
	}

	return scoring.ScoreEntry{
		SquadID:         r.SquadPublicID,
		LeagueID:        r.LeaguePublicID,
		UserID:          r.UserID,
		Gameweek:        r.Gameweek,
		Total:           r.Total,
		Breakdown:       breakdown,
		CaptainID:       r.CaptainPublicID,
		TransferPenalty: r.TransferPenalty,
		CreatedAt:       r.CreatedAt,
	}, nil
}

func encodeBreakdown(breakdown []scoring.PlayerScore) ([]byte, error) {
	if breakdown == nil {
		breakdown = []scoring.PlayerScore{}
	}
	encoded, err := sonic.Marshal(breakdown)
	if err != nil {
		return nil, fmt.Errorf("encode score breakdown: %w", err)
	}
	return encoded, nil
}
