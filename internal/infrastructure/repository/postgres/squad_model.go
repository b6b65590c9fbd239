package postgres

import (
	"time"

	"github.com/pitchside/fantasy-core/internal/domain/roster"
)

type squadRow struct {
	PublicID            string    `db:"public_id"`
	UserID              string    `db:"user_id"`
	LeaguePublicID      string    `db:"league_public_id"`
	Name                string    `db:"name"`
	CaptainPublicID     string    `db:"captain_public_id"`
	BudgetCap           int64     `db:"budget_cap"`
	WindowGameweek      int       `db:"window_gameweek"`
	WindowTransfersUsed int       `db:"window_transfers_used"`
	WindowPenaltyPoints int       `db:"window_penalty_points"`
	CreatedAt           time.Time `db:"created_at"`
	UpdatedAt           time.Time `db:"updated_at"`
}

func (r squadRow) toDomain(playerIDs []string) roster.Squad {
	return roster.Squad{
		ID:        r.PublicID,
		UserID:    r.UserID,
		LeagueID:  r.LeaguePublicID,
		Name:      r.Name,
		PlayerIDs: playerIDs,
		CaptainID: r.CaptainPublicID,
		BudgetCap: r.BudgetCap,
		Window: roster.TransferWindow{
			Gameweek:      r.WindowGameweek,
			TransfersUsed: r.WindowTransfersUsed,
			PenaltyPoints: r.WindowPenaltyPoints,
		},
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}
