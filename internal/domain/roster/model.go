package roster

import (
	"fmt"
	"time"
)

// TransferWindow tracks transfer usage inside one gameweek boundary. The
// penalty accumulated here is charged at scoring time, never against
// already-published score entries.
type TransferWindow struct {
	Gameweek      int
	TransfersUsed int
	PenaltyPoints int
}

// Squad is one user's fantasy team in a league. PlayerIDs is the ordered
// selection; remaining budget is always recomputed from catalog prices.
type Squad struct {
	ID        string
	UserID    string
	LeagueID  string
	Name      string
	PlayerIDs []string
	CaptainID string
	BudgetCap int64
	Window    TransferWindow
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (s Squad) ValidateBasic() error {
	if s.ID == "" {
		return fmt.Errorf("squad id is required")
	}
	if s.UserID == "" {
		return fmt.Errorf("user id is required")
	}
	if s.LeagueID == "" {
		return fmt.Errorf("league id is required")
	}
	if s.Name == "" {
		return fmt.Errorf("squad name is required")
	}
	if s.BudgetCap <= 0 {
		return fmt.Errorf("budget cap must be greater than zero")
	}
	if len(s.PlayerIDs) == 0 {
		return fmt.Errorf("squad players are required")
	}
	if s.CaptainID == "" {
		return fmt.Errorf("captain id is required")
	}

	return nil
}

// Contains reports whether the player is part of the squad.
func (s Squad) Contains(playerID string) bool {
	for _, id := range s.PlayerIDs {
		if id == playerID {
			return true
		}
	}
	return false
}

// Clone returns a deep copy so callers can mutate candidates freely.
func (s Squad) Clone() Squad {
	copied := s
	copied.PlayerIDs = append([]string(nil), s.PlayerIDs...)
	return copied
}
