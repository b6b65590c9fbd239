package roster

import (
	"errors"
	"fmt"

	"github.com/pitchside/fantasy-core/internal/domain/player"
)

var (
	ErrInvalidSquadSize  = errors.New("invalid squad size")
	ErrDuplicatePlayer   = errors.New("duplicate player in squad")
	ErrUnknownPlayer     = errors.New("unknown player")
	ErrIneligiblePlayer  = errors.New("player is not eligible for selection")
	ErrPositionQuota     = errors.New("position quota violated")
	ErrClubCapExceeded   = errors.New("max players from same club exceeded")
	ErrBudgetExceeded    = errors.New("budget cap exceeded")
	ErrCaptainNotInSquad = errors.New("captain is not a squad member")
)

type ViolationCode string

const (
	ViolationSquadSize         ViolationCode = "squad_size"
	ViolationDuplicatePlayer   ViolationCode = "duplicate_player"
	ViolationUnknownPlayer     ViolationCode = "unknown_player"
	ViolationIneligible        ViolationCode = "ineligible_player"
	ViolationPositionQuota     ViolationCode = "position_quota"
	ViolationClubCap           ViolationCode = "club_cap"
	ViolationBudgetExceeded    ViolationCode = "budget_exceeded"
	ViolationCaptainNotInSquad ViolationCode = "captain_not_in_squad"
)

// Violation is one broken composition rule, carrying enough detail for the
// display layer to render it without further lookups.
type Violation struct {
	Code       ViolationCode   `json:"code"`
	PlayerID   string          `json:"playerId,omitempty"`
	Status     player.Status   `json:"status,omitempty"`
	Reason     string          `json:"reason,omitempty"`
	Position   player.Position `json:"position,omitempty"`
	Count      int             `json:"count,omitempty"`
	Min        int             `json:"min,omitempty"`
	Max        int             `json:"max,omitempty"`
	ClubID     string          `json:"clubId,omitempty"`
	TotalPrice int64           `json:"totalPrice,omitempty"`
	BudgetCap  int64           `json:"budgetCap,omitempty"`
}

func (v Violation) sentinel() error {
	switch v.Code {
	case ViolationSquadSize:
		return ErrInvalidSquadSize
	case ViolationDuplicatePlayer:
		return ErrDuplicatePlayer
	case ViolationUnknownPlayer:
		return ErrUnknownPlayer
	case ViolationIneligible:
		return ErrIneligiblePlayer
	case ViolationPositionQuota:
		return ErrPositionQuota
	case ViolationClubCap:
		return ErrClubCapExceeded
	case ViolationBudgetExceeded:
		return ErrBudgetExceeded
	case ViolationCaptainNotInSquad:
		return ErrCaptainNotInSquad
	default:
		return errors.New(string(v.Code))
	}
}

// Err wraps the violation into its sentinel so callers can errors.Is on it.
func (v Violation) Err() error {
	switch v.Code {
	case ViolationSquadSize:
		return fmt.Errorf("%w: expected %d, got %d", ErrInvalidSquadSize, v.Max, v.Count)
	case ViolationDuplicatePlayer, ViolationUnknownPlayer:
		return fmt.Errorf("%w: %s", v.sentinel(), v.PlayerID)
	case ViolationIneligible:
		return fmt.Errorf("%w: player=%s status=%s", ErrIneligiblePlayer, v.PlayerID, v.Status)
	case ViolationPositionQuota:
		return fmt.Errorf("%w: pos=%s count=%d allowed=[%d,%d]", ErrPositionQuota, v.Position, v.Count, v.Min, v.Max)
	case ViolationClubCap:
		return fmt.Errorf("%w: club=%s count=%d max=%d", ErrClubCapExceeded, v.ClubID, v.Count, v.Max)
	case ViolationBudgetExceeded:
		return fmt.Errorf("%w: total=%d cap=%d", ErrBudgetExceeded, v.TotalPrice, v.BudgetCap)
	case ViolationCaptainNotInSquad:
		return fmt.Errorf("%w: captain=%s", ErrCaptainNotInSquad, v.PlayerID)
	default:
		return v.sentinel()
	}
}

// Result is the outcome of a roster validation pass. Violations are ordered
// by check: existence, eligibility, position quota, club cap, budget, captain
// membership. RemainingBudget is only meaningful when the result is valid.
type Result struct {
	Violations      []Violation `json:"violations,omitempty"`
	RemainingBudget int64       `json:"remainingBudget"`
}

func (r Result) Valid() bool {
	return len(r.Violations) == 0
}

// Err returns nil for a valid result, or the first violation wrapped in its
// sentinel for error-style propagation.
func (r Result) Err() error {
	if len(r.Violations) == 0 {
		return nil
	}
	return r.Violations[0].Err()
}
