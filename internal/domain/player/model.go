package player

import "fmt"

// Position represents football position categories used in roster rules.
type Position string

const (
	PositionGoalkeeper Position = "GK"
	PositionDefender   Position = "DEF"
	PositionMidfielder Position = "MID"
	PositionForward    Position = "FWD"
)

var AllPositions = map[Position]struct{}{
	PositionGoalkeeper: {},
	PositionDefender:   {},
	PositionMidfielder: {},
	PositionForward:    {},
}

// Status is the match-day eligibility of a player. Transitions are driven by
// the external data provider; the engine only reads it.
type Status string

const (
	StatusAvailable  Status = "available"
	StatusDoubtful   Status = "doubtful"
	StatusInjured    Status = "injured"
	StatusSuspended  Status = "suspended"
	StatusEliminated Status = "eliminated"
)

var AllStatuses = map[Status]struct{}{
	StatusAvailable:  {},
	StatusDoubtful:   {},
	StatusInjured:    {},
	StatusSuspended:  {},
	StatusEliminated: {},
}

// Selectable reports whether the player may be picked into a squad.
func (s Status) Selectable() bool {
	return s == StatusAvailable || s == StatusDoubtful
}

// Player is a selectable athlete in the per-gameweek catalog. Price is in
// integer minor units so budget arithmetic stays exact.
type Player struct {
	ID           string
	LeagueID     string
	ClubID       string
	Name         string
	Position     Position
	Price        int64
	SeasonPoints int
	Status       Status
	StatusReason string
}

func (p Player) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("player id is required")
	}
	if p.LeagueID == "" {
		return fmt.Errorf("player league id is required")
	}
	if p.ClubID == "" {
		return fmt.Errorf("player club id is required")
	}
	if p.Name == "" {
		return fmt.Errorf("player name is required")
	}
	if _, ok := AllPositions[p.Position]; !ok {
		return fmt.Errorf("invalid player position: %s", p.Position)
	}
	if _, ok := AllStatuses[p.Status]; !ok {
		return fmt.Errorf("invalid player status: %s", p.Status)
	}
	if p.Price <= 0 {
		return fmt.Errorf("player price must be greater than zero")
	}

	return nil
}

// Index builds a lookup map keyed by player id.
func Index(players []Player) map[string]Player {
	out := make(map[string]Player, len(players))
	for _, p := range players {
		out[p.ID] = p
	}
	return out
}
