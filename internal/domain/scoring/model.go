package scoring

import (
	"errors"
	"fmt"
	"time"

	"github.com/pitchside/fantasy-core/internal/domain/player"
)

// ErrAlreadyScored rejects a second publication for the same squad and
// gameweek; score entries are append-only once written.
var ErrAlreadyScored = errors.New("gameweek already scored for squad")

// PerformanceRecord is one player's line from a completed gameweek, as
// published by the external results provider.
type PerformanceRecord struct {
	Minutes     int  `json:"minutes"`
	Goals       int  `json:"goals"`
	Assists     int  `json:"assists"`
	CleanSheet  bool `json:"cleanSheet"`
	YellowCards int  `json:"yellowCards"`
	RedCards    int  `json:"redCards"`
	BonusPoints int  `json:"bonusPoints"`
}

// GameweekResult maps player ids to their performance for one gameweek.
// Immutable once published; players with no record did not play.
type GameweekResult struct {
	LeagueID    string                       `json:"leagueId"`
	Gameweek    int                          `json:"gameweek"`
	Records     map[string]PerformanceRecord `json:"records"`
	PublishedAt time.Time                    `json:"publishedAt"`
}

func (r GameweekResult) Validate() error {
	if r.LeagueID == "" {
		return fmt.Errorf("league id is required")
	}
	if r.Gameweek <= 0 {
		return fmt.Errorf("gameweek must be greater than zero")
	}
	return nil
}

// PlayerScore is one squad member's contribution to a gameweek total.
type PlayerScore struct {
	PlayerID      string          `json:"playerId"`
	Position      player.Position `json:"position"`
	BasePoints    int             `json:"basePoints"`
	IsCaptain     bool            `json:"isCaptain"`
	Multiplier    int             `json:"multiplier"`
	CountedPoints int             `json:"countedPoints"`
}

// ScoreEntry is the published gameweek score for one squad. Keyed by
// (SquadID, Gameweek); written once and never mutated.
type ScoreEntry struct {
	SquadID         string        `json:"squadId"`
	LeagueID        string        `json:"leagueId"`
	UserID          string        `json:"userId"`
	Gameweek        int           `json:"gameweek"`
	Total           int           `json:"total"`
	Breakdown       []PlayerScore `json:"breakdown"`
	CaptainID       string        `json:"captainId"`
	TransferPenalty int           `json:"transferPenalty"`
	CreatedAt       time.Time     `json:"createdAt"`
}
