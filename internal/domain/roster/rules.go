package roster

import "github.com/pitchside/fantasy-core/internal/domain/player"

// QuotaRange bounds how many players of one position a squad may carry.
type QuotaRange struct {
	Min int
	Max int
}

// Rules stores roster composition and transfer parameters. Rule tables live
// here as data so season changes never touch the validator itself.
type Rules struct {
	SquadSize             int
	BudgetCap             int64
	MaxPerClub            int
	Quota                 map[player.Position]QuotaRange
	FreeTransfers         int
	TransferPenaltyPoints int
}

func DefaultRules() Rules {
	return Rules{
		SquadSize:             11,
		BudgetCap:             1000,
		MaxPerClub:            3,
		FreeTransfers:         1,
		TransferPenaltyPoints: 4,
		Quota: map[player.Position]QuotaRange{
			player.PositionGoalkeeper: {Min: 1, Max: 1},
			player.PositionDefender:   {Min: 3, Max: 5},
			player.PositionMidfielder: {Min: 3, Max: 5},
			player.PositionForward:    {Min: 1, Max: 3},
		},
	}
}
