package scoring

import "github.com/pitchside/fantasy-core/internal/domain/player"

// Weights is the scoring rule table. It is configuration handed into Score,
// not logic, so a rule change between seasons is a data change.
type Weights struct {
	GoalByPosition       map[player.Position]int
	CleanSheetByPosition map[player.Position]int
	Assist               int
	YellowCard           int
	RedCard              int
	Appearance           int
	FullMatch            int
	CaptainMultiplier    int
	// CleanSheetMinMinutes gates the clean-sheet award; a cameo appearance
	// in a shutout earns nothing.
	CleanSheetMinMinutes int
}

func DefaultWeights() Weights {
	return Weights{
		GoalByPosition: map[player.Position]int{
			player.PositionForward:    6,
			player.PositionMidfielder: 8,
			player.PositionDefender:   10,
			player.PositionGoalkeeper: 10,
		},
		CleanSheetByPosition: map[player.Position]int{
			player.PositionDefender:   4,
			player.PositionGoalkeeper: 4,
		},
		Assist:               3,
		YellowCard:           -1,
		RedCard:              -3,
		Appearance:           1,
		FullMatch:            1,
		CaptainMultiplier:    2,
		CleanSheetMinMinutes: 60,
	}
}
