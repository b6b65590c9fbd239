package scoring

import (
	"github.com/pitchside/fantasy-core/internal/domain/player"
	"github.com/pitchside/fantasy-core/internal/domain/roster"
)

// PlayerPoints computes the raw (pre-multiplier) points for one performance
// line under the given weight table.
func PlayerPoints(rec PerformanceRecord, pos player.Position, weights Weights) int {
	if rec.Minutes <= 0 {
		return 0
	}

	points := weights.Appearance
	if rec.Minutes >= weights.CleanSheetMinMinutes {
		points += weights.FullMatch
	}
	points += rec.Goals * weights.GoalByPosition[pos]
	points += rec.Assists * weights.Assist
	if rec.CleanSheet && rec.Minutes >= weights.CleanSheetMinMinutes {
		points += weights.CleanSheetByPosition[pos]
	}
	points += rec.YellowCards * weights.YellowCard
	points += rec.RedCards * weights.RedCard
	points += rec.BonusPoints

	return points
}

// Score turns a finalized squad plus one gameweek's results into a
// ScoreEntry. The captain's line is multiplied exactly once before summing;
// the squad's pending transfer penalty for this gameweek is subtracted at
// the end. Pure: nothing is persisted here.
func Score(squad roster.Squad, catalog map[string]player.Player, result GameweekResult, weights Weights) ScoreEntry {
	breakdown := make([]PlayerScore, 0, len(squad.PlayerIDs))
	total := 0

	multiplier := weights.CaptainMultiplier
	if multiplier <= 0 {
		multiplier = 1
	}

	for _, playerID := range squad.PlayerIDs {
		pos := catalog[playerID].Position
		base := 0
		if rec, ok := result.Records[playerID]; ok {
			base = PlayerPoints(rec, pos, weights)
		}

		row := PlayerScore{
			PlayerID:      playerID,
			Position:      pos,
			BasePoints:    base,
			Multiplier:    1,
			CountedPoints: base,
		}
		if playerID == squad.CaptainID {
			row.IsCaptain = true
			row.Multiplier = multiplier
			row.CountedPoints = base * multiplier
		}

		total += row.CountedPoints
		breakdown = append(breakdown, row)
	}

	penalty := 0
	if squad.Window.Gameweek == result.Gameweek {
		penalty = squad.Window.PenaltyPoints
	}
	total -= penalty

	return ScoreEntry{
		SquadID:         squad.ID,
		LeagueID:        squad.LeagueID,
		UserID:          squad.UserID,
		Gameweek:        result.Gameweek,
		Total:           total,
		Breakdown:       breakdown,
		CaptainID:       squad.CaptainID,
		TransferPenalty: penalty,
		CreatedAt:       result.PublishedAt,
	}
}
