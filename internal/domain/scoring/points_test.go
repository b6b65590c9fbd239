package scoring

import (
	"testing"
	"time"

	"github.com/pitchside/fantasy-core/internal/domain/player"
	"github.com/pitchside/fantasy-core/internal/domain/roster"
)

func TestPlayerPoints(t *testing.T) {
	weights := DefaultWeights()

	tests := []struct {
		name string
		rec  PerformanceRecord
		pos  player.Position
		want int
	}{
		{
			name: "no minutes scores nothing",
			rec:  PerformanceRecord{Goals: 2, Assists: 1},
			pos:  player.PositionForward,
			want: 0,
		},
		{
			name: "forward brace over full match",
			rec:  PerformanceRecord{Minutes: 90, Goals: 2},
			pos:  player.PositionForward,
			// appearance 1 + full match 1 + 2 goals * 6
			want: 14,
		},
		{
			name: "defender clean sheet full match",
			rec:  PerformanceRecord{Minutes: 90, CleanSheet: true},
			pos:  player.PositionDefender,
			want: 6,
		},
		{
			name: "cameo clean sheet earns no shutout bonus",
			rec:  PerformanceRecord{Minutes: 30, CleanSheet: true},
			pos:  player.PositionGoalkeeper,
			want: 1,
		},
		{
			name: "midfielder goal outscores forward goal",
			rec:  PerformanceRecord{Minutes: 90, Goals: 1},
			pos:  player.PositionMidfielder,
			want: 10,
		},
		{
			name: "cards subtract",
			rec:  PerformanceRecord{Minutes: 90, YellowCards: 1, RedCards: 1},
			pos:  player.PositionMidfielder,
			want: -2,
		},
		{
			name: "bonus points pass through",
			rec:  PerformanceRecord{Minutes: 70, Assists: 2, BonusPoints: 3},
			pos:  player.PositionForward,
			want: 11,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := PlayerPoints(tc.rec, tc.pos, weights)
			if got != tc.want {
				t.Fatalf("expected %d points, got %d", tc.want, got)
			}
		})
	}
}

func scoringFixture() (roster.Squad, map[string]player.Player) {
	squad := roster.Squad{
		ID:        "squad-1",
		UserID:    "user-1",
		LeagueID:  "league-1",
		Name:      "Test XI",
		PlayerIDs: []string{"gk-1", "def-1", "mid-1", "fwd-1"},
		CaptainID: "fwd-1",
		BudgetCap: 1000,
	}

	catalog := map[string]player.Player{
		"gk-1":  {ID: "gk-1", Position: player.PositionGoalkeeper},
		"def-1": {ID: "def-1", Position: player.PositionDefender},
		"mid-1": {ID: "mid-1", Position: player.PositionMidfielder},
		"fwd-1": {ID: "fwd-1", Position: player.PositionForward},
	}

	return squad, catalog
}

func TestScore_CaptainMultipliedOnce(t *testing.T) {
	squad, catalog := scoringFixture()
	publishedAt := time.Date(2026, 8, 24, 22, 0, 0, 0, time.UTC)

	result := GameweekResult{
		LeagueID: "league-1",
		Gameweek: 3,
		Records: map[string]PerformanceRecord{
			"gk-1":  {Minutes: 90, CleanSheet: true}, // 6
			"def-1": {Minutes: 90, CleanSheet: true}, // 6
			"mid-1": {Minutes: 75, Assists: 1},       // 5
			"fwd-1": {Minutes: 90, Goals: 1},         // 8, doubled to 16
		},
		PublishedAt: publishedAt,
	}

	entry := Score(squad, catalog, result, DefaultWeights())

	if entry.Total != 33 {
		t.Fatalf("expected total 33, got %d", entry.Total)
	}
	if entry.SquadID != "squad-1" || entry.Gameweek != 3 {
		t.Fatalf("unexpected entry identity: %+v", entry)
	}
	if !entry.CreatedAt.Equal(publishedAt) {
		t.Fatalf("expected created at %v, got %v", publishedAt, entry.CreatedAt)
	}

	var captain PlayerScore
	for _, row := range entry.Breakdown {
		if row.PlayerID == "fwd-1" {
			captain = row
		}
	}
	if !captain.IsCaptain || captain.Multiplier != 2 {
		t.Fatalf("expected captain row with multiplier 2, got %+v", captain)
	}
	if captain.BasePoints != 8 || captain.CountedPoints != 16 {
		t.Fatalf("expected captain 8 base / 16 counted, got %+v", captain)
	}
}

func TestScore_MissingRecordCountsZero(t *testing.T) {
	squad, catalog := scoringFixture()

	result := GameweekResult{
		LeagueID: "league-1",
		Gameweek: 3,
		Records: map[string]PerformanceRecord{
			"fwd-1": {Minutes: 90},
		},
		PublishedAt: time.Now(),
	}

	entry := Score(squad, catalog, result, DefaultWeights())

	// Captain played 90 minutes: (1 + 1) * 2. Everyone else absent.
	if entry.Total != 4 {
		t.Fatalf("expected total 4, got %d", entry.Total)
	}
	for _, row := range entry.Breakdown {
		if row.PlayerID != "fwd-1" && row.BasePoints != 0 {
			t.Fatalf("expected zero points for absent player, got %+v", row)
		}
	}
}

func TestScore_TransferPenaltyChargedForMatchingWindow(t *testing.T) {
	squad, catalog := scoringFixture()
	squad.Window = roster.TransferWindow{Gameweek: 3, TransfersUsed: 3, PenaltyPoints: 8}

	result := GameweekResult{
		LeagueID: "league-1",
		Gameweek: 3,
		Records: map[string]PerformanceRecord{
			"fwd-1": {Minutes: 90, Goals: 1}, // 8, doubled to 16
		},
		PublishedAt: time.Now(),
	}

	entry := Score(squad, catalog, result, DefaultWeights())
	if entry.TransferPenalty != 8 {
		t.Fatalf("expected penalty 8, got %d", entry.TransferPenalty)
	}
	if entry.Total != 8 {
		t.Fatalf("expected total 16-8=8, got %d", entry.Total)
	}
}

func TestScore_StaleWindowPenaltyIgnored(t *testing.T) {
	squad, catalog := scoringFixture()
	squad.Window = roster.TransferWindow{Gameweek: 2, TransfersUsed: 2, PenaltyPoints: 4}

	result := GameweekResult{
		LeagueID:    "league-1",
		Gameweek:    3,
		Records:     map[string]PerformanceRecord{"fwd-1": {Minutes: 90}},
		PublishedAt: time.Now(),
	}

	entry := Score(squad, catalog, result, DefaultWeights())
	if entry.TransferPenalty != 0 {
		t.Fatalf("penalty from an earlier window must not apply, got %d", entry.TransferPenalty)
	}
}
