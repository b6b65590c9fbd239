package standings

import (
	"iter"
	"sort"
	"time"

	"github.com/pitchside/fantasy-core/internal/domain/roster"
	"github.com/pitchside/fantasy-core/internal/domain/scoring"
)

// Row is one ranked line of a league table. Derived on demand from score
// entries; never edited independently.
type Row struct {
	SquadID         string    `json:"squadId"`
	UserID          string    `json:"userId"`
	SquadName       string    `json:"squadName"`
	TotalPoints     int       `json:"totalPoints"`
	BestGameweek    int       `json:"bestGameweek"`
	GameweeksScored int       `json:"gameweeksScored"`
	Rank            int       `json:"rank"`
	squadCreatedAt  time.Time
}

// Compute folds score entries up to and including throughGameweek into a
// ranked table. Ordering is fully deterministic: cumulative points
// descending, then best single-gameweek score descending, then earlier squad
// creation, then squad id. Ranks are dense; rows still tied after the
// best-gameweek tie-break share a rank and the next distinct score resumes
// at previousRank+1.
func Compute(entries []scoring.ScoreEntry, squads []roster.Squad, throughGameweek int) []Row {
	bySquad := make(map[string]*Row, len(squads))
	ordered := make([]*Row, 0, len(squads))
	for _, squad := range squads {
		row := &Row{
			SquadID:        squad.ID,
			UserID:         squad.UserID,
			SquadName:      squad.Name,
			squadCreatedAt: squad.CreatedAt,
		}
		bySquad[squad.ID] = row
		ordered = append(ordered, row)
	}

	for _, entry := range entries {
		if throughGameweek > 0 && entry.Gameweek > throughGameweek {
			continue
		}
		row, ok := bySquad[entry.SquadID]
		if !ok {
			continue
		}
		row.TotalPoints += entry.Total
		if row.GameweeksScored == 0 || entry.Total > row.BestGameweek {
			row.BestGameweek = entry.Total
		}
		row.GameweeksScored++
	}

	sort.SliceStable(ordered, func(i, j int) bool {
		a, b := ordered[i], ordered[j]
		if a.TotalPoints != b.TotalPoints {
			return a.TotalPoints > b.TotalPoints
		}
		if a.BestGameweek != b.BestGameweek {
			return a.BestGameweek > b.BestGameweek
		}
		if !a.squadCreatedAt.Equal(b.squadCreatedAt) {
			return a.squadCreatedAt.Before(b.squadCreatedAt)
		}
		return a.SquadID < b.SquadID
	})

	out := make([]Row, 0, len(ordered))
	rank := 0
	for idx, row := range ordered {
		if idx == 0 || !tied(*row, *ordered[idx-1]) {
			rank++
		}
		row.Rank = rank
		out = append(out, *row)
	}

	return out
}

// tied reports a true tie: identical cumulative points and identical best
// gameweek. Creation time orders such rows but does not split their rank.
func tied(a, b Row) bool {
	return a.TotalPoints == b.TotalPoints && a.BestGameweek == b.BestGameweek
}

// All returns a lazy sequence over the table. Each range recomputes from the
// loaded entries, so the ranking can be regenerated at any time; the
// aggregator itself keeps no state between passes.
func All(entries []scoring.ScoreEntry, squads []roster.Squad, throughGameweek int) iter.Seq[Row] {
	return func(yield func(Row) bool) {
		for _, row := range Compute(entries, squads, throughGameweek) {
			if !yield(row) {
				return
			}
		}
	}
}
