package roster

import (
	"sort"

	"github.com/pitchside/fantasy-core/internal/domain/player"
)

// Validate checks a proposed selection against the rules and the catalog.
// It is pure: the catalog is never mutated and nothing is persisted.
//
// Shape problems (wrong size, duplicates) abort before constraint evaluation
// and come back as a single violation. Constraint checks then all run, in a
// fixed order, so the caller can surface every problem at once.
func Validate(catalog map[string]player.Player, playerIDs []string, captainID string, rules Rules) Result {
	if len(playerIDs) != rules.SquadSize {
		return Result{Violations: []Violation{{
			Code:  ViolationSquadSize,
			Count: len(playerIDs),
			Min:   rules.SquadSize,
			Max:   rules.SquadSize,
		}}}
	}

	seen := make(map[string]struct{}, len(playerIDs))
	for _, id := range playerIDs {
		if _, ok := seen[id]; ok {
			return Result{Violations: []Violation{{
				Code:     ViolationDuplicatePlayer,
				PlayerID: id,
			}}}
		}
		seen[id] = struct{}{}
	}

	var violations []Violation

	resolved := make([]player.Player, 0, len(playerIDs))
	for _, id := range playerIDs {
		p, ok := catalog[id]
		if !ok {
			violations = append(violations, Violation{
				Code:     ViolationUnknownPlayer,
				PlayerID: id,
			})
			continue
		}
		resolved = append(resolved, p)
	}

	for _, p := range resolved {
		if p.Status.Selectable() {
			continue
		}
		violations = append(violations, Violation{
			Code:     ViolationIneligible,
			PlayerID: p.ID,
			Status:   p.Status,
			Reason:   p.StatusReason,
		})
	}

	positionCount := make(map[player.Position]int, len(rules.Quota))
	clubCount := make(map[string]int)
	var totalPrice int64
	for _, p := range resolved {
		positionCount[p.Position]++
		clubCount[p.ClubID]++
		totalPrice += p.Price
	}

	// Quota and club checks only make sense once every id resolved;
	// partial counts would report misleading shortfalls.
	if len(resolved) == len(playerIDs) {
		for _, pos := range orderedPositions(rules.Quota) {
			quota := rules.Quota[pos]
			count := positionCount[pos]
			if count < quota.Min || count > quota.Max {
				violations = append(violations, Violation{
					Code:     ViolationPositionQuota,
					Position: pos,
					Count:    count,
					Min:      quota.Min,
					Max:      quota.Max,
				})
			}
		}

		for _, clubID := range orderedClubs(clubCount) {
			count := clubCount[clubID]
			if count > rules.MaxPerClub {
				violations = append(violations, Violation{
					Code:   ViolationClubCap,
					ClubID: clubID,
					Count:  count,
					Max:    rules.MaxPerClub,
				})
			}
		}

		if totalPrice > rules.BudgetCap {
			violations = append(violations, Violation{
				Code:       ViolationBudgetExceeded,
				TotalPrice: totalPrice,
				BudgetCap:  rules.BudgetCap,
			})
		}
	}

	if _, ok := seen[captainID]; !ok {
		violations = append(violations, Violation{
			Code:     ViolationCaptainNotInSquad,
			PlayerID: captainID,
		})
	}

	if len(violations) > 0 {
		return Result{Violations: violations}
	}

	return Result{RemainingBudget: rules.BudgetCap - totalPrice}
}

// Deterministic violation ordering regardless of map iteration.
var positionOrder = []player.Position{
	player.PositionGoalkeeper,
	player.PositionDefender,
	player.PositionMidfielder,
	player.PositionForward,
}

func orderedPositions(quota map[player.Position]QuotaRange) []player.Position {
	out := make([]player.Position, 0, len(quota))
	for _, pos := range positionOrder {
		if _, ok := quota[pos]; ok {
			out = append(out, pos)
		}
	}
	for pos := range quota {
		if !containsPos(out, pos) {
			out = append(out, pos)
		}
	}
	return out
}

func containsPos(items []player.Position, v player.Position) bool {
	for _, item := range items {
		if item == v {
			return true
		}
	}
	return false
}

func orderedClubs(clubCount map[string]int) []string {
	out := make([]string, 0, len(clubCount))
	for clubID := range clubCount {
		out = append(out, clubID)
	}
	sort.Strings(out)
	return out
}
