package roster

import (
	"errors"
	"fmt"

	"github.com/pitchside/fantasy-core/internal/domain/player"
)

var (
	ErrPlayerNotOwned       = errors.New("player is not in the squad")
	ErrPlayerAlreadyOwned   = errors.New("player is already in the squad")
	ErrTransferSizeMismatch = errors.New("players in and players out must match in size")
)

// TransferResult carries the candidate squad with its updated transfer
// window, plus the validation outcome for the candidate. The squad passed to
// ApplyTransfers is never modified; callers persist Squad only when Accepted.
type TransferResult struct {
	Squad         Squad
	TransfersUsed int
	PointsPenalty int
	Validation    Result
}

func (r TransferResult) Accepted() bool {
	return r.Validation.Valid()
}

// ApplyTransfers swaps playersOut for playersIn on a copy of the squad and
// revalidates the whole candidate. A rejected transfer leaves the input squad
// untouched (atomic, no partial application). Transfers beyond freeTransfers
// accrue the fixed per-transfer penalty, charged later at scoring time.
//
// An empty delta with the current captain is a no-op returning the squad
// unchanged.
func ApplyTransfers(
	catalog map[string]player.Player,
	squad Squad,
	playersOut, playersIn []string,
	captainID string,
	freeTransfers int,
	rules Rules,
) (TransferResult, error) {
	if len(playersOut) != len(playersIn) {
		return TransferResult{}, fmt.Errorf("%w: out=%d in=%d", ErrTransferSizeMismatch, len(playersOut), len(playersIn))
	}
	if captainID == "" {
		captainID = squad.CaptainID
	}

	if len(playersOut) == 0 && captainID == squad.CaptainID {
		return TransferResult{
			Squad:         squad.Clone(),
			TransfersUsed: squad.Window.TransfersUsed,
			PointsPenalty: squad.Window.PenaltyPoints,
			Validation:    Validate(catalog, squad.PlayerIDs, captainID, rules),
		}, nil
	}

	outSet := make(map[string]struct{}, len(playersOut))
	for _, id := range playersOut {
		if !squad.Contains(id) {
			return TransferResult{}, fmt.Errorf("%w: %s", ErrPlayerNotOwned, id)
		}
		if _, ok := outSet[id]; ok {
			return TransferResult{}, fmt.Errorf("%w: %s listed twice in players out", ErrPlayerNotOwned, id)
		}
		outSet[id] = struct{}{}
	}

	candidate := squad.Clone()
	kept := candidate.PlayerIDs[:0]
	for _, id := range candidate.PlayerIDs {
		if _, ok := outSet[id]; !ok {
			kept = append(kept, id)
		}
	}
	candidate.PlayerIDs = kept

	for _, id := range playersIn {
		if candidate.Contains(id) {
			return TransferResult{}, fmt.Errorf("%w: %s", ErrPlayerAlreadyOwned, id)
		}
		candidate.PlayerIDs = append(candidate.PlayerIDs, id)
	}

	validation := Validate(catalog, candidate.PlayerIDs, captainID, rules)
	if !validation.Valid() {
		return TransferResult{Validation: validation}, nil
	}

	transfersUsed := squad.Window.TransfersUsed + len(playersOut)
	chargeable := transfersUsed - freeTransfers
	if chargeable < 0 {
		chargeable = 0
	}

	candidate.CaptainID = captainID
	candidate.Window.TransfersUsed = transfersUsed
	candidate.Window.PenaltyPoints = chargeable * rules.TransferPenaltyPoints

	return TransferResult{
		Squad:         candidate,
		TransfersUsed: transfersUsed,
		PointsPenalty: candidate.Window.PenaltyPoints,
		Validation:    validation,
	}, nil
}
