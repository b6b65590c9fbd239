package httpapi

import (
	"net/http"

	"github.com/pitchside/fantasy-core/internal/domain/roster"
	"github.com/pitchside/fantasy-core/internal/usecase"
)

type applyTransfersRequest struct {
	Gameweek   int      `json:"gameweek" validate:"required,gt=0"`
	PlayersOut []string `json:"playersOut" validate:"dive,required"`
	PlayersIn  []string `json:"playersIn" validate:"dive,required"`
	CaptainID  string   `json:"captainId" validate:"required"`
}

type applyTransfersResponse struct {
	Accepted      bool               `json:"accepted"`
	Squad         *squadDTO          `json:"squad,omitempty"`
	TransfersUsed int                `json:"transfersUsed"`
	PointsPenalty int                `json:"pointsPenalty"`
	Violations    []roster.Violation `json:"violations,omitempty"`
}

func (h *Handler) ApplyTransfers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ApplyTransfers")
	defer span.End()

	userID, err := requireUserID(ctx)
	if err != nil {
		h.respondError(ctx, w, "ApplyTransfers", err)
		return
	}

	var req applyTransfersRequest
	if err := decodeJSONBody(r, &req); err != nil {
		h.respondError(ctx, w, "ApplyTransfers", err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		h.respondError(ctx, w, "ApplyTransfers", err)
		return
	}

	result, err := h.transferService.ApplyTransfers(ctx, usecase.TransferInput{
		UserID:     userID,
		LeagueID:   r.PathValue("leagueID"),
		SquadID:    r.PathValue("squadID"),
		Gameweek:   req.Gameweek,
		PlayersOut: req.PlayersOut,
		PlayersIn:  req.PlayersIn,
		CaptainID:  req.CaptainID,
	})
	if err != nil {
		h.respondError(ctx, w, "ApplyTransfers", err)
		return
	}

	if !result.Accepted() {
		writeSuccess(ctx, w, http.StatusUnprocessableEntity, applyTransfersResponse{
			Accepted:   false,
			Violations: result.Validation.Violations,
		})
		return
	}

	dto := squadToDTO(result.Squad)
	writeSuccess(ctx, w, http.StatusOK, applyTransfersResponse{
		Accepted:      true,
		Squad:         &dto,
		TransfersUsed: result.TransfersUsed,
		PointsPenalty: result.PointsPenalty,
	})
}
