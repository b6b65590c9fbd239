package httpapi

import (
	"net/http"

	"github.com/pitchside/fantasy-core/internal/domain/roster"
	"github.com/pitchside/fantasy-core/internal/usecase"
)

type submitSquadRequest struct {
	Name      string   `json:"name" validate:"required,min=3,max=64"`
	PlayerIDs []string `json:"playerIds" validate:"required,min=1,dive,required"`
	CaptainID string   `json:"captainId" validate:"required"`
}

type submitSquadResponse struct {
	Accepted        bool               `json:"accepted"`
	Squad           *squadDTO          `json:"squad,omitempty"`
	RemainingBudget int64              `json:"remainingBudget,omitempty"`
	Violations      []roster.Violation `json:"violations,omitempty"`
}

func (h *Handler) SubmitSquad(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SubmitSquad")
	defer span.End()

	userID, err := requireUserID(ctx)
	if err != nil {
		h.respondError(ctx, w, "SubmitSquad", err)
		return
	}

	var req submitSquadRequest
	if err := decodeJSONBody(r, &req); err != nil {
		h.respondError(ctx, w, "SubmitSquad", err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		h.respondError(ctx, w, "SubmitSquad", err)
		return
	}

	squad, result, err := h.rosterService.SubmitSquad(ctx, usecase.SubmitSquadInput{
		UserID:    userID,
		LeagueID:  r.PathValue("leagueID"),
		Name:      req.Name,
		PlayerIDs: req.PlayerIDs,
		CaptainID: req.CaptainID,
	})
	if err != nil {
		h.respondError(ctx, w, "SubmitSquad", err)
		return
	}

	if !result.Valid() {
		writeSuccess(ctx, w, http.StatusUnprocessableEntity, submitSquadResponse{
			Accepted:   false,
			Violations: result.Violations,
		})
		return
	}

	dto := squadToDTO(squad)
	writeSuccess(ctx, w, http.StatusOK, submitSquadResponse{
		Accepted:        true,
		Squad:           &dto,
		RemainingBudget: result.RemainingBudget,
	})
}

type squadDetailsResponse struct {
	Squad           squadDTO `json:"squad"`
	RemainingBudget int64    `json:"remainingBudget"`
}

func squadDetailsToResponse(details usecase.SquadDetails) squadDetailsResponse {
	return squadDetailsResponse{
		Squad:           squadToDTO(details.Squad),
		RemainingBudget: details.RemainingBudget,
	}
}

func (h *Handler) GetSquad(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSquad")
	defer span.End()

	details, err := h.rosterService.GetSquad(ctx, r.PathValue("leagueID"), r.PathValue("squadID"))
	if err != nil {
		h.respondError(ctx, w, "GetSquad", err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, squadDetailsToResponse(details))
}

func (h *Handler) GetMySquad(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMySquad")
	defer span.End()

	userID, err := requireUserID(ctx)
	if err != nil {
		h.respondError(ctx, w, "GetMySquad", err)
		return
	}

	details, err := h.rosterService.GetUserSquad(ctx, userID, r.PathValue("leagueID"))
	if err != nil {
		h.respondError(ctx, w, "GetMySquad", err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, squadDetailsToResponse(details))
}
