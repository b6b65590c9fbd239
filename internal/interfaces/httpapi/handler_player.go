package httpapi

import (
	"net/http"

	"github.com/pitchside/fantasy-core/internal/domain/player"
)

func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayers")
	defer span.End()

	filter := player.Filter{
		ClubID: r.URL.Query().Get("club_id"),
	}
	for _, raw := range queryCSV(r, "position") {
		filter.Positions = append(filter.Positions, player.Position(raw))
	}
	for _, raw := range queryCSV(r, "status") {
		filter.Statuses = append(filter.Statuses, player.Status(raw))
	}

	players, err := h.playerService.ListPlayers(ctx, r.PathValue("leagueID"), filter)
	if err != nil {
		h.respondError(ctx, w, "ListPlayers", err)
		return
	}

	items := make([]playerDTO, 0, len(players))
	for _, item := range players {
		items = append(items, playerToDTO(item))
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]any{"items": items})
}

func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayer")
	defer span.End()

	item, err := h.playerService.GetPlayer(ctx, r.PathValue("leagueID"), r.PathValue("playerID"))
	if err != nil {
		h.respondError(ctx, w, "GetPlayer", err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerToDTO(item))
}
