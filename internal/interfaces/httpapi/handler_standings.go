package httpapi

import "net/http"

func (h *Handler) GetStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetStandings")
	defer span.End()

	throughGameweek, err := queryInt(r, "through_gameweek", 0)
	if err != nil {
		h.respondError(ctx, w, "GetStandings", err)
		return
	}

	rows, err := h.standingsService.Standings(ctx, r.PathValue("leagueID"), throughGameweek)
	if err != nil {
		h.respondError(ctx, w, "GetStandings", err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]any{"items": rows})
}
