package httpapi

import (
	"net/http"
	"time"

	"github.com/pitchside/fantasy-core/internal/domain/scoring"
	"github.com/pitchside/fantasy-core/internal/usecase"
)

type scoreGameweekRequest struct {
	Records map[string]scoring.PerformanceRecord `json:"records"`
}

type publishSummaryDTO struct {
	LeagueID      string    `json:"leagueId"`
	Gameweek      int       `json:"gameweek"`
	SquadsScored  int       `json:"squadsScored"`
	SquadsSkipped int       `json:"squadsSkipped"`
	PublishedAt   time.Time `json:"publishedAt"`
}

type seasonSummaryDTO struct {
	LeagueID      string  `json:"leagueId"`
	SquadID       string  `json:"squadId"`
	UserID        string  `json:"userId"`
	TotalPoints   int     `json:"totalPoints"`
	AveragePoints float64 `json:"averagePoints"`
	HighestPoints int     `json:"highestPoints"`
	BestGameweek  int     `json:"bestGameweek"`
	Gameweeks     int     `json:"gameweeks"`
}

// ScoreGameweek is the internal job endpoint that publishes scores for a
// league gameweek. Records may come inline in the body; an empty body means
// fetch them from the configured result feed.
func (h *Handler) ScoreGameweek(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ScoreGameweek")
	defer span.End()

	gameweek, err := pathInt(r, "gameweek")
	if err != nil {
		h.respondError(ctx, w, "ScoreGameweek", err)
		return
	}

	var req scoreGameweekRequest
	if r.ContentLength != 0 {
		if err := decodeJSONBody(r, &req); err != nil {
			h.respondError(ctx, w, "ScoreGameweek", err)
			return
		}
	}

	summary, err := h.scoringService.PublishGameweek(ctx, usecase.PublishGameweekInput{
		LeagueID: r.PathValue("leagueID"),
		Gameweek: gameweek,
		Records:  req.Records,
	})
	if err != nil {
		h.respondError(ctx, w, "ScoreGameweek", err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, publishSummaryDTO{
		LeagueID:      summary.LeagueID,
		Gameweek:      summary.Gameweek,
		SquadsScored:  summary.SquadsScored,
		SquadsSkipped: summary.SquadsSkipped,
		PublishedAt:   summary.PublishedAt,
	})
}

func (h *Handler) GetSquadScore(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSquadScore")
	defer span.End()

	gameweek, err := pathInt(r, "gameweek")
	if err != nil {
		h.respondError(ctx, w, "GetSquadScore", err)
		return
	}

	entry, err := h.scoringService.GetSquadScore(ctx, r.PathValue("leagueID"), r.PathValue("squadID"), gameweek)
	if err != nil {
		h.respondError(ctx, w, "GetSquadScore", err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, entry)
}

func (h *Handler) ListSquadScores(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListSquadScores")
	defer span.End()

	entries, err := h.scoringService.ListSquadScores(ctx, r.PathValue("leagueID"), r.PathValue("squadID"))
	if err != nil {
		h.respondError(ctx, w, "ListSquadScores", err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]any{"items": entries})
}

func (h *Handler) GetSeasonSummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSeasonSummary")
	defer span.End()

	summary, err := h.scoringService.SeasonSummary(ctx, r.PathValue("leagueID"), r.PathValue("squadID"))
	if err != nil {
		h.respondError(ctx, w, "GetSeasonSummary", err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, seasonSummaryDTO{
		LeagueID:      summary.LeagueID,
		SquadID:       summary.SquadID,
		UserID:        summary.UserID,
		TotalPoints:   summary.TotalPoints,
		AveragePoints: summary.AveragePoints,
		HighestPoints: summary.HighestPoints,
		BestGameweek:  summary.BestGameweek,
		Gameweeks:     summary.Gameweeks,
	})
}
