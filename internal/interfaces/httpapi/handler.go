package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/pitchside/fantasy-core/internal/domain/league"
	"github.com/pitchside/fantasy-core/internal/domain/player"
	"github.com/pitchside/fantasy-core/internal/domain/roster"
	"github.com/pitchside/fantasy-core/internal/platform/logging"
	"github.com/pitchside/fantasy-core/internal/usecase"
)

type Handler struct {
	leagueService    *usecase.LeagueService
	playerService    *usecase.PlayerService
	rosterService    *usecase.RosterService
	transferService  *usecase.TransferService
	scoringService   *usecase.ScoringService
	standingsService *usecase.StandingsService
	logger           *logging.Logger
	validator        *validator.Validate
}

func NewHandler(
	leagueService *usecase.LeagueService,
	playerService *usecase.PlayerService,
	rosterService *usecase.RosterService,
	transferService *usecase.TransferService,
	scoringService *usecase.ScoringService,
	standingsService *usecase.StandingsService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		leagueService:    leagueService,
		playerService:    playerService,
		rosterService:    rosterService,
		transferService:  transferService,
		scoringService:   scoringService,
		standingsService: standingsService,
		logger:           logger,
		validator:        validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

// respondError maps the error to an HTTP response. Unmapped errors are
// treated as internal: logged with full detail, reported without it.
func (h *Handler) respondError(ctx context.Context, w http.ResponseWriter, op string, err error) {
	mapped := mapError(err)
	if mapped.HTTPStatus == http.StatusInternalServerError {
		h.logger.ErrorContext(ctx, "request failed", "op", op, "error", err)
		writeInternalError(ctx, w)
		return
	}

	writeError(ctx, w, err)
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

type leagueDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	CountryCode string `json:"countryCode"`
	Season      string `json:"season"`
	IsDefault   bool   `json:"isDefault"`
}

func leagueToDTO(item league.League) leagueDTO {
	return leagueDTO{
		ID:          item.ID,
		Name:        item.Name,
		CountryCode: item.CountryCode,
		Season:      item.Season,
		IsDefault:   item.IsDefault,
	}
}

type playerDTO struct {
	ID           string `json:"id"`
	ClubID       string `json:"clubId"`
	Name         string `json:"name"`
	Position     string `json:"position"`
	Price        int64  `json:"price"`
	SeasonPoints int    `json:"seasonPoints"`
	Status       string `json:"status"`
	StatusReason string `json:"statusReason,omitempty"`
}

func playerToDTO(item player.Player) playerDTO {
	return playerDTO{
		ID:           item.ID,
		ClubID:       item.ClubID,
		Name:         item.Name,
		Position:     string(item.Position),
		Price:        item.Price,
		SeasonPoints: item.SeasonPoints,
		Status:       string(item.Status),
		StatusReason: item.StatusReason,
	}
}

type transferWindowDTO struct {
	Gameweek      int `json:"gameweek"`
	TransfersUsed int `json:"transfersUsed"`
	PenaltyPoints int `json:"penaltyPoints"`
}

type squadDTO struct {
	ID        string            `json:"id"`
	UserID    string            `json:"userId"`
	LeagueID  string            `json:"leagueId"`
	Name      string            `json:"name"`
	PlayerIDs []string          `json:"playerIds"`
	CaptainID string            `json:"captainId"`
	BudgetCap int64             `json:"budgetCap"`
	Window    transferWindowDTO `json:"transferWindow"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`
}

func squadToDTO(item roster.Squad) squadDTO {
	return squadDTO{
		ID:        item.ID,
		UserID:    item.UserID,
		LeagueID:  item.LeagueID,
		Name:      item.Name,
		PlayerIDs: item.PlayerIDs,
		CaptainID: item.CaptainID,
		BudgetCap: item.BudgetCap,
		Window: transferWindowDTO{
			Gameweek:      item.Window.Gameweek,
			TransfersUsed: item.Window.TransfersUsed,
			PenaltyPoints: item.Window.PenaltyPoints,
		},
		CreatedAt: item.CreatedAt,
		UpdatedAt: item.UpdatedAt,
	}
}

func requireUserID(ctx context.Context) (string, error) {
	userID, ok := userIDFromContext(ctx)
	if !ok {
		return "", fmt.Errorf("%w: user identity is missing from request context", usecase.ErrUnauthorized)
	}
	return userID, nil
}
