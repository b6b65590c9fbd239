package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/pitchside/fantasy-core/internal/domain/league"
	"github.com/pitchside/fantasy-core/internal/domain/player"
	"github.com/pitchside/fantasy-core/internal/domain/roster"
	"github.com/pitchside/fantasy-core/internal/platform/logging"
)

// TransferInput describes a swap request against an existing squad.
type TransferInput struct {
	UserID     string
	LeagueID   string
	SquadID    string
	Gameweek   int
	PlayersOut []string
	PlayersIn  []string
	CaptainID  string
}

type TransferService struct {
	leagueRepo league.Repository
	playerRepo player.Repository
	squadRepo  roster.Repository
	rules      roster.Rules
	logger     *logging.Logger
	now        func() time.Time
}

func NewTransferService(
	leagueRepo league.Repository,
	playerRepo player.Repository,
	squadRepo roster.Repository,
	rules roster.Rules,
	logger *logging.Logger,
) *TransferService {
	if logger == nil {
		logger = logging.Default()
	}

	return &TransferService{
		leagueRepo: leagueRepo,
		playerRepo: playerRepo,
		squadRepo:  squadRepo,
		rules:      rules,
		logger:     logger,
		now:        time.Now,
	}
}

// ApplyTransfers swaps players on a squad atomically. The whole batch is
// accepted or rejected as one unit; a rejected batch leaves the stored
// squad untouched and reports the violations in the result.
func (s *TransferService) ApplyTransfers(ctx context.Context, input TransferInput) (roster.TransferResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TransferService.ApplyTransfers")
	defer span.End()

	input.UserID = strings.TrimSpace(input.UserID)
	input.LeagueID = strings.TrimSpace(input.LeagueID)
	input.SquadID = strings.TrimSpace(input.SquadID)
	input.CaptainID = strings.TrimSpace(input.CaptainID)

	if input.UserID == "" {
		return roster.TransferResult{}, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	if input.LeagueID == "" || input.SquadID == "" {
		return roster.TransferResult{}, fmt.Errorf("%w: league_id and squad_id are required", ErrInvalidInput)
	}
	if input.Gameweek <= 0 {
		return roster.TransferResult{}, fmt.Errorf("%w: gameweek must be greater than zero", ErrInvalidInput)
	}

	playersOut, err := cleanPlayerIDs(input.PlayersOut)
	if err != nil {
		return roster.TransferResult{}, err
	}
	playersIn, err := cleanPlayerIDs(input.PlayersIn)
	if err != nil {
		return roster.TransferResult{}, err
	}

	if err := validateLeague(ctx, s.leagueRepo, input.LeagueID); err != nil {
		return roster.TransferResult{}, err
	}

	squad, exists, err := s.squadRepo.GetByID(ctx, input.LeagueID, input.SquadID)
	if err != nil {
		return roster.TransferResult{}, fmt.Errorf("get squad: %w", err)
	}
	if !exists {
		return roster.TransferResult{}, fmt.Errorf("%w: squad=%s", ErrNotFound, input.SquadID)
	}
	if squad.UserID != input.UserID {
		return roster.TransferResult{}, fmt.Errorf("%w: squad belongs to another user", ErrUnauthorized)
	}

	// Penalties accumulate within a window. A later gameweek opens a fresh
	// window with the full free-transfer allowance.
	if input.Gameweek < squad.Window.Gameweek {
		return roster.TransferResult{}, fmt.Errorf("%w: gameweek %d is before the current transfer window %d", ErrInvalidInput, input.Gameweek, squad.Window.Gameweek)
	}
	if input.Gameweek > squad.Window.Gameweek {
		squad.Window = roster.TransferWindow{Gameweek: input.Gameweek}
	}

	catalog, err := s.loadTransferCatalog(ctx, input.LeagueID, squad.PlayerIDs, playersIn)
	if err != nil {
		return roster.TransferResult{}, err
	}

	result, err := roster.ApplyTransfers(catalog, squad, playersOut, playersIn, input.CaptainID, s.rules.FreeTransfers, s.rules)
	if err != nil {
		switch {
		case errors.Is(err, roster.ErrTransferSizeMismatch),
			errors.Is(err, roster.ErrPlayerNotOwned),
			errors.Is(err, roster.ErrPlayerAlreadyOwned):
			return roster.TransferResult{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		return roster.TransferResult{}, fmt.Errorf("apply transfers: %w", err)
	}

	if !result.Accepted() {
		return result, nil
	}

	next := result.Squad
	next.UpdatedAt = s.now().UTC()
	if err := s.squadRepo.Upsert(ctx, next); err != nil {
		return roster.TransferResult{}, fmt.Errorf("upsert squad: %w", err)
	}
	result.Squad = next

	s.logger.InfoContext(ctx, "transfers applied",
		"user_id", input.UserID,
		"league_id", input.LeagueID,
		"squad_id", input.SquadID,
		"gameweek", input.Gameweek,
		"transfers", len(playersOut),
		"transfers_used", result.TransfersUsed,
		"points_penalty", result.PointsPenalty,
	)

	return result, nil
}

func (s *TransferService) loadTransferCatalog(ctx context.Context, leagueID string, current, incoming []string) (map[string]player.Player, error) {
	seen := make(map[string]struct{}, len(current)+len(incoming))
	ids := make([]string, 0, len(current)+len(incoming))
	for _, id := range current {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	for _, id := range incoming {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	players, err := s.playerRepo.GetByIDs(ctx, leagueID, ids)
	if err != nil {
		return nil, fmt.Errorf("get players by ids: %w", err)
	}

	return player.Index(players), nil
}
