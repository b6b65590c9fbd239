package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/pitchside/fantasy-core/internal/domain/league"
	"github.com/pitchside/fantasy-core/internal/domain/player"
	"github.com/pitchside/fantasy-core/internal/platform/logging"
)

type PlayerService struct {
	leagueRepo league.Repository
	playerRepo player.Repository
	logger     *logging.Logger
}

func NewPlayerService(
	leagueRepo league.Repository,
	playerRepo player.Repository,
	logger *logging.Logger,
) *PlayerService {
	if logger == nil {
		logger = logging.Default()
	}

	return &PlayerService{
		leagueRepo: leagueRepo,
		playerRepo: playerRepo,
		logger:     logger,
	}
}

func (s *PlayerService) ListPlayers(ctx context.Context, leagueID string, filter player.Filter) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.ListPlayers")
	defer span.End()

	leagueID = strings.TrimSpace(leagueID)
	if leagueID == "" {
		return nil, fmt.Errorf("%w: league id is required", ErrInvalidInput)
	}
	if err := validateLeague(ctx, s.leagueRepo, leagueID); err != nil {
		return nil, err
	}

	players, err := s.playerRepo.ListByLeague(ctx, leagueID, filter)
	if err != nil {
		return nil, fmt.Errorf("list players by league: %w", err)
	}

	return players, nil
}

func (s *PlayerService) GetPlayer(ctx context.Context, leagueID, playerID string) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.GetPlayer")
	defer span.End()

	leagueID = strings.TrimSpace(leagueID)
	playerID = strings.TrimSpace(playerID)
	if leagueID == "" || playerID == "" {
		return player.Player{}, fmt.Errorf("%w: league_id and player_id are required", ErrInvalidInput)
	}

	item, exists, err := s.playerRepo.GetByID(ctx, leagueID, playerID)
	if err != nil {
		return player.Player{}, fmt.Errorf("get player by id: %w", err)
	}
	if !exists {
		return player.Player{}, fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
	}

	return item, nil
}

func validateLeague(ctx context.Context, repo league.Repository, leagueID string) error {
	_, exists, err := repo.GetByID(ctx, leagueID)
	if err != nil {
		return fmt.Errorf("get league by id: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: league=%s", ErrNotFound, leagueID)
	}

	return nil
}
