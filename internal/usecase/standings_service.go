package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/pitchside/fantasy-core/internal/domain/league"
	"github.com/pitchside/fantasy-core/internal/domain/roster"
	"github.com/pitchside/fantasy-core/internal/domain/scoring"
	"github.com/pitchside/fantasy-core/internal/domain/standings"
	"github.com/pitchside/fantasy-core/internal/platform/cache"
	"github.com/pitchside/fantasy-core/internal/platform/logging"
)

type StandingsService struct {
	leagueRepo league.Repository
	squadRepo  roster.Repository
	scoreRepo  scoring.Repository
	cache      *cache.Store
	logger     *logging.Logger
}

func NewStandingsService(
	leagueRepo league.Repository,
	squadRepo roster.Repository,
	scoreRepo scoring.Repository,
	cacheStore *cache.Store,
	logger *logging.Logger,
) *StandingsService {
	if logger == nil {
		logger = logging.Default()
	}

	return &StandingsService{
		leagueRepo: leagueRepo,
		squadRepo:  squadRepo,
		scoreRepo:  scoreRepo,
		cache:      cacheStore,
		logger:     logger,
	}
}

// Standings returns the leaderboard through the given gameweek.
// throughGameweek <= 0 means the whole season. Results are cached per
// (league, gameweek) and invalidated when a scoring run publishes.
func (s *StandingsService) Standings(ctx context.Context, leagueID string, throughGameweek int) ([]standings.Row, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingsService.Standings")
	defer span.End()

	leagueID = strings.TrimSpace(leagueID)
	if leagueID == "" {
		return nil, fmt.Errorf("%w: league id is required", ErrInvalidInput)
	}
	if err := validateLeague(ctx, s.leagueRepo, leagueID); err != nil {
		return nil, err
	}

	if s.cache == nil {
		return s.computeStandings(ctx, leagueID, throughGameweek)
	}

	key := fmt.Sprintf("standings:%s:%d", leagueID, throughGameweek)
	value, err := s.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		return s.computeStandings(ctx, leagueID, throughGameweek)
	})
	if err != nil {
		return nil, err
	}

	rows, ok := value.([]standings.Row)
	if !ok {
		return nil, fmt.Errorf("unexpected standings cache value type %T", value)
	}
	return rows, nil
}

func (s *StandingsService) computeStandings(ctx context.Context, leagueID string, throughGameweek int) ([]standings.Row, error) {
	entries, err := s.scoreRepo.ListByLeague(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("list score entries by league: %w", err)
	}
	squads, err := s.squadRepo.ListByLeague(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("list squads by league: %w", err)
	}

	return standings.Compute(entries, squads, throughGameweek), nil
}
