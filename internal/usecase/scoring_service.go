package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/pitchside/fantasy-core/internal/domain/league"
	"github.com/pitchside/fantasy-core/internal/domain/player"
	"github.com/pitchside/fantasy-core/internal/domain/roster"
	"github.com/pitchside/fantasy-core/internal/domain/scoring"
	"github.com/pitchside/fantasy-core/internal/platform/cache"
	"github.com/pitchside/fantasy-core/internal/platform/logging"
	"github.com/pitchside/fantasy-core/internal/platform/resilience"
)

const defaultScoringWorkers = 8

// ResultSource supplies published performance data for a gameweek when the
// publish request does not carry the records inline.
type ResultSource interface {
	FetchGameweekResult(ctx context.Context, leagueID string, gameweek int) (scoring.GameweekResult, error)
}

// PublishGameweekInput carries a scoring run request. Records may be inline;
// when empty the service fetches them from the configured result source.
type PublishGameweekInput struct {
	LeagueID string
	Gameweek int
	Records  map[string]scoring.PerformanceRecord
}

// PublishSummary reports the outcome of a scoring run.
type PublishSummary struct {
	LeagueID      string
	Gameweek      int
	SquadsScored  int
	SquadsSkipped int
	PublishedAt   time.Time
}

// SeasonPointsSummary aggregates a squad's scored gameweeks.
type SeasonPointsSummary struct {
	LeagueID      string
	SquadID       string
	UserID        string
	TotalPoints   int
	AveragePoints float64
	HighestPoints int
	BestGameweek  int
	Gameweeks     int
}

type ScoringService struct {
	leagueRepo   league.Repository
	playerRepo   player.Repository
	squadRepo    roster.Repository
	scoreRepo    scoring.Repository
	results      ResultSource
	weights      scoring.Weights
	cache        *cache.Store
	logger       *logging.Logger
	now          func() time.Time
	publishQueue resilience.SingleFlight
	workers      int
}

func NewScoringService(
	leagueRepo league.Repository,
	playerRepo player.Repository,
	squadRepo roster.Repository,
	scoreRepo scoring.Repository,
	results ResultSource,
	weights scoring.Weights,
	cacheStore *cache.Store,
	logger *logging.Logger,
) *ScoringService {
	if logger == nil {
		logger = logging.Default()
	}

	return &ScoringService{
		leagueRepo: leagueRepo,
		playerRepo: playerRepo,
		squadRepo:  squadRepo,
		scoreRepo:  scoreRepo,
		results:    results,
		weights:    weights,
		cache:      cacheStore,
		logger:     logger,
		now:        time.Now,
		workers:    defaultScoringWorkers,
	}
}

// SetWorkers overrides the scoring fan-out width. Values below one keep the
// current setting.
func (s *ScoringService) SetWorkers(workers int) {
	if workers > 0 {
		s.workers = workers
	}
}

// PublishGameweek scores every squad in the league for one gameweek.
// Squads already scored for that gameweek are skipped, so re-running a
// publish after a partial failure only fills in the gaps.
func (s *ScoringService) PublishGameweek(ctx context.Context, input PublishGameweekInput) (PublishSummary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScoringService.PublishGameweek")
	defer span.End()

	input.LeagueID = strings.TrimSpace(input.LeagueID)
	if input.LeagueID == "" {
		return PublishSummary{}, fmt.Errorf("%w: league id is required", ErrInvalidInput)
	}
	if input.Gameweek <= 0 {
		return PublishSummary{}, fmt.Errorf("%w: gameweek must be greater than zero", ErrInvalidInput)
	}

	key := fmt.Sprintf("scoring:publish:%s:%d", input.LeagueID, input.Gameweek)
	value, err, _ := s.publishQueue.Do(key, func() (any, error) {
		return s.publishGameweekOnce(ctx, input)
	})
	if err != nil {
		return PublishSummary{}, err
	}

	summary, ok := value.(PublishSummary)
	if !ok {
		return PublishSummary{}, fmt.Errorf("unexpected publish result type %T", value)
	}
	return summary, nil
}

func (s *ScoringService) publishGameweekOnce(ctx context.Context, input PublishGameweekInput) (PublishSummary, error) {
	if err := validateLeague(ctx, s.leagueRepo, input.LeagueID); err != nil {
		return PublishSummary{}, err
	}

	result, err := s.resolveGameweekResult(ctx, input)
	if err != nil {
		return PublishSummary{}, err
	}

	squads, err := s.squadRepo.ListByLeague(ctx, input.LeagueID)
	if err != nil {
		return PublishSummary{}, fmt.Errorf("list squads by league: %w", err)
	}
	if len(squads) == 0 {
		return PublishSummary{
			LeagueID:    input.LeagueID,
			Gameweek:    input.Gameweek,
			PublishedAt: result.PublishedAt,
		}, nil
	}

	players, err := s.playerRepo.ListByLeague(ctx, input.LeagueID, player.Filter{})
	if err != nil {
		return PublishSummary{}, fmt.Errorf("list players by league: %w", err)
	}
	catalog := player.Index(players)

	workerCount := s.workers
	if workerCount < 1 {
		workerCount = 1
	}
	if workerCount > len(squads) {
		workerCount = len(squads)
	}

	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return PublishSummary{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var scoredCount atomic.Int32
	var skippedCount atomic.Int32
	errs := make(chan error, len(squads))

	var workers sync.WaitGroup
	for _, squad := range squads {
		squad := squad
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			entry := scoring.Score(squad, catalog, result, s.weights)
			if insertErr := s.scoreRepo.Insert(ctx, entry); insertErr != nil {
				if errors.Is(insertErr, scoring.ErrAlreadyScored) {
					skippedCount.Add(1)
					return
				}
				errs <- fmt.Errorf("insert score entry squad=%s gameweek=%d: %w", squad.ID, input.Gameweek, insertErr)
				return
			}
			scoredCount.Add(1)
		}); err != nil {
			workers.Done()
			return PublishSummary{}, fmt.Errorf("submit squad to worker pool: %w", err)
		}
	}

	workers.Wait()
	close(errs)

	for runErr := range errs {
		return PublishSummary{}, runErr
	}

	if s.cache != nil {
		s.cache.DeletePrefix(ctx, "standings:"+input.LeagueID+":")
	}

	summary := PublishSummary{
		LeagueID:      input.LeagueID,
		Gameweek:      input.Gameweek,
		SquadsScored:  int(scoredCount.Load()),
		SquadsSkipped: int(skippedCount.Load()),
		PublishedAt:   result.PublishedAt,
	}

	s.logger.InfoContext(ctx, "gameweek scored",
		"league_id", input.LeagueID,
		"gameweek", input.Gameweek,
		"squads_scored", summary.SquadsScored,
		"squads_skipped", summary.SquadsSkipped,
	)

	return summary, nil
}

func (s *ScoringService) resolveGameweekResult(ctx context.Context, input PublishGameweekInput) (scoring.GameweekResult, error) {
	if len(input.Records) > 0 {
		result := scoring.GameweekResult{
			LeagueID:    input.LeagueID,
			Gameweek:    input.Gameweek,
			Records:     input.Records,
			PublishedAt: s.now().UTC(),
		}
		if err := result.Validate(); err != nil {
			return scoring.GameweekResult{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		return result, nil
	}

	if s.results == nil {
		return scoring.GameweekResult{}, fmt.Errorf("%w: no performance records and no result source configured", ErrInvalidInput)
	}

	result, err := s.results.FetchGameweekResult(ctx, input.LeagueID, input.Gameweek)
	if err != nil {
		return scoring.GameweekResult{}, fmt.Errorf("%w: fetch gameweek result: %v", ErrDependencyUnavailable, err)
	}
	if result.PublishedAt.IsZero() {
		result.PublishedAt = s.now().UTC()
	}
	if err := result.Validate(); err != nil {
		return scoring.GameweekResult{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return result, nil
}

func (s *ScoringService) mustGetSquad(ctx context.Context, leagueID, squadID string) (roster.Squad, error) {
	squad, exists, err := s.squadRepo.GetByID(ctx, leagueID, squadID)
	if err != nil {
		return roster.Squad{}, fmt.Errorf("get squad: %w", err)
	}
	if !exists {
		return roster.Squad{}, fmt.Errorf("%w: squad=%s", ErrNotFound, squadID)
	}
	return squad, nil
}

func (s *ScoringService) GetSquadScore(ctx context.Context, leagueID, squadID string, gameweek int) (scoring.ScoreEntry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScoringService.GetSquadScore")
	defer span.End()

	leagueID = strings.TrimSpace(leagueID)
	squadID = strings.TrimSpace(squadID)
	if leagueID == "" || squadID == "" {
		return scoring.ScoreEntry{}, fmt.Errorf("%w: league_id and squad_id are required", ErrInvalidInput)
	}
	if gameweek <= 0 {
		return scoring.ScoreEntry{}, fmt.Errorf("%w: gameweek must be greater than zero", ErrInvalidInput)
	}

	if _, err := s.mustGetSquad(ctx, leagueID, squadID); err != nil {
		return scoring.ScoreEntry{}, err
	}

	entry, exists, err := s.scoreRepo.Get(ctx, squadID, gameweek)
	if err != nil {
		return scoring.ScoreEntry{}, fmt.Errorf("get score entry: %w", err)
	}
	if !exists {
		return scoring.ScoreEntry{}, fmt.Errorf("%w: no score for squad=%s gameweek=%d", ErrNotFound, squadID, gameweek)
	}

	return entry, nil
}

func (s *ScoringService) ListSquadScores(ctx context.Context, leagueID, squadID string) ([]scoring.ScoreEntry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScoringService.ListSquadScores")
	defer span.End()

	leagueID = strings.TrimSpace(leagueID)
	squadID = strings.TrimSpace(squadID)
	if leagueID == "" || squadID == "" {
		return nil, fmt.Errorf("%w: league_id and squad_id are required", ErrInvalidInput)
	}

	if _, err := s.mustGetSquad(ctx, leagueID, squadID); err != nil {
		return nil, err
	}

	entries, err := s.scoreRepo.ListBySquad(ctx, squadID)
	if err != nil {
		return nil, fmt.Errorf("list score entries by squad: %w", err)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Gameweek < entries[j].Gameweek
	})
	return entries, nil
}

func (s *ScoringService) SeasonSummary(ctx context.Context, leagueID, squadID string) (SeasonPointsSummary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScoringService.SeasonSummary")
	defer span.End()

	leagueID = strings.TrimSpace(leagueID)
	squadID = strings.TrimSpace(squadID)
	if leagueID == "" || squadID == "" {
		return SeasonPointsSummary{}, fmt.Errorf("%w: league_id and squad_id are required", ErrInvalidInput)
	}

	squad, err := s.mustGetSquad(ctx, leagueID, squadID)
	if err != nil {
		return SeasonPointsSummary{}, err
	}

	entries, err := s.scoreRepo.ListBySquad(ctx, squadID)
	if err != nil {
		return SeasonPointsSummary{}, fmt.Errorf("list score entries for season summary: %w", err)
	}

	totalPoints := 0
	highestPoints := 0
	bestGameweek := 0
	gameweeks := 0
	for _, entry := range entries {
		totalPoints += entry.Total
		if gameweeks == 0 || entry.Total > highestPoints {
			highestPoints = entry.Total
			bestGameweek = entry.Gameweek
		}
		gameweeks++
	}

	averagePoints := 0.0
	if gameweeks > 0 {
		averagePoints = float64(totalPoints) / float64(gameweeks)
	}

	return SeasonPointsSummary{
		LeagueID:      leagueID,
		SquadID:       squadID,
		UserID:        squad.UserID,
		TotalPoints:   totalPoints,
		AveragePoints: averagePoints,
		HighestPoints: highestPoints,
		BestGameweek:  bestGameweek,
		Gameweeks:     gameweeks,
	}, nil
}
