package app

import (
	"fmt"
	"net/http"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"

	"github.com/pitchside/fantasy-core/external/statsfeed"
	"github.com/pitchside/fantasy-core/internal/config"
	"github.com/pitchside/fantasy-core/internal/domain/league"
	"github.com/pitchside/fantasy-core/internal/domain/player"
	"github.com/pitchside/fantasy-core/internal/domain/roster"
	"github.com/pitchside/fantasy-core/internal/domain/scoring"
	"github.com/pitchside/fantasy-core/internal/infrastructure/repository/memory"
	"github.com/pitchside/fantasy-core/internal/infrastructure/repository/postgres"
	"github.com/pitchside/fantasy-core/internal/interfaces/httpapi"
	"github.com/pitchside/fantasy-core/internal/platform/cache"
	idgen "github.com/pitchside/fantasy-core/internal/platform/id"
	"github.com/pitchside/fantasy-core/internal/platform/logging"
	"github.com/pitchside/fantasy-core/internal/platform/resilience"
	"github.com/pitchside/fantasy-core/internal/usecase"
)

type repositories struct {
	leagues league.Repository
	players player.Repository
	squads  roster.Repository
	scores  scoring.Repository
	close   func() error
}

// NewHTTPServer wires repositories, services, and the router into a ready
// http.Server. The returned cleanup releases storage resources and must run
// after the server has shut down.
func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, func() error, error) {
	if logger == nil {
		logger = logging.Default()
	}

	if cfg.HTTPAddr == "" {
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	repos, err := buildRepositories(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	rules := rulesFromConfig(cfg)

	var cacheStore *cache.Store
	if cfg.CacheEnabled {
		cacheStore = cache.NewStore(cfg.CacheTTL)
	}

	var resultSource usecase.ResultSource
	if cfg.StatsFeedEnabled {
		resultSource = statsfeed.NewClient(statsfeed.ClientConfig{
			BaseURL:    cfg.StatsFeedBaseURL,
			Token:      cfg.StatsFeedToken,
			Timeout:    cfg.StatsFeedTimeout,
			MaxRetries: cfg.StatsFeedMaxRetries,
			Logger:     logger,
			CircuitBreaker: resilience.CircuitBreakerConfig{
				Enabled:          cfg.StatsFeedCircuitEnabled,
				FailureThreshold: cfg.StatsFeedCircuitFailureCount,
				OpenTimeout:      cfg.StatsFeedCircuitOpenTimeout,
				HalfOpenMaxReq:   cfg.StatsFeedCircuitHalfOpenMaxReq,
			},
		})
	}

	leagueSvc := usecase.NewLeagueService(repos.leagues, logger)
	playerSvc := usecase.NewPlayerService(repos.leagues, repos.players, logger)
	rosterSvc := usecase.NewRosterService(repos.leagues, repos.players, repos.squads, rules, idgen.NewRandomGenerator(), logger)
	transferSvc := usecase.NewTransferService(repos.leagues, repos.players, repos.squads, rules, logger)
	scoringSvc := usecase.NewScoringService(repos.leagues, repos.players, repos.squads, repos.scores, resultSource, scoring.DefaultWeights(), cacheStore, logger)
	scoringSvc.SetWorkers(cfg.ScoringWorkers)
	standingsSvc := usecase.NewStandingsService(repos.leagues, repos.squads, repos.scores, cacheStore, logger)

	handler := httpapi.NewHandler(leagueSvc, playerSvc, rosterSvc, transferSvc, scoringSvc, standingsSvc, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins, cfg.InternalJobToken)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return server, repos.close, nil
}

func buildRepositories(cfg config.Config, logger *logging.Logger) (repositories, error) {
	switch cfg.StorageDriver {
	case config.StoragePostgres:
		db, err := openDB(cfg)
		if err != nil {
			return repositories{}, fmt.Errorf("open database: %w", err)
		}
		logger.Info("storage ready", "driver", cfg.StorageDriver, "db_name", dbNameFromURL(cfg.DBURL))
		return repositories{
			leagues: postgres.NewLeagueRepository(db),
			players: postgres.NewPlayerRepository(db),
			squads:  postgres.NewSquadRepository(db),
			scores:  postgres.NewScoreRepository(db),
			close:   db.Close,
		}, nil
	default:
		leagueRepo, playerRepo := memory.SeedRepositories()
		logger.Info("storage ready", "driver", cfg.StorageDriver)
		return repositories{
			leagues: leagueRepo,
			players: playerRepo,
			squads:  memory.NewSquadRepository(),
			scores:  memory.NewScoreRepository(),
			close:   func() error { return nil },
		}, nil
	}
}

func openDB(cfg config.Config) (*sqlx.DB, error) {
	dsn := normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary)

	db, err := otelsqlx.Connect("postgres", dsn,
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithDBName(dbNameFromURL(cfg.DBURL)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, err
	}

	return db, nil
}

func rulesFromConfig(cfg config.Config) roster.Rules {
	rules := roster.DefaultRules()
	rules.SquadSize = cfg.SquadSize
	rules.BudgetCap = cfg.BudgetCap
	rules.MaxPerClub = cfg.MaxPerClub
	rules.FreeTransfers = cfg.FreeTransfers
	rules.TransferPenaltyPoints = cfg.TransferPenaltyPoints

	return rules
}
