package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pitchside/fantasy-core/internal/domain/league"
	"github.com/pitchside/fantasy-core/internal/domain/player"
	"github.com/pitchside/fantasy-core/internal/domain/roster"
	idgen "github.com/pitchside/fantasy-core/internal/platform/id"
	"github.com/pitchside/fantasy-core/internal/platform/logging"
)

// SubmitSquadInput is the incoming payload for create/update squad.
type SubmitSquadInput struct {
	UserID    string
	LeagueID  string
	Name      string
	PlayerIDs []string
	CaptainID string
}

// SquadDetails pairs a stored squad with its remaining budget, recomputed
// from current catalog prices on every read.
type SquadDetails struct {
	Squad           roster.Squad
	RemainingBudget int64
}

type RosterService struct {
	leagueRepo league.Repository
	playerRepo player.Repository
	squadRepo  roster.Repository
	rules      roster.Rules
	idGen      idgen.Generator
	logger     *logging.Logger
	now        func() time.Time
}

func NewRosterService(
	leagueRepo league.Repository,
	playerRepo player.Repository,
	squadRepo roster.Repository,
	rules roster.Rules,
	idGen idgen.Generator,
	logger *logging.Logger,
) *RosterService {
	if logger == nil {
		logger = logging.Default()
	}

	return &RosterService{
		leagueRepo: leagueRepo,
		playerRepo: playerRepo,
		squadRepo:  squadRepo,
		rules:      rules,
		idGen:      idGen,
		logger:     logger,
		now:        time.Now,
	}
}

// SubmitSquad validates the proposed roster against the composition rules
// and persists it only when the validation result carries no violations.
// Rule violations come back in the result, not as an error.
func (s *RosterService) SubmitSquad(ctx context.Context, input SubmitSquadInput) (roster.Squad, roster.Result, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.SubmitSquad")
	defer span.End()

	input.UserID = strings.TrimSpace(input.UserID)
	input.LeagueID = strings.TrimSpace(input.LeagueID)
	input.Name = strings.TrimSpace(input.Name)
	input.CaptainID = strings.TrimSpace(input.CaptainID)

	if input.UserID == "" {
		return roster.Squad{}, roster.Result{}, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	if input.LeagueID == "" {
		return roster.Squad{}, roster.Result{}, fmt.Errorf("%w: league id is required", ErrInvalidInput)
	}
	if input.Name == "" {
		return roster.Squad{}, roster.Result{}, fmt.Errorf("%w: squad name is required", ErrInvalidInput)
	}
	if len(input.PlayerIDs) == 0 {
		return roster.Squad{}, roster.Result{}, fmt.Errorf("%w: player ids are required", ErrInvalidInput)
	}
	if input.CaptainID == "" {
		return roster.Squad{}, roster.Result{}, fmt.Errorf("%w: captain id is required", ErrInvalidInput)
	}

	if err := validateLeague(ctx, s.leagueRepo, input.LeagueID); err != nil {
		return roster.Squad{}, roster.Result{}, err
	}

	playerIDs, err := cleanPlayerIDs(input.PlayerIDs)
	if err != nil {
		return roster.Squad{}, roster.Result{}, err
	}

	catalog, err := s.loadCatalog(ctx, input.LeagueID, playerIDs)
	if err != nil {
		return roster.Squad{}, roster.Result{}, err
	}

	result := roster.Validate(catalog, playerIDs, input.CaptainID, s.rules)
	if !result.Valid() {
		return roster.Squad{}, result, nil
	}

	now := s.now().UTC()
	existing, exists, err := s.squadRepo.GetByUserAndLeague(ctx, input.UserID, input.LeagueID)
	if err != nil {
		return roster.Squad{}, roster.Result{}, fmt.Errorf("get existing squad: %w", err)
	}

	squadID := existing.ID
	createdAt := existing.CreatedAt
	window := existing.Window
	if !exists {
		squadID, err = s.idGen.NewID()
		if err != nil {
			return roster.Squad{}, roster.Result{}, fmt.Errorf("generate squad id: %w", err)
		}
		createdAt = now
		window = roster.TransferWindow{}
	}

	squad := roster.Squad{
		ID:        squadID,
		UserID:    input.UserID,
		LeagueID:  input.LeagueID,
		Name:      input.Name,
		PlayerIDs: playerIDs,
		CaptainID: input.CaptainID,
		BudgetCap: s.rules.BudgetCap,
		Window:    window,
		CreatedAt: createdAt,
		UpdatedAt: now,
	}

	if err := squad.ValidateBasic(); err != nil {
		return roster.Squad{}, roster.Result{}, fmt.Errorf("validate squad: %w", err)
	}

	if err := s.squadRepo.Upsert(ctx, squad); err != nil {
		return roster.Squad{}, roster.Result{}, fmt.Errorf("upsert squad: %w", err)
	}

	s.logger.InfoContext(ctx, "squad submitted",
		"user_id", input.UserID,
		"league_id", input.LeagueID,
		"squad_id", squad.ID,
		"player_count", len(squad.PlayerIDs),
		"remaining_budget", result.RemainingBudget,
	)

	return squad, result, nil
}

func (s *RosterService) GetSquad(ctx context.Context, leagueID, squadID string) (SquadDetails, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.GetSquad")
	defer span.End()

	leagueID = strings.TrimSpace(leagueID)
	squadID = strings.TrimSpace(squadID)
	if leagueID == "" || squadID == "" {
		return SquadDetails{}, fmt.Errorf("%w: league_id and squad_id are required", ErrInvalidInput)
	}

	squad, exists, err := s.squadRepo.GetByID(ctx, leagueID, squadID)
	if err != nil {
		return SquadDetails{}, fmt.Errorf("get squad: %w", err)
	}
	if !exists {
		return SquadDetails{}, fmt.Errorf("%w: squad=%s", ErrNotFound, squadID)
	}

	return s.squadDetails(ctx, squad)
}

func (s *RosterService) GetUserSquad(ctx context.Context, userID, leagueID string) (SquadDetails, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.GetUserSquad")
	defer span.End()

	userID = strings.TrimSpace(userID)
	leagueID = strings.TrimSpace(leagueID)
	if userID == "" || leagueID == "" {
		return SquadDetails{}, fmt.Errorf("%w: user_id and league_id are required", ErrInvalidInput)
	}

	squad, exists, err := s.squadRepo.GetByUserAndLeague(ctx, userID, leagueID)
	if err != nil {
		return SquadDetails{}, fmt.Errorf("get squad: %w", err)
	}
	if !exists {
		return SquadDetails{}, fmt.Errorf("%w: squad not found", ErrNotFound)
	}

	return s.squadDetails(ctx, squad)
}

// squadDetails derives the remaining budget from the current catalog. Players
// missing from the catalog contribute zero, mirroring how scoring treats
// unknown ids.
func (s *RosterService) squadDetails(ctx context.Context, squad roster.Squad) (SquadDetails, error) {
	catalog, err := s.loadCatalog(ctx, squad.LeagueID, squad.PlayerIDs)
	if err != nil {
		return SquadDetails{}, err
	}

	var spent int64
	for _, id := range squad.PlayerIDs {
		if item, ok := catalog[id]; ok {
			spent += item.Price
		}
	}

	return SquadDetails{
		Squad:           squad,
		RemainingBudget: squad.BudgetCap - spent,
	}, nil
}

func (s *RosterService) loadCatalog(ctx context.Context, leagueID string, playerIDs []string) (map[string]player.Player, error) {
	players, err := s.playerRepo.GetByIDs(ctx, leagueID, playerIDs)
	if err != nil {
		return nil, fmt.Errorf("get players by ids: %w", err)
	}

	return player.Index(players), nil
}

// cleanPlayerIDs trims surrounding whitespace but keeps duplicates: the
// validator reports those as violations with the offending player id.
func cleanPlayerIDs(playerIDs []string) ([]string, error) {
	cleaned := make([]string, 0, len(playerIDs))
	for _, id := range playerIDs {
		id = strings.TrimSpace(id)
		if id == "" {
			return nil, fmt.Errorf("%w: player id cannot be empty", ErrInvalidInput)
		}
		cleaned = append(cleaned, id)
	}

	return cleaned, nil
}
