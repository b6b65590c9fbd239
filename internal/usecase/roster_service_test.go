package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/pitchside/fantasy-core/internal/domain/roster"
	"github.com/pitchside/fantasy-core/internal/infrastructure/repository/memory"
	"github.com/pitchside/fantasy-core/internal/platform/logging"
)

type staticIDGenerator struct {
	id string
}

func (g staticIDGenerator) NewID() (string, error) {
	return g.id, nil
}

// A legal 11 from the seeded Liga 1 catalog: GK 1, DEF 4, MID 4, FWD 2,
// three per club at most, 990 of the 1000 budget spent.
func seededSelection() []string {
	return []string{
		"idn-gk-02",
		"idn-def-01", "idn-def-02", "idn-def-04", "idn-def-05",
		"idn-mid-01", "idn-mid-03", "idn-mid-04", "idn-mid-06",
		"idn-fwd-01", "idn-fwd-03",
	}
}

func newRosterServiceFixture(t *testing.T) (*RosterService, *memory.SquadRepository) {
	t.Helper()

	leagueRepo, playerRepo := memory.SeedRepositories()
	squadRepo := memory.NewSquadRepository()

	service := NewRosterService(
		leagueRepo,
		playerRepo,
		squadRepo,
		roster.DefaultRules(),
		staticIDGenerator{id: "squad-001"},
		logging.NewNop(),
	)

	return service, squadRepo
}

func TestRosterService_SubmitSquad_CreateThenUpdate(t *testing.T) {
	service, _ := newRosterServiceFixture(t)

	firstNow := time.Date(2026, 8, 14, 12, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return firstNow }

	squad, result, err := service.SubmitSquad(t.Context(), SubmitSquadInput{
		UserID:    "user-1",
		LeagueID:  memory.LeagueIDLiga1Indonesia,
		Name:      "Garuda XI",
		PlayerIDs: seededSelection(),
		CaptainID: "idn-fwd-01",
	})
	if err != nil {
		t.Fatalf("submit squad failed: %v", err)
	}
	if !result.Valid() {
		t.Fatalf("expected valid submission, got %+v", result.Violations)
	}
	if result.RemainingBudget != 10 {
		t.Fatalf("expected remaining budget 10, got %d", result.RemainingBudget)
	}
	if squad.ID != "squad-001" {
		t.Fatalf("expected generated id squad-001, got %s", squad.ID)
	}
	if !squad.CreatedAt.Equal(firstNow) || !squad.UpdatedAt.Equal(firstNow) {
		t.Fatalf("expected timestamps %v, got created=%v updated=%v", firstNow, squad.CreatedAt, squad.UpdatedAt)
	}
	if squad.Window.Gameweek != 0 || squad.Window.TransfersUsed != 0 {
		t.Fatalf("new squad must start with an empty transfer window, got %+v", squad.Window)
	}

	secondNow := firstNow.Add(30 * time.Minute)
	service.now = func() time.Time { return secondNow }

	updated, _, err := service.SubmitSquad(t.Context(), SubmitSquadInput{
		UserID:    "user-1",
		LeagueID:  memory.LeagueIDLiga1Indonesia,
		Name:      "Garuda XI Reborn",
		PlayerIDs: seededSelection(),
		CaptainID: "idn-mid-01",
	})
	if err != nil {
		t.Fatalf("resubmit squad failed: %v", err)
	}
	if updated.ID != squad.ID {
		t.Fatalf("resubmission must keep the squad id, got %s vs %s", updated.ID, squad.ID)
	}
	if !updated.CreatedAt.Equal(firstNow) {
		t.Fatalf("created_at must survive resubmission, got %v", updated.CreatedAt)
	}
	if !updated.UpdatedAt.Equal(secondNow) {
		t.Fatalf("expected updated_at %v, got %v", secondNow, updated.UpdatedAt)
	}
	if updated.CaptainID != "idn-mid-01" {
		t.Fatalf("expected new captain, got %s", updated.CaptainID)
	}
}

func TestRosterService_SubmitSquad_ViolationsNotPersisted(t *testing.T) {
	service, squadRepo := newRosterServiceFixture(t)

	selection := seededSelection()
	selection[5] = "idn-mid-05" // injured

	squad, result, err := service.SubmitSquad(t.Context(), SubmitSquadInput{
		UserID:    "user-1",
		LeagueID:  memory.LeagueIDLiga1Indonesia,
		Name:      "Garuda XI",
		PlayerIDs: selection,
		CaptainID: "idn-fwd-01",
	})
	if err != nil {
		t.Fatalf("submit squad returned error instead of violations: %v", err)
	}
	if result.Valid() {
		t.Fatal("expected violations for injured player")
	}
	if squad.ID != "" {
		t.Fatalf("invalid submission must not return a squad, got %+v", squad)
	}

	found := false
	for _, v := range result.Violations {
		if v.Code == roster.ViolationIneligible && v.PlayerID == "idn-mid-05" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected ineligible violation for idn-mid-05, got %+v", result.Violations)
	}

	if _, exists, repoErr := squadRepo.GetByUserAndLeague(t.Context(), "user-1", memory.LeagueIDLiga1Indonesia); repoErr != nil || exists {
		t.Fatalf("rejected squad must not be persisted, exists=%v err=%v", exists, repoErr)
	}
}

func TestRosterService_SubmitSquad_UnknownLeague(t *testing.T) {
	service, _ := newRosterServiceFixture(t)

	_, _, err := service.SubmitSquad(t.Context(), SubmitSquadInput{
		UserID:    "user-1",
		LeagueID:  "league-unknown",
		Name:      "Nowhere XI",
		PlayerIDs: seededSelection(),
		CaptainID: "idn-fwd-01",
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRosterService_GetSquad_ReportsRemainingBudget(t *testing.T) {
	service, _ := newRosterServiceFixture(t)

	squad, _, err := service.SubmitSquad(t.Context(), SubmitSquadInput{
		UserID:    "user-1",
		LeagueID:  memory.LeagueIDLiga1Indonesia,
		Name:      "Garuda XI",
		PlayerIDs: seededSelection(),
		CaptainID: "idn-fwd-01",
	})
	if err != nil {
		t.Fatalf("submit squad failed: %v", err)
	}

	details, err := service.GetSquad(t.Context(), memory.LeagueIDLiga1Indonesia, squad.ID)
	if err != nil {
		t.Fatalf("get squad failed: %v", err)
	}
	if details.Squad.ID != squad.ID {
		t.Fatalf("expected squad %s, got %s", squad.ID, details.Squad.ID)
	}
	if details.RemainingBudget != 10 {
		t.Fatalf("expected remaining budget 10, got %d", details.RemainingBudget)
	}

	byUser, err := service.GetUserSquad(t.Context(), "user-1", memory.LeagueIDLiga1Indonesia)
	if err != nil {
		t.Fatalf("get user squad failed: %v", err)
	}
	if byUser.RemainingBudget != 10 {
		t.Fatalf("expected remaining budget 10 on user lookup, got %d", byUser.RemainingBudget)
	}
}

func TestRosterService_GetUserSquad_NotFound(t *testing.T) {
	service, _ := newRosterServiceFixture(t)

	_, err := service.GetUserSquad(t.Context(), "user-1", memory.LeagueIDLiga1Indonesia)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
