package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/pitchside/fantasy-core/internal/domain/league"
	"github.com/pitchside/fantasy-core/internal/domain/player"
	"github.com/pitchside/fantasy-core/internal/domain/roster"
	"github.com/pitchside/fantasy-core/internal/infrastructure/repository/memory"
	"github.com/pitchside/fantasy-core/internal/platform/logging"
)

const testLeagueID = "test-league"

func putTestPlayer(repo *memory.PlayerRepository, id, clubID string, pos player.Position, price int64) {
	repo.Put(player.Player{
		ID:       id,
		LeagueID: testLeagueID,
		ClubID:   clubID,
		Name:     "Player " + id,
		Position: pos,
		Price:    price,
		Status:   player.StatusAvailable,
	})
}

// Fixture with cheap players so transfer tests have budget headroom.
func newTransferServiceFixture(t *testing.T) (*TransferService, *memory.SquadRepository, roster.Squad) {
	t.Helper()

	leagueRepo := memory.NewLeagueRepository()
	leagueRepo.Put(league.League{ID: testLeagueID, Name: "Test League", Season: "2026/2027"})

	playerRepo := memory.NewPlayerRepository()
	putTestPlayer(playerRepo, "gk-1", "club-a", player.PositionGoalkeeper, 50)
	putTestPlayer(playerRepo, "gk-2", "club-b", player.PositionGoalkeeper, 50)
	putTestPlayer(playerRepo, "def-1", "club-a", player.PositionDefender, 50)
	putTestPlayer(playerRepo, "def-2", "club-b", player.PositionDefender, 50)
	putTestPlayer(playerRepo, "def-3", "club-c", player.PositionDefender, 50)
	putTestPlayer(playerRepo, "def-4", "club-d", player.PositionDefender, 50)
	putTestPlayer(playerRepo, "def-5", "club-e", player.PositionDefender, 50)
	putTestPlayer(playerRepo, "mid-1", "club-a", player.PositionMidfielder, 50)
	putTestPlayer(playerRepo, "mid-2", "club-b", player.PositionMidfielder, 50)
	putTestPlayer(playerRepo, "mid-3", "club-c", player.PositionMidfielder, 50)
	putTestPlayer(playerRepo, "mid-4", "club-d", player.PositionMidfielder, 50)
	putTestPlayer(playerRepo, "fwd-1", "club-e", player.PositionForward, 50)
	putTestPlayer(playerRepo, "fwd-2", "club-f", player.PositionForward, 50)
	putTestPlayer(playerRepo, "fwd-3", "club-g", player.PositionForward, 50)

	squadRepo := memory.NewSquadRepository()
	squad := roster.Squad{
		ID:       "squad-1",
		UserID:   "user-1",
		LeagueID: testLeagueID,
		Name:     "Test XI",
		PlayerIDs: []string{
			"gk-1",
			"def-1", "def-2", "def-3", "def-4",
			"mid-1", "mid-2", "mid-3", "mid-4",
			"fwd-1", "fwd-2",
		},
		CaptainID: "fwd-1",
		BudgetCap: 1000,
		Window:    roster.TransferWindow{Gameweek: 3},
		CreatedAt: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
	}
	if err := squadRepo.Upsert(t.Context(), squad); err != nil {
		t.Fatalf("seed squad: %v", err)
	}

	service := NewTransferService(leagueRepo, playerRepo, squadRepo, roster.DefaultRules(), logging.NewNop())

	return service, squadRepo, squad
}

func TestTransferService_ApplyTransfers_FreeTransfer(t *testing.T) {
	service, squadRepo, squad := newTransferServiceFixture(t)

	result, err := service.ApplyTransfers(t.Context(), TransferInput{
		UserID:     "user-1",
		LeagueID:   testLeagueID,
		SquadID:    squad.ID,
		Gameweek:   3,
		PlayersOut: []string{"fwd-2"},
		PlayersIn:  []string{"fwd-3"},
	})
	if err != nil {
		t.Fatalf("apply transfers failed: %v", err)
	}
	if !result.Accepted() {
		t.Fatalf("expected accepted transfer, got %+v", result.Validation.Violations)
	}
	if result.TransfersUsed != 1 || result.PointsPenalty != 0 {
		t.Fatalf("expected used=1 penalty=0, got used=%d penalty=%d", result.TransfersUsed, result.PointsPenalty)
	}

	stored, exists, err := squadRepo.GetByID(t.Context(), testLeagueID, squad.ID)
	if err != nil || !exists {
		t.Fatalf("load stored squad: exists=%v err=%v", exists, err)
	}
	if !stored.Contains("fwd-3") || stored.Contains("fwd-2") {
		t.Fatalf("expected persisted swap, got %v", stored.PlayerIDs)
	}
	if stored.Window.TransfersUsed != 1 {
		t.Fatalf("expected persisted window used=1, got %+v", stored.Window)
	}
}

func TestTransferService_ApplyTransfers_PenaltyAccumulates(t *testing.T) {
	service, _, squad := newTransferServiceFixture(t)

	first, err := service.ApplyTransfers(t.Context(), TransferInput{
		UserID:     "user-1",
		LeagueID:   testLeagueID,
		SquadID:    squad.ID,
		Gameweek:   3,
		PlayersOut: []string{"fwd-2"},
		PlayersIn:  []string{"fwd-3"},
	})
	if err != nil || first.PointsPenalty != 0 {
		t.Fatalf("first transfer: err=%v penalty=%d", err, first.PointsPenalty)
	}

	second, err := service.ApplyTransfers(t.Context(), TransferInput{
		UserID:     "user-1",
		LeagueID:   testLeagueID,
		SquadID:    squad.ID,
		Gameweek:   3,
		PlayersOut: []string{"mid-2"},
		PlayersIn:  []string{"gk-2"},
	})
	if err != nil {
		t.Fatalf("second transfer failed: %v", err)
	}
	// gk-2 replacing a midfielder is invalid; retry with a legal target.
	if second.Accepted() {
		t.Fatal("expected rejection for a second goalkeeper")
	}

	third, err := service.ApplyTransfers(t.Context(), TransferInput{
		UserID:     "user-1",
		LeagueID:   testLeagueID,
		SquadID:    squad.ID,
		Gameweek:   3,
		PlayersOut: []string{"def-4"},
		PlayersIn:  []string{"def-5"},
	})
	if err != nil {
		t.Fatalf("third transfer failed: %v", err)
	}
	if !third.Accepted() {
		t.Fatalf("expected accepted transfer, got %+v", third.Validation.Violations)
	}
	if third.TransfersUsed != 2 {
		t.Fatalf("expected cumulative used=2 within the window, got %d", third.TransfersUsed)
	}
	if third.PointsPenalty != 4 {
		t.Fatalf("expected penalty 4 beyond the free transfer, got %d", third.PointsPenalty)
	}
}

func TestTransferService_ApplyTransfers_LaterGameweekResetsWindow(t *testing.T) {
	service, squadRepo, squad := newTransferServiceFixture(t)

	squad.Window = roster.TransferWindow{Gameweek: 3, TransfersUsed: 2, PenaltyPoints: 4}
	if err := squadRepo.Upsert(t.Context(), squad); err != nil {
		t.Fatalf("seed window: %v", err)
	}

	result, err := service.ApplyTransfers(t.Context(), TransferInput{
		UserID:     "user-1",
		LeagueID:   testLeagueID,
		SquadID:    squad.ID,
		Gameweek:   4,
		PlayersOut: []string{"fwd-2"},
		PlayersIn:  []string{"fwd-3"},
	})
	if err != nil {
		t.Fatalf("apply transfers failed: %v", err)
	}
	if result.TransfersUsed != 1 || result.PointsPenalty != 0 {
		t.Fatalf("new gameweek must reset the allowance, got used=%d penalty=%d", result.TransfersUsed, result.PointsPenalty)
	}
	if result.Squad.Window.Gameweek != 4 {
		t.Fatalf("expected window moved to gameweek 4, got %+v", result.Squad.Window)
	}
}

func TestTransferService_ApplyTransfers_EarlierGameweekRejected(t *testing.T) {
	service, _, squad := newTransferServiceFixture(t)

	_, err := service.ApplyTransfers(t.Context(), TransferInput{
		UserID:     "user-1",
		LeagueID:   testLeagueID,
		SquadID:    squad.ID,
		Gameweek:   2,
		PlayersOut: []string{"fwd-2"},
		PlayersIn:  []string{"fwd-3"},
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for a past gameweek, got %v", err)
	}
}

func TestTransferService_ApplyTransfers_WrongUser(t *testing.T) {
	service, _, squad := newTransferServiceFixture(t)

	_, err := service.ApplyTransfers(t.Context(), TransferInput{
		UserID:     "user-2",
		LeagueID:   testLeagueID,
		SquadID:    squad.ID,
		Gameweek:   3,
		PlayersOut: []string{"fwd-2"},
		PlayersIn:  []string{"fwd-3"},
	})
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestTransferService_ApplyTransfers_UnownedPlayerRejected(t *testing.T) {
	service, _, squad := newTransferServiceFixture(t)

	_, err := service.ApplyTransfers(t.Context(), TransferInput{
		UserID:     "user-1",
		LeagueID:   testLeagueID,
		SquadID:    squad.ID,
		Gameweek:   3,
		PlayersOut: []string{"fwd-3"},
		PlayersIn:  []string{"fwd-2"},
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for unowned player, got %v", err)
	}
}
