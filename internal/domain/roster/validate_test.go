package roster

import (
	"testing"

	"github.com/pitchside/fantasy-core/internal/domain/player"
)

func testPlayer(id, clubID string, pos player.Position, price int64) player.Player {
	return player.Player{
		ID:       id,
		LeagueID: "league-1",
		ClubID:   clubID,
		Name:     "Player " + id,
		Position: pos,
		Price:    price,
		Status:   player.StatusAvailable,
	}
}

func testCatalog() map[string]player.Player {
	players := []player.Player{
		testPlayer("gk-1", "club-a", player.PositionGoalkeeper, 50),
		testPlayer("gk-2", "club-b", player.PositionGoalkeeper, 45),
		testPlayer("def-1", "club-a", player.PositionDefender, 50),
		testPlayer("def-2", "club-b", player.PositionDefender, 50),
		testPlayer("def-3", "club-c", player.PositionDefender, 50),
		testPlayer("def-4", "club-d", player.PositionDefender, 50),
		testPlayer("def-5", "club-e", player.PositionDefender, 50),
		testPlayer("mid-1", "club-a", player.PositionMidfielder, 60),
		testPlayer("mid-2", "club-b", player.PositionMidfielder, 60),
		testPlayer("mid-3", "club-c", player.PositionMidfielder, 60),
		testPlayer("mid-4", "club-d", player.PositionMidfielder, 60),
		testPlayer("fwd-1", "club-e", player.PositionForward, 70),
		testPlayer("fwd-2", "club-f", player.PositionForward, 70),
		testPlayer("fwd-3", "club-g", player.PositionForward, 70),
	}

	return player.Index(players)
}

func validSelection() []string {
	return []string{
		"gk-1",
		"def-1", "def-2", "def-3", "def-4",
		"mid-1", "mid-2", "mid-3", "mid-4",
		"fwd-1", "fwd-2",
	}
}

func TestValidate_ValidSquad(t *testing.T) {
	catalog := testCatalog()

	result := Validate(catalog, validSelection(), "fwd-1", DefaultRules())
	if !result.Valid() {
		t.Fatalf("expected valid squad, got violations: %+v", result.Violations)
	}

	// 50 + 4*50 + 4*60 + 2*70 = 630 spent of 1000.
	if result.RemainingBudget != 370 {
		t.Fatalf("expected remaining budget 370, got %d", result.RemainingBudget)
	}
}

func TestValidate_WrongSizeAbortsEarly(t *testing.T) {
	catalog := testCatalog()

	result := Validate(catalog, []string{"gk-1", "def-1"}, "gk-1", DefaultRules())
	if len(result.Violations) != 1 {
		t.Fatalf("expected exactly one violation, got %+v", result.Violations)
	}
	if result.Violations[0].Code != ViolationSquadSize {
		t.Fatalf("expected %s, got %s", ViolationSquadSize, result.Violations[0].Code)
	}
	if result.Violations[0].Count != 2 {
		t.Fatalf("expected reported count 2, got %d", result.Violations[0].Count)
	}
}

func TestValidate_DuplicateAbortsEarly(t *testing.T) {
	catalog := testCatalog()

	selection := validSelection()
	selection[10] = "def-1"

	result := Validate(catalog, selection, "gk-1", DefaultRules())
	if len(result.Violations) != 1 {
		t.Fatalf("expected exactly one violation, got %+v", result.Violations)
	}
	if result.Violations[0].Code != ViolationDuplicatePlayer {
		t.Fatalf("expected %s, got %s", ViolationDuplicatePlayer, result.Violations[0].Code)
	}
	if result.Violations[0].PlayerID != "def-1" {
		t.Fatalf("expected offending player def-1, got %s", result.Violations[0].PlayerID)
	}
}

func TestValidate_UnknownPlayerSkipsPartialCounts(t *testing.T) {
	catalog := testCatalog()

	selection := validSelection()
	selection[0] = "ghost-1"

	result := Validate(catalog, selection, "fwd-1", DefaultRules())
	if len(result.Violations) != 1 {
		t.Fatalf("expected only the unknown-player violation, got %+v", result.Violations)
	}
	if result.Violations[0].Code != ViolationUnknownPlayer {
		t.Fatalf("expected %s, got %s", ViolationUnknownPlayer, result.Violations[0].Code)
	}
}

func TestValidate_IneligiblePlayer(t *testing.T) {
	catalog := testCatalog()
	injured := catalog["mid-1"]
	injured.Status = player.StatusInjured
	injured.StatusReason = "ankle sprain"
	catalog["mid-1"] = injured

	result := Validate(catalog, validSelection(), "fwd-1", DefaultRules())
	if len(result.Violations) != 1 {
		t.Fatalf("expected one violation, got %+v", result.Violations)
	}
	v := result.Violations[0]
	if v.Code != ViolationIneligible || v.PlayerID != "mid-1" {
		t.Fatalf("unexpected violation: %+v", v)
	}
	if v.Status != player.StatusInjured || v.Reason != "ankle sprain" {
		t.Fatalf("expected status detail carried, got %+v", v)
	}
}

func TestValidate_DoubtfulIsSelectable(t *testing.T) {
	catalog := testCatalog()
	doubtful := catalog["mid-1"]
	doubtful.Status = player.StatusDoubtful
	catalog["mid-1"] = doubtful

	result := Validate(catalog, validSelection(), "fwd-1", DefaultRules())
	if !result.Valid() {
		t.Fatalf("doubtful player should be selectable, got %+v", result.Violations)
	}
}

func TestValidate_CollectsAllConstraintViolations(t *testing.T) {
	catalog := testCatalog()
	expensive := catalog["fwd-2"]
	expensive.Price = 500
	catalog["fwd-2"] = expensive

	// Two goalkeepers and only three defenders, four from club-a, over
	// budget, captain outside the squad. All surfaced together, in order.
	selection := []string{
		"gk-1", "gk-2",
		"def-1", "def-2", "def-3",
		"mid-1", "mid-2", "mid-3", "mid-4",
		"fwd-1", "fwd-2",
	}
	catalogWithExtra := catalog
	extra := testPlayer("mid-5", "club-a", player.PositionMidfielder, 60)
	catalogWithExtra[extra.ID] = extra
	selection[8] = "mid-5"

	result := Validate(catalogWithExtra, selection, "ghost-captain", DefaultRules())
	if result.Valid() {
		t.Fatal("expected violations")
	}

	wantOrder := []ViolationCode{
		ViolationPositionQuota,
		ViolationClubCap,
		ViolationBudgetExceeded,
		ViolationCaptainNotInSquad,
	}
	if len(result.Violations) != len(wantOrder) {
		t.Fatalf("expected %d violations, got %+v", len(wantOrder), result.Violations)
	}
	for i, want := range wantOrder {
		if result.Violations[i].Code != want {
			t.Fatalf("violation %d: expected %s, got %s", i, want, result.Violations[i].Code)
		}
	}
	if result.Violations[0].Position != player.PositionGoalkeeper || result.Violations[0].Count != 2 {
		t.Fatalf("unexpected quota detail: %+v", result.Violations[0])
	}
}

func TestValidate_ClubCapDetail(t *testing.T) {
	catalog := testCatalog()
	moved := catalog["def-2"]
	moved.ClubID = "club-a"
	catalog["def-2"] = moved
	moved = catalog["def-3"]
	moved.ClubID = "club-a"
	catalog["def-3"] = moved

	// club-a now holds gk-1, def-1, def-2, def-3, mid-1: five players.
	result := Validate(catalog, validSelection(), "fwd-1", DefaultRules())
	if len(result.Violations) != 1 {
		t.Fatalf("expected one violation, got %+v", result.Violations)
	}
	v := result.Violations[0]
	if v.Code != ViolationClubCap || v.ClubID != "club-a" || v.Count != 5 || v.Max != 3 {
		t.Fatalf("unexpected club cap detail: %+v", v)
	}
}
