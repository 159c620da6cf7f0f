package game

import (
	"context"
	"strings"
	"testing"

	"github.com/samdwyer/tehon/internal/audio"
	"github.com/samdwyer/tehon/internal/gamedata"
	"github.com/samdwyer/tehon/internal/grid"
	"github.com/samdwyer/tehon/internal/rng"
	"github.com/samdwyer/tehon/internal/world"
)

// testLevel builds an empty level with the given cells set.
func testLevel(t *testing.T, id string, cells map[[2]int]byte) *world.Level {
	t.Helper()
	rows := make([][]byte, world.Height)
	for y := range rows {
		rows[y] = []byte(strings.Repeat(" ", world.Width))
	}
	for pos, c := range cells {
		rows[pos[1]][pos[0]] = c
	}
	strs := make([]string, world.Height)
	for y := range rows {
		strs[y] = string(rows[y])
	}
	l, err := world.ParseLevel(id, strs...)
	if err != nil {
		t.Fatalf("ParseLevel() error: %v", err)
	}
	return l
}

// newTestAdventure starts a run on the given levels. The scripted source keeps
// wandering enemies in place.
func newTestAdventure(t *testing.T, levels ...*world.Level) (*Adventure, *recordingSink) {
	t.Helper()
	sink := newRecordingSink()
	a := NewAdventure(gamedata.MustLoadPlayer(), gamedata.MustLoadEnemyRegistry(), grid.MustLoadStore(), &rng.Sequence{}, sink)
	if err := a.ResetWith(context.Background(), levels...); err != nil {
		t.Fatalf("ResetWith() error: %v", err)
	}
	return a, sink
}

func TestAdventureReset(t *testing.T) {
	a := NewAdventure(gamedata.MustLoadPlayer(), gamedata.MustLoadEnemyRegistry(), grid.MustLoadStore(), &rng.Sequence{}, audio.NopSink{})
	if err := a.Reset(context.Background()); err != nil {
		t.Fatalf("Reset() error: %v", err)
	}

	if a.Current.ID != forestID {
		t.Errorf("Current.ID = %q, want %q", a.Current.ID, forestID)
	}
	if x, y := a.Explorer.Position(); x != 0 || y != 7 {
		t.Errorf("explorer at (%d,%d), want the forest entrance (0,7)", x, y)
	}
	if a.Player.Health != 10 || a.Player.Stamina != 5 {
		t.Errorf("player health, stamina = %d, %d, want 10, 5", a.Player.Health, a.Player.Stamina)
	}
	if a.KilledBoss {
		t.Error("KilledBoss = true on a fresh run")
	}
	if len(a.Levels) != 2 {
		t.Errorf("len(Levels) = %d, want 2", len(a.Levels))
	}
}

func TestAdventureResetWithoutForest(t *testing.T) {
	a := NewAdventure(gamedata.MustLoadPlayer(), gamedata.MustLoadEnemyRegistry(), grid.MustLoadStore(), &rng.Sequence{}, audio.NopSink{})
	if err := a.ResetWith(context.Background(), testLevel(t, caveID, nil)); err == nil {
		t.Error("ResetWith() without a forest = nil error")
	}
}

func TestAdventureMoveBlocked(t *testing.T) {
	forest := testLevel(t, forestID, map[[2]int]byte{{0, 0}: 'E', {1, 0}: '*'})
	a, sink := newTestAdventure(t, forest)
	a.Player.Stamina = 2

	tests := []struct {
		name   string
		dx, dy int
	}{
		{"into tree", 1, 0},
		{"off the left edge", -1, 0},
		{"off the top edge", 0, -1},
	}
	for _, tt := range tests {
		step := a.Move(context.Background(), tt.dx, tt.dy)
		if step.Moved {
			t.Errorf("%s: Moved = true", tt.name)
		}
		if x, y := a.Explorer.Position(); x != 0 || y != 0 {
			t.Errorf("%s: explorer at (%d,%d), want (0,0)", tt.name, x, y)
		}
	}

	if a.Player.Stamina != 2 {
		t.Errorf("Stamina = %d after blocked moves, want 2", a.Player.Stamina)
	}
	if len(sink.played) != 0 {
		t.Errorf("played %v on blocked moves, want nothing", sink.played)
	}
}

func TestAdventureMoveRegenerates(t *testing.T) {
	forest := testLevel(t, forestID, map[[2]int]byte{{0, 0}: 'E'})
	a, sink := newTestAdventure(t, forest)
	a.Player.Stamina = 3

	steps := []struct {
		dx, dy      int
		wantStamina int
	}{
		{0, 1, 4},
		{0, 0, 5}, // Waiting also recovers
		{1, 0, 5}, // Capped at the maximum
	}
	for i, s := range steps {
		step := a.Move(context.Background(), s.dx, s.dy)
		if !step.Moved {
			t.Errorf("step %d: Moved = false", i)
		}
		if a.Player.Stamina != s.wantStamina {
			t.Errorf("step %d: Stamina = %d, want %d", i, a.Player.Stamina, s.wantStamina)
		}
	}

	if x, y := a.Explorer.Position(); x != 1 || y != 1 {
		t.Errorf("explorer at (%d,%d), want (1,1)", x, y)
	}
	if got := sink.count(audio.SoundStep); got != 3 {
		t.Errorf("step sounds = %d, want 3", got)
	}
}

func TestAdventureEncounter(t *testing.T) {
	forest := testLevel(t, forestID, map[[2]int]byte{{0, 0}: 'E', {1, 0}: 'G'})
	a, _ := newTestAdventure(t, forest)

	step := a.Move(context.Background(), 1, 0)

	if step.Opponent == nil {
		t.Fatal("Opponent = nil, want the guard")
	}
	if step.Opponent.Name != "Orc Guard" {
		t.Errorf("Opponent.Name = %q, want %q", step.Opponent.Name, "Orc Guard")
	}
	if step.Opponent.Grid.Template.Type != grid.TemplateGuard {
		t.Errorf("opponent grid = %v, want %v", step.Opponent.Grid.Template.Type, grid.TemplateGuard)
	}
	if got := forest.At(1, 0); got != world.TileEmpty {
		t.Errorf("encounter tile = %q, want cleared", got.Rune())
	}
}

func TestAdventureUnknownEnemy(t *testing.T) {
	forest := testLevel(t, forestID, map[[2]int]byte{{0, 0}: 'E', {1, 0}: 'Q'})
	a, _ := newTestAdventure(t, forest)

	step := a.Move(context.Background(), 1, 0)

	if step.Opponent != nil {
		t.Errorf("Opponent = %v, want nil for an unknown code", step.Opponent.Name)
	}
	if got := forest.At(1, 0); got != 'Q' {
		t.Errorf("tile = %q, want it left alone", got.Rune())
	}
	if !step.Moved {
		t.Error("Moved = false, want the explorer to step on")
	}
}

func TestAdventureLevelSwitching(t *testing.T) {
	forest := testLevel(t, forestID, map[[2]int]byte{{0, 0}: 'E', {1, 0}: 'X'})
	cave := testLevel(t, caveID, map[[2]int]byte{{0, 3}: 'E', {15, 3}: 'B'})
	a, _ := newTestAdventure(t, forest, cave)
	ctx := context.Background()

	step := a.Move(ctx, 1, 0)
	if !step.Switched || a.Current != cave {
		t.Fatalf("exit did not lead to the cave: %+v, level %s", step, a.Current.ID)
	}
	if x, y := a.Explorer.Position(); x != 0 || y != 3 {
		t.Errorf("explorer at (%d,%d), want the cave entrance (0,3)", x, y)
	}

	// The entrance only leads home once the leader is dead.
	a.Move(ctx, 1, 0)
	if step := a.Move(ctx, -1, 0); step.Switched {
		t.Error("cave entrance switched level with the leader alive")
	}

	a.KilledBoss = true
	a.Move(ctx, 1, 0)
	step = a.Move(ctx, -1, 0)
	if !step.Switched || a.Current != forest {
		t.Fatalf("cave entrance did not lead home: %+v, level %s", step, a.Current.ID)
	}
	if x, y := a.Explorer.Position(); x != 1 || y != 0 {
		t.Errorf("explorer at (%d,%d), want the forest exit (1,0)", x, y)
	}
	if cave.At(15, 3) != 'B' {
		t.Error("cave lost its state across the switch")
	}

	step = a.Move(ctx, -1, 0)
	if !step.Escaped {
		t.Errorf("Escaped = false on the forest entrance with the leader dead")
	}
}

func TestAdventureFightOver(t *testing.T) {
	tests := []struct {
		name         string
		killedBefore bool
		fightKilled  bool
		outcome      FightOutcome
		wantEnding   Ending
		wantOver     bool
	}{
		{"won", false, false, FightWon, 0, false},
		{"won against the leader", false, true, FightWon, 0, false},
		{"died early", false, false, FightLost, EndingFailed, true},
		{"died with the leader", false, true, FightLost, EndingFallenHero, true},
		{"died on the way home", true, false, FightLost, EndingFallenHero, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &Adventure{KilledBoss: tt.killedBefore}
			f := &Fight{KilledBoss: tt.fightKilled, outcome: tt.outcome}

			ending, over := a.FightOver(f)
			if over != tt.wantOver || (over && ending != tt.wantEnding) {
				t.Errorf("FightOver() = %v, %v, want %v, %v", ending, over, tt.wantEnding, tt.wantOver)
			}
			if want := tt.killedBefore || tt.fightKilled; a.KilledBoss != want {
				t.Errorf("KilledBoss = %v, want %v", a.KilledBoss, want)
			}
		})
	}
}
