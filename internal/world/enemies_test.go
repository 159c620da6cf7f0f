package world

import (
	"context"
	"testing"

	"github.com/samdwyer/tehon/internal/rng"
	"github.com/samdwyer/tehon/internal/telemetry"
)

func TestMain(m *testing.M) {
	telemetry.Disable()
	m.Run()
}

func TestProcessEnemiesNotice(t *testing.T) {
	l := makeLevel(t, map[[2]int]byte{{5, 3}: 'W'})
	src := &rng.Sequence{Offsets: []int{0}}

	report := ProcessEnemies(context.Background(), l, src, 7, 3)

	if l.At(5, 3) != 'w' {
		t.Errorf("wolf near the player = %q, want pursuing w", l.At(5, 3))
	}
	if report.Noticed != 1 {
		t.Errorf("Noticed = %d, want 1", report.Noticed)
	}
}

func TestProcessEnemiesFarOrHidden(t *testing.T) {
	tests := []struct {
		name  string
		cells map[[2]int]byte
		px    int
		py    int
	}{
		{"too far", map[[2]int]byte{{5, 3}: 'W'}, 12, 3},
		{"behind a wall", map[[2]int]byte{{5, 3}: 'W', {6, 3}: '#'}, 7, 3},
	}

	for _, tt := range tests {
		l := makeLevel(t, tt.cells)
		ProcessEnemies(context.Background(), l, &rng.Sequence{Offsets: []int{0}}, tt.px, tt.py)
		if l.At(5, 3) != 'W' {
			t.Errorf("%s: wolf = %q, want alert W", tt.name, l.At(5, 3))
		}
	}
}

func TestProcessEnemiesWanderOnce(t *testing.T) {
	l := makeLevel(t, map[[2]int]byte{{0, 0}: 'S'})
	// Every x offset is +1, every y offset 0.
	src := &rng.Sequence{Offsets: []int{1, 0}}

	report := ProcessEnemies(context.Background(), l, src, 15, 7)

	if l.At(1, 0) != 'S' || l.At(0, 0) != TileEmpty || l.At(2, 0) != TileEmpty {
		t.Errorf("scout should move exactly one cell: %q", l.Rows()[0])
	}
	if report.Wandered != 1 {
		t.Errorf("Wandered = %d, want 1", report.Wandered)
	}
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			if l.Get(x, y).Marked() {
				t.Fatalf("mark left at (%d,%d)", x, y)
			}
		}
	}
}

func TestProcessEnemiesWanderClamped(t *testing.T) {
	l := makeLevel(t, map[[2]int]byte{{15, 7}: 'A'})
	src := &rng.Sequence{Offsets: []int{1, 1}}

	ProcessEnemies(context.Background(), l, src, 0, 0)

	if l.At(15, 7) != 'A' {
		t.Errorf("warrior at the corner should stay, got %q", l.At(15, 7))
	}
}

func TestProcessEnemiesPursue(t *testing.T) {
	l := makeLevel(t, map[[2]int]byte{{0, 3}: 'w'})

	report := ProcessEnemies(context.Background(), l, &rng.Sequence{}, 5, 3)

	if l.At(2, 3) != 'w' {
		t.Errorf("pursuer should be two cells closer: %q", l.Rows()[3])
	}
	if report.Pursued != 1 || report.Lost != 0 {
		t.Errorf("report = %+v", report)
	}
}

func TestProcessEnemiesCatchPlayer(t *testing.T) {
	l := makeLevel(t, map[[2]int]byte{{0, 0}: 'r'})

	ProcessEnemies(context.Background(), l, &rng.Sequence{}, 1, 0)

	if l.At(1, 0) != 'r' {
		t.Errorf("raider should stand on the player's cell: %q", l.Rows()[0])
	}
}

func TestProcessEnemiesLoseSight(t *testing.T) {
	l := makeLevel(t, map[[2]int]byte{
		{0, 0}: 'b',
		{1, 0}: '#',
		{0, 1}: '#',
	})

	report := ProcessEnemies(context.Background(), l, &rng.Sequence{}, 5, 0)

	if l.At(0, 0) != 'B' {
		t.Errorf("boxed-in pursuer = %q, want alert B", l.At(0, 0))
	}
	if report.Lost != 1 {
		t.Errorf("Lost = %d, want 1", report.Lost)
	}
}

func TestProcessEnemiesGuardHolds(t *testing.T) {
	l := makeLevel(t, map[[2]int]byte{{14, 2}: 'G'})

	ProcessEnemies(context.Background(), l, &rng.Sequence{Offsets: []int{-1}}, 13, 2)

	if l.At(14, 2) != 'G' {
		t.Errorf("guard moved or changed: %q", l.Rows()[2])
	}
}
