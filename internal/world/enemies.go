package world

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/tehon/internal/rng"
	"github.com/samdwyer/tehon/internal/telemetry"
)

const (
	// noticeDistance is the Manhattan distance within which an alert enemy can
	// notice the player.
	noticeDistance = 4
	// pursuitSteps is how many cells a pursuing enemy moves per player turn.
	pursuitSteps = 2
)

// EnemyReport summarizes one enemy scan.
type EnemyReport struct {
	Wandered int // Alert enemies that changed cell
	Noticed  int // Alert enemies that started pursuing
	Pursued  int // Pursuing enemies that changed cell
	Lost     int // Pursuing enemies that lost sight of the player
}

// ProcessEnemies gives every enemy on the level one turn. Alert enemies wander
// one random step and start pursuing when the player is close and visible.
// Pursuing enemies take two steps toward the player and fall back to alert when
// they can no longer see the player. Each enemy acts at most once per scan.
func ProcessEnemies(ctx context.Context, l *Level, src rng.Source, playerX, playerY int) EnemyReport {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "world.process_enemies")
	defer span.End()

	var report EnemyReport

	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			t := l.Get(x, y)
			if t.Marked() || t.IsTerrain() {
				continue
			}
			l.Mark(x, y)

			if !t.Wanders() {
				continue
			}

			if t.IsPursuing() {
				cx, cy := x, y
				for step := 0; step < pursuitSteps; step++ {
					dx, dy := MoveToward(l, cx, cy, playerX, playerY)
					cx, cy = l.Move(cx, cy, cx+dx, cy+dy)
				}
				if cx != x || cy != y {
					report.Pursued++
				}
				if !IsVisibleFrom(l, cx, cy, playerX, playerY) {
					l.Replace(cx, cy, t.Alert())
					report.Lost++
				}
				continue
			}

			nx := clamp(x+src.ToleranceS32(0, 1), 0, Width-1)
			ny := clamp(y+src.ToleranceS32(0, 1), 0, Height-1)
			cx, cy := l.Move(x, y, nx, ny)
			if cx != x || cy != y {
				report.Wandered++
			}

			if ManhattanDistance(cx, cy, playerX, playerY) <= noticeDistance &&
				IsVisibleFrom(l, cx, cy, playerX, playerY) {
				l.Replace(cx, cy, t.Pursuing())
				report.Noticed++
			}
		}
	}

	l.UnmarkAll()

	span.SetAttributes(
		attribute.String("level", l.ID),
		attribute.Int("enemies.wandered", report.Wandered),
		attribute.Int("enemies.noticed", report.Noticed),
		attribute.Int("enemies.pursued", report.Pursued),
		attribute.Int("enemies.lost", report.Lost),
	)

	return report
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
