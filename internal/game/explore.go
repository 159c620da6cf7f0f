package game

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/tehon/internal/audio"
	"github.com/samdwyer/tehon/internal/entity"
	"github.com/samdwyer/tehon/internal/gamedata"
	"github.com/samdwyer/tehon/internal/grid"
	"github.com/samdwyer/tehon/internal/rng"
	"github.com/samdwyer/tehon/internal/telemetry"
	"github.com/samdwyer/tehon/internal/world"
)

const (
	forestID = "forest"
	caveID   = "cave"
)

// Ending selects the game over text and music.
type Ending int

const (
	EndingFailed     Ending = iota // Died before killing the orc leader
	EndingFallenHero               // Killed the orc leader but died
	EndingEscaped                  // Killed the orc leader and got home
)

// String returns a human-readable ending name.
func (e Ending) String() string {
	switch e {
	case EndingFailed:
		return "failed"
	case EndingFallenHero:
		return "fallen_hero"
	case EndingEscaped:
		return "escaped"
	default:
		return "unknown"
	}
}

// Step reports what one explore move led to.
type Step struct {
	Moved    bool
	Opponent *entity.Creature // Set when the move started a fight
	Switched bool             // The explorer changed level
	Escaped  bool             // The explorer left the forest with the leader dead
}

// Adventure is the overworld half of a run: the levels, the explorer's
// position, and the persistent player creature.
type Adventure struct {
	Levels     map[string]*world.Level
	Current    *world.Level
	Explorer   *entity.Explorer
	Player     *entity.Creature
	KilledBoss bool

	playerDef *gamedata.PlayerDef
	enemies   *gamedata.EnemyRegistry
	grids     *grid.Store
	src       rng.Source
	sink      audio.Sink
}

// NewAdventure creates an adventure over the embedded content. Call Reset to
// start a run.
func NewAdventure(playerDef *gamedata.PlayerDef, enemies *gamedata.EnemyRegistry, grids *grid.Store, src rng.Source, sink audio.Sink) *Adventure {
	return &Adventure{
		Explorer:  entity.NewExplorer(0, 0, playerDef.SymbolRune()),
		playerDef: playerDef,
		enemies:   enemies,
		grids:     grids,
		src:       src,
		sink:      sink,
	}
}

// Reset starts a fresh run: full health and stamina, untouched levels, and the
// explorer on the forest entrance.
func (a *Adventure) Reset(ctx context.Context) error {
	levels, err := world.LoadLevels()
	if err != nil {
		return err
	}
	return a.ResetWith(ctx, levels...)
}

// ResetWith starts a fresh run on the given levels. A forest level is required.
func (a *Adventure) ResetWith(ctx context.Context, levels ...*world.Level) error {
	tmpl := a.grids.ByID(a.playerDef.Grid)
	if tmpl == nil {
		return fmt.Errorf("player grid %q not found", a.playerDef.Grid)
	}

	a.Levels = make(map[string]*world.Level, len(levels))
	for _, l := range levels {
		a.Levels[l.ID] = l
	}
	forest, ok := a.Levels[forestID]
	if !ok {
		return fmt.Errorf("level %q not found", forestID)
	}

	a.Player = entity.NewPlayer(a.playerDef, tmpl)
	a.KilledBoss = false
	a.switchLevel(ctx, forest)
	return nil
}

// Move walks the explorer one cell; (0, 0) waits a turn. Moves off the map or
// into an obstacle do nothing. Otherwise stamina regenerates, the enemies take
// their turn, and the tile underfoot is checked for fights and level changes.
func (a *Adventure) Move(ctx context.Context, dx, dy int) Step {
	tracer := telemetry.Tracer("explore")
	ctx, span := tracer.Start(ctx, "explore.move")
	defer span.End()

	nx, ny := a.Explorer.X+dx, a.Explorer.Y+dy
	span.SetAttributes(
		attribute.Int("dx", dx),
		attribute.Int("dy", dy),
		attribute.String("level", a.Current.ID),
	)
	if !world.InBounds(nx, ny) || a.Current.At(nx, ny).IsObstacle() {
		span.SetAttributes(attribute.Bool("blocked", true))
		return Step{}
	}

	a.Player.Regen()
	a.Explorer.Place(nx, ny)
	a.sink.PlayOnce(audio.SoundStep, 1, a.src.ToleranceFloat(1, 0.1))

	world.ProcessEnemies(ctx, a.Current, a.src, nx, ny)
	step := a.checkTileEvents(ctx)
	step.Moved = true

	span.SetAttributes(
		attribute.Int("x", a.Explorer.X),
		attribute.Int("y", a.Explorer.Y),
		attribute.Int("player.stamina", a.Player.Stamina),
	)
	return step
}

// checkTileEvents reacts to whatever shares the explorer's cell.
func (a *Adventure) checkTileEvents(ctx context.Context) Step {
	x, y := a.Explorer.Position()
	t := a.Current.At(x, y)

	switch {
	case t == world.TileEntrance:
		if a.KilledBoss {
			return a.hitSwitchLevel(ctx)
		}
	case t == world.TileExit:
		if !a.KilledBoss {
			return a.hitSwitchLevel(ctx)
		}
	case t.IsEnemy():
		return Step{Opponent: a.hitEnemy(ctx, x, y, t)}
	}
	return Step{}
}

// hitSwitchLevel moves between the forest and the cave. Reaching the forest
// entrance with the leader dead ends the game.
func (a *Adventure) hitSwitchLevel(ctx context.Context) Step {
	switch a.Current.ID {
	case forestID:
		if a.KilledBoss {
			return Step{Escaped: true}
		}
		if cave, ok := a.Levels[caveID]; ok {
			a.switchLevel(ctx, cave)
			return Step{Switched: true}
		}
	case caveID:
		a.switchLevel(ctx, a.Levels[forestID])
		return Step{Switched: true}
	}
	return Step{}
}

// switchLevel makes a level current and puts the explorer on its entrance, or
// on its exit once the leader is dead.
func (a *Adventure) switchLevel(ctx context.Context, l *world.Level) {
	tracer := telemetry.Tracer("explore")
	_, span := tracer.Start(ctx, "level.switch")
	defer span.End()

	from := ""
	if a.Current != nil {
		from = a.Current.ID
	}
	a.Current = l

	find := world.TileEntrance
	if a.KilledBoss {
		find = world.TileExit
	}
	x, y, ok := l.Find(find)
	if !ok {
		x, y = 0, 0
		span.SetAttributes(attribute.String("warning", fmt.Sprintf("level %s has no %q, using origin", l.ID, find.Rune())))
	}
	a.Explorer.Place(x, y)

	span.SetAttributes(
		attribute.String("from", from),
		attribute.String("to", l.ID),
		attribute.Bool("killed_boss", a.KilledBoss),
		attribute.Int("x", x),
		attribute.Int("y", y),
	)
}

// hitEnemy builds the opponent for the enemy on (x, y) and removes it from the
// map. Unknown enemy codes leave the map alone and start no fight.
func (a *Adventure) hitEnemy(ctx context.Context, x, y int, t world.Tile) *entity.Creature {
	tracer := telemetry.Tracer("explore")
	_, span := tracer.Start(ctx, "explore.encounter")
	defer span.End()

	span.SetAttributes(
		attribute.String("enemy.code", string(t.Rune())),
		attribute.String("level", a.Current.ID),
	)

	def := a.enemies.ByCode(byte(t))
	if def == nil {
		span.SetAttributes(attribute.String("warning", "unknown enemy code, skipping combat"))
		return nil
	}
	tmpl := a.grids.ByID(def.Grid)
	if tmpl == nil {
		span.SetAttributes(attribute.String("warning", fmt.Sprintf("enemy %s has unknown grid %q, skipping combat", def.Name, def.Grid)))
		return nil
	}

	a.Current.Clear(x, y)
	span.SetAttributes(
		attribute.String("enemy", def.Name),
		attribute.Bool("boss", def.Boss),
	)
	return entity.NewOpponent(def, tmpl)
}

// FightOver folds a finished fight back into the adventure and returns the
// ending when the player died.
func (a *Adventure) FightOver(f *Fight) (Ending, bool) {
	if f.KilledBoss {
		a.KilledBoss = true
	}
	if f.Outcome() != FightLost {
		return 0, false
	}
	if a.KilledBoss {
		return EndingFallenHero, true
	}
	return EndingFailed, true
}
