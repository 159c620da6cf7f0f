package game

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/tehon/internal/audio"
	"github.com/samdwyer/tehon/internal/gamedata"
	"github.com/samdwyer/tehon/internal/grid"
	"github.com/samdwyer/tehon/internal/input"
	"github.com/samdwyer/tehon/internal/rng"
	"github.com/samdwyer/tehon/internal/settings"
	"github.com/samdwyer/tehon/internal/telemetry"
	"github.com/samdwyer/tehon/internal/ui"
)

const (
	frameTime = 33 * time.Millisecond

	// inputDelay is how long the title and game over screens ignore keys, so
	// a key held from the previous screen does not skip them.
	inputDelay = 1.0
)

// Game holds the entire game state.
type Game struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	sink     audio.Sink
	closer   func()

	bindings  *input.Bindings
	store     settings.Store
	src       rng.Source
	adventure *Adventure
	fight     *Fight

	state     State
	afterHelp State
	ending    Ending
	stateTime float64
	running   bool
	err       error
}

// New creates a new game instance on the terminal.
func New(cfg Config) (*Game, error) {
	sink, closer := openAudio(cfg)

	g, err := newGame(cfg, sink)
	if err != nil {
		closer()
		return nil, err
	}
	g.closer = closer

	screen, err := ui.NewScreen()
	if err != nil {
		closer()
		return nil, err
	}
	g.screen = screen
	g.renderer = ui.NewRenderer(screen, g.adventure.enemies)
	return g, nil
}

// openAudio starts the speaker, falling back to silence if it is disabled or
// cannot be opened.
func openAudio(cfg Config) (audio.Sink, func()) {
	if !cfg.Audio {
		return audio.NopSink{}, func() {}
	}
	sink := audio.NewBeepSink()
	if err := sink.Init(); err != nil {
		return audio.NopSink{}, func() {}
	}
	return sink, sink.Close
}

// newGame builds the game without a screen.
func newGame(cfg Config, sink audio.Sink) (*Game, error) {
	playerDef, err := gamedata.LoadPlayer()
	if err != nil {
		return nil, fmt.Errorf("failed to load player: %w", err)
	}
	enemies, err := gamedata.LoadEnemyRegistry()
	if err != nil {
		return nil, fmt.Errorf("failed to load enemies: %w", err)
	}
	grids, err := grid.LoadStore()
	if err != nil {
		return nil, fmt.Errorf("failed to load grids: %w", err)
	}

	src := rng.New(cfg.Seed)
	return &Game{
		sink:      sink,
		closer:    func() {},
		bindings:  input.NewBindings(),
		store:     settings.Store{Path: cfg.SettingsPath},
		src:       src,
		adventure: NewAdventure(playerDef, enemies, grids, src, sink),
		state:     StateTitle,
		running:   true,
	}, nil
}

// Run executes the main game loop until the player quits or ctx is cancelled.
func (g *Game) Run(ctx context.Context) error {
	tracer := telemetry.Tracer("game")

	ctx, initSpan := tracer.Start(ctx, "game.init")
	initSpan.SetAttributes(
		attribute.Bool("first_play", g.store.FirstPlay()),
		attribute.String("settings", g.store.Path),
	)
	g.enterState(ctx, StateTitle)
	initSpan.End()

	ticker := time.NewTicker(frameTime)
	defer ticker.Stop()

	done := make(chan struct{})
	defer close(done)
	events := g.screen.Events(done)

	last := time.Now()
	for g.running {
		g.render()

		select {
		case <-ctx.Done():
			g.running = false
		case ev, ok := <-events:
			if !ok {
				g.running = false
				break
			}
			g.handleEvent(ctx, ev)
		case now := <-ticker.C:
			g.tick(ctx, now.Sub(last).Seconds())
			last = now
		}
	}

	g.Close()
	return g.err
}

// handleEvent processes a single input event.
func (g *Game) handleEvent(ctx context.Context, ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.bindings.Dispatch(input.FromKey(ev))
	case *tcell.EventResize:
		g.screen.Sync()
	}
}

// tick advances timers and the running fight by dt seconds.
func (g *Game) tick(ctx context.Context, dt float64) {
	g.stateTime += dt

	if g.state != StateFight || g.fight == nil {
		return
	}
	g.fight.Tick(ctx, dt)
	if !g.fight.Done() {
		return
	}

	if ending, over := g.adventure.FightOver(g.fight); over {
		g.gameOver(ctx, ending)
		return
	}
	g.enterState(ctx, StateExplore)
}

// render draws the current screen.
func (g *Game) render() {
	if g.renderer == nil {
		return
	}

	switch g.state {
	case StateTitle:
		g.renderer.RenderTitle(g.stateTime >= inputDelay)
	case StateExplore:
		a := g.adventure
		g.renderer.RenderExplore(a.Current, a.Explorer, a.Player, a.KilledBoss)
	case StateFight:
		f := g.fight
		g.renderer.RenderFight(f.Player, f.Opponent, f.PopUps.Active(), f.AcceptingInput())
	case StateHelp:
		g.renderer.RenderHelp()
	case StateGameOver:
		g.renderer.RenderGameOver(int(g.ending), g.stateTime >= inputDelay)
	}
}

// enterState leaves the current screen and binds the keys of the next one.
func (g *Game) enterState(ctx context.Context, next State) {
	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "game.state")
	defer span.End()
	span.SetAttributes(
		attribute.String("from", g.state.String()),
		attribute.String("to", next.String()),
	)

	g.exitState(next)
	g.state = next
	g.stateTime = 0

	g.bindings.Clear()
	g.bindings.Bind(input.ActionQuit, g.quit)

	switch next {
	case StateTitle:
		g.sink.PlayLooping(audio.MusicTitle)
		g.bindings.BindAny(func() {
			if g.stateTime >= inputDelay {
				g.startGame(ctx)
			}
		})

	case StateExplore:
		g.sink.PlayLooping(audio.MusicExplore)
		g.bindExplore(ctx)

	case StateFight:
		g.bindFight(ctx)

	case StateHelp:
		back := g.afterHelp
		g.bindings.Bind(input.ActionExit, func() { g.enterState(ctx, back) })

	case StateGameOver:
		g.sink.PlayLooping(endingMusic(g.ending))
		g.bindings.BindAny(func() {
			if g.stateTime >= inputDelay {
				g.enterState(ctx, StateTitle)
			}
		})
	}
}

// exitState tears down the current screen. A fight survives a trip to the
// help screen and resumes where it was paused; the explore music plays on
// under help.
func (g *Game) exitState(next State) {
	switch g.state {
	case StateTitle:
		g.sink.StopLooping(audio.MusicTitle)
	case StateExplore:
		if next != StateHelp {
			g.sink.StopLooping(audio.MusicExplore)
		}
	case StateFight:
		if next != StateHelp && g.fight != nil {
			g.fight.Leave()
			g.fight = nil
		}
	case StateHelp:
		if next != StateFight && g.fight != nil {
			g.fight.Leave()
			g.fight = nil
		}
		if next != StateExplore {
			g.sink.StopLooping(audio.MusicExplore)
		}
	case StateGameOver:
		g.sink.StopLooping(endingMusic(g.ending))
	}
}

func (g *Game) bindExplore(ctx context.Context) {
	g.bindings.Bind(input.ActionUp, func() { g.exploreMove(ctx, 0, -1) })
	g.bindings.Bind(input.ActionDown, func() { g.exploreMove(ctx, 0, 1) })
	g.bindings.Bind(input.ActionLeft, func() { g.exploreMove(ctx, -1, 0) })
	g.bindings.Bind(input.ActionRight, func() { g.exploreMove(ctx, 1, 0) })
	g.bindings.Bind(input.ActionConfirm, func() { g.exploreMove(ctx, 0, 0) })
	g.bindings.Bind(input.ActionHelp, func() { g.openHelp(ctx) })
}

func (g *Game) bindFight(ctx context.Context) {
	press := func(dir grid.Direction) func() {
		return func() { g.fight.Press(dir) }
	}
	g.bindings.Bind(input.ActionUp, press(grid.Up))
	g.bindings.Bind(input.ActionDown, press(grid.Down))
	g.bindings.Bind(input.ActionLeft, press(grid.Left))
	g.bindings.Bind(input.ActionRight, press(grid.Right))
	g.bindings.Bind(input.ActionConfirm, press(grid.ToStart))
	g.bindings.Bind(input.ActionHelp, func() { g.openHelp(ctx) })
}

func (g *Game) openHelp(ctx context.Context) {
	g.afterHelp = g.state
	g.enterState(ctx, StateHelp)
}

// startGame begins a fresh run. The first run ever opens on the help screen.
func (g *Game) startGame(ctx context.Context) {
	if err := g.adventure.Reset(ctx); err != nil {
		g.fail(err)
		return
	}

	if !g.store.FirstPlay() {
		g.enterState(ctx, StateExplore)
		return
	}

	if err := g.store.SetFirstPlay(false); err != nil {
		_, span := telemetry.Tracer("game").Start(ctx, "settings.save")
		span.SetAttributes(attribute.String("warning", err.Error()))
		span.End()
	}
	g.sink.PlayLooping(audio.MusicExplore)
	g.afterHelp = StateExplore
	g.enterState(ctx, StateHelp)
}

// exploreMove walks the explorer and follows up on whatever the step ran into.
func (g *Game) exploreMove(ctx context.Context, dx, dy int) {
	step := g.adventure.Move(ctx, dx, dy)

	switch {
	case step.Escaped:
		g.gameOver(ctx, EndingEscaped)
	case step.Opponent != nil:
		g.fight = NewFight(ctx, g.adventure.Player, step.Opponent, g.src, g.sink)
		g.enterState(ctx, StateFight)
	}
}

// gameOver ends the run with the given ending.
func (g *Game) gameOver(ctx context.Context, ending Ending) {
	g.ending = ending
	g.enterState(ctx, StateGameOver)
}

// endingMusic returns the track played over an ending.
func endingMusic(e Ending) audio.SoundID {
	switch e {
	case EndingFallenHero:
		return audio.MusicDeathSuccess
	case EndingEscaped:
		return audio.MusicSuccess
	default:
		return audio.MusicFailure
	}
}

func (g *Game) quit() {
	g.running = false
}

// fail stops the game with an error returned from Run.
func (g *Game) fail(err error) {
	g.err = err
	g.running = false
}

// State returns the current screen.
func (g *Game) State() State {
	return g.state
}

// Close cleans up game resources.
func (g *Game) Close() {
	if g.screen != nil {
		g.screen.Close()
	}
	if g.closer != nil {
		g.closer()
		g.closer = nil
	}
}
