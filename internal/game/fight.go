package game

import (
	"context"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/tehon/internal/audio"
	"github.com/samdwyer/tehon/internal/combat"
	"github.com/samdwyer/tehon/internal/dice"
	"github.com/samdwyer/tehon/internal/entity"
	"github.com/samdwyer/tehon/internal/grid"
	"github.com/samdwyer/tehon/internal/rng"
	"github.com/samdwyer/tehon/internal/telemetry"
)

// FightState is the phase of a fight round.
type FightState int

const (
	// FightResetMarkers waits for markers snapping back to their start cell.
	FightResetMarkers FightState = iota
	// FightChooseAction waits for the player to pick a cell.
	FightChooseAction
	// FightMoveMarkers waits for both markers to finish sliding.
	FightMoveMarkers
	// FightCombat plays out the queued actions.
	FightCombat
)

// String returns a human-readable state name.
func (s FightState) String() string {
	switch s {
	case FightResetMarkers:
		return "reset_markers"
	case FightChooseAction:
		return "choose_action"
	case FightMoveMarkers:
		return "move_markers"
	case FightCombat:
		return "combat"
	default:
		return "unknown"
	}
}

// FightOutcome is how a fight ended.
type FightOutcome int

const (
	FightOngoing FightOutcome = iota
	FightWon                  // The opponent died and the player lives
	FightLost                 // The player died, possibly taking the opponent along
)

// String returns a human-readable outcome name.
func (o FightOutcome) String() string {
	switch o {
	case FightOngoing:
		return "ongoing"
	case FightWon:
		return "won"
	case FightLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Fight owns everything that lives for the duration of one encounter: both
// creatures' transient combat fields, the action queue, and the pop-ups.
type Fight struct {
	ID       string
	Player   *entity.Creature
	Opponent *entity.Creature
	State    FightState
	Queue    combat.Queue
	PopUps   *combat.PopUps

	Rounds     int
	KilledBoss bool

	resolver *combat.Resolver
	src      rng.Source
	sink     audio.Sink
	outcome  FightOutcome
}

// NewFight sets up an encounter. Both markers start on their template's start
// cell and the player picks the first move.
func NewFight(ctx context.Context, player, opponent *entity.Creature, src rng.Source, sink audio.Sink) *Fight {
	tracer := telemetry.Tracer("fight")
	_, span := tracer.Start(ctx, "fight.start")
	defer span.End()

	for _, c := range []*entity.Creature{player, opponent} {
		c.EnterFight(combat.BaseFor(c.Side), combat.TextPosFor(c.Side))
	}

	f := &Fight{
		ID:       uuid.NewString(),
		Player:   player,
		Opponent: opponent,
		State:    FightChooseAction,
		PopUps:   combat.NewPopUps(),
		resolver: combat.NewResolver(dice.NewRoller(src)),
		src:      src,
		sink:     sink,
	}

	span.SetAttributes(
		attribute.String("fight.id", f.ID),
		attribute.String("opponent", opponent.Name),
		attribute.Bool("opponent.boss", opponent.Boss),
		attribute.Int("opponent.health", opponent.Health),
		attribute.Int("player.health", player.Health),
		attribute.Int("player.stamina", player.Stamina),
	)

	sink.PlayLooping(audio.MusicCombat)
	return f
}

// AcceptingInput reports whether the player may move their marker: both
// markers are at rest and no action is playing.
func (f *Fight) AcceptingInput() bool {
	return f.State == FightChooseAction &&
		f.Player.Grid.Idle() && f.Opponent.Grid.Idle() &&
		f.Queue.Empty()
}

// Press moves the player's marker and lets the opponent answer with its own
// move. Invalid or early presses are ignored.
func (f *Fight) Press(dir grid.Direction) bool {
	if !f.AcceptingInput() {
		return false
	}
	if !f.Player.Grid.TryMove(dir) {
		return false
	}
	f.opponentMove()
	return true
}

// opponentMove picks a random neighbouring cell for the opponent unless it is
// stunned or standing on a skip-turn cell.
func (f *Fight) opponentMove() {
	if !f.Opponent.CanAct() {
		return
	}
	f.Opponent.Grid.RandomMove(f.src)
}

// Tick advances the fight by dt seconds.
func (f *Fight) Tick(ctx context.Context, dt float64) {
	switch f.State {
	case FightResetMarkers:
		if f.updateGrids(dt) {
			f.State = FightChooseAction
		}

	case FightChooseAction:
		// A stunned player loses the choice; the opponent moves alone.
		if f.Player.Stunned {
			f.opponentMove()
		}
		if !f.Player.Grid.Idle() || !f.Opponent.Grid.Idle() {
			f.State = FightMoveMarkers
		}

	case FightMoveMarkers:
		if f.updateGrids(dt) {
			f.startRound(ctx)
		}

	case FightCombat:
		f.stepQueue(ctx, dt)
		if f.Queue.Empty() && !f.Done() {
			f.Player.Grid.ResetIfMarked()
			f.Opponent.Grid.ResetIfMarked()
			f.State = FightResetMarkers
		}
	}

	f.PopUps.Update(dt)
}

// updateGrids slides both markers and reports whether both are at rest.
func (f *Fight) updateGrids(dt float64) bool {
	playerIdle := f.Player.Grid.Update(dt)
	opponentIdle := f.Opponent.Grid.Update(dt)
	return playerIdle && opponentIdle
}

// startRound settles who attacks from the cells the markers landed on and
// queues the opening action.
func (f *Fight) startRound(ctx context.Context) {
	tracer := telemetry.Tracer("fight")
	_, span := tracer.Start(ctx, "fight.round")
	defer span.End()

	playerAttacks := f.Player.CanAct()
	opponentAttacks := f.Opponent.CanAct()

	f.Player.StartRound()
	f.Opponent.StartRound()

	// A side on a skip-turn cell only holds back the opening blow; it still
	// strikes in the follow-up. With neither side ready the opponent opens.
	f.Rounds++
	if !f.queueAttack(playerAttacks, opponentAttacks) {
		f.Queue.Push(combat.ActionOpponentAttack)
	}
	f.State = FightCombat

	span.SetAttributes(
		attribute.String("fight.id", f.ID),
		attribute.Int("round", f.Rounds),
		attribute.Int("player.pos", f.Player.Grid.Pos),
		attribute.Int("opponent.pos", f.Opponent.Grid.Pos),
		attribute.Bool("player.attacks", playerAttacks),
		attribute.Bool("opponent.attacks", opponentAttacks),
	)
}

// queueAttack pushes the attack action for whichever sides attack and reports
// whether anything was queued.
func (f *Fight) queueAttack(playerAttacks, opponentAttacks bool) bool {
	switch {
	case playerAttacks && opponentAttacks:
		f.Queue.Push(combat.ActionBothAttack)
	case playerAttacks:
		f.Queue.Push(combat.ActionPlayerAttack)
	case opponentAttacks:
		f.Queue.Push(combat.ActionOpponentAttack)
	default:
		return false
	}
	return true
}

// stepQueue ticks the head action and reacts to what it reported.
func (f *Fight) stepQueue(ctx context.Context, dt float64) {
	res := f.Queue.Tick(dt, f.Player, f.Opponent)
	if !res.Active {
		return
	}

	if res.OutDone {
		f.strike(ctx, res.Kind)
	}
	if res.DeathQueued {
		f.deathQueued(res.Death)
	}
	if res.Completed {
		if res.Kind.IsDeath() {
			f.finish(ctx)
		} else {
			f.attackDone()
		}
	}
}

// strike resolves the attacks of an action at the peak of its animation.
func (f *Fight) strike(ctx context.Context, kind combat.ActionKind) {
	pitch := f.src.ToleranceFloat(1, 0.1)
	switch kind {
	case combat.ActionBothAttack:
		f.sink.PlayOnce(audio.SoundClash, 1, pitch)
	case combat.ActionPlayerAttack, combat.ActionOpponentAttack:
		f.sink.PlayOnce(audio.SoundDefend, 1, pitch)
	default:
		return
	}

	if kind.PlayerAttacks() {
		f.attack(ctx, f.Player, f.Opponent)
	}
	if kind.OpponentAttacks() {
		f.attack(ctx, f.Opponent, f.Player)
	}
}

func (f *Fight) attack(ctx context.Context, attacker, defender *entity.Creature) {
	tracer := telemetry.Tracer("combat")
	_, span := tracer.Start(ctx, "combat.attack")
	defer span.End()

	result := f.resolver.Attack(attacker, defender)
	f.PopUps.PushEffects(result.Effects, f.Player, f.Opponent)

	span.SetAttributes(
		attribute.String("fight.id", f.ID),
		attribute.String("attacker", attacker.Name),
		attribute.String("defender", defender.Name),
		attribute.Int("attack", result.Attack),
		attribute.Int("defense", result.Defense),
		attribute.Int("amount", result.Amount),
		attribute.Int("stamina_lost", result.StaminaLost(defender.Side)),
		attribute.Int("health_lost", result.HealthLost(defender.Side)),
		attribute.Bool("countered", result.Countered),
		attribute.Bool("stunned", result.Stunned),
	)
}

// deathQueued plays the death cue and records a boss kill.
func (f *Fight) deathQueued(kind combat.ActionKind) {
	if kind == combat.ActionOpponentDie || kind == combat.ActionBothDie {
		if f.Opponent.Boss {
			f.KilledBoss = true
		}
	}

	pitch := f.src.ToleranceFloat(1, 0.1)
	if kind == combat.ActionPlayerDie || kind == combat.ActionBothDie {
		f.sink.PlayOnce(audio.SoundPlayerDeath, 1, pitch)
	}
	if kind == combat.ActionOpponentDie || kind == combat.ActionBothDie {
		f.sink.PlayOnce(audio.SoundMonsterDeath, 1, pitch)
	}
}

// attackDone queues a follow-up attack for sides with attacks left this round.
func (f *Fight) attackDone() {
	if !f.Player.IsAlive() && !f.Opponent.IsAlive() {
		return
	}
	f.queueAttack(combat.HasAttacksLeft(f.Player), combat.HasAttacksLeft(f.Opponent))
}

// finish records the outcome once the death animation has played.
func (f *Fight) finish(ctx context.Context) {
	if f.Player.IsAlive() {
		f.outcome = FightWon
	} else {
		f.outcome = FightLost
	}

	tracer := telemetry.Tracer("fight")
	_, span := tracer.Start(ctx, "fight.end")
	span.SetAttributes(
		attribute.String("fight.id", f.ID),
		attribute.String("outcome", f.outcome.String()),
		attribute.Int("rounds", f.Rounds),
		attribute.Int("player.health", f.Player.Health),
		attribute.Int("player.stamina", f.Player.Stamina),
		attribute.Bool("killed_boss", f.KilledBoss),
	)
	span.End()
}

// Done reports whether the fight has ended.
func (f *Fight) Done() bool {
	return f.outcome != FightOngoing
}

// Outcome returns how the fight ended, or FightOngoing.
func (f *Fight) Outcome() FightOutcome {
	return f.outcome
}

// Leave tears the fight down: the player's stun does not follow them out and
// the combat music stops.
func (f *Fight) Leave() {
	f.Player.Stunned = false
	f.sink.StopLooping(audio.MusicCombat)
}
