package combat

import "github.com/samdwyer/tehon/internal/entity"

// StepResult reports what happened to the head action during one tick.
type StepResult struct {
	// Kind of the head action this tick, valid when Active is set.
	Kind   ActionKind
	Active bool

	// OutDone is set on the tick the outbound phase reaches zero. Attacks
	// resolve here.
	OutDone bool

	// Completed is set when the head action finished and was popped without
	// a death. The caller decides what follows.
	Completed bool

	// DeathQueued is set when the popped action triggered a death check that
	// found a dead creature; Death is the action queued in its place.
	DeathQueued bool
	Death       ActionKind
}

// Queue is the FIFO of fight actions. Only the head action advances.
type Queue struct {
	actions []Action
}

// Push appends an action of the given kind.
func (q *Queue) Push(kind ActionKind) {
	q.actions = append(q.actions, NewAction(kind))
}

// Len returns the number of queued actions.
func (q *Queue) Len() int {
	return len(q.actions)
}

// Empty reports whether no actions are queued.
func (q *Queue) Empty() bool {
	return len(q.actions) == 0
}

// Head returns the active action, or nil.
func (q *Queue) Head() *Action {
	if len(q.actions) == 0 {
		return nil
	}
	return &q.actions[0]
}

// Clear drops every queued action.
func (q *Queue) Clear() {
	q.actions = q.actions[:0]
}

// Tick advances the head action by dt and poses both creatures. When the head
// finishes, both creatures return to their idle pose, the action is popped, and
// if it requested a death check and a creature has no health left the matching
// death action is queued in place of normal completion.
func (q *Queue) Tick(dt float64, player, opponent *entity.Creature) StepResult {
	head := q.Head()
	if head == nil {
		return StepResult{}
	}
	res := StepResult{Kind: head.Kind, Active: true}

	if head.OutTimeLeft > 0 {
		t := head.OutTimeLeft / head.OutTimeMax
		head.Player.applyOut(player, t)
		head.Opponent.applyOut(opponent, t)

		head.OutTimeLeft -= dt
		if head.OutTimeLeft <= 0 {
			res.OutDone = true
		}
		// The inbound phase starts on the next tick.
		return res
	}

	t := 0.0
	if head.InTimeMax > 0 {
		t = head.InTimeLeft / head.InTimeMax
	}
	head.Player.applyIn(player, t)
	head.Opponent.applyIn(opponent, t)
	head.InTimeLeft -= dt

	if head.InTimeLeft > 0 {
		return res
	}

	done := *head
	q.actions = q.actions[1:]

	player.ResetPose(PlayerBase)
	opponent.ResetPose(OpponentBase)

	if done.CheckForDeath {
		if death, ok := deathFor(player, opponent); ok {
			q.Push(death)
			res.DeathQueued = true
			res.Death = death
			return res
		}
	}

	res.Completed = true
	return res
}
