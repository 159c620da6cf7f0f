package world

import (
	"math"
	"slices"
)

type frontierEntry struct {
	loc  int
	cost int
}

// stepCost returns the cost of moving between two adjacent cells, or false when
// the move enters an obstacle or wraps around a row edge.
func (l *Level) stepCost(from, to int) (int, bool) {
	if l.data[to].IsObstacle() {
		return 0, false
	}
	lo, hi := min(from, to), max(from, to)
	if lo%Width == Width-1 && hi-lo == 1 {
		return 0, false
	}
	return 1, true
}

// MoveToward returns the first step (dx, dy) of a shortest path from (fromX,
// fromY) to (targetX, targetY). Obstacles block; other enemies do not. Returns
// (0, 0) when already there or when no path exists.
func MoveToward(l *Level, fromX, fromY, targetX, targetY int) (dx, dy int) {
	if !InBounds(fromX, fromY) || !InBounds(targetX, targetY) {
		return 0, 0
	}

	const size = Width * Height
	source := index(fromX, fromY)
	target := index(targetX, targetY)
	if source == target {
		return 0, 0
	}

	var cameFrom [size]int
	var cost [size]int
	for i := range cameFrom {
		cameFrom[i] = -1
		cost[i] = math.MaxInt
	}
	cameFrom[source] = source
	cost[source] = 0

	// Kept sorted by descending cost and popped from the end. New entries go in
	// front of equal-cost ones, so ties leave in insertion order.
	frontier := make([]frontierEntry, 0, size)
	frontier = append(frontier, frontierEntry{loc: source})

	for len(frontier) > 0 {
		front := frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]

		if front.loc == target {
			break
		}

		for _, step := range [4]int{-1, 1, -Width, Width} {
			next := front.loc + step
			if next < 0 || next >= size {
				continue
			}
			c, ok := l.stepCost(front.loc, next)
			if !ok {
				continue
			}

			newCost := cost[front.loc] + c
			if newCost >= cost[next] {
				continue
			}
			cost[next] = newCost
			cameFrom[next] = front.loc

			i := 0
			for i < len(frontier) && newCost < frontier[i].cost {
				i++
			}
			frontier = slices.Insert(frontier, i, frontierEntry{loc: next, cost: newCost})
		}
	}

	if cameFrom[target] == -1 {
		return 0, 0
	}

	diff := 0
	for current := target; current != source; current = cameFrom[current] {
		diff = current - cameFrom[current]
	}

	switch {
	case diff == -1:
		return -1, 0
	case diff == 1:
		return 1, 0
	case diff < 0:
		return 0, -1
	case diff > 0:
		return 0, 1
	default:
		return 0, 0
	}
}
