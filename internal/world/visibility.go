package world

// IsVisibleFrom walks a Bresenham line between two cells and reports whether no
// obstacle lies strictly between them. The endpoints themselves never block.
func IsVisibleFrom(l *Level, lookX, lookY, targetX, targetY int) bool {
	steep := abs(lookX-targetX) < abs(lookY-targetY)
	if steep {
		lookX, lookY = lookY, lookX
		targetX, targetY = targetY, targetX
	}
	if lookX > targetX {
		lookX, targetX = targetX, lookX
		lookY, targetY = targetY, lookY
	}

	deltaX := targetX - lookX
	deltaErr := abs(targetY-lookY) * 2
	yStep := -1
	if targetY > lookY {
		yStep = 1
	}

	errAcc := 0
	y := lookY
	for x := lookX; x <= targetX; x++ {
		endpoint := (x == targetX && y == targetY) || (x == lookX && y == lookY)
		if !endpoint {
			cx, cy := x, y
			if steep {
				cx, cy = y, x
			}
			if l.Get(cx, cy).IsObstacle() {
				return false
			}
		}

		errAcc += deltaErr
		if errAcc >= deltaX {
			y += yStep
			errAcc -= deltaX * 2
		}
	}
	return true
}

// ManhattanDistance returns |dx| + |dy| between two cells.
func ManhattanDistance(x1, y1, x2, y2 int) int {
	return abs(x1-x2) + abs(y1-y2)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
