package combat

import "github.com/samdwyer/tehon/internal/entity"

// Fight stage layout, in stage units. The renderer scales these to the terminal.
var (
	FightCenter = entity.Vec2{X: 256, Y: 128}

	PlayerBase   = entity.Vec2{X: FightCenter.X - 48, Y: FightCenter.Y}
	OpponentBase = entity.Vec2{X: FightCenter.X + 48, Y: FightCenter.Y}

	PlayerBothAttack   = entity.Vec2{X: FightCenter.X - 16, Y: FightCenter.Y}
	OpponentBothAttack = entity.Vec2{X: FightCenter.X + 16, Y: FightCenter.Y}

	PlayerAttackOnly   = entity.Vec2{X: FightCenter.X + 16, Y: FightCenter.Y}
	OpponentAttackOnly = entity.Vec2{X: FightCenter.X - 16, Y: FightCenter.Y}

	PlayerDefend   = entity.Vec2{X: FightCenter.X - 56, Y: FightCenter.Y}
	OpponentDefend = entity.Vec2{X: FightCenter.X + 56, Y: FightCenter.Y}

	PlayerTextPos   = entity.Vec2{X: FightCenter.X - 48, Y: FightCenter.Y - 28}
	OpponentTextPos = entity.Vec2{X: FightCenter.X + 48, Y: FightCenter.Y - 28}
)

// BaseFor returns the resting stage position for a side.
func BaseFor(side entity.Side) entity.Vec2 {
	if side == entity.SidePlayer {
		return PlayerBase
	}
	return OpponentBase
}

// TextPosFor returns where combat text pop-ups start for a side.
func TextPosFor(side entity.Side) entity.Vec2 {
	if side == entity.SidePlayer {
		return PlayerTextPos
	}
	return OpponentTextPos
}
