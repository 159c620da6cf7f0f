package combat

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/tehon/internal/entity"
	"github.com/samdwyer/tehon/internal/grid"
)

func TestPopUpsStaggerPerSide(t *testing.T) {
	p := NewPopUps()
	for i := 0; i < 3; i++ {
		p.Push(tcell.ColorRed, PlayerTextPos, entity.SidePlayer, "hit")
	}
	p.Push(tcell.ColorBlue, OpponentTextPos, entity.SideOpponent, "Guard!")

	p.Update(0)
	if got := len(p.Active()); got != 2 {
		t.Fatalf("active after first update = %d, want 2 (one per side)", got)
	}

	p.Update(0.2)
	if got := len(p.Active()); got != 2 {
		t.Errorf("active before stagger = %d, want 2", got)
	}

	p.Update(0.2)
	if got := len(p.Active()); got != 3 {
		t.Errorf("active after stagger = %d, want 3", got)
	}
}

func TestPopUpsExpire(t *testing.T) {
	p := NewPopUps()
	p.Push(tcell.ColorRed, PlayerTextPos, entity.SidePlayer, "-1 Health!")

	p.Update(0)
	p.Update(0.6)
	if p.Len() != 1 {
		t.Fatalf("pop-up removed early")
	}
	p.Update(0.6)
	if p.Len() != 0 {
		t.Errorf("Len() = %d after lifetime, want 0", p.Len())
	}
}

func TestPopUpsClear(t *testing.T) {
	p := NewPopUps()
	p.Push(tcell.ColorRed, PlayerTextPos, entity.SidePlayer, "a")
	p.Update(0)
	p.Clear()
	if p.Len() != 0 {
		t.Errorf("Len() after Clear = %d", p.Len())
	}
}

func TestPopUpMotion(t *testing.T) {
	base := entity.Vec2{X: 10, Y: 100}
	pu := PopUp{Base: base, Target: base.Add(popUpRise)}

	if pu.Pos() != base || pu.Alpha() != 1 {
		t.Errorf("at birth Pos() = %v Alpha() = %v", pu.Pos(), pu.Alpha())
	}

	pu.TimeAlive = PopUpMaxLife
	if pu.Pos() != (entity.Vec2{X: 10, Y: 50}) || pu.Alpha() != 0 {
		t.Errorf("at end Pos() = %v Alpha() = %v", pu.Pos(), pu.Alpha())
	}

	pu.TimeAlive = 0.5
	if y := pu.Pos().Y; y != 62.5 {
		t.Errorf("mid-life Y = %v, want 62.5 (ease out)", y)
	}
}

func TestPushEffects(t *testing.T) {
	player := newTestCreature(entity.SidePlayer, 3, 3, 10, 5, grid.Spot{})
	opponent := newTestCreature(entity.SideOpponent, 3, 3, 10, 0, grid.Spot{})
	player.TextPos = PlayerTextPos
	opponent.TextPos = OpponentTextPos

	p := NewPopUps()
	p.PushEffects([]Effect{
		{Kind: EffectHealth, Side: entity.SideOpponent, Amount: -2},
		{Kind: EffectHealth, Side: entity.SidePlayer, Amount: -2, Countered: true},
	}, player, opponent)
	p.Update(0)

	active := p.Active()
	if len(active) != 2 {
		t.Fatalf("active = %d, want 2", len(active))
	}
	if active[0].Base != OpponentTextPos || active[0].Text != "-2 Health!" {
		t.Errorf("opponent pop-up = %+v", active[0])
	}
	if active[1].Base != PlayerTextPos || active[1].Text != "-2 Health Countered!" {
		t.Errorf("player pop-up = %+v", active[1])
	}
}
