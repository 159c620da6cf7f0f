package entity

import "github.com/gdamore/tcell/v2"

// Vec2 is a position on the fight stage.
type Vec2 struct {
	X, Y float64
}

// Add returns v offset by o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Lerp interpolates from a to b; t=0 yields a and t=1 yields b.
func Lerp(a, b Vec2, t float64) Vec2 {
	return Vec2{a.X + (b.X-a.X)*t, a.Y + (b.Y-a.Y)*t}
}

// LerpColor interpolates two colors channel by channel.
func LerpColor(a, b tcell.Color, t float64) tcell.Color {
	ar, ag, ab := a.RGB()
	br, bg, bb := b.RGB()
	mix := func(x, y int32) int32 {
		return x + int32(float64(y-x)*t)
	}
	return tcell.NewRGBColor(mix(ar, br), mix(ag, bg), mix(ab, bb))
}
