package components

import (
	"gazeray/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// thinLineWidth is the width at or below which the line is drawn as a
// single GL line instead of a cylinder.
const thinLineWidth = 0.01

// LineRenderer draws a world-space segment between two points.
type LineRenderer struct {
	engine.BaseComponent
	Start   rl.Vector3
	End     rl.Vector3
	Width   float32
	Color   rl.Color
	Enabled bool
}

func NewLineRenderer(width float32, color rl.Color) *LineRenderer {
	return &LineRenderer{
		Width:   width,
		Color:   color,
		Enabled: true,
	}
}

func (l *LineRenderer) SetStart(p rl.Vector3) {
	l.Start = p
}

func (l *LineRenderer) SetEnd(p rl.Vector3) {
	l.End = p
}

func (l *LineRenderer) SetColor(c rl.Color) {
	l.Color = c
}

// Length returns the distance between the endpoints.
func (l *LineRenderer) Length() float32 {
	return rl.Vector3Distance(l.Start, l.End)
}

func (l *LineRenderer) Draw() {
	if !l.Enabled {
		return
	}
	if g := l.GetGameObject(); g != nil && !g.Active {
		return
	}
	if l.Width <= thinLineWidth {
		rl.DrawLine3D(l.Start, l.End, l.Color)
		return
	}
	radius := l.Width / 2
	rl.DrawCylinderEx(l.Start, l.End, radius, radius, 6, l.Color)
}
