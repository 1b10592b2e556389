package interaction

import (
	"gazeray/internal/components"
	"gazeray/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// defaultHighlight is how far toward white an object is blended when no
// HighlightColor is set.
const defaultHighlight = 0.45

// Highlighter recolors the object's MeshRenderer while the ray is on it.
type Highlighter struct {
	BaseInteractable
	// HighlightColor replaces the mesh color on enter. The zero color means
	// a brightened version of the mesh color.
	HighlightColor rl.Color
	// HeldFrames counts hold callbacks in the current span.
	HeldFrames int

	original    rl.Color
	highlighted bool
}

func NewHighlighter(color rl.Color) *Highlighter {
	return &Highlighter{HighlightColor: color}
}

func (h *Highlighter) OnRaycastEnter(hit Hit) {
	h.HeldFrames = 0
	mr := engine.GetComponent[*components.MeshRenderer](h.GetGameObject())
	if mr == nil || h.highlighted {
		return
	}
	h.original = mr.Color
	if h.HighlightColor == (rl.Color{}) {
		mr.Color = components.Brighten(mr.Color, defaultHighlight)
	} else {
		mr.Color = h.HighlightColor
	}
	h.highlighted = true
}

func (h *Highlighter) OnRaycastHold(hit Hit) {
	h.HeldFrames++
}

func (h *Highlighter) OnRaycastExit() {
	if !h.highlighted {
		return
	}
	if mr := engine.GetComponent[*components.MeshRenderer](h.GetGameObject()); mr != nil {
		mr.Color = h.original
	}
	h.highlighted = false
}

// Highlighted reports whether the mesh currently shows the highlight.
func (h *Highlighter) Highlighted() bool {
	return h.highlighted
}
