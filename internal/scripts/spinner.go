package scripts

import (
	"math"

	"gazeray/internal/engine"
	"gazeray/internal/interaction"
)

// GazeSpinner spins its object around the Y axis while a raycast driver is
// looking at it.
type GazeSpinner struct {
	interaction.BaseInteractable
	Speed float32 // degrees per second
	gazed bool
}

func (s *GazeSpinner) OnRaycastEnter(hit interaction.Hit) { s.gazed = true }
func (s *GazeSpinner) OnRaycastHold(hit interaction.Hit)  {}
func (s *GazeSpinner) OnRaycastExit()                     { s.gazed = false }

func (s *GazeSpinner) Update(deltaTime float32) {
	g := s.GetGameObject()
	if g == nil || !s.gazed {
		return
	}
	// keep the angle in [0, 360) whichever way it turns
	y := math.Mod(float64(g.Transform.Rotation.Y+s.Speed*deltaTime), 360)
	if y < 0 {
		y += 360
	}
	g.Transform.Rotation.Y = float32(y)
	if g.Transform.Rotation.Y >= 360 {
		g.Transform.Rotation.Y = 0
	}
}

func init() {
	engine.RegisterScript("GazeSpinner", spinnerFactory, spinnerSerializer)
}

func spinnerFactory(props map[string]any) engine.Component {
	speed := float32(90)
	if v, ok := props["speed"].(float64); ok {
		speed = float32(v)
	}
	return &GazeSpinner{Speed: speed}
}

func spinnerSerializer(c engine.Component) map[string]any {
	s, ok := c.(*GazeSpinner)
	if !ok {
		return nil
	}
	return map[string]any{
		"speed": s.Speed,
	}
}
