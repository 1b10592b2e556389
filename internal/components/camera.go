package components

import (
	"gazeray/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type Camera struct {
	engine.BaseComponent
	FOV        float32
	Projection rl.CameraProjection
}

func NewCamera() *Camera {
	return &Camera{
		FOV:        60.0,
		Projection: rl.CameraPerspective,
	}
}

// EyeRay returns the origin and unit direction this object looks along: the
// eye of the nearest LookProvider on the object or its parents, else the
// object's world position and forward axis.
func EyeRay(g *engine.GameObject) (origin, direction rl.Vector3) {
	origin = g.WorldPosition()
	for obj := g; obj != nil; obj = obj.Parent {
		if lp := engine.GetComponent[engine.LookProvider](obj); lp != nil {
			if obj == g {
				origin.Y += lp.GetEyeHeight()
			}
			return origin, rl.Vector3Normalize(lp.GetLookDirection())
		}
	}
	return origin, g.Forward()
}

func (c *Camera) GetRaylibCamera() rl.Camera3D {
	g := c.GetGameObject()
	if g == nil {
		return rl.Camera3D{}
	}

	eyePos, lookDir := EyeRay(g)

	return rl.Camera3D{
		Position:   eyePos,
		Target:     rl.Vector3Add(eyePos, lookDir),
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       c.FOV,
		Projection: c.Projection,
	}
}
