package components

import (
	"math"

	"gazeray/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// FPSController moves its GameObject on the horizontal plane with WASD and
// aims with the mouse. It is the look provider for the camera and the gaze
// driver.
type FPSController struct {
	engine.BaseComponent
	Yaw       float32
	Pitch     float32
	MoveSpeed float32
	LookSpeed float32
	EyeHeight float32
	// Input disables all polling when false, so the controller can be
	// driven programmatically.
	Input bool
	// Body is the box kept out of colliders, standing on the object's
	// position. Its lowest StepHeight is ignored so floors never block.
	Body       rl.Vector3
	StepHeight float32
	Collide    bool
}

func NewFPSController() *FPSController {
	return &FPSController{
		Yaw:        -90.0,
		Pitch:      0,
		MoveSpeed:  6.0,
		LookSpeed:  0.1,
		EyeHeight:  1.7,
		Input:      true,
		Body:       rl.Vector3{X: 0.6, Y: 1.8, Z: 0.6},
		StepHeight: 0.3,
		Collide:    true,
	}
}

func (f *FPSController) Update(deltaTime float32) {
	g := f.GetGameObject()
	if g == nil || !f.Input {
		return
	}

	mouseDelta := rl.GetMouseDelta()
	f.Look(mouseDelta.X*f.LookSpeed, -mouseDelta.Y*f.LookSpeed)

	forward, right := f.getDirections()

	var moveDir rl.Vector3
	if rl.IsKeyDown(rl.KeyW) {
		moveDir = rl.Vector3Add(moveDir, forward)
	}
	if rl.IsKeyDown(rl.KeyS) {
		moveDir = rl.Vector3Subtract(moveDir, forward)
	}
	if rl.IsKeyDown(rl.KeyA) {
		moveDir = rl.Vector3Add(moveDir, right)
	}
	if rl.IsKeyDown(rl.KeyD) {
		moveDir = rl.Vector3Subtract(moveDir, right)
	}

	f.Move(moveDir, deltaTime)
}

// Move walks along dir (normalized here) for one frame and then slides the
// body out of whatever it ran into.
func (f *FPSController) Move(dir rl.Vector3, deltaTime float32) {
	g := f.GetGameObject()
	if g == nil {
		return
	}
	if rl.Vector3Length(dir) > 0 {
		dir = rl.Vector3Normalize(dir)
	}
	g.Transform.Position = rl.Vector3Add(g.Transform.Position, rl.Vector3Scale(dir, f.MoveSpeed*deltaTime))

	if !f.Collide || g.Scene == nil || g.Scene.World == nil {
		return
	}
	height := f.Body.Y - f.StepHeight
	center := g.WorldPosition()
	center.Y += f.StepHeight + height/2
	push := g.Scene.World.PushOut(center, rl.Vector3{X: f.Body.X, Y: height, Z: f.Body.Z}, g)
	push.Y = 0
	g.Transform.Position = rl.Vector3Add(g.Transform.Position, push)
}

// Look turns by the given yaw and pitch deltas in degrees. Pitch is clamped
// short of straight up/down.
func (f *FPSController) Look(dYaw, dPitch float32) {
	f.Yaw += dYaw
	f.Pitch = rl.Clamp(f.Pitch+dPitch, -89, 89)
}

func (f *FPSController) getDirections() (forward, right rl.Vector3) {
	yawRad := float64(f.Yaw) * math.Pi / 180
	forward = rl.Vector3{
		X: float32(math.Cos(yawRad)),
		Y: 0,
		Z: float32(math.Sin(yawRad)),
	}
	right = rl.Vector3{
		X: float32(math.Sin(yawRad)),
		Y: 0,
		Z: float32(-math.Cos(yawRad)),
	}
	return
}

func (f *FPSController) GetLookDirection() rl.Vector3 {
	yawRad := float64(f.Yaw) * math.Pi / 180
	pitchRad := float64(f.Pitch) * math.Pi / 180
	return rl.Vector3{
		X: float32(math.Cos(yawRad) * math.Cos(pitchRad)),
		Y: float32(math.Sin(pitchRad)),
		Z: float32(math.Sin(yawRad) * math.Cos(pitchRad)),
	}
}

func (f *FPSController) GetEyeHeight() float32 {
	return f.EyeHeight
}
