package components

import (
	"gazeray/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type MeshType int

const (
	MeshCube MeshType = iota
	MeshSphere
	MeshPlane
)

// ParseMeshType maps scene file names to mesh types. Unknown names are cubes.
func ParseMeshType(name string) MeshType {
	switch name {
	case "sphere":
		return MeshSphere
	case "plane":
		return MeshPlane
	default:
		return MeshCube
	}
}

type MeshRenderer struct {
	engine.BaseComponent
	MeshType MeshType
	Color    rl.Color
	Size     rl.Vector3
}

func NewMeshRenderer(meshType MeshType, color rl.Color, size rl.Vector3) *MeshRenderer {
	return &MeshRenderer{
		MeshType: meshType,
		Color:    color,
		Size:     size,
	}
}

// Draw renders the mesh in the owner's world frame. Colliders stay axis
// aligned, so a rotated cube is drawn rotated but still hit as a box.
func (m *MeshRenderer) Draw() {
	g := m.GetGameObject()
	if g == nil || !g.Active {
		return
	}

	pos := g.WorldPosition()
	rot := g.WorldRotation()
	size := rl.Vector3Multiply(m.Size, g.WorldScale())

	rl.PushMatrix()
	defer rl.PopMatrix()
	rl.Translatef(pos.X, pos.Y, pos.Z)
	rl.Rotatef(rot.Z, 0, 0, 1)
	rl.Rotatef(rot.Y, 0, 1, 0)
	rl.Rotatef(rot.X, 1, 0, 0)

	var origin rl.Vector3
	switch m.MeshType {
	case MeshCube:
		rl.DrawCubeV(origin, size, m.Color)
		rl.DrawCubeWiresV(origin, size, rl.Fade(rl.Black, 0.4))
	case MeshSphere:
		rl.DrawSphere(origin, size.X, m.Color)
	case MeshPlane:
		rl.DrawPlane(origin, rl.Vector2{X: size.X, Y: size.Z}, m.Color)
	}
}
