package components

import (
	"gazeray/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Collider is any shape the physics world can put a ray against.
type Collider interface {
	engine.Component
	GetCenter() rl.Vector3
}

// BoxCollider is an axis-aligned box; object rotation is ignored.
type BoxCollider struct {
	engine.BaseComponent
	Size   rl.Vector3
	Offset rl.Vector3 // local, scaled with the object
}

func NewBoxCollider(size rl.Vector3) *BoxCollider {
	return &BoxCollider{Size: size}
}

func (b *BoxCollider) GetCenter() rl.Vector3 {
	return colliderCenter(b.GetGameObject(), b.Offset)
}

// GetWorldSize returns Size scaled by the owner's world scale.
// Components may be negative for mirrored objects.
func (b *BoxCollider) GetWorldSize() rl.Vector3 {
	return rl.Vector3Multiply(b.Size, b.GetGameObject().WorldScale())
}

type SphereCollider struct {
	engine.BaseComponent
	Radius float32
	Offset rl.Vector3
}

func NewSphereCollider(radius float32) *SphereCollider {
	return &SphereCollider{Radius: radius}
}

func (s *SphereCollider) GetCenter() rl.Vector3 {
	return colliderCenter(s.GetGameObject(), s.Offset)
}

// GetWorldRadius scales Radius by the largest axis of the owner's world scale.
func (s *SphereCollider) GetWorldRadius() float32 {
	sc := s.GetGameObject().WorldScale()
	return s.Radius * max(abs(sc.X), abs(sc.Y), abs(sc.Z))
}

func colliderCenter(g *engine.GameObject, offset rl.Vector3) rl.Vector3 {
	return rl.Vector3Add(g.WorldPosition(), rl.Vector3Multiply(offset, g.WorldScale()))
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
