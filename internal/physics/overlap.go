package physics

import (
	"gazeray/internal/components"
	"gazeray/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ColliderBounds returns the world-space box around g's collider. Spheres
// are reported by their enclosing cube.
func ColliderBounds(g *engine.GameObject) (AABB, bool) {
	if box := engine.GetComponent[*components.BoxCollider](g); box != nil {
		return NewAABBFromCenter(box.GetCenter(), box.GetWorldSize()), true
	}
	if sphere := engine.GetComponent[*components.SphereCollider](g); sphere != nil {
		d := 2 * sphere.GetWorldRadius()
		return NewAABBFromCenter(sphere.GetCenter(), rl.Vector3{X: d, Y: d, Z: d}), true
	}
	return AABB{}, false
}

// Overlapping returns the live colliders whose bounds touch box, skipping
// self and its children.
func (p *PhysicsWorld) Overlapping(box AABB, self *engine.GameObject) []*engine.GameObject {
	if p == nil {
		return nil
	}
	var result []*engine.GameObject
	for _, obj := range p.Colliders() {
		if skip(obj, self) {
			continue
		}
		if b, ok := ColliderBounds(obj); ok && box.Intersects(b) {
			result = append(result, obj)
		}
	}
	return result
}

// PushOut moves box out of each overlapping collider in turn and returns
// the accumulated translation. A box overlapping nothing gets zero.
func (p *PhysicsWorld) PushOut(box AABB, self *engine.GameObject) rl.Vector3 {
	total := rl.Vector3Zero()
	for _, obj := range p.Overlapping(box, self) {
		b, _ := ColliderBounds(obj)
		push := box.Resolve(b)
		box = box.Translate(push)
		total = rl.Vector3Add(total, push)
	}
	return total
}

func skip(obj, self *engine.GameObject) bool {
	if !obj.Active || obj.Destroyed {
		return true
	}
	for g := obj; g != nil; g = g.Parent {
		if g == self {
			return true
		}
	}
	return false
}
