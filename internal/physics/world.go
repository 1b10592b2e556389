package physics

import (
	"gazeray/internal/components"
	"gazeray/internal/engine"
)

// PhysicsWorld is the collider registry ray queries run against.
// Objects without a collider are accepted but never hit.
type PhysicsWorld struct {
	Statics []*engine.GameObject // never move (walls, floor)
	Objects []*engine.GameObject // may move between frames
}

func NewPhysicsWorld() *PhysicsWorld {
	return &PhysicsWorld{
		Statics: make([]*engine.GameObject, 0),
		Objects: make([]*engine.GameObject, 0),
	}
}

// HasCollider reports whether g carries a collider the world can query.
func HasCollider(g *engine.GameObject) bool {
	return engine.GetComponent[components.Collider](g) != nil
}

// AddObject registers g. Objects tagged "static" go to Statics.
func (p *PhysicsWorld) AddObject(g *engine.GameObject) {
	if p.contains(g) {
		return
	}
	if g.HasTag("static") {
		p.Statics = append(p.Statics, g)
	} else {
		p.Objects = append(p.Objects, g)
	}
}

func (p *PhysicsWorld) RemoveObject(g *engine.GameObject) {
	for i, obj := range p.Objects {
		if obj == g {
			p.Objects = append(p.Objects[:i], p.Objects[i+1:]...)
			return
		}
	}
	for i, obj := range p.Statics {
		if obj == g {
			p.Statics = append(p.Statics[:i], p.Statics[i+1:]...)
			return
		}
	}
}

func (p *PhysicsWorld) Clear() {
	p.Statics = p.Statics[:0]
	p.Objects = p.Objects[:0]
}

// Colliders returns every registered object that carries a collider.
func (p *PhysicsWorld) Colliders() []*engine.GameObject {
	result := make([]*engine.GameObject, 0, len(p.Objects)+len(p.Statics))
	for _, list := range [][]*engine.GameObject{p.Objects, p.Statics} {
		for _, obj := range list {
			if HasCollider(obj) {
				result = append(result, obj)
			}
		}
	}
	return result
}

func (p *PhysicsWorld) contains(g *engine.GameObject) bool {
	for _, list := range [][]*engine.GameObject{p.Objects, p.Statics} {
		for _, obj := range list {
			if obj == g {
				return true
			}
		}
	}
	return false
}
