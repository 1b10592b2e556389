package world

import (
	"gazeray/internal/components"
	"gazeray/internal/engine"
	"gazeray/internal/interaction"
	"gazeray/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// World ties a scene to the physics registry its ray queries run against.
// It is the engine.WorldAccess handed to components through Scene.World.
type World struct {
	Scene   *engine.Scene
	Physics *physics.PhysicsWorld
	running bool
}

func New() *World {
	w := &World{
		Scene:   engine.NewScene("Main"),
		Physics: physics.NewPhysicsWorld(),
	}
	w.Scene.World = w
	return w
}

// SpawnObject adds g and its children to the scene and physics, starting
// them if the scene is already running.
func (w *World) SpawnObject(g *engine.GameObject) {
	w.Scene.AddGameObject(g)
	w.Physics.AddObject(g)
	if w.running {
		g.Start()
	}
	for _, child := range g.Children {
		if w.Scene.FindByUID(child.UID) == nil {
			w.SpawnObject(child)
		}
	}
}

// Destroy tears g down immediately and removes it from scene and physics.
func (w *World) Destroy(g *engine.GameObject) {
	w.unregister(g)
	w.Scene.Destroy(g)
}

func (w *World) unregister(g *engine.GameObject) {
	for _, child := range g.Children {
		w.unregister(child)
	}
	w.Physics.RemoveObject(g)
}

func (w *World) GetCollidableObjects() []*engine.GameObject {
	return w.Physics.Colliders()
}

func (w *World) Raycast(origin, direction rl.Vector3, maxDistance float32) (engine.RaycastResult, bool) {
	hit, ok := w.Physics.Raycast(origin, direction, maxDistance)
	if !ok {
		return engine.RaycastResult{}, false
	}
	return engine.RaycastResult{
		GameObject: hit.GameObject,
		Point:      hit.Point,
		Normal:     hit.Normal,
		Distance:   hit.Distance,
	}, true
}

func (w *World) PushOut(center, size rl.Vector3, self *engine.GameObject) rl.Vector3 {
	return w.Physics.PushOut(physics.NewAABBFromCenter(center, size), self)
}

func (w *World) Start() {
	w.running = true
	w.Scene.Start()
}

// Update runs one frame of every active object, then sweeps objects that
// were destroyed during it.
func (w *World) Update(deltaTime float32) {
	w.Scene.Update(deltaTime)

	var dead []*engine.GameObject
	for _, g := range w.Scene.GameObjects {
		if g.Destroyed {
			dead = append(dead, g)
		}
	}
	for _, g := range dead {
		w.Destroy(g)
	}
}

// Draw renders meshes, then indicator lines and debug rays on top. Call
// inside a 3D mode block.
func (w *World) Draw() {
	for _, g := range w.Scene.GameObjects {
		if !g.Active {
			continue
		}
		if mr := engine.GetComponent[*components.MeshRenderer](g); mr != nil {
			mr.Draw()
		}
	}
	for _, g := range w.Scene.GameObjects {
		if !g.Active {
			continue
		}
		for _, c := range g.Components() {
			switch c := c.(type) {
			case *components.LineRenderer:
				c.Draw()
			case *interaction.Driver:
				c.DrawDebug()
			}
		}
	}
}

// Drivers returns every raycast driver in the scene.
func (w *World) Drivers() []*interaction.Driver {
	var result []*interaction.Driver
	for _, g := range w.Scene.GameObjects {
		if d := engine.GetComponent[*interaction.Driver](g); d != nil {
			result = append(result, d)
		}
	}
	return result
}

func (w *World) Unload() {
	for len(w.Scene.GameObjects) > 0 {
		w.Destroy(w.Scene.GameObjects[0])
	}
	w.Physics.Clear()
	w.running = false
}
