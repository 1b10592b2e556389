package engine

import (
	"slices"
	"sync/atomic"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var nextUID atomic.Uint64

type Transform struct {
	Position rl.Vector3
	Rotation rl.Vector3 // Euler angles in degrees
	Scale    rl.Vector3
}

type GameObject struct {
	UID        uint64
	Name       string
	Tags       []string
	Transform  Transform
	Active     bool
	Destroyed  bool
	Scene      *Scene
	Parent     *GameObject
	Children   []*GameObject
	components []Component
	started    bool
}

func NewGameObject(name string) *GameObject {
	return &GameObject{
		UID:    nextUID.Add(1),
		Name:   name,
		Active: true,
		Transform: Transform{
			Position: rl.Vector3{},
			Rotation: rl.Vector3{},
			Scale:    rl.Vector3{X: 1, Y: 1, Z: 1},
		},
		components: make([]Component, 0),
		Children:   make([]*GameObject, 0),
	}
}

// AddComponent attaches c. If the object has already started, c is started
// immediately so late additions behave like scene-loaded ones.
func (g *GameObject) AddComponent(c Component) {
	c.SetGameObject(g)
	g.components = append(g.components, c)
	if g.started {
		c.Start()
	}
}

// GetComponent returns the first component assignable to T, or the zero T.
// T may be an interface, which is how capabilities are looked up.
func GetComponent[T any](g *GameObject) T {
	var zero T
	if g == nil {
		return zero
	}
	for _, c := range g.components {
		if typed, ok := c.(T); ok {
			return typed
		}
	}
	return zero
}

func (g *GameObject) Start() {
	if g.started {
		return
	}
	g.started = true
	for _, c := range g.components {
		c.Start()
	}
}

func (g *GameObject) Update(deltaTime float32) {
	if !g.Active || g.Destroyed {
		return
	}
	for _, c := range g.components {
		c.Update(deltaTime)
	}
}

// Destroy tears the object and its children down. Components implementing
// Destroyable get OnDestroy exactly once.
func (g *GameObject) Destroy() {
	if g.Destroyed {
		return
	}
	g.Destroyed = true
	g.Active = false
	for _, c := range g.components {
		if d, ok := c.(Destroyable); ok {
			d.OnDestroy()
		}
	}
	for _, child := range g.Children {
		child.Destroy()
	}
}

func (g *GameObject) Components() []Component {
	return g.components
}

func (g *GameObject) HasTag(tag string) bool {
	return slices.Contains(g.Tags, tag)
}

// AddChild reparents child under g, detaching it from any previous parent.
func (g *GameObject) AddChild(child *GameObject) {
	if child.Parent != nil {
		child.Parent.RemoveChild(child)
	}
	child.Parent = g
	g.Children = append(g.Children, child)
}

func (g *GameObject) RemoveChild(child *GameObject) {
	i := slices.Index(g.Children, child)
	if i < 0 {
		return
	}
	g.Children = slices.Delete(g.Children, i, i+1)
	child.Parent = nil
}

// WorldPosition places the local position in the parent's scaled, rotated
// frame, all the way up the chain.
func (g *GameObject) WorldPosition() rl.Vector3 {
	p := g.Parent
	if p == nil {
		return g.Transform.Position
	}
	local := rl.Vector3Multiply(g.Transform.Position, p.WorldScale())
	return rl.Vector3Add(p.WorldPosition(), rl.Vector3Transform(local, rotationMatrix(p.WorldRotation())))
}

// WorldRotation sums Euler angles along the chain.
func (g *GameObject) WorldRotation() rl.Vector3 {
	if g.Parent == nil {
		return g.Transform.Rotation
	}
	return rl.Vector3Add(g.Parent.WorldRotation(), g.Transform.Rotation)
}

func (g *GameObject) WorldScale() rl.Vector3 {
	if g.Parent == nil {
		return g.Transform.Scale
	}
	return rl.Vector3Multiply(g.Parent.WorldScale(), g.Transform.Scale)
}

// Forward returns the object's world-space +Z axis.
func (g *GameObject) Forward() rl.Vector3 {
	return rl.Vector3Normalize(rl.Vector3Transform(rl.Vector3{Z: 1}, rotationMatrix(g.WorldRotation())))
}

// rotationMatrix applies X, then Y, then Z; degrees in.
func rotationMatrix(deg rl.Vector3) rl.Matrix {
	rad := rl.Vector3Scale(deg, rl.Deg2rad)
	return rl.MatrixMultiply(
		rl.MatrixMultiply(rl.MatrixRotateX(rad.X), rl.MatrixRotateY(rad.Y)),
		rl.MatrixRotateZ(rad.Z),
	)
}
