package engine

import rl "github.com/gen2brain/raylib-go/raylib"

type Component interface {
	Start()
	Update(deltaTime float32)
	SetGameObject(g *GameObject)
	GetGameObject() *GameObject
}

// LookProvider is implemented by components that control a look direction.
// Camera and the raycast driver aim along it when one is present.
type LookProvider interface {
	GetLookDirection() rl.Vector3
	GetEyeHeight() float32
}

// Destroyable is implemented by components that need to release state when
// their GameObject is destroyed.
type Destroyable interface {
	OnDestroy()
}

// BaseComponent provides default implementation for Component interface
type BaseComponent struct {
	gameObject *GameObject
}

func (b *BaseComponent) Start() {}

func (b *BaseComponent) Update(deltaTime float32) {}

func (b *BaseComponent) SetGameObject(g *GameObject) {
	b.gameObject = g
}

func (b *BaseComponent) GetGameObject() *GameObject {
	return b.gameObject
}
