// Package interaction implements gaze-style raycast interaction: a Driver
// casts a ray every frame and tells the Interactable it lands on when the
// ray enters, stays on, and leaves it.
package interaction

import (
	"log"

	"gazeray/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var logger = log.Default()

// SetLogger redirects the package's diagnostic output. Nil restores the
// standard logger.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.Default()
	}
	logger = l
}

// Hit describes where a driver's ray struck its target.
type Hit struct {
	Target   *engine.GameObject
	Point    rl.Vector3
	Normal   rl.Vector3
	Distance float32
}

func hitFromResult(r engine.RaycastResult) Hit {
	return Hit{
		Target:   r.GameObject,
		Point:    r.Point,
		Normal:   r.Normal,
		Distance: r.Distance,
	}
}

// Interactable is the capability a component implements to receive raycast
// notifications. Enter fires once when the ray lands on the object, Hold on
// every following frame it stays there, and Exit once when it leaves.
// Implementations must not panic; the driver does not recover.
type Interactable interface {
	engine.Component
	OnRaycastEnter(hit Hit)
	OnRaycastHold(hit Hit)
	OnRaycastExit()
}

// BaseInteractable logs each callback. Embed it and override the callbacks
// a component cares about.
type BaseInteractable struct {
	engine.BaseComponent
}

func (b *BaseInteractable) OnRaycastEnter(hit Hit) {
	logger.Printf("Raycast entered on %s", b.name())
}

func (b *BaseInteractable) OnRaycastHold(hit Hit) {
	logger.Printf("Raycast hold on %s", b.name())
}

func (b *BaseInteractable) OnRaycastExit() {
	logger.Printf("Raycast exited on %s", b.name())
}

func (b *BaseInteractable) name() string {
	if g := b.GetGameObject(); g != nil {
		return g.Name
	}
	return "<detached>"
}
