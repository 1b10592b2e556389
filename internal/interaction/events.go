package interaction

import "gazeray/internal/engine"

// EventInteractable forwards each callback to an event, so behavior can be
// wired up with listeners instead of a new component type.
type EventInteractable struct {
	engine.BaseComponent
	Entered engine.EventWithArg[Hit]
	Held    engine.EventWithArg[Hit]
	Exited  engine.Event
}

func (e *EventInteractable) OnRaycastEnter(hit Hit) {
	e.Entered.Invoke(hit)
}

func (e *EventInteractable) OnRaycastHold(hit Hit) {
	e.Held.Invoke(hit)
}

func (e *EventInteractable) OnRaycastExit() {
	e.Exited.Invoke()
}
