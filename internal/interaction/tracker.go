package interaction

import "gazeray/internal/engine"

// State is the driver's targeting state.
type State int

const (
	Idle State = iota
	Targeting
)

func (s State) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Targeting:
		return "Targeting"
	default:
		return "Unknown"
	}
}

// Transition reports what a single Advance did.
type Transition int

const (
	NoChange Transition = iota // idle and still idle
	Entered                    // idle -> target
	Held                       // same target again
	Exited                     // target -> idle
	Switched                   // target -> different target
)

func (t Transition) String() string {
	switch t {
	case NoChange:
		return "NoChange"
	case Entered:
		return "Entered"
	case Held:
		return "Held"
	case Exited:
		return "Exited"
	case Switched:
		return "Switched"
	default:
		return "Unknown"
	}
}

// Tracker holds the one Interactable currently entered and sequences the
// enter/hold/exit calls. At most one target is entered at a time, and
// every enter is matched by exactly one exit before the next enter.
//
// Targets are compared by the identity of the GameObject they are attached
// to, never by value. The tracker does not own the target; it keeps a weak
// reference by UID next to the callback handle.
type Tracker struct {
	current Interactable
	ref     engine.GameObjectRef
}

func (t *Tracker) State() State {
	if t.current == nil {
		return Idle
	}
	return Targeting
}

// Current returns the entered target, or nil when idle.
func (t *Tracker) Current() Interactable {
	return t.current
}

// CurrentRef returns the weak reference to the entered target's GameObject.
func (t *Tracker) CurrentRef() engine.GameObjectRef {
	return t.ref
}

// Advance feeds one frame's resolved target (nil for none) through the
// state machine:
//
//	Idle,         none -> nothing
//	Idle,         t    -> t.OnRaycastEnter
//	Targeting(t), none -> t.OnRaycastExit
//	Targeting(t), t    -> t.OnRaycastHold
//	Targeting(t), u    -> t.OnRaycastExit, then u.OnRaycastEnter
//
// A resolved target whose GameObject has been destroyed counts as none.
func (t *Tracker) Advance(resolved Interactable, hit Hit) Transition {
	if resolved != nil {
		if g := resolved.GetGameObject(); g != nil && g.Destroyed {
			resolved = nil
		}
	}

	switch {
	case resolved == nil:
		if t.Release() {
			return Exited
		}
		return NoChange
	case t.isCurrent(resolved):
		t.current.OnRaycastHold(hit)
		return Held
	default:
		switched := t.Release()
		t.current = resolved
		t.ref = engine.RefTo(resolved.GetGameObject())
		resolved.OnRaycastEnter(hit)
		if switched {
			return Switched
		}
		return Entered
	}
}

// Release exits the current target, if any, and returns to Idle. It
// reports whether an exit was sent. The target is cleared before its exit
// callback runs, so a callback that releases again is a no-op.
func (t *Tracker) Release() bool {
	prev := t.current
	if prev == nil {
		return false
	}
	t.current = nil
	t.ref.Clear()
	prev.OnRaycastExit()
	return true
}

func (t *Tracker) isCurrent(resolved Interactable) bool {
	if t.current == nil {
		return false
	}
	if g := resolved.GetGameObject(); g != nil {
		return t.ref.Refers(g)
	}
	return resolved == t.current
}
