package engine

import "slices"

// ListenerID identifies one subscription. Zero is never issued.
type ListenerID int

type subscription[F any] struct {
	id ListenerID
	fn F
}

type listenerList[F any] struct {
	lastID ListenerID
	subs   []subscription[F]
}

func (l *listenerList[F]) add(fn F) ListenerID {
	l.lastID++
	l.subs = append(l.subs, subscription[F]{id: l.lastID, fn: fn})
	return l.lastID
}

func (l *listenerList[F]) remove(id ListenerID) bool {
	i := slices.IndexFunc(l.subs, func(s subscription[F]) bool { return s.id == id })
	if i < 0 {
		return false
	}
	l.subs = slices.Delete(l.subs, i, i+1)
	return true
}

// snapshot lets a listener unsubscribe itself while the event is firing.
func (l *listenerList[F]) snapshot() []subscription[F] {
	return slices.Clone(l.subs)
}

// Event is a multicast notification with no payload. Listeners run in
// subscription order on the goroutine that calls Invoke.
type Event struct {
	list listenerList[func()]
}

// AddListener subscribes callback. A nil callback is ignored and yields 0.
func (e *Event) AddListener(callback func()) ListenerID {
	if callback == nil {
		return 0
	}
	return e.list.add(callback)
}

func (e *Event) RemoveListener(id ListenerID) bool {
	return e.list.remove(id)
}

func (e *Event) RemoveAllListeners() {
	e.list.subs = nil
}

func (e *Event) Invoke() {
	for _, s := range e.list.snapshot() {
		s.fn()
	}
}

func (e *Event) GetListenerCount() int {
	return len(e.list.subs)
}

// EventWithArg is Event with a single typed payload.
type EventWithArg[T any] struct {
	list listenerList[func(T)]
}

func (e *EventWithArg[T]) AddListener(callback func(T)) ListenerID {
	if callback == nil {
		return 0
	}
	return e.list.add(callback)
}

func (e *EventWithArg[T]) RemoveListener(id ListenerID) bool {
	return e.list.remove(id)
}

func (e *EventWithArg[T]) RemoveAllListeners() {
	e.list.subs = nil
}

func (e *EventWithArg[T]) Invoke(arg T) {
	for _, s := range e.list.snapshot() {
		s.fn(arg)
	}
}

func (e *EventWithArg[T]) GetListenerCount() int {
	return len(e.list.subs)
}
