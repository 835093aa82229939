// Package events provides a minimal synchronous publish/subscribe bus for
// widget lifecycle notifications. Delivery is process-local and in
// subscription order; there is no queueing and no replay for late
// subscribers.
package events

import "github.com/google/uuid"

// Wildcard subscribes a handler to every event name. Passing it to OffAll
// removes every handler on the bus.
const Wildcard = "*"

// Handler receives an emitted event. The event name is passed explicitly so
// wildcard handlers can tell events apart.
type Handler[T any] func(event string, payload T)

// Subscription identifies one registered handler so it can be removed
// individually.
type Subscription struct {
	id    string
	event string
}

// Event returns the event name the subscription was registered under.
func (s Subscription) Event() string { return s.event }

type entry[T any] struct {
	id string
	fn Handler[T]
}

// Bus dispatches events synchronously to registered handlers. It is not safe
// for concurrent use; callers are expected to run it on a single event loop.
type Bus[T any] struct {
	handlers map[string][]entry[T]
}

// New creates an empty bus.
func New[T any]() *Bus[T] {
	return &Bus[T]{handlers: map[string][]entry[T]{}}
}

// On registers a handler for the named event (or Wildcard for all events)
// and returns a subscription that can be passed to Off.
func (b *Bus[T]) On(event string, fn Handler[T]) Subscription {
	sub := Subscription{id: uuid.NewString(), event: event}
	b.handlers[event] = append(b.handlers[event], entry[T]{id: sub.id, fn: fn})
	return sub
}

// Off removes a single previously registered handler. Removing an already
// removed subscription is a no-op.
func (b *Bus[T]) Off(sub Subscription) {
	entries := b.handlers[sub.event]
	for i, e := range entries {
		if e.id == sub.id {
			b.handlers[sub.event] = append(entries[:i], entries[i+1:]...)
			return
		}
	}
}

// OffAll removes every handler registered for the named event. With
// Wildcard it clears the entire bus.
func (b *Bus[T]) OffAll(event string) {
	if event == Wildcard {
		b.handlers = map[string][]entry[T]{}
		return
	}
	delete(b.handlers, event)
}

// Emit synchronously invokes the handlers registered for the named event, in
// subscription order, followed by the wildcard handlers in subscription
// order. Emit returns once every handler has run.
func (b *Bus[T]) Emit(event string, payload T) {
	// Copy before iterating so a handler may subscribe/unsubscribe safely.
	named := append([]entry[T](nil), b.handlers[event]...)
	wild := append([]entry[T](nil), b.handlers[Wildcard]...)

	for _, e := range named {
		e.fn(event, payload)
	}
	for _, e := range wild {
		e.fn(event, payload)
	}
}

// Len reports how many handlers are registered for the named event.
func (b *Bus[T]) Len(event string) int {
	return len(b.handlers[event])
}
