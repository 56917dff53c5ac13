// Package event provides the in-process event bus used to broadcast
// gameplay events (multi-target weapon effects, boss lifecycle, critical
// errors) to whatever systems are listening.
package event

// Type identifies a kind of event on the bus.
type Type string

// Event is a single published occurrence with an optional payload.
type Event struct {
	Type Type
	Data any
}

// Listener receives events it has subscribed to.
type Listener interface {
	OnEvent(Event)
}

// ListenerFunc adapts a plain function into a Listener.
type ListenerFunc func(Event)

// OnEvent calls the wrapped function.
func (f ListenerFunc) OnEvent(e Event) {
	f(e)
}

// Subscription identifies one registered listener. Listeners are removed
// by their subscription rather than by value, so uncomparable listeners
// such as ListenerFunc work everywhere.
type Subscription struct {
	eventType Type
	id        int
}

type registration struct {
	id       int
	listener Listener
}

// Bus dispatches events to subscribed listeners. It is not safe for
// concurrent use; all gameplay runs on a single goroutine.
type Bus struct {
	listeners map[Type][]registration
	nextID    int
}

// NewBus creates an empty event bus.
func NewBus() *Bus {
	return &Bus{
		listeners: make(map[Type][]registration),
	}
}

// Subscribe registers a listener for the given event type and returns
// the subscription that removes it.
func (b *Bus) Subscribe(t Type, l Listener) Subscription {
	b.nextID++
	b.listeners[t] = append(b.listeners[t], registration{id: b.nextID, listener: l})
	return Subscription{eventType: t, id: b.nextID}
}

// Unsubscribe removes the listener registered under the subscription.
// Removing a subscription twice is harmless.
func (b *Bus) Unsubscribe(s Subscription) {
	regs := b.listeners[s.eventType]
	for i, r := range regs {
		if r.id == s.id {
			b.listeners[s.eventType] = append(regs[:i], regs[i+1:]...)
			return
		}
	}
}

// Publish delivers the event to every listener subscribed to its type,
// in subscription order.
func (b *Bus) Publish(e Event) {
	for _, r := range b.listeners[e.Type] {
		r.listener.OnEvent(e)
	}
}
