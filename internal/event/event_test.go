package event

import "testing"

func TestPublishDeliversInSubscriptionOrder(t *testing.T) {
	bus := NewBus()
	var order []string
	bus.Subscribe(ChainDamage, ListenerFunc(func(Event) { order = append(order, "first") }))
	bus.Subscribe(ChainDamage, ListenerFunc(func(Event) { order = append(order, "second") }))

	bus.Publish(Event{Type: ChainDamage})

	if len(order) != 2 || order[0] != "first" || order[1] != "second" {
		t.Errorf("delivery order = %v, want [first second]", order)
	}
}

func TestPublishIgnoresOtherTypes(t *testing.T) {
	bus := NewBus()
	var calls int
	bus.Subscribe(BossDefeated, ListenerFunc(func(Event) { calls++ }))

	bus.Publish(Event{Type: ChainDamage})

	if calls != 0 {
		t.Errorf("calls = %d, want 0 for an unsubscribed type", calls)
	}
}

func TestUnsubscribeFuncListener(t *testing.T) {
	bus := NewBus()
	var calls int
	sub := bus.Subscribe(ChainDamage, ListenerFunc(func(Event) { calls++ }))

	bus.Publish(Event{Type: ChainDamage})
	bus.Unsubscribe(sub)
	bus.Publish(Event{Type: ChainDamage})

	if calls != 1 {
		t.Errorf("calls = %d, want 1 (no delivery after Unsubscribe)", calls)
	}

	// A second removal of the same subscription is harmless.
	bus.Unsubscribe(sub)
}

func TestUnsubscribeKeepsOtherListeners(t *testing.T) {
	bus := NewBus()
	var first, second, third int
	s1 := bus.Subscribe(ChainDamage, ListenerFunc(func(Event) { first++ }))
	bus.Subscribe(ChainDamage, ListenerFunc(func(Event) { second++ }))
	bus.Subscribe(ChainDamage, ListenerFunc(func(Event) { third++ }))

	bus.Unsubscribe(s1)
	bus.Publish(Event{Type: ChainDamage})

	if first != 0 {
		t.Errorf("removed listener called %d times, want 0", first)
	}
	if second != 1 || third != 1 {
		t.Errorf("remaining listeners called %d and %d times, want 1 and 1", second, third)
	}
}
