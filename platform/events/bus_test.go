package events

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

type testEvent struct {
	BaseEvent
	name string
}

func (e testEvent) EventName() string { return e.name }

func TestPublishDeliversToSubscribersAsynchronously(t *testing.T) {
	bus := NewInMemoryBus(nil)

	var wg sync.WaitGroup
	wg.Add(2)
	var mu sync.Mutex
	delivered := 0

	handler := HandlerFunc(func(_ context.Context, _ Event) error {
		mu.Lock()
		delivered++
		mu.Unlock()
		wg.Done()
		return nil
	})

	bus.Subscribe("test.event", handler)
	bus.Subscribe("test.event", handler)
	bus.Subscribe("other.event", HandlerFunc(func(_ context.Context, _ Event) error {
		t.Error("handler for another event name must not fire")
		return nil
	}))

	bus.Publish(context.Background(), testEvent{BaseEvent: NewBaseEvent(), name: "test.event"})

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("handlers were not invoked in time")
	}

	mu.Lock()
	defer mu.Unlock()
	if delivered != 2 {
		t.Fatalf("expected 2 deliveries, got %d", delivered)
	}
}

func TestPublishSyncReturnsFirstHandlerError(t *testing.T) {
	bus := NewInMemoryBus(nil)

	first := errors.New("first failure")
	bus.Subscribe("test.event", HandlerFunc(func(_ context.Context, _ Event) error { return first }))
	bus.Subscribe("test.event", HandlerFunc(func(_ context.Context, _ Event) error { return errors.New("second failure") }))

	err := bus.PublishSync(context.Background(), testEvent{BaseEvent: NewBaseEvent(), name: "test.event"})
	if !errors.Is(err, first) {
		t.Fatalf("expected the first handler error, got %v", err)
	}
}

func TestPublishSurvivesHandlerPanic(t *testing.T) {
	bus := NewInMemoryBus(nil)

	var wg sync.WaitGroup
	wg.Add(1)
	bus.Subscribe("test.event", HandlerFunc(func(_ context.Context, _ Event) error {
		defer wg.Done()
		panic("boom")
	}))

	bus.Publish(context.Background(), testEvent{BaseEvent: NewBaseEvent(), name: "test.event"})

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("panicking handler was not invoked in time")
	}
}
