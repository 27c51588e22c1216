package eventbus

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEventBus_SubscribePublish(t *testing.T) {
	bus := NewEventBus(nil)
	var called bool
	bus.Subscribe(EventTypeStockAdjusted, func(ctx context.Context, event Event) error {
		called = true
		assert.Equal(t, EventTypeStockAdjusted, event.Type())
		return nil
	})

	err := bus.Publish(context.Background(), NewBasicEvent(EventTypeStockAdjusted, "payload"))

	assert.NoError(t, err)
	assert.True(t, called)
}

func TestEventBus_NoHandlers(t *testing.T) {
	bus := NewEventBus(nil)

	err := bus.Publish(context.Background(), NewBasicEvent(EventTypeItemCreated, nil))

	assert.NoError(t, err)
}

func TestEventBus_HandlerErrorPropagatesSync(t *testing.T) {
	bus := NewEventBusWithConfig(nil, BusConfig{AsyncProcessing: false, MaxRetries: 1, RetryDelay: time.Millisecond})
	bus.Subscribe("failing", func(ctx context.Context, event Event) error {
		return assert.AnError
	})

	err := bus.Publish(context.Background(), NewBasicEvent("failing", nil))

	assert.Error(t, err)
}

func TestEventBus_AsyncPublish(t *testing.T) {
	// Async mode is concurrent fan-out, not fire-and-forget: Publish still
	// blocks until every handler returns, so the handler must never wait on
	// the publishing goroutine.
	bus := NewEventBusWithConfig(nil, BusConfig{AsyncProcessing: true, MaxRetries: 1, RetryDelay: time.Millisecond})
	ch := make(chan struct{}, 1)
	bus.Subscribe("async", func(ctx context.Context, event Event) error {
		ch <- struct{}{}
		return nil
	})

	err := bus.Publish(context.Background(), NewBasicEvent("async", nil))

	assert.NoError(t, err)
	select {
	case <-ch:
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for async event")
	}
}

func TestEventBus_AsyncPublishWaitsForHandlers(t *testing.T) {
	bus := NewEventBusWithConfig(nil, BusConfig{AsyncProcessing: true, MaxRetries: 1, RetryDelay: time.Millisecond})
	var mu sync.Mutex
	var completed int
	for i := 0; i < 3; i++ {
		bus.Subscribe("batch", func(ctx context.Context, event Event) error {
			time.Sleep(10 * time.Millisecond)
			mu.Lock()
			completed++
			mu.Unlock()
			return nil
		})
	}

	err := bus.Publish(context.Background(), NewBasicEvent("batch", nil))

	assert.NoError(t, err)
	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 3, completed, "Publish must not return before all handlers complete")
}

func TestEventBus_AsyncPublishCollectsHandlerError(t *testing.T) {
	bus := NewEventBusWithConfig(nil, BusConfig{AsyncProcessing: true, MaxRetries: 1, RetryDelay: time.Millisecond})
	bus.Subscribe("mixed", func(ctx context.Context, event Event) error { return nil })
	bus.Subscribe("mixed", func(ctx context.Context, event Event) error { return assert.AnError })

	err := bus.Publish(context.Background(), NewBasicEvent("mixed", nil))

	assert.Error(t, err)
}

func TestEventBus_PublishAndForget(t *testing.T) {
	bus := NewEventBus(nil)
	var wg sync.WaitGroup
	wg.Add(1)
	bus.Subscribe("forget", func(ctx context.Context, event Event) error {
		wg.Done()
		return nil
	})

	bus.PublishAndForget(context.Background(), NewBasicEvent("forget", nil))

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for fire-and-forget event")
	}
}

func TestEventBus_Unsubscribe(t *testing.T) {
	bus := NewEventBus(nil)
	bus.Subscribe("ev", func(ctx context.Context, event Event) error { return nil })
	assert.Equal(t, 1, bus.GetSubscriberCount("ev"))

	bus.Unsubscribe("ev")

	assert.Equal(t, 0, bus.GetSubscriberCount("ev"))
}

func TestEventBus_GetEventTypes(t *testing.T) {
	bus := NewEventBus(nil)
	bus.Subscribe(EventTypeStockLow, func(ctx context.Context, event Event) error { return nil })
	bus.Subscribe(EventTypeOperationCreated, func(ctx context.Context, event Event) error { return nil })

	types := bus.GetEventTypes()

	assert.Contains(t, types, EventTypeStockLow)
	assert.Contains(t, types, EventTypeOperationCreated)
}

func TestBasicEvent_Accessors(t *testing.T) {
	event := NewBasicEventWithSource(EventTypeUserAuthenticated, "data", "auth")

	assert.Equal(t, EventTypeUserAuthenticated, event.Type())
	assert.Equal(t, "data", event.Data())
	assert.Equal(t, "auth", event.Source())
	assert.WithinDuration(t, time.Now(), event.Timestamp(), time.Second)
}
