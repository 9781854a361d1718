package bus_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/rohmanhakim/crawlkit/internal/bus"
)

func TestBus_Publish_DeliversToSubscriber(t *testing.T) {
	b := bus.New(bus.DropOldest)
	sub := b.Subscribe(4)

	b.Publish(bus.Event{Kind: bus.EventPageFetched, URL: "https://example.com"})

	select {
	case evt := <-sub.Events():
		assert.Equal(t, bus.EventPageFetched, evt.Kind)
		assert.Equal(t, "https://example.com", evt.URL)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
	}
}

func TestBus_DropOldest_NeverBlocksPublisher(t *testing.T) {
	b := bus.New(bus.DropOldest)
	sub := b.Subscribe(1)

	done := make(chan struct{})
	go func() {
		for i := 0; i < 100; i++ {
			b.Publish(bus.Event{Kind: bus.EventPageFetched, URL: "https://example.com/page"})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publish blocked under drop_oldest policy")
	}

	select {
	case evt := <-sub.Events():
		assert.Equal(t, bus.EventPageFetched, evt.Kind)
	default:
		t.Fatal("expected at least one buffered event to survive")
	}
}

func TestBus_Unsubscribe_ClosesChannel(t *testing.T) {
	b := bus.New(bus.DropOldest)
	sub := b.Subscribe(1)

	sub.Unsubscribe()

	_, ok := <-sub.Events()
	assert.False(t, ok)
}

func TestBus_Unsubscribe_Idempotent(t *testing.T) {
	b := bus.New(bus.DropOldest)
	sub := b.Subscribe(1)

	assert.NotPanics(t, func() {
		sub.Unsubscribe()
		sub.Unsubscribe()
	})
}

func TestBus_MultipleSubscribers_AllReceive(t *testing.T) {
	b := bus.New(bus.Backpressure)
	first := b.Subscribe(1)
	second := b.Subscribe(1)

	b.Publish(bus.Event{Kind: bus.EventCrawlFinished})

	assert.Equal(t, bus.EventCrawlFinished, (<-first.Events()).Kind)
	assert.Equal(t, bus.EventCrawlFinished, (<-second.Events()).Kind)
}

func TestParsePolicy(t *testing.T) {
	assert.Equal(t, bus.Backpressure, bus.ParsePolicy("block"))
	assert.Equal(t, bus.DropOldest, bus.ParsePolicy("drop_oldest"))
	assert.Equal(t, bus.DropOldest, bus.ParsePolicy(""))
}
