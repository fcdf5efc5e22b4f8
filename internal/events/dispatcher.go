package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
)

// EventHandler handles a published event.
type EventHandler func(context.Context, Event) error

// Dispatcher interface allows event publication/subscription.
type Dispatcher interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType EventType, handler EventHandler)
}

// inMemoryDispatcher is a simple synchronous dispatcher.
type inMemoryDispatcher struct {
	mu        sync.RWMutex
	listeners map[EventType][]EventHandler
}

// NewInMemoryDispatcher creates a dispatcher instance.
func NewInMemoryDispatcher() Dispatcher {
	return &inMemoryDispatcher{
		listeners: make(map[EventType][]EventHandler),
	}
}

// Publish synchronously invokes handlers for the given event.
// Every handler runs even if an earlier one fails; failures are joined.
func (d *inMemoryDispatcher) Publish(ctx context.Context, event Event) error {
	d.mu.RLock()
	handlers := append([]EventHandler{}, d.listeners[event.Type]...)
	d.mu.RUnlock()

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Subscribe registers a handler for the given event type.
func (d *inMemoryDispatcher) Subscribe(eventType EventType, handler EventHandler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.listeners[eventType] = append(d.listeners[eventType], handler)
}

// Publisher sends a raw payload on a named channel. *persistence.Redis implements it.
type Publisher interface {
	Publish(ctx context.Context, channel string, payload []byte) error
}

// redisDispatcher delivers to local subscribers, then broadcasts the JSON event.
type redisDispatcher struct {
	local     Dispatcher
	publisher Publisher
	channel   string
}

// NewRedisDispatcher wraps local delivery with a publish on channel.
func NewRedisDispatcher(publisher Publisher, channel string) Dispatcher {
	return &redisDispatcher{
		local:     NewInMemoryDispatcher(),
		publisher: publisher,
		channel:   channel,
	}
}

func (d *redisDispatcher) Publish(ctx context.Context, event Event) error {
	localErr := d.local.Publish(ctx, event)

	body, err := json.Marshal(event)
	if err != nil {
		return errors.Join(localErr, fmt.Errorf("encode event: %w", err))
	}
	if err := d.publisher.Publish(ctx, d.channel, body); err != nil {
		return errors.Join(localErr, fmt.Errorf("publish %s: %w", event.Type, err))
	}
	return localErr
}

func (d *redisDispatcher) Subscribe(eventType EventType, handler EventHandler) {
	d.local.Subscribe(eventType, handler)
}
