package pubsub

import (
	"context"
	"errors"
	"sync"
)

const (
	// subBufferSize is the buffer size of the channel for each subscription.
	subBufferSize = 1024
)

// ErrSubscriptionTerminated is for use by subscribers to indicate that their
// subscription has been terminated by the broker.
var ErrSubscriptionTerminated = errors.New("broker terminated the subscription")

type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// Broker allows clients to publish events and to either subscribe to them
// asynchronously via a channel, or observe them synchronously via a callback.
type Broker[T any] struct {
	subs      map[chan Event[T]]struct{} // subscriptions
	observers []*observer[T]            // in registration order
	nextID    int
	closed    bool
	mu        sync.Mutex // sync access to subs and observers

	logger Logger
}

type observer[T any] struct {
	id   int
	fn   func(Event[T])
	stop func() bool
}

func NewBroker[T any](logger Logger) *Broker[T] {
	b := &Broker[T]{
		subs:   make(map[chan Event[T]]struct{}),
		logger: logger,
	}
	return b
}

// Subscribe subscribes the caller to a stream of events. The caller can close
// the subscription by canceling the context.
func (b *Broker[T]) Subscribe(ctx context.Context) <-chan Event[T] {
	b.mu.Lock()
	defer b.mu.Unlock()

	sub := make(chan Event[T], subBufferSize)
	if b.closed {
		close(sub)
		return sub
	}
	b.subs[sub] = struct{}{}

	// when the context is canceled remove the subscriber
	go func() {
		<-ctx.Done()
		b.unsubscribe(sub)
	}()

	return sub
}

// Observe registers fn to be called synchronously, on the publishing
// goroutine, for every event published from now on. Observers are called in
// the order they registered. The registration lasts until ctx is done or the
// returned function is called, whichever happens first.
func (b *Broker[T]) Observe(ctx context.Context, fn func(Event[T])) (unobserve func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed || ctx.Err() != nil {
		return func() {}
	}
	b.nextID++
	obs := &observer[T]{id: b.nextID, fn: fn}
	obs.stop = context.AfterFunc(ctx, func() { b.unobserve(obs.id) })
	b.observers = append(b.observers, obs)

	return func() {
		obs.stop()
		b.unobserve(obs.id)
	}
}

// Publish an event to observers and then to subscribers.
//
// TODO: don't forceably unsubscribe full subscribers; the TUI relay doesn't
// re-subscribe.
func (b *Broker[T]) Publish(t EventType, payload T) {
	ev := Event[T]{Type: t, Payload: payload}

	// Take a copy so that observers can unobserve from within their callback.
	b.mu.Lock()
	observers := make([]*observer[T], len(b.observers))
	copy(observers, b.observers)
	b.mu.Unlock()

	for _, obs := range observers {
		if b.observing(obs.id) {
			obs.fn(ev)
		}
	}

	var fullSubscribers []chan Event[T]

	b.mu.Lock()
	for sub := range b.subs {
		select {
		case sub <- ev:
			continue
		default:
			// could not publish event to subscriber because their buffer is
			// full, so add them to a list for action below
			fullSubscribers = append(fullSubscribers, sub)
		}
	}
	b.mu.Unlock()

	// forceably unsubscribe full subscribers and leave it to them to
	// re-subscribe
	for _, sub := range fullSubscribers {
		b.logger.Error("unsubscribing full subscriber", "queue_length", subBufferSize)
		b.unsubscribe(sub)
	}
}

// Observers returns the number of registered observers.
func (b *Broker[T]) Observers() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return len(b.observers)
}

// Close removes all observers and closes all subscriptions. Subsequent
// registrations are inert.
func (b *Broker[T]) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, obs := range b.observers {
		obs.stop()
	}
	b.observers = nil
	for sub := range b.subs {
		close(sub)
		delete(b.subs, sub)
	}
	b.closed = true
}

func (b *Broker[T]) observing(id int) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, obs := range b.observers {
		if obs.id == id {
			return true
		}
	}
	return false
}

func (b *Broker[T]) unobserve(id int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i, obs := range b.observers {
		if obs.id == id {
			b.observers = append(b.observers[:i], b.observers[i+1:]...)
			return
		}
	}
}

func (b *Broker[T]) unsubscribe(sub chan Event[T]) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.subs[sub]; !ok {
		// already unsubscribed
		return
	}
	close(sub)
	delete(b.subs, sub)
}
