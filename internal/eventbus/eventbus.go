// Package eventbus provides a named-channel publish/subscribe primitive
// with single-subscriber-per-channel semantics. It is the only coupling
// between the dashboard model and whatever consumes it.
package eventbus

import "sync"

// Channel names a logical event stream. Each channel carries exactly one
// payload type and holds at most one subscriber.
type Channel string

// Channels emitted by the dashboard model. Payload types:
//
//	OrdersUpdated     []models.OrderView
//	StatisticUpdated  models.Statistic
//	OrderUpdated      models.OrderView
//	OrderingChanged   models.Ordering
//	CurrenciesChanged []string
const (
	OrdersUpdated     Channel = "orders-updated"
	StatisticUpdated  Channel = "statistic-updated"
	OrderUpdated      Channel = "order-updated"
	OrderingChanged   Channel = "ordering-changed"
	CurrenciesChanged Channel = "currencies-changed"
)

// Handler receives a channel's payload. Handlers run synchronously on
// the emitter's goroutine and must not call back into the emitting
// model's mutation API.
type Handler func(payload any)

// Bus routes payloads to at most one handler per channel. Emissions on
// channels without a subscriber are dropped, not buffered.
type Bus struct {
	mu       sync.RWMutex
	handlers map[Channel]Handler
}

// New creates an empty Bus.
func New() *Bus {
	return &Bus{handlers: make(map[Channel]Handler)}
}

// Subscribe registers handler for ch, replacing any existing handler.
// This is deliberately not fan-out: a channel has one consumer slot.
func (b *Bus) Subscribe(ch Channel, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[ch] = handler
}

// Unsubscribe clears the handler for ch.
func (b *Bus) Unsubscribe(ch Channel) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.handlers, ch)
}

// Emit invokes the current handler for ch synchronously with payload.
// It is a no-op when no handler is registered.
func (b *Bus) Emit(ch Channel, payload any) {
	b.mu.RLock()
	handler := b.handlers[ch]
	b.mu.RUnlock()
	if handler != nil {
		handler(payload)
	}
}
