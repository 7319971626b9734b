package battle

import (
	"sync"
	"sync/atomic"

	"github.com/udisondev/lanewars/internal/model"
)

// EventBuffer hands effect events from the simulation goroutine to a consumer goroutine.
// Sending never blocks: when the buffer is full the event is dropped and counted.
type EventBuffer struct {
	ch        chan model.EffectEvent
	dropped   atomic.Uint64
	closeOnce sync.Once
}

// NewEventBuffer creates a buffer holding up to size events.
func NewEventBuffer(size int) *EventBuffer {
	if size < 1 {
		size = 1
	}
	return &EventBuffer{ch: make(chan model.EffectEvent, size)}
}

// Sink returns the non-blocking producer side. Must not be used after Close.
func (b *EventBuffer) Sink() model.EffectSink {
	return func(ev model.EffectEvent) {
		select {
		case b.ch <- ev:
		default:
			b.dropped.Add(1)
		}
	}
}

// Events returns the consumer side. It is closed by Close.
func (b *EventBuffer) Events() <-chan model.EffectEvent {
	return b.ch
}

// Dropped returns how many events did not fit into the buffer.
func (b *EventBuffer) Dropped() uint64 {
	return b.dropped.Load()
}

// Close closes the consumer channel. Safe to call more than once.
func (b *EventBuffer) Close() {
	b.closeOnce.Do(func() { close(b.ch) })
}
