package events

import (
	"fmt"
	"log/slog"
	"reflect"
	"sync"

	"github.com/oliverbestmann/hypersweeper/internal/assert"
)

// Dispatcher holds the subscribers of any number of event kinds.
// The zero value is ready to use. A Dispatcher must not be copied.
type Dispatcher struct {
	mu sync.RWMutex

	// subscribers holds a list of func(C) per event kind,
	// where C is the context type of the kind.
	subscribers map[KindId][]any
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

// Subscribe registers a callback for the event kind E. Callbacks are kept
// for the lifetime of the dispatcher.
func Subscribe[E Event[C], C any](d *Dispatcher, callback func(C)) {
	assert.NotNil(d, "dispatcher")

	kind := KindOf[E]()

	if callback == nil {
		panic(fmt.Sprintf("nil callback for event %s", kind))
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.subscribers == nil {
		d.subscribers = make(map[KindId][]any)
	}

	d.subscribers[kind.Id] = append(d.subscribers[kind.Id], callback)
}

// Emit calls every subscriber of E in registration order, passing each
// a copy of context. Subscribers run on the calling goroutine.
func Emit[E Event[C], C any](d *Dispatcher, context C) {
	assert.NotNil(d, "dispatcher")

	kind := KindOf[E]()

	// subscribers are only ever appended, the slice header is a stable snapshot
	d.mu.RLock()
	subscribers := d.subscribers[kind.Id]
	d.mu.RUnlock()

	for _, subscriber := range subscribers {
		callback, ok := subscriber.(func(C))
		if !ok {
			slog.Warn(
				"Skip subscriber with unexpected type",
				slog.String("event", kind.Name),
				slog.String("expected", reflect.TypeFor[func(C)]().String()),
				slog.String("actual", fmt.Sprintf("%T", subscriber)),
			)

			continue
		}

		callback(copyOf(context))
	}
}

// SubscriberCount returns the number of subscribers registered for E.
func SubscriberCount[E any](d *Dispatcher) int {
	assert.NotNil(d, "dispatcher")

	kind := KindOf[E]()

	d.mu.RLock()
	defer d.mu.RUnlock()

	return len(d.subscribers[kind.Id])
}
