package events

// Event is implemented by event marker types whose subscribers receive a
// context of type C. Embed EventOf[C] to implement it.
type Event[C any] interface {
	isEvent(C)
}

// EventOf is a zero sized type that marks its embedding type as an Event
// with context type C.
type EventOf[C any] struct{}

func (EventOf[C]) isEvent(C) {}

// Cloner is implemented by context types holding references. Emit passes
// every subscriber its own clone of such a context.
type Cloner[C any] interface {
	Clone() C
}

func copyOf[C any](context C) C {
	if cloner, ok := any(context).(Cloner[C]); ok {
		return cloner.Clone()
	}

	return context
}
