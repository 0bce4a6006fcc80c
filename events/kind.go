package events

import (
	"log/slog"
	"maps"
	"reflect"
	"sync/atomic"
)

type KindId uint16

// Kind identifies an event marker type. There is exactly one Kind
// per marker type for the lifetime of the process.
type Kind struct {
	Id   KindId
	Name string
	Type reflect.Type
}

func (k *Kind) String() string {
	return k.Name
}

var kinds atomic.Pointer[map[reflect.Type]*Kind]

func init() {
	kinds.Store(&map[reflect.Type]*Kind{})
}

// KindOf returns the Kind of the event marker type E.
func KindOf[E any]() *Kind {
	return kindOf(reflect.TypeFor[E]())
}

func kindOf(ty reflect.Type) *Kind {
	for {
		previousKinds := kinds.Load()
		if cached, ok := (*previousKinds)[ty]; ok {
			return cached
		}

		newKind := &Kind{
			Id:   KindId(len(*previousKinds) + 1),
			Name: ty.String(),
			Type: ty,
		}

		newKinds := maps.Clone(*previousKinds)
		newKinds[ty] = newKind

		if kinds.CompareAndSwap(previousKinds, &newKinds) {
			slog.Debug(
				"New event kind registered",
				slog.String("name", newKind.Name),
				slog.Int("id", int(newKind.Id)),
			)

			return newKind
		}
	}
}
