package events_test

import (
	"testing"

	"github.com/oliverbestmann/hypersweeper/events"
	"github.com/stretchr/testify/require"
)

func TestBuiltinEvents(t *testing.T) {
	var d events.Dispatcher

	var log []string

	d.OnStart(func() { log = append(log, "start") })
	d.OnEnd(func(pos events.Position) { log = append(log, "end "+pos.String()) })
	d.OnPlacedMines(func(count int) {
		require.Equal(t, 10, count)
		log = append(log, "mines")
	})
	d.OnTileRevealed(func(pos events.Position) { log = append(log, "revealed "+pos.String()) })
	d.OnTileFlagged(func(pos events.Position) { log = append(log, "flagged "+pos.String()) })

	d.EmitPlacedMines(10)
	d.EmitStart()
	d.EmitTileRevealed(events.Position{1, 2})
	d.EmitTileFlagged(events.Position{0, 3, 4})
	d.EmitEnd(events.Position{5, 5})

	require.Equal(t, []string{
		"mines",
		"start",
		"revealed (1, 2)",
		"flagged (0, 3, 4)",
		"end (5, 5)",
	}, log)
}

func TestConvenienceAndGenericShareKind(t *testing.T) {
	var d events.Dispatcher

	var calls int
	d.OnTileRevealed(func(events.Position) { calls += 1 })
	events.Subscribe[events.TileRevealedEvent](&d, func(events.Position) { calls += 1 })

	events.Emit[events.TileRevealedEvent](&d, events.Position{0})
	d.EmitTileRevealed(events.Position{1})

	require.Equal(t, 4, calls)
	require.Equal(t, 2, events.SubscriberCount[events.TileRevealedEvent](&d))
	require.Equal(t, 0, events.SubscriberCount[events.TileFlaggedEvent](&d))
}

// scoreEvent shows that event kinds can be declared outside of the package.
type scoreEvent struct{ events.EventOf[uint64] }

func TestCustomEventKind(t *testing.T) {
	var d events.Dispatcher

	var score uint64
	events.Subscribe[scoreEvent](&d, func(value uint64) { score += value })

	events.Emit[scoreEvent](&d, uint64(25))
	events.Emit[scoreEvent](&d, uint64(17))

	require.Equal(t, uint64(42), score)
}

func TestPosition(t *testing.T) {
	require.Equal(t, "()", events.Position{}.String())
	require.Equal(t, "(7)", events.Position{7}.String())
	require.Equal(t, "(1, -2, 3)", events.Position{1, -2, 3}.String())

	original := events.Position{1, 2}
	clone := original.Clone()
	clone[0] = 5
	require.Equal(t, events.Position{1, 2}, original)
}
