package events

import (
	"slices"
	"strconv"
	"strings"
)

// Position is the coordinate vector of a tile on a board of any dimension.
type Position []int

func (p Position) Clone() Position {
	return slices.Clone(p)
}

func (p Position) String() string {
	var sb strings.Builder

	sb.WriteByte('(')
	for idx, value := range p {
		if idx > 0 {
			sb.WriteString(", ")
		}

		sb.WriteString(strconv.Itoa(value))
	}
	sb.WriteByte(')')

	return sb.String()
}

// GameStartEvent is emitted when the first tile of a board is revealed.
type GameStartEvent struct{ EventOf[struct{}] }

// GameEndEvent is emitted when a game ends. The context is the position
// of the tile that was flagged or revealed last.
type GameEndEvent struct{ EventOf[Position] }

// MinesPlacedEvent is emitted after mines were placed on a board.
// The context is the number of mines successfully placed.
type MinesPlacedEvent struct{ EventOf[int] }

// TileRevealedEvent is emitted when a tile is revealed.
type TileRevealedEvent struct{ EventOf[Position] }

// TileFlaggedEvent is emitted when a tile is flagged.
type TileFlaggedEvent struct{ EventOf[Position] }

func (d *Dispatcher) OnStart(callback func()) {
	if callback == nil {
		panic("nil callback for event OnStart")
	}

	Subscribe[GameStartEvent](d, func(struct{}) { callback() })
}

func (d *Dispatcher) OnEnd(callback func(Position)) {
	Subscribe[GameEndEvent](d, callback)
}

func (d *Dispatcher) OnPlacedMines(callback func(int)) {
	Subscribe[MinesPlacedEvent](d, callback)
}

func (d *Dispatcher) OnTileRevealed(callback func(Position)) {
	Subscribe[TileRevealedEvent](d, callback)
}

func (d *Dispatcher) OnTileFlagged(callback func(Position)) {
	Subscribe[TileFlaggedEvent](d, callback)
}

func (d *Dispatcher) EmitStart() {
	Emit[GameStartEvent](d, struct{}{})
}

func (d *Dispatcher) EmitEnd(last Position) {
	Emit[GameEndEvent](d, last)
}

func (d *Dispatcher) EmitPlacedMines(count int) {
	Emit[MinesPlacedEvent](d, count)
}

func (d *Dispatcher) EmitTileRevealed(position Position) {
	Emit[TileRevealedEvent](d, position)
}

func (d *Dispatcher) EmitTileFlagged(position Position) {
	Emit[TileFlaggedEvent](d, position)
}
