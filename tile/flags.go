package tile

import (
	"fmt"

	"github.com/oliverbestmann/hypersweeper/internal/assert"
)

// Flag selects one of the bits within a tile.
type Flag uint8

const (
	Mine Flag = iota
	Revealed
	Flagged
)

// Mask returns the value the flag contributes to the result of Group.Get.
func (f Flag) Mask() byte {
	return 1 << f
}

func (f Flag) String() string {
	switch f {
	case Mine:
		return "Mine"
	case Revealed:
		return "Revealed"
	case Flagged:
		return "Flagged"
	default:
		return fmt.Sprintf("Flag(%d)", uint8(f))
	}
}

// Flag returns the state of a single flag of the tile at index.
func (g *Group) Flag(index int, flag Flag) bool {
	byteIndex, mask := flagBit(index, flag)
	return g.data[byteIndex]&mask != 0
}

// SetFlag updates a single flag of the tile at index. All other
// bits, including the other flags of the same tile, are preserved.
func (g *Group) SetFlag(index int, flag Flag, value bool) {
	byteIndex, mask := flagBit(index, flag)

	if value {
		g.data[byteIndex] |= mask
	} else {
		g.data[byteIndex] &^= mask
	}
}

func (g *Group) IsMine(index int) bool {
	return g.Flag(index, Mine)
}

func (g *Group) Revealed(index int) bool {
	return g.Flag(index, Revealed)
}

func (g *Group) Flagged(index int) bool {
	return g.Flag(index, Flagged)
}

func (g *Group) SetMine(index int, value bool) {
	g.SetFlag(index, Mine, value)
}

func (g *Group) SetRevealed(index int, value bool) {
	g.SetFlag(index, Revealed, value)
}

func (g *Group) SetFlagged(index int, value bool) {
	g.SetFlag(index, Flagged, value)
}

// flagBit returns the byte holding the flag and a mask selecting its bit.
func flagBit(index int, flag Flag) (int, byte) {
	assert.IndexInRange(index, Size)
	assert.IndexInRange(int(flag), BitsPerTile)

	bitPosition := index*BitsPerTile + int(flag)
	return bitPosition / 8, 0b1000_0000 >> (bitPosition % 8)
}
