package tile

import (
	"fmt"
	"log/slog"
	"math/bits"
	"strings"

	"github.com/oliverbestmann/hypersweeper/internal/assert"
)

const (
	// Size is the number of tiles stored in one Group.
	Size = 8

	// BitsPerTile is the number of bits a single tile occupies.
	BitsPerTile = 3

	// Mask selects the bits of a tile in a value returned by Group.Get.
	Mask byte = 0b111
)

// tileMask covers the bits of a tile starting at the most significant bit.
const tileMask byte = 0b1110_0000

// Group holds the data of Size tiles packed into three bytes.
// The zero value is a group of tiles with all flags cleared.
type Group struct {
	data [Size * BitsPerTile / 8]byte
}

// Get returns the bits of the tile at index, right aligned.
// Bit n of the result is the state of Flag n.
func (g *Group) Get(index int) byte {
	byteIndex, bitOffset := tilePosition(index)

	value := bits.Reverse8(g.data[byteIndex]) >> bitOffset

	if bitOffset > 8-BitsPerTile {
		// the tile continues in the next byte
		value |= bits.Reverse8(g.data[byteIndex+1]) << (8 - bitOffset)
	}

	return value & Mask
}

// Set overwrites the tile at index with the lower three bits of value.
// The remaining bits of value are ignored.
func (g *Group) Set(index int, value byte) {
	byteIndex, bitOffset := tilePosition(index)

	// flag n is stored n bits after the start of the tile
	value = bits.Reverse8(value & Mask)

	g.data[byteIndex] &^= tileMask >> bitOffset
	g.data[byteIndex] |= value >> bitOffset

	if bitOffset > 8-BitsPerTile {
		shift := 8 - bitOffset
		g.data[byteIndex+1] &^= tileMask << shift
		g.data[byteIndex+1] |= value << shift
	}
}

// Bytes returns a copy of the packed tile data.
func (g *Group) Bytes() [3]byte {
	return g.data
}

func (g *Group) String() string {
	var sb strings.Builder

	sb.WriteByte('[')
	for idx := range Size {
		if idx > 0 {
			sb.WriteByte(' ')
		}

		_, _ = fmt.Fprintf(&sb, "%03b", g.Get(idx))
	}
	sb.WriteByte(']')

	return sb.String()
}

func (g *Group) LogValue() slog.Value {
	return slog.StringValue(g.String())
}

func tilePosition(index int) (byteIndex int, bitOffset int) {
	assert.IndexInRange(index, Size)

	bitPosition := index * BitsPerTile
	return bitPosition / 8, bitPosition % 8
}
