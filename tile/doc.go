// Package tile provides a bit packed representation of board tiles.
//
// A Group stores eight tiles in three bytes, each tile occupying three bits.
// The bits of a tile are independent flags: Mine, Revealed and Flagged.
// Tiles are packed most significant bit first, so tile 0 starts at the
// highest bit of the first byte and tiles 2 and 5 straddle a byte boundary.
//
// Accessing a tile outside of [0, Size) is a programming error and panics.
package tile
