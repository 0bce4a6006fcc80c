// Package hypersweeper is the backend of a minesweeper game played on boards
// of any size and any number of dimensions.
//
// It does not contain any user interface code. The building blocks live in
// sub packages:
//
//   - tile stores tiles bit packed, three bits per tile, eight tiles per Group.
//   - events provides a Dispatcher that notifies subscribers about changes on
//     a board, e.g. when a tile was revealed or flagged, so a frontend never
//     needs to poll the whole board for changes.
package hypersweeper
