// Package picross turns raster images into nonogram ("picross") boards.
//
// The conversion is a fixed pipeline over a flat RGBA buffer:
//
//  1. FindBoundingBox locates the opaque content.
//  2. Rescale crops to that box and resamples it, nearest-neighbour, to a
//     BoardSize×BoardSize buffer.
//  3. BuildMatrix classifies each cell as empty (-1) or filled, storing either
//     MonoFill or a 3-3-2 quantised colour index.
//  4. NewBoard derives presentation cells and run-length clues.
//
// ProcessImageData runs the whole pipeline. RecalculateClueColors updates
// clue completion after the presentation layer changes cells' Pushed state.
//
// # Coordinate System
//
// Board coordinates are (row, col) with (0, 0) at the top-left. Source
// image coordinates are (x, y) with the same origin.
//
// # Thread Safety
//
// All functions are pure over their inputs and safe to call concurrently
// with independent buffers. A BoardData must not be mutated concurrently with
// RecalculateClueColors on the same board.
package picross
