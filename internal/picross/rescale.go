package picross

import "math"

// Rescale resamples the bounding-box crop of a width×height RGBA buffer into
// a boardSize×boardSize RGBA buffer using nearest-neighbour sampling.
//
// Target cell (tr, tc) reads source pixel
//
//	col = floor(tc/boardSize * bbox.Width) + bbox.MinX
//	row = floor(tr/boardSize * bbox.Height) + bbox.MinY
//
// evaluated in float64 in that order, so boards match those produced by
// other implementations of the same formula bit for bit. A
// source coordinate outside the image produces a transparent pixel. There is
// no filtering or averaging; aliasing is expected. An empty bounding box
// yields an all-transparent buffer.
func Rescale(data []byte, width, height int, bbox BoundingBox, boardSize int) []byte {
	scaled := make([]byte, boardSize*boardSize*4)
	if bbox.Empty() {
		return scaled
	}

	for tr := 0; tr < boardSize; tr++ {
		srcRow := sourceIndex(tr, boardSize, bbox.Height) + bbox.MinY
		for tc := 0; tc < boardSize; tc++ {
			srcCol := sourceIndex(tc, boardSize, bbox.Width) + bbox.MinX

			if srcCol < 0 || srcCol >= width || srcRow < 0 || srcRow >= height {
				continue
			}

			src := (srcRow*width + srcCol) * 4
			dst := (tr*boardSize + tc) * 4
			copy(scaled[dst:dst+4], data[src:src+4])
		}
	}

	return scaled
}

// sourceIndex maps target index t of n onto a source extent of length span.
func sourceIndex(t, n, span int) int {
	return int(math.Floor(float64(t) / float64(n) * float64(span)))
}
