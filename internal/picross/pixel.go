package picross

import "math"

// distanceAlphaCutoff is the alpha at or below which ColorDistance treats a
// pixel as transparent. It is deliberately separate from the configurable
// alpha threshold used for opacity tests.
const distanceAlphaCutoff = 128

// PixelData is one RGBA pixel with 8-bit components.
type PixelData struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
	A uint8 `json:"a"` // Alpha/opacity component (0-255)
}

// Sampler provides bounds-checked access to a square RGBA buffer.
//
// The buffer is laid out row-major with 4 bytes per pixel and a stride of
// size pixels. Coordinates outside the square read as fully transparent
// black, so neighbour checks at the board edge see "off the edge" the same
// way as a transparent pixel.
type Sampler struct {
	data []byte
	size int
}

// NewSampler wraps a size×size RGBA buffer. The buffer is not copied.
func NewSampler(data []byte, size int) Sampler {
	return Sampler{data: data, size: size}
}

// Size returns the side length of the sampled square.
func (s Sampler) Size() int {
	return s.size
}

// Sample returns the pixel at (row, col), or {0,0,0,0} when the coordinate
// is outside the square.
func (s Sampler) Sample(row, col int) PixelData {
	if !s.inside(row, col) {
		return PixelData{}
	}
	i := (row*s.size + col) * 4
	if i+3 >= len(s.data) {
		return PixelData{}
	}
	return PixelData{R: s.data[i], G: s.data[i+1], B: s.data[i+2], A: s.data[i+3]}
}

// IsOpaque reports whether the pixel's alpha is strictly greater than
// alphaThreshold.
func (s Sampler) IsOpaque(row, col, alphaThreshold int) bool {
	return int(s.Sample(row, col).A) > alphaThreshold
}

// HasTransparentNeighbor reports whether any 4-connected neighbour of
// (row, col) is off the grid or not opaque.
func (s Sampler) HasTransparentNeighbor(row, col, alphaThreshold int) bool {
	for _, d := range neighborOffsets {
		r, c := row+d[0], col+d[1]
		if !s.inside(r, c) {
			return true
		}
		if !s.IsOpaque(r, c, alphaThreshold) {
			return true
		}
	}
	return false
}

// HasSignificantColorChange reports whether an opaque pixel differs from any
// opaque 4-connected neighbour by more than colorThreshold. Transparent
// centres and off-grid or transparent neighbours never count.
func (s Sampler) HasSignificantColorChange(row, col int, colorThreshold float64, alphaThreshold int) bool {
	if !s.IsOpaque(row, col, alphaThreshold) {
		return false
	}
	center := s.Sample(row, col)

	for _, d := range neighborOffsets {
		r, c := row+d[0], col+d[1]
		if !s.inside(r, c) || !s.IsOpaque(r, c, alphaThreshold) {
			continue
		}
		if ColorDistance(center, s.Sample(r, c)) > colorThreshold {
			return true
		}
	}
	return false
}

func (s Sampler) inside(row, col int) bool {
	return row >= 0 && row < s.size && col >= 0 && col < s.size
}

// neighborOffsets lists the N, S, W, E neighbours as (row, col) deltas.
var neighborOffsets = [4][2]int{
	{-1, 0},
	{1, 0},
	{0, -1},
	{0, 1},
}

// ColorDistance returns the Euclidean distance between two pixels over
// (R, G, B). It is 0 when either pixel has alpha <= 128, regardless of the
// configured alpha threshold.
func ColorDistance(p1, p2 PixelData) float64 {
	if p1.A <= distanceAlphaCutoff || p2.A <= distanceAlphaCutoff {
		return 0
	}

	dr := float64(p1.R) - float64(p2.R)
	dg := float64(p1.G) - float64(p2.G)
	db := float64(p1.B) - float64(p2.B)

	return math.Sqrt(dr*dr + dg*dg + db*db)
}
