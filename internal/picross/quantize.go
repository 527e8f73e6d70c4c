package picross

// ColorToIndex packs an opaque pixel into a single 3-3-2 byte: the top three
// bits of red and green and the top two bits of blue.
//
// Pixels with alpha <= alphaThreshold map to 0. Index 0 is reserved for
// "transparent", so pure black is remapped to 1.
func ColorToIndex(p PixelData, alphaThreshold int) int {
	if int(p.A) <= alphaThreshold {
		return 0
	}

	r3 := int(p.R >> 5)
	g3 := int(p.G >> 5)
	b2 := int(p.B >> 6)
	index := r3<<5 | g3<<2 | b2

	if index == 0 {
		return 1
	}
	return index
}

// IndexToColor approximates the colour a 3-3-2 index was built from by
// replicating each field's bits across the 8-bit range. Indexes <= 0 yield
// transparent black; every positive index yields alpha 255.
//
// The mapping is lossy but ColorToIndex(IndexToColor(i)) == i for every
// index ColorToIndex can produce.
func IndexToColor(index int) PixelData {
	if index <= 0 {
		return PixelData{}
	}

	r3 := uint8(index>>5) & 0x07
	g3 := uint8(index>>2) & 0x07
	b2 := uint8(index) & 0x03

	return PixelData{
		R: expand3(r3),
		G: expand3(g3),
		B: expand2(b2),
		A: 255,
	}
}

func expand3(f uint8) uint8 {
	return f<<5 | f<<2 | f>>1
}

func expand2(f uint8) uint8 {
	return f<<6 | f<<4 | f<<2 | f
}
