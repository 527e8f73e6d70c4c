package picross

import "testing"

func TestColorToIndex(t *testing.T) {
	tests := []struct {
		name  string
		pixel PixelData
		want  int
	}{
		{"transparent", PixelData{255, 255, 255, 0}, 0},
		{"alpha at threshold", PixelData{255, 255, 255, 128}, 0},
		{"pure black remapped", PixelData{0, 0, 0, 255}, 1},
		{"near black remapped", PixelData{31, 31, 63, 255}, 1},
		{"white", PixelData{255, 255, 255, 255}, 255},
		{"pure red", PixelData{255, 0, 0, 255}, 7 << 5},
		{"pure green", PixelData{0, 255, 0, 255}, 7 << 2},
		{"pure blue", PixelData{0, 0, 255, 255}, 3},
		{"mixed", PixelData{100, 200, 50, 255}, 3<<5 | 6<<2 | 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ColorToIndex(tt.pixel, 128); got != tt.want {
				t.Errorf("ColorToIndex(%+v): got %d, want %d", tt.pixel, got, tt.want)
			}
		})
	}
}

func TestIndexToColor(t *testing.T) {
	tests := []struct {
		name  string
		index int
		want  PixelData
	}{
		{"zero", 0, PixelData{}},
		{"negative", -1, PixelData{}},
		{"white", 255, PixelData{255, 255, 255, 255}},
		{"darkest blue", 1, PixelData{0, 0, 0x55, 255}},
		{"pure red", 7 << 5, PixelData{255, 0, 0, 255}},
		{"mid field", 4<<5 | 2<<2 | 2, PixelData{0x92, 0x49, 0xAA, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IndexToColor(tt.index); got != tt.want {
				t.Errorf("IndexToColor(%d): got %+v, want %+v", tt.index, got, tt.want)
			}
		})
	}
}

func TestColorToIndex_RoundTripIdempotent(t *testing.T) {
	for i := 1; i <= 255; i++ {
		got := ColorToIndex(IndexToColor(i), DefaultAlphaThreshold)
		if got != i {
			t.Errorf("ColorToIndex(IndexToColor(%d)) = %d", i, got)
		}
	}
}

func TestColorToIndex_EveryOutputRoundTrips(t *testing.T) {
	// Sample the whole RGB cube coarsely; every produced index must be a
	// fixed point of the round trip.
	for r := 0; r < 256; r += 15 {
		for g := 0; g < 256; g += 15 {
			for b := 0; b < 256; b += 15 {
				i := ColorToIndex(PixelData{uint8(r), uint8(g), uint8(b), 255}, DefaultAlphaThreshold)
				if i < 1 || i > 255 {
					t.Fatalf("index out of range for (%d,%d,%d): %d", r, g, b, i)
				}
				if again := ColorToIndex(IndexToColor(i), DefaultAlphaThreshold); again != i {
					t.Errorf("round trip of %d gave %d", i, again)
				}
			}
		}
	}
}
