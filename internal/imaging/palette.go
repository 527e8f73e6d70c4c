package imaging

import (
	"fmt"
	"sort"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/picross-mcp/internal/picross"
)

// RGBColor represents an RGB color with 8-bit components.
type RGBColor struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
}

// HSLColor represents a color in HSL (Hue, Saturation, Lightness) color space.
type HSLColor struct {
	H int `json:"h"` // Hue: 0-360 degrees (0=red, 120=green, 240=blue)
	S int `json:"s"` // Saturation: 0-100 percent (0=gray, 100=vivid)
	L int `json:"l"` // Lightness: 0-100 percent (0=black, 50=normal, 100=white)
}

// PaletteEntry is one distinct colour used by the filled cells of a board.
type PaletteEntry struct {
	Hex        string   `json:"hex"`        // Hex format "#RRGGBB"
	Cells      int      `json:"cells"`      // Number of filled cells with this colour
	Percentage float64  `json:"percentage"` // Share of filled cells (0-100)
	RGB        RGBColor `json:"rgb"`
	HSL        HSLColor `json:"hsl"`
}

// PaletteResult lists a board's colours, most frequent first.
type PaletteResult struct {
	FilledCells int            `json:"filled_cells"`
	Colors      []PaletteEntry `json:"colors"`
}

// BoardPalette extracts the distinct colours of a board's filled cells.
//
// Entries are sorted by cell count in descending order; ties are ordered by
// hex value so the result is stable. Empty cells are not counted. A board in
// monochrome mode has a single entry.
//
// # Errors
//
// Returns an error if a filled cell carries an unparseable colour.
func BoardPalette(board *picross.BoardData) (*PaletteResult, error) {
	counts := make(map[string]int)
	rgbs := make(map[string]RGBColor)
	filled := 0

	for i, row := range board.Rows {
		for j, cell := range row.Cells {
			if !cell.Correct {
				continue
			}
			c, err := ParseCellColor(cell.Color)
			if err != nil {
				return nil, fmt.Errorf("cell (%d,%d): %w", i, j, err)
			}
			key := fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
			counts[key]++
			rgbs[key] = RGBColor{R: c.R, G: c.G, B: c.B}
			filled++
		}
	}

	colors := make([]PaletteEntry, 0, len(counts))
	for hex, cnt := range counts {
		rgb := rgbs[hex]
		colors = append(colors, PaletteEntry{
			Hex:        hex,
			Cells:      cnt,
			Percentage: float64(cnt) / float64(filled) * 100,
			RGB:        rgb,
			HSL:        rgbToHSL(rgb),
		})
	}

	sort.Slice(colors, func(i, j int) bool {
		if colors[i].Cells != colors[j].Cells {
			return colors[i].Cells > colors[j].Cells
		}
		return colors[i].Hex < colors[j].Hex
	})

	return &PaletteResult{FilledCells: filled, Colors: colors}, nil
}

// rgbToHSL converts 8-bit RGB to whole-number HSL.
func rgbToHSL(c RGBColor) HSLColor {
	h, s, l := colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}.Hsl()

	return HSLColor{
		H: int(h),
		S: int(s * 100),
		L: int(l * 100),
	}
}
