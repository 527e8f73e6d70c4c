package imaging

import (
	"fmt"
	"math"
	"testing"

	"github.com/ironsheep/picross-mcp/internal/picross"
)

func TestBoardPalette_Mono(t *testing.T) {
	result, err := BoardPalette(diagonalBoard())
	if err != nil {
		t.Fatalf("BoardPalette failed: %v", err)
	}
	if result.FilledCells != 2 {
		t.Errorf("FilledCells = %d, want 2", result.FilledCells)
	}
	if len(result.Colors) != 1 {
		t.Fatalf("len(Colors) = %d, want 1", len(result.Colors))
	}
	c := result.Colors[0]
	if c.Hex != "#000000" || c.Cells != 2 || c.Percentage != 100 {
		t.Errorf("entry = %+v, want #000000 x2 at 100%%", c)
	}
}

func TestBoardPalette_ColorOrdering(t *testing.T) {
	red, blue := 0xE0, 0x03
	board := picross.NewBoard([][]int{
		{red, blue, picross.Empty},
		{red, blue, red},
		{picross.Empty, picross.Empty, picross.Empty},
	}, true)

	result, err := BoardPalette(board)
	if err != nil {
		t.Fatalf("BoardPalette failed: %v", err)
	}
	if result.FilledCells != 5 {
		t.Errorf("FilledCells = %d, want 5", result.FilledCells)
	}
	if len(result.Colors) != 2 {
		t.Fatalf("len(Colors) = %d, want 2", len(result.Colors))
	}

	r := picross.IndexToColor(red)
	wantHex := fmt.Sprintf("#%02X%02X%02X", r.R, r.G, r.B)
	if result.Colors[0].Hex != wantHex || result.Colors[0].Cells != 3 {
		t.Errorf("first entry = %+v, want %s x3", result.Colors[0], wantHex)
	}
	if math.Abs(result.Colors[0].Percentage-60) > 1e-9 {
		t.Errorf("Percentage = %f, want 60", result.Colors[0].Percentage)
	}
	if result.Colors[1].Cells != 2 {
		t.Errorf("second entry cells = %d, want 2", result.Colors[1].Cells)
	}
}

func TestBoardPalette_TieOrder(t *testing.T) {
	board := picross.NewBoard([][]int{{0xFF, 0x00}, {picross.Empty, picross.Empty}}, true)

	result, err := BoardPalette(board)
	if err != nil {
		t.Fatalf("BoardPalette failed: %v", err)
	}
	if len(result.Colors) != 2 {
		t.Fatalf("len(Colors) = %d, want 2", len(result.Colors))
	}
	if result.Colors[0].Hex != "#000000" || result.Colors[1].Hex != "#FFFFFF" {
		t.Errorf("tie order = %s, %s; want #000000, #FFFFFF", result.Colors[0].Hex, result.Colors[1].Hex)
	}
}

func TestBoardPalette_Empty(t *testing.T) {
	board := picross.NewBoard([][]int{{picross.Empty}}, false)
	result, err := BoardPalette(board)
	if err != nil {
		t.Fatalf("BoardPalette failed: %v", err)
	}
	if result.FilledCells != 0 || len(result.Colors) != 0 {
		t.Errorf("result = %+v, want no colours", result)
	}
}

func TestBoardPalette_InvalidColor(t *testing.T) {
	board := diagonalBoard()
	board.Rows[0].Cells[0].Color = "chartreuse"
	if _, err := BoardPalette(board); err == nil {
		t.Error("expected error for unparseable cell colour")
	}
}

func TestRGBToHSL(t *testing.T) {
	tests := []struct {
		name string
		in   RGBColor
		want HSLColor
	}{
		{"red", RGBColor{255, 0, 0}, HSLColor{0, 100, 50}},
		{"green", RGBColor{0, 255, 0}, HSLColor{120, 100, 50}},
		{"blue", RGBColor{0, 0, 255}, HSLColor{240, 100, 50}},
		{"white", RGBColor{255, 255, 255}, HSLColor{0, 0, 100}},
		{"black", RGBColor{0, 0, 0}, HSLColor{0, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := rgbToHSL(tt.in); got != tt.want {
				t.Errorf("rgbToHSL(%+v) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}
