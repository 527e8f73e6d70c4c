package picross

import (
	"encoding/json"
	"testing"
)

func monoMatrix(mask [][]int) [][]int {
	out := make([][]int, len(mask))
	for i, row := range mask {
		out[i] = make([]int, len(row))
		for j, v := range row {
			if v == 1 {
				out[i][j] = MonoFill
			} else {
				out[i][j] = Empty
			}
		}
	}
	return out
}

func TestBuildMatrix_Silhouette(t *testing.T) {
	mask := spiralMask(16)
	data := bufferFromMask(mask)

	got := BuildMatrix(data, Config{BoardSize: 16})
	if !equalMatrix(got, monoMatrix(mask)) {
		t.Errorf("silhouette matrix does not match mask:\ngot  %v\nwant %v", got, monoMatrix(mask))
	}
}

func TestBuildMatrix_ColorMode(t *testing.T) {
	mask := spiralMask(16)
	data := bufferFromMask(mask)

	got := BuildMatrix(data, Config{BoardSize: 16, ColorMode: true})
	for row := range mask {
		for col := range mask[row] {
			want := Empty
			if mask[row][col] == 1 {
				want = ColorToIndex(maskPixel(row, col), DefaultAlphaThreshold)
			}
			if got[row][col] != want {
				t.Errorf("cell (%d,%d): got %d, want %d", row, col, got[row][col], want)
			}
		}
	}
}

func TestBuildMatrix_ColorModeBlackIsFilled(t *testing.T) {
	data := solidBuffer(2, 2, PixelData{0, 0, 0, 255})

	got := BuildMatrix(data, Config{BoardSize: 2, ColorMode: true})
	for row := range got {
		for col, v := range got[row] {
			if v != 1 {
				t.Errorf("cell (%d,%d): got %d, want 1", row, col, v)
			}
		}
	}
}

func TestBuildMatrix_OutlineOfThinShapes(t *testing.T) {
	// A 1-cell wide spiral is all edge, so the outline equals the shape.
	mask := spiralMask(16)
	data := bufferFromMask(mask)

	got := BuildMatrix(data, Config{BoardSize: 16, Policy: OutlinePolicy})
	if !equalMatrix(got, monoMatrix(mask)) {
		t.Errorf("outline of spiral should equal the spiral:\ngot  %v", got)
	}
}

func TestBuildMatrix_OutlineOfSolidSquare(t *testing.T) {
	data := solidBuffer(4, 4, PixelData{50, 60, 70, 255})

	got := BuildMatrix(data, Config{BoardSize: 4, Policy: OutlinePolicy})
	want := [][]int{
		{MonoFill, MonoFill, MonoFill, MonoFill},
		{MonoFill, Empty, Empty, MonoFill},
		{MonoFill, Empty, Empty, MonoFill},
		{MonoFill, MonoFill, MonoFill, MonoFill},
	}
	if !equalMatrix(got, want) {
		t.Errorf("outline of solid square:\ngot  %v\nwant %v", got, want)
	}
}

func TestBuildMatrix_OutlineColorChange(t *testing.T) {
	// Left half red, right half blue: the interior seam is a colour edge.
	data := newBuffer(4, 4)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			p := PixelData{255, 0, 0, 255}
			if x >= 2 {
				p = PixelData{0, 0, 255, 255}
			}
			setPixel(data, 4, x, y, p)
		}
	}

	tests := []struct {
		name      string
		threshold float64
		interior  int
	}{
		{"seam detected", 80, MonoFill},
		{"seam below threshold", 400, Empty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildMatrix(data, Config{BoardSize: 4, Policy: OutlinePolicy, ColorThreshold: tt.threshold})
			for _, cell := range [][2]int{{1, 1}, {1, 2}, {2, 1}, {2, 2}} {
				if v := got[cell[0]][cell[1]]; v != tt.interior {
					t.Errorf("interior cell %v: got %d, want %d", cell, v, tt.interior)
				}
			}
		})
	}
}

func TestBuildMatrix_AllTransparent(t *testing.T) {
	got := BuildMatrix(newBuffer(5, 5), Config{BoardSize: 5})
	for row := range got {
		for col, v := range got[row] {
			if v != Empty {
				t.Errorf("cell (%d,%d): got %d, want %d", row, col, v, Empty)
			}
		}
	}
}

func TestNewBoard_Cells(t *testing.T) {
	matrix := [][]int{
		{MonoFill, Empty},
		{Empty, MonoFill},
	}

	board := NewBoard(matrix, false)
	if err := board.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if board.Size() != 2 {
		t.Fatalf("Size: got %d, want 2", board.Size())
	}

	for i, row := range board.Rows {
		for j, cell := range row.Cells {
			filled := matrix[i][j] >= 0
			if cell.Correct != filled {
				t.Errorf("cell (%d,%d) Correct: got %v, want %v", i, j, cell.Correct, filled)
			}
			if !cell.Enabled {
				t.Errorf("cell (%d,%d) should be enabled", i, j)
			}
			if cell.Pushed || cell.Marked {
				t.Errorf("cell (%d,%d) should start unpushed and unmarked", i, j)
			}
			wantColor := BackgroundColor
			if filled {
				wantColor = ForegroundColor
			}
			if cell.Color != wantColor {
				t.Errorf("cell (%d,%d) Color: got %s, want %s", i, j, cell.Color, wantColor)
			}
		}
	}
}

func TestNewBoard_ColorModeCellColors(t *testing.T) {
	matrix := [][]int{{7 << 5, Empty}, {255, 1}}

	board := NewBoard(matrix, true)

	tests := []struct {
		row, col int
		want     string
	}{
		{0, 0, "rgb(255, 0, 0)"},
		{0, 1, BackgroundColor},
		{1, 0, "rgb(255, 255, 255)"},
		{1, 1, "rgb(0, 0, 85)"},
	}
	for _, tt := range tests {
		if got := board.Rows[tt.row].Cells[tt.col].Color; got != tt.want {
			t.Errorf("cell (%d,%d) Color: got %s, want %s", tt.row, tt.col, got, tt.want)
		}
	}
}

func TestBoardData_Validate(t *testing.T) {
	good := NewBoard([][]int{{Empty, Empty}, {Empty, Empty}}, false)

	tests := []struct {
		name    string
		mutate  func(b *BoardData)
		wantErr bool
	}{
		{"valid", func(b *BoardData) {}, false},
		{"no rows", func(b *BoardData) { b.Rows = nil }, true},
		{"missing row clues", func(b *BoardData) { b.RowClues = b.RowClues[:1] }, true},
		{"missing column clues", func(b *BoardData) { b.ColumnClues = nil }, true},
		{"short row", func(b *BoardData) { b.Rows[1].Cells = b.Rows[1].Cells[:1] }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := cloneBoard(t, good)
			tt.mutate(b)
			err := b.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate: got err=%v, wantErr=%v", err, tt.wantErr)
			}
		})
	}
}

func TestBoardData_JSONFieldNames(t *testing.T) {
	board := NewBoard([][]int{{MonoFill}}, false)

	data, err := json.Marshal(board)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	for _, key := range []string{"rows", "rowClues", "columnClues"} {
		if _, ok := raw[key]; !ok {
			t.Errorf("missing JSON field %q", key)
		}
	}
}

func cloneBoard(t *testing.T, b *BoardData) *BoardData {
	t.Helper()
	data, err := json.Marshal(b)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var out BoardData
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	return &out
}
