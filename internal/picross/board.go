package picross

import "fmt"

// Raw matrix cell values.
const (
	// Empty marks a cell with no fill.
	Empty = -1

	// MonoFill marks a filled cell in monochrome mode.
	MonoFill = 255
)

// Presentation colours for cells that carry no quantised colour.
const (
	BackgroundColor = "#FFFFFF"
	ForegroundColor = "#000000"
)

// ClueData is one run-length clue of a row or column.
type ClueData struct {
	Value     int  `json:"value"`
	Completed bool `json:"completed"`
}

// CellData is one board cell as handed to the presentation layer.
//
// Correct is fixed when the board is generated. Pushed and Marked are player
// state owned by the presentation layer and are only initialised here.
type CellData struct {
	Color   string `json:"color"`
	Enabled bool   `json:"enabled"`
	Pushed  bool   `json:"pushed"`
	Correct bool   `json:"correct"`
	Marked  bool   `json:"marked"`
	Text    string `json:"text,omitempty"`
}

// RowData holds the cells of one board row, left to right.
type RowData struct {
	Cells []CellData `json:"cells"`
}

// BoardData is a complete puzzle: cells plus row and column clues.
//
// Rows[i].Cells[j] is row i, column j of the raw matrix the board was built
// from; RowClues[i] and ColumnClues[j] describe that row and column.
type BoardData struct {
	Rows        []RowData    `json:"rows"`
	RowClues    [][]ClueData `json:"rowClues"`
	ColumnClues [][]ClueData `json:"columnClues"`
}

// Size returns the side length of the board.
func (b *BoardData) Size() int {
	return len(b.Rows)
}

// Solved reports whether every row and column clue is completed. It reads
// the Completed flags as last set by RecalculateClueColors.
func (b *BoardData) Solved() bool {
	for _, clues := range b.RowClues {
		for _, c := range clues {
			if !c.Completed {
				return false
			}
		}
	}
	for _, clues := range b.ColumnClues {
		for _, c := range clues {
			if !c.Completed {
				return false
			}
		}
	}
	return true
}

// Validate checks that the board is square and its clue lists match its
// dimensions.
func (b *BoardData) Validate() error {
	n := len(b.Rows)
	if n == 0 {
		return fmt.Errorf("board has no rows")
	}
	if len(b.RowClues) != n {
		return fmt.Errorf("board has %d rows but %d row clue lists", n, len(b.RowClues))
	}
	if len(b.ColumnClues) != n {
		return fmt.Errorf("board has %d rows but %d column clue lists", n, len(b.ColumnClues))
	}
	for i, row := range b.Rows {
		if len(row.Cells) != n {
			return fmt.Errorf("row %d has %d cells, want %d", i, len(row.Cells), n)
		}
	}
	return nil
}

// BuildMatrix classifies every cell of a rescaled boardSize×boardSize RGBA
// buffer into the raw board matrix.
//
// Opaque cells selected by the policy become MonoFill, or their quantised
// colour index in colour mode; all other cells are Empty.
func BuildMatrix(scaled []byte, cfg Config) [][]int {
	cfg = cfg.withDefaults()
	n := cfg.BoardSize
	sampler := NewSampler(scaled, n)

	matrix := make([][]int, n)
	for row := 0; row < n; row++ {
		matrix[row] = make([]int, n)
		for col := 0; col < n; col++ {
			matrix[row][col] = classifyCell(sampler, row, col, cfg)
		}
	}
	return matrix
}

func classifyCell(s Sampler, row, col int, cfg Config) int {
	if !s.IsOpaque(row, col, cfg.AlphaThreshold) {
		return Empty
	}

	if cfg.Policy == OutlinePolicy {
		edge := s.HasTransparentNeighbor(row, col, cfg.AlphaThreshold) ||
			s.HasSignificantColorChange(row, col, cfg.ColorThreshold, cfg.AlphaThreshold)
		if !edge {
			return Empty
		}
	}

	if cfg.ColorMode {
		return ColorToIndex(s.Sample(row, col), cfg.AlphaThreshold)
	}
	return MonoFill
}

// NewBoard builds the presentation board and its clues from a raw matrix.
//
// Every cell is enabled, so empty cells stay interactable and a player can
// push a wrong cell. Cell colours are BackgroundColor for empty cells,
// ForegroundColor for filled cells in monochrome mode, and an "rgb(r, g, b)"
// string of the dequantised index in colour mode.
func NewBoard(matrix [][]int, colorMode bool) *BoardData {
	n := len(matrix)
	board := &BoardData{
		Rows:        make([]RowData, n),
		RowClues:    make([][]ClueData, n),
		ColumnClues: make([][]ClueData, n),
	}

	for i, values := range matrix {
		cells := make([]CellData, len(values))
		for j, v := range values {
			cells[j] = CellData{
				Color:   cellColor(v, colorMode),
				Enabled: true,
				Correct: v >= 0,
			}
		}
		board.Rows[i] = RowData{Cells: cells}
		board.RowClues[i] = BuildLineClues(values)
	}

	column := make([]int, n)
	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			column[i] = matrix[i][j]
		}
		board.ColumnClues[j] = BuildLineClues(column)
	}

	return board
}

func cellColor(value int, colorMode bool) string {
	switch {
	case value < 0:
		return BackgroundColor
	case !colorMode:
		return ForegroundColor
	default:
		p := IndexToColor(value)
		return fmt.Sprintf("rgb(%d, %d, %d)", p.R, p.G, p.B)
	}
}
