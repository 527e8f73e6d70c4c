package picross

import "testing"

func TestBuildLineClues(t *testing.T) {
	tests := []struct {
		name   string
		values []int
		want   []int
	}{
		{"empty line", []int{-1, -1, -1}, []int{0}},
		{"zero length line", nil, []int{0}},
		{"full line", []int{255, 255, 255}, []int{3}},
		{"runs", []int{1, 1, -1, 1, -1}, []int{2, 1}},
		{"leading gap", []int{-1, -1, 4, 4}, []int{2}},
		{"trailing run", []int{5, -1, -1, 5, 5, 5}, []int{1, 3}},
		{"index zero is filled", []int{0, 0, -1, 0}, []int{2, 1}},
		{"alternating", []int{1, -1, 1, -1, 1}, []int{1, 1, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clues := BuildLineClues(tt.values)
			if got := clueValues(clues); !equalInts(got, tt.want) {
				t.Errorf("BuildLineClues(%v): got %v, want %v", tt.values, got, tt.want)
			}
			for _, c := range clues {
				if c.Completed {
					t.Error("new clues must not be completed")
				}
			}
		})
	}
}

var patternMask = [][]int{
	{1, 1, 0, 1, 0},
	{0, 0, 0, 0, 0},
	{1, 1, 1, 0, 1},
	{0, 1, 0, 1, 1},
	{0, 0, 0, 1, 1},
}

func patternBoard() *BoardData {
	return NewBoard(monoMatrix(patternMask), false)
}

func TestNewBoard_PatternClues(t *testing.T) {
	board := patternBoard()

	wantRows := [][]int{{2, 1}, {0}, {3, 1}, {1, 2}, {2}}
	wantCols := [][]int{{1, 1}, {1, 2}, {1}, {1, 2}, {3}}

	for i, want := range wantRows {
		if got := clueValues(board.RowClues[i]); !equalInts(got, want) {
			t.Errorf("row %d clues: got %v, want %v", i, got, want)
		}
	}
	for j, want := range wantCols {
		if got := clueValues(board.ColumnClues[j]); !equalInts(got, want) {
			t.Errorf("column %d clues: got %v, want %v", j, got, want)
		}
	}
}

func pushAllCorrect(board *BoardData) {
	for i := range board.Rows {
		for j := range board.Rows[i].Cells {
			if board.Rows[i].Cells[j].Correct {
				board.Rows[i].Cells[j].Pushed = true
			}
		}
	}
}

func TestRecalculateClueColors_AllPushed(t *testing.T) {
	board := patternBoard()
	pushAllCorrect(board)

	RecalculateClueColors(board)

	for i, clues := range board.RowClues {
		for k, c := range clues {
			if !c.Completed {
				t.Errorf("row %d clue %d should be completed", i, k)
			}
		}
	}
	for j, clues := range board.ColumnClues {
		for k, c := range clues {
			if !c.Completed {
				t.Errorf("column %d clue %d should be completed", j, k)
			}
		}
	}
	if !board.Solved() {
		t.Error("board should be solved")
	}
}

func TestRecalculateClueColors_PartialRun(t *testing.T) {
	board := patternBoard()
	// Row 0 is [1,1,0,1,0]: push only the first cell of the first run and
	// the whole second run.
	board.Rows[0].Cells[0].Pushed = true
	board.Rows[0].Cells[3].Pushed = true

	RecalculateClueColors(board)

	if board.RowClues[0][0].Completed {
		t.Error("partially pushed run must not complete its clue")
	}
	if !board.RowClues[0][1].Completed {
		t.Error("fully pushed single-cell run should complete its clue")
	}
	// Column 0 is [1,0,1,0,0]: the top run is pushed, the lower one is not.
	if !board.ColumnClues[0][0].Completed {
		t.Error("column 0 first clue should be completed")
	}
	if board.ColumnClues[0][1].Completed {
		t.Error("column 0 second clue should not be completed")
	}
	if board.Solved() {
		t.Error("board should not be solved")
	}
}

func TestRecalculateClueColors_EmptyLine(t *testing.T) {
	board := patternBoard()

	RecalculateClueColors(board)

	if !board.RowClues[1][0].Completed {
		t.Error("zero clue of an empty row should be completed")
	}
	if board.RowClues[0][0].Completed {
		t.Error("untouched run should not be completed")
	}
}

func TestRecalculateClueColors_Unpush(t *testing.T) {
	board := patternBoard()
	pushAllCorrect(board)
	RecalculateClueColors(board)

	board.Rows[4].Cells[4].Pushed = false
	RecalculateClueColors(board)

	if board.RowClues[4][0].Completed {
		t.Error("row 4 clue should be cleared after unpushing a cell")
	}
	if board.ColumnClues[4][0].Completed {
		t.Error("column 4 clue should be cleared after unpushing a cell")
	}
	if !board.RowClues[3][1].Completed {
		t.Error("unrelated row clue should stay completed")
	}
}

func TestRecalculateClueColors_PreservesShape(t *testing.T) {
	board := patternBoard()
	pushAllCorrect(board)
	before := make([][]int, len(board.RowClues))
	for i, clues := range board.RowClues {
		before[i] = clueValues(clues)
	}

	RecalculateClueColors(board)

	for i, clues := range board.RowClues {
		if got := clueValues(clues); !equalInts(got, before[i]) {
			t.Errorf("row %d clue values changed: got %v, want %v", i, got, before[i])
		}
	}
	if err := board.Validate(); err != nil {
		t.Errorf("Validate after recalculation: %v", err)
	}
}

// Wrongly pushed empty cells lie outside every run of correct cells, so they
// do not affect completion.
func TestRecalculateClueColors_WrongPushOutsideRun(t *testing.T) {
	board := patternBoard()
	pushAllCorrect(board)
	board.Rows[1].Cells[2].Pushed = true

	RecalculateClueColors(board)

	if !board.RowClues[1][0].Completed {
		t.Error("zero clue depends only on runs of correct cells")
	}
}

func TestLineRuns(t *testing.T) {
	cells := []CellData{
		{Correct: true, Pushed: true},
		{Correct: true, Pushed: false},
		{Correct: false},
		{Correct: true, Pushed: true},
	}

	runs := lineRuns(cells)
	if len(runs) != 2 {
		t.Fatalf("runs: got %d, want 2", len(runs))
	}
	if runs[0].length != 2 || runs[0].solved {
		t.Errorf("first run: got %+v, want length 2 unsolved", runs[0])
	}
	if runs[1].length != 1 || !runs[1].solved {
		t.Errorf("second run: got %+v, want length 1 solved", runs[1])
	}
}
