package picross

// BuildLineClues returns the run-length clues of one row or column.
//
// Values >= 0 are filled. Each maximal run of filled values becomes one clue,
// in order; a line without any run yields the single clue {0, false}.
func BuildLineClues(values []int) []ClueData {
	var clues []ClueData
	run := 0

	for _, v := range values {
		if v >= 0 {
			run++
			continue
		}
		if run > 0 {
			clues = append(clues, ClueData{Value: run})
			run = 0
		}
	}
	if run > 0 {
		clues = append(clues, ClueData{Value: run})
	}

	if len(clues) == 0 {
		return []ClueData{{Value: 0}}
	}
	return clues
}

// lineRun is a maximal run of correct cells along one line.
type lineRun struct {
	length int
	solved bool
}

// RecalculateClueColors refreshes the Completed flag of every clue from the
// cells' Pushed state.
//
// For each row and column the runs of Correct cells are matched to the clues
// by position. Clue k is completed when run k exists, has exactly clue k's
// length, and every cell in it is pushed. A zero clue is completed when the
// line has no runs. Only Completed fields are written.
func RecalculateClueColors(board *BoardData) {
	n := len(board.Rows)
	line := make([]CellData, n)

	for i := 0; i < n && i < len(board.RowClues); i++ {
		updateClues(board.RowClues[i], lineRuns(board.Rows[i].Cells))
	}

	for j := 0; j < n && j < len(board.ColumnClues); j++ {
		line = line[:0]
		for i := 0; i < n; i++ {
			if j < len(board.Rows[i].Cells) {
				line = append(line, board.Rows[i].Cells[j])
			}
		}
		updateClues(board.ColumnClues[j], lineRuns(line))
	}
}

func lineRuns(cells []CellData) []lineRun {
	var runs []lineRun
	current := lineRun{solved: true}

	for _, cell := range cells {
		if cell.Correct {
			current.length++
			if cell.Pushed != cell.Correct {
				current.solved = false
			}
			continue
		}
		if current.length > 0 {
			runs = append(runs, current)
		}
		current = lineRun{solved: true}
	}
	if current.length > 0 {
		runs = append(runs, current)
	}
	return runs
}

func updateClues(clues []ClueData, runs []lineRun) {
	for k := range clues {
		if clues[k].Value == 0 {
			clues[k].Completed = len(runs) == 0
			continue
		}
		clues[k].Completed = k < len(runs) &&
			runs[k].length == clues[k].Value &&
			runs[k].solved
	}
}
