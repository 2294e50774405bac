package entity

type OutcomeStatus string

const (
	StatusInProgress OutcomeStatus = "in_progress"
	StatusWin        OutcomeStatus = "win"
	StatusDraw       OutcomeStatus = "draw"
)

// WinLines lists every winning line: rows, then columns, then diagonals.
var WinLines = [8][3]Coordinate{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

// Outcome is the result of a game after a move.
type Outcome struct {
	Status OutcomeStatus
	Winner Mark
}

func InProgress() Outcome {
	return Outcome{Status: StatusInProgress}
}

func Win(mark Mark) Outcome {
	return Outcome{Status: StatusWin, Winner: mark}
}

func Draw() Outcome {
	return Outcome{Status: StatusDraw}
}

func (that Outcome) IsTerminal() bool {
	return that.Status == StatusWin || that.Status == StatusDraw
}

func (that Outcome) IsWin() bool {
	return that.Status == StatusWin
}

func (that Outcome) IsDraw() bool {
	return that.Status == StatusDraw
}

// Evaluate checks the board for the mark that just moved.
// Only the mover can complete a line, so the other mark is never scanned.
func Evaluate(board *Board, mark Mark) Outcome {
	if HasLine(board, mark) {
		return Win(mark)
	}

	// the game will continue until all the squares are full
	if board.IsFull() {
		return Draw()
	}

	return InProgress()
}

// HasLine reports whether any winning line is fully held by mark.
func HasLine(board *Board, mark Mark) bool {
	if mark == Empty {
		return false
	}

	for _, line := range WinLines {
		a, b, c := board.At(line[0].Row, line[0].Col), board.At(line[1].Row, line[1].Col), board.At(line[2].Row, line[2].Col)
		if a.Mark == mark && b.Mark == mark && c.Mark == mark {
			return true
		}
	}

	return false
}
