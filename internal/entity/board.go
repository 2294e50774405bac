package entity

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

// Mark is the occupancy state of a single cell.
type Mark string

const (
	Empty Mark = ""
	MarkX Mark = "X"
	MarkO Mark = "O"
)

const BoardSize = 3

var ErrInvalidMark = errors.New("invalid mark")

// Coordinate addresses a cell by row and column.
type Coordinate struct {
	Row int
	Col int
}

// Cell holds its reference label and current mark.
type Cell struct {
	Ref  string
	Mark Mark
}

func (that Cell) IsEmpty() bool {
	return that.Mark == Empty
}

var (
	rowLabels = [BoardSize]byte{'a', 'b', 'c'}
	colLabels = [BoardSize]byte{'1', '2', '3'}

	// refIndex is fixed at init and never mutated afterwards.
	refIndex = buildRefIndex()
)

func buildRefIndex() map[string]Coordinate {
	index := make(map[string]Coordinate, BoardSize*BoardSize)
	for row, r := range rowLabels {
		for col, c := range colLabels {
			index[string([]byte{r, c})] = Coordinate{Row: row, Col: col}
		}
	}

	return index
}

// Board is a 3x3 grid of cells.
type Board struct {
	cells [BoardSize][BoardSize]Cell
}

func NewBoard() *Board {
	board := &Board{}
	for ref, coord := range refIndex {
		board.cells[coord.Row][coord.Col] = Cell{Ref: ref, Mark: Empty}
	}

	return board
}

// Coordinate resolves a reference such as "b2" to its position on the board.
func (that *Board) Coordinate(ref string) (Coordinate, bool) {
	coord, ok := refIndex[ref]
	return coord, ok
}

// Set marks the referenced cell if it is still empty.
func (that *Board) Set(ref string, mark Mark) error {
	if mark != MarkX && mark != MarkO {
		return fmt.Errorf("%w: %q", ErrInvalidMark, mark)
	}

	coord, ok := that.Coordinate(ref)
	if !ok {
		return fmt.Errorf("%w: cell %q", apperror.ErrOutOfBounds, ref)
	}

	cell := &that.cells[coord.Row][coord.Col]
	if !cell.IsEmpty() {
		return fmt.Errorf("%w: cell %s", apperror.ErrCellOccupied, ref)
	}

	cell.Mark = mark

	return nil
}

func (that *Board) Get(ref string) (Mark, error) {
	coord, ok := that.Coordinate(ref)
	if !ok {
		return Empty, fmt.Errorf("%w: cell %q", apperror.ErrOutOfBounds, ref)
	}

	return that.cells[coord.Row][coord.Col].Mark, nil
}

// At returns the cell at the given row and column. It panics on coordinates outside the board.
func (that *Board) At(row, col int) Cell {
	return that.cells[row][col]
}

func (that *Board) IsFull() bool {
	for _, row := range that.cells {
		for _, cell := range row {
			if cell.IsEmpty() {
				return false
			}
		}
	}

	return true
}

// Cells returns a copy of the grid.
func (that *Board) Cells() [BoardSize][BoardSize]Cell {
	return that.cells
}
