package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// boardFrom builds a board from a row-major layout where "" is an empty cell.
func boardFrom(t *testing.T, layout [9]Mark) *Board {
	t.Helper()

	board := NewBoard()
	for i, mark := range layout {
		if mark == Empty {
			continue
		}
		cell := board.At(i/BoardSize, i%BoardSize)
		require.NoError(t, board.Set(cell.Ref, mark))
	}

	return board
}

func TestEvaluate(t *testing.T) {
	const (
		x = MarkX
		o = MarkO
		e = Empty
	)

	tests := []struct {
		name   string
		layout [9]Mark
		mover  Mark
		want   Outcome
	}{
		{
			name:   "X wins - first row",
			layout: [9]Mark{x, x, x, o, o, e, e, e, e},
			mover:  x,
			want:   Win(x),
		},
		{
			name:   "O wins - second column",
			layout: [9]Mark{x, o, x, e, o, e, x, o, e},
			mover:  o,
			want:   Win(o),
		},
		{
			name:   "X wins - main diagonal",
			layout: [9]Mark{x, o, e, o, x, e, e, e, x},
			mover:  x,
			want:   Win(x),
		},
		{
			name:   "O wins - anti-diagonal",
			layout: [9]Mark{x, x, o, e, o, e, o, x, e},
			mover:  o,
			want:   Win(o),
		},
		{
			name:   "X wins on the last cell",
			layout: [9]Mark{x, o, x, o, x, o, o, x, x},
			mover:  x,
			want:   Win(x),
		},
		{
			name:   "Draw - full board without a line",
			layout: [9]Mark{x, o, x, x, o, o, o, x, x},
			mover:  x,
			want:   Draw(),
		},
		{
			name:   "In progress - empty cells remain",
			layout: [9]Mark{x, o, e, e, x, e, e, e, o},
			mover:  o,
			want:   InProgress(),
		},
		{
			name:   "Only the mover is checked",
			layout: [9]Mark{x, x, x, o, o, e, e, e, e},
			mover:  o,
			want:   InProgress(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Given: a board in the described position
			board := boardFrom(t, tt.layout)

			// When: the outcome is evaluated for the mover
			got := Evaluate(board, tt.mover)

			// Then: it matches the expected outcome
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWinLines(t *testing.T) {
	seen := make(map[[3]Coordinate]bool, len(WinLines))

	for _, line := range WinLines {
		assert.False(t, seen[line], "duplicate line %v", line)
		seen[line] = true

		for _, coord := range line {
			assert.GreaterOrEqual(t, coord.Row, 0)
			assert.Less(t, coord.Row, BoardSize)
			assert.GreaterOrEqual(t, coord.Col, 0)
			assert.Less(t, coord.Col, BoardSize)
		}
	}

	assert.Len(t, seen, 8)
}

func TestHasLine_EmptyMark(t *testing.T) {
	// Given: an empty board where every line is made of empty cells
	board := NewBoard()

	// Then: Empty never counts as a winning mark
	assert.False(t, HasLine(board, Empty))
}

func TestOutcome_Predicates(t *testing.T) {
	assert.False(t, InProgress().IsTerminal())
	assert.True(t, Win(MarkX).IsTerminal())
	assert.True(t, Win(MarkX).IsWin())
	assert.True(t, Draw().IsTerminal())
	assert.True(t, Draw().IsDraw())
	assert.False(t, Draw().IsWin())
}
