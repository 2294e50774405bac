package console

import (
	"strings"
	"unicode/utf8"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

const (
	columnWidth = 7
	boardWidth  = 9 * entity.BoardSize
)

// RenderBoard formats the grid as text. Empty cells show their reference as a hint.
func RenderBoard(cells [entity.BoardSize][entity.BoardSize]entity.Cell) string {
	var sb strings.Builder

	separator := strings.Repeat("-", boardWidth+4) + "\n"

	sb.WriteString("\n")
	for _, row := range cells {
		sb.WriteString(separator)
		for _, cell := range row {
			label := cell.Ref
			if !cell.IsEmpty() {
				label = string(cell.Mark)
			}

			sb.WriteString("| ")
			sb.WriteString(center(label, columnWidth))
			sb.WriteString(" ")
		}
		sb.WriteString("|\n")
	}
	sb.WriteString(separator)

	return sb.String()
}

// center pads s to width, putting the odd space on the right.
func center(s string, width int) string {
	pad := width - utf8.RuneCountInString(s)
	if pad <= 0 {
		return s
	}

	left := pad / 2

	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}
