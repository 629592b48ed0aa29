package console

import (
	"strconv"
	"strings"

	mb "github.com/saeidalz13/battleship-bot/models/battleship"
)

const panelGap = "   "

// Render draws the owner's board on the left and the marks on
// the opponent board on the right. Both grids share the same
// dimension with row and column 0 used for the headers.
func Render(own, marks mb.Grid) string {
	var sb strings.Builder
	dim := len(own)

	for i := 0; i < dim; i++ {
		writePanelRow(&sb, own, i)
		sb.WriteString(panelGap)
		writePanelRow(&sb, marks, i)
		sb.WriteByte('\n')
	}
	sb.WriteByte('\n')
	return sb.String()
}

func writePanelRow(sb *strings.Builder, grid mb.Grid, i int) {
	for j := 0; j < len(grid); j++ {
		switch {
		case i == 0 && j == 0:
			sb.WriteString("  ")
		case i == 0:
			sb.WriteString(strconv.Itoa(j))
			sb.WriteByte(' ')
		case j == 0:
			sb.WriteString(strconv.Itoa(i))
			sb.WriteByte(' ')
		default:
			sb.WriteByte(grid[i][j].Symbol())
			sb.WriteByte(' ')
		}
	}
}
