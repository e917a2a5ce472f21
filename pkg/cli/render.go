package cli

import (
	"fmt"
	"strings"

	"github.com/convox/stdcli"
	"github.com/fatih/color"
	"github.com/freshhuk/numbersort/pkg/structs"
)

// 10 values per row, matching the original grid
const renderColumns = 10

var swapColor = color.New(color.FgYellow, color.Bold)

// renderSequence prints one frame of the grid. The cells at i and j are
// highlighted; pass -1 to highlight nothing.
func renderSequence(c *stdcli.Context, seq structs.Sequence, i, j int) {
	var b strings.Builder

	for n, v := range seq {
		cell := fmt.Sprintf("%4d", v)

		if n == i || n == j {
			cell = swapColor.Sprint(cell)
		}

		b.WriteString(cell)

		if (n+1)%renderColumns == 0 || n == len(seq)-1 {
			b.WriteString("\n")
		} else {
			b.WriteString(" ")
		}
	}

	b.WriteString("\n")

	c.Writef("%s", b.String())
}
