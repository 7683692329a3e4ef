// Package report prints the aggregated referendum results as a terminal
// table.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"scrutin/internal/aggregate"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	codeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
)

var columns = []string{"code_reg", "name_reg", "Registered", "Abstentions", "Null", "Choice A", "Choice B"}

// Fprint writes the results table to w, one row per region.
func Fprint(w io.Writer, results []aggregate.RegionResult) error {
	widths := make([]int, len(columns))
	for i, c := range columns {
		widths[i] = len(c)
	}
	cells := make([][]string, len(results))
	for i, r := range results {
		cells[i] = []string{
			r.RegionCode,
			r.RegionName,
			strconv.Itoa(r.Registered),
			strconv.Itoa(r.Abstentions),
			strconv.Itoa(r.NullBallots),
			strconv.Itoa(r.ChoiceA),
			strconv.Itoa(r.ChoiceB),
		}
		for j, cell := range cells[i] {
			if len(cell) > widths[j] {
				widths[j] = len(cell)
			}
		}
	}

	var b strings.Builder
	for j, c := range columns {
		if j > 0 {
			b.WriteString("  ")
		}
		b.WriteString(headerStyle.Render(pad(c, widths[j], j >= 2)))
	}
	b.WriteByte('\n')
	for _, row := range cells {
		for j, cell := range row {
			if j > 0 {
				b.WriteString("  ")
			}
			s := pad(cell, widths[j], j >= 2)
			if j == 0 {
				s = codeStyle.Render(s)
			}
			b.WriteString(s)
		}
		b.WriteByte('\n')
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// pad left-aligns text columns and right-aligns numeric ones.
func pad(s string, width int, numeric bool) string {
	if numeric {
		return fmt.Sprintf("%*s", width, s)
	}
	return fmt.Sprintf("%-*s", width, s)
}
