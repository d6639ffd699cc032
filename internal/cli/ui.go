package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/katalvlaran/shortpath/johnson"
)

var (
	colorCyan  = lipgloss.Color("36")
	colorGreen = lipgloss.Color("35")
	colorRed   = lipgloss.Color("167")
	colorGray  = lipgloss.Color("245")
	colorDim   = lipgloss.Color("240")

	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleFailure = lipgloss.NewStyle().Foreground(colorRed)
)

func printTitle(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleTitle.Render(fmt.Sprintf(format, args...)))
}

func printSuccess(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleSuccess.Render("✓ "+fmt.Sprintf(format, args...)))
}

func printFailure(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleFailure.Render("✗ "+fmt.Sprintf(format, args...)))
}

// renderResults draws up to limit results (0 = all) as a rounded table.
// Negative distances are highlighted.
func renderResults(res johnson.Results[string, int64], limit int) string {
	if limit <= 0 || limit > len(res) {
		limit = len(res)
	}

	rows := make([][]string, 0, limit)
	for _, r := range res[:limit] {
		rows = append(rows, []string{
			r.Source,
			r.Target,
			strconv.FormatInt(r.Distance, 10),
			strings.Join(r.Path, " → "),
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	cell := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("From", "To", "Distance", "Path").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle.Padding(0, 1)
			}
			if col == 2 && row < len(res) && res[row].Distance < 0 {
				return cell.Foreground(colorRed)
			}
			return cell
		})

	return t.Render()
}
