package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"

	"github.com/vdobler/custody"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("4"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	boxStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

// FormatSummary renders the summary statistics of a.
func FormatSummary(title string, a *Analysis) string {
	lines := []string{titleStyle.Render(title)}
	s := a.Summary
	if s.N == 0 {
		lines = append(lines, mutedStyle.Render("no observations"))
	} else {
		lines = append(lines,
			fmt.Sprintf("Observations: %d", s.N),
			fmt.Sprintf("Mean:   %g", s.Mean),
			fmt.Sprintf("Median: %s", s.Median),
			fmt.Sprintf("Mode:   %s", s.Mode),
		)
	}
	lines = append(lines, mutedStyle.Render("ranking: "+strings.Join(a.Ranking, " < ")))
	return boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// PrintSummary writes the summary block of a to w.
func PrintSummary(w io.Writer, title string, a *Analysis) error {
	_, err := fmt.Fprintln(w, FormatSummary(title, a))
	return err
}

// PrintTable writes t as a text table with one row per bin and one
// column per category. Rows and columns follow bins and categories;
// any extra values of t are appended.
func PrintTable(w io.Writer, t *custody.Table, bins, categories []string) error {
	extraBins, extraCats := t.Extra(bins, categories)
	bins = append(append([]string(nil), bins...), extraBins...)
	categories = append(append([]string(nil), categories...), extraCats...)

	if _, err := fmt.Fprintln(w, titleStyle.Render(t.Name)); err != nil {
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	header := make([]string, 0, len(categories)+2)
	header = append(header, headerStyle.Render("bin"))
	for _, c := range categories {
		header = append(header, headerStyle.Render(c))
	}
	header = append(header, headerStyle.Render("total"))
	if _, err := fmt.Fprintln(tw, strings.Join(header, "\t")+"\t"); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, b := range bins {
		row := []string{b}
		for _, c := range categories {
			row = append(row, fmt.Sprint(t.Count(b, c)))
		}
		row = append(row, fmt.Sprint(t.RowTotal(b)))
		if _, err := fmt.Fprintln(tw, strings.Join(row, "\t")+"\t"); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "total: %d\n", t.Total())
	return err
}
