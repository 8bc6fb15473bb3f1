package terminal

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/OKUMUKOKUMU/Weekly-Sales/pkg/models/domain"
)

// Reporter outputs a composed report to the console in a formatted text
// form, for the CLI preview command.
type Reporter struct {
	writer io.Writer
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{writer: writer}
}

func (c *Reporter) Handle(report *domain.GeneratedReport) error {
	funcMap := template.FuncMap{
		"render": renderBlock,
	}

	tmpl := `{{range .Blocks}}{{render .}}{{end}}`

	t, err := template.New("report").Funcs(funcMap).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, report)
}

func renderBlock(b domain.Block) string {
	switch b.Kind {
	case domain.BlockHeading:
		if b.Level == 0 {
			return fmt.Sprintf("%s\n%s\n", b.Text, strings.Repeat("=", len(b.Text)))
		}
		return fmt.Sprintf("\n=== %s ===\n", b.Text)
	case domain.BlockBullet:
		return fmt.Sprintf("%s- %s\n", strings.Repeat("  ", b.Level-1), b.Text)
	case domain.BlockTable:
		return renderTable(b.Table)
	default:
		return b.Text + "\n"
	}
}

func renderTable(t *domain.Table) string {
	if t == nil || len(t.Header) == 0 {
		return ""
	}

	widths := make([]int, len(t.Header))
	for i, h := range t.Header {
		widths[i] = len(h)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	var b strings.Builder
	b.WriteString(separator(widths))
	b.WriteString(formatRow(t.Header, widths))
	b.WriteString(separator(widths))
	for _, row := range t.Rows {
		b.WriteString(formatRow(row, widths))
	}
	b.WriteString(separator(widths))
	return b.String()
}

func formatRow(cells []string, widths []int) string {
	parts := make([]string, len(widths))
	for i := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		parts[i] = fmt.Sprintf(" %-*s ", widths[i], cell)
	}
	return "|" + strings.Join(parts, "|") + "|\n"
}

func separator(widths []int) string {
	parts := make([]string, len(widths))
	for i, w := range widths {
		parts[i] = strings.Repeat("-", w+2)
	}
	return "+" + strings.Join(parts, "+") + "+\n"
}
