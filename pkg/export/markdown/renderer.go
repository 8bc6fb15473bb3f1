package markdown

import (
	"fmt"
	"strings"

	"github.com/OKUMUKOKUMU/Weekly-Sales/pkg/models/domain"
)

// Renderer serializes a composed report to markdown: the downloadable
// document artifact with headings, paragraphs, bullets and grid tables.
type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

func (r *Renderer) Render(report domain.GeneratedReport) ([]byte, error) {
	var b strings.Builder
	for i, block := range report.Blocks {
		switch block.Kind {
		case domain.BlockHeading:
			fmt.Fprintf(&b, "%s %s\n\n", strings.Repeat("#", block.Level+1), block.Text)
		case domain.BlockParagraph:
			if block.Centered {
				fmt.Fprintf(&b, "<p align=\"center\">%s</p>\n\n", block.Text)
			} else {
				fmt.Fprintf(&b, "%s\n\n", block.Text)
			}
		case domain.BlockBullet:
			fmt.Fprintf(&b, "%s- %s\n", strings.Repeat("  ", block.Level-1), block.Text)
			if last := i+1 == len(report.Blocks); last || report.Blocks[i+1].Kind != domain.BlockBullet {
				b.WriteString("\n")
			}
		case domain.BlockTable:
			renderTable(&b, block.Table)
		default:
			return nil, fmt.Errorf("unknown block kind %q", block.Kind)
		}
	}
	return []byte(b.String()), nil
}

func renderTable(b *strings.Builder, t *domain.Table) {
	if t == nil || len(t.Header) == 0 {
		return
	}
	fmt.Fprintf(b, "| %s |\n", strings.Join(t.Header, " | "))
	sep := make([]string, len(t.Header))
	for i := range sep {
		sep[i] = "---"
	}
	fmt.Fprintf(b, "| %s |\n", strings.Join(sep, " | "))
	for _, row := range t.Rows {
		fmt.Fprintf(b, "| %s |\n", strings.Join(row, " | "))
	}
	b.WriteString("\n")
}
