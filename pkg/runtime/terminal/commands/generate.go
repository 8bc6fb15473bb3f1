package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/OKUMUKOKUMU/Weekly-Sales/pkg/export/markdown"
	reportsvc "github.com/OKUMUKOKUMU/Weekly-Sales/pkg/services/report"
	"github.com/spf13/cobra"
)

type GenerateCmd struct {
	flags  reportFlags
	outDir string
	output io.Writer
}

// NewGenerateCmd composes a profile's report and writes the document
// artifact to disk.
func NewGenerateCmd(output io.Writer) *cobra.Command {
	gc := &GenerateCmd{output: output}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the report document",
		RunE:  gc.run,
	}

	addReportFlags(cmd, &gc.flags)
	cmd.Flags().StringVar(&gc.outDir, "out", ".", "Directory to write the document into")

	return cmd
}

func (gc *GenerateCmd) run(cmd *cobra.Command, _ []string) error {
	composed, in, err := gc.flags.compose(cmd.Context())
	if err != nil {
		return err
	}

	body, err := markdown.NewRenderer().Render(composed)
	if err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}

	path := filepath.Join(gc.outDir, reportsvc.Filename(in.WeekNumber, composed.GeneratedAt))
	if err := os.WriteFile(path, body, 0o644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	fmt.Fprintf(gc.output, "Wrote %s\n", path)
	return nil
}
