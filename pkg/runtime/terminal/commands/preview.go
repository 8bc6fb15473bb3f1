package commands

import (
	"github.com/OKUMUKOKUMU/Weekly-Sales/pkg/export/terminal"
	reportsvc "github.com/OKUMUKOKUMU/Weekly-Sales/pkg/services/report"
	"github.com/spf13/cobra"
)

type PreviewCmd struct {
	flags    reportFlags
	reporter *terminal.Reporter
}

// NewPreviewCmd renders a profile's report to the console without writing
// an artifact.
func NewPreviewCmd(reporter *terminal.Reporter) *cobra.Command {
	pc := &PreviewCmd{reporter: reporter}
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Render a report to the console",
		RunE:  pc.run,
	}

	addReportFlags(cmd, &pc.flags)

	return cmd
}

func (pc *PreviewCmd) run(cmd *cobra.Command, _ []string) error {
	composed, _, err := pc.flags.compose(cmd.Context())
	if err != nil {
		return err
	}
	return pc.reporter.Handle(&composed)
}

func addReportFlags(cmd *cobra.Command, f *reportFlags) {
	cmd.Flags().StringVar(&f.profilesPath, "file", "sales-profiles.ini", "Path to the profiles file")
	cmd.Flags().StringVar(&f.profile, "profile", "", "Profile to report on")
	cmd.Flags().StringVar(&f.currency, "currency", reportsvc.DefaultCurrency, "Currency prefix for monetary values")
	cmd.Flags().StringVar(&f.shortSupply, "short-supply", "", "Path to the short supplied items attachment")
	cmd.Flags().StringVar(&f.marketReturns, "market-returns", "", "Path to the market returns attachment")

	_ = cmd.MarkFlagRequired("profile")
}
