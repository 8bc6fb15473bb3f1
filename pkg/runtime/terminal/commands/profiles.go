package commands

import (
	"fmt"
	"io"

	"github.com/OKUMUKOKUMU/Weekly-Sales/pkg/services/config"
	"github.com/spf13/cobra"
)

type ProfilesCmd struct {
	profilesPath string
	output       io.Writer
}

// NewProfilesCmd lists the saved input profiles in a profiles file.
func NewProfilesCmd(output io.Writer) *cobra.Command {
	pc := &ProfilesCmd{output: output}
	cmd := &cobra.Command{
		Use:   "profiles",
		Short: "List saved report input profiles",
		RunE:  pc.run,
	}

	cmd.Flags().StringVar(&pc.profilesPath, "file", "sales-profiles.ini", "Path to the profiles file")

	return cmd
}

func (pc *ProfilesCmd) run(cmd *cobra.Command, _ []string) error {
	registry, err := config.NewRegistry(pc.profilesPath)
	if err != nil {
		return fmt.Errorf("failed to open profiles file: %w", err)
	}

	profiles, err := registry.GetProfiles(cmd.Context())
	if err != nil {
		return err
	}

	for _, p := range profiles {
		fmt.Fprintln(pc.output, p)
	}
	return nil
}
