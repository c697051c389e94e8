package cmd

import (
	"github.com/spf13/cobra"

	"github.com/amdwebio/amdweb/internal/bootstrap"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "show the provisioning state of the media stack",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := initCommand(cmd); err != nil {
			return err
		}

		status := bootstrap.New(buildConfig()).Status()

		if status.Bootstrapped {
			cmd.Printf("Bootstrapped: yes (%s)\n", status.MarkerPath)
		} else {
			cmd.Println("Bootstrapped: no")
		}

		cmd.Println("Dependencies:")
		for _, dep := range status.Dependencies {
			state := "missing"
			if dep.Present {
				state = "installed"
			}
			cmd.Printf("  %-25s %-10s %s\n", dep.Name, state, dep.Directory)
		}

		if len(status.BinaryDirs) > 0 {
			cmd.Println("Binary directories:")
			for _, dir := range status.BinaryDirs {
				cmd.Printf("  %s\n", dir)
			}
		}

		return nil
	},
}
