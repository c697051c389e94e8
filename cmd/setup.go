package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/amdwebio/amdweb/internal/bootstrap"
)

var forceSetup bool

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "run the first-time provisioning sequence without starting the web UI",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := initCommand(cmd); err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()
		SetupCloseHandler(ctx, cancel)

		b := bootstrap.New(buildConfig())

		if b.IsBootstrapped() && !forceSetup {
			cmd.Println("First setup already completed, nothing to do. Use --force to re-run it.")
			return nil
		}

		if err := b.FirstSetup(ctx); err != nil {
			return err
		}

		if !b.IsBootstrapped() {
			if err := b.MarkBootstrapped(); err != nil {
				return err
			}
		}

		cmd.Println("First setup complete.")
		return nil
	},
}

func init() {
	setupCmd.Flags().BoolVar(&forceSetup, "force", false, "re-run provisioning even if the bootstrap marker exists. Existing dependency directories are kept, missing ones are repaired")
}
