package cmd

import (
	"context"
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "installs amdweb as a system service",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := initCommand(cmd); err != nil {
			return err
		}

		svcConfig := newSVCConfig()
		svcConfig.Arguments = buildServiceArguments()

		if runtime.GOOS == "linux" {
			// Respected only by systemd systems
			svcConfig.Dependencies = []string{"After=network.target"}
		}

		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		s, err := newSVC(newProgram(ctx, cancel), svcConfig)
		if err != nil {
			return err
		}

		if err := s.Install(); err != nil {
			return fmt.Errorf("install service: %w", err)
		}

		cmd.Println("amdweb service has been installed")
		return nil
	},
}

var uninstallCmd = &cobra.Command{
	Use:   "uninstall",
	Short: "uninstalls the amdweb service from the system",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := initCommand(cmd); err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		s, err := newSVC(newProgram(ctx, cancel), newSVCConfig())
		if err != nil {
			return err
		}

		if err := s.Uninstall(); err != nil {
			return fmt.Errorf("uninstall service: %w", err)
		}

		cmd.Println("amdweb service has been uninstalled")
		return nil
	},
}
