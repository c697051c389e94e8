package cmd

import (
	"context"

	"github.com/kardianos/service"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func (p *program) Start(service.Service) error {
	// Start should not block. Do the actual work async.
	log.Info("starting amdweb service")
	go func() {
		if err := runUp(p.ctx); err != nil {
			log.Errorf("amdweb service stopped with error: %v", err)
		}
	}()
	return nil
}

func (p *program) Stop(service.Service) error {
	p.cancel()
	return nil
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "runs amdweb as a service",
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

		if err := s.Run(); err != nil {
			return err
		}

		cmd.Println("amdweb service is running")
		return nil
	},
}

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "starts the amdweb service",
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

		if err := s.Start(); err != nil {
			return err
		}

		cmd.Println("amdweb service has been started")
		return nil
	},
}

var stopCmd = &cobra.Command{
	Use:   "stop",
	Short: "stops the amdweb service",
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

		if err := s.Stop(); err != nil {
			return err
		}

		cmd.Println("amdweb service has been stopped")
		return nil
	},
}

var restartCmd = &cobra.Command{
	Use:   "restart",
	Short: "restarts the amdweb service",
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

		if err := s.Restart(); err != nil {
			return err
		}

		cmd.Println("amdweb service has been restarted")
		return nil
	},
}
