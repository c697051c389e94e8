package cmd

import (
	"context"
	"os"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/amdwebio/amdweb/internal/bootstrap"
	"github.com/amdwebio/amdweb/internal/server"
)

var upCmd = &cobra.Command{
	Use:   "up",
	Short: "provision the media stack if needed and start the web UI",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := initCommand(cmd); err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()
		SetupCloseHandler(ctx, cancel)

		return runUp(ctx)
	},
}

// runUp is the main control flow: first setup gated by the marker, then
// search path composition and service launch on every start. The
// composed path must be rebuilt even when setup is skipped, because
// this process does not inherit it from a previous run.
func runUp(ctx context.Context) error {
	b := bootstrap.New(buildConfig())

	if err := b.Run(ctx); err != nil {
		return err
	}

	searchPath := bootstrap.ComposeSearchPath(os.Getenv("PATH"), b.BinaryDirs())
	log.Debugf("composed search path: %s", searchPath)

	srv := server.New(server.Config{
		Host:       host,
		Port:       port,
		SearchPath: searchPath,
	}, b)

	go func() {
		<-ctx.Done()
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := srv.Stop(shutdownCtx); err != nil {
			log.Errorf("error stopping web UI: %v", err)
		}
	}()

	return srv.Start()
}
