package cmd

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/amdwebio/amdweb/internal/bootstrap"
	"github.com/amdwebio/amdweb/util"
)

const envVarPrefix = "AMD_"

var (
	installRoot string
	linkDir     string
	host        string
	port        int
	logLevel    string
	logFile     string

	rootCmd = &cobra.Command{
		Use:          "amdweb",
		Short:        "Provisions the Apple Music downloader stack and serves its web UI",
		SilenceUsage: true,
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&installRoot, "install-root", "/var/lib/amdweb", "directory the external dependencies are provisioned into")
	rootCmd.PersistentFlags().StringVar(&linkDir, "link-dir", "/usr/local/bin", "system-wide binary directory tools are linked into")
	rootCmd.PersistentFlags().StringVar(&host, "host", "0.0.0.0", "address the web UI binds to")
	rootCmd.PersistentFlags().IntVar(&port, "port", 5000, "port the web UI listens on")
	rootCmd.PersistentFlags().StringVarP(&logLevel, "log-level", "l", "info", "sets the amdweb log level")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", util.LogConsole, "sets the amdweb log path. If console is specified the log will be output to stdout")

	rootCmd.AddCommand(upCmd)
	rootCmd.AddCommand(setupCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(serviceCmd)
	rootCmd.AddCommand(versionCmd)

	serviceCmd.AddCommand(runCmd, startCmd, stopCmd, restartCmd)
	serviceCmd.AddCommand(installCmd, uninstallCmd)
}

// buildConfig derives the bootstrap configuration from the CLI flags.
func buildConfig() bootstrap.Config {
	cfg := bootstrap.NewConfig(installRoot)
	cfg.LinkDir = linkDir
	return cfg
}

// initCommand applies environment variable overrides and sets up
// logging; every leaf command calls it first.
func initCommand(cmd *cobra.Command) error {
	SetFlagsFromEnvVars(rootCmd)
	cmd.SetOut(cmd.OutOrStdout())
	return util.InitLog(logLevel, logFile)
}

// SetupCloseHandler cancels the context on SIGINT or SIGTERM.
func SetupCloseHandler(ctx context.Context, cancel context.CancelFunc) {
	termCh := make(chan os.Signal, 1)
	signal.Notify(termCh, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case <-ctx.Done():
		case <-termCh:
		}

		log.Info("shutdown signal received")
		cancel()
	}()
}

// SetFlagsFromEnvVars reads and updates flag values from environment variables with prefix AMD_
func SetFlagsFromEnvVars(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.VisitAll(func(f *pflag.Flag) {
		envVar := FlagNameToEnvVar(f.Name, envVarPrefix)

		if value, present := os.LookupEnv(envVar); present {
			if err := flags.Set(f.Name, value); err != nil {
				log.Infof("unable to configure flag %s using variable %s, err: %v", f.Name, envVar, err)
			}
		}
	})
}

// FlagNameToEnvVar converts flag name to environment var name adding a prefix,
// replacing dashes and making all uppercase (e.g. install-root is converted to AMD_INSTALL_ROOT)
func FlagNameToEnvVar(cmdFlag string, prefix string) string {
	parsed := strings.ReplaceAll(cmdFlag, "-", "_")
	upper := strings.ToUpper(parsed)
	return prefix + upper
}
