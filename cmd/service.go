package cmd

import (
	"context"
	"fmt"

	"github.com/kardianos/service"
	"github.com/spf13/cobra"
)

var serviceCmd = &cobra.Command{
	Use:   "service",
	Short: "manage the amdweb system service",
}

var serviceName string

type program struct {
	ctx    context.Context
	cancel context.CancelFunc
}

func init() {
	serviceCmd.PersistentFlags().StringVarP(&serviceName, "service", "s", "amdweb", "amdweb system service name")
}

func newProgram(ctx context.Context, cancel context.CancelFunc) *program {
	return &program{ctx: ctx, cancel: cancel}
}

func newSVCConfig() *service.Config {
	return &service.Config{
		Name:        serviceName,
		DisplayName: "AMDWeb",
		Description: "Apple Music downloader provisioning and web UI service",
		Option:      make(service.KeyValue),
	}
}

func newSVC(prg *program, conf *service.Config) (service.Service, error) {
	s, err := service.New(prg, conf)
	if err != nil {
		return nil, fmt.Errorf("create service: %w", err)
	}
	return s, nil
}

// buildServiceArguments reproduces the current flag values in the
// installed service invocation.
func buildServiceArguments() []string {
	args := []string{
		"service",
		"run",
		"--install-root", installRoot,
		"--link-dir", linkDir,
		"--host", host,
		"--port", fmt.Sprintf("%d", port),
		"--log-level", logLevel,
	}

	if logFile != "" {
		args = append(args, "--log-file", logFile)
	}

	return args
}
