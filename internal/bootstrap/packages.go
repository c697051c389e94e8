package bootstrap

import (
	"context"
	"errors"
	"os"
	"os/exec"

	log "github.com/sirupsen/logrus"
)

// installPackages invokes the package manager exactly once with the
// full package list, so a failure is atomic from the caller's
// perspective. Manager output goes straight to the operator.
func (b *Bootstrapper) installPackages(ctx context.Context) error {
	if len(b.cfg.Packages) == 0 || len(b.cfg.PackageManager) == 0 {
		return nil
	}

	args := append(append([]string{}, b.cfg.PackageManager[1:]...), b.cfg.Packages...)
	log.Infof("installing packages: %v", b.cfg.Packages)

	cmd := exec.CommandContext(ctx, b.cfg.PackageManager[0], args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		return &PackageInstallError{ExitCode: exitCode, Err: err}
	}

	log.Info("packages installed successfully")
	return nil
}
