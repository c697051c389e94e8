package bootstrap

import (
	"errors"
	"fmt"
)

// ErrNotElevated is returned when the process lacks root privileges.
var ErrNotElevated = errors.New("amdweb must be run as root")

// PackageInstallError reports a failed package manager invocation.
type PackageInstallError struct {
	ExitCode int
	Err      error
}

func (e *PackageInstallError) Error() string {
	return fmt.Sprintf("package installation failed with exit code %d: %v", e.ExitCode, e.Err)
}

func (e *PackageInstallError) Unwrap() error {
	return e.Err
}

// CloneError reports a failed repository clone.
type CloneError struct {
	Repository string
	Output     string
	Err        error
}

func (e *CloneError) Error() string {
	if e.Output != "" {
		return fmt.Sprintf("clone %s: %v: %s", e.Repository, e.Err, e.Output)
	}
	return fmt.Sprintf("clone %s: %v", e.Repository, e.Err)
}

func (e *CloneError) Unwrap() error {
	return e.Err
}
