package bootstrap

import (
	"os"
	"path/filepath"
)

const markerContent = "This file marks that first setup has been completed.\n"

// MarkerPath returns the location of the bootstrap marker file.
func (b *Bootstrapper) MarkerPath() string {
	return filepath.Join(b.cfg.InstallRoot, b.cfg.MarkerName)
}

// IsBootstrapped reports whether first setup already completed. Only
// the marker file is consulted; dependency directories deleted after a
// completed first setup do not reset it.
func (b *Bootstrapper) IsBootstrapped() bool {
	return fileExists(b.MarkerPath())
}

// MarkBootstrapped records a completed first setup.
func (b *Bootstrapper) MarkBootstrapped() error {
	if err := os.MkdirAll(b.cfg.InstallRoot, 0o755); err != nil {
		return err
	}
	return os.WriteFile(b.MarkerPath(), []byte(markerContent), 0o644)
}
