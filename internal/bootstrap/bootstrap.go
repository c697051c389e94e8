package bootstrap

import (
	"context"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
)

// Bootstrapper provisions the external dependencies of the media stack
// and answers questions about their state. Every step is safe to re-run:
// existing directories are never re-downloaded, existing links never
// overwritten.
type Bootstrapper struct {
	cfg Config
}

// New returns a bootstrapper for the given configuration.
func New(cfg Config) *Bootstrapper {
	return &Bootstrapper{cfg: cfg}
}

// Config returns the configuration the bootstrapper was built with.
func (b *Bootstrapper) Config() Config {
	return b.cfg
}

// Run executes the first-setup sequence unless the bootstrap marker
// says it already completed, and writes the marker on success.
func (b *Bootstrapper) Run(ctx context.Context) error {
	if b.IsBootstrapped() {
		log.Info("first setup already completed, skipping provisioning")
		return nil
	}

	if err := b.FirstSetup(ctx); err != nil {
		return err
	}

	return b.MarkBootstrapped()
}

// FirstSetup provisions all dependencies in order: privilege check, OS
// packages, toolkit archive, permission and symlink repair, wrapper
// archive, repository clone. Download, extraction and clone failures
// are fatal; per-file link failures and patch problems are not.
func (b *Bootstrapper) FirstSetup(ctx context.Context) error {
	if err := b.ensureElevated(); err != nil {
		return err
	}

	if err := b.installPackages(ctx); err != nil {
		return err
	}

	if err := os.MkdirAll(b.cfg.InstallRoot, 0o755); err != nil {
		return err
	}

	binDir, err := b.provisionArchive(ctx, b.cfg.Toolkit)
	if err != nil {
		return err
	}
	if binDir != "" {
		b.repairToolkitLinks(binDir)
	}

	if _, err := b.provisionArchive(ctx, b.cfg.Wrapper); err != nil {
		return err
	}
	b.ensureWrapperExecutable()

	if err := b.provisionRepository(ctx, b.cfg.Repository); err != nil {
		return err
	}

	log.Info("first setup complete")
	return nil
}

// repairToolkitLinks runs one permission and symlink repair pass. The
// pass itself isolates per-file failures, so nothing here is fatal.
func (b *Bootstrapper) repairToolkitLinks(binDir string) {
	report, err := RepairBinaries(binDir, b.cfg.LinkDir)
	if err != nil {
		log.Warnf("could not verify or create symlinks: %v", err)
		return
	}

	log.Infof("symlink repair for %s: %d created, %d already present, %d failed",
		binDir, report.Created, report.AlreadyPresent, report.Failed)
	if ferr := report.Failures(); ferr != nil {
		log.Warnf("some tools could not be linked: %v", ferr)
	}
}

// ensureWrapperExecutable restores the execute bit on the wrapper
// binary, which ZIP extraction drops. Missing binary or chmod failure
// is a warning only.
func (b *Bootstrapper) ensureWrapperExecutable() {
	path := filepath.Join(b.cfg.Wrapper.LocalDirectory, b.cfg.WrapperBinaryName)
	info, err := os.Stat(path)
	if err != nil {
		log.Warnf("wrapper binary not found after extraction: %v", err)
		return
	}
	if err := os.Chmod(path, info.Mode()|0o755); err != nil {
		log.Warnf("failed to set execute permission on wrapper binary: %v", err)
		return
	}
	log.Debugf("execute permission set on %s", path)
}
