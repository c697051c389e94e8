package bootstrap

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-multierror"
	log "github.com/sirupsen/logrus"
)

// Report summarizes one repair pass over a binary directory.
type Report struct {
	Created        int
	AlreadyPresent int
	Failed         int

	failures *multierror.Error
}

// Failures returns the per-file errors of the pass, or nil when every
// file was linked or already present.
func (r Report) Failures() error {
	return r.failures.ErrorOrNil()
}

// RepairBinaries makes every regular file in binDir executable and
// links each executable into linkDir under the same name. Existing
// entries in linkDir are never overwritten. Per-file failures are
// recorded in the report and do not stop the pass, so re-running after
// a partial failure creates exactly the links that are still missing.
func RepairBinaries(binDir, linkDir string) (Report, error) {
	var report Report

	entries, err := os.ReadDir(binDir)
	if err != nil {
		return report, fmt.Errorf("read binary directory %s: %w", binDir, err)
	}

	// ZIP extraction does not preserve execute permissions, so repair
	// them before looking for executables.
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		path := filepath.Join(binDir, entry.Name())
		info, err := os.Stat(path)
		if err != nil {
			report.Failed++
			report.failures = multierror.Append(report.failures, fmt.Errorf("stat %s: %w", entry.Name(), err))
			continue
		}
		if err := os.Chmod(path, info.Mode()|0o755); err != nil {
			report.Failed++
			report.failures = multierror.Append(report.failures, fmt.Errorf("chmod %s: %w", entry.Name(), err))
		}
	}

	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		path := filepath.Join(binDir, entry.Name())
		info, err := os.Stat(path)
		if err != nil || info.Mode()&0o111 == 0 {
			continue
		}

		linkPath := filepath.Join(linkDir, entry.Name())
		if _, err := os.Lstat(linkPath); err == nil {
			log.Debugf("link already exists: %s", linkPath)
			report.AlreadyPresent++
			continue
		}

		source, err := filepath.Abs(path)
		if err != nil {
			report.Failed++
			report.failures = multierror.Append(report.failures, fmt.Errorf("resolve %s: %w", entry.Name(), err))
			continue
		}

		if err := os.Symlink(source, linkPath); err != nil {
			report.Failed++
			report.failures = multierror.Append(report.failures, fmt.Errorf("link %s: %w", entry.Name(), err))
			continue
		}

		log.Infof("created symlink %s -> %s", linkPath, source)
		report.Created++
	}

	return report, nil
}
