package bootstrap

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"

	goversion "github.com/hashicorp/go-version"
	log "github.com/sirupsen/logrus"
)

// goVersionLine matches a three-component toolchain pin at the start of
// a line, capturing the two-component prefix it is truncated to.
var goVersionLine = regexp.MustCompile(`(?m)^go (\d+\.\d+)\.\d+`)

// provisionRepository clones a git dependency unless its local
// directory already exists, then truncates the go.mod toolchain pin so
// older Go toolchains accept the module. Patch problems are warnings;
// only the clone itself is fatal.
func (b *Bootstrapper) provisionRepository(ctx context.Context, desc Descriptor) error {
	if dirExists(desc.LocalDirectory) {
		log.Infof("%s already exists, skipping clone", desc.Name)
		return nil
	}

	log.Infof("cloning %s from %s", desc.Name, desc.RemoteLocation)
	cmd := exec.CommandContext(ctx, b.cfg.GitBinary, "clone", desc.RemoteLocation, desc.LocalDirectory)
	if output, err := cmd.CombinedOutput(); err != nil {
		return &CloneError{
			Repository: desc.RemoteLocation,
			Output:     string(bytes.TrimSpace(output)),
			Err:        err,
		}
	}
	log.Infof("%s cloned into %s", desc.Name, desc.LocalDirectory)

	changed, err := patchGoVersionPin(filepath.Join(desc.LocalDirectory, "go.mod"))
	if err != nil {
		log.Warnf("could not patch go.mod of %s: %v", desc.Name, err)
		return nil
	}
	if changed {
		log.Infof("truncated Go toolchain pin in %s go.mod", desc.Name)
	}

	return nil
}

// patchGoVersionPin rewrites a `go MAJOR.MINOR.PATCH` line in the file
// at path to `go MAJOR.MINOR`. A missing file or a pin that is already
// two-component leaves the file untouched.
func patchGoVersionPin(path string) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}

	m := goVersionLine.FindSubmatch(data)
	if m == nil {
		return false, nil
	}
	if _, err := goversion.NewVersion(string(m[1])); err != nil {
		return false, fmt.Errorf("invalid truncated version %q: %w", m[1], err)
	}

	fixed := goVersionLine.ReplaceAll(data, []byte("go $1"))
	if bytes.Equal(fixed, data) {
		return false, nil
	}

	mode := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}
	if err := os.WriteFile(path, fixed, mode); err != nil {
		return false, err
	}

	return true, nil
}
