package bootstrap

import (
	"archive/zip"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"
)

// provisionArchive downloads and extracts an archive dependency unless
// its local directory already exists. It returns the discovered binary
// directory, or "" when the descriptor's pattern matches nothing.
func (b *Bootstrapper) provisionArchive(ctx context.Context, desc Descriptor) (string, error) {
	if dirExists(desc.LocalDirectory) {
		log.Infof("%s already exists, skipping download", desc.Name)
		return b.findBinaryDir(desc), nil
	}

	tmpArchive := filepath.Join(b.cfg.InstallRoot, desc.Name+".zip")
	log.Infof("downloading %s from %s", desc.Name, desc.RemoteLocation)
	if err := downloadToFile(ctx, desc.RemoteLocation, tmpArchive, b.cfg.DownloadRetries); err != nil {
		return "", fmt.Errorf("download %s: %w", desc.Name, err)
	}

	log.Infof("extracting %s", desc.Name)
	if err := os.MkdirAll(desc.LocalDirectory, 0o755); err != nil {
		return "", fmt.Errorf("create %s directory: %w", desc.Name, err)
	}
	if err := extractZip(tmpArchive, desc.LocalDirectory); err != nil {
		return "", fmt.Errorf("extract %s: %w", desc.Name, err)
	}

	if err := os.Remove(tmpArchive); err != nil {
		log.Warnf("failed to remove temporary archive %s: %v", tmpArchive, err)
	}

	log.Infof("%s installed in %s", desc.Name, desc.LocalDirectory)
	return b.findBinaryDir(desc), nil
}

// findBinaryDir resolves the directory holding the dependency's
// executables. Without a pattern the dependency directory itself is the
// binary directory. A pattern that matches nothing is not fatal: later
// steps that need the directory degrade gracefully.
func (b *Bootstrapper) findBinaryDir(desc Descriptor) string {
	if desc.BinaryDirPattern == "" {
		return desc.LocalDirectory
	}

	matches, err := filepath.Glob(filepath.Join(desc.LocalDirectory, desc.BinaryDirPattern))
	if err != nil {
		log.Warnf("invalid binary directory pattern %q for %s: %v", desc.BinaryDirPattern, desc.Name, err)
		return ""
	}
	if len(matches) == 0 {
		log.Warnf("could not find extracted %s distribution directory in %s", desc.Name, desc.LocalDirectory)
		return ""
	}

	binDir := filepath.Join(matches[0], "bin")
	if !dirExists(binDir) {
		log.Warnf("binary directory does not exist: %s", binDir)
		return ""
	}
	return binDir
}

// extractZip extracts the archive at src into dest, skipping entries
// that would escape dest.
func extractZip(src, dest string) error {
	r, err := zip.OpenReader(src)
	if err != nil {
		// An insecure entry name still yields a usable reader; the
		// per-entry guard below skips the offending entries.
		if !errors.Is(err, zip.ErrInsecurePath) {
			return err
		}
	}
	defer func() {
		if cerr := r.Close(); cerr != nil {
			log.Warnf("error closing archive %s: %v", src, cerr)
		}
	}()

	for _, f := range r.File {
		rel := filepath.Clean(f.Name)
		if strings.HasPrefix(rel, "..") || filepath.IsAbs(rel) {
			log.Warnf("skipping unsafe archive entry %q", f.Name)
			continue
		}
		target := filepath.Join(dest, rel)

		if f.FileInfo().IsDir() {
			if err := os.MkdirAll(target, 0o755); err != nil {
				return err
			}
			continue
		}

		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return err
		}

		if err := extractZipFile(f, target); err != nil {
			return fmt.Errorf("extract %s: %w", f.Name, err)
		}
	}

	return nil
}

func extractZipFile(f *zip.File, target string) (err error) {
	rc, err := f.Open()
	if err != nil {
		return err
	}
	defer func() {
		if cerr := rc.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	mode := f.Mode().Perm()
	if mode == 0 {
		mode = 0o644
	}

	out, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, mode)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	_, err = io.Copy(out, rc)
	return err
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
