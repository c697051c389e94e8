package bootstrap

import "os"

// BinaryDirs returns the discovered binary directories on disk, in the
// order they are prepended to the search path: toolkit bin first, then
// the wrapper directory. Directories of dependencies that were never
// provisioned (or vanished) are left out.
func (b *Bootstrapper) BinaryDirs() []string {
	var dirs []string
	if binDir := b.findBinaryDir(b.cfg.Toolkit); binDir != "" {
		dirs = append(dirs, binDir)
	}
	if dirExists(b.cfg.Wrapper.LocalDirectory) {
		dirs = append(dirs, b.cfg.Wrapper.LocalDirectory)
	}
	return dirs
}

// ComposeSearchPath prepends each directory, in order, to the base
// search path value. Later directories end up in front, so the last
// entry of dirs has the highest lookup priority. The result is an
// explicit value for the caller to thread into the service; the
// process environment is never mutated.
func ComposeSearchPath(base string, dirs []string) string {
	composed := base
	for _, dir := range dirs {
		if composed == "" {
			composed = dir
			continue
		}
		composed = dir + string(os.PathListSeparator) + composed
	}
	return composed
}
