package bootstrap

import "path/filepath"

// Kind describes how a dependency is delivered.
type Kind string

const (
	// KindArchive is a ZIP archive downloaded over HTTP.
	KindArchive Kind = "archive"
	// KindGit is a git repository cloned from a remote.
	KindGit Kind = "git"
)

// Descriptor describes one external dependency of the media stack.
type Descriptor struct {
	// Name identifies the dependency in logs and temp file names.
	Name string
	// Kind selects the provisioning strategy.
	Kind Kind
	// RemoteLocation is the archive URL or the repository address.
	RemoteLocation string
	// LocalDirectory is the absolute directory the dependency is
	// provisioned into. Its existence is treated as proof that
	// provisioning completed.
	LocalDirectory string
	// BinaryDirPattern, when set, is a glob (relative to
	// LocalDirectory) matching the extracted distribution directory
	// whose bin/ subdirectory holds the tools.
	BinaryDirPattern string
}

const (
	defaultLinkDir     = "/usr/local/bin"
	defaultMarkerName  = "firstrun"
	wrapperBinaryName  = "wrapper"
	toolkitArchiveURL  = "https://www.bok.net/Bento4/binaries/Bento4-SDK-1-6-0-641.x86_64-unknown-linux.zip"
	wrapperArchiveURL  = "https://github.com/WorldObservationLog/wrapper/releases/download/Wrapper.x86_64.0df45b5/Wrapper.x86_64.0df45b5.zip"
	downloaderRepoURL  = "https://github.com/zhaarey/apple-music-downloader"
	toolkitBinPattern  = "Bento4*"
	toolkitDirName     = "bento4"
	wrapperDirName     = "wrapper"
	downloaderDirName  = "apple-music-downloader"
)

// Config carries everything the bootstrapper needs. All external
// locations are plain values so tests can point them at fixtures.
type Config struct {
	// InstallRoot is the directory all dependencies live under.
	InstallRoot string
	// LinkDir is the system-wide binary directory tools are linked into.
	LinkDir string
	// Packages is the OS package list installed on first setup.
	Packages []string
	// PackageManager is the install command prefix, e.g.
	// {"apt-get", "install", "-y"}; the package list is appended.
	PackageManager []string
	// GitBinary is the git executable used for cloning.
	GitBinary string
	// MarkerName is the bootstrap marker file name inside InstallRoot.
	MarkerName string
	// WrapperBinaryName is the executable expected inside the wrapper
	// directory after extraction.
	WrapperBinaryName string
	// RequireRoot gates the privilege check. Disabled only in tests.
	RequireRoot bool
	// DownloadRetries is how many times a failed archive download is
	// retried before first setup aborts.
	DownloadRetries uint64

	Toolkit    Descriptor
	Wrapper    Descriptor
	Repository Descriptor
}

// NewConfig returns the default configuration rooted at installRoot.
func NewConfig(installRoot string) Config {
	return Config{
		InstallRoot:       installRoot,
		LinkDir:           defaultLinkDir,
		Packages:          []string{"git", "ffmpeg", "gpac", "golang-go", "wget"},
		PackageManager:    []string{"apt-get", "install", "-y"},
		GitBinary:         "git",
		MarkerName:        defaultMarkerName,
		WrapperBinaryName: wrapperBinaryName,
		RequireRoot:       true,
		DownloadRetries:   2,
		Toolkit: Descriptor{
			Name:             toolkitDirName,
			Kind:             KindArchive,
			RemoteLocation:   toolkitArchiveURL,
			LocalDirectory:   filepath.Join(installRoot, toolkitDirName),
			BinaryDirPattern: toolkitBinPattern,
		},
		Wrapper: Descriptor{
			Name:           wrapperDirName,
			Kind:           KindArchive,
			RemoteLocation: wrapperArchiveURL,
			LocalDirectory: filepath.Join(installRoot, wrapperDirName),
		},
		Repository: Descriptor{
			Name:           downloaderDirName,
			Kind:           KindGit,
			RemoteLocation: downloaderRepoURL,
			LocalDirectory: filepath.Join(installRoot, downloaderDirName),
		},
	}
}
