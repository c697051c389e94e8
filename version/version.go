package version

// version is set at build time via ldflags.
var version = "development"

// Version returns the amdweb build version.
func Version() string {
	return version
}
