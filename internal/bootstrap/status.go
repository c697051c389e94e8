package bootstrap

// DependencyStatus reports the on-disk state of one dependency.
type DependencyStatus struct {
	Name      string `json:"name"`
	Directory string `json:"directory"`
	Present   bool   `json:"present"`
}

// Status is a point-in-time snapshot of the provisioning state.
type Status struct {
	Bootstrapped bool               `json:"bootstrapped"`
	MarkerPath   string             `json:"marker_path"`
	Dependencies []DependencyStatus `json:"dependencies"`
	BinaryDirs   []string           `json:"binary_dirs"`
}

// Status inspects the filesystem and reports what is provisioned.
func (b *Bootstrapper) Status() Status {
	deps := make([]DependencyStatus, 0, 3)
	for _, desc := range []Descriptor{b.cfg.Toolkit, b.cfg.Wrapper, b.cfg.Repository} {
		deps = append(deps, DependencyStatus{
			Name:      desc.Name,
			Directory: desc.LocalDirectory,
			Present:   dirExists(desc.LocalDirectory),
		})
	}

	return Status{
		Bootstrapped: b.IsBootstrapped(),
		MarkerPath:   b.MarkerPath(),
		Dependencies: deps,
		BinaryDirs:   b.BinaryDirs(),
	}
}
