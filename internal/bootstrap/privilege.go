package bootstrap

import "os"

// ensureElevated verifies the process runs with root privileges. The
// package installer, the system link directory and the service install
// all need them.
func (b *Bootstrapper) ensureElevated() error {
	if !b.cfg.RequireRoot {
		return nil
	}
	if os.Geteuid() != 0 {
		return ErrNotElevated
	}
	return nil
}
