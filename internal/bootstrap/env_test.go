package bootstrap

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestComposeSearchPath_PrependsInOrder(t *testing.T) {
	base := "/usr/bin:/bin"
	composed := ComposeSearchPath(base, []string{"/opt/bento4/bin", "/opt/wrapper"})

	// The last prepended directory wins lookups.
	require.Equal(t, "/opt/wrapper:/opt/bento4/bin:/usr/bin:/bin", composed)
}

func TestComposeSearchPath_EmptyBase(t *testing.T) {
	require.Equal(t, "/opt/wrapper", ComposeSearchPath("", []string{"/opt/wrapper"}))
}

func TestComposeSearchPath_NoDirsLeavesBaseUntouched(t *testing.T) {
	require.Equal(t, "/usr/bin", ComposeSearchPath("/usr/bin", nil))
}

func TestBinaryDirs_OnlyDiscoveredDirectories(t *testing.T) {
	f := newFixture(t)

	// Nothing provisioned yet.
	require.Empty(t, f.boot.BinaryDirs())

	require.NoError(t, f.boot.Run(context.Background()))

	dirs := f.boot.BinaryDirs()
	require.Len(t, dirs, 2)
	require.True(t, strings.HasSuffix(dirs[0], filepath.Join(toolkitDistDir, "bin")), dirs[0])
	require.Equal(t, f.cfg.Wrapper.LocalDirectory, dirs[1])
}
