package bootstrap

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeGoMod(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "go.mod")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestPatchGoVersionPin_TruncatesThreeComponentVersion(t *testing.T) {
	path := writeGoMod(t, t.TempDir(), "module example.com/amd\n\ngo 1.23.1\n\nrequire example.com/dep v1.2.3\n")

	changed, err := patchGoVersionPin(path)
	require.NoError(t, err)
	require.True(t, changed)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "module example.com/amd\n\ngo 1.23\n\nrequire example.com/dep v1.2.3\n", string(content))
}

func TestPatchGoVersionPin_LeavesTwoComponentVersionAlone(t *testing.T) {
	original := "module example.com/amd\n\ngo 1.23\n"
	path := writeGoMod(t, t.TempDir(), original)

	changed, err := patchGoVersionPin(path)
	require.NoError(t, err)
	require.False(t, changed)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, original, string(content))
}

func TestPatchGoVersionPin_NoGoLineLeavesFileUntouched(t *testing.T) {
	original := "module example.com/amd\n\nrequire example.com/dep v1.2.3\n"
	path := writeGoMod(t, t.TempDir(), original)

	changed, err := patchGoVersionPin(path)
	require.NoError(t, err)
	require.False(t, changed)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, original, string(content))
}

func TestPatchGoVersionPin_IgnoresVersionTokensMidLine(t *testing.T) {
	original := "module example.com/amd\n\n// requires go 1.23.1 or newer\n"
	path := writeGoMod(t, t.TempDir(), original)

	changed, err := patchGoVersionPin(path)
	require.NoError(t, err)
	require.False(t, changed)
}

func TestPatchGoVersionPin_MissingFileIsNotAnError(t *testing.T) {
	changed, err := patchGoVersionPin(filepath.Join(t.TempDir(), "go.mod"))
	require.NoError(t, err)
	require.False(t, changed)
}

func TestProvisionRepository_SkipsExistingDirectory(t *testing.T) {
	cfg := NewConfig(t.TempDir())
	// A git binary that cannot exist proves the clone is skipped.
	cfg.GitBinary = filepath.Join(t.TempDir(), "no-such-git")
	desc := cfg.Repository
	require.NoError(t, os.MkdirAll(desc.LocalDirectory, 0o755))

	b := New(cfg)
	require.NoError(t, b.provisionRepository(context.Background(), desc))
}

func TestProvisionRepository_CloneFailureIsFatal(t *testing.T) {
	cfg := NewConfig(t.TempDir())
	cfg.GitBinary = filepath.Join(t.TempDir(), "no-such-git")

	b := New(cfg)
	err := b.provisionRepository(context.Background(), cfg.Repository)
	require.Error(t, err)

	var cloneErr *CloneError
	require.ErrorAs(t, err, &cloneErr)
	require.Equal(t, cfg.Repository.RemoteLocation, cloneErr.Repository)
}
