package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/amdwebio/amdweb/internal/bootstrap"
)

// provisionedFixture lays out an install root that looks like a
// completed first setup and returns a server over it.
func provisionedFixture(t *testing.T) *Server {
	t.Helper()

	installRoot := filepath.Join(t.TempDir(), "amdweb")
	binDir := filepath.Join(installRoot, "bento4", "Bento4-SDK-1-6-0-641.x86_64-unknown-linux", "bin")
	wrapperDir := filepath.Join(installRoot, "wrapper")
	require.NoError(t, os.MkdirAll(binDir, 0o755))
	require.NoError(t, os.MkdirAll(wrapperDir, 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(installRoot, "apple-music-downloader"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(binDir, "mp4decrypt"), []byte("bin"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(wrapperDir, "wrapper"), []byte("bin"), 0o755))

	cfg := bootstrap.NewConfig(installRoot)
	b := bootstrap.New(cfg)
	require.NoError(t, b.MarkBootstrapped())

	searchPath := bootstrap.ComposeSearchPath("", b.BinaryDirs())
	return New(Config{Host: "127.0.0.1", Port: 5000, SearchPath: searchPath}, b)
}

func (s *Server) serve(t *testing.T, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	s.srv.Handler.ServeHTTP(rec, req)
	return rec
}

func Test_HandleHealth(t *testing.T) {
	s := provisionedFixture(t)

	rec := s.serve(t, http.MethodGet, "/healthz")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "ok", rec.Body.String())
}

func Test_HandleStatus(t *testing.T) {
	s := provisionedFixture(t)

	rec := s.serve(t, http.MethodGet, "/api/status")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp statusResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	require.True(t, resp.Bootstrapped)
	require.Len(t, resp.Dependencies, 3)
	for _, dep := range resp.Dependencies {
		require.True(t, dep.Present, dep.Name)
	}

	// Tools resolve against the composed search path, not the process
	// environment.
	require.NotEmpty(t, resp.Tools["mp4decrypt"])
	require.NotEmpty(t, resp.Tools["wrapper"])
	require.FileExists(t, resp.Tools["mp4decrypt"])
	require.Empty(t, resp.Tools["ffmpeg"], "system tools are absent from the fixture path")
}

func Test_HandleIndex(t *testing.T) {
	s := provisionedFixture(t)

	rec := s.serve(t, http.MethodGet, "/")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "Apple Music Downloader")
	require.Contains(t, rec.Body.String(), "installed")
}

func Test_StatusMethodNotAllowed(t *testing.T) {
	s := provisionedFixture(t)

	rec := s.serve(t, http.MethodPost, "/api/status")
	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
