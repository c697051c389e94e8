package server

import (
	"encoding/json"
	"html/template"
	"net/http"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"

	"github.com/amdwebio/amdweb/internal/bootstrap"
)

// toolNames are the executables the downloader pipeline invokes; their
// resolution against the composed search path is part of the status
// report.
var toolNames = []string{"mp4decrypt", "mp4info", "wrapper", "ffmpeg", "git"}

type statusResponse struct {
	bootstrap.Status
	SearchPath string            `json:"search_path"`
	Tools      map[string]string `json:"tools"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("ok")); err != nil {
		log.Errorf("failed to write health response: %v", err)
	}
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	resp := s.buildStatus()

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Errorf("failed to encode status response: %v", err)
	}
}

func (s *Server) buildStatus() statusResponse {
	tools := make(map[string]string, len(toolNames))
	for _, name := range toolNames {
		tools[name] = lookupTool(s.cfg.SearchPath, name)
	}

	return statusResponse{
		Status:     s.boot.Status(),
		SearchPath: s.cfg.SearchPath,
		Tools:      tools,
	}
}

// lookupTool resolves name against the given search path value instead
// of the process environment, returning "" when not found.
func lookupTool(searchPath, name string) string {
	for _, dir := range filepath.SplitList(searchPath) {
		if dir == "" {
			continue
		}
		path := filepath.Join(dir, name)
		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			continue
		}
		if info.Mode()&0o111 != 0 {
			return path
		}
	}
	return ""
}

var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html>
<head><title>amdweb</title></head>
<body>
<h1>Apple Music Downloader</h1>
<p>Bootstrapped: {{.Bootstrapped}}</p>
<ul>
{{- range .Dependencies}}
<li>{{.Name}}: {{if .Present}}installed{{else}}missing{{end}} ({{.Directory}})</li>
{{- end}}
</ul>
</body>
</html>
`))

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTemplate.Execute(w, s.boot.Status()); err != nil {
		log.Errorf("failed to render index: %v", err)
	}
}
