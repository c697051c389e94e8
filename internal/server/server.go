package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/amdwebio/amdweb/internal/bootstrap"
)

// Config holds the web service settings. SearchPath is the composed
// executable search path the provisioner discovered; it is threaded in
// as a value so tool lookups never depend on the process environment.
type Config struct {
	Host       string
	Port       int
	SearchPath string
}

// Server is the downloader web UI. It serves a status page and a small
// JSON API on top of the provisioned media stack.
type Server struct {
	cfg  Config
	boot *bootstrap.Bootstrapper
	srv  *http.Server
}

// New creates the web service bound to the given provisioner state.
func New(cfg Config, boot *bootstrap.Bootstrapper) *Server {
	s := &Server{
		cfg:  cfg,
		boot: boot,
	}

	router := mux.NewRouter()
	router.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	router.HandleFunc("/api/status", s.handleStatus).Methods(http.MethodGet)
	router.HandleFunc("/", s.handleIndex).Methods(http.MethodGet)

	s.srv = &http.Server{
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

// Start serves HTTP until Stop is called or the listener fails. It
// blocks, matching the long-running nature of the downstream service.
func (s *Server) Start() error {
	addr := net.JoinHostPort(s.cfg.Host, fmt.Sprintf("%d", s.cfg.Port))
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", addr, err)
	}

	log.Infof("starting web UI on http://%s", listener.Addr().String())
	if err := s.srv.Serve(listener); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Stop shuts the server down, waiting for in-flight requests.
func (s *Server) Stop(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
