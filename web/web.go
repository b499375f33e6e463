// Package web provides a read-only HTTP viewer for a checkbook store.
//
// The server exposes a small JSON API over the register, summary totals, and
// account list, plus a Server-Sent Events stream that notifies connected
// clients when the underlying store changes on disk.
//
// SECURITY WARNING: This server has no authentication and should only be
// bound to localhost (127.0.0.1). Do not expose it to untrusted networks.
package web

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/checkbook-app/checkbook/store"
)

type Server struct {
	Port      int
	Host      string
	Version   string
	CommitSHA string
	Currency  string

	st        *store.Store
	watchPath string
	logger    *slog.Logger

	// SSE clients for broadcasting reload events
	sseClients map[chan string]struct{}
	sseMu      sync.Mutex
}

// New creates a server over an open store. watchPath is the filesystem
// location observed for external changes; empty disables watching.
func New(port int, st *store.Store, watchPath string, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		Port:       port,
		Host:       "127.0.0.1",
		st:         st,
		watchPath:  watchPath,
		logger:     logger,
		sseClients: make(map[chan string]struct{}),
	}
}

func (s *Server) Start(ctx context.Context) error {
	if s.watchPath != "" {
		if err := s.startWatcher(ctx); err != nil {
			return fmt.Errorf("failed to start file watcher: %w", err)
		}
	}

	addr := fmt.Sprintf("%s:%d", s.Host, s.Port)
	s.logger.Info("listening", "addr", addr)
	return http.ListenAndServe(addr, s.Router())
}

// Router builds the request mux. Exposed for tests.
func (s *Server) Router() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/register", s.handleGetRegister)
	mux.HandleFunc("GET /api/summary", s.handleGetSummary)
	mux.HandleFunc("GET /api/accounts", s.handleGetAccounts)
	mux.HandleFunc("GET /api/events", s.handleSSE)

	s.mountAssets(mux)

	return mux
}

// startWatcher watches the store's backing path and broadcasts a reload
// event to SSE clients when it changes.
func (s *Server) startWatcher(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}

	if err := watcher.Add(s.watchPath); err != nil {
		_ = watcher.Close()
		return fmt.Errorf("failed to watch %s: %w", s.watchPath, err)
	}

	go s.runWatcher(ctx, watcher)

	return nil
}

// runWatcher processes file system events with debouncing.
func (s *Server) runWatcher(ctx context.Context, watcher *fsnotify.Watcher) {
	var debounceTimer *time.Timer
	defer func() {
		if debounceTimer != nil {
			debounceTimer.Stop()
		}
		_ = watcher.Close()
	}()

	// Editors and the atomic-rename save path write in multiple steps.
	const debounceDelay = 100 * time.Millisecond

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}

			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}

			if debounceTimer != nil {
				debounceTimer.Stop()
			}

			debounceTimer = time.AfterFunc(debounceDelay, func() {
				s.logger.Debug("store changed", "path", event.Name)
				s.broadcast("reload")
			})

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			s.logger.Warn("file watcher error", "err", err)
		}
	}
}

// handleSSE handles Server-Sent Events connections for real-time updates.
func (s *Server) handleSSE(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")

	clientChan := make(chan string, 10)

	s.sseMu.Lock()
	s.sseClients[clientChan] = struct{}{}
	s.sseMu.Unlock()

	defer func() {
		s.sseMu.Lock()
		delete(s.sseClients, clientChan)
		s.sseMu.Unlock()
		close(clientChan)
	}()

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming not supported", http.StatusInternalServerError)
		return
	}

	_, _ = fmt.Fprintf(w, "data: connected\n\n")
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case event := <-clientChan:
			_, _ = fmt.Fprintf(w, "data: %s\n\n", event)
			flusher.Flush()
		}
	}
}

// broadcast sends an event to all connected SSE clients.
func (s *Server) broadcast(event string) {
	s.sseMu.Lock()
	defer s.sseMu.Unlock()

	for clientChan := range s.sseClients {
		select {
		case clientChan <- event:
		default:
			// Client buffer full, skip
		}
	}
}
