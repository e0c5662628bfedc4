package web

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/periodic2048/internal/games/periodic"
	"github.com/vovakirdan/periodic2048/internal/storage"
)

//go:embed static
var staticFiles embed.FS

// ServerConfig holds configuration for the HTTP server.
type ServerConfig struct {
	// Address is the host:port to listen on (e.g., ":8080").
	Address string

	// Session is used for every new board.
	Session SessionConfig
}

type sessionEntry struct {
	session *Session
	clients int
	cancel  context.CancelFunc
}

// Server serves the browser client and its websocket endpoint.
type Server struct {
	config ServerConfig
	hub    *Hub
	store  *storage.Store
	logger *log.Logger

	// base parents the per-session tickers; set by Serve.
	base context.Context

	mu       sync.Mutex
	sessions map[string]*sessionEntry

	addr string
}

// NewServer creates a web server. store may be nil.
func NewServer(cfg ServerConfig, store *storage.Store, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "periodic-web",
		})
	}
	return &Server{
		config:   cfg,
		hub:      NewHub(logger),
		store:    store,
		logger:   logger,
		base:     context.Background(),
		sessions: make(map[string]*sessionEntry),
		addr:     cfg.Address,
	}
}

// Handler returns the routes: the page, /ws and /api/scores.
func (s *Server) Handler() http.Handler {
	static, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(fmt.Sprintf("web: embedded assets: %v", err))
	}

	mux := http.NewServeMux()
	mux.Handle("GET /", http.FileServerFS(static))
	mux.HandleFunc("GET /ws", s.serveWS)
	mux.HandleFunc("GET /api/scores", s.serveScores)
	return mux
}

// ListenAndServe serves until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.config.Address)
	if err != nil {
		return fmt.Errorf("web: cannot listen on %s: %w", s.config.Address, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	s.mu.Lock()
	s.base = ctx
	s.addr = ln.Addr().String()
	s.mu.Unlock()

	go s.hub.Run(ctx)

	httpServer := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("web server listening", "addr", ln.Addr().String())
		errCh <- httpServer.Serve(ln)
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("shutting down web server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		err := httpServer.Shutdown(shutdownCtx)
		s.closeSessions()
		return err
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// Addr returns the listen address.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addr
}

func (s *Server) serveWS(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("session")
	if id == "" {
		id = uuid.New().String()
	} else if _, err := uuid.Parse(id); err != nil {
		http.Error(w, "invalid session id", http.StatusBadRequest)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", "err", err)
		return
	}

	session := s.acquire(id)
	client := &Client{
		hub:     s.hub,
		conn:    conn,
		send:    make(chan []byte, 256),
		session: session,
		release: func() { s.release(id) },
	}

	s.hub.attach(client)
	s.hub.Reply(client, session.Welcome())

	go client.writePump()
	go client.readPump()
}

func (s *Server) serveScores(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		http.Error(w, "scores are not recorded", http.StatusNotFound)
		return
	}
	scores, err := s.store.TopScores(periodic.ID, 10)
	if err != nil {
		s.logger.Error("cannot load scores", "err", err)
		http.Error(w, "cannot load scores", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(scores); err != nil {
		s.logger.Warn("cannot write scores", "err", err)
	}
}

// acquire returns the session for id, creating it on first join.
func (s *Server) acquire(id string) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	if entry, ok := s.sessions[id]; ok {
		entry.clients++
		return entry.session
	}

	session := NewSession(id, s.config.Session, s.hub, s.store, s.logger)
	ctx, cancel := context.WithCancel(s.base)
	s.sessions[id] = &sessionEntry{session: session, clients: 1, cancel: cancel}
	go runTicker(ctx, session)

	s.logger.Info("session started", "session", id)
	return session
}

// release drops the session once its last client is gone.
func (s *Server) release(id string) {
	s.mu.Lock()
	entry, ok := s.sessions[id]
	if !ok {
		s.mu.Unlock()
		return
	}
	entry.clients--
	if entry.clients > 0 {
		s.mu.Unlock()
		return
	}
	delete(s.sessions, id)
	s.mu.Unlock()

	entry.cancel()
	entry.session.Close()
	s.logger.Info("session closed", "session", id)
}

func (s *Server) closeSessions() {
	s.mu.Lock()
	entries := s.sessions
	s.sessions = make(map[string]*sessionEntry)
	s.mu.Unlock()

	for _, entry := range entries {
		entry.cancel()
		entry.session.Close()
	}
}

func runTicker(ctx context.Context, session *Session) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			session.Tick()
		}
	}
}
