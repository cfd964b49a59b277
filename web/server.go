// Package web serves the single-page usage dashboard.
package web

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"io"
	"log/slog"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/lumoplay/usagedash/config"
	"github.com/lumoplay/usagedash/dataset"
	"github.com/lumoplay/usagedash/engine"
	"github.com/lumoplay/usagedash/render"
)

// maxUploadBytes caps uploaded spreadsheets; everything is held in memory.
const maxUploadBytes = 32 << 20

// Server renders the dashboard: KPI cards, charts, raw data, filter widgets.
// All state is a loader cache plus the upload name registry; each request is
// one full filter+summarize pass over the cached table.
type Server struct {
	cfg  config.Config
	log  *slog.Logger
	tmpl *template.Template

	cache *dataset.Cache

	mu      sync.Mutex
	uploads map[string]string // source identity → original filename

	http *http.Server
}

// New creates a dashboard server. The cache is shared with any other
// component that loads tables (e.g. a CLI warmup).
func New(cfg config.Config, cache *dataset.Cache, log *slog.Logger) *Server {
	s := &Server{
		cfg:     cfg,
		log:     log,
		tmpl:    template.Must(template.New("dashboard").Parse(tmplDashboard)),
		cache:   cache,
		uploads: make(map[string]string),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleDashboard)
	mux.HandleFunc("POST /upload", s.handleUpload)
	mux.HandleFunc("GET /chart/{kind}", s.handleChart)
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "ok")
	})

	s.http = &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Handler exposes the route table, mainly for tests.
func (s *Server) Handler() http.Handler { return s.http.Handler }

// ListenAndServe blocks serving the dashboard until Shutdown.
func (s *Server) ListenAndServe() error {
	s.log.Info("dashboard listening", "addr", s.cfg.ListenAddr, "data_file", s.cfg.DataFile)
	return s.http.ListenAndServe()
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

// ============================================================================
// SOURCE RESOLUTION
// ============================================================================

// resolveTable finds the table for a request: an uploaded source when ?src
// is present, otherwise the configured default file. A missing default file
// is the "no source yet" state, not an error.
func (s *Server) resolveTable(src string) (*dataset.Table, string, error) {
	if src != "" {
		if t, ok := s.cache.Lookup(src); ok {
			return t, s.uploadName(src), nil
		}
		return nil, "", fmt.Errorf("unknown upload %q — please upload the file again", src)
	}

	if _, err := os.Stat(s.cfg.DataFile); err != nil {
		return nil, "", nil // no default source available
	}
	identity := "file:" + s.cfg.DataFile
	t, err := s.cache.Load(identity, func() (*dataset.Table, error) {
		s.log.Info("loading default source", "path", s.cfg.DataFile)
		return dataset.LoadFile(s.cfg.DataFile)
	})
	if err != nil {
		return nil, "", err
	}
	return t, s.cfg.DataFile, nil
}

func (s *Server) uploadName(identity string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.uploads[identity]
}

// ============================================================================
// HANDLERS
// ============================================================================

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	src := r.Form.Get("src")

	table, sourceName, err := s.resolveTable(src)
	if err != nil {
		s.log.Error("source unavailable", "src", src, "err", err)
		s.renderPage(w, viewData{Err: userMessage(err), NoSource: true})
		return
	}
	if table == nil {
		s.renderPage(w, viewData{NoSource: true})
		return
	}

	c := parseConstraints(r.Form, table)
	s.renderPage(w, buildView(src, sourceName, table, c))
}

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	file, header, err := r.FormFile("file")
	if err != nil {
		s.renderPage(w, viewData{Err: "upload failed: " + err.Error(), NoSource: true})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		s.renderPage(w, viewData{Err: "upload failed: " + err.Error(), NoSource: true})
		return
	}

	identity := "upload:" + uuid.NewString()
	if _, err := s.cache.LoadBytes(identity, header.Filename, data); err != nil {
		s.log.Warn("rejected upload", "filename", header.Filename, "err", err)
		s.renderPage(w, viewData{Err: userMessage(err), NoSource: true})
		return
	}

	s.mu.Lock()
	s.uploads[identity] = header.Filename
	s.mu.Unlock()
	s.log.Info("upload accepted", "filename", header.Filename, "identity", identity)

	http.Redirect(w, r, "/?src="+identity, http.StatusSeeOther)
}

// handleChart renders one dashboard chart as PNG, applying the same filter
// parameters as the page itself.
func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	table, _, err := s.resolveTable(r.Form.Get("src"))
	if err != nil || table == nil {
		http.NotFound(w, r)
		return
	}

	filtered := engine.Filter(table, parseConstraints(r.Form, table))
	summary := engine.Summarize(filtered)

	var cfg *engine.ChartConfig
	switch r.PathValue("kind") {
	case "monthly.png":
		cfg = engine.MonthlyTrendChart(summary)
	case "games.png":
		cfg = engine.GameShareChart(summary)
	case "devices.png":
		cfg = engine.DeviceUsageChart(summary)
	default:
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	if cfg == nil {
		if err := render.Placeholder(render.DefaultWidth, render.DefaultHeight, w); err != nil {
			s.log.Error("placeholder render failed", "err", err)
		}
		return
	}
	if err := render.PNG(cfg, render.DefaultWidth, render.DefaultHeight, w); err != nil {
		s.log.Error("chart render failed", "kind", r.PathValue("kind"), "err", err)
	}
}

// ============================================================================
// RENDERING
// ============================================================================

func (s *Server) renderPage(w http.ResponseWriter, v viewData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.tmpl.Execute(w, v); err != nil {
		s.log.Error("template render failed", "err", err)
	}
}

// userMessage keeps data format problems verbatim and hides everything else
// behind a generic line.
func userMessage(err error) string {
	var dfe *dataset.DataFormatError
	if errors.As(err, &dfe) {
		return "The selected file cannot be used: " + dfe.Error()
	}
	return err.Error()
}
