// Package server serves a local preview of the catalog and embedded widgets.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/a-h/templ"
	"github.com/arcanaland/perch-docs/internal/card"
	"github.com/arcanaland/perch-docs/internal/view"
	"github.com/arcanaland/perch-docs/internal/widget"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
)

const shutdownTimeout = 5 * time.Second

// Server renders preview pages for one catalog and widget host
type Server struct {
	addr     string
	cards    []card.Card
	renderer widget.Renderer
	router   *mux.Router
}

// New builds a server listening on addr
func New(addr string, cards []card.Card, renderer widget.Renderer) *Server {
	s := &Server{
		addr:     addr,
		cards:    cards,
		renderer: renderer,
		router:   mux.NewRouter(),
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.router.Use(logRequests)
	s.router.Handle("/", templ.Handler(view.Page("Lead management", view.CardList(s.cards)))).Methods(http.MethodGet)
	s.router.HandleFunc("/cards", s.handleCards).Methods(http.MethodGet)
	s.router.HandleFunc("/widgets/{widgetId}", s.handleWidget).Methods(http.MethodGet)
	s.router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	}).Methods(http.MethodGet)
}

// Handler returns the root HTTP handler
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		log.Info().Str("addr", s.addr).Int("cards", len(s.cards)).Msg("preview server listening")
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down preview server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func (s *Server) handleCards(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(s.cards); err != nil {
		log.Error().Err(err).Msg("failed to encode cards")
	}
}

func (s *Server) handleWidget(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	p := widget.Params{
		WidgetID: mux.Vars(r)["widgetId"],
		Height:   q.Get("height"),
		Title:    q.Get("title"),
	}.WithDefaults()

	templ.Handler(view.Page(p.Title, s.renderer.Frame(p))).ServeHTTP(w, r)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", rec.status).
			Dur("duration", time.Since(start)).
			Msg("request")
	})
}
