package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/admpub/finchart/internal/board"
	"github.com/admpub/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	board *board.Board
}

func New(b *board.Board) *Server {
	return &Server{board: b}
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get(`/`, s.handlePage)
	r.Get(`/charts/{id}`, s.handleChart)
	r.Route(`/api`, func(r chi.Router) {
		r.Use(render.SetContentType(render.ContentTypeJSON))
		r.Get(`/charts`, s.handleListCharts)
		r.Get(`/charts/{id}/option`, s.handleOption)
		r.Post(`/charts/{id}/resize`, s.handleResize)
		r.Post(`/reload`, s.handleReload)
		r.Get(`/combine`, s.handleCombine)
	})
	return r
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		log.Infof(`[server] listening on %s`, addr)
		errCh <- srv.ListenAndServe()
	}()
	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
