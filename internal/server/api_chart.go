package server

import (
	"errors"
	"net/http"

	"github.com/admpub/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/webx-top/com"
)

func (s *Server) handleListCharts(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, s.board.Sections())
}

func (s *Server) handleOption(w http.ResponseWriter, r *http.Request) {
	option, err := s.board.Option(chi.URLParam(r, `id`))
	if err != nil {
		render.Render(w, r, errorRenderer(err))
		return
	}
	render.JSON(w, r, option)
}

func (s *Server) handleResize(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, `id`)
	query := r.URL.Query()
	width := com.Int(query.Get(`width`))
	height := com.Int(query.Get(`height`))
	if width <= 0 && height <= 0 {
		render.Render(w, r, ErrInvalidRequest(errors.New(`width or height must be a positive integer`)))
		return
	}
	if err := s.board.Resize(id, width, height); err != nil {
		render.Render(w, r, errorRenderer(err))
		return
	}
	section, err := s.board.Section(id)
	if err != nil {
		render.Render(w, r, errorRenderer(err))
		return
	}
	render.JSON(w, r, section)
}

func (s *Server) handleReload(w http.ResponseWriter, r *http.Request) {
	if err := s.board.Reload(); err != nil {
		log.Error(err)
		render.Render(w, r, errorRenderer(err))
		return
	}
	render.JSON(w, r, s.board.Sections())
}

func (s *Server) handleCombine(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	a, b := query.Get(`a`), query.Get(`b`)
	if len(a) == 0 || len(b) == 0 {
		render.Render(w, r, ErrInvalidRequest(errors.New(`both series a and b are required`)))
		return
	}
	combined, err := s.board.Combine(a, b)
	if err != nil {
		render.Render(w, r, errorRenderer(err))
		return
	}
	render.JSON(w, r, combined)
}
