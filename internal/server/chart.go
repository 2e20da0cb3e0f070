package server

import (
	"bytes"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	buf := bytes.NewBuffer(nil)
	if err := WritePage(buf, s.board); err != nil {
		render.Render(w, r, ErrInternalServerError(err))
		return
	}
	w.Header().Set(`Content-Type`, `text/html; charset=utf-8`)
	w.Write(buf.Bytes())
}

func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	buf := bytes.NewBuffer(nil)
	if err := WriteChart(buf, s.board, chi.URLParam(r, `id`)); err != nil {
		render.Render(w, r, errorRenderer(err))
		return
	}
	w.Header().Set(`Content-Type`, `text/html; charset=utf-8`)
	w.Write(buf.Bytes())
}
