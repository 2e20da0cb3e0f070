package server

import (
	"errors"
	"net/http"

	"github.com/admpub/finchart/internal/board"
	"github.com/admpub/finchart/pkg/dataset"
	"github.com/go-chi/render"
)

type ErrResponse struct {
	Err            error `json:"-"`
	HTTPStatusCode int   `json:"-"`

	StatusText string `json:"status"`
	ErrorText  string `json:"error,omitempty"`
}

func (e *ErrResponse) Render(w http.ResponseWriter, r *http.Request) error {
	render.Status(r, e.HTTPStatusCode)
	return nil
}

func ErrInvalidRequest(err error) render.Renderer {
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: http.StatusBadRequest,
		StatusText:     `Invalid request.`,
		ErrorText:      err.Error(),
	}
}

func ErrNotFound(err error) render.Renderer {
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: http.StatusNotFound,
		StatusText:     `Resource not found.`,
		ErrorText:      err.Error(),
	}
}

func ErrInternalServerError(err error) render.Renderer {
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: http.StatusInternalServerError,
		StatusText:     `Internal server error.`,
		ErrorText:      err.Error(),
	}
}

// errorRenderer maps board errors to responses.
func errorRenderer(err error) render.Renderer {
	switch {
	case errors.Is(err, board.ErrUnknownChart):
		return ErrNotFound(err)
	case errors.Is(err, dataset.ErrUnknownSeries):
		return ErrInvalidRequest(err)
	default:
		return ErrInternalServerError(err)
	}
}
