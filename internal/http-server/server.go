// Package httpserver is the stub backend: a small HTTP server implementing
// the catalog contract the client consumes, backed by an in-memory store.
// It exists for local development and end-to-end tests.
package httpserver

import (
	"log/slog"
	"net/http"

	"shopfront/internal/http-server/handlers/comments"
	"shopfront/internal/http-server/handlers/products"
	"shopfront/internal/http-server/middleware"
	"shopfront/internal/http-server/store"
)

type Server struct {
	log *slog.Logger
	mux *http.ServeMux
}

func New(log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{log: log, mux: http.NewServeMux()}
}

func (s *Server) Handler() http.Handler {
	var h http.Handler = s.mux
	h = middleware.WithRequestID(h)
	h = middleware.RecoverPanic(s.log, h)
	h = middleware.AccessLog(s.log, h)
	return h
}

func (s *Server) RegisterRoutes(st *store.Store) {
	p := products.Options{Log: s.log, Store: st}
	c := comments.Options{Log: s.log, Store: st}

	s.mux.HandleFunc("GET /products", products.NewListHandler(p))
	s.mux.HandleFunc("GET /products/search", products.NewSearchHandler(p))
	s.mux.HandleFunc("GET /products/{id}", products.NewGetHandler(p))
	s.mux.HandleFunc("GET /products/{id}/comments", comments.NewListHandler(c))
	s.mux.HandleFunc("POST /products/{id}/comments", comments.NewPostHandler(c))
}
