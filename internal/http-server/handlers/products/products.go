package products

import (
	"log/slog"
	"net/http"

	"shopfront/internal/http-server/query"
	"shopfront/internal/http-server/respond"
	"shopfront/internal/http-server/store"
)

type Options struct {
	Log   *slog.Logger
	Store *store.Store
}

// NewListHandler serves GET /products: the full feed, raw rows included.
func NewListHandler(opts Options) http.HandlerFunc {
	log := opts.Log
	if log == nil {
		log = slog.Default()
	}

	return func(w http.ResponseWriter, r *http.Request) {
		if opts.Store == nil {
			log.Error("products handler misconfigured: Store is nil")
			respond.WriteInternalError(w)
			return
		}
		respond.WriteJSON(w, http.StatusOK, opts.Store.Feed())
	}
}

// NewSearchHandler serves GET /products/search?q=. An empty match set is a
// valid 200 response with an empty array.
func NewSearchHandler(opts Options) http.HandlerFunc {
	log := opts.Log
	if log == nil {
		log = slog.Default()
	}

	return func(w http.ResponseWriter, r *http.Request) {
		if opts.Store == nil {
			log.Error("search handler misconfigured: Store is nil")
			respond.WriteInternalError(w)
			return
		}

		q, present := query.Str(r, "q")
		if !present {
			respond.WriteError(w, http.StatusBadRequest, "bad_request", "q is required")
			return
		}
		respond.WriteJSON(w, http.StatusOK, opts.Store.Search(q))
	}
}

// NewGetHandler serves GET /products/{id}. Unknown ids answer 200 with an
// empty object: clients detect not-found by the missing id, matching the
// real backend's behavior.
func NewGetHandler(opts Options) http.HandlerFunc {
	log := opts.Log
	if log == nil {
		log = slog.Default()
	}

	return func(w http.ResponseWriter, r *http.Request) {
		if opts.Store == nil {
			log.Error("product handler misconfigured: Store is nil")
			respond.WriteInternalError(w)
			return
		}

		row := opts.Store.Get(r.PathValue("id"))
		if row == nil {
			respond.WriteJSON(w, http.StatusOK, map[string]any{})
			return
		}
		respond.WriteJSON(w, http.StatusOK, row)
	}
}
