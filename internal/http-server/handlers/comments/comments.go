package comments

import (
	"io"
	"log/slog"
	"net/http"

	"shopfront/internal/http-server/respond"
	"shopfront/internal/http-server/store"
)

const payloadLimit = 64 * 1024

type Options struct {
	Log   *slog.Logger
	Store *store.Store
}

func NewListHandler(opts Options) http.HandlerFunc {
	log := opts.Log
	if log == nil {
		log = slog.Default()
	}

	return func(w http.ResponseWriter, r *http.Request) {
		if opts.Store == nil {
			log.Error("comments handler misconfigured: Store is nil")
			respond.WriteInternalError(w)
			return
		}
		respond.WriteJSON(w, http.StatusOK, opts.Store.Comments(r.PathValue("id")))
	}
}

// NewPostHandler serves POST /products/{id}/comments. The body is the
// text/plain review payload, decoded by the store with the shared codec.
func NewPostHandler(opts Options) http.HandlerFunc {
	log := opts.Log
	if log == nil {
		log = slog.Default()
	}

	return func(w http.ResponseWriter, r *http.Request) {
		if opts.Store == nil {
			log.Error("comments handler misconfigured: Store is nil")
			respond.WriteInternalError(w)
			return
		}

		b, err := io.ReadAll(io.LimitReader(r.Body, payloadLimit))
		if err != nil {
			respond.WriteError(w, http.StatusBadRequest, "bad_request", "unreadable body")
			return
		}

		c, err := opts.Store.AddComment(r.PathValue("id"), string(b))
		if err != nil {
			respond.WriteError(w, http.StatusBadRequest, "bad_payload", err.Error())
			return
		}

		log.Info("comment added", "product_id", r.PathValue("id"), "comment_id", c.ID)
		respond.WriteJSON(w, http.StatusCreated, c)
	}
}
