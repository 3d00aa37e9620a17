package models

import "time"

// Review is a user-submitted text entry attached to one item. Reviews are
// immutable once created; the list is append-only from the client's view.
// Content may hold arbitrary markup: the backend gives no sanitization
// guarantee, rendering decides what to do with it (see internal/render).
type Review struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}
