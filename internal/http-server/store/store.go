// Package store is the in-memory data set behind the stub backend. It
// mirrors the real service faithfully, including the unfiltered feed: the
// seed contains a leaked user row among the items, which is exactly what
// the classifier exists for.
package store

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"shopfront/internal/apis/shop/codec"
)

type Comment struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

type Store struct {
	mu       sync.Mutex
	feed     []map[string]any
	users    map[int64]string
	comments map[string][]Comment
	now      func() time.Time
}

func New() *Store {
	return &Store{
		feed:     seedFeed(),
		users:    map[int64]string{1: "demo", 2: "bob"},
		comments: map[string][]Comment{},
		now:      time.Now,
	}
}

// Feed returns the full catalog feed, raw rows included.
func (s *Store) Feed() []map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]map[string]any, len(s.feed))
	copy(out, s.feed)
	return out
}

// Search does a naive case-insensitive substring match over name,
// description and category, in feed order.
func (s *Store) Search(query string) []map[string]any {
	q := strings.ToLower(strings.TrimSpace(query))

	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]map[string]any, 0)
	for _, row := range s.feed {
		if q == "" || rowMatches(row, q) {
			out = append(out, row)
		}
	}
	return out
}

// Get returns the row with the given id, or nil when absent. The HTTP layer
// turns nil into an empty object: the backend signals not-found with a body
// lacking a usable id, not with a 404.
func (s *Store) Get(id string) map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, row := range s.feed {
		if scalar(row["id"]) == id {
			return row
		}
	}
	return nil
}

func (s *Store) Comments(productID string) []Comment {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Comment, len(s.comments[productID]))
	copy(out, s.comments[productID])
	return out
}

// AddComment decodes a review payload and appends it. This is the backend
// half of the review codec.
func (s *Store) AddComment(productID, payload string) (Comment, error) {
	submitterID, text, err := codec.Decode(payload)
	if err != nil {
		return Comment{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	username, ok := s.users[submitterID]
	if !ok {
		username = fmt.Sprintf("user-%d", submitterID)
	}

	c := Comment{
		ID:        uuid.NewString(),
		Username:  username,
		Comment:   text,
		CreatedAt: s.now().UTC(),
	}
	s.comments[productID] = append(s.comments[productID], c)
	return c, nil
}

func rowMatches(row map[string]any, q string) bool {
	for _, k := range []string{"name", "title", "description", "category"} {
		if v, ok := row[k].(string); ok && strings.Contains(strings.ToLower(v), q) {
			return true
		}
	}
	return false
}

func scalar(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case int:
		return fmt.Sprintf("%d", t)
	case float64:
		if t == float64(int64(t)) {
			return fmt.Sprintf("%d", int64(t))
		}
		return fmt.Sprintf("%v", t)
	}
	return ""
}

func seedFeed() []map[string]any {
	return []map[string]any{
		{
			"id": 1, "name": "Wireless Headphones",
			"description": "Over-ear, 30h battery",
			"price":       79.99, "image": "http://localhost:8000/img/1.png",
			"category": "electronics", "rating_rate": 4.3, "rating_count": 120,
		},
		{
			// the leaked row: a user record in the product feed
			"id": 2, "username": "bob", "email": "b@x.com", "password": "hunter2",
		},
		{
			"id": 3, "name": "Espresso Cup Set",
			"description": "Six porcelain cups",
			"price":       24.50, "image": "http://localhost:8000/img/3.png",
			"category": "kitchen", "rating_rate": 4.8, "rating_count": 31,
		},
		{
			"id": 42, "name": "Mechanical Keyboard",
			"description": "Tenkeyless, brown switches",
			"price":       129.00, "image": "http://localhost:8000/img/42.png",
			"category": "electronics",
		},
	}
}
