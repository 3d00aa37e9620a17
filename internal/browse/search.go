package browse

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"shopfront/internal/apis/shop"
	"shopfront/internal/apis/shop/mapper"
	"shopfront/internal/domain/models"
)

type Searcher interface {
	SearchProducts(ctx context.Context, query string) ([]shop.Record, error)
}

// Search owns the live query state. Display authority is a single explicit
// state flipped atomically by Run and Clear, so held results can never
// outlive a cleared query. A sequence counter guards the result slot:
// completions older than the one currently applied (or issued before the
// last Clear) are dropped, which gives last-write-wins ordering without
// request cancellation.
type Search struct {
	index Searcher
	log   *slog.Logger

	mu        sync.Mutex
	issued    uint64
	applied   uint64
	query     string
	results   []models.CatalogRecord
	authority Authority
}

func NewSearch(index Searcher, logger *slog.Logger) *Search {
	if logger == nil {
		logger = slog.Default()
	}
	return &Search{index: index, log: logger}
}

// Run issues a query. An empty or whitespace-only query never reaches the
// network: it clears the search state and hands authority back to the
// listing. On failure the error is returned and prior results stand.
func (s *Search) Run(ctx context.Context, query string) error {
	if strings.TrimSpace(query) == "" {
		s.Clear()
		return nil
	}

	s.mu.Lock()
	s.issued++
	seq := s.issued
	s.mu.Unlock()

	recs, err := s.index.SearchProducts(ctx, query)
	if err != nil {
		return fmt.Errorf("search %q: %w", query, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if seq < s.applied {
		s.log.Debug("stale search response dropped", "query", query, "seq", seq)
		return nil
	}

	s.applied = seq
	s.query = query
	s.results = mapper.ClassifyAll(recs)
	s.authority = AuthoritySearch
	s.log.Info("search applied", "query", query, "count", len(s.results))
	return nil
}

// Clear resets query and results and returns authority to the listing.
// The state afterwards is indistinguishable from a controller that never
// searched; in-flight completions issued before the Clear are invalidated.
func (s *Search) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.issued++
	s.applied = s.issued
	s.query = ""
	s.results = nil
	s.authority = AuthorityListing
}

func (s *Search) Authority() Authority {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.authority
}

func (s *Search) Query() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.query
}

// Results returns a snapshot copy of the held result sequence.
func (s *Search) Results() []models.CatalogRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.CatalogRecord, len(s.results))
	copy(out, s.results)
	return out
}
