// Package browse holds the home-view state: the full catalog listing, the
// live search state and the display-authority rule that arbitrates between
// them.
package browse

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"shopfront/internal/apis/shop"
	"shopfront/internal/apis/shop/mapper"
	"shopfront/internal/domain/models"
)

type ListingState int

const (
	ListingLoading ListingState = iota
	ListingLoaded
	ListingFailed
)

type Feed interface {
	ListProducts(ctx context.Context) ([]shop.Record, error)
}

// Listing holds the full catalog, fetched once per instance. Load moves the
// store from Loading to Loaded or Failed and the state is terminal either
// way: a fresh view builds a fresh Listing.
type Listing struct {
	feed Feed
	log  *slog.Logger

	mu      sync.Mutex
	state   ListingState
	records []models.CatalogRecord
	loadErr error
}

func NewListing(feed Feed, logger *slog.Logger) *Listing {
	if logger == nil {
		logger = slog.Default()
	}
	return &Listing{feed: feed, log: logger}
}

func (l *Listing) Load(ctx context.Context) error {
	l.mu.Lock()
	if l.state != ListingLoading {
		err := l.loadErr
		l.mu.Unlock()
		return err
	}
	l.mu.Unlock()

	recs, err := l.feed.ListProducts(ctx)

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.state != ListingLoading {
		// another Load finished first; terminal state stands
		return l.loadErr
	}

	if err != nil {
		l.state = ListingFailed
		l.loadErr = fmt.Errorf("load catalog: %w", err)
		l.log.Error("catalog load failed", "err", err)
		return l.loadErr
	}

	l.state = ListingLoaded
	l.records = mapper.ClassifyAll(recs)
	l.log.Info("catalog loaded", "count", len(l.records))
	return nil
}

func (l *Listing) State() ListingState {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// Records returns a snapshot copy of the held sequence.
func (l *Listing) Records() []models.CatalogRecord {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]models.CatalogRecord, len(l.records))
	copy(out, l.records)
	return out
}
