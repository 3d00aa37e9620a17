// Package detail holds the product-detail view state: one selected record,
// its review list, and the review submission lifecycle.
package detail

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"shopfront/internal/apis/shop"
	"shopfront/internal/apis/shop/codec"
	"shopfront/internal/apis/shop/mapper"
	"shopfront/internal/domain/models"
)

type State int

const (
	StateLoading State = iota
	StateReady
	StateNotFound
)

var (
	ErrEmptyReview    = errors.New("review text is empty")
	ErrNotReady       = errors.New("no product loaded")
	ErrSubmitInFlight = errors.New("a review submission is already in flight")
)

type Backend interface {
	GetProduct(ctx context.Context, id string) (shop.Record, error)
	ListComments(ctx context.Context, productID string) ([]shop.Comment, error)
	PostComment(ctx context.Context, productID, payload string) error
}

// View owns the selected record and its reviews for the lifetime of the
// detail view. Reviews load as a side channel: their failure never blocks
// the item from reaching Ready.
type View struct {
	api         Backend
	log         *slog.Logger
	submitterID int64

	mu         sync.Mutex
	state      State
	productID  string
	record     models.CatalogRecord
	reviews    []models.Review
	submitting bool
}

func NewView(api Backend, submitterID int64, logger *slog.Logger) *View {
	if logger == nil {
		logger = slog.Default()
	}
	return &View{api: api, log: logger, submitterID: submitterID}
}

// Load fetches the record and its reviews in parallel. A fetch failure or a
// response without a usable id both end in NotFound — the caller gets a
// terminal view state, not an error to retry. A comments failure degrades
// to an empty list, logged only.
func (v *View) Load(ctx context.Context, id string) {
	v.mu.Lock()
	v.state = StateLoading
	v.productID = id
	v.record = nil
	v.reviews = nil
	v.mu.Unlock()

	var (
		rec     shop.Record
		reviews []models.Review
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		r, err := v.api.GetProduct(gctx, id)
		if err != nil {
			return fmt.Errorf("get product id=%s: %w", id, err)
		}
		rec = r
		return nil
	})
	g.Go(func() error {
		cs, err := v.api.ListComments(gctx, id)
		if err != nil {
			v.log.Warn("comments load failed (continue)", "product_id", id, "err", err)
			return nil
		}
		reviews = mapper.FromComments(cs)
		return nil
	})

	err := g.Wait()

	v.mu.Lock()
	defer v.mu.Unlock()
	if v.productID != id {
		// view moved on to another record; discard this completion
		return
	}

	if err != nil {
		v.log.Error("product load failed", "product_id", id, "err", err)
		v.state = StateNotFound
		return
	}
	if !mapper.HasUsableID(rec) {
		v.state = StateNotFound
		return
	}

	v.state = StateReady
	v.record = mapper.Classify(rec)
	v.reviews = reviews
}

// SubmitReview encodes and posts a review, then refreshes the review list.
// Empty or whitespace-only text is rejected locally before any request, as
// is text containing the payload delimiter. On failure the error is
// returned and the caller keeps the unsent text for retry.
func (v *View) SubmitReview(ctx context.Context, text string) error {
	if strings.TrimSpace(text) == "" {
		return ErrEmptyReview
	}

	payload, err := codec.Encode(v.submitterID, text)
	if err != nil {
		return err
	}

	v.mu.Lock()
	if v.state != StateReady {
		v.mu.Unlock()
		return ErrNotReady
	}
	if v.submitting {
		v.mu.Unlock()
		return ErrSubmitInFlight
	}
	v.submitting = true
	id := v.productID
	v.mu.Unlock()

	defer func() {
		v.mu.Lock()
		v.submitting = false
		v.mu.Unlock()
	}()

	if err := v.api.PostComment(ctx, id, payload); err != nil {
		return fmt.Errorf("post review: %w", err)
	}

	cs, err := v.api.ListComments(ctx, id)
	if err != nil {
		// the review went through; only the refresh failed
		v.log.Warn("review list refresh failed", "product_id", id, "err", err)
		return nil
	}

	v.mu.Lock()
	if v.productID == id {
		v.reviews = mapper.FromComments(cs)
	}
	v.mu.Unlock()
	return nil
}

func (v *View) State() State {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

func (v *View) Record() models.CatalogRecord {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.record
}

func (v *View) Reviews() []models.Review {
	v.mu.Lock()
	defer v.mu.Unlock()
	out := make([]models.Review, len(v.reviews))
	copy(out, v.reviews)
	return out
}

func (v *View) Submitting() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.submitting
}
