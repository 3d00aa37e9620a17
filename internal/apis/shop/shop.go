package shop

import (
	"context"
	"log/slog"
	"net/http"

	"shopfront/internal/apis/shop/endpoints"
	"shopfront/internal/apis/shop/responses"
	"shopfront/internal/client"
)

type Record = responses.Record
type Comment = responses.Comment

// ShopService is the backend contract the client consumes: the catalog
// feed, the search index and the comment store.
type ShopService interface {
	ListProducts(ctx context.Context) ([]Record, error)
	SearchProducts(ctx context.Context, query string) ([]Record, error)
	GetProduct(ctx context.Context, id string) (Record, error)
	ListComments(ctx context.Context, productID string) ([]Comment, error)
	PostComment(ctx context.Context, productID, payload string) error
}

type service struct {
	api *endpoints.Client
	log *slog.Logger
}

func New(transport client.Transport, baseURL string, logger *slog.Logger) ShopService {
	if baseURL == "" {
		baseURL = "http://localhost:8000"
	}
	if logger == nil {
		logger = slog.Default()
	}

	s := &service{log: logger}
	s.api = endpoints.New(transport, baseURL, s.applyDefaultHeaders)
	return s
}

func (s *service) applyDefaultHeaders(req *http.Request) {
	req.Header.Set("Accept", "application/json, text/plain, */*")
	req.Header.Set("User-Agent", "shopfront/1.0")
}

func (s *service) ListProducts(ctx context.Context) ([]Record, error) {
	return s.api.ListProducts(ctx)
}

func (s *service) SearchProducts(ctx context.Context, query string) ([]Record, error) {
	return s.api.SearchProducts(ctx, query)
}

func (s *service) GetProduct(ctx context.Context, id string) (Record, error) {
	return s.api.GetProduct(ctx, id)
}

func (s *service) ListComments(ctx context.Context, productID string) ([]Comment, error) {
	return s.api.ListComments(ctx, productID)
}

func (s *service) PostComment(ctx context.Context, productID, payload string) error {
	return s.api.PostComment(ctx, productID, payload)
}
