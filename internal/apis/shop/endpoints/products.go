package endpoints

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"shopfront/internal/apis/shop/responses"
)

const feedBodyLimit = 4 * 1024 * 1024

// ListProducts fetches the full catalog feed. Entries are returned raw:
// the feed is known to mix item rows with leaked user rows, so decoding
// stops at map[string]any and classification is left to the mapper.
func (c *Client) ListProducts(ctx context.Context) ([]responses.Record, error) {
	return c.fetchFeed(ctx, "/products")
}

// SearchProducts queries the backend search index. An empty result slice is
// a valid success response, distinct from an error.
func (c *Client) SearchProducts(ctx context.Context, query string) ([]responses.Record, error) {
	return c.fetchFeed(ctx, "/products/search?q="+url.QueryEscape(query))
}

func (c *Client) fetchFeed(ctx context.Context, path string) ([]responses.Record, error) {
	req, err := c.newReq(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.Doer.Do(req)
	if err != nil {
		return nil, err
	}

	b, err := readLimited(resp, feedBodyLimit)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, ParseAPIError(resp.StatusCode, b)
	}

	var arr []any
	if err := json.Unmarshal(b, &arr); err != nil {
		return nil, fmt.Errorf("fetch feed %s: bad json body=%s", path, string(b[:min(len(b), 1024)]))
	}

	out := make([]responses.Record, 0, len(arr))
	for _, it := range arr {
		if m, ok := it.(map[string]any); ok {
			out = append(out, responses.Record{Raw: m})
		}
	}
	return out, nil
}

// GetProduct fetches a single record by id. A not-found id is signalled by
// the backend with a body lacking a usable id, not a 404, so the record is
// returned raw and the caller decides.
func (c *Client) GetProduct(ctx context.Context, id string) (responses.Record, error) {
	req, err := c.newReq(ctx, http.MethodGet, "/products/"+url.PathEscape(id), nil)
	if err != nil {
		return responses.Record{}, err
	}

	resp, err := c.Doer.Do(req)
	if err != nil {
		return responses.Record{}, err
	}

	b, err := readLimited(resp, 256*1024)
	if err != nil {
		return responses.Record{}, err
	}

	if resp.StatusCode != http.StatusOK {
		return responses.Record{}, ParseAPIError(resp.StatusCode, b)
	}

	var raw map[string]any
	if err := json.Unmarshal(b, &raw); err != nil {
		return responses.Record{}, fmt.Errorf("get product id=%s: bad json body=%s", id, string(b[:min(len(b), 1024)]))
	}

	return responses.Record{Raw: raw}, nil
}
