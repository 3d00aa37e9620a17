package endpoints

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"shopfront/internal/apis/shop/responses"
)

func (c *Client) ListComments(ctx context.Context, productID string) ([]responses.Comment, error) {
	req, err := c.newReq(ctx, http.MethodGet, "/products/"+url.PathEscape(productID)+"/comments", nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.Doer.Do(req)
	if err != nil {
		return nil, err
	}

	b, err := readLimited(resp, 1024*1024)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, ParseAPIError(resp.StatusCode, b)
	}

	var out []responses.Comment
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, fmt.Errorf("list comments id=%s: bad json body=%s", productID, string(b[:min(len(b), 1024)]))
	}
	return out, nil
}

// PostComment submits an encoded review payload (see the codec package).
// The backend expects text/plain, not a structured body, and replies with a
// bare status.
func (c *Client) PostComment(ctx context.Context, productID, payload string) error {
	req, err := c.newReq(ctx, http.MethodPost, "/products/"+url.PathEscape(productID)+"/comments", strings.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "text/plain")

	resp, err := c.Doer.Do(req)
	if err != nil {
		return err
	}

	b, err := readLimited(resp, 64*1024)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return ParseAPIError(resp.StatusCode, b)
	}
	return nil
}
