package endpoints

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return New(srv.Client(), srv.URL, func(req *http.Request) {
		req.Header.Set("Accept", "application/json, text/plain, */*")
	})
}

func TestListProducts(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `[{"id":1,"name":"A","price":9.99},{"id":2,"username":"bob"}]`)
	})

	recs, err := c.ListProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "A", recs[0].Raw["name"])
	assert.Equal(t, "bob", recs[1].Raw["username"])
}

func TestSearchProductsEncodesQuery(t *testing.T) {
	var gotQuery string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products/search", r.URL.Path)
		gotQuery = r.URL.Query().Get("q")
		io.WriteString(w, `[]`)
	})

	recs, err := c.SearchProducts(context.Background(), "caffè & cream?")
	require.NoError(t, err)
	assert.Empty(t, recs, "empty result set is a valid success response")
	assert.Equal(t, "caffè & cream?", gotQuery)
}

func TestFeedErrorStatus(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		io.WriteString(w, `{"code":"upstream","message":"down"}`)
	})

	_, err := c.ListProducts(context.Background())
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.Status)
	assert.Equal(t, "down", apiErr.Message)
}

func TestGetProductRaw(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products/42", r.URL.Path)
		io.WriteString(w, `{"id":42,"name":"Mechanical Keyboard","price":129.0}`)
	})

	rec, err := c.GetProduct(context.Background(), "42")
	require.NoError(t, err)
	assert.Equal(t, "Mechanical Keyboard", rec.Raw["name"])
}

func TestListComments(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products/42/comments", r.URL.Path)
		io.WriteString(w, `[{"id":1,"username":"demo","comment":"Nice","created_at":"2026-08-29T10:00:00Z"}]`)
	})

	cs, err := c.ListComments(context.Background(), "42")
	require.NoError(t, err)
	require.Len(t, cs, 1)
	assert.Equal(t, "Nice", cs[0].Comment)
}

func TestPostCommentSendsPlainTextPayload(t *testing.T) {
	var (
		gotBody        string
		gotContentType string
	)
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/products/42/comments", r.URL.Path)
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		gotContentType = r.Header.Get("Content-Type")
		w.WriteHeader(http.StatusCreated)
	})

	require.NoError(t, c.PostComment(context.Background(), "42", "1|ID_SPLIT|Nice"))
	assert.Equal(t, "1|ID_SPLIT|Nice", gotBody)
	assert.Equal(t, "text/plain", gotContentType)
}

func TestPostCommentErrorStatus(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		io.WriteString(w, `{"code":"bad_payload","message":"bad submitter id"}`)
	})

	err := c.PostComment(context.Background(), "42", "nonsense")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
}
