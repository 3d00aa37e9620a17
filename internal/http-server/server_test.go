package httpserver_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopfront/internal/apis/shop"
	"shopfront/internal/browse"
	"shopfront/internal/client/transport"
	"shopfront/internal/detail"
	"shopfront/internal/domain/models"
	httpserver "shopfront/internal/http-server"
	"shopfront/internal/http-server/store"
)

// newStack spins up the stub backend and a real client wired against it.
func newStack(t *testing.T) (shop.ShopService, *httptest.Server) {
	t.Helper()

	srv := httpserver.New(nil)
	srv.RegisterRoutes(store.New())

	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)

	tr := &transport.HTTPTransport{Client: ts.Client()}
	return shop.New(tr, ts.URL, nil), ts
}

func TestListingRoundTrip(t *testing.T) {
	svc, _ := newStack(t)

	listing := browse.NewListing(svc, nil)
	require.NoError(t, listing.Load(context.Background()))

	recs := listing.Records()
	require.Len(t, recs, 4)

	acc, ok := recs[1].(models.ExposedAccount)
	require.True(t, ok, "the leaked row classifies as an account, not an item")
	assert.Equal(t, "bob", acc.Username)
	assert.Equal(t, "hunter2", acc.Password)
	assert.IsType(t, models.Item{}, recs[0])
}

func TestSearchRoundTrip(t *testing.T) {
	svc, _ := newStack(t)
	search := browse.NewSearch(svc, nil)

	require.NoError(t, search.Run(context.Background(), "keyboard"))
	recs := search.Results()
	require.Len(t, recs, 1)
	assert.Equal(t, "Mechanical Keyboard", recs[0].(models.Item).Name)

	require.NoError(t, search.Run(context.Background(), "xyz-no-match"))
	assert.Empty(t, search.Results())
	assert.Equal(t, browse.AuthoritySearch, search.Authority())
	assert.Equal(t, "xyz-no-match", search.Query())
}

func TestDetailAndReviewRoundTrip(t *testing.T) {
	svc, _ := newStack(t)

	view := detail.NewView(svc, 1, nil)
	view.Load(context.Background(), "42")
	require.Equal(t, detail.StateReady, view.State())
	assert.Empty(t, view.Reviews())

	require.NoError(t, view.SubmitReview(context.Background(), "Nice"))

	reviews := view.Reviews()
	require.Len(t, reviews, 1)
	assert.Equal(t, "demo", reviews[0].Username, "submitter id 1 resolves to the demo user")
	assert.Equal(t, "Nice", reviews[0].Content)
	assert.False(t, reviews[0].CreatedAt.IsZero())
}

func TestUnknownProductIsNotFound(t *testing.T) {
	svc, _ := newStack(t)

	view := detail.NewView(svc, 1, nil)
	view.Load(context.Background(), "999")
	assert.Equal(t, detail.StateNotFound, view.State())
}

func TestPostRejectsMalformedPayload(t *testing.T) {
	_, ts := newStack(t)

	resp, err := ts.Client().Post(ts.URL+"/products/42/comments", "text/plain", strings.NewReader("no delimiter"))
	require.NoError(t, err)
	defer resp.Body.Close()

	b, _ := io.ReadAll(resp.Body)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, string(b), "bad_payload")
}

func TestSearchWithoutQueryParamIsBadRequest(t *testing.T) {
	_, ts := newStack(t)

	resp, err := ts.Client().Get(ts.URL + "/products/search")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
