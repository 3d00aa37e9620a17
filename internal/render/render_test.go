package render

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"shopfront/internal/browse"
	"shopfront/internal/domain/models"
)

func TestReviewBodySanitizedByDefault(t *testing.T) {
	p := NewPolicy(false)

	out := p.ReviewBody(`hello <script>alert("xss")</script><b>world</b>`)
	assert.NotContains(t, out, "<script>")
	assert.NotContains(t, out, "alert")
	assert.Contains(t, out, "<b>world</b>", "harmless formatting survives sanitization")
}

func TestReviewBodyUnsafeModePassesRawMarkup(t *testing.T) {
	// the insecure demo mode reproduces the original behavior verbatim
	p := NewPolicy(true)

	raw := `<script>alert("xss")</script>`
	assert.Equal(t, raw, p.ReviewBody(raw))
}

func TestRecordFlagsExposedAccount(t *testing.T) {
	var buf bytes.Buffer
	Record(&buf, models.ExposedAccount{ID: "2", Username: "bob", Email: "b@x.com", Password: "hunter2"})

	out := buf.String()
	assert.Contains(t, out, "EXPOSED USER DATA")
	assert.Contains(t, out, "bob")
	assert.Contains(t, out, "hunter2")
}

func TestRecordItem(t *testing.T) {
	var buf bytes.Buffer
	Record(&buf, models.Item{
		ID: "1", Name: "A", Price: 9.99, Category: "misc",
		Rating: &models.Rating{Rate: 4.5, Count: 10},
	})

	out := buf.String()
	assert.Contains(t, out, "A")
	assert.Contains(t, out, "$9.99")
	assert.Contains(t, out, "4.5/5 (10)")
	assert.NotContains(t, out, "EXPOSED", "items are never flagged")
}

func TestRecordsSearchHeaderKeepsQuery(t *testing.T) {
	var buf bytes.Buffer
	Records(&buf, nil, browse.AuthoritySearch, "xyz-no-match")

	out := buf.String()
	assert.Contains(t, out, `Search Results (0) for "xyz-no-match"`)
	assert.Contains(t, out, "No products found")
}

func TestRecordsListingHeader(t *testing.T) {
	var buf bytes.Buffer
	Records(&buf, []models.CatalogRecord{models.Item{ID: "1", Name: "A"}}, browse.AuthorityListing, "")

	assert.Contains(t, buf.String(), "All Products (1)")
}

func TestReviews(t *testing.T) {
	var buf bytes.Buffer
	p := NewPolicy(false)
	Reviews(&buf, p, []models.Review{
		{ID: "1", Username: "demo", Content: "Nice", CreatedAt: time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)},
	})

	out := buf.String()
	assert.Contains(t, out, "Customer Reviews (1)")
	assert.Contains(t, out, "demo")
	assert.Contains(t, out, "2026-08-29")
	assert.Contains(t, out, "Nice")
}
