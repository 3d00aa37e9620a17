// Package render maps classified records and reviews to text output.
//
// Review bodies may carry arbitrary markup straight from other users. By
// default they pass through an HTML sanitizer before rendering. Setting
// Policy.UnsafeHTML emits the markup verbatim — that reproduces the
// insecure demo behavior of the original client and exists only behind
// this explicitly named switch.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"shopfront/internal/browse"
	"shopfront/internal/domain/models"
)

type Policy struct {
	UnsafeHTML bool

	sanitizer *bluemonday.Policy
}

func NewPolicy(unsafeHTML bool) *Policy {
	return &Policy{
		UnsafeHTML: unsafeHTML,
		sanitizer:  bluemonday.UGCPolicy(),
	}
}

// ReviewBody returns the renderable form of a review's content under the
// active policy.
func (p *Policy) ReviewBody(content string) string {
	if p.UnsafeHTML {
		return content
	}
	return p.sanitizer.Sanitize(content)
}

// Record writes one catalog record. Leaked account rows are flagged loudly
// and are never shaped like an item.
func Record(w io.Writer, rec models.CatalogRecord) {
	switch r := rec.(type) {
	case models.ExposedAccount:
		fmt.Fprintf(w, "!!! EXPOSED USER DATA !!!\n")
		fmt.Fprintf(w, "  id:       %s\n", r.ID)
		fmt.Fprintf(w, "  username: %s\n", r.Username)
		fmt.Fprintf(w, "  email:    %s\n", r.Email)
		fmt.Fprintf(w, "  password: %s\n", r.Password)
	case models.Item:
		fmt.Fprintf(w, "[%s] %s — $%.2f\n", r.ID, r.Name, r.Price)
		if r.Description != "" {
			fmt.Fprintf(w, "  %s\n", r.Description)
		}
		if r.Rating != nil {
			fmt.Fprintf(w, "  rating: %.1f/5 (%d)\n", r.Rating.Rate, r.Rating.Count)
		}
		if r.Category != "" {
			fmt.Fprintf(w, "  category: %s\n", strings.ToUpper(r.Category))
		}
	default:
		fmt.Fprintf(w, "(unrenderable record %T)\n", rec)
	}
}

// Records writes a feed with its header line: the record count plus, for
// search results, the preserved query text.
func Records(w io.Writer, recs []models.CatalogRecord, authority browse.Authority, query string) {
	if authority == browse.AuthoritySearch {
		fmt.Fprintf(w, "Search Results (%d) for %q\n", len(recs), query)
	} else {
		fmt.Fprintf(w, "All Products (%d)\n", len(recs))
	}
	if len(recs) == 0 {
		fmt.Fprintln(w, "No products found")
		return
	}
	for _, rec := range recs {
		Record(w, rec)
	}
}

func Review(w io.Writer, p *Policy, rv models.Review) {
	when := ""
	if !rv.CreatedAt.IsZero() {
		when = rv.CreatedAt.Format("2006-01-02")
	}
	fmt.Fprintf(w, "%s  %s\n", rv.Username, when)
	fmt.Fprintf(w, "  %s\n", p.ReviewBody(rv.Content))
}

func Reviews(w io.Writer, p *Policy, rvs []models.Review) {
	fmt.Fprintf(w, "Customer Reviews (%d)\n", len(rvs))
	if len(rvs) == 0 {
		fmt.Fprintln(w, "No reviews yet.")
		return
	}
	for _, rv := range rvs {
		Review(w, p, rv)
	}
}
