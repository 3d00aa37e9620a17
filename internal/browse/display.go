package browse

import "shopfront/internal/domain/models"

// Authority names which held data set is shown: the full listing or the
// search results. A non-empty query with zero matches keeps search
// authority, so "no results" renders instead of silently falling back to
// the listing.
type Authority int

const (
	AuthorityListing Authority = iota
	AuthoritySearch
)

func (a Authority) String() string {
	if a == AuthoritySearch {
		return "search"
	}
	return "listing"
}

// Display resolves the records to show right now. Both inputs are read as
// snapshots; neither store is mutated.
func Display(l *Listing, s *Search) ([]models.CatalogRecord, Authority) {
	if s.Authority() == AuthoritySearch {
		return s.Results(), AuthoritySearch
	}
	return l.Records(), AuthorityListing
}
