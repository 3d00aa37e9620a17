package models

// CatalogRecord is one entry of the listing/search feed. The backend feed is
// not filtered, so an entry is either a real catalog item or a leaked
// non-item row; the variant is decided at the ingestion boundary by field
// presence (see mapper.Classify), never by a type tag from the wire.
type CatalogRecord interface {
	recordVariant()
}

type Rating struct {
	Rate  float64 `json:"rate"`
	Count int     `json:"count"`
}

type Item struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Image       string  `json:"image,omitempty"`
	Category    string  `json:"category,omitempty"`
	Rating      *Rating `json:"rating,omitempty"`
}

// ExposedAccount is a user row the backend leaked into the catalog feed.
// It must render distinctly and must never be coerced into an Item.
type ExposedAccount struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	Password string `json:"password,omitempty"`
}

func (Item) recordVariant()           {}
func (ExposedAccount) recordVariant() {}
