// Package mapper projects raw feed records into domain variants. The feed
// carries no type tag, so the variant is decided purely by field presence:
// a record with a "username" field is a leaked account row, anything else
// is treated as a catalog item. Classification is total — any shape the
// feed can produce maps to some variant without error.
package mapper

import (
	"fmt"
	"strings"
	"time"

	"shopfront/internal/apis/shop/responses"
	"shopfront/internal/domain/models"
)

func Classify(rec responses.Record) models.CatalogRecord {
	raw := rec.Raw
	if raw == nil {
		raw = map[string]any{}
	}

	if _, leaked := raw["username"]; leaked {
		return models.ExposedAccount{
			ID:       extractID(raw),
			Username: pickString(raw, "username", "name"),
			Email:    pickString(raw, "email", "description"),
			Password: pickScalar(raw, "password", "price"),
		}
	}

	return models.Item{
		ID:          extractID(raw),
		Name:        pickString(raw, "name", "title"),
		Description: pickString(raw, "description"),
		Price:       asFloat(raw["price"]),
		Image:       pickString(raw, "image"),
		Category:    pickString(raw, "category"),
		Rating:      extractRating(raw),
	}
}

// HasUsableID reports whether the record carries an identifier the backend
// would accept back. A detail response without one means not-found.
func HasUsableID(rec responses.Record) bool {
	if rec.Raw == nil {
		return false
	}
	return extractID(rec.Raw) != ""
}

func ClassifyAll(recs []responses.Record) []models.CatalogRecord {
	out := make([]models.CatalogRecord, 0, len(recs))
	for _, r := range recs {
		out = append(out, Classify(r))
	}
	return out
}

// FromComment converts a wire comment into a Review. Timestamps arrive in a
// handful of shapes; unparseable ones degrade to the zero time rather than
// failing the whole list.
func FromComment(c responses.Comment) models.Review {
	return models.Review{
		ID:        scalarString(c.ID),
		Username:  c.Username,
		Content:   c.Comment,
		CreatedAt: parseTime(c.CreatedAt),
	}
}

func FromComments(cs []responses.Comment) []models.Review {
	out := make([]models.Review, 0, len(cs))
	for _, c := range cs {
		out = append(out, FromComment(c))
	}
	return out
}

func extractID(m map[string]any) string {
	if v, ok := asNumberString(m["id"]); ok {
		return v
	}
	return ""
}

func extractRating(m map[string]any) *models.Rating {
	rate, okRate := asFloatOK(m["rating_rate"])
	if !okRate {
		return nil
	}
	r := &models.Rating{Rate: rate}
	if c, ok := asFloatOK(m["rating_count"]); ok {
		r.Count = int(c)
	}
	return r
}

func pickString(m map[string]any, keys ...string) string {
	for _, k := range keys {
		if v, ok := asString(m[k]); ok && v != "" {
			return v
		}
	}
	return ""
}

// pickScalar is pickString that also accepts numbers: the observed feed
// falls back to numeric columns for the leaked rows.
func pickScalar(m map[string]any, keys ...string) string {
	for _, k := range keys {
		if v, ok := asNumberString(m[k]); ok && v != "" {
			return v
		}
	}
	return ""
}

func asString(v any) (string, bool) {
	s, ok := v.(string)
	if !ok {
		return "", false
	}
	return s, true
}

func asNumberString(v any) (string, bool) {
	switch t := v.(type) {
	case float64:
		if t == float64(int64(t)) {
			return fmt.Sprintf("%d", int64(t)), true
		}
		return fmt.Sprintf("%v", t), true
	case int:
		return fmt.Sprintf("%d", t), true
	case int64:
		return fmt.Sprintf("%d", t), true
	case string:
		if t != "" {
			return t, true
		}
	}
	return "", false
}

func asFloat(v any) float64 {
	f, _ := asFloatOK(v)
	return f
}

func asFloatOK(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	case string:
		var f float64
		if _, err := fmt.Sscanf(strings.TrimSpace(t), "%g", &f); err == nil {
			return f, true
		}
	}
	return 0, false
}

func scalarString(v any) string {
	s, _ := asNumberString(v)
	return s
}

func parseTime(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
