package repository

import "shopfront/internal/domain/models"

// SnapshotRecord tags each dumped record with its variant so the file is
// self-describing; the in-memory sealed interface does not survive plain
// JSON on its own.
type SnapshotRecord struct {
	Kind    string                 `json:"kind"` // item|exposed_account
	Item    *models.Item           `json:"item,omitempty"`
	Account *models.ExposedAccount `json:"account,omitempty"`
}

type FeedSnapshot struct {
	FetchedAt string           `json:"fetched_at"`
	Authority string           `json:"authority"`
	Query     string           `json:"query,omitempty"`
	Records   []SnapshotRecord `json:"records"`
	Count     int              `json:"count"`
}

func ToSnapshotRecords(recs []models.CatalogRecord) []SnapshotRecord {
	out := make([]SnapshotRecord, 0, len(recs))
	for _, rec := range recs {
		switch r := rec.(type) {
		case models.Item:
			out = append(out, SnapshotRecord{Kind: "item", Item: &r})
		case models.ExposedAccount:
			out = append(out, SnapshotRecord{Kind: "exposed_account", Account: &r})
		}
	}
	return out
}
