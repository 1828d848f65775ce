// Package catalog reads products from the backing store. The catalog is
// maintained elsewhere; nothing here writes rows.
package catalog

import (
	"context"

	"github.com/pkg/errors"

	"chemical-leads-api/internal/models"
)

var ErrNotFound = errors.New("product not found")

// Filter restricts a listing. Text matches as a case-insensitive substring of
// the Field column; an empty Categories slice means no restriction.
type Filter struct {
	Text       string
	Field      models.SearchField
	Categories []models.Category
}

// OrderField is the column List sorts by: the searched field, or name when
// there is no search text.
func (f Filter) OrderField() models.SearchField {
	if f.Text == "" {
		return models.SearchByName
	}
	return f.Field
}

// Store is the query surface the services need from the catalog.
type Store interface {
	// Count returns the exact number of rows matching f.
	Count(ctx context.Context, f Filter) (int64, error)

	// List returns the rows matching f in ascending OrderField order, limited
	// to the window [offset, offset+limit).
	List(ctx context.Context, f Filter, offset, limit int) ([]models.Product, error)

	// FindByID returns ErrNotFound when no row has id.
	FindByID(ctx context.Context, id string) (*models.Product, error)

	// FindByIDs returns the rows whose id is in ids. Unknown ids are skipped.
	FindByIDs(ctx context.Context, ids []string) ([]models.Product, error)

	Ping(ctx context.Context) error
}

func categoryStrings(categories []models.Category) []string {
	out := make([]string, len(categories))
	for i, c := range categories {
		out[i] = string(c)
	}
	return out
}

// orderByIDs arranges rows to follow ids, collapsing duplicates.
func orderByIDs(rows []models.Product, ids []string) []models.Product {
	byID := make(map[string]models.Product, len(rows))
	for _, p := range rows {
		byID[p.ID] = p
	}

	out := make([]models.Product, 0, len(rows))
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		if p, ok := byID[id]; ok {
			out = append(out, p)
		}
	}
	return out
}
