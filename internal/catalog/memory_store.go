package catalog

import (
	"context"
	"os"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"chemical-leads-api/internal/models"
	"chemical-leads-api/pkg/utils"
)

// MemoryStore serves a fixed product list. It backs local runs without a
// database and the service tests. It is read-only after construction, so
// concurrent reads need no locking.
type MemoryStore struct {
	products []models.Product
}

// NewMemoryStore copies products. Rows with an unknown category or a
// duplicate id are rejected.
func NewMemoryStore(products []models.Product) (*MemoryStore, error) {
	seen := make(map[string]bool, len(products))
	out := make([]models.Product, 0, len(products))
	for i, p := range products {
		if p.ID == "" {
			return nil, errors.Errorf("product %d: missing id", i)
		}
		if seen[p.ID] {
			return nil, errors.Errorf("product %d: duplicate id %q", i, p.ID)
		}
		if !p.Category.Valid() {
			return nil, errors.Errorf("product %q: unknown category %q", p.ID, p.Category)
		}
		seen[p.ID] = true
		out = append(out, p)
	}
	return &MemoryStore{products: out}, nil
}

type seedFile struct {
	Products []models.Product `yaml:"products"`
}

// LoadSeedFile builds a MemoryStore from a YAML file of the form
//
//	products:
//	  - id: p-1
//	    name: Metformin Hydrochloride
//	    cas_number: 1115-70-4
//	    category: api
func LoadSeedFile(path string) (*MemoryStore, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read catalog seed")
	}
	var seed seedFile
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, errors.Wrap(err, "parse catalog seed")
	}
	return NewMemoryStore(seed.Products)
}

func (s *MemoryStore) match(f Filter) []models.Product {
	var allowed map[models.Category]bool
	if len(f.Categories) > 0 {
		allowed = make(map[models.Category]bool, len(f.Categories))
		for _, c := range f.Categories {
			allowed[c] = true
		}
	}
	needle := strings.ToLower(f.Text)

	var out []models.Product
	for _, p := range s.products {
		if allowed != nil && !allowed[p.Category] {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(p.SearchValue(f.Field)), needle) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func (s *MemoryStore) Count(_ context.Context, f Filter) (int64, error) {
	return int64(len(s.match(f))), nil
}

func (s *MemoryStore) List(_ context.Context, f Filter, offset, limit int) ([]models.Product, error) {
	rows := s.match(f)

	field := f.OrderField()
	col := utils.NewCollator()
	sort.SliceStable(rows, func(i, j int) bool {
		if c := col.CompareString(rows[i].SearchValue(field), rows[j].SearchValue(field)); c != 0 {
			return c < 0
		}
		return rows[i].ID < rows[j].ID
	})

	if offset < 0 {
		offset = 0
	}
	if limit <= 0 || offset >= len(rows) {
		return []models.Product{}, nil
	}
	end := offset + limit
	if end > len(rows) {
		end = len(rows)
	}
	return rows[offset:end], nil
}

func (s *MemoryStore) FindByID(_ context.Context, id string) (*models.Product, error) {
	for _, p := range s.products {
		if p.ID == id {
			p := p
			return &p, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) FindByIDs(_ context.Context, ids []string) ([]models.Product, error) {
	wanted := make(map[string]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}
	var rows []models.Product
	for _, p := range s.products {
		if wanted[p.ID] {
			rows = append(rows, p)
		}
	}
	return orderByIDs(rows, ids), nil
}

func (s *MemoryStore) Ping(context.Context) error {
	return nil
}
