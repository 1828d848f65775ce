package catalog

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"chemical-leads-api/internal/models"
)

func newGormTestStore(t *testing.T) *GormStore {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "catalog.db")), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&models.Product{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	rows := []models.Product{
		{ID: "a1", Name: "Acetone", CASNumber: "67-64-1", Category: models.CategoryChemical},
		{ID: "a2", Name: "Acetyl Metformin", CASNumber: "84645-27-2", Category: models.CategoryImpurity},
		{ID: "a4", Name: "Metformin Hydrochloride", CASNumber: "21115-70-4", Category: models.CategoryAPI},
		{ID: "a3", Name: "Metformin Hydrochloride", CASNumber: "1115-70-4", Category: models.CategoryAPI},
		{ID: "a5", Name: "50% Acetic Acid", CASNumber: "64-19-7", Category: models.CategoryChemical},
		{ID: "a6", Name: "500 Acetic Concentrate", CASNumber: "64-19-8", Category: models.CategoryChemical},
		{ID: "a7", Name: "Sodium_Chloride", CASNumber: "7647-14-5", Category: models.CategoryChemical},
		{ID: "a8", Name: "SodiumXChloride", CASNumber: "7647-14-6", Category: models.CategoryChemical},
	}
	if err := db.Create(&rows).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}

	store := NewGormStore(db)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestGormStoreList(t *testing.T) {
	s := newGormTestStore(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		filter Filter
		offset int
		limit  int
		want   []string
		total  int64
	}{
		{"all by name then id", Filter{}, 0, 10, []string{"a5", "a6", "a1", "a2", "a3", "a4", "a8", "a7"}, 8},
		{"window", Filter{}, 2, 3, []string{"a1", "a2", "a3"}, 8},
		{"past the end", Filter{}, 20, 5, []string{}, 8},
		{"name substring any case", Filter{Text: "METFORMIN", Field: models.SearchByName}, 0, 10, []string{"a2", "a3", "a4"}, 3},
		{"percent is literal", Filter{Text: "50%", Field: models.SearchByName}, 0, 10, []string{"a5"}, 1},
		{"underscore is literal", Filter{Text: "m_c", Field: models.SearchByName}, 0, 10, []string{"a7"}, 1},
		{"cas ordered by cas", Filter{Text: "1115-70", Field: models.SearchByCAS}, 0, 10, []string{"a3", "a4"}, 2},
		{"category restriction", Filter{Categories: []models.Category{models.CategoryImpurity, models.CategoryAPI}}, 0, 10, []string{"a2", "a3", "a4"}, 3},
		{"text and category", Filter{Text: "acet", Field: models.SearchByName, Categories: []models.Category{models.CategoryChemical}}, 0, 10, []string{"a5", "a6", "a1"}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, err := s.List(ctx, tt.filter, tt.offset, tt.limit)
			if err != nil {
				t.Fatalf("List: %v", err)
			}
			if got := ids(rows); !equalIDs(got, tt.want) {
				t.Errorf("List ids = %v, want %v", got, tt.want)
			}
			total, err := s.Count(ctx, tt.filter)
			if err != nil {
				t.Fatalf("Count: %v", err)
			}
			if total != tt.total {
				t.Errorf("Count = %d, want %d", total, tt.total)
			}
		})
	}
}

func TestGormStoreLookups(t *testing.T) {
	s := newGormTestStore(t)
	ctx := context.Background()

	p, err := s.FindByID(ctx, "a3")
	if err != nil || p.CASNumber != "1115-70-4" || p.Category != models.CategoryAPI {
		t.Fatalf("FindByID = %+v, %v", p, err)
	}
	if _, err := s.FindByID(ctx, "nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	rows, err := s.FindByIDs(ctx, []string{"a7", "nope", "a1", "a7"})
	if err != nil {
		t.Fatalf("FindByIDs: %v", err)
	}
	if got := ids(rows); !equalIDs(got, []string{"a7", "a1"}) {
		t.Errorf("FindByIDs = %v", got)
	}

	if err := s.Ping(ctx); err != nil {
		t.Errorf("Ping: %v", err)
	}
}
