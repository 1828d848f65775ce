package services

import (
	"context"
	"reflect"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"chemical-leads-api/internal/catalog"
	"chemical-leads-api/internal/models"
	"chemical-leads-api/pkg/cache"
)

// countingStore records how often the catalog is actually queried.
type countingStore struct {
	catalog.Store
	lists atomic.Int32
}

func (s *countingStore) List(ctx context.Context, f catalog.Filter, offset, limit int) ([]models.Product, error) {
	s.lists.Add(1)
	return s.Store.List(ctx, f, offset, limit)
}

func TestSearchServedFromCache(t *testing.T) {
	mem, err := catalog.NewMemoryStore(generatedCatalog())
	if err != nil {
		t.Fatal(err)
	}
	store := &countingStore{Store: mem}

	mr := miniredis.RunT(t)
	rc := cache.NewWithClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}), time.Minute)
	defer rc.Close()

	svc := NewSearchService(store, rc)
	ctx := context.Background()
	params := models.SearchParams{Query: "ol", Field: models.SearchByName, Page: 1, PageSize: 5}

	first, err := svc.SearchProducts(ctx, params)
	if err != nil {
		t.Fatal(err)
	}
	second, err := svc.SearchProducts(ctx, models.SearchParams{Query: " OL ", Page: 1, PageSize: 5})
	if err != nil {
		t.Fatal(err)
	}

	if n := store.lists.Load(); n != 1 {
		t.Errorf("store queried %d times, want 1", n)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("cached response differs:\n%+v\n%+v", first, second)
	}

	if _, err := rc.FlushCache(ctx); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.SearchProducts(ctx, params); err != nil {
		t.Fatal(err)
	}
	if n := store.lists.Load(); n != 2 {
		t.Errorf("store queried %d times after flush, want 2", n)
	}
}

func TestSearchSurvivesCacheOutage(t *testing.T) {
	mem, err := catalog.NewMemoryStore(generatedCatalog())
	if err != nil {
		t.Fatal(err)
	}
	mr := miniredis.RunT(t)
	rc := cache.NewWithClient(redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1}), time.Minute)
	defer rc.Close()
	mr.Close()

	resp, err := NewSearchService(mem, rc).SearchProducts(context.Background(), models.SearchParams{Query: "met"})
	if err != nil {
		t.Fatalf("cache errors must not fail a search: %v", err)
	}
	if resp.Total == 0 {
		t.Error("expected results from the store")
	}
}
