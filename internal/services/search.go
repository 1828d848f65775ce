package services

import (
	"context"
	"math"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"chemical-leads-api/internal/catalog"
	"chemical-leads-api/internal/models"
	"chemical-leads-api/pkg/cache"
)

// SearchService answers catalog searches and id lookups.
type SearchService struct {
	store catalog.Store
	cache *cache.RedisCache
}

// NewSearchService builds the service. cache may be nil.
func NewSearchService(store catalog.Store, cache *cache.RedisCache) *SearchService {
	return &SearchService{store: store, cache: cache}
}

// SearchProducts returns one ranked page of matching products.
//
// The store orders rows by the searched column and returns only the requested
// window; relevance ranking is then applied to that window alone. An exact
// match that the store places on a later page stays on that page.
func (s *SearchService) SearchProducts(ctx context.Context, params models.SearchParams) (*models.SearchResponse, error) {
	params = NormalizeSearchParams(params)

	cacheKey := ""
	if s.cache.IsAvailable() {
		cacheKey = cache.GenerateSearchKey(params)
		if cached, err := s.cache.GetSearchResults(ctx, cacheKey); err == nil && cached != nil {
			zap.L().Debug("search cache hit", zap.String("key", cacheKey))
			return cached, nil
		} else if err != nil {
			zap.L().Warn("search cache read failed", zap.String("key", cacheKey), zap.Error(err))
		}
	}

	filter := catalog.Filter{
		Text:       params.Query,
		Field:      params.Field,
		Categories: params.Categories,
	}

	total, err := s.store.Count(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "search products")
	}

	from := params.Offset()
	to := from + params.PageSize - 1

	products, err := s.store.List(ctx, filter, from, params.PageSize)
	if err != nil {
		return nil, errors.Wrap(err, "search products")
	}
	if products == nil {
		products = []models.Product{}
	}

	if params.Query != "" {
		RankByRelevance(products, params.Query, params.Field)
	}

	response := &models.SearchResponse{
		Products: products,
		Total:    total,
		Page:     params.Page,
		PageSize: params.PageSize,
		HasMore:  int64(to) < total-1,
	}

	if cacheKey != "" {
		if err := s.cache.SetSearchResults(ctx, cacheKey, response); err != nil {
			zap.L().Warn("failed to cache search results", zap.String("key", cacheKey), zap.Error(err))
		}
	}

	return response, nil
}

// NormalizeSearchParams trims the query, drops unknown or repeated
// categories and coerces page and pageSize into range. Page is capped so
// that the last ordinal of its window fits in an int.
func NormalizeSearchParams(params models.SearchParams) models.SearchParams {
	params.Query = strings.TrimSpace(params.Query)
	if params.Field != models.SearchByCAS {
		params.Field = models.SearchByName
	}

	if params.Page <= 0 {
		params.Page = models.DefaultPage
	}
	if params.PageSize <= 0 {
		params.PageSize = models.DefaultPageSize
	}
	if params.PageSize > models.MaxPageSize {
		params.PageSize = models.MaxPageSize
	}
	// The page window must stay addressable as an int.
	if maxPage := math.MaxInt / params.PageSize; params.Page > maxPage {
		params.Page = maxPage
	}

	var categories []models.Category
	seen := map[models.Category]bool{}
	for _, c := range params.Categories {
		if !c.Valid() || seen[c] {
			continue
		}
		seen[c] = true
		categories = append(categories, c)
	}
	params.Categories = categories

	return params
}

// GetProduct returns ErrProductNotFound when id is unknown.
func (s *SearchService) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrProductNotFound
	}
	p, err := s.store.FindByID(ctx, id)
	if errors.Is(err, catalog.ErrNotFound) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "get product")
	}
	return p, nil
}

// GetProducts looks up several ids at once. Unknown ids are dropped; only an
// empty id list is an error.
func (s *SearchService) GetProducts(ctx context.Context, ids []string) ([]models.Product, error) {
	clean := make([]string, 0, len(ids))
	for _, id := range ids {
		if id = strings.TrimSpace(id); id != "" {
			clean = append(clean, id)
		}
	}
	if len(clean) == 0 {
		return nil, ErrNoProductIDs
	}

	products, err := s.store.FindByIDs(ctx, clean)
	if err != nil {
		return nil, errors.Wrap(err, "get products")
	}
	if products == nil {
		products = []models.Product{}
	}
	return products, nil
}

// Ping reports whether the catalog store is reachable.
func (s *SearchService) Ping(ctx context.Context) error {
	return s.store.Ping(ctx)
}
