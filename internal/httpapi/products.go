package httpapi

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/spf13/cast"
	"go.uber.org/zap"

	"chemical-leads-api/internal/models"
	"chemical-leads-api/internal/services"
)

// SearchProducts handles GET /products.
func (h *Handler) SearchProducts(c *gin.Context) {
	params := parseSearchParams(c)

	results, err := h.search.SearchProducts(c.Request.Context(), params)
	if err != nil {
		zap.L().Error("search failed", zap.String("query", params.Query), zap.Error(err))
		abortError(c, http.StatusInternalServerError, "Failed to search products", "")
		return
	}

	c.JSON(http.StatusOK, results)
}

// GetProduct handles GET /products/:id.
func (h *Handler) GetProduct(c *gin.Context) {
	product, err := h.search.GetProduct(c.Request.Context(), c.Param("id"))
	if errors.Is(err, services.ErrProductNotFound) {
		abortError(c, http.StatusNotFound, "Product not found", "")
		return
	}
	if err != nil {
		zap.L().Error("product lookup failed", zap.String("id", c.Param("id")), zap.Error(err))
		abortError(c, http.StatusInternalServerError, "Failed to fetch product", "")
		return
	}

	c.JSON(http.StatusOK, product)
}

// GetProducts handles POST /products/batch.
func (h *Handler) GetProducts(c *gin.Context) {
	var req models.BatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortError(c, http.StatusBadRequest, services.ErrNoProductIDs.Error(), "")
		return
	}

	products, err := h.search.GetProducts(c.Request.Context(), req.IDs)
	if errors.Is(err, services.ErrNoProductIDs) {
		abortError(c, http.StatusBadRequest, err.Error(), "")
		return
	}
	if err != nil {
		zap.L().Error("batch lookup failed", zap.Int("ids", len(req.IDs)), zap.Error(err))
		abortError(c, http.StatusInternalServerError, "Failed to fetch products", "")
		return
	}

	c.JSON(http.StatusOK, models.BatchResponse{Products: products})
}

// parseSearchParams reads the query string. Bad numbers fall through as zero
// and are defaulted by the search service.
func parseSearchParams(c *gin.Context) models.SearchParams {
	var categories []models.Category
	for _, raw := range c.QueryArray("categories") {
		for _, part := range strings.Split(raw, ",") {
			if category, ok := models.ParseCategory(part); ok {
				categories = append(categories, category)
			}
		}
	}

	return models.SearchParams{
		Query:      c.Query("query"),
		Field:      models.ParseSearchField(c.Query("searchType")),
		Categories: categories,
		Page:       cast.ToInt(strings.TrimSpace(c.Query("page"))),
		PageSize:   cast.ToInt(strings.TrimSpace(c.Query("pageSize"))),
	}
}

func abortError(c *gin.Context, status int, message, details string) {
	c.AbortWithStatusJSON(status, models.ErrorResponse{
		Error:   message,
		Code:    status,
		Details: details,
	})
}
