package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Health reports catalog and cache reachability. An unreachable catalog
// turns the response into a 503; the cache is optional.
func (h *Handler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	health := gin.H{
		"status":  "healthy",
		"service": serviceName,
		"version": serviceVersion,
		"catalog": "connected",
	}
	status := http.StatusOK

	if err := h.search.Ping(ctx); err != nil {
		zap.L().Warn("catalog ping failed", zap.Error(err))
		health["status"] = "degraded"
		health["catalog"] = "unavailable"
		status = http.StatusServiceUnavailable
	}

	if h.cache.IsAvailable() {
		health["cache"] = "redis connected"
	} else {
		health["cache"] = "redis unavailable"
	}

	c.JSON(status, health)
}

func (h *Handler) Info(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":        "Chemical Leads API",
		"version":     serviceVersion,
		"description": "Product catalog search and lead capture for contact and quote requests",
		"categories":  []string{"api", "impurity", "intermediate", "chemical"},
		"endpoints": map[string]string{
			"GET /products":        "Search the catalog by name or CAS number with category filter and pagination",
			"GET /products/:id":    "Fetch one product",
			"POST /products/batch": "Fetch several products by id",
			"POST /contact":        "Submit a contact inquiry",
			"POST /rfq":            "Submit a request for quote",
			"GET /health":          "Health check",
			"GET /cache/stats":     "Cache statistics",
			"DELETE /cache/flush":  "Drop cached search results",
			"GET /api/info":        "API information",
		},
	})
}

func (h *Handler) CacheStats(c *gin.Context) {
	if !h.cache.IsAvailable() {
		abortError(c, http.StatusServiceUnavailable, "cache not available", "")
		return
	}
	c.JSON(http.StatusOK, h.cache.GetStats(c.Request.Context()))
}

func (h *Handler) FlushCache(c *gin.Context) {
	if !h.cache.IsAvailable() {
		abortError(c, http.StatusServiceUnavailable, "cache not available", "")
		return
	}

	removed, err := h.cache.FlushCache(c.Request.Context())
	if err != nil {
		zap.L().Error("cache flush failed", zap.Error(err))
		abortError(c, http.StatusInternalServerError, "failed to flush cache", err.Error())
		return
	}

	zap.L().Info("cache flushed", zap.Int("keys", removed))
	c.JSON(http.StatusOK, gin.H{
		"message":   "cache flushed successfully",
		"removed":   removed,
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
