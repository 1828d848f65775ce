// Package httpapi exposes the catalog and the lead pipelines over HTTP.
package httpapi

import (
	"github.com/gin-gonic/gin"

	"chemical-leads-api/internal/services"
	"chemical-leads-api/pkg/cache"
)

const (
	serviceName    = "chemical-leads-api"
	serviceVersion = "1.0.0"
)

// Handler serves every route. cache may be nil.
type Handler struct {
	search  *services.SearchService
	contact *services.ContactService
	rfq     *services.RFQService
	cache   *cache.RedisCache
}

func NewHandler(search *services.SearchService, contact *services.ContactService, rfq *services.RFQService, cache *cache.RedisCache) *Handler {
	return &Handler{search: search, contact: contact, rfq: rfq, cache: cache}
}

type RouterOptions struct {
	AllowedOrigin string
	// Limiter throttles the submission endpoints. Nil disables throttling.
	Limiter *RateLimiter
}

// NewRouter builds a gin engine with middleware and every route registered.
func NewRouter(h *Handler, opts RouterOptions) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestID(), CORS(opts.AllowedOrigin))
	RegisterRoutes(r, h, opts.Limiter)
	return r
}

func RegisterRoutes(r *gin.Engine, h *Handler, limiter *RateLimiter) {
	r.GET("/health", h.Health)
	r.GET("/api/info", h.Info)
	r.GET("/cache/stats", h.CacheStats)
	r.DELETE("/cache/flush", h.FlushCache)

	r.GET("/products", h.SearchProducts)
	r.GET("/products/:id", h.GetProduct)
	r.POST("/products/batch", h.GetProducts)

	throttle := limiter.Middleware()
	r.POST("/contact", throttle, h.SubmitContact)
	r.POST("/rfq", throttle, h.SubmitRFQ)
}
