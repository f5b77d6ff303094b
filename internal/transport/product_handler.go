package transport

import (
	"errors"
	"net/http"
	"strconv"

	"electrorank/internal/middleware"
	"electrorank/internal/repository"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

// ProductHandler handles HTTP requests for the ranked product catalog
type ProductHandler struct {
	products repository.ProductRepository
	logger   *zap.Logger
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(products repository.ProductRepository, logger *zap.Logger) *ProductHandler {
	return &ProductHandler{
		products: products,
		logger:   logger,
	}
}

// RegisterRoutes registers all product routes
func (h *ProductHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api", func(r chi.Router) {
		r.Get("/categories", h.ListCategories)
		r.Get("/products/top", h.TopProducts)
		r.Get("/products/{productID}", h.GetProduct)
		r.Get("/category/{category}", h.CategoryProducts)
	})
}

// ListCategories returns every category currently in the catalog
func (h *ProductHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.products.DistinctCategories(r.Context())
	if err != nil {
		h.logger.Error("Failed to list categories", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to list categories")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, map[string]interface{}{"categories": categories})
}

// TopProducts returns the highest-scored products across all categories
func (h *ProductHandler) TopProducts(w http.ResponseWriter, r *http.Request) {
	limit := parseLimit(r.URL.Query().Get("limit"))

	products, err := h.products.TopByScore(r.Context(), limit)
	if err != nil {
		h.logger.Error("Failed to load top products", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to load top products")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, map[string]interface{}{"products": products})
}

// GetProduct returns a single product by its external ID
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productID")

	product, err := h.products.FindByProductID(r.Context(), productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			middleware.RespondWithError(w, http.StatusNotFound, "product not found")
			return
		}

		h.logger.Error("Failed to load product",
			zap.String("product_id", productID),
			zap.Error(err),
		)
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to load product")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, product)
}

// CategoryProducts returns the ranked products of one category
func (h *ProductHandler) CategoryProducts(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")
	limit := parseLimit(r.URL.Query().Get("limit"))

	products, err := h.products.ByCategory(r.Context(), category, limit)
	if err != nil {
		h.logger.Error("Failed to load category",
			zap.String("category", category),
			zap.Error(err),
		)
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to load category")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"category": category,
		"products": products,
	})
}

// parseLimit clamps the optional limit query parameter to a sane range
func parseLimit(raw string) int {
	if raw == "" {
		return defaultListLimit
	}

	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 1 {
		return defaultListLimit
	}
	if limit > maxListLimit {
		return maxListLimit
	}
	return limit
}
