package transport

import (
	"net/http"

	"petal-atelier/internal/catalog"
	"petal-atelier/internal/domain"
	"petal-atelier/internal/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ProductRequest represents a product create/update payload. Image is
// expected to arrive already resolved to its final string (remote URL
// or data URI); no decoding happens server side.
type ProductRequest struct {
	Name        domain.LocalizedText `json:"name" validate:"required"`
	Description domain.LocalizedText `json:"description"`
	Price       int64                `json:"price" validate:"gte=0"`
	Image       string               `json:"image"`
	Category    string               `json:"category"`
}

// CatalogHandler handles HTTP requests for the product catalog
type CatalogHandler struct {
	catalog catalog.Service
	logger  *zap.Logger
}

// NewCatalogHandler creates a new CatalogHandler
func NewCatalogHandler(catalogService catalog.Service, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		catalog: catalogService,
		logger:  logger,
	}
}

// RegisterRoutes registers catalog routes; mutations sit behind the
// admin gate.
func (h *CatalogHandler) RegisterRoutes(r chi.Router, adminGate func(http.Handler) http.Handler) {
	r.Get("/api/products", h.List)

	r.Route("/api/admin/products", func(r chi.Router) {
		r.Use(adminGate)
		r.Post("/", h.Create)
		r.Put("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	})
}

// List returns the full catalog, both languages included so the view
// can switch without a refetch.
func (h *CatalogHandler) List(w http.ResponseWriter, r *http.Request) {
	middleware.RespondWithJSON(w, http.StatusOK, h.catalog.List())
}

// Create adds a new product to the catalog
func (h *CatalogHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req ProductRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Product create validation failed", zap.Error(err))

		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created := h.catalog.Upsert(req.toProduct(""), true)

	h.logger.Info("Product created", zap.String("product_id", created.ID))
	middleware.RespondWithJSON(w, http.StatusCreated, created)
}

// Update edits an existing product in place
func (h *CatalogHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req ProductRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Product update validation failed", zap.Error(err))

		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	// An unknown id leaves the catalog untouched; the call still
	// succeeds, mirroring delete semantics.
	updated := h.catalog.Upsert(req.toProduct(id), false)

	h.logger.Info("Product updated", zap.String("product_id", id))
	middleware.RespondWithJSON(w, http.StatusOK, updated)
}

// Delete removes a product. Removing an unknown id still succeeds.
func (h *CatalogHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	h.catalog.Delete(id)

	h.logger.Info("Product deleted", zap.String("product_id", id))
	w.WriteHeader(http.StatusNoContent)
}

func (req ProductRequest) toProduct(id string) domain.Product {
	return domain.Product{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Image:       req.Image,
		Category:    req.Category,
	}
}
