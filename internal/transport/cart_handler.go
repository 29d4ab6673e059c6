package transport

import (
	"net/http"

	"petal-atelier/internal/cart"
	"petal-atelier/internal/catalog"
	"petal-atelier/internal/domain"
	"petal-atelier/internal/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// AddItemRequest represents an add-to-cart payload
type AddItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
}

// AdjustItemRequest represents a quantity change payload
type AdjustItemRequest struct {
	Delta int `json:"delta" validate:"required"`
}

// CartResponse is the cart state returned after every cart operation.
// OpenCart tells the view to open its cart drawer after an add.
type CartResponse struct {
	Items    []domain.CartItem `json:"items"`
	Total    int64             `json:"total"`
	Count    int               `json:"count"`
	OpenCart bool              `json:"open_cart,omitempty"`
}

// CartHandler handles HTTP requests for the session cart
type CartHandler struct {
	cart    cart.Engine
	catalog catalog.Service
	logger  *zap.Logger
}

// NewCartHandler creates a new CartHandler
func NewCartHandler(cartEngine cart.Engine, catalogService catalog.Service, logger *zap.Logger) *CartHandler {
	return &CartHandler{
		cart:    cartEngine,
		catalog: catalogService,
		logger:  logger,
	}
}

// RegisterRoutes registers all cart routes
func (h *CartHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/cart", func(r chi.Router) {
		r.Get("/", h.Get)
		r.Delete("/", h.Clear)
		r.Post("/items", h.Add)
		r.Patch("/items/{id}", h.Adjust)
		r.Delete("/items/{id}", h.Remove)
	})
}

// Get returns the current cart contents with derived totals
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	middleware.RespondWithJSON(w, http.StatusOK, h.response(false))
}

// Add puts a catalog product into the cart, merging with any existing
// entry.
func (h *CartHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req AddItemRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Add to cart validation failed", zap.Error(err))

		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	product, ok := h.catalog.FindByID(req.ProductID)
	if !ok {
		middleware.RespondWithError(w, http.StatusNotFound, "product not found")
		return
	}

	h.cart.Add(product)

	h.logger.Info("Product added to cart", zap.String("product_id", product.ID))
	middleware.RespondWithJSON(w, http.StatusOK, h.response(true))
}

// Adjust changes an entry's quantity by a delta, clamped at 1
func (h *CartHandler) Adjust(w http.ResponseWriter, r *http.Request) {
	var req AdjustItemRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Cart adjust validation failed", zap.Error(err))
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	h.cart.Adjust(chi.URLParam(r, "id"), req.Delta)
	middleware.RespondWithJSON(w, http.StatusOK, h.response(false))
}

// Remove drops an entry from the cart
func (h *CartHandler) Remove(w http.ResponseWriter, r *http.Request) {
	h.cart.Remove(chi.URLParam(r, "id"))
	middleware.RespondWithJSON(w, http.StatusOK, h.response(false))
}

// Clear empties the cart
func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	h.cart.Clear()
	middleware.RespondWithJSON(w, http.StatusOK, h.response(false))
}

func (h *CartHandler) response(openCart bool) CartResponse {
	items := h.cart.Items()
	if items == nil {
		items = []domain.CartItem{}
	}
	return CartResponse{
		Items:    items,
		Total:    h.cart.Total(),
		Count:    h.cart.Count(),
		OpenCart: openCart,
	}
}
