package transport

import (
	"net/http"

	"petal-atelier/internal/cart"
	"petal-atelier/internal/domain"
	"petal-atelier/internal/ledger"
	"petal-atelier/internal/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// CheckoutRequest represents the order form payload. ProductName and
// ProductID only matter for a custom order placed with an empty cart;
// a non-empty cart overrides them with its own summary.
type CheckoutRequest struct {
	CustomerName string `json:"customer_name" validate:"required"`
	Phone        string `json:"phone" validate:"required"`
	Address      string `json:"address"`
	DeliveryDate string `json:"delivery_date"`
	DeliveryTime string `json:"delivery_time"`
	Notes        string `json:"notes"`
	Lang         string `json:"lang"`
	ProductName  string `json:"product_name"`
	ProductID    string `json:"product_id"`
}

// StatusRequest represents an order status change payload
type StatusRequest struct {
	Status domain.OrderStatus `json:"status" validate:"required,oneof=PENDING PROCESSING COMPLETED CANCELLED"`
}

// OrderHandler handles HTTP requests for checkout and order management
type OrderHandler struct {
	ledger ledger.Service
	cart   cart.Engine
	logger *zap.Logger
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(ledgerService ledger.Service, cartEngine cart.Engine, logger *zap.Logger) *OrderHandler {
	return &OrderHandler{
		ledger: ledgerService,
		cart:   cartEngine,
		logger: logger,
	}
}

// RegisterRoutes registers checkout publicly and order management
// behind the admin gate.
func (h *OrderHandler) RegisterRoutes(r chi.Router, adminGate func(http.Handler) http.Handler) {
	r.Post("/api/orders", h.Checkout)

	r.Route("/api/admin/orders", func(r chi.Router) {
		r.Use(adminGate)
		r.Get("/", h.List)
		r.Patch("/{id}/status", h.SetStatus)
		r.Delete("/{id}", h.Delete)
	})
}

// Checkout records a new order. With items in the cart the order
// freezes the cart's summary, aggregate quantity and total; otherwise
// it is a custom order built from the form alone. The cart is emptied
// afterwards either way.
func (h *OrderHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	var req CheckoutRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Checkout validation failed", zap.Error(err))

		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	draft := domain.Order{
		CustomerName: req.CustomerName,
		Phone:        req.Phone,
		Address:      req.Address,
		DeliveryDate: req.DeliveryDate,
		DeliveryTime: req.DeliveryTime,
		Notes:        req.Notes,
		ProductName:  req.ProductName,
		ProductID:    req.ProductID,
	}

	if items := h.cart.Items(); len(items) > 0 {
		lang := domain.ParseLanguage(req.Lang)
		draft.ProductName = h.cart.Summary(lang)
		draft.Quantity = h.cart.Count()
		draft.TotalPrice = h.cart.Total()
		draft.Items = items
	}

	order := h.ledger.Create(draft)
	h.cart.Clear()

	middleware.RespondWithJSON(w, http.StatusCreated, order)
}

// List returns all orders, most recent first
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	orders := h.ledger.List()
	if orders == nil {
		orders = []domain.Order{}
	}
	middleware.RespondWithJSON(w, http.StatusOK, orders)
}

// SetStatus moves an order through its lifecycle
func (h *OrderHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req StatusRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Status change validation failed", zap.Error(err))

		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.ledger.SetStatus(id, req.Status); err != nil {
		if err == ledger.ErrIllegalTransition {
			middleware.RespondWithError(w, http.StatusConflict, "illegal status transition")
			return
		}
		h.logger.Error("Status change failed", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to change order status")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, map[string]string{
		"id":     id,
		"status": string(req.Status),
	})
}

// Delete permanently removes an order
func (h *OrderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	h.ledger.Delete(id)

	h.logger.Info("Order deleted", zap.String("order_id", id))
	w.WriteHeader(http.StatusNoContent)
}
