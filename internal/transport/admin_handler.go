package transport

import (
	"net/http"

	"petal-atelier/internal/domain"
	"petal-atelier/internal/ledger"
	"petal-atelier/internal/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// LoginRequest represents the admin console unlock payload
type LoginRequest struct {
	Password string `json:"password" validate:"required"`
}

// StatsResponse summarizes the order ledger for the admin dashboard
type StatsResponse struct {
	Total      int   `json:"total"`
	Pending    int   `json:"pending"`
	Processing int   `json:"processing"`
	Completed  int   `json:"completed"`
	Cancelled  int   `json:"cancelled"`
	Revenue    int64 `json:"revenue"`
}

// AdminHandler handles the console unlock and dashboard stats
type AdminHandler struct {
	password string
	ledger   ledger.Service
	logger   *zap.Logger
}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler(password string, ledgerService ledger.Service, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{
		password: password,
		ledger:   ledgerService,
		logger:   logger,
	}
}

// RegisterRoutes registers the ungated login check and the gated stats
func (h *AdminHandler) RegisterRoutes(r chi.Router, adminGate func(http.Handler) http.Handler) {
	r.Post("/api/admin/login", h.Login)
	r.With(adminGate).Get("/api/admin/stats", h.Stats)
}

// Login checks the console password so the view can unlock the admin
// pages. The same secret then travels on every gated request.
func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Admin login validation failed", zap.Error(err))
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if !middleware.SecretsMatch(req.Password, h.password) {
		h.logger.Warn("Admin login rejected", zap.String("remote_addr", r.RemoteAddr))
		middleware.RespondWithError(w, http.StatusUnauthorized, "invalid password")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// Stats returns order counts per status and completed revenue
func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats := StatsResponse{Revenue: h.ledger.Revenue()}

	for _, order := range h.ledger.List() {
		stats.Total++
		switch order.Status {
		case domain.StatusPending:
			stats.Pending++
		case domain.StatusProcessing:
			stats.Processing++
		case domain.StatusCompleted:
			stats.Completed++
		case domain.StatusCancelled:
			stats.Cancelled++
		}
	}

	middleware.RespondWithJSON(w, http.StatusOK, stats)
}
