package transport

import (
	"net/http"

	"petal-atelier/internal/assistant"
	"petal-atelier/internal/domain"
	"petal-atelier/internal/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// RecommendRequest represents a recommendation prompt payload
type RecommendRequest struct {
	Prompt string `json:"prompt" validate:"required"`
	Lang   string `json:"lang"`
}

// RecommendResponse carries the suggestion text and the occasion the
// prompt was matched to.
type RecommendResponse struct {
	Text     string `json:"text"`
	Occasion string `json:"occasion"`
}

// AssistantHandler handles HTTP requests for the floral assistant
type AssistantHandler struct {
	assistant *assistant.Service
	logger    *zap.Logger
}

// NewAssistantHandler creates a new AssistantHandler
func NewAssistantHandler(assistantService *assistant.Service, logger *zap.Logger) *AssistantHandler {
	return &AssistantHandler{
		assistant: assistantService,
		logger:    logger,
	}
}

// RegisterRoutes registers the assistant route behind the rate limiter
// that shields the outbound generation call.
func (h *AssistantHandler) RegisterRoutes(r chi.Router, limiter func(http.Handler) http.Handler) {
	r.With(limiter).Post("/api/assistant/recommend", h.Recommend)
}

// Recommend answers an occasion prompt. It always succeeds: provider
// failures degrade to canned text inside the assistant service.
func (h *AssistantHandler) Recommend(w http.ResponseWriter, r *http.Request) {
	var req RecommendRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Recommendation validation failed", zap.Error(err))

		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	text, occasion := h.assistant.Ask(r.Context(), req.Prompt, domain.ParseLanguage(req.Lang))

	middleware.RespondWithJSON(w, http.StatusOK, RecommendResponse{
		Text:     text,
		Occasion: string(occasion),
	})
}
