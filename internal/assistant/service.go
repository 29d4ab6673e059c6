package assistant

import (
	"context"

	"petal-atelier/internal/domain"

	"go.uber.org/zap"
)

// Service answers occasion prompts. Every failure path resolves to a
// valid string: callers never see an error.
type Service struct {
	provider Provider
	logger   *zap.Logger
}

// New creates a Service talking to the given provider. Pass nil to run
// on canned suggestions only.
func New(provider Provider, logger *zap.Logger) *Service {
	if provider == nil {
		provider = Local{}
	}
	return &Service{provider: provider, logger: logger}
}

// Ask returns a recommendation for the prompt in the given language.
// Provider failures fall back to the canned suggestion for the detected
// occasion, silently from the caller's point of view.
func (s *Service) Ask(ctx context.Context, prompt string, lang domain.Language) (string, Occasion) {
	occasion := DetectOccasion(prompt)

	text, err := s.provider.Recommend(ctx, prompt, occasion, lang)
	if err != nil {
		s.logger.Warn("Recommendation provider failed, serving local suggestion",
			zap.String("occasion", string(occasion)),
			zap.Error(err),
		)
		return LocalSuggestion(occasion, lang), occasion
	}

	return text, occasion
}
