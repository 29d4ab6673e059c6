package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"petal-atelier/internal/domain"
)

// Provider turns a prompt and its detected occasion into recommendation
// text. Implementations may fail; the Service guarantees a fallback.
type Provider interface {
	Recommend(ctx context.Context, prompt string, occasion Occasion, lang domain.Language) (string, error)
}

// Local serves the canned per-occasion suggestions. It never fails and
// doubles as the fallback for the remote provider.
type Local struct{}

func (Local) Recommend(_ context.Context, _ string, occasion Occasion, lang domain.Language) (string, error) {
	return LocalSuggestion(occasion, lang), nil
}

// Remote forwards the prompt to an external text-generation service
type Remote struct {
	endpoint string
	apiKey   string
	model    string
	client   *http.Client
}

// NewRemote creates a provider calling the text-generation endpoint.
// The timeout bounds the whole call so a hung service degrades to the
// local fallback instead of leaving the request pending.
func NewRemote(endpoint, apiKey, model string, timeout time.Duration) *Remote {
	return &Remote{
		endpoint: endpoint,
		apiKey:   apiKey,
		model:    model,
		client:   &http.Client{Timeout: timeout},
	}
}

type generateRequest struct {
	Model    string `json:"model"`
	Contents string `json:"contents"`
}

type generateResponse struct {
	Text string `json:"text"`
}

func (p *Remote) Recommend(ctx context.Context, prompt string, occasion Occasion, lang domain.Language) (string, error) {
	language := "Indonesian"
	if lang == domain.LanguageEN {
		language = "English"
	}

	body, err := json.Marshal(generateRequest{
		Model: p.model,
		Contents: fmt.Sprintf(
			"User wants a flower recommendation for: %q. Context identified as: %s. "+
				"Suggest 3 types of flowers or bouquet styles. Keep it short and poetic. Language: %s.",
			prompt, occasion, language,
		),
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode generation request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build generation request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("generation request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("generation service returned status %d", resp.StatusCode)
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("failed to decode generation response: %w", err)
	}
	if out.Text == "" {
		return "", fmt.Errorf("generation service returned empty text")
	}

	return out.Text, nil
}
