package assistant

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"petal-atelier/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type failingProvider struct{}

func (failingProvider) Recommend(context.Context, string, Occasion, domain.Language) (string, error) {
	return "", errors.New("service unavailable")
}

func TestAskWithoutProviderServesCannedText(t *testing.T) {
	svc := New(nil, zap.NewNop())

	text, occasion := svc.Ask(context.Background(), "my best friend's wedding is next week", domain.LanguageID)

	assert.Equal(t, OccasionWedding, occasion)
	assert.Equal(t, LocalSuggestion(OccasionWedding, domain.LanguageID), text)
}

func TestAskFallsBackOnProviderError(t *testing.T) {
	svc := New(failingProvider{}, zap.NewNop())

	text, occasion := svc.Ask(context.Background(), "just because", domain.LanguageEN)

	assert.Equal(t, OccasionDefault, occasion)
	assert.Equal(t, LocalSuggestion(OccasionDefault, domain.LanguageEN), text)
}

func TestRemoteProviderReturnsGeneratedText(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"text":"Three tulips, softly spoken."}`))
	}))
	defer server.Close()

	svc := New(NewRemote(server.URL, "test-key", "flash-mini", time.Second), zap.NewNop())

	text, occasion := svc.Ask(context.Background(), "a wedding gift", domain.LanguageEN)

	assert.Equal(t, OccasionWedding, occasion)
	assert.Equal(t, "Three tulips, softly spoken.", text)
	assert.Equal(t, "Bearer test-key", gotAuth)
}

func TestRemoteProviderErrorsFallBackSilently(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"server error", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}},
		{"empty text", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"text":""}`))
		}},
		{"malformed body", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`not json`))
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			svc := New(NewRemote(server.URL, "k", "m", time.Second), zap.NewNop())

			text, _ := svc.Ask(context.Background(), "anniversary dinner", domain.LanguageID)
			assert.Equal(t, LocalSuggestion(OccasionAnniversary, domain.LanguageID), text)
		})
	}
}

func TestRemoteProviderTimesOut(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(`{"text":"too late"}`))
	}))
	defer server.Close()

	svc := New(NewRemote(server.URL, "k", "m", 20*time.Millisecond), zap.NewNop())

	start := time.Now()
	text, _ := svc.Ask(context.Background(), "graduation day", domain.LanguageEN)

	require.Less(t, time.Since(start), 150*time.Millisecond)
	assert.Equal(t, LocalSuggestion(OccasionGraduation, domain.LanguageEN), text)
}
