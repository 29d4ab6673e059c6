package transport

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"petal-atelier/internal/assistant"
	"petal-atelier/internal/cart"
	"petal-atelier/internal/catalog"
	"petal-atelier/internal/ledger"
	"petal-atelier/internal/middleware"
	"petal-atelier/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testAdminPassword = "admin123"

type testEnv struct {
	router  chi.Router
	catalog catalog.Service
	ledger  ledger.Service
	cart    cart.Engine
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	store := storage.NewMemStore()
	logger := zap.NewNop()

	catalogService := catalog.New(store, logger)
	ledgerService := ledger.New(store, logger)
	cartEngine := cart.New(store, logger)
	assistantService := assistant.New(nil, logger)

	adminGate := middleware.AdminAuthMiddleware(testAdminPassword, logger)
	passthrough := func(next http.Handler) http.Handler { return next }

	router := chi.NewRouter()
	NewCatalogHandler(catalogService, logger).RegisterRoutes(router, adminGate)
	NewCartHandler(cartEngine, catalogService, logger).RegisterRoutes(router)
	NewOrderHandler(ledgerService, cartEngine, logger).RegisterRoutes(router, adminGate)
	NewAssistantHandler(assistantService, logger).RegisterRoutes(router, passthrough)
	NewAdminHandler(testAdminPassword, ledgerService, logger).RegisterRoutes(router, adminGate)

	return &testEnv{
		router:  router,
		catalog: catalogService,
		ledger:  ledgerService,
		cart:    cartEngine,
	}
}

// do performs a JSON request against the test router. An admin request
// carries the shared secret header.
func (env *testEnv) do(t *testing.T, method, path string, body interface{}, admin bool) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if admin {
		req.Header.Set(middleware.AdminSecretHeader, testAdminPassword)
	}

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}
