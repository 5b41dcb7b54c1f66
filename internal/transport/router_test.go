package transport

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"vibe-commerce/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// newTestRouter wires the real services over mock repositories, mirroring
// the production wiring in internal/server.
func newTestRouter(productRepo *mockProductRepository, cartRepo *mockCartRepository, receiptRepo *mockReceiptRepository) chi.Router {
	logger := zap.NewNop()
	router := chi.NewRouter()

	catalogService := service.NewCatalogService(productRepo)
	cartService := service.NewCartService(cartRepo, productRepo)
	checkoutService := service.NewCheckoutService(receiptRepo, cartRepo)

	NewProductHandler(catalogService, logger).RegisterRoutes(router)
	NewCartHandler(cartService, logger).RegisterRoutes(router)
	NewCheckoutHandler(checkoutService, logger).RegisterRoutes(router)

	return router
}

func doJSON(t *testing.T, router chi.Router, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v))
}

// cartResponse mirrors the {items, total} body of every cart endpoint
type cartResponse struct {
	Items []struct {
		ID        string  `json:"id"`
		ProductID string  `json:"productId"`
		Name      string  `json:"name"`
		Price     float64 `json:"price"`
		Qty       int     `json:"qty"`
		UserID    string  `json:"userId"`
	} `json:"items"`
	Total float64 `json:"total"`
}

type errorResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

func requireErrorBody(t *testing.T, w *httptest.ResponseRecorder, status int) errorResponse {
	t.Helper()
	require.Equal(t, status, w.Code)

	var body errorResponse
	decodeBody(t, w, &body)
	require.True(t, body.Error)
	require.NotEmpty(t, body.Message)
	return body
}
