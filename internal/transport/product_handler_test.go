package transport

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestListProducts(t *testing.T) {
	productRepo := newMockProductRepository()
	productRepo.add("Regular Unisex T shirt", 2150.0)
	productRepo.add("Korean pant", 2799.0)
	router := newTestRouter(productRepo, newMockCartRepository(), newMockReceiptRepository())

	w := doJSON(t, router, http.MethodGet, "/api/products", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var products []map[string]interface{}
	decodeBody(t, w, &products)
	assert.Len(t, products, 2)
}

func TestGetProduct_MatchesListEntry(t *testing.T) {
	productRepo := newMockProductRepository()
	productID := productRepo.add("Leather Handbag", 5500.0)
	router := newTestRouter(productRepo, newMockCartRepository(), newMockReceiptRepository())

	listResp := doJSON(t, router, http.MethodGet, "/api/products", nil)
	require.Equal(t, http.StatusOK, listResp.Code)
	var listed []map[string]interface{}
	decodeBody(t, listResp, &listed)
	require.Len(t, listed, 1)

	singleResp := doJSON(t, router, http.MethodGet, "/api/products/"+productID.Hex(), nil)
	require.Equal(t, http.StatusOK, singleResp.Code)
	var single map[string]interface{}
	decodeBody(t, singleResp, &single)

	assert.Equal(t, listed[0], single)
}

func TestGetProduct_NotFound(t *testing.T) {
	router := newTestRouter(newMockProductRepository(), newMockCartRepository(), newMockReceiptRepository())

	w := doJSON(t, router, http.MethodGet, "/api/products/"+primitive.NewObjectID().Hex(), nil)
	body := requireErrorBody(t, w, http.StatusNotFound)
	assert.Equal(t, "Product not found", body.Message)

	// Malformed ids do not resolve either
	w = doJSON(t, router, http.MethodGet, "/api/products/not-a-valid-id", nil)
	requireErrorBody(t, w, http.StatusNotFound)
}
