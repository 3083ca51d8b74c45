package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tokobuku_backend/internal/routes"
)

func docsRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	routes.Register(r)
	return r
}

func TestSwaggerSpec(t *testing.T) {
	r := docsRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/swagger.json", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var doc struct {
		OpenAPI string `json:"openapi"`
		Info    struct {
			Title string `json:"title"`
		} `json:"info"`
		Paths map[string]json.RawMessage `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
	assert.Equal(t, "3.0.0", doc.OpenAPI)
	assert.Equal(t, "Toko Buku Online API", doc.Info.Title)

	// Every route in the table is documented.
	for _, path := range []string{
		"/api/health",
		"/api/register",
		"/api/login",
		"/api/products",
		"/api/products/{productId}",
		"/api/products/{productId}/image",
		"/api/orders",
		"/api/users/profile",
		"/api/users",
	} {
		assert.Contains(t, doc.Paths, path)
	}

	assert.Contains(t, w.Body.String(), "BearerAuth")
}

func TestSwaggerUIServed(t *testing.T) {
	r := docsRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api-docs/index.html", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHealth(t *testing.T) {
	r := docsRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Server is running")
}
