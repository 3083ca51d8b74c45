package product_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"tokobuku_backend/internal/database"
	"tokobuku_backend/internal/models"
	"tokobuku_backend/internal/routes"
)

// setupRouter migrates and seeds a fresh database, so the default admin
// account and the eight default books are available.
func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	require.NoError(t, database.Seed(db))
	database.DB = db

	r := gin.New()
	routes.Register(r)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func login(t *testing.T, r *gin.Engine, username, password string) string {
	t.Helper()

	w := doJSON(t, r, http.MethodPost, "/api/login", "", gin.H{
		"username": username, "password": password,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Token
}

func registerUser(t *testing.T, r *gin.Engine, username, email, password string) string {
	t.Helper()

	w := doJSON(t, r, http.MethodPost, "/api/register", "", gin.H{
		"username": username, "email": email, "password": password,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	return login(t, r, username, password)
}

func TestListProductsIsPublic(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/products", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var products []models.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &products))
	assert.Len(t, products, 8)
}

func TestCreateProductRoleGating(t *testing.T) {
	r := setupRouter(t)
	userToken := registerUser(t, r, "budi", "budi@example.com", "rahasia")
	adminToken := login(t, r, "admin", "123")

	body := gin.H{"title": "Refactoring", "author": "Martin Fowler", "price": 210000, "category": "programming"}

	w := doJSON(t, r, http.MethodPost, "/api/products", "", body)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/products", userToken, body)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/products", adminToken, body)
	require.Equal(t, http.StatusCreated, w.Code)

	var p models.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &p))
	assert.NotZero(t, p.ID)
	assert.Equal(t, "Refactoring", p.Title)

	// Omitted optional fields default to zero.
	assert.Zero(t, p.Rating)
	assert.Zero(t, p.Reviews)
	assert.Zero(t, p.Discount)
}

func TestUpdateProductPartial(t *testing.T) {
	r := setupRouter(t)
	adminToken := login(t, r, "admin", "123")

	var before models.Product
	require.NoError(t, database.DB.First(&before).Error)

	w := doJSON(t, r, http.MethodPut, "/api/products/1", adminToken, gin.H{"price": 99000})
	require.Equal(t, http.StatusOK, w.Code)

	var after models.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &after))
	assert.Equal(t, float64(99000), after.Price)

	// Fields absent from the request stay untouched.
	assert.Equal(t, before.Title, after.Title)
	assert.Equal(t, before.Author, after.Author)
	assert.Equal(t, before.Rating, after.Rating)
}

func TestUpdateProductNotFound(t *testing.T) {
	r := setupRouter(t)
	adminToken := login(t, r, "admin", "123")

	w := doJSON(t, r, http.MethodPut, "/api/products/9999", adminToken, gin.H{"price": 1})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteProduct(t *testing.T) {
	r := setupRouter(t)
	adminToken := login(t, r, "admin", "123")

	w := doJSON(t, r, http.MethodDelete, "/api/products/1", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "berhasil dihapus")

	var count int64
	require.NoError(t, database.DB.Model(&models.Product{}).Where("id = ?", 1).Count(&count).Error)
	assert.Equal(t, int64(0), count)

	w = doJSON(t, r, http.MethodDelete, "/api/products/1", adminToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUploadImageRequiresFile(t *testing.T) {
	r := setupRouter(t)
	adminToken := login(t, r, "admin", "123")

	req := httptest.NewRequest(http.MethodPost, "/api/products/1/image", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	// No multipart file in the request.
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdminListUsers(t *testing.T) {
	r := setupRouter(t)
	userToken := registerUser(t, r, "budi", "budi@example.com", "rahasia")
	adminToken := login(t, r, "admin", "123")

	w := doJSON(t, r, http.MethodGet, "/api/users", userToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/users", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var users []models.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &users))
	assert.Len(t, users, 2)
	assert.NotContains(t, w.Body.String(), `"password"`)
	assert.NotContains(t, w.Body.String(), `"profilePhoto"`)
}
