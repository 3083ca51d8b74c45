package client

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tokobuku_backend/internal/models"
)

// fakeAPI is a minimal stand-in for the backend: one known account, an
// in-memory order list, bearer token checked on protected routes.
func fakeAPI(t *testing.T) *httptest.Server {
	t.Helper()

	orders := []models.Order{}
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/login", func(w http.ResponseWriter, r *http.Request) {
		var in struct{ Username, Password string }
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		if in.Username != "budi" || in.Password != "rahasia" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"error": "Username atau password salah"})
			return
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"token": "test-token",
			"user":  models.User{ID: 7, Username: "budi", Email: "budi@example.com", Role: "user"},
		})
	})

	authed := func(w http.ResponseWriter, r *http.Request) bool {
		if r.Header.Get("Authorization") != "Bearer test-token" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"error": "Token tidak ditemukan"})
			return false
		}
		return true
	}

	mux.HandleFunc("GET /api/orders", func(w http.ResponseWriter, r *http.Request) {
		if !authed(w, r) {
			return
		}
		json.NewEncoder(w).Encode(orders)
	})

	mux.HandleFunc("POST /api/orders", func(w http.ResponseWriter, r *http.Request) {
		if !authed(w, r) {
			return
		}
		var in struct {
			Items models.OrderItems `json:"items"`
			Total float64           `json:"total"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		order := models.Order{
			ID:          uint(len(orders) + 1),
			OrderNumber: "ORD-1",
			UserID:      7,
			Items:       in.Items,
			Total:       in.Total,
			Status:      models.DefaultOrderStatus,
		}
		orders = append([]models.Order{order}, orders...)
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(order)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestLoginPersistsSession(t *testing.T) {
	srv := fakeAPI(t)
	storage := NewMemoryStorage()
	s := NewSession(New(srv.URL), storage)

	assert.False(t, s.Authenticated())

	u, err := s.Login("budi", "rahasia")
	require.NoError(t, err)
	assert.Equal(t, "budi", u.Username)
	assert.True(t, s.Authenticated())

	token, ok := storage.Get("toko_buku_token")
	require.True(t, ok)
	assert.Equal(t, "test-token", token)
	_, ok = storage.Get("toko_buku_user")
	assert.True(t, ok)

	// A new session over the same storage is already authenticated.
	restored := NewSession(New(srv.URL), storage)
	assert.True(t, restored.Authenticated())
	assert.Equal(t, "budi", restored.User().Username)
}

func TestLoginFailureSurfacesServerMessage(t *testing.T) {
	srv := fakeAPI(t)
	s := NewSession(New(srv.URL), NewMemoryStorage())

	_, err := s.Login("budi", "salah")
	require.Error(t, err)
	assert.Equal(t, "Username atau password salah", err.Error())
	assert.False(t, s.Authenticated())
}

func TestLogoutClearsEverything(t *testing.T) {
	srv := fakeAPI(t)
	storage := NewMemoryStorage()
	s := NewSession(New(srv.URL), storage)

	_, err := s.Login("budi", "rahasia")
	require.NoError(t, err)
	s.AddToCart(models.Product{ID: 1, Price: 100})

	s.Logout()

	assert.False(t, s.Authenticated())
	assert.Empty(t, s.Cart())
	assert.Empty(t, s.Orders())
	_, ok := storage.Get("toko_buku_token")
	assert.False(t, ok)
	_, ok = storage.Get("toko_buku_user")
	assert.False(t, ok)
}

func TestCreateOrderComputesTotalAndClearsCart(t *testing.T) {
	srv := fakeAPI(t)
	s := NewSession(New(srv.URL), NewMemoryStorage())

	_, err := s.Login("budi", "rahasia")
	require.NoError(t, err)

	s.AddToCart(models.Product{ID: 1, Title: "Clean Code", Price: 100000})
	s.AddToCart(models.Product{ID: 1, Title: "Clean Code", Price: 100000})

	order, err := s.CreateOrder()
	require.NoError(t, err)

	// subtotal 200000 + 10% tax + 25000 shipping
	assert.Equal(t, float64(245000), order.Total)
	require.Len(t, order.Items, 1)
	assert.Equal(t, 2, order.Items[0].Quantity)

	assert.Empty(t, s.Cart())
	require.Len(t, s.Orders(), 1)
	assert.Equal(t, order.OrderNumber, s.Orders()[0].OrderNumber)
}

func TestCreateOrderFailureLeavesStateUnchanged(t *testing.T) {
	failing := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"error": "Pemesanan gagal"})
	}))
	t.Cleanup(failing.Close)

	s := NewSession(New(failing.URL), NewMemoryStorage())
	s.AddToCart(models.Product{ID: 1, Price: 100000})

	_, err := s.CreateOrder()
	require.Error(t, err)
	assert.Equal(t, "Pemesanan gagal", err.Error())

	// Cart survives the failure.
	assert.Len(t, s.Cart(), 1)
}

func TestCreateOrderEmptyCart(t *testing.T) {
	srv := fakeAPI(t)
	s := NewSession(New(srv.URL), NewMemoryStorage())

	_, err := s.CreateOrder()
	assert.Error(t, err)
}

func TestFileStorageRoundTrip(t *testing.T) {
	path := t.TempDir() + "/session.json"

	s1, err := NewFileStorage(path)
	require.NoError(t, err)
	require.NoError(t, s1.Set("toko_buku_token", "abc"))

	s2, err := NewFileStorage(path)
	require.NoError(t, err)
	v, ok := s2.Get("toko_buku_token")
	require.True(t, ok)
	assert.Equal(t, "abc", v)

	require.NoError(t, s2.Delete("toko_buku_token"))
	s3, err := NewFileStorage(path)
	require.NoError(t, err)
	_, ok = s3.Get("toko_buku_token")
	assert.False(t, ok)
}
