package client

import (
	"encoding/json"
	"sync"

	"tokobuku_backend/internal/models"
)

// Storage keys, kept identical to the ones the web frontend used so a
// migrated install keeps its session.
const (
	tokenKey = "toko_buku_token"
	userKey  = "toko_buku_user"
)

// Session owns the authenticated state: bearer token and user (persisted to
// storage), the volatile in-memory cart and the last-fetched order history.
// Anonymous → Login → authenticated → Logout → anonymous; there are no
// intermediate or refresh states. Token expiry is not detected proactively:
// the next protected call fails and that error is surfaced unchanged.
type Session struct {
	api     *Client
	storage Storage

	mu     sync.Mutex
	user   *models.User
	cart   []CartItem
	orders []models.Order
}

// NewSession restores a persisted token and user from storage, if any, so a
// restart keeps the caller logged in.
func NewSession(api *Client, storage Storage) *Session {
	s := &Session{api: api, storage: storage}

	token, ok := storage.Get(tokenKey)
	if !ok {
		return s
	}
	raw, ok := storage.Get(userKey)
	if !ok {
		return s
	}
	var u models.User
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		return s
	}

	api.SetToken(token)
	s.user = &u
	return s
}

func (s *Session) Authenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user != nil
}

func (s *Session) User() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

// Login exchanges credentials for a token, persists both token and user, and
// refreshes the order history best-effort.
func (s *Session) Login(username, password string) (*models.User, error) {
	resp, err := s.api.Login(username, password)
	if err != nil {
		return nil, err
	}

	raw, err := json.Marshal(resp.User)
	if err != nil {
		return nil, err
	}
	if err := s.storage.Set(tokenKey, resp.Token); err != nil {
		return nil, err
	}
	if err := s.storage.Set(userKey, string(raw)); err != nil {
		return nil, err
	}

	s.api.SetToken(resp.Token)
	s.mu.Lock()
	u := resp.User
	s.user = &u
	s.mu.Unlock()

	_ = s.FetchOrders()
	return &u, nil
}

// Register creates an account. It does not log in.
func (s *Session) Register(username, email, password string) error {
	return s.api.Register(username, email, password)
}

// Logout drops everything: token, user, cart, order history, persisted keys.
func (s *Session) Logout() {
	s.api.SetToken("")
	_ = s.storage.Delete(tokenKey)
	_ = s.storage.Delete(userKey)

	s.mu.Lock()
	s.user = nil
	s.cart = nil
	s.orders = nil
	s.mu.Unlock()
}

func (s *Session) FetchOrders() error {
	orders, err := s.api.Orders()
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.orders = orders
	s.mu.Unlock()
	return nil
}

func (s *Session) Orders() []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Order, len(s.orders))
	copy(out, s.orders)
	return out
}

// CreateOrder snapshots the cart into line items, submits it with the
// client-computed total (subtotal + 10% tax + shipping) and clears the cart
// only on success. A failed call leaves cart and history untouched.
func (s *Session) CreateOrder() (*models.Order, error) {
	s.mu.Lock()
	items := make(models.OrderItems, 0, len(s.cart))
	var subtotal float64
	for _, line := range s.cart {
		items = append(items, models.OrderItem{
			ID:       line.Product.ID,
			Title:    line.Product.Title,
			Image:    line.Product.Image,
			Quantity: line.Quantity,
			Price:    line.Product.Price,
		})
		subtotal += line.Product.Price * float64(line.Quantity)
	}
	s.mu.Unlock()

	if len(items) == 0 {
		return nil, &APIError{Message: "cart is empty"}
	}

	total := subtotal + subtotal*TaxRate + ShippingFee

	order, err := s.api.CreateOrder(items, total)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.cart = nil
	s.orders = append([]models.Order{*order}, s.orders...)
	s.mu.Unlock()
	return order, nil
}

// UpdateProfile pushes the editable profile fields and refreshes the
// persisted user on success.
func (s *Session) UpdateProfile(email, phone, address, profilePhoto string) (*models.User, error) {
	u, err := s.api.UpdateProfile(email, phone, address, profilePhoto)
	if err != nil {
		return nil, err
	}

	raw, err := json.Marshal(u)
	if err != nil {
		return nil, err
	}
	if err := s.storage.Set(userKey, string(raw)); err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.user = u
	s.mu.Unlock()
	return u, nil
}
