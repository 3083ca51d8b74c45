package client

import "tokobuku_backend/internal/models"

// Checkout math, fixed by the storefront: 10% tax plus a flat shipping fee.
const (
	TaxRate     = 0.1
	ShippingFee = 25000
)

// CartItem is one cart line: a product snapshot plus a quantity.
type CartItem struct {
	Product  models.Product
	Quantity int
}

// AddToCart merges by product id: adding a product already in the cart bumps
// its quantity instead of creating a second line.
func (s *Session) AddToCart(p models.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.cart {
		if s.cart[i].Product.ID == p.ID {
			s.cart[i].Quantity++
			return
		}
	}
	s.cart = append(s.cart, CartItem{Product: p, Quantity: 1})
}

func (s *Session) RemoveFromCart(productID uint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeLocked(productID)
}

// UpdateQuantity sets a line's quantity; zero or negative removes the line.
func (s *Session) UpdateQuantity(productID uint, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity <= 0 {
		s.removeLocked(productID)
		return
	}
	for i := range s.cart {
		if s.cart[i].Product.ID == productID {
			s.cart[i].Quantity = quantity
			return
		}
	}
}

func (s *Session) removeLocked(productID uint) {
	kept := s.cart[:0]
	for _, item := range s.cart {
		if item.Product.ID != productID {
			kept = append(kept, item)
		}
	}
	s.cart = kept
}

func (s *Session) Cart() []CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]CartItem, len(s.cart))
	copy(out, s.cart)
	return out
}

// TotalPrice is the cart subtotal, before tax and shipping.
func (s *Session) TotalPrice() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var total float64
	for _, item := range s.cart {
		total += item.Product.Price * float64(item.Quantity)
	}
	return total
}

func (s *Session) TotalItems() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	var total int
	for _, item := range s.cart {
		total += item.Quantity
	}
	return total
}
