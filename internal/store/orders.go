package store

import (
	"time"

	"marketplace-service/internal/models"
)

// AddOrder appends a new order with the next order id and status Placed.
func (s *Store) AddOrder(buyerUsername string, productID int) models.Order {
	s.ordersMu.Lock()
	defer s.ordersMu.Unlock()

	o := models.Order{
		ID:            s.nextOrderID,
		BuyerUsername: buyerUsername,
		ProductID:     productID,
		Status:        models.OrderStatusPlaced,
		CreatedAt:     time.Now(),
	}
	s.nextOrderID++
	s.orders = append(s.orders, o)
	return o
}

// GetOrderForBuyer returns the order with the given id only if it belongs
// to the requesting buyer. Missing and foreign orders are indistinguishable
// to the caller.
func (s *Store) GetOrderForBuyer(id int, buyerUsername string) (models.Order, bool) {
	s.ordersMu.RLock()
	defer s.ordersMu.RUnlock()

	for _, o := range s.orders {
		if o.ID == id && o.BuyerUsername == buyerUsername {
			return o, true
		}
	}
	return models.Order{}, false
}

// TransitionOrder moves an order from one status to another. The
// transition applies only if the order currently holds the from status, so
// a second cancel of the same order cannot win.
func (s *Store) TransitionOrder(id int, from, to string) bool {
	s.ordersMu.Lock()
	defer s.ordersMu.Unlock()

	for i := range s.orders {
		if s.orders[i].ID == id && s.orders[i].Status == from {
			s.orders[i].Status = to
			return true
		}
	}
	return false
}

// OrdersByBuyer returns the buyer's orders in id order.
func (s *Store) OrdersByBuyer(buyerUsername string) []models.Order {
	s.ordersMu.RLock()
	defer s.ordersMu.RUnlock()

	out := make([]models.Order, 0)
	for _, o := range s.orders {
		if o.BuyerUsername == buyerUsername {
			out = append(out, o)
		}
	}
	return out
}
