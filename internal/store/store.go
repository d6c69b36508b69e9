package store

import (
	"sync"

	"marketplace-service/internal/models"
)

// Store owns every in-memory ledger for one run of the process: identity,
// catalog, orders and the two feedback ledgers. Each ledger is guarded by
// its own lock so the HTTP adapter can serve concurrent requests. Nothing
// survives a restart.
type Store struct {
	usersMu sync.RWMutex
	users   []models.User

	productsMu    sync.RWMutex
	products      []models.Product
	nextProductID int

	ordersMu    sync.RWMutex
	orders      []models.Order
	nextOrderID int

	feedbackMu      sync.RWMutex
	sellerFeedbacks []models.SellerFeedback
	buyerFeedbacks  []models.BuyerFeedback
}

// NewStore creates an empty store with fresh id allocators.
func NewStore() *Store {
	return &Store{
		nextProductID: 1,
		nextOrderID:   1,
	}
}

// AddUser appends a user record. Duplicate usernames are permitted; login
// matches the first record.
func (s *Store) AddUser(u models.User) {
	s.usersMu.Lock()
	defer s.usersMu.Unlock()

	s.users = append(s.users, u)
}

// Authenticate returns the first user matching the exact
// username+password+role triple.
func (s *Store) Authenticate(username, password, role string) (models.User, bool) {
	s.usersMu.RLock()
	defer s.usersMu.RUnlock()

	for _, u := range s.users {
		if u.Username == username && u.Password == password && u.Role == role {
			return u, true
		}
	}
	return models.User{}, false
}

// SetSubscription sets the subscription tier on the first user with the
// given username. Only the subscription flow mutates the tier.
func (s *Store) SetSubscription(username, tier string) bool {
	s.usersMu.Lock()
	defer s.usersMu.Unlock()

	for i := range s.users {
		if s.users[i].Username == username {
			s.users[i].SubscriptionType = tier
			return true
		}
	}
	return false
}

// HasUser reports whether any record exists for the username.
func (s *Store) HasUser(username string) bool {
	s.usersMu.RLock()
	defer s.usersMu.RUnlock()

	for _, u := range s.users {
		if u.Username == username {
			return true
		}
	}
	return false
}

// Users returns a snapshot of the identity ledger in registration order.
func (s *Store) Users() []models.User {
	s.usersMu.RLock()
	defer s.usersMu.RUnlock()

	out := make([]models.User, len(s.users))
	copy(out, s.users)
	return out
}
