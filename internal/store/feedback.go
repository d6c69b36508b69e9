package store

import "marketplace-service/internal/models"

// AddSellerFeedback appends a seller's feedback on the platform. The ledger
// is append-only; there is no update or delete.
func (s *Store) AddSellerFeedback(f models.SellerFeedback) {
	s.feedbackMu.Lock()
	defer s.feedbackMu.Unlock()

	s.sellerFeedbacks = append(s.sellerFeedbacks, f)
}

// AddBuyerFeedback appends a buyer's feedback on a product. The product id
// is recorded as given; it is not checked against the catalog.
func (s *Store) AddBuyerFeedback(f models.BuyerFeedback) {
	s.feedbackMu.Lock()
	defer s.feedbackMu.Unlock()

	s.buyerFeedbacks = append(s.buyerFeedbacks, f)
}

// SellerRatings returns every rating the given seller has left, in order.
func (s *Store) SellerRatings(sellerUsername string) []int {
	s.feedbackMu.RLock()
	defer s.feedbackMu.RUnlock()

	ratings := make([]int, 0)
	for _, f := range s.sellerFeedbacks {
		if f.SellerUsername == sellerUsername {
			ratings = append(ratings, f.Rating)
		}
	}
	return ratings
}

// BuyerRatings returns every rating the given buyer has left, in order.
func (s *Store) BuyerRatings(buyerUsername string) []int {
	s.feedbackMu.RLock()
	defer s.feedbackMu.RUnlock()

	ratings := make([]int, 0)
	for _, f := range s.buyerFeedbacks {
		if f.BuyerUsername == buyerUsername {
			ratings = append(ratings, f.Rating)
		}
	}
	return ratings
}

// SellerFeedbacks returns a snapshot of the seller feedback ledger.
func (s *Store) SellerFeedbacks() []models.SellerFeedback {
	s.feedbackMu.RLock()
	defer s.feedbackMu.RUnlock()

	out := make([]models.SellerFeedback, len(s.sellerFeedbacks))
	copy(out, s.sellerFeedbacks)
	return out
}

// BuyerFeedbacks returns a snapshot of the buyer feedback ledger.
func (s *Store) BuyerFeedbacks() []models.BuyerFeedback {
	s.feedbackMu.RLock()
	defer s.feedbackMu.RUnlock()

	out := make([]models.BuyerFeedback, len(s.buyerFeedbacks))
	copy(out, s.buyerFeedbacks)
	return out
}
