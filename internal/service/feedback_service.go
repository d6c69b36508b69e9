package service

import (
	"context"

	"marketplace-service/internal/models"
	"marketplace-service/internal/store"
	"marketplace-service/internal/util"

	"go.uber.org/zap"
)

// FeedbackService appends to the two feedback ledgers. Ratings are recorded
// as given; the 1-5 range is documented, not enforced, and a buyer feedback
// may reference a product id that does not exist.
type FeedbackService struct {
	store  *store.Store
	logger *zap.Logger
}

// NewFeedbackService creates a new feedback service
func NewFeedbackService(store *store.Store) *FeedbackService {
	return &FeedbackService{
		store:  store,
		logger: util.GetLogger(),
	}
}

// AddSellerFeedback records a seller's feedback on the platform.
func (s *FeedbackService) AddSellerFeedback(ctx context.Context, sellerUsername, comment string, rating int) models.SellerFeedback {
	_, span := util.StartSpan(ctx, "FeedbackService.AddSellerFeedback")
	defer span.End()

	f := models.SellerFeedback{
		SellerUsername: sellerUsername,
		Comment:        comment,
		Rating:         rating,
	}
	s.store.AddSellerFeedback(f)

	util.FeedbackTotal.WithLabelValues("seller").Inc()
	s.logger.Info("Seller feedback recorded", zap.String("seller", sellerUsername))
	return f
}

// AddBuyerFeedback records a buyer's feedback on a product.
func (s *FeedbackService) AddBuyerFeedback(ctx context.Context, buyerUsername string, productID int, comment string, rating int) models.BuyerFeedback {
	_, span := util.StartSpan(ctx, "FeedbackService.AddBuyerFeedback")
	defer span.End()

	f := models.BuyerFeedback{
		BuyerUsername: buyerUsername,
		ProductID:     productID,
		Comment:       comment,
		Rating:        rating,
	}
	s.store.AddBuyerFeedback(f)

	util.FeedbackTotal.WithLabelValues("buyer").Inc()
	s.logger.Info("Buyer feedback recorded",
		zap.String("buyer", buyerUsername),
		zap.Int("product_id", productID))
	return f
}

// SellerRatings returns every rating the seller has left.
func (s *FeedbackService) SellerRatings(ctx context.Context, sellerUsername string) []int {
	return s.store.SellerRatings(sellerUsername)
}

// BuyerRatings returns every rating the buyer has left.
func (s *FeedbackService) BuyerRatings(ctx context.Context, buyerUsername string) []int {
	return s.store.BuyerRatings(buyerUsername)
}
