package service

import (
	"context"

	"marketplace-service/config"
	"marketplace-service/internal/models"
	"marketplace-service/internal/store"
	"marketplace-service/internal/util"

	"go.uber.org/zap"
)

// SubscriptionService charges the fixed plan fee through the payment
// service and activates the tier only after the payment succeeds.
type SubscriptionService struct {
	store    *store.Store
	payments *PaymentService
	business config.BusinessConfig
	logger   *zap.Logger
}

// NewSubscriptionService creates a new subscription service
func NewSubscriptionService(store *store.Store, payments *PaymentService, business config.BusinessConfig) *SubscriptionService {
	return &SubscriptionService{
		store:    store,
		payments: payments,
		business: business,
		logger:   util.GetLogger(),
	}
}

// ProcessSubscription charges the plan fee on the chosen channel and sets
// the user's subscription tier. Nothing is charged for an invalid plan or
// an unknown user.
func (s *SubscriptionService) ProcessSubscription(ctx context.Context, username, plan, channel string) (models.Receipt, error) {
	_, span := util.StartSpan(ctx, "SubscriptionService.ProcessSubscription")
	defer span.End()

	var fee float64
	switch plan {
	case models.TierBasic:
		fee = s.business.BasicPlanFee
	case models.TierPremium:
		fee = s.business.PremiumPlanFee
	default:
		return models.Receipt{}, models.ErrInvalidPlan
	}

	if !s.store.HasUser(username) {
		return models.Receipt{}, models.ErrUserNotFound
	}

	receipt, err := s.payments.ProcessPayment(ctx, username, channel, fee)
	if err != nil {
		return models.Receipt{}, err
	}

	s.store.SetSubscription(username, plan)

	util.SubscriptionsActivatedTotal.WithLabelValues(plan).Inc()
	s.logger.Info("Subscription activated",
		zap.String("username", username),
		zap.String("plan", plan),
		zap.String("reference", receipt.Reference))
	return receipt, nil
}
