package service

import (
	"context"
	"errors"

	"marketplace-service/internal/models"
	"marketplace-service/internal/store"
	"marketplace-service/internal/util"

	"go.uber.org/zap"
)

// OrderService drives the order lifecycle. Orders are always for a single
// unit: placing decrements the product quantity by exactly 1, cancelling
// restores exactly 1.
type OrderService struct {
	store  *store.Store
	logger *zap.Logger
}

// NewOrderService creates a new order service
func NewOrderService(store *store.Store) *OrderService {
	return &OrderService{
		store:  store,
		logger: util.GetLogger(),
	}
}

// PlaceOrder creates a Placed order for one unit of the product and
// decrements its stock.
func (s *OrderService) PlaceOrder(ctx context.Context, buyerUsername string, productID int) (models.Order, error) {
	_, span := util.StartSpan(ctx, "OrderService.PlaceOrder")
	defer span.End()

	if _, err := s.store.ReserveProduct(productID); err != nil {
		switch {
		case errors.Is(err, models.ErrProductSoldOut):
			util.OrdersFailedTotal.WithLabelValues("sold_out").Inc()
		default:
			util.OrdersFailedTotal.WithLabelValues("product_not_found").Inc()
		}
		return models.Order{}, err
	}
	order := s.store.AddOrder(buyerUsername, productID)

	util.OrdersPlacedTotal.Inc()
	s.logger.Info("Order placed",
		zap.Int("order_id", order.ID),
		zap.Int("product_id", productID),
		zap.String("buyer", buyerUsername))
	return order, nil
}

// CancelOrder cancels one of the buyer's own Placed orders and restores the
// product quantity. A missing order, a foreign order and an already
// cancelled order all report the same error. A missing product is ignored:
// the order still cancels, no stock is restored.
func (s *OrderService) CancelOrder(ctx context.Context, orderID int, buyerUsername string) error {
	_, span := util.StartSpan(ctx, "OrderService.CancelOrder")
	defer span.End()

	order, ok := s.store.GetOrderForBuyer(orderID, buyerUsername)
	if !ok {
		util.OrdersFailedTotal.WithLabelValues("cancel_denied").Inc()
		return models.ErrOrderNotFound
	}

	if !s.store.TransitionOrder(orderID, models.OrderStatusPlaced, models.OrderStatusCancelled) {
		util.OrdersFailedTotal.WithLabelValues("cancel_denied").Inc()
		return models.ErrOrderNotFound
	}

	if _, ok := s.store.AdjustStock(order.ProductID, 1); !ok {
		s.logger.Warn("Cancelled order references missing product",
			zap.Int("order_id", orderID),
			zap.Int("product_id", order.ProductID))
	}

	util.OrdersCancelledTotal.Inc()
	s.logger.Info("Order cancelled",
		zap.Int("order_id", orderID),
		zap.String("buyer", buyerUsername))
	return nil
}

// TrackOrder returns one of the buyer's own orders.
func (s *OrderService) TrackOrder(ctx context.Context, orderID int, buyerUsername string) (models.Order, error) {
	_, span := util.StartSpan(ctx, "OrderService.TrackOrder")
	defer span.End()

	order, ok := s.store.GetOrderForBuyer(orderID, buyerUsername)
	if !ok {
		return models.Order{}, models.ErrOrderNotFound
	}
	return order, nil
}

// ListOrders returns all of the buyer's orders in id order.
func (s *OrderService) ListOrders(ctx context.Context, buyerUsername string) []models.Order {
	_, span := util.StartSpan(ctx, "OrderService.ListOrders")
	defer span.End()

	return s.store.OrdersByBuyer(buyerUsername)
}
