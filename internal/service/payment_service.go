package service

import (
	"context"
	"fmt"
	"sync"

	"marketplace-service/config"
	"marketplace-service/internal/models"
	"marketplace-service/internal/util"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// channelTaxRates is the single dispatch table over the closed channel set.
var channelTaxRates = map[string]float64{
	models.ChannelCash:    0.10,
	models.ChannelFastPay: 0.05,
	models.ChannelCard:    0.15,
}

// PaymentService charges payers from in-memory wallets. Every payer opens a
// wallet at the configured opening balance on first use; there is no
// top-up. Dropping under the minimum balance is a warning, not a failure.
type PaymentService struct {
	business config.BusinessConfig
	logger   *zap.Logger

	walletsMu sync.Mutex
	wallets   map[string]float64
}

// NewPaymentService creates a new payment service
func NewPaymentService(business config.BusinessConfig) *PaymentService {
	return &PaymentService{
		business: business,
		logger:   util.GetLogger(),
		wallets:  make(map[string]float64),
	}
}

// ProcessPayment debits amount plus the channel's tax from the payer's
// wallet. On any failure the balance is unchanged.
func (ps *PaymentService) ProcessPayment(ctx context.Context, payer, channel string, amount float64) (models.Receipt, error) {
	_, span := util.StartSpan(ctx, "PaymentService.ProcessPayment")
	defer span.End()

	util.PaymentAttemptsTotal.Inc()

	rate, ok := channelTaxRates[channel]
	if !ok {
		util.PaymentFailedTotal.WithLabelValues("invalid_channel").Inc()
		return models.Receipt{}, models.ErrInvalidChannel
	}

	if amount <= 0 {
		util.PaymentFailedTotal.WithLabelValues("invalid_amount").Inc()
		return models.Receipt{}, models.ErrInvalidAmount
	}

	tax := amount * rate
	total := amount + tax

	ps.walletsMu.Lock()
	defer ps.walletsMu.Unlock()

	balance := ps.balanceLocked(payer)
	if total > balance {
		util.PaymentFailedTotal.WithLabelValues("insufficient_balance").Inc()
		ps.logger.Warn("Payment declined",
			zap.String("payer", payer),
			zap.String("channel", channel),
			zap.Float64("total", total),
			zap.Float64("balance", balance))
		return models.Receipt{}, models.ErrInsufficientFunds
	}

	balance -= total
	ps.wallets[payer] = balance

	receipt := models.Receipt{
		Reference:  fmt.Sprintf("TXN-%s", uuid.New().String()[:8]),
		Channel:    channel,
		Amount:     amount,
		Tax:        tax,
		Total:      total,
		Balance:    balance,
		LowBalance: balance < ps.business.MinimumBalance,
	}

	util.PaymentSuccessTotal.Inc()
	ps.logger.Info("Payment processed",
		zap.String("payer", payer),
		zap.String("reference", receipt.Reference),
		zap.String("channel", channel),
		zap.Float64("total", total))

	if receipt.LowBalance {
		util.LowBalanceWarningsTotal.Inc()
		ps.logger.Warn("Balance under minimum threshold",
			zap.String("payer", payer),
			zap.Float64("balance", balance),
			zap.Float64("minimum", ps.business.MinimumBalance))
	}

	return receipt, nil
}

// Balance returns the payer's current balance, opening the wallet if the
// payer has none yet.
func (ps *PaymentService) Balance(payer string) float64 {
	ps.walletsMu.Lock()
	defer ps.walletsMu.Unlock()

	return ps.balanceLocked(payer)
}

func (ps *PaymentService) balanceLocked(payer string) float64 {
	if balance, ok := ps.wallets[payer]; ok {
		return balance
	}
	ps.wallets[payer] = ps.business.OpeningBalance
	return ps.business.OpeningBalance
}
