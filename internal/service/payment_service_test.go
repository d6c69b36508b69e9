package service

import (
	"context"
	"strings"
	"testing"

	"marketplace-service/config"
	"marketplace-service/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBusinessConfig() config.BusinessConfig {
	return config.BusinessConfig{
		OpeningBalance: 1500,
		MinimumBalance: 300,
		BasicPlanFee:   500,
		PremiumPlanFee: 1000,
	}
}

func TestProcessPaymentInvalidAmount(t *testing.T) {
	ps := NewPaymentService(testBusinessConfig())
	ctx := context.Background()

	for _, amount := range []float64{0, -50} {
		_, err := ps.ProcessPayment(ctx, "b1", models.ChannelCash, amount)
		assert.ErrorIs(t, err, models.ErrInvalidAmount)
	}
	assert.Equal(t, 1500.0, ps.Balance("b1"))
}

func TestProcessPaymentInvalidChannel(t *testing.T) {
	ps := NewPaymentService(testBusinessConfig())

	_, err := ps.ProcessPayment(context.Background(), "b1", "barter", 100)
	assert.ErrorIs(t, err, models.ErrInvalidChannel)
	assert.Equal(t, 1500.0, ps.Balance("b1"))
}

func TestProcessPaymentInsufficientBalance(t *testing.T) {
	ps := NewPaymentService(testBusinessConfig())

	// 1400 * 1.10 = 1540 > 1500
	_, err := ps.ProcessPayment(context.Background(), "b1", models.ChannelCash, 1400)
	assert.ErrorIs(t, err, models.ErrInsufficientFunds)
	assert.Equal(t, 1500.0, ps.Balance("b1"))
}

func TestProcessPaymentChannelTaxRates(t *testing.T) {
	tests := []struct {
		channel string
		amount  float64
		tax     float64
	}{
		{models.ChannelCash, 100, 10},
		{models.ChannelFastPay, 100, 5},
		{models.ChannelCard, 100, 15},
	}

	for _, tt := range tests {
		t.Run(tt.channel, func(t *testing.T) {
			ps := NewPaymentService(testBusinessConfig())

			receipt, err := ps.ProcessPayment(context.Background(), "b1", tt.channel, tt.amount)
			require.NoError(t, err)
			assert.Equal(t, tt.tax, receipt.Tax)
			assert.Equal(t, tt.amount+tt.tax, receipt.Total)
			assert.Equal(t, 1500-(tt.amount+tt.tax), receipt.Balance)
			assert.Equal(t, receipt.Balance, ps.Balance("b1"))
		})
	}
}

func TestProcessPaymentLowBalanceWarning(t *testing.T) {
	ps := NewPaymentService(testBusinessConfig())
	ctx := context.Background()

	receipt, err := ps.ProcessPayment(ctx, "b1", models.ChannelFastPay, 500)
	require.NoError(t, err)
	assert.False(t, receipt.LowBalance)
	assert.Equal(t, 975.0, receipt.Balance)

	// Second charge drops under the 300 minimum: a warning, not a failure.
	receipt, err = ps.ProcessPayment(ctx, "b1", models.ChannelFastPay, 700)
	require.NoError(t, err)
	assert.True(t, receipt.LowBalance)
	assert.Equal(t, 240.0, receipt.Balance)
}

func TestProcessPaymentReceiptReference(t *testing.T) {
	ps := NewPaymentService(testBusinessConfig())

	receipt, err := ps.ProcessPayment(context.Background(), "b1", models.ChannelCash, 100)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(receipt.Reference, "TXN-"))
}

func TestWalletsArePerPayer(t *testing.T) {
	ps := NewPaymentService(testBusinessConfig())

	_, err := ps.ProcessPayment(context.Background(), "b1", models.ChannelCash, 100)
	require.NoError(t, err)

	assert.Equal(t, 1390.0, ps.Balance("b1"))
	assert.Equal(t, 1500.0, ps.Balance("b2"))
}
