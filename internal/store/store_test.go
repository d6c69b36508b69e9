package store

import (
	"sync"
	"sync/atomic"
	"testing"

	"marketplace-service/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddProductAssignsIncreasingIDs(t *testing.T) {
	s := NewStore()

	seen := make(map[int]bool)
	last := 0
	for i := 0; i < 10; i++ {
		p := s.AddProduct(models.Product{Name: "Widget", Quantity: 1})
		assert.Greater(t, p.ID, last)
		assert.False(t, seen[p.ID])
		seen[p.ID] = true
		last = p.ID
	}
}

func TestProductIDsNotReusedAfterDelete(t *testing.T) {
	s := NewStore()

	p1 := s.AddProduct(models.Product{Name: "Widget", Quantity: 1})
	require.NoError(t, s.DeleteProduct(p1.ID))

	p2 := s.AddProduct(models.Product{Name: "Gadget", Quantity: 1})
	assert.Greater(t, p2.ID, p1.ID)
}

func TestAddProductDerivesSoldOut(t *testing.T) {
	s := NewStore()

	inStock := s.AddProduct(models.Product{Name: "Phone", Quantity: 3})
	assert.False(t, inStock.IsSoldOut)

	empty := s.AddProduct(models.Product{Name: "Tablet", Quantity: 0})
	assert.True(t, empty.IsSoldOut)
}

func TestAdjustStockRoundTrip(t *testing.T) {
	s := NewStore()
	p := s.AddProduct(models.Product{Name: "Phone", Quantity: 1})

	after, ok := s.AdjustStock(p.ID, -1)
	require.True(t, ok)
	assert.Equal(t, 0, after.Quantity)
	assert.True(t, after.IsSoldOut)

	restored, ok := s.AdjustStock(p.ID, 1)
	require.True(t, ok)
	assert.Equal(t, p.Quantity, restored.Quantity)
	assert.Equal(t, p.IsSoldOut, restored.IsSoldOut)
}

func TestAdjustStockAllowsNegative(t *testing.T) {
	s := NewStore()
	p := s.AddProduct(models.Product{Name: "Phone", Quantity: 0})

	after, ok := s.AdjustStock(p.ID, -1)
	require.True(t, ok)
	assert.Equal(t, -1, after.Quantity)
	assert.True(t, after.IsSoldOut)
}

func TestReserveProduct(t *testing.T) {
	s := NewStore()
	p := s.AddProduct(models.Product{Name: "Phone", Quantity: 1})

	after, err := s.ReserveProduct(p.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, after.Quantity)
	assert.True(t, after.IsSoldOut)

	_, err = s.ReserveProduct(p.ID)
	assert.ErrorIs(t, err, models.ErrProductSoldOut)

	_, err = s.ReserveProduct(42)
	assert.ErrorIs(t, err, models.ErrProductNotFound)

	// A failed reserve never changes the quantity.
	got, ok := s.GetProduct(p.ID)
	require.True(t, ok)
	assert.Equal(t, 0, got.Quantity)
}

func TestReserveProductConcurrent(t *testing.T) {
	s := NewStore()
	p := s.AddProduct(models.Product{Name: "Phone", Quantity: 5})

	const claims = 32
	var wg sync.WaitGroup
	var won atomic.Int32
	for i := 0; i < claims; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := s.ReserveProduct(p.ID); err == nil {
				won.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(5), won.Load())
	got, ok := s.GetProduct(p.ID)
	require.True(t, ok)
	assert.Equal(t, 0, got.Quantity)
}

func TestAdjustStockMissingProduct(t *testing.T) {
	s := NewStore()

	_, ok := s.AdjustStock(42, 1)
	assert.False(t, ok)
}

func TestUpdateProduct(t *testing.T) {
	s := NewStore()
	p := s.AddProduct(models.Product{
		Name:            "Phone",
		Model:           "X1",
		Category:        "Electronics",
		OriginalPrice:   1000,
		DiscountedPrice: 900,
		Description:     "A phone",
		Owner:           "s1",
		Quantity:        2,
	})

	updated, err := s.UpdateProduct(p.ID, "Phone Pro", "X2", "Electronics", 950, 0)
	require.NoError(t, err)
	assert.Equal(t, "Phone Pro", updated.Name)
	assert.Equal(t, "X2", updated.Model)
	assert.Equal(t, 950.0, updated.DiscountedPrice)
	assert.True(t, updated.IsSoldOut)

	// An update never rewrites original price, description or owner.
	assert.Equal(t, 1000.0, updated.OriginalPrice)
	assert.Equal(t, "A phone", updated.Description)
	assert.Equal(t, "s1", updated.Owner)
}

func TestUpdateProductNotFound(t *testing.T) {
	s := NewStore()

	_, err := s.UpdateProduct(99, "Name", "M", "C", 1, 1)
	assert.ErrorIs(t, err, models.ErrProductNotFound)
}

func TestDeleteProduct(t *testing.T) {
	s := NewStore()
	p1 := s.AddProduct(models.Product{Name: "A", Quantity: 1})
	p2 := s.AddProduct(models.Product{Name: "B", Quantity: 1})

	require.NoError(t, s.DeleteProduct(p1.ID))
	assert.ErrorIs(t, s.DeleteProduct(p1.ID), models.ErrProductNotFound)

	products := s.Products()
	require.Len(t, products, 1)
	assert.Equal(t, p2.ID, products[0].ID)
}

func TestRegisterAllowsDuplicateUsernames(t *testing.T) {
	s := NewStore()

	s.AddUser(models.User{Username: "b1", Password: "pw", Role: models.RoleBuyer})
	s.AddUser(models.User{Username: "b1", Password: "other", Role: models.RoleBuyer})

	assert.Len(t, s.Users(), 2)

	// Login resolves to the first matching record.
	u, ok := s.Authenticate("b1", "pw", models.RoleBuyer)
	require.True(t, ok)
	assert.Equal(t, "pw", u.Password)
}

func TestAuthenticateExactTriple(t *testing.T) {
	s := NewStore()
	s.AddUser(models.User{Username: "b1", Password: "pw", Role: models.RoleBuyer})

	_, ok := s.Authenticate("b1", "wrong", models.RoleBuyer)
	assert.False(t, ok)

	_, ok = s.Authenticate("b1", "pw", models.RoleSeller)
	assert.False(t, ok)

	u, ok := s.Authenticate("b1", "pw", models.RoleBuyer)
	require.True(t, ok)
	assert.Equal(t, "b1", u.Username)
}

func TestOrderIDsIncrease(t *testing.T) {
	s := NewStore()

	o1 := s.AddOrder("b1", 1)
	o2 := s.AddOrder("b1", 2)
	assert.Greater(t, o2.ID, o1.ID)
	assert.Equal(t, models.OrderStatusPlaced, o1.Status)
	assert.False(t, o1.CreatedAt.IsZero())
}

func TestGetOrderForBuyerScoping(t *testing.T) {
	s := NewStore()
	o := s.AddOrder("b1", 1)

	_, ok := s.GetOrderForBuyer(o.ID, "b2")
	assert.False(t, ok)

	got, ok := s.GetOrderForBuyer(o.ID, "b1")
	require.True(t, ok)
	assert.Equal(t, o.ID, got.ID)
}

func TestTransitionOrderRequiresCurrentStatus(t *testing.T) {
	s := NewStore()
	o := s.AddOrder("b1", 1)

	assert.True(t, s.TransitionOrder(o.ID, models.OrderStatusPlaced, models.OrderStatusCancelled))
	assert.False(t, s.TransitionOrder(o.ID, models.OrderStatusPlaced, models.OrderStatusCancelled))

	got, ok := s.GetOrderForBuyer(o.ID, "b1")
	require.True(t, ok)
	assert.Equal(t, models.OrderStatusCancelled, got.Status)
}

func TestFeedbackLedgers(t *testing.T) {
	s := NewStore()

	s.AddSellerFeedback(models.SellerFeedback{SellerUsername: "s1", Comment: "good", Rating: 5})
	s.AddSellerFeedback(models.SellerFeedback{SellerUsername: "s2", Comment: "ok", Rating: 3})
	s.AddSellerFeedback(models.SellerFeedback{SellerUsername: "s1", Comment: "meh", Rating: 2})

	assert.Equal(t, []int{5, 2}, s.SellerRatings("s1"))
	assert.Empty(t, s.SellerRatings("nobody"))

	// Ratings are not range-validated and product ids are not checked.
	s.AddBuyerFeedback(models.BuyerFeedback{BuyerUsername: "b1", ProductID: 999, Rating: 42})
	assert.Equal(t, []int{42}, s.BuyerRatings("b1"))
	assert.Len(t, s.BuyerFeedbacks(), 1)
}
