package models

import "time"

// User represents a registered seller or buyer. The admin account is not a
// User; it is a configured credential pair checked separately.
type User struct {
	Username         string `json:"username"`
	Password         string `json:"-"`
	Role             string `json:"role"`
	SubscriptionType string `json:"subscription_type,omitempty"`
	ContactNumber    string `json:"contact_number,omitempty"`
}

// Roles
const (
	RoleSeller = "seller"
	RoleBuyer  = "buyer"
)

// Subscription tiers. An empty SubscriptionType means no subscription.
const (
	TierBasic   = "Basic"
	TierPremium = "Premium"
)

// Product represents a catalog entry. IsSoldOut is derived and must equal
// Quantity <= 0 after every mutation.
type Product struct {
	ID              int     `json:"id"`
	Name            string  `json:"name"`
	Model           string  `json:"model"`
	Category        string  `json:"category"`
	OriginalPrice   float64 `json:"original_price"`
	DiscountedPrice float64 `json:"discounted_price"`
	Description     string  `json:"description"`
	Owner           string  `json:"owner"`
	Quantity        int     `json:"quantity"`
	IsSoldOut       bool    `json:"is_sold_out"`
}

// Order represents a single-unit purchase of one product.
type Order struct {
	ID            int       `json:"id"`
	BuyerUsername string    `json:"buyer_username"`
	ProductID     int       `json:"product_id"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

// Order statuses. Only Placed and Cancelled are ever assigned by the
// current operations; Shipped and Delivered exist as values only.
const (
	OrderStatusPlaced    = "Placed"
	OrderStatusShipped   = "Shipped"
	OrderStatusDelivered = "Delivered"
	OrderStatusCancelled = "Cancelled"
)

// SellerFeedback is a seller's feedback on the platform itself.
type SellerFeedback struct {
	SellerUsername string `json:"seller_username"`
	Comment        string `json:"comment"`
	Rating         int    `json:"rating"`
}

// BuyerFeedback is a buyer's feedback on a product. The product id is not
// checked against the catalog.
type BuyerFeedback struct {
	BuyerUsername string `json:"buyer_username"`
	ProductID     int    `json:"product_id"`
	Comment       string `json:"comment"`
	Rating        int    `json:"rating"`
}

// Payment channels. Each channel carries its own tax rate.
const (
	ChannelCash    = "cash"
	ChannelFastPay = "fastpay"
	ChannelCard    = "card"
)

// Receipt describes a completed payment.
type Receipt struct {
	Reference  string  `json:"reference"`
	Channel    string  `json:"channel"`
	Amount     float64 `json:"amount"`
	Tax        float64 `json:"tax"`
	Total      float64 `json:"total"`
	Balance    float64 `json:"balance"`
	LowBalance bool    `json:"low_balance"`
}
