package models

import "errors"

// Domain error taxonomy. Every failure aborts the single operation that
// raised it; nothing here is fatal to the process.
var (
	ErrUserNotFound      = errors.New("invalid credentials or role")
	ErrProductNotFound   = errors.New("product not found")
	ErrProductSoldOut    = errors.New("product is sold out")
	ErrOrderNotFound     = errors.New("invalid order id or you do not have permission to access this order")
	ErrInvalidAmount     = errors.New("invalid amount")
	ErrInvalidChannel    = errors.New("invalid payment channel")
	ErrInvalidPlan       = errors.New("invalid subscription plan")
	ErrInvalidSearchMode = errors.New("invalid search mode")
	ErrInsufficientFunds = errors.New("insufficient balance")
)
