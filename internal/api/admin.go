package api

import (
	"net/http"

	"marketplace-service/internal/service"
	"marketplace-service/internal/store"

	"github.com/gin-gonic/gin"
)

// AdminHandler serves the read-only admin listings. Access is guarded by
// the configured credential pair, checked per request; admin is never a
// registered user.
type AdminHandler struct {
	auth  *service.AuthService
	store *store.Store
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(auth *service.AuthService, store *store.Store) *AdminHandler {
	return &AdminHandler{
		auth:  auth,
		store: store,
	}
}

// RequireAdmin rejects requests without the admin credential headers.
func (a *AdminHandler) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		username := c.GetHeader("X-Admin-Username")
		password := c.GetHeader("X-Admin-Password")
		if !a.auth.AdminLogin(username, password) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid admin credentials"})
			return
		}
		c.Next()
	}
}

func (a *AdminHandler) listUsers(c *gin.Context) {
	c.JSON(http.StatusOK, a.store.Users())
}

func (a *AdminHandler) listProducts(c *gin.Context) {
	c.JSON(http.StatusOK, a.store.Products())
}

func (a *AdminHandler) listSellerFeedback(c *gin.Context) {
	c.JSON(http.StatusOK, a.store.SellerFeedbacks())
}

func (a *AdminHandler) listBuyerFeedback(c *gin.Context) {
	c.JSON(http.StatusOK, a.store.BuyerFeedbacks())
}
