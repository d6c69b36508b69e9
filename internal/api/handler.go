package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"marketplace-service/internal/models"
	"marketplace-service/internal/service"
	"marketplace-service/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handler contains HTTP handlers
type Handler struct {
	auth          *service.AuthService
	catalog       *service.CatalogService
	orders        *service.OrderService
	subscriptions *service.SubscriptionService
	feedback      *service.FeedbackService
	admin         *AdminHandler
}

// NewHandler creates a new HTTP handler
func NewHandler(
	auth *service.AuthService,
	catalog *service.CatalogService,
	orders *service.OrderService,
	subscriptions *service.SubscriptionService,
	feedback *service.FeedbackService,
	admin *AdminHandler,
) *Handler {
	return &Handler{
		auth:          auth,
		catalog:       catalog,
		orders:        orders,
		subscriptions: subscriptions,
		feedback:      feedback,
		admin:         admin,
	}
}

// SetupRoutes sets up HTTP routes
func (h *Handler) SetupRoutes(router *gin.Engine) {
	router.Use(gin.Recovery())
	router.Use(prometheusMiddleware())
	router.Use(gin.Logger())

	router.GET("/health", h.healthCheck)
	router.GET("/ready", h.readinessCheck)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1")
	{
		v1.POST("/auth/register", h.register)
		v1.POST("/auth/login", h.login)
		v1.POST("/auth/logout", h.logout)
		v1.GET("/auth/me", h.me)

		v1.GET("/products", h.listProducts)
		v1.POST("/products", h.addProduct)
		v1.PUT("/products/:id", h.updateProduct)
		v1.DELETE("/products/:id", h.deleteProduct)
		v1.GET("/products/search", h.searchProducts)

		v1.POST("/orders", h.placeOrder)
		v1.GET("/orders", h.listOrders)
		v1.GET("/orders/:id", h.trackOrder)
		v1.POST("/orders/:id/cancel", h.cancelOrder)

		v1.POST("/subscriptions", h.subscribe)

		v1.POST("/feedback/platform", h.addSellerFeedback)
		v1.POST("/feedback/product", h.addBuyerFeedback)
		v1.GET("/feedback/sellers/:username/ratings", h.sellerRatings)
		v1.GET("/feedback/buyers/:username/ratings", h.buyerRatings)

		admin := v1.Group("/admin", h.admin.RequireAdmin())
		{
			admin.GET("/users", h.admin.listUsers)
			admin.GET("/products", h.admin.listProducts)
			admin.GET("/feedback/sellers", h.admin.listSellerFeedback)
			admin.GET("/feedback/buyers", h.admin.listBuyerFeedback)
		}
	}
}

// healthCheck handles health check requests
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"time":   time.Now().Unix(),
	})
}

// readinessCheck handles readiness check requests
func (h *Handler) readinessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ready",
		"time":   time.Now().Unix(),
	})
}

type registerRequest struct {
	Username      string `json:"username" binding:"required"`
	Password      string `json:"password" binding:"required"`
	Role          string `json:"role" binding:"required,oneof=seller buyer"`
	ContactNumber string `json:"contact_number"`
}

func (h *Handler) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	// Contact number is required for sellers only.
	if req.Role == models.RoleSeller && req.ContactNumber == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "contact_number is required for sellers"})
		return
	}

	u := h.auth.Register(c.Request.Context(), req.Username, req.Password, req.Role, req.ContactNumber)
	c.JSON(http.StatusCreated, u)
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required,oneof=seller buyer"`
}

func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	u, token, err := h.auth.Login(c.Request.Context(), req.Username, req.Password, req.Role)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":  u,
		"token": token,
	})
}

func (h *Handler) logout(c *gin.Context) {
	h.auth.Logout(c.GetHeader("X-Session-Token"))
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

func (h *Handler) me(c *gin.Context) {
	username, ok := h.auth.SessionUser(c.GetHeader("X-Session-Token"))
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not logged in"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"username": username})
}

func (h *Handler) listProducts(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.ListProducts(c.Request.Context()))
}

type addProductRequest struct {
	Owner           string  `json:"owner" binding:"required"`
	Name            string  `json:"name" binding:"required"`
	Model           string  `json:"model"`
	Category        string  `json:"category"`
	OriginalPrice   float64 `json:"original_price"`
	DiscountedPrice float64 `json:"discounted_price"`
	Description     string  `json:"description"`
	Quantity        int     `json:"quantity"`
}

func (h *Handler) addProduct(c *gin.Context) {
	var req addProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	p := h.catalog.AddProduct(c.Request.Context(), req.Owner, service.AddProductInput{
		Name:            req.Name,
		Model:           req.Model,
		Category:        req.Category,
		OriginalPrice:   req.OriginalPrice,
		DiscountedPrice: req.DiscountedPrice,
		Description:     req.Description,
		Quantity:        req.Quantity,
	})
	c.JSON(http.StatusCreated, p)
}

type updateProductRequest struct {
	Name            string  `json:"name" binding:"required"`
	Model           string  `json:"model"`
	Category        string  `json:"category"`
	DiscountedPrice float64 `json:"discounted_price"`
	Quantity        int     `json:"quantity"`
}

func (h *Handler) updateProduct(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		badRequest(c, err)
		return
	}

	var req updateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	p, err := h.catalog.UpdateProduct(c.Request.Context(), id, service.UpdateProductInput{
		Name:            req.Name,
		Model:           req.Model,
		Category:        req.Category,
		DiscountedPrice: req.DiscountedPrice,
		Quantity:        req.Quantity,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) deleteProduct(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		badRequest(c, err)
		return
	}

	if err := h.catalog.DeleteProduct(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}

func (h *Handler) searchProducts(c *gin.Context) {
	mode := service.SearchMode(c.Query("mode"))
	query := service.SearchQuery{Term: c.Query("q")}

	if mode == service.SearchByPrice {
		maxPrice, err := strconv.ParseFloat(c.Query("max_price"), 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid max_price"})
			return
		}
		query.MaxPrice = maxPrice
	}

	matches, err := h.catalog.Search(c.Request.Context(), mode, query)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"matches": matches,
		"count":   len(matches),
	})
}

type placeOrderRequest struct {
	Buyer     string `json:"buyer" binding:"required"`
	ProductID int    `json:"product_id" binding:"required"`
}

func (h *Handler) placeOrder(c *gin.Context) {
	var req placeOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	order, err := h.orders.PlaceOrder(c.Request.Context(), req.Buyer, req.ProductID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

func (h *Handler) listOrders(c *gin.Context) {
	buyer := c.Query("buyer")
	if buyer == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "buyer is required"})
		return
	}
	c.JSON(http.StatusOK, h.orders.ListOrders(c.Request.Context(), buyer))
}

func (h *Handler) trackOrder(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		badRequest(c, err)
		return
	}

	order, err := h.orders.TrackOrder(c.Request.Context(), id, c.Query("buyer"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

type cancelOrderRequest struct {
	Buyer string `json:"buyer" binding:"required"`
}

func (h *Handler) cancelOrder(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		badRequest(c, err)
		return
	}

	var req cancelOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	if err := h.orders.CancelOrder(c.Request.Context(), id, req.Buyer); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"cancelled": id})
}

type subscribeRequest struct {
	Username string `json:"username" binding:"required"`
	Plan     string `json:"plan" binding:"required"`
	Channel  string `json:"channel" binding:"required"`
	// Accepted for the card channel but never validated or stored.
	CardNumber string `json:"card_number"`
}

func (h *Handler) subscribe(c *gin.Context) {
	var req subscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	receipt, err := h.subscriptions.ProcessSubscription(c.Request.Context(), req.Username, req.Plan, req.Channel)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"subscription": req.Plan,
		"receipt":      receipt,
	})
}

type sellerFeedbackRequest struct {
	Seller  string `json:"seller" binding:"required"`
	Comment string `json:"comment"`
	Rating  int    `json:"rating"`
}

func (h *Handler) addSellerFeedback(c *gin.Context) {
	var req sellerFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	f := h.feedback.AddSellerFeedback(c.Request.Context(), req.Seller, req.Comment, req.Rating)
	c.JSON(http.StatusCreated, f)
}

type buyerFeedbackRequest struct {
	Buyer     string `json:"buyer" binding:"required"`
	ProductID int    `json:"product_id"`
	Comment   string `json:"comment"`
	Rating    int    `json:"rating"`
}

func (h *Handler) addBuyerFeedback(c *gin.Context) {
	var req buyerFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	f := h.feedback.AddBuyerFeedback(c.Request.Context(), req.Buyer, req.ProductID, req.Comment, req.Rating)
	c.JSON(http.StatusCreated, f)
}

func (h *Handler) sellerRatings(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"ratings": h.feedback.SellerRatings(c.Request.Context(), c.Param("username")),
	})
}

func (h *Handler) buyerRatings(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"ratings": h.feedback.BuyerRatings(c.Request.Context(), c.Param("username")),
	})
}

func pathID(c *gin.Context) (int, error) {
	return strconv.Atoi(c.Param("id"))
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

// writeError maps the domain error taxonomy to HTTP statuses. No domain
// failure is fatal; the session continues.
func writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, models.ErrProductNotFound),
		errors.Is(err, models.ErrOrderNotFound),
		errors.Is(err, models.ErrUserNotFound):
		status = http.StatusNotFound
	case errors.Is(err, models.ErrInvalidAmount),
		errors.Is(err, models.ErrInvalidChannel),
		errors.Is(err, models.ErrInvalidPlan),
		errors.Is(err, models.ErrInvalidSearchMode):
		status = http.StatusBadRequest
	case errors.Is(err, models.ErrInsufficientFunds):
		status = http.StatusPaymentRequired
	case errors.Is(err, models.ErrProductSoldOut):
		status = http.StatusConflict
	}

	c.JSON(status, gin.H{"error": err.Error()})
}

// prometheusMiddleware collects HTTP metrics
func prometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Writer.Status())

		util.HTTPRequestDuration.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			status,
		).Observe(duration)

		util.HTTPRequestsTotal.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			status,
		).Inc()
	}
}
