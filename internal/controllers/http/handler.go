package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"campuseats/internal/domain"
	"campuseats/internal/repository"
	"campuseats/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

const (
	generalLimit = 500
	strictLimit  = 1000
)

type Handler struct {
	auth          *services.AuthService
	orders        *services.OrderService
	catalog       *services.CatalogService
	admin         *services.AdminService
	notifications *services.NotificationService
	rdb           *redis.Client
}

func NewHandler(
	auth *services.AuthService,
	orders *services.OrderService,
	catalog *services.CatalogService,
	admin *services.AdminService,
	notifications *services.NotificationService,
	rdb *redis.Client,
) *Handler {
	return &Handler{
		auth:          auth,
		orders:        orders,
		catalog:       catalog,
		admin:         admin,
		notifications: notifications,
		rdb:           rdb,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "campuseats backend is running")
	})

	api := r.Group("/api", RateLimit(h.rdb, "general", generalLimit))

	authGroup := api.Group("/auth", RateLimit(h.rdb, "strict", strictLimit))
	authGroup.POST("/register", h.Register)
	authGroup.POST("/login", h.Login)

	vendors := api.Group("/vendors")
	vendors.GET("", h.ListVendors)
	vendors.GET("/:id", h.GetVendor)
	vendors.POST("", AuthRequired(h.auth), RequireVendor(), h.CreateVendor)
	vendors.PUT("/:id", AuthRequired(h.auth), RequireVendor(), h.UpdateVendor)

	menu := api.Group("/menu")
	menu.GET("/vendor/:vendorId", h.GetMenu)
	menu.POST("", AuthRequired(h.auth), RequireVendor(), h.CreateMenuItem)
	menu.PUT("/:id", AuthRequired(h.auth), RequireVendor(), h.UpdateMenuItem)
	menu.DELETE("/:id", AuthRequired(h.auth), RequireVendor(), h.DeleteMenuItem)

	orders := api.Group("/orders")
	orders.GET("/vendor/:vendorId/live-count", h.LiveOrderCount)
	orders.POST("", AuthRequired(h.auth), h.CreateOrder)
	orders.GET("/my-orders", AuthRequired(h.auth), h.MyOrders)
	orders.GET("/:id", AuthRequired(h.auth), h.GetOrder)
	orders.GET("/vendor/:vendorId", AuthRequired(h.auth), RequireVendor(), h.VendorOrders)
	orders.PUT("/:id/status", AuthRequired(h.auth), RequireVendor(), h.UpdateOrderStatus)

	notifications := api.Group("/notifications", AuthRequired(h.auth))
	notifications.GET("", h.MyNotifications)
	notifications.PUT("/:id/read", h.MarkNotificationRead)

	admin := api.Group("/admin", AuthRequired(h.auth), RequireAdmin())
	admin.GET("/stats", h.AdminStats)
	admin.GET("/analytics", h.AdminAnalytics)
	admin.GET("/vendors", h.AdminVendors)
	admin.PUT("/vendors/:id/toggle", h.AdminToggleVendor)
	admin.DELETE("/vendors/:id", h.AdminDeleteVendor)
	admin.GET("/users", h.AdminUsers)
	admin.PUT("/users/:id/ban", h.AdminToggleUserBan)
	admin.DELETE("/users/:id", h.AdminDeleteUser)
	admin.GET("/orders", h.AdminOrders)
	admin.GET("/orders/:id", h.AdminOrderDetails)
}

func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, services.ErrOrderNotFound),
		errors.Is(err, services.ErrVendorNotFound),
		errors.Is(err, services.ErrMenuItemNotFound),
		errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrNotificationNotFound):
		status = http.StatusNotFound
	case errors.Is(err, services.ErrEmptyOrder),
		errors.Is(err, services.ErrInvalidItem),
		errors.Is(err, services.ErrInvalidStatus),
		errors.Is(err, services.ErrIllegalTransition):
		status = http.StatusBadRequest
	case errors.Is(err, services.ErrStatusConflict),
		errors.Is(err, services.ErrEmailTaken):
		status = http.StatusConflict
	case errors.Is(err, services.ErrInvalidCredentials),
		errors.Is(err, services.ErrInvalidToken):
		status = http.StatusUnauthorized
	case errors.Is(err, services.ErrUserBanned),
		errors.Is(err, services.ErrAdminImmutable):
		status = http.StatusForbidden
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

func paramID(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return id, true
}

func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.auth.Register(c.Request.Context(), services.RegisterInput{
		Name:      req.Name,
		Email:     req.Email,
		CollegeID: req.CollegeID,
		Password:  req.Password,
		Phone:     req.Phone,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, user)
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, user, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, LoginResponse{Token: token, User: user})
}

func (h *Handler) ListVendors(c *gin.Context) {
	vendors, err := h.catalog.ListVendors(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, vendors)
}

func (h *Handler) GetVendor(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	vendor, err := h.catalog.GetVendor(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, vendor)
}

func (h *Handler) CreateVendor(c *gin.Context) {
	var req CreateVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	vendor, err := h.catalog.CreateVendor(c.Request.Context(), callerID(c), req.Name, req.Description, req.ImageURL)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, vendor)
}

func (h *Handler) UpdateVendor(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req UpdateVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	vendor, err := h.catalog.UpdateVendor(c.Request.Context(), id, services.VendorUpdate{
		Name:        req.Name,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		IsActive:    req.IsActive,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, vendor)
}

func (h *Handler) GetMenu(c *gin.Context) {
	vendorID, ok := paramID(c, "vendorId")
	if !ok {
		return
	}

	items, err := h.catalog.GetMenu(c.Request.Context(), vendorID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) CreateMenuItem(c *gin.Context) {
	var req CreateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item := &domain.MenuItem{
		Name:            req.Name,
		Description:     req.Description,
		Price:           req.Price,
		ImageURL:        req.ImageURL,
		Category:        req.Category,
		IsAvailable:     true,
		VendorID:        req.VendorID,
		PreparationTime: req.PreparationTime,
	}
	if item.PreparationTime == 0 {
		item.PreparationTime = 15
	}

	if err := h.catalog.CreateMenuItem(c.Request.Context(), item); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *Handler) UpdateMenuItem(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req UpdateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := h.catalog.UpdateMenuItem(c.Request.Context(), id, services.MenuItemUpdate{
		Name:            req.Name,
		Description:     req.Description,
		Price:           req.Price,
		ImageURL:        req.ImageURL,
		Category:        req.Category,
		IsAvailable:     req.IsAvailable,
		PreparationTime: req.PreparationTime,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *Handler) DeleteMenuItem(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := h.catalog.DeleteMenuItem(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "menu item deleted successfully"})
}

func (h *Handler) CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	items := make([]domain.OrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, domain.OrderItem{
			Name:     item.Name,
			Price:    item.Price,
			Quantity: item.Quantity,
		})
	}

	order, err := h.orders.CreateOrder(c.Request.Context(), callerID(c), services.CreateOrderInput{
		VendorID:      req.VendorID,
		Items:         items,
		TotalAmount:   req.TotalAmount,
		Notes:         req.Notes,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, order)
}

func (h *Handler) MyOrders(c *gin.Context) {
	orders, err := h.orders.ListUserOrders(c.Request.Context(), callerID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *Handler) GetOrder(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	order, err := h.orders.GetOrder(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	// Students may only read their own orders.
	if callerRole(c) == domain.RoleStudent && order.UserID != callerID(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "access denied"})
		return
	}

	c.JSON(http.StatusOK, order)
}

func (h *Handler) VendorOrders(c *gin.Context) {
	vendorID, ok := paramID(c, "vendorId")
	if !ok {
		return
	}

	orders, err := h.orders.ListVendorOrders(c.Request.Context(), vendorID, domain.OrderStatus(c.Query("status")))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := h.orders.UpdateStatus(c.Request.Context(), id, domain.OrderStatus(req.Status))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *Handler) LiveOrderCount(c *gin.Context) {
	vendorID, ok := paramID(c, "vendorId")
	if !ok {
		return
	}

	count, err := h.orders.LiveCount(c.Request.Context(), vendorID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}

func (h *Handler) MyNotifications(c *gin.Context) {
	notifications, err := h.notifications.ListForUser(c.Request.Context(), callerID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, notifications)
}

func (h *Handler) MarkNotificationRead(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := h.notifications.MarkRead(c.Request.Context(), id, callerID(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "notification marked as read"})
}

func (h *Handler) AdminStats(c *gin.Context) {
	stats, err := h.admin.Stats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *Handler) AdminAnalytics(c *gin.Context) {
	analytics, err := h.admin.Analytics(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, analytics)
}

func (h *Handler) AdminVendors(c *gin.Context) {
	vendors, err := h.admin.ListVendors(c.Request.Context(), repository.VendorFilter{
		Status: c.Query("status"),
		Search: c.Query("search"),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, vendors)
}

func (h *Handler) AdminToggleVendor(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	vendor, err := h.admin.ToggleVendor(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	message := "vendor disabled"
	if vendor.IsActive {
		message = "vendor enabled"
	}
	c.JSON(http.StatusOK, gin.H{"message": message, "vendor": vendor})
}

func (h *Handler) AdminDeleteVendor(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := h.admin.DeleteVendor(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "vendor deleted successfully"})
}

func (h *Handler) AdminUsers(c *gin.Context) {
	users, err := h.admin.ListUsers(c.Request.Context(), repository.UserFilter{
		Role:   domain.Role(c.Query("role")),
		Status: c.Query("status"),
		Search: c.Query("search"),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *Handler) AdminToggleUserBan(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	user, err := h.admin.ToggleUserBan(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	message := "user banned"
	if user.IsActive {
		message = "user unbanned"
	}
	c.JSON(http.StatusOK, gin.H{"message": message, "user": user})
}

func (h *Handler) AdminDeleteUser(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := h.admin.DeleteUser(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "user deleted successfully"})
}

func (h *Handler) AdminOrders(c *gin.Context) {
	filter := repository.OrderFilter{
		Status: domain.OrderStatus(c.Query("status")),
	}
	if v := c.Query("vendor"); v != "" {
		if id, err := strconv.ParseUint(v, 10, 64); err == nil {
			filter.VendorID = id
		}
	}
	if u := c.Query("user"); u != "" {
		if id, err := strconv.ParseUint(u, 10, 64); err == nil {
			filter.UserID = id
		}
	}
	if d := c.Query("startDate"); d != "" {
		if t, err := time.Parse("2006-01-02", d); err == nil {
			filter.StartDate = t
		}
	}
	if d := c.Query("endDate"); d != "" {
		if t, err := time.Parse("2006-01-02", d); err == nil {
			// Inclusive end of day.
			filter.EndDate = t.Add(24*time.Hour - time.Nanosecond)
		}
	}

	orders, err := h.admin.ListOrders(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *Handler) AdminOrderDetails(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	order, err := h.admin.OrderDetails(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}
