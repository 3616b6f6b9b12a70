package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"campuseats/internal/domain"
	"campuseats/internal/mocks"
	"campuseats/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const testSecret = "test-secret"

type testDeps struct {
	orders        *mocks.MockOrderRepository
	vendors       *mocks.MockVendorRepository
	menu          *mocks.MockMenuItemRepository
	users         *mocks.MockUserRepository
	notifications *mocks.MockNotificationRepository
	stats         *mocks.MockStatsRepository
	publisher     *mocks.MockPublisher
}

func setupRouter(t *testing.T) (*gin.Engine, *testDeps) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	deps := &testDeps{
		orders:        new(mocks.MockOrderRepository),
		vendors:       new(mocks.MockVendorRepository),
		menu:          new(mocks.MockMenuItemRepository),
		users:         new(mocks.MockUserRepository),
		notifications: new(mocks.MockNotificationRepository),
		stats:         new(mocks.MockStatsRepository),
		publisher:     new(mocks.MockPublisher),
	}

	authSvc := services.NewAuthService(deps.users, testSecret)
	orderSvc := services.NewOrderService(deps.orders, deps.vendors, deps.notifications, deps.publisher)
	catalogSvc := services.NewCatalogService(deps.vendors, deps.menu)
	adminSvc := services.NewAdminService(deps.stats, deps.orders, deps.vendors, deps.menu, deps.users)
	notifSvc := services.NewNotificationService(deps.notifications)

	// Unreachable redis: the rate limiter fails open, caches miss.
	rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", DialTimeout: 10 * time.Millisecond})

	handler := NewHandler(authSvc, orderSvc, catalogSvc, adminSvc, notifSvc, rdb)

	r := gin.New()
	handler.RegisterRoutes(r)
	return r, deps
}

func mintToken(t *testing.T, userID uint64, role domain.Role) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId": userID,
		"role":   string(role),
		"iat":    time.Now().Unix(),
		"exp":    time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(testSecret))
	assert.NoError(t, err)
	return signed
}

func doRequest(r *gin.Engine, method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestLiveCountIsPublic(t *testing.T) {
	r, deps := setupRouter(t)
	deps.orders.On("CountActive", uint64(3)).Return(int64(4), nil)

	w := doRequest(r, http.MethodGet, "/api/orders/vendor/3/live-count", "", "")

	assert.Equal(t, http.StatusOK, w.Code)
	var body map[string]int64
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, int64(4), body["count"])
}

func TestCreateOrderRequiresAuth(t *testing.T) {
	r, _ := setupRouter(t)

	w := doRequest(r, http.MethodPost, "/api/orders", "", `{"vendorId":3,"items":[{"name":"Tea","price":10,"quantity":2}],"totalAmount":20}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doRequest(r, http.MethodPost, "/api/orders", "garbage-token", `{}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateOrderRoundTrip(t *testing.T) {
	r, deps := setupRouter(t)
	token := mintToken(t, 7, domain.RoleStudent)

	deps.vendors.On("FindByID", uint64(3)).Return(&domain.Vendor{ID: 3, Name: "Chai Point", IsActive: true}, nil)
	deps.orders.On("Save", mock.AnythingOfType("*domain.Order")).Return(nil).Run(func(args mock.Arguments) {
		args.Get(0).(*domain.Order).ID = 42
	})
	deps.notifications.On("Create", mock.AnythingOfType("*domain.Notification")).Return(nil)
	deps.publisher.On("Publish", mock.Anything, "order.created", mock.Anything).Return(nil).Maybe()

	w := doRequest(r, http.MethodPost, "/api/orders", token,
		`{"vendorId":3,"items":[{"name":"Tea","price":10,"quantity":2}],"totalAmount":20,"paymentMethod":"cash"}`)

	assert.Equal(t, http.StatusCreated, w.Code)

	var got domain.Order
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, uint64(42), got.ID)
	assert.Equal(t, domain.StatusConfirmed, got.Status)
	assert.Equal(t, []domain.OrderItem{{Name: "Tea", Price: 10, Quantity: 2}}, got.Items)
	assert.Equal(t, int64(20), got.TotalAmount)
	assert.True(t, strings.HasPrefix(got.OrderNumber, "ORD"))
}

func TestGetOrderIncludesQueuePosition(t *testing.T) {
	r, deps := setupRouter(t)
	token := mintToken(t, 7, domain.RoleStudent)

	created := time.Now().Add(-time.Minute)
	order := &domain.Order{
		ID: 42, OrderNumber: "ORD1", UserID: 7, VendorID: 3,
		Status: domain.StatusConfirmed, CreatedAt: created, UpdatedAt: created,
	}
	deps.orders.On("FindByID", uint64(42)).Return(order, nil)
	deps.orders.On("CountActiveBefore", uint64(3), created, uint64(42)).Return(int64(0), nil)

	w := doRequest(r, http.MethodGet, "/api/orders/42", token, "")

	assert.Equal(t, http.StatusOK, w.Code)
	var got struct {
		QueuePosition *int64 `json:"queuePosition"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	if assert.NotNil(t, got.QueuePosition) {
		assert.Equal(t, int64(1), *got.QueuePosition)
	}
}

func TestGetOrderHidesOthersOrders(t *testing.T) {
	r, deps := setupRouter(t)
	token := mintToken(t, 99, domain.RoleStudent)

	order := &domain.Order{ID: 42, UserID: 7, VendorID: 3, Status: domain.StatusCompleted}
	deps.orders.On("FindByID", uint64(42)).Return(order, nil)

	w := doRequest(r, http.MethodGet, "/api/orders/42", token, "")
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestUpdateOrderStatus(t *testing.T) {
	t.Run("students may not update status", func(t *testing.T) {
		r, _ := setupRouter(t)
		token := mintToken(t, 7, domain.RoleStudent)

		w := doRequest(r, http.MethodPut, "/api/orders/42/status", token, `{"status":"preparing"}`)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("illegal transition maps to 400", func(t *testing.T) {
		r, deps := setupRouter(t)
		token := mintToken(t, 8, domain.RoleVendor)

		order := &domain.Order{ID: 42, UserID: 7, VendorID: 3, Status: domain.StatusPending}
		deps.orders.On("FindByID", uint64(42)).Return(order, nil)

		w := doRequest(r, http.MethodPut, "/api/orders/42/status", token, `{"status":"ready"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("missing order maps to 404", func(t *testing.T) {
		r, deps := setupRouter(t)
		token := mintToken(t, 8, domain.RoleVendor)
		deps.orders.On("FindByID", uint64(42)).Return(nil, nil)

		w := doRequest(r, http.MethodPut, "/api/orders/42/status", token, `{"status":"preparing"}`)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("lost race maps to 409", func(t *testing.T) {
		r, deps := setupRouter(t)
		token := mintToken(t, 8, domain.RoleVendor)

		order := &domain.Order{ID: 42, UserID: 7, VendorID: 3, Status: domain.StatusConfirmed}
		deps.orders.On("FindByID", uint64(42)).Return(order, nil)
		deps.orders.On("UpdateStatusIf", uint64(42), domain.StatusConfirmed, domain.StatusPreparing, mock.Anything).Return(false, nil)

		w := doRequest(r, http.MethodPut, "/api/orders/42/status", token, `{"status":"preparing"}`)
		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestAdminRoutesRequireAdminRole(t *testing.T) {
	r, _ := setupRouter(t)

	w := doRequest(r, http.MethodGet, "/api/admin/stats", mintToken(t, 8, domain.RoleVendor), "")
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doRequest(r, http.MethodGet, "/api/admin/stats", "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestVendorListIsPublic(t *testing.T) {
	r, deps := setupRouter(t)
	deps.vendors.On("FindActive").Return([]domain.Vendor{{ID: 3, Name: "Chai Point", IsActive: true}}, nil)

	w := doRequest(r, http.MethodGet, "/api/vendors", "", "")
	assert.Equal(t, http.StatusOK, w.Code)

	var got []domain.Vendor
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Len(t, got, 1)
}
