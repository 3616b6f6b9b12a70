package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"campuseats/internal/domain"
	rabbit "campuseats/internal/infra/rabbitmq"
	"campuseats/internal/repository"

	"github.com/go-redis/redis/v8"
)

var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrVendorNotFound    = errors.New("vendor not found")
	ErrEmptyOrder        = errors.New("order must contain at least one item")
	ErrInvalidItem       = errors.New("order item needs a name and a positive quantity")
	ErrInvalidStatus     = errors.New("unknown order status")
	ErrIllegalTransition = errors.New("illegal status transition")
	ErrStatusConflict    = errors.New("order status changed concurrently")
)

const liveCountTTL = 5 * time.Second

type CreateOrderInput struct {
	VendorID      uint64
	Items         []domain.OrderItem
	TotalAmount   int64
	Notes         string
	PaymentMethod string
}

type OrderService struct {
	orders        repository.OrderRepository
	vendors       repository.VendorRepository
	notifications repository.NotificationRepository
	publisher     rabbit.PublisherInterface
	redisClient   *redis.Client
	now           func() time.Time
}

func NewOrderService(
	orders repository.OrderRepository,
	vendors repository.VendorRepository,
	notifications repository.NotificationRepository,
	publisher rabbit.PublisherInterface,
) *OrderService {
	return &OrderService{
		orders:        orders,
		vendors:       vendors,
		notifications: notifications,
		publisher:     publisher,
		now:           time.Now,
	}
}

func (u *OrderService) SetRedisClient(client *redis.Client) {
	u.redisClient = client
}

// CreateOrder stores the order with the items and total exactly as the
// client sent them; prices are not re-checked against the live menu.
// Orders are auto-confirmed on creation, so they enter the vendor queue
// immediately.
func (u *OrderService) CreateOrder(ctx context.Context, userID uint64, input CreateOrderInput) (*domain.Order, error) {
	if len(input.Items) == 0 {
		return nil, ErrEmptyOrder
	}
	for _, item := range input.Items {
		if item.Name == "" || item.Quantity <= 0 {
			return nil, ErrInvalidItem
		}
	}

	vendor, err := u.vendors.FindByID(input.VendorID)
	if err != nil {
		return nil, err
	}
	if vendor == nil || !vendor.IsActive {
		return nil, ErrVendorNotFound
	}

	now := u.now()
	order := &domain.Order{
		OrderNumber:   generateOrderNumber(now),
		UserID:        userID,
		VendorID:      input.VendorID,
		Items:         input.Items,
		TotalAmount:   input.TotalAmount,
		Status:        domain.StatusConfirmed,
		Notes:         input.Notes,
		PaymentMethod: input.PaymentMethod,
		PaymentStatus: "pending",
		EstimatedTime: domain.DefaultEstimatedTime,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := u.orders.Save(order); err != nil {
		return nil, err
	}

	orderID := order.ID
	notif := &domain.Notification{
		UserID:  userID,
		Title:   "Order Confirmed",
		Message: fmt.Sprintf("Your order #%s has been confirmed automatically", order.OrderNumber),
		Type:    domain.NotificationOrderConfirmed,
		OrderID: &orderID,
	}
	if err := u.notifications.Create(notif); err != nil {
		log.Printf("order %s created but notification failed: %v", order.OrderNumber, err)
	}

	go u.publishOrderCreated(context.Background(), order)

	return order, nil
}

func (u *OrderService) publishOrderCreated(ctx context.Context, order *domain.Order) {
	evt := domain.OrderCreatedEvent{
		OrderID:     order.ID,
		OrderNumber: order.OrderNumber,
		UserID:      order.UserID,
		VendorID:    order.VendorID,
		TotalAmount: order.TotalAmount,
		Status:      order.Status,
		CreatedAt:   order.CreatedAt,
	}

	if err := u.publisher.Publish(ctx, "order.created", evt); err != nil {
		log.Printf("failed to publish order.created for %s: %v", order.OrderNumber, err)
	}
}

// GetOrder fetches one order and derives its queue position: 1 + the
// number of same-vendor active orders created strictly earlier. Orders
// outside the active set carry no position.
func (u *OrderService) GetOrder(ctx context.Context, id uint64) (*domain.Order, error) {
	o, err := u.orders.FindByID(id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, ErrOrderNotFound
	}

	if o.Status.IsActive() {
		ahead, err := u.orders.CountActiveBefore(o.VendorID, o.CreatedAt, o.ID)
		if err != nil {
			return nil, err
		}
		position := ahead + 1
		o.QueuePosition = &position
	}

	return o, nil
}

func (u *OrderService) ListUserOrders(ctx context.Context, userID uint64) ([]domain.Order, error) {
	return u.orders.FindByUser(userID)
}

func (u *OrderService) ListVendorOrders(ctx context.Context, vendorID uint64, status domain.OrderStatus) ([]domain.Order, error) {
	if status != "" && !status.Valid() {
		return nil, ErrInvalidStatus
	}
	return u.orders.FindByVendor(vendorID, status)
}

// UpdateStatus applies a vendor-initiated transition. The target must be
// legal from the order's current status, and the write is conditional on
// that status still holding; the notification and event are emitted only
// when the conditional write matched, so a racing sweep can never cause
// a duplicate notification or roll the order backwards.
func (u *OrderService) UpdateStatus(ctx context.Context, id uint64, target domain.OrderStatus) (*domain.Order, error) {
	if !target.Valid() {
		return nil, ErrInvalidStatus
	}

	o, err := u.orders.FindByID(id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, ErrOrderNotFound
	}

	if !domain.CanTransition(o.Status, target) {
		return nil, ErrIllegalTransition
	}

	now := u.now()
	matched, err := u.orders.UpdateStatusIf(id, o.Status, target, now)
	if err != nil {
		return nil, err
	}
	if !matched {
		return nil, ErrStatusConflict
	}

	from := o.Status
	o.Status = target
	o.UpdatedAt = now

	if notif, ok := domain.StatusNotification(o, target); ok {
		if err := u.notifications.Create(notif); err != nil {
			log.Printf("status update for %s applied but notification failed: %v", o.OrderNumber, err)
		}
	}

	go u.publishStatusChanged(context.Background(), o, from, target, now)

	return o, nil
}

func (u *OrderService) publishStatusChanged(ctx context.Context, order *domain.Order, from, to domain.OrderStatus, at time.Time) {
	evt := domain.OrderStatusChangedEvent{
		OrderID:     order.ID,
		OrderNumber: order.OrderNumber,
		VendorID:    order.VendorID,
		From:        from,
		To:          to,
		ChangedAt:   at,
	}

	if err := u.publisher.Publish(ctx, "order.status_changed", evt); err != nil {
		log.Printf("failed to publish order.status_changed for %s: %v", order.OrderNumber, err)
	}
}

// LiveCount returns the number of active orders for a vendor. The count
// backs a public polling endpoint, so it is cached for a few seconds.
func (u *OrderService) LiveCount(ctx context.Context, vendorID uint64) (int64, error) {
	cacheKey := "orders:live-count:" + strconv.FormatUint(vendorID, 10)

	if u.redisClient != nil {
		cached, err := u.redisClient.Get(ctx, cacheKey).Result()
		if err == nil {
			if n, err := strconv.ParseInt(cached, 10, 64); err == nil {
				return n, nil
			}
		}
	}

	n, err := u.orders.CountActive(vendorID)
	if err != nil {
		return 0, err
	}

	if u.redisClient != nil {
		u.redisClient.Set(ctx, cacheKey, strconv.FormatInt(n, 10), liveCountTTL)
	}

	return n, nil
}
