package domain

import (
	"fmt"
	"time"
)

type NotificationType string

const (
	NotificationOrderConfirmed NotificationType = "order_confirmed"
	NotificationOrderPreparing NotificationType = "order_preparing"
	NotificationOrderReady     NotificationType = "order_ready"
	NotificationOrderCompleted NotificationType = "order_completed"
)

// Notification is append-only; IsRead is the only field ever mutated
// after creation.
type Notification struct {
	ID        uint64           `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID    uint64           `json:"userId" gorm:"not null;index"`
	Title     string           `json:"title" gorm:"not null"`
	Message   string           `json:"message" gorm:"not null"`
	Type      NotificationType `json:"type" gorm:"size:32;not null"`
	OrderID   *uint64          `json:"orderId,omitempty"`
	IsRead    bool             `json:"isRead" gorm:"default:false"`
	CreatedAt time.Time        `json:"createdAt" gorm:"autoCreateTime"`
}

// StatusNotification builds the customer-facing notification for an
// order entering the given status. The second return is false for
// statuses that carry no notification (pending, cancelled, anything
// unrecognized).
func StatusNotification(order *Order, status OrderStatus) (*Notification, bool) {
	var title, message string
	var typ NotificationType

	switch status {
	case StatusConfirmed:
		title = "Order Update"
		message = fmt.Sprintf("Your order #%s has been confirmed", order.OrderNumber)
		typ = NotificationOrderConfirmed
	case StatusPreparing:
		title = "Order Update"
		message = fmt.Sprintf("Your order #%s is being prepared", order.OrderNumber)
		typ = NotificationOrderPreparing
	case StatusReady:
		title = "Order Ready!"
		message = fmt.Sprintf("Your order #%s is ready for pickup!", order.OrderNumber)
		typ = NotificationOrderReady
	case StatusCompleted:
		title = "Order Update"
		message = fmt.Sprintf("Your order #%s has been completed", order.OrderNumber)
		typ = NotificationOrderCompleted
	default:
		return nil, false
	}

	orderID := order.ID
	return &Notification{
		UserID:  order.UserID,
		Title:   title,
		Message: message,
		Type:    typ,
		OrderID: &orderID,
	}, true
}
