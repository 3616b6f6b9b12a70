package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name  string
		from  OrderStatus
		to    OrderStatus
		legal bool
	}{
		{"pending to confirmed", StatusPending, StatusConfirmed, true},
		{"pending to cancelled", StatusPending, StatusCancelled, true},
		{"confirmed to preparing", StatusConfirmed, StatusPreparing, true},
		{"preparing to ready", StatusPreparing, StatusReady, true},
		{"ready to completed", StatusReady, StatusCompleted, true},

		{"pending to ready skips steps", StatusPending, StatusReady, false},
		{"pending to preparing skips steps", StatusPending, StatusPreparing, false},
		{"confirmed to cancelled", StatusConfirmed, StatusCancelled, false},
		{"preparing to cancelled", StatusPreparing, StatusCancelled, false},
		{"confirmed to completed skips steps", StatusConfirmed, StatusCompleted, false},
		{"ready to preparing goes backwards", StatusReady, StatusPreparing, false},
		{"completed is terminal", StatusCompleted, StatusReady, false},
		{"completed cannot restart", StatusCompleted, StatusConfirmed, false},
		{"cancelled is terminal", StatusCancelled, StatusConfirmed, false},
		{"same status is not a transition", StatusPreparing, StatusPreparing, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.legal, CanTransition(tt.from, tt.to))
		})
	}
}

func TestStatusPredicates(t *testing.T) {
	assert.True(t, StatusConfirmed.IsActive())
	assert.True(t, StatusPreparing.IsActive())
	assert.True(t, StatusReady.IsActive())
	assert.False(t, StatusPending.IsActive())
	assert.False(t, StatusCompleted.IsActive())
	assert.False(t, StatusCancelled.IsActive())

	assert.True(t, StatusCompleted.IsTerminal())
	assert.True(t, StatusCancelled.IsTerminal())
	assert.False(t, StatusReady.IsTerminal())

	assert.True(t, StatusPending.Valid())
	assert.False(t, OrderStatus("flying").Valid())
	assert.False(t, OrderStatus("").Valid())
}

func TestAutoRules(t *testing.T) {
	assert.Len(t, AutoRules, 3)

	byFrom := map[OrderStatus]AutoRule{}
	for _, rule := range AutoRules {
		byFrom[rule.From] = rule
	}

	confirmed := byFrom[StatusConfirmed]
	assert.Equal(t, StatusPreparing, confirmed.To)
	assert.Equal(t, 15*time.Second, confirmed.After)
	assert.False(t, confirmed.SinceUpdate)
	assert.Equal(t, NotificationOrderPreparing, confirmed.Notification)

	preparing := byFrom[StatusPreparing]
	assert.Equal(t, StatusReady, preparing.To)
	assert.Equal(t, 5*time.Minute, preparing.After)
	assert.False(t, preparing.SinceUpdate)
	assert.Equal(t, NotificationOrderReady, preparing.Notification)

	// The ready timer runs from when the order entered ready, not from
	// creation, and completes silently.
	ready := byFrom[StatusReady]
	assert.Equal(t, StatusCompleted, ready.To)
	assert.Equal(t, 15*time.Second, ready.After)
	assert.True(t, ready.SinceUpdate)
	assert.Empty(t, ready.Notification)

	// Every auto rule must also be a legal manual transition.
	for _, rule := range AutoRules {
		assert.True(t, CanTransition(rule.From, rule.To), "auto rule %s -> %s not in manual table", rule.From, rule.To)
	}
}

func TestStatusNotification(t *testing.T) {
	order := &Order{ID: 42, UserID: 7, OrderNumber: "ORD17000000000001"}

	tests := []struct {
		status  OrderStatus
		want    NotificationType
		message string
	}{
		{StatusConfirmed, NotificationOrderConfirmed, "Your order #ORD17000000000001 has been confirmed"},
		{StatusPreparing, NotificationOrderPreparing, "Your order #ORD17000000000001 is being prepared"},
		{StatusReady, NotificationOrderReady, "Your order #ORD17000000000001 is ready for pickup!"},
		{StatusCompleted, NotificationOrderCompleted, "Your order #ORD17000000000001 has been completed"},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			notif, ok := StatusNotification(order, tt.status)
			assert.True(t, ok)
			assert.Equal(t, tt.want, notif.Type)
			assert.Equal(t, tt.message, notif.Message)
			assert.Equal(t, order.UserID, notif.UserID)
			if assert.NotNil(t, notif.OrderID) {
				assert.Equal(t, order.ID, *notif.OrderID)
			}
		})
	}

	for _, status := range []OrderStatus{StatusPending, StatusCancelled, OrderStatus("flying")} {
		notif, ok := StatusNotification(order, status)
		assert.False(t, ok, "status %s should carry no notification", status)
		assert.Nil(t, notif)
	}
}
