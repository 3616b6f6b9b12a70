package domain

import "time"

// OrderItem is a snapshot of a menu item at order time. Prices are
// denormalized on purpose: later menu edits must not change what the
// customer agreed to pay.
type OrderItem struct {
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Quantity int64  `json:"quantity"`
}

type Order struct {
	ID            uint64      `json:"id" gorm:"primaryKey;autoIncrement"`
	OrderNumber   string      `json:"orderNumber" gorm:"uniqueIndex;size:32;not null"`
	UserID        uint64      `json:"userId" gorm:"not null;index"`
	VendorID      uint64      `json:"vendorId" gorm:"not null;index"`
	Items         []OrderItem `json:"items" gorm:"serializer:json"`
	TotalAmount   int64       `json:"totalAmount" gorm:"not null"`
	Status        OrderStatus `json:"status" gorm:"type:enum('pending','confirmed','preparing','ready','completed','cancelled');default:'pending';index"`
	Notes         string      `json:"notes"`
	PaymentMethod string      `json:"paymentMethod"`
	PaymentStatus string      `json:"paymentStatus" gorm:"default:'pending'"`
	EstimatedTime int         `json:"estimatedTime"`
	CreatedAt     time.Time   `json:"createdAt" gorm:"autoCreateTime;index"`
	UpdatedAt     time.Time   `json:"updatedAt" gorm:"autoUpdateTime"`

	// QueuePosition is derived at read time, never stored.
	QueuePosition *int64 `json:"queuePosition,omitempty" gorm:"-"`
}

// DefaultEstimatedTime is the pickup estimate in minutes attached to
// every new order. It is not recomputed as the queue moves.
const DefaultEstimatedTime = 20
