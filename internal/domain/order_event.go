package domain

import "time"

type OrderCreatedEvent struct {
	OrderID     uint64      `json:"orderId"`
	OrderNumber string      `json:"orderNumber"`
	UserID      uint64      `json:"userId"`
	VendorID    uint64      `json:"vendorId"`
	TotalAmount int64       `json:"totalAmount"`
	Status      OrderStatus `json:"status"`
	CreatedAt   time.Time   `json:"createdAt"`
}

type OrderStatusChangedEvent struct {
	OrderID     uint64      `json:"orderId"`
	OrderNumber string      `json:"orderNumber"`
	VendorID    uint64      `json:"vendorId"`
	From        OrderStatus `json:"from"`
	To          OrderStatus `json:"to"`
	ChangedAt   time.Time   `json:"changedAt"`
}
