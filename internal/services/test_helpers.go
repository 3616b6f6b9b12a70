package services

import (
	"time"

	"campuseats/internal/domain"
)

const (
	testUserID   = uint64(7)
	testVendorID = uint64(3)
	testOrderID  = uint64(42)
)

var testTime = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func makeOrder(id uint64, status domain.OrderStatus, createdAt, updatedAt time.Time) *domain.Order {
	return &domain.Order{
		ID:          id,
		OrderNumber: "ORD17000000000001",
		UserID:      testUserID,
		VendorID:    testVendorID,
		Items: []domain.OrderItem{
			{Name: "Tea", Price: 10, Quantity: 2},
		},
		TotalAmount:   20,
		Status:        status,
		PaymentStatus: "pending",
		EstimatedTime: domain.DefaultEstimatedTime,
		CreatedAt:     createdAt,
		UpdatedAt:     updatedAt,
	}
}

func makeVendor(id uint64, active bool) *domain.Vendor {
	return &domain.Vendor{
		ID:       id,
		Name:     "Chai Point",
		IsActive: active,
		UserID:   testUserID,
	}
}
