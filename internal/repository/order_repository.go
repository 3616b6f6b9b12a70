package repository

import (
	"time"

	"campuseats/internal/domain"
)

// OrderFilter narrows admin order listings. Zero values mean "no filter".
type OrderFilter struct {
	Status    domain.OrderStatus
	VendorID  uint64
	UserID    uint64
	StartDate time.Time
	EndDate   time.Time
}

type OrderRepository interface {
	Save(order *domain.Order) error
	FindByID(id uint64) (*domain.Order, error)
	FindByUser(userID uint64) ([]domain.Order, error)
	FindByVendor(vendorID uint64, status domain.OrderStatus) ([]domain.Order, error)
	FindFiltered(filter OrderFilter) ([]domain.Order, error)

	// CountActiveBefore counts same-vendor active orders strictly ahead
	// of the given (createdAt, id) pair. Queue position is this plus one.
	CountActiveBefore(vendorID uint64, createdAt time.Time, id uint64) (int64, error)
	CountActive(vendorID uint64) (int64, error)

	// FindDue returns orders in the rule's From status whose age (from
	// CreatedAt, or UpdatedAt when the rule says so) is past the cutoff.
	FindDue(rule domain.AutoRule, cutoff time.Time) ([]domain.Order, error)

	// UpdateStatusIf applies status=to only when the current status is
	// still from, and reports whether the write matched. Callers gate
	// notifications and events on the result.
	UpdateStatusIf(id uint64, from, to domain.OrderStatus, now time.Time) (bool, error)

	// ForceCompleteOlderThan bulk-completes every non-terminal order
	// created before the cutoff and returns the number touched.
	ForceCompleteOlderThan(cutoff time.Time) (int64, error)
}
