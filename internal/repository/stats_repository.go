package repository

import (
	"time"

	"campuseats/internal/domain"
)

type DayCount struct {
	Date   string `json:"date"`
	Orders int64  `json:"orders"`
}

type DayRevenue struct {
	Date    string `json:"date"`
	Revenue int64  `json:"revenue"`
}

type VendorRank struct {
	VendorID     uint64 `json:"vendorId"`
	Name         string `json:"name"`
	TotalOrders  int64  `json:"totalOrders"`
	TotalRevenue int64  `json:"totalRevenue"`
}

// StatsRepository serves the admin dashboard aggregations.
type StatsRepository interface {
	CountVendors(activeOnly bool) (int64, error)
	CountUsers() (int64, error)
	CountOrders() (int64, error)
	CountOrdersSince(t time.Time) (int64, error)
	CompletedRevenue() (int64, error)
	RecentOrders(limit int) ([]domain.Order, error)
	OrdersPerDay(since time.Time) ([]DayCount, error)
	RevenuePerDay(since time.Time) ([]DayRevenue, error)
	TopVendors(limit int) ([]VendorRank, error)
}
