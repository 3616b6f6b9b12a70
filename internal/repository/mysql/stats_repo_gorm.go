package mysql

import (
	"log"
	"time"

	"campuseats/internal/domain"
	"campuseats/internal/repository"

	"gorm.io/gorm"
)

type statsRepo struct {
	db *gorm.DB
}

func NewStatsRepository(db *gorm.DB) repository.StatsRepository {
	return &statsRepo{db: db}
}

func (r *statsRepo) CountVendors(activeOnly bool) (int64, error) {
	q := r.db.Model(&domain.Vendor{})
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	var n int64
	if err := q.Count(&n).Error; err != nil {
		log.Printf("stats CountVendors error: %v", err)
		return 0, err
	}
	return n, nil
}

func (r *statsRepo) CountUsers() (int64, error) {
	var n int64
	if err := r.db.Model(&domain.User{}).Count(&n).Error; err != nil {
		log.Printf("stats CountUsers error: %v", err)
		return 0, err
	}
	return n, nil
}

func (r *statsRepo) CountOrders() (int64, error) {
	var n int64
	if err := r.db.Model(&domain.Order{}).Count(&n).Error; err != nil {
		log.Printf("stats CountOrders error: %v", err)
		return 0, err
	}
	return n, nil
}

func (r *statsRepo) CountOrdersSince(t time.Time) (int64, error) {
	var n int64
	err := r.db.Model(&domain.Order{}).Where("created_at >= ?", t).Count(&n).Error
	if err != nil {
		log.Printf("stats CountOrdersSince error: %v", err)
		return 0, err
	}
	return n, nil
}

func (r *statsRepo) CompletedRevenue() (int64, error) {
	var total int64
	err := r.db.Model(&domain.Order{}).
		Where("status = ?", domain.StatusCompleted).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&total).Error
	if err != nil {
		log.Printf("stats CompletedRevenue error: %v", err)
		return 0, err
	}
	return total, nil
}

func (r *statsRepo) RecentOrders(limit int) ([]domain.Order, error) {
	var out []domain.Order
	err := r.db.Order("created_at DESC").Limit(limit).Find(&out).Error
	if err != nil {
		log.Printf("stats RecentOrders error: %v", err)
		return nil, err
	}
	return out, nil
}

func (r *statsRepo) OrdersPerDay(since time.Time) ([]repository.DayCount, error) {
	var out []repository.DayCount
	err := r.db.Model(&domain.Order{}).
		Select("DATE_FORMAT(created_at, '%Y-%m-%d') AS date, COUNT(*) AS orders").
		Where("created_at >= ?", since).
		Group("DATE_FORMAT(created_at, '%Y-%m-%d')").
		Order("date").
		Scan(&out).Error
	if err != nil {
		log.Printf("stats OrdersPerDay error: %v", err)
		return nil, err
	}
	return out, nil
}

func (r *statsRepo) RevenuePerDay(since time.Time) ([]repository.DayRevenue, error) {
	var out []repository.DayRevenue
	err := r.db.Model(&domain.Order{}).
		Select("DATE_FORMAT(created_at, '%Y-%m-%d') AS date, COALESCE(SUM(total_amount), 0) AS revenue").
		Where("created_at >= ? AND status = ?", since, domain.StatusCompleted).
		Group("DATE_FORMAT(created_at, '%Y-%m-%d')").
		Order("date").
		Scan(&out).Error
	if err != nil {
		log.Printf("stats RevenuePerDay error: %v", err)
		return nil, err
	}
	return out, nil
}

func (r *statsRepo) TopVendors(limit int) ([]repository.VendorRank, error) {
	var out []repository.VendorRank
	err := r.db.Model(&domain.Order{}).
		Select("orders.vendor_id AS vendor_id, vendors.name AS name, COUNT(*) AS total_orders, COALESCE(SUM(orders.total_amount), 0) AS total_revenue").
		Joins("JOIN vendors ON vendors.id = orders.vendor_id").
		Where("orders.status = ?", domain.StatusCompleted).
		Group("orders.vendor_id, vendors.name").
		Order("total_orders DESC").
		Limit(limit).
		Scan(&out).Error
	if err != nil {
		log.Printf("stats TopVendors error: %v", err)
		return nil, err
	}
	return out, nil
}
