package mysql

import (
	"errors"
	"log"
	"time"

	"campuseats/internal/domain"
	"campuseats/internal/repository"

	"gorm.io/gorm"
)

type orderRepo struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepo{db: db}
}

func (r *orderRepo) Save(order *domain.Order) error {
	result := r.db.Create(order)
	if result.Error != nil {
		log.Printf("order save error: %v", result.Error)
		return result.Error
	}
	if order.ID == 0 {
		return errors.New("failed to assign order ID")
	}
	return nil
}

func (r *orderRepo) FindByID(id uint64) (*domain.Order, error) {
	var o domain.Order
	if err := r.db.First(&o, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		log.Printf("order FindByID error: %v", err)
		return nil, err
	}
	return &o, nil
}

func (r *orderRepo) FindByUser(userID uint64) ([]domain.Order, error) {
	var out []domain.Order
	if err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&out).Error; err != nil {
		log.Printf("order FindByUser error: %v", err)
		return nil, err
	}
	return out, nil
}

func (r *orderRepo) FindByVendor(vendorID uint64, status domain.OrderStatus) ([]domain.Order, error) {
	q := r.db.Where("vendor_id = ?", vendorID)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var out []domain.Order
	if err := q.Order("created_at DESC").Find(&out).Error; err != nil {
		log.Printf("order FindByVendor error: %v", err)
		return nil, err
	}
	return out, nil
}

func (r *orderRepo) FindFiltered(filter repository.OrderFilter) ([]domain.Order, error) {
	q := r.db.Model(&domain.Order{})
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.VendorID != 0 {
		q = q.Where("vendor_id = ?", filter.VendorID)
	}
	if filter.UserID != 0 {
		q = q.Where("user_id = ?", filter.UserID)
	}
	if !filter.StartDate.IsZero() {
		q = q.Where("created_at >= ?", filter.StartDate)
	}
	if !filter.EndDate.IsZero() {
		q = q.Where("created_at <= ?", filter.EndDate)
	}
	var out []domain.Order
	if err := q.Order("created_at DESC").Find(&out).Error; err != nil {
		log.Printf("order FindFiltered error: %v", err)
		return nil, err
	}
	return out, nil
}

// Ties on created_at rank by insertion id, so positions are stable.
func (r *orderRepo) CountActiveBefore(vendorID uint64, createdAt time.Time, id uint64) (int64, error) {
	var n int64
	err := r.db.Model(&domain.Order{}).
		Where("vendor_id = ? AND status IN ?", vendorID, domain.ActiveStatuses).
		Where("created_at < ? OR (created_at = ? AND id < ?)", createdAt, createdAt, id).
		Count(&n).Error
	if err != nil {
		log.Printf("order CountActiveBefore error: %v", err)
		return 0, err
	}
	return n, nil
}

func (r *orderRepo) CountActive(vendorID uint64) (int64, error) {
	var n int64
	err := r.db.Model(&domain.Order{}).
		Where("vendor_id = ? AND status IN ?", vendorID, domain.ActiveStatuses).
		Count(&n).Error
	if err != nil {
		log.Printf("order CountActive error: %v", err)
		return 0, err
	}
	return n, nil
}

func (r *orderRepo) FindDue(rule domain.AutoRule, cutoff time.Time) ([]domain.Order, error) {
	ageColumn := "created_at"
	if rule.SinceUpdate {
		ageColumn = "updated_at"
	}
	var out []domain.Order
	err := r.db.Where("status = ?", rule.From).
		Where(ageColumn+" < ?", cutoff).
		Find(&out).Error
	if err != nil {
		log.Printf("order FindDue error: %v", err)
		return nil, err
	}
	return out, nil
}

func (r *orderRepo) UpdateStatusIf(id uint64, from, to domain.OrderStatus, now time.Time) (bool, error) {
	result := r.db.Model(&domain.Order{}).
		Where("id = ? AND status = ?", id, from).
		Updates(map[string]any{"status": to, "updated_at": now})
	if result.Error != nil {
		log.Printf("order UpdateStatusIf error: %v", result.Error)
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

func (r *orderRepo) ForceCompleteOlderThan(cutoff time.Time) (int64, error) {
	result := r.db.Model(&domain.Order{}).
		Where("created_at < ? AND status NOT IN ?", cutoff, domain.TerminalStatuses).
		Update("status", domain.StatusCompleted)
	if result.Error != nil {
		log.Printf("order ForceCompleteOlderThan error: %v", result.Error)
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
