package repository

import "campuseats/internal/domain"

type MenuItemRepository interface {
	Save(item *domain.MenuItem) error
	FindByID(id uint64) (*domain.MenuItem, error)
	FindAvailableByVendor(vendorID uint64) ([]domain.MenuItem, error)
	Update(item *domain.MenuItem) error
	Delete(id uint64) error
	DeleteByVendor(vendorID uint64) error
}
