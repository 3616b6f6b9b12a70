package mysql

import (
	"errors"
	"log"

	"campuseats/internal/domain"
	"campuseats/internal/repository"

	"gorm.io/gorm"
)

type menuRepo struct {
	db *gorm.DB
}

func NewMenuItemRepository(db *gorm.DB) repository.MenuItemRepository {
	return &menuRepo{db: db}
}

func (r *menuRepo) Save(item *domain.MenuItem) error {
	if err := r.db.Create(item).Error; err != nil {
		log.Printf("menu item save error: %v", err)
		return err
	}
	return nil
}

func (r *menuRepo) FindByID(id uint64) (*domain.MenuItem, error) {
	var m domain.MenuItem
	if err := r.db.First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		log.Printf("menu item FindByID error: %v", err)
		return nil, err
	}
	return &m, nil
}

func (r *menuRepo) FindAvailableByVendor(vendorID uint64) ([]domain.MenuItem, error) {
	var out []domain.MenuItem
	err := r.db.Where("vendor_id = ? AND is_available = ?", vendorID, true).Find(&out).Error
	if err != nil {
		log.Printf("menu item FindAvailableByVendor error: %v", err)
		return nil, err
	}
	return out, nil
}

func (r *menuRepo) Update(item *domain.MenuItem) error {
	if err := r.db.Save(item).Error; err != nil {
		log.Printf("menu item update error: %v", err)
		return err
	}
	return nil
}

func (r *menuRepo) Delete(id uint64) error {
	if err := r.db.Delete(&domain.MenuItem{}, id).Error; err != nil {
		log.Printf("menu item delete error: %v", err)
		return err
	}
	return nil
}

func (r *menuRepo) DeleteByVendor(vendorID uint64) error {
	if err := r.db.Where("vendor_id = ?", vendorID).Delete(&domain.MenuItem{}).Error; err != nil {
		log.Printf("menu item DeleteByVendor error: %v", err)
		return err
	}
	return nil
}
