package mysql

import (
	"errors"
	"log"

	"campuseats/internal/domain"
	"campuseats/internal/repository"

	"gorm.io/gorm"
)

type vendorRepo struct {
	db *gorm.DB
}

func NewVendorRepository(db *gorm.DB) repository.VendorRepository {
	return &vendorRepo{db: db}
}

func (r *vendorRepo) Save(vendor *domain.Vendor) error {
	if err := r.db.Create(vendor).Error; err != nil {
		log.Printf("vendor save error: %v", err)
		return err
	}
	return nil
}

func (r *vendorRepo) FindByID(id uint64) (*domain.Vendor, error) {
	var v domain.Vendor
	if err := r.db.First(&v, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		log.Printf("vendor FindByID error: %v", err)
		return nil, err
	}
	return &v, nil
}

func (r *vendorRepo) FindActive() ([]domain.Vendor, error) {
	var out []domain.Vendor
	if err := r.db.Where("is_active = ?", true).Find(&out).Error; err != nil {
		log.Printf("vendor FindActive error: %v", err)
		return nil, err
	}
	return out, nil
}

func (r *vendorRepo) FindFiltered(filter repository.VendorFilter) ([]domain.Vendor, error) {
	q := r.db.Model(&domain.Vendor{})
	switch filter.Status {
	case "active":
		q = q.Where("is_active = ?", true)
	case "inactive":
		q = q.Where("is_active = ?", false)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		q = q.Where("name LIKE ? OR description LIKE ?", like, like)
	}
	var out []domain.Vendor
	if err := q.Order("created_at DESC").Find(&out).Error; err != nil {
		log.Printf("vendor FindFiltered error: %v", err)
		return nil, err
	}
	return out, nil
}

func (r *vendorRepo) Update(vendor *domain.Vendor) error {
	if err := r.db.Save(vendor).Error; err != nil {
		log.Printf("vendor update error: %v", err)
		return err
	}
	return nil
}

func (r *vendorRepo) Delete(id uint64) error {
	if err := r.db.Delete(&domain.Vendor{}, id).Error; err != nil {
		log.Printf("vendor delete error: %v", err)
		return err
	}
	return nil
}
