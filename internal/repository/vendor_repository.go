package repository

import "campuseats/internal/domain"

// VendorFilter narrows admin vendor listings. Status is "active",
// "inactive" or empty; Search matches name/description case-insensitively.
type VendorFilter struct {
	Status string
	Search string
}

type VendorRepository interface {
	Save(vendor *domain.Vendor) error
	FindByID(id uint64) (*domain.Vendor, error)
	FindActive() ([]domain.Vendor, error)
	FindFiltered(filter VendorFilter) ([]domain.Vendor, error)
	Update(vendor *domain.Vendor) error
	Delete(id uint64) error
}
