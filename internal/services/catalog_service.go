package services

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"campuseats/internal/domain"
	"campuseats/internal/repository"

	"github.com/go-redis/redis/v8"
)

var ErrMenuItemNotFound = errors.New("menu item not found")

const menuCacheTTL = time.Minute

type VendorUpdate struct {
	Name        *string
	Description *string
	ImageURL    *string
	IsActive    *bool
}

type MenuItemUpdate struct {
	Name            *string
	Description     *string
	Price           *int64
	ImageURL        *string
	Category        *string
	IsAvailable     *bool
	PreparationTime *int
}

// CatalogService covers the vendor and menu surface. Menu reads go
// through a per-vendor redis cache that every menu mutation invalidates.
type CatalogService struct {
	vendors     repository.VendorRepository
	menu        repository.MenuItemRepository
	redisClient *redis.Client
}

func NewCatalogService(vendors repository.VendorRepository, menu repository.MenuItemRepository) *CatalogService {
	return &CatalogService{vendors: vendors, menu: menu}
}

func (s *CatalogService) SetRedisClient(client *redis.Client) {
	s.redisClient = client
}

func (s *CatalogService) ListVendors(ctx context.Context) ([]domain.Vendor, error) {
	return s.vendors.FindActive()
}

func (s *CatalogService) GetVendor(ctx context.Context, id uint64) (*domain.Vendor, error) {
	v, err := s.vendors.FindByID(id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, ErrVendorNotFound
	}
	return v, nil
}

func (s *CatalogService) CreateVendor(ctx context.Context, userID uint64, name, description, imageURL string) (*domain.Vendor, error) {
	vendor := &domain.Vendor{
		Name:        name,
		Description: description,
		ImageURL:    imageURL,
		IsActive:    true,
		UserID:      userID,
	}
	if err := s.vendors.Save(vendor); err != nil {
		return nil, err
	}
	return vendor, nil
}

func (s *CatalogService) UpdateVendor(ctx context.Context, id uint64, update VendorUpdate) (*domain.Vendor, error) {
	vendor, err := s.vendors.FindByID(id)
	if err != nil {
		return nil, err
	}
	if vendor == nil {
		return nil, ErrVendorNotFound
	}

	if update.Name != nil {
		vendor.Name = *update.Name
	}
	if update.Description != nil {
		vendor.Description = *update.Description
	}
	if update.ImageURL != nil {
		vendor.ImageURL = *update.ImageURL
	}
	if update.IsActive != nil {
		vendor.IsActive = *update.IsActive
	}

	if err := s.vendors.Update(vendor); err != nil {
		return nil, err
	}
	return vendor, nil
}

// GetMenu returns a vendor's available items, served from cache when
// fresh.
func (s *CatalogService) GetMenu(ctx context.Context, vendorID uint64) ([]domain.MenuItem, error) {
	cacheKey := menuCacheKey(vendorID)

	if s.redisClient != nil {
		cached, err := s.redisClient.Get(ctx, cacheKey).Result()
		if err == nil {
			var items []domain.MenuItem
			if err := json.Unmarshal([]byte(cached), &items); err == nil {
				return items, nil
			}
		}
	}

	items, err := s.menu.FindAvailableByVendor(vendorID)
	if err != nil {
		return nil, err
	}

	if s.redisClient != nil {
		if data, err := json.Marshal(items); err == nil {
			s.redisClient.Set(ctx, cacheKey, data, menuCacheTTL)
		}
	}

	return items, nil
}

func (s *CatalogService) CreateMenuItem(ctx context.Context, item *domain.MenuItem) error {
	vendor, err := s.vendors.FindByID(item.VendorID)
	if err != nil {
		return err
	}
	if vendor == nil {
		return ErrVendorNotFound
	}

	if err := s.menu.Save(item); err != nil {
		return err
	}
	s.invalidateMenu(ctx, item.VendorID)
	return nil
}

func (s *CatalogService) UpdateMenuItem(ctx context.Context, id uint64, update MenuItemUpdate) (*domain.MenuItem, error) {
	item, err := s.menu.FindByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrMenuItemNotFound
	}

	if update.Name != nil {
		item.Name = *update.Name
	}
	if update.Description != nil {
		item.Description = *update.Description
	}
	if update.Price != nil {
		item.Price = *update.Price
	}
	if update.ImageURL != nil {
		item.ImageURL = *update.ImageURL
	}
	if update.Category != nil {
		item.Category = *update.Category
	}
	if update.IsAvailable != nil {
		item.IsAvailable = *update.IsAvailable
	}
	if update.PreparationTime != nil {
		item.PreparationTime = *update.PreparationTime
	}

	if err := s.menu.Update(item); err != nil {
		return nil, err
	}
	s.invalidateMenu(ctx, item.VendorID)
	return item, nil
}

func (s *CatalogService) DeleteMenuItem(ctx context.Context, id uint64) error {
	item, err := s.menu.FindByID(id)
	if err != nil {
		return err
	}
	if item == nil {
		return ErrMenuItemNotFound
	}

	if err := s.menu.Delete(id); err != nil {
		return err
	}
	s.invalidateMenu(ctx, item.VendorID)
	return nil
}

func (s *CatalogService) invalidateMenu(ctx context.Context, vendorID uint64) {
	if s.redisClient != nil {
		s.redisClient.Del(ctx, menuCacheKey(vendorID))
	}
}

func menuCacheKey(vendorID uint64) string {
	return "menu:vendor:" + strconv.FormatUint(vendorID, 10)
}
