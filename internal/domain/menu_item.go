package domain

import "time"

type MenuItem struct {
	ID              uint64    `json:"id" gorm:"primaryKey;autoIncrement"`
	Name            string    `json:"name" gorm:"not null"`
	Description     string    `json:"description"`
	Price           int64     `json:"price" gorm:"not null"`
	ImageURL        string    `json:"imageUrl"`
	Category        string    `json:"category" gorm:"not null;index"`
	IsAvailable     bool      `json:"isAvailable" gorm:"default:true"`
	VendorID        uint64    `json:"vendorId" gorm:"not null;index"`
	PreparationTime int       `json:"preparationTime" gorm:"default:15"`
	CreatedAt       time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt       time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}
