package domain

import "time"

type Vendor struct {
	ID           uint64    `json:"id" gorm:"primaryKey;autoIncrement"`
	Name         string    `json:"name" gorm:"not null"`
	Description  string    `json:"description"`
	ImageURL     string    `json:"imageUrl"`
	IsActive     bool      `json:"isActive" gorm:"default:true"`
	Rating       float64   `json:"rating" gorm:"default:0"`
	TotalRatings int64     `json:"totalRatings" gorm:"default:0"`
	UserID       uint64    `json:"userId" gorm:"not null;index"`
	CreatedAt    time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt    time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}
