package domain

import "time"

type Role string

const (
	RoleStudent Role = "student"
	RoleVendor  Role = "vendor"
	RoleAdmin   Role = "admin"
)

type User struct {
	ID            uint64    `json:"id" gorm:"primaryKey;autoIncrement"`
	Name          string    `json:"name" gorm:"not null"`
	Email         string    `json:"email" gorm:"uniqueIndex;size:100;not null"`
	CollegeID     string    `json:"collegeId" gorm:"uniqueIndex;size:50;not null"`
	Password      string    `json:"-" gorm:"not null"`
	Phone         string    `json:"phone"`
	Role          Role      `json:"role" gorm:"type:enum('student','vendor','admin');default:'student'"`
	IsActive      bool      `json:"isActive" gorm:"default:true"`
	WalletBalance int64     `json:"walletBalance" gorm:"default:0"`
	CreatedAt     time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt     time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}
