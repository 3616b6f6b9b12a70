package http

import "campuseats/internal/domain"

type RegisterRequest struct {
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	CollegeID string `json:"collegeId" binding:"required"`
	Password  string `json:"password" binding:"required,min=6"`
	Phone     string `json:"phone"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

type CreateOrderRequest struct {
	VendorID      uint64             `json:"vendorId" binding:"required"`
	Items         []OrderItemRequest `json:"items" binding:"required,dive"`
	TotalAmount   int64              `json:"totalAmount" binding:"required,min=0"`
	Notes         string             `json:"notes"`
	PaymentMethod string             `json:"paymentMethod"`
}

type OrderItemRequest struct {
	Name     string `json:"name" binding:"required"`
	Price    int64  `json:"price" binding:"min=0"`
	Quantity int64  `json:"quantity" binding:"required,min=1"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type CreateVendorRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
}

type UpdateVendorRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	ImageURL    *string `json:"imageUrl"`
	IsActive    *bool   `json:"isActive"`
}

type CreateMenuItemRequest struct {
	Name            string `json:"name" binding:"required"`
	Description     string `json:"description"`
	Price           int64  `json:"price" binding:"required,min=0"`
	ImageURL        string `json:"imageUrl"`
	Category        string `json:"category" binding:"required"`
	VendorID        uint64 `json:"vendorId" binding:"required"`
	PreparationTime int    `json:"preparationTime"`
}

type UpdateMenuItemRequest struct {
	Name            *string `json:"name"`
	Description     *string `json:"description"`
	Price           *int64  `json:"price"`
	ImageURL        *string `json:"imageUrl"`
	Category        *string `json:"category"`
	IsAvailable     *bool   `json:"isAvailable"`
	PreparationTime *int    `json:"preparationTime"`
}
