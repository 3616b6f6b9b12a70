package repository

import "campuseats/internal/domain"

// UserFilter narrows admin user listings. Status is "active", "banned"
// or empty; Search matches name/email/collegeId.
type UserFilter struct {
	Role   domain.Role
	Status string
	Search string
}

type UserRepository interface {
	Save(user *domain.User) error
	FindByID(id uint64) (*domain.User, error)
	FindByEmail(email string) (*domain.User, error)
	FindFiltered(filter UserFilter) ([]domain.User, error)
	Update(user *domain.User) error
	Delete(id uint64) error
}
