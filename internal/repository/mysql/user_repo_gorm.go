package mysql

import (
	"errors"
	"log"

	"campuseats/internal/domain"
	"campuseats/internal/repository"

	"gorm.io/gorm"
)

type userRepo struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) Save(user *domain.User) error {
	if err := r.db.Create(user).Error; err != nil {
		log.Printf("user save error: %v", err)
		return err
	}
	return nil
}

func (r *userRepo) FindByID(id uint64) (*domain.User, error) {
	var u domain.User
	if err := r.db.First(&u, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		log.Printf("user FindByID error: %v", err)
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) FindByEmail(email string) (*domain.User, error) {
	var u domain.User
	if err := r.db.Where("email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		log.Printf("user FindByEmail error: %v", err)
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) FindFiltered(filter repository.UserFilter) ([]domain.User, error) {
	q := r.db.Model(&domain.User{})
	if filter.Role != "" {
		q = q.Where("role = ?", filter.Role)
	}
	switch filter.Status {
	case "active":
		q = q.Where("is_active = ?", true)
	case "banned":
		q = q.Where("is_active = ?", false)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		q = q.Where("name LIKE ? OR email LIKE ? OR college_id LIKE ?", like, like, like)
	}
	var out []domain.User
	if err := q.Order("created_at DESC").Find(&out).Error; err != nil {
		log.Printf("user FindFiltered error: %v", err)
		return nil, err
	}
	return out, nil
}

func (r *userRepo) Update(user *domain.User) error {
	if err := r.db.Save(user).Error; err != nil {
		log.Printf("user update error: %v", err)
		return err
	}
	return nil
}

func (r *userRepo) Delete(id uint64) error {
	if err := r.db.Delete(&domain.User{}, id).Error; err != nil {
		log.Printf("user delete error: %v", err)
		return err
	}
	return nil
}
