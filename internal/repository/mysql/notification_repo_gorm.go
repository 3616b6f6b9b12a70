package mysql

import (
	"errors"
	"log"

	"campuseats/internal/domain"
	"campuseats/internal/repository"

	"gorm.io/gorm"
)

type notificationRepo struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) repository.NotificationRepository {
	return &notificationRepo{db: db}
}

func (r *notificationRepo) Create(notification *domain.Notification) error {
	if err := r.db.Create(notification).Error; err != nil {
		log.Printf("notification create error: %v", err)
		return err
	}
	return nil
}

func (r *notificationRepo) FindByUser(userID uint64) ([]domain.Notification, error) {
	var out []domain.Notification
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&out).Error
	if err != nil {
		log.Printf("notification FindByUser error: %v", err)
		return nil, err
	}
	return out, nil
}

func (r *notificationRepo) FindByID(id uint64) (*domain.Notification, error) {
	var n domain.Notification
	if err := r.db.First(&n, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		log.Printf("notification FindByID error: %v", err)
		return nil, err
	}
	return &n, nil
}

func (r *notificationRepo) MarkRead(id uint64) error {
	err := r.db.Model(&domain.Notification{}).Where("id = ?", id).Update("is_read", true).Error
	if err != nil {
		log.Printf("notification MarkRead error: %v", err)
		return err
	}
	return nil
}
