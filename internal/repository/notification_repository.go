package repository

import "campuseats/internal/domain"

type NotificationRepository interface {
	Create(notification *domain.Notification) error
	FindByUser(userID uint64) ([]domain.Notification, error)
	FindByID(id uint64) (*domain.Notification, error)
	MarkRead(id uint64) error
}
