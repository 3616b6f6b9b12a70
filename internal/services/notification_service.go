package services

import (
	"context"
	"errors"

	"campuseats/internal/domain"
	"campuseats/internal/repository"
)

var ErrNotificationNotFound = errors.New("notification not found")

type NotificationService struct {
	notifications repository.NotificationRepository
}

func NewNotificationService(notifications repository.NotificationRepository) *NotificationService {
	return &NotificationService{notifications: notifications}
}

func (s *NotificationService) ListForUser(ctx context.Context, userID uint64) ([]domain.Notification, error) {
	return s.notifications.FindByUser(userID)
}

// MarkRead flips the read flag on the caller's own notification. A
// notification belonging to someone else reads as not found.
func (s *NotificationService) MarkRead(ctx context.Context, id, userID uint64) error {
	n, err := s.notifications.FindByID(id)
	if err != nil {
		return err
	}
	if n == nil || n.UserID != userID {
		return ErrNotificationNotFound
	}
	return s.notifications.MarkRead(id)
}
