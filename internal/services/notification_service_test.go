package services

import (
	"context"
	"testing"

	"campuseats/internal/domain"
	"campuseats/internal/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestNotificationServiceMarkRead(t *testing.T) {
	tests := []struct {
		name       string
		setupMocks func(notifications *mocks.MockNotificationRepository)
		id         uint64
		userID     uint64
		wantErr    error
	}{
		{
			name: "owner marks own notification read",
			setupMocks: func(notifications *mocks.MockNotificationRepository) {
				notifications.On("FindByID", uint64(5)).Return(&domain.Notification{ID: 5, UserID: testUserID}, nil)
				notifications.On("MarkRead", uint64(5)).Return(nil)
			},
			id:     5,
			userID: testUserID,
		},
		{
			name: "someone else's notification reads as missing",
			setupMocks: func(notifications *mocks.MockNotificationRepository) {
				notifications.On("FindByID", uint64(5)).Return(&domain.Notification{ID: 5, UserID: 99}, nil)
			},
			id:      5,
			userID:  testUserID,
			wantErr: ErrNotificationNotFound,
		},
		{
			name: "unknown notification",
			setupMocks: func(notifications *mocks.MockNotificationRepository) {
				notifications.On("FindByID", uint64(5)).Return(nil, nil)
			},
			id:      5,
			userID:  testUserID,
			wantErr: ErrNotificationNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			notifications := new(mocks.MockNotificationRepository)
			tt.setupMocks(notifications)

			svc := NewNotificationService(notifications)
			err := svc.MarkRead(context.Background(), tt.id, tt.userID)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				notifications.AssertNotCalled(t, "MarkRead", mock.Anything)
			} else {
				assert.NoError(t, err)
			}
			notifications.AssertExpectations(t)
		})
	}
}

func TestNotificationServiceListForUser(t *testing.T) {
	notifications := new(mocks.MockNotificationRepository)
	notifications.On("FindByUser", testUserID).Return([]domain.Notification{
		{ID: 1, UserID: testUserID, Type: domain.NotificationOrderConfirmed},
		{ID: 2, UserID: testUserID, Type: domain.NotificationOrderReady},
	}, nil)

	svc := NewNotificationService(notifications)
	got, err := svc.ListForUser(context.Background(), testUserID)

	assert.NoError(t, err)
	assert.Len(t, got, 2)
	notifications.AssertExpectations(t)
}
