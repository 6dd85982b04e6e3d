package storage

import (
	"context"

	"yelpcamp/pkg/domain"
)

// NotificationStorage defines persistence operations for notifications.
type NotificationStorage interface {
	// StoreNotification inserts a notification addressed to n.UserID.
	StoreNotification(ctx context.Context, n domain.Notification) (*domain.Notification, error)
	// UnreadNotifications returns the unread notifications of a user, most
	// recent first.
	UnreadNotifications(ctx context.Context, userID domain.UserID) ([]domain.Notification, error)
	// MarkNotificationRead flags the user's notification as read and returns it,
	// or nil when the user owns no such notification.
	MarkNotificationRead(ctx context.Context,
		userID domain.UserID,
		ID domain.NotificationID) (*domain.Notification, error)
}
