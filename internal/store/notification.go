package store

import (
	"context"

	"github.com/dukerupert/choreboard/internal/model"
)

// NotificationStore is the typed handle for the notifications collection.
type NotificationStore struct {
	c *Collection[model.Notification]
}

func (s *NotificationStore) Filter(ctx context.Context, criteria Criteria, orderBy string) ([]model.Notification, error) {
	return s.c.Filter(ctx, criteria, orderBy)
}

func (s *NotificationStore) Get(ctx context.Context, id string) (model.Notification, bool, error) {
	return s.c.Get(ctx, id)
}

func (s *NotificationStore) Create(ctx context.Context, n model.Notification) (model.Notification, error) {
	return s.c.Create(ctx, n)
}

func (s *NotificationStore) Update(ctx context.Context, id string, patch model.NotificationPatch) (model.Notification, error) {
	return s.c.Update(ctx, id, patch.Apply)
}

func (s *NotificationStore) Delete(ctx context.Context, id string) error {
	return s.c.Delete(ctx, id)
}

// ListByParent returns the account's notifications, newest first.
func (s *NotificationStore) ListByParent(ctx context.Context, parentEmail string) ([]model.Notification, error) {
	return s.c.Filter(ctx, Criteria{"parent_email": parentEmail}, "-created_date")
}

// ListUnread returns the account's unread notifications, newest first.
func (s *NotificationStore) ListUnread(ctx context.Context, parentEmail string) ([]model.Notification, error) {
	return s.c.Filter(ctx, Criteria{"parent_email": parentEmail, "is_read": false}, "-created_date")
}
