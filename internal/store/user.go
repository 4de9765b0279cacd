package store

import (
	"context"

	"github.com/dukerupert/choreboard/internal/model"
)

// UserStore is the typed handle for the users collection.
type UserStore struct {
	c *Collection[model.User]
}

func (s *UserStore) Filter(ctx context.Context, criteria Criteria, orderBy string) ([]model.User, error) {
	return s.c.Filter(ctx, criteria, orderBy)
}

func (s *UserStore) Get(ctx context.Context, id string) (model.User, bool, error) {
	return s.c.Get(ctx, id)
}

func (s *UserStore) Create(ctx context.Context, u model.User) (model.User, error) {
	return s.c.Create(ctx, u)
}

func (s *UserStore) Update(ctx context.Context, id string, patch model.UserPatch) (model.User, error) {
	return s.c.Update(ctx, id, patch.Apply)
}

func (s *UserStore) Delete(ctx context.Context, id string) error {
	return s.c.Delete(ctx, id)
}

// GetByEmail looks a user up by unique email.
func (s *UserStore) GetByEmail(ctx context.Context, email string) (model.User, bool, error) {
	users, err := s.c.Filter(ctx, Criteria{"email": email}, "")
	if err != nil {
		return model.User{}, false, err
	}
	if len(users) == 0 {
		return model.User{}, false, nil
	}
	return users[0], true, nil
}
