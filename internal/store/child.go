package store

import (
	"context"

	"github.com/dukerupert/choreboard/internal/model"
)

// ChildStore is the typed handle for the children collection.
type ChildStore struct {
	c *Collection[model.Child]
}

func (s *ChildStore) Filter(ctx context.Context, criteria Criteria, orderBy string) ([]model.Child, error) {
	return s.c.Filter(ctx, criteria, orderBy)
}

func (s *ChildStore) Get(ctx context.Context, id string) (model.Child, bool, error) {
	return s.c.Get(ctx, id)
}

func (s *ChildStore) Create(ctx context.Context, child model.Child) (model.Child, error) {
	return s.c.Create(ctx, child)
}

func (s *ChildStore) Update(ctx context.Context, id string, patch model.ChildPatch) (model.Child, error) {
	return s.c.Update(ctx, id, patch.Apply)
}

func (s *ChildStore) Delete(ctx context.Context, id string) error {
	return s.c.Delete(ctx, id)
}

// ListByParent returns every child belonging to the given account.
func (s *ChildStore) ListByParent(ctx context.Context, parentEmail string) ([]model.Child, error) {
	return s.c.Filter(ctx, Criteria{"parent_email": parentEmail}, "")
}
