package store

import (
	"context"

	"github.com/dukerupert/choreboard/internal/model"
)

// ChoreStore is the typed handle for the chores collection.
type ChoreStore struct {
	c *Collection[model.Chore]
}

func (s *ChoreStore) Filter(ctx context.Context, criteria Criteria, orderBy string) ([]model.Chore, error) {
	return s.c.Filter(ctx, criteria, orderBy)
}

func (s *ChoreStore) Get(ctx context.Context, id string) (model.Chore, bool, error) {
	return s.c.Get(ctx, id)
}

func (s *ChoreStore) Create(ctx context.Context, chore model.Chore) (model.Chore, error) {
	return s.c.Create(ctx, chore)
}

func (s *ChoreStore) Update(ctx context.Context, id string, patch model.ChorePatch) (model.Chore, error) {
	return s.c.Update(ctx, id, patch.Apply)
}

func (s *ChoreStore) Delete(ctx context.Context, id string) error {
	return s.c.Delete(ctx, id)
}

// ListTemplates returns the chore library entries.
func (s *ChoreStore) ListTemplates(ctx context.Context) ([]model.Chore, error) {
	return s.c.Filter(ctx, Criteria{"is_template": true}, "title")
}

// ListByAssignee returns the chores assigned to one child.
func (s *ChoreStore) ListByAssignee(ctx context.Context, childID string) ([]model.Chore, error) {
	return s.c.Filter(ctx, Criteria{"assigned_to": childID}, "")
}

// ListByParent returns every chore, template or assigned, for the account.
func (s *ChoreStore) ListByParent(ctx context.Context, parentEmail string) ([]model.Chore, error) {
	return s.c.Filter(ctx, Criteria{"parent_email": parentEmail}, "")
}
