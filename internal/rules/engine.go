package rules

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dukerupert/choreboard/internal/model"
	"github.com/dukerupert/choreboard/internal/store"
)

// ErrInvalidTransition is returned when a chore status change is not legal
// from the current state (e.g. verifying a pending chore, re-verifying).
var ErrInvalidTransition = errors.New("invalid status transition")

// ErrRejected is returned for business-rule refusals that are not data
// errors, such as payday for a child with no pocket money configured.
var ErrRejected = errors.New("rejected")

// TemplateDueIn is how far out an assigned chore's due date is set.
const TemplateDueIn = 7 * 24 * time.Hour

// Engine applies the domain rules. Cross-entity updates run inside a store
// transaction, so a failure midway leaves nothing half-applied.
type Engine struct {
	store *store.Store
	log   *slog.Logger
}

func New(s *store.Store, log *slog.Logger) *Engine {
	if log == nil {
		log = slog.Default()
	}
	return &Engine{store: s, log: log}
}

// VerifyResult carries both records touched by a verification.
type VerifyResult struct {
	Chore model.Chore
	Child model.Child
}

// VerifyChore confirms a completed chore and credits its points to the
// assigned child, bumping the child's level when the new total crosses a
// 100-point boundary. Only a chore in status "completed" can be verified;
// anything else is rejected with ErrInvalidTransition and the store is left
// untouched.
func (e *Engine) VerifyChore(ctx context.Context, choreID string) (VerifyResult, error) {
	var res VerifyResult
	err := e.store.Transact(ctx, func(tx *store.Tx) error {
		chore, ok := tx.Chores().Get(choreID)
		if !ok {
			return fmt.Errorf("verify chore %s: %w", choreID, store.ErrNotFound)
		}
		if !chore.Status.CanTransitionTo(model.ChoreStatusVerified) {
			return fmt.Errorf("verify chore %s in status %q: %w", choreID, chore.Status, ErrInvalidTransition)
		}
		child, ok := tx.Children().Get(chore.AssignedTo)
		if !ok {
			return fmt.Errorf("verify chore %s: child %s: %w", choreID, chore.AssignedTo, store.ErrNotFound)
		}

		now := tx.Now()
		updatedChore, err := tx.Chores().Update(choreID, func(c model.Chore) model.Chore {
			c.Status = model.ChoreStatusVerified
			c.VerifiedDate = &now
			return c
		})
		if err != nil {
			return err
		}

		newPoints := child.TotalPoints + chore.Points
		newLevel := Level(newPoints)
		if newLevel < child.Level {
			// Level never decreases.
			newLevel = child.Level
		}
		updatedChild, err := tx.Children().Update(child.ID, func(c model.Child) model.Child {
			c.TotalPoints = newPoints
			c.Level = newLevel
			return c
		})
		if err != nil {
			return err
		}

		if newLevel > child.Level {
			tx.Notifications().Create(model.Notification{
				Type:        model.NotificationLevelUp,
				Title:       "Level Up!",
				Message:     fmt.Sprintf("%s reached level %d!", child.Name, newLevel),
				ChildID:     child.ID,
				ChoreID:     chore.ID,
				ParentEmail: child.ParentEmail,
			})
		}

		res = VerifyResult{Chore: updatedChore, Child: updatedChild}
		return nil
	})
	if err != nil {
		return VerifyResult{}, err
	}
	e.log.Info("chore verified",
		"chore_id", res.Chore.ID,
		"child_id", res.Child.ID,
		"points", res.Chore.Points,
		"total_points", res.Child.TotalPoints,
		"level", res.Child.Level,
	)
	return res, nil
}

// CompleteChore moves a pending chore to completed, records the completion
// time, and notifies the parent in the dashboard's usual wording.
func (e *Engine) CompleteChore(ctx context.Context, choreID string) (model.Chore, error) {
	var updated model.Chore
	err := e.store.Transact(ctx, func(tx *store.Tx) error {
		chore, ok := tx.Chores().Get(choreID)
		if !ok {
			return fmt.Errorf("complete chore %s: %w", choreID, store.ErrNotFound)
		}
		if !chore.Status.CanTransitionTo(model.ChoreStatusCompleted) {
			return fmt.Errorf("complete chore %s in status %q: %w", choreID, chore.Status, ErrInvalidTransition)
		}

		now := tx.Now()
		var err error
		updated, err = tx.Chores().Update(choreID, func(c model.Chore) model.Chore {
			c.Status = model.ChoreStatusCompleted
			c.CompletedDate = &now
			return c
		})
		if err != nil {
			return err
		}

		if child, ok := tx.Children().Get(chore.AssignedTo); ok {
			tx.Notifications().Create(model.Notification{
				Type:        model.NotificationChoreCompleted,
				Title:       "Chore Completed!",
				Message:     fmt.Sprintf("%s completed %q and earned %d points!", child.Name, chore.Title, chore.Points),
				ChildID:     child.ID,
				ChoreID:     chore.ID,
				ParentEmail: child.ParentEmail,
			})
		}
		return nil
	})
	if err != nil {
		return model.Chore{}, err
	}
	return updated, nil
}

// RunPayday credits the child's banked money by their weekly allowance. A
// child with no allowance configured is not payable and the call is rejected.
func (e *Engine) RunPayday(ctx context.Context, childID string) (model.Child, error) {
	var updated model.Child
	err := e.store.Transact(ctx, func(tx *store.Tx) error {
		child, ok := tx.Children().Get(childID)
		if !ok {
			return fmt.Errorf("payday for child %s: %w", childID, store.ErrNotFound)
		}
		if !child.WeeklyPocketMoney.IsPositive() {
			return fmt.Errorf("payday for child %s: no pocket money configured: %w", childID, ErrRejected)
		}
		var err error
		updated, err = tx.Children().Update(childID, func(c model.Child) model.Child {
			c.TotalMoney = c.TotalMoney.Add(c.WeeklyPocketMoney)
			return c
		})
		return err
	})
	if err != nil {
		return model.Child{}, err
	}
	e.log.Info("payday run", "child_id", updated.ID, "total_money", updated.TotalMoney)
	return updated, nil
}

// AssignTemplate instantiates a library chore for a child: same content as
// the template, fresh id, pending status, due a week out, owned by the acting
// parent. The template itself is never modified.
func (e *Engine) AssignTemplate(ctx context.Context, templateID, childID, parentEmail string) (model.Chore, error) {
	var assigned model.Chore
	err := e.store.Transact(ctx, func(tx *store.Tx) error {
		tmpl, ok := tx.Chores().Get(templateID)
		if !ok {
			return fmt.Errorf("assign template %s: %w", templateID, store.ErrNotFound)
		}
		if !tmpl.IsTemplate {
			return fmt.Errorf("assign chore %s: not a template: %w", templateID, ErrRejected)
		}
		if _, ok := tx.Children().Get(childID); !ok {
			return fmt.Errorf("assign template %s: child %s: %w", templateID, childID, store.ErrNotFound)
		}

		due := tx.Now().Add(TemplateDueIn)
		chore := tmpl
		chore.ID = ""
		chore.CreatedDate = time.Time{}
		chore.IsTemplate = false
		chore.AssignedTo = childID
		chore.Status = model.ChoreStatusPending
		chore.DueDate = &due
		chore.CompletedDate = nil
		chore.VerifiedDate = nil
		chore.ParentEmail = parentEmail

		assigned = tx.Chores().Create(chore)
		return nil
	})
	if err != nil {
		return model.Chore{}, err
	}
	e.log.Info("template assigned", "template_id", templateID, "chore_id", assigned.ID, "child_id", childID)
	return assigned, nil
}

// DeleteChild removes a child together with their assigned chores and the
// notifications that reference them, in one transaction so a failure leaves
// no orphaned records behind.
func (e *Engine) DeleteChild(ctx context.Context, childID string) error {
	var chores, notifications int
	err := e.store.Transact(ctx, func(tx *store.Tx) error {
		if _, ok := tx.Children().Get(childID); !ok {
			return fmt.Errorf("delete child %s: %w", childID, store.ErrNotFound)
		}
		for _, c := range tx.Chores().Filter(store.Criteria{"assigned_to": childID}, "") {
			if err := tx.Chores().Delete(c.ID); err != nil {
				return err
			}
			chores++
		}
		for _, n := range tx.Notifications().Filter(store.Criteria{"child_id": childID}, "") {
			if err := tx.Notifications().Delete(n.ID); err != nil {
				return err
			}
			notifications++
		}
		return tx.Children().Delete(childID)
	})
	if err != nil {
		return err
	}
	e.log.Info("child deleted", "child_id", childID, "chores", chores, "notifications", notifications)
	return nil
}

// MarkNotificationRead flags one notification as read.
func (e *Engine) MarkNotificationRead(ctx context.Context, id string) (model.Notification, error) {
	read := true
	return e.store.Notifications().Update(ctx, id, model.NotificationPatch{IsRead: &read})
}

// MarkAllNotificationsRead flags every unread notification for the account
// and returns how many were updated.
func (e *Engine) MarkAllNotificationsRead(ctx context.Context, parentEmail string) (int, error) {
	var updated int
	err := e.store.Transact(ctx, func(tx *store.Tx) error {
		unread := tx.Notifications().Filter(store.Criteria{"parent_email": parentEmail, "is_read": false}, "")
		for _, n := range unread {
			if _, err := tx.Notifications().Update(n.ID, func(n model.Notification) model.Notification {
				n.IsRead = true
				return n
			}); err != nil {
				return err
			}
			updated++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return updated, nil
}
