package store

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dukerupert/choreboard/internal/model"
)

// SeedDemo loads the demo household: one parent account, two children, the
// starter chore templates with assigned instances, and a sample notification.
func SeedDemo(ctx context.Context, s *Store) error {
	const parentEmail = "parent@example.com"

	if _, err := s.Users().Create(ctx, model.User{
		Email:    parentEmail,
		FullName: "Parent User",
	}); err != nil {
		return fmt.Errorf("seed user: %w", err)
	}

	emma, err := s.Children().Create(ctx, model.Child{
		Name:              "Emma",
		Age:               8,
		AvatarColor:       model.AvatarSage,
		TotalPoints:       150,
		TotalMoney:        decimal.RequireFromString("15.50"),
		WeeklyPocketMoney: decimal.RequireFromString("8.00"),
		Level:             2,
		ParentEmail:       parentEmail,
	})
	if err != nil {
		return fmt.Errorf("seed child: %w", err)
	}

	liam, err := s.Children().Create(ctx, model.Child{
		Name:              "Liam",
		Age:               12,
		AvatarColor:       model.AvatarSea,
		TotalPoints:       280,
		TotalMoney:        decimal.RequireFromString("32.75"),
		WeeklyPocketMoney: decimal.RequireFromString("12.00"),
		Level:             3,
		ParentEmail:       parentEmail,
	})
	if err != nil {
		return fmt.Errorf("seed child: %w", err)
	}

	makeBed := model.Chore{
		Title:       "Make Bed",
		Description: "Tidy up bedroom and make bed properly",
		Points:      10,
		Category:    "bedroom",
		Difficulty:  model.DifficultyEasy,
		Frequency:   "daily",
		MinAge:      4,
		MaxAge:      16,
		IsTemplate:  true,
		ParentEmail: parentEmail,
	}
	loadDishwasher := model.Chore{
		Title:       "Load Dishwasher",
		Description: "Load dirty dishes and start the dishwasher",
		Points:      15,
		Category:    "kitchen",
		Difficulty:  model.DifficultyMedium,
		Frequency:   "daily",
		MinAge:      8,
		MaxAge:      16,
		IsTemplate:  true,
		ParentEmail: parentEmail,
	}
	for _, tmpl := range []model.Chore{makeBed, loadDishwasher} {
		if _, err := s.Chores().Create(ctx, tmpl); err != nil {
			return fmt.Errorf("seed template: %w", err)
		}
	}

	now := time.Now().UTC()
	due := now.Add(24 * time.Hour)
	completed := now.Add(-time.Hour)

	emmaChore := makeBed
	emmaChore.IsTemplate = false
	emmaChore.AssignedTo = emma.ID
	emmaChore.Status = model.ChoreStatusPending
	emmaChore.DueDate = &due
	if _, err := s.Chores().Create(ctx, emmaChore); err != nil {
		return fmt.Errorf("seed chore: %w", err)
	}

	liamChore := loadDishwasher
	liamChore.IsTemplate = false
	liamChore.AssignedTo = liam.ID
	liamChore.Status = model.ChoreStatusCompleted
	liamChore.DueDate = &due
	liamChore.CompletedDate = &completed
	liamChore.ParentEmail = parentEmail
	liamChoreStored, err := s.Chores().Create(ctx, liamChore)
	if err != nil {
		return fmt.Errorf("seed chore: %w", err)
	}

	if _, err := s.Notifications().Create(ctx, model.Notification{
		Type:        model.NotificationChoreCompleted,
		Title:       "Chore Completed!",
		Message:     fmt.Sprintf("%s completed %q and earned %d points!", liam.Name, liamChoreStored.Title, liamChoreStored.Points),
		ChildID:     liam.ID,
		ChoreID:     liamChoreStored.ID,
		ParentEmail: parentEmail,
	}); err != nil {
		return fmt.Errorf("seed notification: %w", err)
	}

	return nil
}
