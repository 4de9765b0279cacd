package rules

import (
	"context"
	"time"

	"github.com/dukerupert/choreboard/internal/model"
	"github.com/dukerupert/choreboard/internal/store"
)

// Stats is the dashboard's headline numbers for one account.
type Stats struct {
	TotalChildren       int `json:"total_children"`
	PendingChores       int `json:"pending_chores"`
	CompletedToday      int `json:"completed_today"`
	TotalPoints         int `json:"total_points"`
	UnreadNotifications int `json:"unread_notifications"`
}

// DashboardStats computes the stats grid in one consistent view of the store.
// "Completed today" counts chores still awaiting verification whose
// completion falls on the current calendar day.
func (e *Engine) DashboardStats(ctx context.Context, parentEmail string) (Stats, error) {
	var stats Stats
	err := e.store.Transact(ctx, func(tx *store.Tx) error {
		today := tx.Now()

		children := tx.Children().Filter(store.Criteria{"parent_email": parentEmail}, "")
		stats.TotalChildren = len(children)
		for _, c := range children {
			stats.TotalPoints += c.TotalPoints
		}

		chores := tx.Chores().Filter(store.Criteria{"parent_email": parentEmail}, "")
		for _, c := range chores {
			switch c.Status {
			case model.ChoreStatusPending:
				stats.PendingChores++
			case model.ChoreStatusCompleted:
				if c.CompletedDate != nil && sameDay(*c.CompletedDate, today) {
					stats.CompletedToday++
				}
			}
		}

		unread := tx.Notifications().Filter(store.Criteria{"parent_email": parentEmail, "is_read": false}, "")
		stats.UnreadNotifications = len(unread)
		return nil
	})
	if err != nil {
		return Stats{}, err
	}
	return stats, nil
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
