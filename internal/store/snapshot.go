package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dukerupert/choreboard/internal/model"
)

// ExportTo writes the whole store into the snapshot database, replacing
// whatever the tables held before. The state is captured under the store lock
// first, so the snapshot is internally consistent even if callers keep
// mutating while rows are written.
func (s *Store) ExportTo(db *sql.DB) error {
	s.mu.Lock()
	children := s.children.cloneItems()
	chores := s.chores.cloneItems()
	notifications := s.notifications.cloneItems()
	users := s.users.cloneItems()
	s.mu.Unlock()

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"children", "chores", "notifications", "users"} {
		if _, err := tx.Exec(`DELETE FROM ` + table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	for _, c := range children {
		_, err := tx.Exec(
			`INSERT INTO children (id, name, age, avatar_color, total_points, total_money, weekly_pocket_money, level, parent_email, created_date)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			c.ID, c.Name, c.Age, string(c.AvatarColor), c.TotalPoints,
			c.TotalMoney.String(), c.WeeklyPocketMoney.String(), c.Level, c.ParentEmail, c.CreatedDate,
		)
		if err != nil {
			return fmt.Errorf("insert child %s: %w", c.ID, err)
		}
	}

	for _, c := range chores {
		_, err := tx.Exec(
			`INSERT INTO chores (id, title, description, points, category, difficulty, frequency, min_age, max_age, is_template, assigned_to, status, due_date, completed_date, verified_date, parent_email, created_date)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			c.ID, c.Title, c.Description, c.Points, c.Category, string(c.Difficulty), c.Frequency,
			c.MinAge, c.MaxAge, c.IsTemplate, c.AssignedTo, string(c.Status),
			nullTime(c.DueDate), nullTime(c.CompletedDate), nullTime(c.VerifiedDate),
			c.ParentEmail, c.CreatedDate,
		)
		if err != nil {
			return fmt.Errorf("insert chore %s: %w", c.ID, err)
		}
	}

	for _, n := range notifications {
		_, err := tx.Exec(
			`INSERT INTO notifications (id, type, title, message, child_id, chore_id, is_read, parent_email, created_date)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			n.ID, string(n.Type), n.Title, n.Message, n.ChildID, n.ChoreID, n.IsRead, n.ParentEmail, n.CreatedDate,
		)
		if err != nil {
			return fmt.Errorf("insert notification %s: %w", n.ID, err)
		}
	}

	for _, u := range users {
		_, err := tx.Exec(
			`INSERT INTO users (id, email, full_name, created_date) VALUES (?, ?, ?, ?)`,
			u.ID, u.Email, u.FullName, u.CreatedDate,
		)
		if err != nil {
			return fmt.Errorf("insert user %s: %w", u.ID, err)
		}
	}

	return tx.Commit()
}

// ImportFrom replaces the store contents with the rows in the snapshot
// database. Id sequences resume past the highest numeric id found.
func (s *Store) ImportFrom(db *sql.DB) error {
	children, err := readChildren(db)
	if err != nil {
		return err
	}
	chores, err := readChores(db)
	if err != nil {
		return err
	}
	notifications, err := readNotifications(db)
	if err != nil {
		return err
	}
	users, err := readUsers(db)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.children.replaceLocked(children)
	s.chores.replaceLocked(chores)
	s.notifications.replaceLocked(notifications)
	s.users.replaceLocked(users)
	return nil
}

func readChildren(db *sql.DB) ([]model.Child, error) {
	rows, err := db.Query(`SELECT id, name, age, avatar_color, total_points, total_money, weekly_pocket_money, level, parent_email, created_date FROM children`)
	if err != nil {
		return nil, fmt.Errorf("read children: %w", err)
	}
	defer rows.Close()

	var children []model.Child
	for rows.Next() {
		var c model.Child
		var color, money, pocket string
		if err := rows.Scan(&c.ID, &c.Name, &c.Age, &color, &c.TotalPoints, &money, &pocket, &c.Level, &c.ParentEmail, &c.CreatedDate); err != nil {
			return nil, fmt.Errorf("scan child: %w", err)
		}
		c.AvatarColor = model.AvatarColor(color)
		if c.TotalMoney, err = decimal.NewFromString(money); err != nil {
			return nil, fmt.Errorf("child %s total_money %q: %w", c.ID, money, err)
		}
		if c.WeeklyPocketMoney, err = decimal.NewFromString(pocket); err != nil {
			return nil, fmt.Errorf("child %s weekly_pocket_money %q: %w", c.ID, pocket, err)
		}
		children = append(children, c)
	}
	return children, rows.Err()
}

func readChores(db *sql.DB) ([]model.Chore, error) {
	rows, err := db.Query(`SELECT id, title, description, points, category, difficulty, frequency, min_age, max_age, is_template, assigned_to, status, due_date, completed_date, verified_date, parent_email, created_date FROM chores`)
	if err != nil {
		return nil, fmt.Errorf("read chores: %w", err)
	}
	defer rows.Close()

	var chores []model.Chore
	for rows.Next() {
		var c model.Chore
		var difficulty, status string
		var due, completed, verified sql.NullTime
		if err := rows.Scan(&c.ID, &c.Title, &c.Description, &c.Points, &c.Category, &difficulty, &c.Frequency,
			&c.MinAge, &c.MaxAge, &c.IsTemplate, &c.AssignedTo, &status,
			&due, &completed, &verified, &c.ParentEmail, &c.CreatedDate); err != nil {
			return nil, fmt.Errorf("scan chore: %w", err)
		}
		c.Difficulty = model.Difficulty(difficulty)
		c.Status = model.ChoreStatus(status)
		c.DueDate = timePtr(due)
		c.CompletedDate = timePtr(completed)
		c.VerifiedDate = timePtr(verified)
		chores = append(chores, c)
	}
	return chores, rows.Err()
}

func readNotifications(db *sql.DB) ([]model.Notification, error) {
	rows, err := db.Query(`SELECT id, type, title, message, child_id, chore_id, is_read, parent_email, created_date FROM notifications`)
	if err != nil {
		return nil, fmt.Errorf("read notifications: %w", err)
	}
	defer rows.Close()

	var notifications []model.Notification
	for rows.Next() {
		var n model.Notification
		var kind string
		if err := rows.Scan(&n.ID, &kind, &n.Title, &n.Message, &n.ChildID, &n.ChoreID, &n.IsRead, &n.ParentEmail, &n.CreatedDate); err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}
		n.Type = model.NotificationType(kind)
		notifications = append(notifications, n)
	}
	return notifications, rows.Err()
}

func readUsers(db *sql.DB) ([]model.User, error) {
	rows, err := db.Query(`SELECT id, email, full_name, created_date FROM users`)
	if err != nil {
		return nil, fmt.Errorf("read users: %w", err)
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Email, &u.FullName, &u.CreatedDate); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

func timePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	cp := t.Time
	return &cp
}
