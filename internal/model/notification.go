package model

import "time"

type NotificationType string

const (
	NotificationChoreCompleted NotificationType = "chore_completed"
	NotificationLevelUp        NotificationType = "level_up"
	NotificationAchievement    NotificationType = "achievement"
	NotificationReminder       NotificationType = "reminder"
	NotificationOther          NotificationType = "other"
)

func (t NotificationType) String() string { return string(t) }

type Notification struct {
	ID          string           `json:"id"`
	Type        NotificationType `json:"type"`
	Title       string           `json:"title"`
	Message     string           `json:"message"`
	ChildID     string           `json:"child_id"`
	ChoreID     string           `json:"chore_id"`
	IsRead      bool             `json:"is_read"`
	ParentEmail string           `json:"parent_email"`
	CreatedDate time.Time        `json:"created_date"`
}

func (n Notification) EntityID() string { return n.ID }

func (n Notification) Stamp(id string, created time.Time) Notification {
	if n.ID == "" {
		n.ID = id
	}
	if n.CreatedDate.IsZero() {
		n.CreatedDate = created
	}
	if n.Type == "" {
		n.Type = NotificationOther
	}
	return n
}

func (n Notification) Clone() Notification { return n }

func (n Notification) Field(name string) (any, bool) {
	switch name {
	case "id":
		return n.ID, true
	case "type":
		return string(n.Type), true
	case "title":
		return n.Title, true
	case "message":
		return n.Message, true
	case "child_id":
		return n.ChildID, true
	case "chore_id":
		return n.ChoreID, true
	case "is_read":
		return n.IsRead, true
	case "parent_email":
		return n.ParentEmail, true
	case "created_date":
		return n.CreatedDate, true
	}
	return nil, false
}

type NotificationPatch struct {
	Type    *NotificationType
	Title   *string
	Message *string
	IsRead  *bool
}

func (p NotificationPatch) Apply(n Notification) Notification {
	if p.Type != nil {
		n.Type = *p.Type
	}
	if p.Title != nil {
		n.Title = *p.Title
	}
	if p.Message != nil {
		n.Message = *p.Message
	}
	if p.IsRead != nil {
		n.IsRead = *p.IsRead
	}
	return n
}
