package model

import "time"

type ChoreStatus string

const (
	ChoreStatusPending   ChoreStatus = "pending"
	ChoreStatusCompleted ChoreStatus = "completed"
	ChoreStatusVerified  ChoreStatus = "verified"
)

func (s ChoreStatus) String() string { return string(s) }

// CanTransitionTo reports whether the status machine allows moving to next.
// Transitions are forward-only: pending -> completed -> verified.
func (s ChoreStatus) CanTransitionTo(next ChoreStatus) bool {
	switch s {
	case ChoreStatusPending:
		return next == ChoreStatusCompleted
	case ChoreStatusCompleted:
		return next == ChoreStatusVerified
	}
	return false
}

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

func (d Difficulty) String() string { return string(d) }

// Chore is either a reusable template (IsTemplate, no assignee) or an
// instance assigned to one child. AssignedTo is empty for templates.
type Chore struct {
	ID            string      `json:"id"`
	Title         string      `json:"title"`
	Description   string      `json:"description"`
	Points        int         `json:"points"`
	Category      string      `json:"category"`
	Difficulty    Difficulty  `json:"difficulty"`
	Frequency     string      `json:"frequency"`
	MinAge        int         `json:"min_age"`
	MaxAge        int         `json:"max_age"`
	IsTemplate    bool        `json:"is_template"`
	AssignedTo    string      `json:"assigned_to"`
	Status        ChoreStatus `json:"status"`
	DueDate       *time.Time  `json:"due_date,omitempty"`
	CompletedDate *time.Time  `json:"completed_date,omitempty"`
	VerifiedDate  *time.Time  `json:"verified_date,omitempty"`
	ParentEmail   string      `json:"parent_email"`
	CreatedDate   time.Time   `json:"created_date"`
}

func (c Chore) EntityID() string { return c.ID }

func (c Chore) Stamp(id string, created time.Time) Chore {
	if c.ID == "" {
		c.ID = id
	}
	if c.CreatedDate.IsZero() {
		c.CreatedDate = created
	}
	if c.Status == "" {
		c.Status = ChoreStatusPending
	}
	return c
}

func (c Chore) Clone() Chore {
	c.DueDate = cloneTime(c.DueDate)
	c.CompletedDate = cloneTime(c.CompletedDate)
	c.VerifiedDate = cloneTime(c.VerifiedDate)
	return c
}

func (c Chore) Field(name string) (any, bool) {
	switch name {
	case "id":
		return c.ID, true
	case "title":
		return c.Title, true
	case "description":
		return c.Description, true
	case "points":
		return c.Points, true
	case "category":
		return c.Category, true
	case "difficulty":
		return string(c.Difficulty), true
	case "frequency":
		return c.Frequency, true
	case "min_age":
		return c.MinAge, true
	case "max_age":
		return c.MaxAge, true
	case "is_template":
		return c.IsTemplate, true
	case "assigned_to":
		return c.AssignedTo, true
	case "status":
		return string(c.Status), true
	case "due_date":
		return timeValue(c.DueDate), true
	case "completed_date":
		return timeValue(c.CompletedDate), true
	case "verified_date":
		return timeValue(c.VerifiedDate), true
	case "parent_email":
		return c.ParentEmail, true
	case "created_date":
		return c.CreatedDate, true
	}
	return nil, false
}

type ChorePatch struct {
	Title         *string
	Description   *string
	Points        *int
	Category      *string
	Difficulty    *Difficulty
	Frequency     *string
	MinAge        *int
	MaxAge        *int
	IsTemplate    *bool
	AssignedTo    *string
	Status        *ChoreStatus
	DueDate       *time.Time
	CompletedDate *time.Time
	VerifiedDate  *time.Time
	ParentEmail   *string
}

func (p ChorePatch) Apply(c Chore) Chore {
	if p.Title != nil {
		c.Title = *p.Title
	}
	if p.Description != nil {
		c.Description = *p.Description
	}
	if p.Points != nil {
		c.Points = *p.Points
	}
	if p.Category != nil {
		c.Category = *p.Category
	}
	if p.Difficulty != nil {
		c.Difficulty = *p.Difficulty
	}
	if p.Frequency != nil {
		c.Frequency = *p.Frequency
	}
	if p.MinAge != nil {
		c.MinAge = *p.MinAge
	}
	if p.MaxAge != nil {
		c.MaxAge = *p.MaxAge
	}
	if p.IsTemplate != nil {
		c.IsTemplate = *p.IsTemplate
	}
	if p.AssignedTo != nil {
		c.AssignedTo = *p.AssignedTo
	}
	if p.Status != nil {
		c.Status = *p.Status
	}
	if p.DueDate != nil {
		c.DueDate = cloneTime(p.DueDate)
	}
	if p.CompletedDate != nil {
		c.CompletedDate = cloneTime(p.CompletedDate)
	}
	if p.VerifiedDate != nil {
		c.VerifiedDate = cloneTime(p.VerifiedDate)
	}
	if p.ParentEmail != nil {
		c.ParentEmail = *p.ParentEmail
	}
	return c
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	cp := *t
	return &cp
}

// timeValue converts an optional date into a sortable value; unset dates
// compare as the zero time.
func timeValue(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}
