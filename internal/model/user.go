package model

import "time"

type User struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	FullName    string    `json:"full_name"`
	CreatedDate time.Time `json:"created_date"`
}

func (u User) EntityID() string { return u.ID }

func (u User) Stamp(id string, created time.Time) User {
	if u.ID == "" {
		u.ID = id
	}
	if u.CreatedDate.IsZero() {
		u.CreatedDate = created
	}
	return u
}

func (u User) Clone() User { return u }

func (u User) Field(name string) (any, bool) {
	switch name {
	case "id":
		return u.ID, true
	case "email":
		return u.Email, true
	case "full_name":
		return u.FullName, true
	case "created_date":
		return u.CreatedDate, true
	}
	return nil, false
}

type UserPatch struct {
	Email    *string
	FullName *string
}

func (p UserPatch) Apply(u User) User {
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.FullName != nil {
		u.FullName = *p.FullName
	}
	return u
}
