package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type AvatarColor string

const (
	AvatarSage    AvatarColor = "sage"
	AvatarSea     AvatarColor = "sea"
	AvatarSand    AvatarColor = "sand"
	AvatarBlossom AvatarColor = "blossom"
)

func (a AvatarColor) String() string { return string(a) }

type Child struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	Age               int             `json:"age"`
	AvatarColor       AvatarColor     `json:"avatar_color"`
	TotalPoints       int             `json:"total_points"`
	TotalMoney        decimal.Decimal `json:"total_money"`
	WeeklyPocketMoney decimal.Decimal `json:"weekly_pocket_money"`
	Level             int             `json:"level"`
	ParentEmail       string          `json:"parent_email"`
	CreatedDate       time.Time       `json:"created_date"`
}

func (c Child) EntityID() string { return c.ID }

// Stamp fills in identity fields that the caller left unset and applies
// creation defaults. Points start at zero and every child starts at level 1.
func (c Child) Stamp(id string, created time.Time) Child {
	if c.ID == "" {
		c.ID = id
	}
	if c.CreatedDate.IsZero() {
		c.CreatedDate = created
	}
	if c.Level < 1 {
		c.Level = 1
	}
	if c.TotalPoints < 0 {
		c.TotalPoints = 0
	}
	return c
}

func (c Child) Clone() Child { return c }

func (c Child) Field(name string) (any, bool) {
	switch name {
	case "id":
		return c.ID, true
	case "name":
		return c.Name, true
	case "age":
		return c.Age, true
	case "avatar_color":
		return string(c.AvatarColor), true
	case "total_points":
		return c.TotalPoints, true
	case "total_money":
		return c.TotalMoney, true
	case "weekly_pocket_money":
		return c.WeeklyPocketMoney, true
	case "level":
		return c.Level, true
	case "parent_email":
		return c.ParentEmail, true
	case "created_date":
		return c.CreatedDate, true
	}
	return nil, false
}

// ChildPatch is a partial update; nil fields are left unchanged.
type ChildPatch struct {
	Name              *string
	Age               *int
	AvatarColor       *AvatarColor
	TotalPoints       *int
	TotalMoney        *decimal.Decimal
	WeeklyPocketMoney *decimal.Decimal
	Level             *int
	ParentEmail       *string
}

func (p ChildPatch) Apply(c Child) Child {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Age != nil {
		c.Age = *p.Age
	}
	if p.AvatarColor != nil {
		c.AvatarColor = *p.AvatarColor
	}
	if p.TotalPoints != nil {
		c.TotalPoints = *p.TotalPoints
	}
	if p.TotalMoney != nil {
		c.TotalMoney = *p.TotalMoney
	}
	if p.WeeklyPocketMoney != nil {
		c.WeeklyPocketMoney = *p.WeeklyPocketMoney
	}
	if p.Level != nil {
		c.Level = *p.Level
	}
	if p.ParentEmail != nil {
		c.ParentEmail = *p.ParentEmail
	}
	return c
}
