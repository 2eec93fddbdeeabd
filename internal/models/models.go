package models

import (
	"time"
)

const (
	RoleCreator   = "creator"
	RoleAdmin     = "admin"
	RoleAnalyst   = "analyst"
	RoleCommunity = "community"
)

type User struct {
	UserID         int64     `json:"user_id" db:"user_id"`
	Name           string    `json:"name" db:"name"`
	Email          string    `json:"email" db:"email"`
	Role           string    `json:"role" db:"role"`
	Location       *string   `json:"location" db:"location"`
	Market         *string   `json:"market" db:"market"`
	PrimaryStyles  *string   `json:"primary_styles" db:"primary_styles"`
	Tools          *string   `json:"tools" db:"tools"`
	CreditMomentum float64   `json:"credit_momentum" db:"credit_momentum"`
	IsActive       bool      `json:"is_active" db:"is_active"`
	IsCreator      bool      `json:"is_creator" db:"is_creator"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}

// Creator is a creator row with the headline of their first active portfolio.
type Creator struct {
	User
	Headline *string `json:"headline" db:"headline"`
}

type CreateUserRequest struct {
	Name           string   `json:"name" db:"name" validate:"required"`
	Email          string   `json:"email" db:"email" validate:"required"`
	Role           string   `json:"role" db:"role" validate:"omitempty,oneof=creator admin analyst community"`
	Location       *string  `json:"location" db:"location"`
	Market         *string  `json:"market" db:"market"`
	PrimaryStyles  *string  `json:"primary_styles" db:"primary_styles"`
	Tools          *string  `json:"tools" db:"tools"`
	CreditMomentum *float64 `json:"credit_momentum" db:"credit_momentum"`
}

type UpdateUserRequest struct {
	Name           *string  `json:"name"`
	Email          *string  `json:"email"`
	Role           *string  `json:"role" validate:"omitempty,oneof=creator admin analyst community"`
	Location       *string  `json:"location"`
	Market         *string  `json:"market"`
	PrimaryStyles  *string  `json:"primary_styles"`
	Tools          *string  `json:"tools"`
	CreditMomentum *float64 `json:"credit_momentum"`
}

func (r UpdateUserRequest) IsEmpty() bool {
	return r.Name == nil && r.Email == nil && r.Role == nil && r.Location == nil && r.Market == nil &&
		r.PrimaryStyles == nil && r.Tools == nil && r.CreditMomentum == nil
}

type UserFilter struct {
	Role            string
	IncludeInactive bool
}

const (
	CreatorSortMomentum    = "momentum"
	CreatorSortMomentumAsc = "momentum_asc"
	CreatorSortName        = "name"
)

type CreatorFilter struct {
	Market string
	Style  string
	Sort   string
}
