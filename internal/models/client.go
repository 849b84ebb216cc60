package models

import (
	"time"
)

type ClientRole string

const (
	ClientRoleCustomer ClientRole = "customer"
	ClientRoleAdmin    ClientRole = "admin"
)

// Client is an account on the storefront. Guests browsing and quoting
// have no Client record; one is required to submit a booking.
type Client struct {
	ID        int64      `json:"id" db:"id"`
	Email     string     `json:"email" db:"email" validate:"required,email"`
	FirstName string     `json:"first_name" db:"first_name" validate:"required"`
	LastName  string     `json:"last_name" db:"last_name" validate:"required"`
	Phone     string     `json:"phone" db:"phone"`
	Role      ClientRole `json:"role" db:"role"`
	IsActive  bool       `json:"is_active" db:"is_active"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt time.Time  `json:"updated_at" db:"updated_at"`
}
