package domain

import "time"

const (
	RoleAdmin = "admin"
	RoleDonor = "donor"
)

type User struct {
	ID        uint       `json:"id"`
	FullName  string     `json:"full_name"`
	Email     string     `json:"email"`
	Password  string     `json:"-"`
	Role      string     `json:"role"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}

type Admin struct {
	User
	// ID shadows the embedded user id; admins carry their own row id.
	ID     uint `json:"id"`
	UserID uint `json:"user_id"`
	IsRoot bool `json:"is_root"`
}

type Donor struct {
	User
	ID        uint       `json:"id"`
	UserID    uint       `json:"user_id"`
	BirthDate *time.Time `json:"birth_date,omitempty"`
	Gender    string     `json:"gender,omitempty"`
	Phone     string     `json:"phone,omitempty"`
	CPF       string     `json:"cpf,omitempty"`

	// TotalDonated is derived from the donor's donations, never stored.
	TotalDonated float64 `json:"total_donated"`
}
