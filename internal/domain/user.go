package domain

import "time"

type User struct {
	ID              int64     `json:"id"`
	Email           string    `json:"email" validate:"required,email"`
	PasswordHash    string    `json:"-"`
	FirstName       string    `json:"firstName,omitempty"`
	LastName        string    `json:"lastName,omitempty"`
	ProfileImageURL string    `json:"profileImageUrl,omitempty"`
	GoogleID        string    `json:"-"`
	Phone           string    `json:"phone,omitempty"`
	IsAdmin         bool      `json:"isAdmin"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}
