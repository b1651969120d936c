package domain

import "time"

// User is a clinic account held in the local user store.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Name         string    `json:"name"`
	Email        string    `json:"email,omitempty"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	ImageURL     string    `json:"image_url,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Identity projects the account onto the session identity.
func (u *User) Identity() Identity {
	name := u.Name
	if name == "" {
		name = u.Username
	}
	return Identity{
		ID:       u.ID,
		Name:     name,
		Email:    u.Email,
		Role:     u.Role,
		ImageURL: u.ImageURL,
	}
}
