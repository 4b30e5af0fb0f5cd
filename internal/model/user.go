package model

import "time"

// User is an account that owns résumés. The password hash never leaves the server.
type User struct {
	ID             string    `json:"_id"`
	Email          string    `json:"email"`
	FullName       string    `json:"full_name"`
	HashedPassword string    `json:"-"`
	CreatedAt      time.Time `json:"created_at"`
}
