package model

import "time"

// Contact represents a submitted contact form.
// This is a pure domain model with no database-specific dependencies or tags.
// All form fields are optional free text; CreatedAt is server-assigned.
type Contact struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	Country   string    `json:"country"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}
