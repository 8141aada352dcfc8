package repository

import (
	"context"

	"formsapi/internal/model"
)

// ContactRepository defines data access for contact submissions using SQL queries only.
// No business logic here, strictly persistence operations.
type ContactRepository interface {
	// Create inserts a new contact record.
	// The caller provides ID and CreatedAt; the stored record is returned.
	Create(ctx context.Context, contact *model.Contact) (*model.Contact, error)

	// ListAll returns every contact, newest first.
	ListAll(ctx context.Context) ([]model.Contact, error)
}
