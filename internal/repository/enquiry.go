package repository

import (
	"context"

	"formsapi/internal/model"
)

// EnquiryRepository defines data access for enquiry submissions.
type EnquiryRepository interface {
	// Create inserts a new enquiry record with its attachment metadata, if any.
	Create(ctx context.Context, enquiry *model.Enquiry) (*model.Enquiry, error)

	// ListAll returns every enquiry, newest first. File bytes are never part of
	// the row; only attachment metadata is selected.
	ListAll(ctx context.Context) ([]model.Enquiry, error)

	// FindFileByID selects only the attachment projection (storage path and
	// MIME type) for the given enquiry. Returns sql.ErrNoRows when the record
	// does not exist; both values are empty when no file was attached.
	FindFileByID(ctx context.Context, id string) (storagePath, fileType string, err error)
}
