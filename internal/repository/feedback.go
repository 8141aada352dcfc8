package repository

import (
	"context"

	"formsapi/internal/model"
)

// FeedbackRepository defines data access for feedback submissions.
type FeedbackRepository interface {
	// Create inserts a new feedback record and returns the stored record.
	Create(ctx context.Context, feedback *model.Feedback) (*model.Feedback, error)

	// ListAll returns every feedback record, newest first.
	ListAll(ctx context.Context) ([]model.Feedback, error)
}
