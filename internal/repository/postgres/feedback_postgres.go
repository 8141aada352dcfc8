package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"formsapi/internal/model"
	"formsapi/internal/repository"
)

// FeedbackPostgres is a PostgreSQL implementation of repository.FeedbackRepository.
// The what_did_you_try selection is stored as a JSONB array.
type FeedbackPostgres struct {
	db *sql.DB
}

// NewFeedbackPostgres creates a new FeedbackPostgres repository.
func NewFeedbackPostgres(db *sql.DB) *FeedbackPostgres {
	return &FeedbackPostgres{db: db}
}

var _ repository.FeedbackRepository = (*FeedbackPostgres)(nil)

// Create inserts a new feedback row and returns the stored record.
func (r *FeedbackPostgres) Create(ctx context.Context, feedback *model.Feedback) (*model.Feedback, error) {
	tried, err := json.Marshal(feedback.WhatDidYouTry)
	if err != nil {
		return nil, fmt.Errorf("marshal what_did_you_try: %w", err)
	}

	const q = `
		INSERT INTO feedbacks (id, name, mobile, overall_experience, what_did_you_try, comments, food_quality, service_staff, whatsapp_updates, whatsapp_number, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, name, mobile, overall_experience, what_did_you_try, comments, food_quality, service_staff, whatsapp_updates, whatsapp_number, created_at, updated_at
	`
	row := r.db.QueryRowContext(ctx, q,
		feedback.ID,
		feedback.Name,
		feedback.Mobile,
		feedback.OverallExperience,
		tried,
		feedback.Comments,
		feedback.FoodQuality,
		feedback.ServiceStaff,
		feedback.WhatsappUpdates,
		feedback.WhatsappNumber,
		feedback.CreatedAt,
		feedback.UpdatedAt,
	)
	return scanFeedback(row)
}

// ListAll returns all feedback records ordered by creation time, newest first.
func (r *FeedbackPostgres) ListAll(ctx context.Context) ([]model.Feedback, error) {
	const q = `
		SELECT id, name, mobile, overall_experience, what_did_you_try, comments, food_quality, service_staff, whatsapp_updates, whatsapp_number, created_at, updated_at
		FROM feedbacks
		ORDER BY created_at DESC, id DESC
	`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Feedback, 0)
	for rows.Next() {
		f, err := scanFeedback(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

// rowScanner covers *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanFeedback(row rowScanner) (*model.Feedback, error) {
	var f model.Feedback
	var tried []byte
	if err := row.Scan(
		&f.ID,
		&f.Name,
		&f.Mobile,
		&f.OverallExperience,
		&tried,
		&f.Comments,
		&f.FoodQuality,
		&f.ServiceStaff,
		&f.WhatsappUpdates,
		&f.WhatsappNumber,
		&f.CreatedAt,
		&f.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(tried, &f.WhatDidYouTry); err != nil {
		return nil, fmt.Errorf("unmarshal what_did_you_try: %w", err)
	}
	return &f, nil
}
