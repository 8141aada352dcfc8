package postgres

import (
	"context"
	"database/sql"

	"formsapi/internal/model"
	"formsapi/internal/repository"
)

// EnquiryPostgres is a PostgreSQL implementation of repository.EnquiryRepository.
type EnquiryPostgres struct {
	db *sql.DB
}

// NewEnquiryPostgres creates a new EnquiryPostgres repository.
func NewEnquiryPostgres(db *sql.DB) *EnquiryPostgres {
	return &EnquiryPostgres{db: db}
}

var _ repository.EnquiryRepository = (*EnquiryPostgres)(nil)

// Create inserts a new enquiry row and returns the stored record.
func (r *EnquiryPostgres) Create(ctx context.Context, enquiry *model.Enquiry) (*model.Enquiry, error) {
	const q = `
		INSERT INTO enquiries (id, name, phone, email, country, message, file_name, storage_path, file_type, file_size, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, name, phone, email, country, message, file_name, storage_path, file_type, file_size, created_at
	`
	row := r.db.QueryRowContext(ctx, q,
		enquiry.ID,
		enquiry.Name,
		enquiry.Phone,
		enquiry.Email,
		enquiry.Country,
		enquiry.Message,
		enquiry.FileName,
		enquiry.StoragePath,
		enquiry.FileType,
		enquiry.FileSize,
		enquiry.CreatedAt,
	)
	var out model.Enquiry
	if err := row.Scan(
		&out.ID,
		&out.Name,
		&out.Phone,
		&out.Email,
		&out.Country,
		&out.Message,
		&out.FileName,
		&out.StoragePath,
		&out.FileType,
		&out.FileSize,
		&out.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListAll returns all enquiries ordered by creation time, newest first.
// Only attachment metadata is selected; the bytes live in object storage.
func (r *EnquiryPostgres) ListAll(ctx context.Context) ([]model.Enquiry, error) {
	const q = `
		SELECT id, name, phone, email, country, message, file_name, storage_path, file_type, file_size, created_at
		FROM enquiries
		ORDER BY created_at DESC, id DESC
	`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Enquiry, 0)
	for rows.Next() {
		var e model.Enquiry
		if err := rows.Scan(
			&e.ID,
			&e.Name,
			&e.Phone,
			&e.Email,
			&e.Country,
			&e.Message,
			&e.FileName,
			&e.StoragePath,
			&e.FileType,
			&e.FileSize,
			&e.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

// FindFileByID selects only the attachment projection for one enquiry.
func (r *EnquiryPostgres) FindFileByID(ctx context.Context, id string) (string, string, error) {
	const q = `
		SELECT storage_path, file_type
		FROM enquiries
		WHERE id = $1
	`
	var storagePath, fileType string
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&storagePath, &fileType); err != nil {
		return "", "", err
	}
	return storagePath, fileType, nil
}
