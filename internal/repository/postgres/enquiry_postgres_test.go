package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"formsapi/internal/model"
	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func enquiryColumns() []string {
	return []string{"id", "name", "phone", "email", "country", "message", "file_name", "storage_path", "file_type", "file_size", "created_at"}
}

func TestEnquiryPostgres_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewEnquiryPostgres(db)
	ctx := context.Background()

	now := time.Now().UTC()
	enquiry := &model.Enquiry{
		ID:          "test-uuid",
		Name:        "Ravi",
		Phone:       "9876543210",
		FileName:    "brochure.pdf",
		StoragePath: "enquiries/uuid.pdf",
		FileType:    "application/pdf",
		FileSize:    123,
		CreatedAt:   now,
	}

	rows := sqlmock.NewRows(enquiryColumns()).
		AddRow(enquiry.ID, enquiry.Name, enquiry.Phone, "", "", "", enquiry.FileName, enquiry.StoragePath, enquiry.FileType, enquiry.FileSize, enquiry.CreatedAt)

	mock.ExpectQuery("INSERT INTO enquiries").
		WithArgs(enquiry.ID, enquiry.Name, enquiry.Phone, "", "", "", enquiry.FileName, enquiry.StoragePath, enquiry.FileType, enquiry.FileSize, enquiry.CreatedAt).
		WillReturnRows(rows)

	result, err := repo.Create(ctx, enquiry)

	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.Equal(t, enquiry.StoragePath, result.StoragePath)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnquiryPostgres_ListAll(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewEnquiryPostgres(db)
	ctx := context.Background()

	now := time.Now().UTC()
	rows := sqlmock.NewRows(enquiryColumns()).
		AddRow("id-2", "Newer", "", "", "", "", "photo.png", "enquiries/a.png", "image/png", 10, now).
		AddRow("id-1", "Older", "", "", "", "", "", "", "", 0, now.Add(-time.Hour))

	mock.ExpectQuery("SELECT (.+) FROM enquiries ORDER BY created_at DESC").
		WillReturnRows(rows)

	items, err := repo.ListAll(ctx)

	assert.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Equal(t, "Newer", items[0].Name)
	assert.True(t, items[0].HasFile())
	assert.False(t, items[1].HasFile())
}

func TestEnquiryPostgres_FindFileByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewEnquiryPostgres(db)
	ctx := context.Background()

	t.Run("found with file", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"storage_path", "file_type"}).
			AddRow("enquiries/a.png", "image/png")

		mock.ExpectQuery("SELECT storage_path, file_type FROM enquiries WHERE id = ?").
			WithArgs("test-id").
			WillReturnRows(rows)

		storagePath, fileType, err := repo.FindFileByID(ctx, "test-id")

		assert.NoError(t, err)
		assert.Equal(t, "enquiries/a.png", storagePath)
		assert.Equal(t, "image/png", fileType)
	})

	t.Run("found without file", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"storage_path", "file_type"}).
			AddRow("", "")

		mock.ExpectQuery("SELECT storage_path, file_type FROM enquiries WHERE id = ?").
			WithArgs("plain-id").
			WillReturnRows(rows)

		storagePath, fileType, err := repo.FindFileByID(ctx, "plain-id")

		assert.NoError(t, err)
		assert.Empty(t, storagePath)
		assert.Empty(t, fileType)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT storage_path, file_type FROM enquiries WHERE id = ?").
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		_, _, err := repo.FindFileByID(ctx, "missing")

		assert.ErrorIs(t, err, sql.ErrNoRows)
	})
}
