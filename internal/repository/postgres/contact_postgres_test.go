package postgres

import (
	"context"
	"testing"
	"time"

	"formsapi/internal/model"
	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestContactPostgres_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewContactPostgres(db)
	ctx := context.Background()

	now := time.Now().UTC()
	contact := &model.Contact{
		ID:        "test-uuid",
		Name:      "Asha",
		Phone:     "9876543210",
		Email:     "asha@example.com",
		Country:   "IN",
		Message:   "hello",
		CreatedAt: now,
	}

	rows := sqlmock.NewRows([]string{"id", "name", "phone", "email", "country", "message", "created_at"}).
		AddRow(contact.ID, contact.Name, contact.Phone, contact.Email, contact.Country, contact.Message, contact.CreatedAt)

	mock.ExpectQuery("INSERT INTO contacts").
		WithArgs(contact.ID, contact.Name, contact.Phone, contact.Email, contact.Country, contact.Message, contact.CreatedAt).
		WillReturnRows(rows)

	result, err := repo.Create(ctx, contact)

	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.Equal(t, contact.ID, result.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContactPostgres_ListAll(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewContactPostgres(db)
	ctx := context.Background()

	t.Run("returns rows newest first", func(t *testing.T) {
		now := time.Now().UTC()
		rows := sqlmock.NewRows([]string{"id", "name", "phone", "email", "country", "message", "created_at"}).
			AddRow("id-2", "Newer", "", "", "", "", now).
			AddRow("id-1", "Older", "", "", "", "", now.Add(-time.Hour))

		mock.ExpectQuery("SELECT (.+) FROM contacts ORDER BY created_at DESC").
			WillReturnRows(rows)

		items, err := repo.ListAll(ctx)

		assert.NoError(t, err)
		assert.Len(t, items, 2)
		assert.Equal(t, "Newer", items[0].Name)
		assert.Equal(t, "Older", items[1].Name)
	})

	t.Run("empty table yields empty slice", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM contacts ORDER BY created_at DESC").
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "phone", "email", "country", "message", "created_at"}))

		items, err := repo.ListAll(ctx)

		assert.NoError(t, err)
		assert.NotNil(t, items)
		assert.Empty(t, items)
	})
}
