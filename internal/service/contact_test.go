package service

import (
	"context"
	"errors"
	"testing"

	"formsapi/internal/model"
	repoMocks "formsapi/internal/repository/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestContactService_Submit(t *testing.T) {
	ctx := context.Background()

	t.Run("assigns id and createdAt on the server", func(t *testing.T) {
		mRepo := new(repoMocks.MockContactRepository)
		svc := NewContactService(mRepo)

		mRepo.On("Create", ctx, mock.MatchedBy(func(c *model.Contact) bool {
			return c.ID != "" && !c.CreatedAt.IsZero() && c.Name == "Asha" && c.Email == "asha@example.com"
		})).Return(&model.Contact{ID: "stored-id"}, nil)

		stored, err := svc.Submit(ctx, SubmitContactRequest{Name: "Asha", Email: "asha@example.com"})

		assert.NoError(t, err)
		assert.Equal(t, "stored-id", stored.ID)
		mRepo.AssertExpectations(t)
	})

	t.Run("accepts an empty submission", func(t *testing.T) {
		mRepo := new(repoMocks.MockContactRepository)
		svc := NewContactService(mRepo)

		mRepo.On("Create", ctx, mock.MatchedBy(func(c *model.Contact) bool {
			return c.ID != "" && c.Name == "" && c.Message == ""
		})).Return(&model.Contact{ID: "stored-id"}, nil)

		_, err := svc.Submit(ctx, SubmitContactRequest{})

		assert.NoError(t, err)
		mRepo.AssertExpectations(t)
	})

	t.Run("propagates persistence failure", func(t *testing.T) {
		mRepo := new(repoMocks.MockContactRepository)
		svc := NewContactService(mRepo)

		mRepo.On("Create", ctx, mock.Anything).Return(nil, errors.New("db fail"))

		stored, err := svc.Submit(ctx, SubmitContactRequest{Name: "Asha"})

		assert.Error(t, err)
		assert.Nil(t, stored)
		mRepo.AssertExpectations(t)
	})
}

func TestContactService_ListAll(t *testing.T) {
	ctx := context.Background()
	mRepo := new(repoMocks.MockContactRepository)
	svc := NewContactService(mRepo)

	items := []model.Contact{{ID: "2"}, {ID: "1"}}
	mRepo.On("ListAll", ctx).Return(items, nil)

	got, err := svc.ListAll(ctx)

	assert.NoError(t, err)
	assert.Equal(t, items, got)
	mRepo.AssertExpectations(t)
}
