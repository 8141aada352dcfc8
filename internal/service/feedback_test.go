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

func validFeedbackRequest() SubmitFeedbackRequest {
	return SubmitFeedbackRequest{
		Name:              "Mira",
		Mobile:            "9123456780",
		OverallExperience: "Great",
		WhatDidYouTry:     []string{"Pizza", "Pasta"},
		FoodQuality:       "Good",
		ServiceStaff:      "Friendly",
		WhatsappUpdates:   "No",
	}
}

func TestSubmitFeedbackRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *SubmitFeedbackRequest)
		wantErr bool
	}{
		{
			name:   "valid without whatsapp opt-in",
			mutate: func(r *SubmitFeedbackRequest) {},
		},
		{
			name: "valid with whatsapp opt-in and 10-digit number",
			mutate: func(r *SubmitFeedbackRequest) {
				r.WhatsappUpdates = "Yes"
				r.WhatsappNumber = "9876543210"
			},
		},
		{
			name:   "comments are optional",
			mutate: func(r *SubmitFeedbackRequest) { r.Comments = "" },
		},
		{
			name:    "missing name",
			mutate:  func(r *SubmitFeedbackRequest) { r.Name = "" },
			wantErr: true,
		},
		{
			name:    "missing mobile",
			mutate:  func(r *SubmitFeedbackRequest) { r.Mobile = "" },
			wantErr: true,
		},
		{
			name:    "missing overall experience",
			mutate:  func(r *SubmitFeedbackRequest) { r.OverallExperience = "" },
			wantErr: true,
		},
		{
			name:    "missing food quality",
			mutate:  func(r *SubmitFeedbackRequest) { r.FoodQuality = "" },
			wantErr: true,
		},
		{
			name:    "missing service staff",
			mutate:  func(r *SubmitFeedbackRequest) { r.ServiceStaff = "" },
			wantErr: true,
		},
		{
			name:    "missing whatsapp updates choice",
			mutate:  func(r *SubmitFeedbackRequest) { r.WhatsappUpdates = "" },
			wantErr: true,
		},
		{
			name:    "nil whatDidYouTry",
			mutate:  func(r *SubmitFeedbackRequest) { r.WhatDidYouTry = nil },
			wantErr: true,
		},
		{
			name:    "empty whatDidYouTry",
			mutate:  func(r *SubmitFeedbackRequest) { r.WhatDidYouTry = []string{} },
			wantErr: true,
		},
		{
			name:    "blank entry in whatDidYouTry",
			mutate:  func(r *SubmitFeedbackRequest) { r.WhatDidYouTry = []string{""} },
			wantErr: true,
		},
		{
			name: "opt-in with missing number",
			mutate: func(r *SubmitFeedbackRequest) {
				r.WhatsappUpdates = "Yes"
				r.WhatsappNumber = ""
			},
			wantErr: true,
		},
		{
			name: "opt-in with short number",
			mutate: func(r *SubmitFeedbackRequest) {
				r.WhatsappUpdates = "Yes"
				r.WhatsappNumber = "12345"
			},
			wantErr: true,
		},
		{
			name: "opt-in with long number",
			mutate: func(r *SubmitFeedbackRequest) {
				r.WhatsappUpdates = "Yes"
				r.WhatsappNumber = "98765432100"
			},
			wantErr: true,
		},
		{
			name: "opt-in with non-digit number",
			mutate: func(r *SubmitFeedbackRequest) {
				r.WhatsappUpdates = "Yes"
				r.WhatsappNumber = "98765abcde"
			},
			wantErr: true,
		},
		{
			name: "declined opt-in leaves number unconstrained",
			mutate: func(r *SubmitFeedbackRequest) {
				r.WhatsappUpdates = "No"
				r.WhatsappNumber = "not-a-number"
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validFeedbackRequest()
			tt.mutate(&req)

			err := req.Validate()

			if tt.wantErr {
				assert.ErrorIs(t, err, ErrValidation)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFeedbackService_Submit(t *testing.T) {
	ctx := context.Background()

	t.Run("persists with server-assigned timestamps", func(t *testing.T) {
		mRepo := new(repoMocks.MockFeedbackRepository)
		svc := NewFeedbackService(mRepo)

		mRepo.On("Create", ctx, mock.MatchedBy(func(f *model.Feedback) bool {
			return f.ID != "" && !f.CreatedAt.IsZero() && f.UpdatedAt.Equal(f.CreatedAt) &&
				f.Name == "Mira" && len(f.WhatDidYouTry) == 2
		})).Return(&model.Feedback{ID: "stored-id"}, nil)

		stored, err := svc.Submit(ctx, validFeedbackRequest())

		assert.NoError(t, err)
		assert.Equal(t, "stored-id", stored.ID)
		mRepo.AssertExpectations(t)
	})

	t.Run("does not persist on validation failure", func(t *testing.T) {
		mRepo := new(repoMocks.MockFeedbackRepository)
		svc := NewFeedbackService(mRepo)

		req := validFeedbackRequest()
		req.Name = ""

		stored, err := svc.Submit(ctx, req)

		assert.ErrorIs(t, err, ErrValidation)
		assert.Nil(t, stored)
		mRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("propagates persistence failure", func(t *testing.T) {
		mRepo := new(repoMocks.MockFeedbackRepository)
		svc := NewFeedbackService(mRepo)

		mRepo.On("Create", ctx, mock.Anything).Return(nil, errors.New("db fail"))

		stored, err := svc.Submit(ctx, validFeedbackRequest())

		assert.Error(t, err)
		assert.Nil(t, stored)
		mRepo.AssertExpectations(t)
	})
}

func TestFeedbackService_ListAll(t *testing.T) {
	ctx := context.Background()
	mRepo := new(repoMocks.MockFeedbackRepository)
	svc := NewFeedbackService(mRepo)

	items := []model.Feedback{{ID: "2"}, {ID: "1"}}
	mRepo.On("ListAll", ctx).Return(items, nil)

	got, err := svc.ListAll(ctx)

	assert.NoError(t, err)
	assert.Equal(t, items, got)
	mRepo.AssertExpectations(t)
}
