package service

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"formsapi/internal/model"
	"formsapi/internal/repository"
)

// SubmitFeedbackRequest is the typed payload for a feedback form submission.
type SubmitFeedbackRequest struct {
	Name              string   `json:"name" form:"name" validate:"required"`
	Mobile            string   `json:"mobile" form:"mobile" validate:"required"`
	OverallExperience string   `json:"overallExperience" form:"overallExperience" validate:"required"`
	WhatDidYouTry     []string `json:"whatDidYouTry" form:"whatDidYouTry" validate:"required,min=1,dive,required"`
	Comments          string   `json:"comments" form:"comments"`
	FoodQuality       string   `json:"foodQuality" form:"foodQuality" validate:"required"`
	ServiceStaff      string   `json:"serviceStaff" form:"serviceStaff" validate:"required"`
	WhatsappUpdates   string   `json:"whatsappUpdates" form:"whatsappUpdates" validate:"required"`
	WhatsappNumber    string   `json:"whatsappNumber" form:"whatsappNumber"`
}

var validate = validator.New()

var whatsappNumberRe = regexp.MustCompile(`^\d{10}$`)

// Validate applies the feedback rules. It is pure: no store access, no side
// effects. Any violation collapses into a single ErrValidation outcome.
func (r SubmitFeedbackRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	// WhatsApp number is only constrained when updates were opted into.
	if r.WhatsappUpdates == "Yes" && !whatsappNumberRe.MatchString(r.WhatsappNumber) {
		return fmt.Errorf("%w: whatsappNumber must be a 10-digit number", ErrValidation)
	}
	return nil
}

// FeedbackService defines the use cases for feedback submissions.
type FeedbackService interface {
	// Submit validates and persists a feedback submission. Validation failures
	// surface as ErrValidation and nothing is written.
	Submit(ctx context.Context, req SubmitFeedbackRequest) (*model.Feedback, error)

	// ListAll returns every stored feedback record, newest first.
	ListAll(ctx context.Context) ([]model.Feedback, error)
}

type feedbackService struct {
	repo repository.FeedbackRepository
}

// NewFeedbackService constructs a new FeedbackService.
func NewFeedbackService(repo repository.FeedbackRepository) FeedbackService {
	return &feedbackService{repo: repo}
}

func (s *feedbackService) Submit(ctx context.Context, req SubmitFeedbackRequest) (*model.Feedback, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	feedback := &model.Feedback{
		ID:                uuid.New().String(),
		Name:              req.Name,
		Mobile:            req.Mobile,
		OverallExperience: req.OverallExperience,
		WhatDidYouTry:     req.WhatDidYouTry,
		Comments:          req.Comments,
		FoodQuality:       req.FoodQuality,
		ServiceStaff:      req.ServiceStaff,
		WhatsappUpdates:   req.WhatsappUpdates,
		WhatsappNumber:    req.WhatsappNumber,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	return s.repo.Create(ctx, feedback)
}

func (s *feedbackService) ListAll(ctx context.Context) ([]model.Feedback, error) {
	return s.repo.ListAll(ctx)
}
