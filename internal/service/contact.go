package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"formsapi/internal/model"
	"formsapi/internal/repository"
)

// SubmitContactRequest is the typed payload for a contact form submission.
// Every field is optional free text; unrecognized JSON fields are ignored.
type SubmitContactRequest struct {
	Name    string `json:"name" form:"name"`
	Phone   string `json:"phone" form:"phone"`
	Email   string `json:"email" form:"email"`
	Country string `json:"country" form:"country"`
	Message string `json:"message" form:"message"`
}

// ContactService defines the use cases for contact submissions.
type ContactService interface {
	// Submit persists a contact submission. No validation applies: any subset
	// of fields, including none, is accepted.
	Submit(ctx context.Context, req SubmitContactRequest) (*model.Contact, error)

	// ListAll returns every stored contact, newest first.
	ListAll(ctx context.Context) ([]model.Contact, error)
}

type contactService struct {
	repo repository.ContactRepository
}

// NewContactService constructs a new ContactService.
func NewContactService(repo repository.ContactRepository) ContactService {
	return &contactService{repo: repo}
}

func (s *contactService) Submit(ctx context.Context, req SubmitContactRequest) (*model.Contact, error) {
	contact := &model.Contact{
		ID:        uuid.New().String(),
		Name:      req.Name,
		Phone:     req.Phone,
		Email:     req.Email,
		Country:   req.Country,
		Message:   req.Message,
		CreatedAt: time.Now().UTC(),
	}
	return s.repo.Create(ctx, contact)
}

func (s *contactService) ListAll(ctx context.Context) ([]model.Contact, error) {
	return s.repo.ListAll(ctx)
}
