package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"formsapi/internal/model"
	"formsapi/internal/repository"
	"formsapi/internal/storage"
)

// SubmitEnquiryRequest is the typed payload for an enquiry form submission.
type SubmitEnquiryRequest struct {
	Name    string `json:"name" form:"name"`
	Phone   string `json:"phone" form:"phone"`
	Email   string `json:"email" form:"email"`
	Country string `json:"country" form:"country"`
	Message string `json:"message" form:"message"`
}

// FileUpload carries one uploaded attachment. Bytes are passed through
// unmodified; ContentType is the declared MIME type and is never re-validated
// against the actual content.
type FileUpload struct {
	Reader      io.Reader
	Filename    string
	ContentType string
	Size        int64
}

// EnquiryService defines the use cases for enquiry submissions.
type EnquiryService interface {
	// Submit persists an enquiry, uploading the optional attachment to object
	// storage first and rolling the object back if the record insert fails.
	// Attachments larger than MaxUploadSize are rejected with ErrFileTooLarge
	// before any write.
	Submit(ctx context.Context, req SubmitEnquiryRequest, file *FileUpload) (*model.Enquiry, error)

	// ListAll returns every stored enquiry, newest first, without file bytes.
	ListAll(ctx context.Context) ([]model.Enquiry, error)

	// GetFile returns the attachment bytes and stored MIME type for one
	// enquiry. ErrNotFound covers both an unknown id and a record without an
	// attachment.
	GetFile(ctx context.Context, id string) ([]byte, string, error)
}

type enquiryService struct {
	store storage.Storage
	repo  repository.EnquiryRepository
}

// NewEnquiryService constructs a new EnquiryService.
func NewEnquiryService(store storage.Storage, repo repository.EnquiryRepository) EnquiryService {
	return &enquiryService{store: store, repo: repo}
}

func (s *enquiryService) Submit(ctx context.Context, req SubmitEnquiryRequest, file *FileUpload) (*model.Enquiry, error) {
	enquiry := &model.Enquiry{
		ID:        uuid.New().String(),
		Name:      req.Name,
		Phone:     req.Phone,
		Email:     req.Email,
		Country:   req.Country,
		Message:   req.Message,
		CreatedAt: time.Now().UTC(),
	}

	if file == nil {
		return s.repo.Create(ctx, enquiry)
	}

	if file.Reader == nil {
		return nil, fmt.Errorf("%w: file reader is nil", ErrValidation)
	}
	if file.Size > MaxUploadSize {
		return nil, ErrFileTooLarge
	}

	// Object key is UUID + original extension, under a per-kind prefix
	ext := filepath.Ext(file.Filename)
	key := filepath.ToSlash(filepath.Join("enquiries", uuid.New().String()+ext))

	objInfo, err := s.store.Put(ctx, key, file.Reader, storage.PutObjectOptions{
		Size:        file.Size,
		ContentType: file.ContentType,
		Metadata: map[string]string{
			"original-filename": file.Filename,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("upload to storage: %w", err)
	}

	enquiry.FileName = file.Filename
	enquiry.StoragePath = objInfo.Key
	enquiry.FileType = file.ContentType
	enquiry.FileSize = objInfo.Size

	stored, err := s.repo.Create(ctx, enquiry)
	if err != nil {
		// Rollback: delete the object from storage
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			return nil, fmt.Errorf("db save failed: %v; rollback delete failed: %v", err, delErr)
		}
		return nil, fmt.Errorf("db save failed: %w", err)
	}
	return stored, nil
}

func (s *enquiryService) ListAll(ctx context.Context) ([]model.Enquiry, error) {
	return s.repo.ListAll(ctx)
}

// GetFile reads the whole attachment into memory; attachments are bounded by
// MaxUploadSize so this is at most 2 MiB.
func (s *enquiryService) GetFile(ctx context.Context, id string) ([]byte, string, error) {
	storagePath, fileType, err := s.repo.FindFileByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, "", ErrNotFound
		}
		return nil, "", err
	}
	if storagePath == "" {
		return nil, "", ErrNotFound
	}

	rc, _, err := s.store.Get(ctx, storagePath)
	if err != nil {
		return nil, "", fmt.Errorf("get from storage: %w", err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, "", fmt.Errorf("read from storage: %w", err)
	}
	return data, fileType, nil
}
