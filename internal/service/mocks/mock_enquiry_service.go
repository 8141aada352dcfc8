package mocks

import (
	"context"

	"formsapi/internal/model"
	"formsapi/internal/service"
	"github.com/stretchr/testify/mock"
)

type MockEnquiryService struct {
	mock.Mock
}

func (m *MockEnquiryService) Submit(ctx context.Context, req service.SubmitEnquiryRequest, file *service.FileUpload) (*model.Enquiry, error) {
	args := m.Called(ctx, req, file)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Enquiry), args.Error(1)
}

func (m *MockEnquiryService) ListAll(ctx context.Context) ([]model.Enquiry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Enquiry), args.Error(1)
}

func (m *MockEnquiryService) GetFile(ctx context.Context, id string) ([]byte, string, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).([]byte), args.String(1), args.Error(2)
}
