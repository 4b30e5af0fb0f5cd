package mocks

import (
	"context"
	"io"

	"resumeapi/internal/model"
	"resumeapi/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockResumeService struct {
	mock.Mock
}

var _ service.ResumeService = (*MockResumeService)(nil)

func (m *MockResumeService) Create(ctx context.Context, userID string, content model.ResumeContent) (*model.Resume, error) {
	args := m.Called(ctx, userID, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Resume), args.Error(1)
}

func (m *MockResumeService) List(ctx context.Context, userID string) ([]model.Resume, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Resume), args.Error(1)
}

func (m *MockResumeService) Get(ctx context.Context, id, userID string) (*model.Resume, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Resume), args.Error(1)
}

func (m *MockResumeService) Update(ctx context.Context, id, userID string, content model.ResumeContent) (*model.Resume, error) {
	args := m.Called(ctx, id, userID, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Resume), args.Error(1)
}

func (m *MockResumeService) Delete(ctx context.Context, id, userID string) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

func (m *MockResumeService) UploadProfilePicture(ctx context.Context, id, userID string, r io.Reader, filename, contentType string, size int64) (string, error) {
	args := m.Called(ctx, id, userID, r, filename, contentType, size)
	return args.String(0), args.Error(1)
}

func (m *MockResumeService) ProfilePicture(ctx context.Context, id, userID string) (*service.ProfilePicture, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ProfilePicture), args.Error(1)
}
