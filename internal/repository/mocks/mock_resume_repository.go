package mocks

import (
	"context"
	"time"

	"resumeapi/internal/model"
	"resumeapi/internal/repository"

	"github.com/stretchr/testify/mock"
)

type MockResumeRepository struct {
	mock.Mock
}

var _ repository.ResumeRepository = (*MockResumeRepository)(nil)

func (m *MockResumeRepository) Create(ctx context.Context, r *model.Resume) (*model.Resume, error) {
	args := m.Called(ctx, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Resume), args.Error(1)
}

func (m *MockResumeRepository) FindByID(ctx context.Context, id, userID string) (*model.Resume, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Resume), args.Error(1)
}

func (m *MockResumeRepository) ListByUser(ctx context.Context, userID string) ([]model.Resume, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Resume), args.Error(1)
}

func (m *MockResumeRepository) Update(ctx context.Context, id, userID string, content model.ResumeContent, updatedAt time.Time) (*model.Resume, error) {
	args := m.Called(ctx, id, userID, content, updatedAt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Resume), args.Error(1)
}

func (m *MockResumeRepository) Delete(ctx context.Context, id, userID string) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

func (m *MockResumeRepository) SetProfilePicture(ctx context.Context, id, userID, path string) error {
	args := m.Called(ctx, id, userID, path)
	return args.Error(0)
}
