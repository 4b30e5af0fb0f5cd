package mocks

import (
	"context"

	"resumeapi/internal/model"
	"resumeapi/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockProfileService struct {
	mock.Mock
}

var _ service.ProfileService = (*MockProfileService)(nil)

func (m *MockProfileService) Parse(ctx context.Context, profileText string) (model.ParsedProfile, error) {
	args := m.Called(ctx, profileText)
	return args.Get(0).(model.ParsedProfile), args.Error(1)
}
