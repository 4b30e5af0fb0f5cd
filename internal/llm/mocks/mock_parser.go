package mocks

import (
	"context"

	"resumeapi/internal/llm"

	"github.com/stretchr/testify/mock"
)

type MockParser struct {
	mock.Mock
}

var _ llm.Parser = (*MockParser)(nil)

func (m *MockParser) Parse(ctx context.Context, profileText string) llm.Result {
	args := m.Called(ctx, profileText)
	return args.Get(0).(llm.Result)
}
