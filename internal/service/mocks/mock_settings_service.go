package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockSettingsService struct {
	mock.Mock
}

func (m *MockSettingsService) All(ctx context.Context) (map[string]*string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]*string), args.Error(1)
}
