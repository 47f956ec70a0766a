package mocks

import (
	"context"

	"calendar-assistant/internal/schemas"

	"github.com/stretchr/testify/mock"
)

// MockCalendarManager is a mock of the CalendarManager.
// It simulates the calendar backend in tests.
type MockCalendarManager struct {
	mock.Mock
}

func (m *MockCalendarManager) CheckConflicts(ctx context.Context, start, end string) ([]schemas.ConflictDTO, error) {
	args := m.Called(ctx, start, end)
	return args.Get(0).([]schemas.ConflictDTO), args.Error(1)
}

func (m *MockCalendarManager) InsertEvent(ctx context.Context, details schemas.EventDetails) (string, error) {
	args := m.Called(ctx, details)
	return args.String(0), args.Error(1)
}
