package mocks

import (
	"context"

	"calendar-assistant/internal/schemas"

	"github.com/stretchr/testify/mock"
)

// MockExtractionManager is a mock of the ExtractionManager.
// It is used to simulate model extraction in tests without calling Gemini.
type MockExtractionManager struct {
	mock.Mock
}

func (m *MockExtractionManager) ExtractEventDetails(ctx context.Context, text string) (schemas.EventDetails, error) {
	args := m.Called(ctx, text)
	return args.Get(0).(schemas.EventDetails), args.Error(1)
}
