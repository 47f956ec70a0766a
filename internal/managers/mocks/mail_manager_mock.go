package mocks

import "github.com/stretchr/testify/mock"

type MockMailManager struct {
	mock.Mock
}

func (m *MockMailManager) SendEventConfirmationMail(email, title, when, location string) error {
	args := m.Called(email, title, when, location)
	return args.Error(0)
}
