package dedup

import "github.com/stretchr/testify/mock"

// MockDedupService is a mock implementation of the services.DedupService interface
type MockDedupService struct {
	mock.Mock
}

func (m *MockDedupService) CheckAndMark(deliveryID string) bool {
	args := m.Called(deliveryID)
	return args.Bool(0)
}
