package stream

import (
	"github.com/stretchr/testify/mock"

	"linearcode/models"
)

// MockStreamService is a mock implementation of the services.StreamService interface
type MockStreamService struct {
	mock.Mock
}

func (m *MockStreamService) Start() {
	m.Called()
}

func (m *MockStreamService) Stop() {
	m.Called()
}

func (m *MockStreamService) IsActive() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *MockStreamService) StreamEvent(
	eventType string,
	eventContext models.EventContext,
	command *models.StreamEventCommand,
) (*models.StreamEvent, error) {
	args := m.Called(eventType, eventContext, command)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.StreamEvent), args.Error(1)
}

func (m *MockStreamService) History(limit int) []models.StreamEvent {
	args := m.Called(limit)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]models.StreamEvent)
}

func (m *MockStreamService) SetFilters(filters []string) {
	m.Called(filters)
}

func (m *MockStreamService) Filters() []string {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]string)
}

func (m *MockStreamService) ClearFilters() {
	m.Called()
}
