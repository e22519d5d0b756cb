package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	apperrors "campushelper/internal/errors"
	"campushelper/internal/model"
)

// MockBusRepository is a mock implementation of BusRepository.
type MockBusRepository struct {
	mock.Mock
}

func (m *MockBusRepository) Create(ctx context.Context, schedule *model.BusSchedule) error {
	args := m.Called(ctx, schedule)
	return args.Error(0)
}

func (m *MockBusRepository) List(ctx context.Context) ([]model.BusSchedule, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.BusSchedule), args.Error(1)
}

func (m *MockBusRepository) ListByRoute(ctx context.Context, route string) ([]model.BusSchedule, error) {
	args := m.Called(ctx, route)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.BusSchedule), args.Error(1)
}

func (m *MockBusRepository) ListRoutes(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockBusRepository) ExistsSchedule(ctx context.Context, route, timeSlot, busNo string) (bool, error) {
	args := m.Called(ctx, route, timeSlot, busNo)
	return args.Bool(0), args.Error(1)
}

func (m *MockBusRepository) Update(ctx context.Context, id uint, patch model.BusSchedulePatch) (*model.BusSchedule, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.BusSchedule), args.Error(1)
}

func (m *MockBusRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestBusService_Create(t *testing.T) {
	mockRepo := new(MockBusRepository)
	mockRepo.On("ExistsSchedule", mock.Anything, "Main Gate to Engineering Block", "08:00", "BUS-001").Return(false, nil)
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.BusSchedule")).Return(nil)

	svc := NewBusService(mockRepo, nil)
	schedule, err := svc.Create(context.Background(), &model.BusSchedule{
		Route: "Main Gate to Engineering Block",
		Time:  "08:00",
		BusNo: "BUS-001",
	})

	assert.NoError(t, err)
	assert.NotNil(t, schedule)
	mockRepo.AssertExpectations(t)
}

func TestBusService_Create_DuplicateDeparture(t *testing.T) {
	mockRepo := new(MockBusRepository)
	mockRepo.On("ExistsSchedule", mock.Anything, "Main Gate to Engineering Block", "08:00", "BUS-001").Return(true, nil)

	svc := NewBusService(mockRepo, nil)
	schedule, err := svc.Create(context.Background(), &model.BusSchedule{
		Route: "Main Gate to Engineering Block",
		Time:  "08:00",
		BusNo: "BUS-001",
	})

	assert.ErrorIs(t, err, apperrors.ErrConflict)
	assert.Nil(t, schedule)
	mockRepo.AssertNotCalled(t, "Create")
}

func TestBusService_ListRoutes(t *testing.T) {
	mockRepo := new(MockBusRepository)
	mockRepo.On("ListRoutes", mock.Anything).Return([]string{"Hostel to Academic Block", "Main Gate to Engineering Block"}, nil)

	svc := NewBusService(mockRepo, nil)
	routes, err := svc.ListRoutes(context.Background())

	assert.NoError(t, err)
	assert.Len(t, routes, 2)
	mockRepo.AssertExpectations(t)
}
