package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/cx-tal-miterani/group-checkin/internal/models"
)

// MockCheckinService is a mock implementation of CheckinService
type MockCheckinService struct {
	mock.Mock
}

func (m *MockCheckinService) ListGroups(ctx context.Context) ([]models.Group, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Group), args.Error(1)
}

func (m *MockCheckinService) GetGroup(ctx context.Context, groupID string) (*models.GroupDetail, error) {
	args := m.Called(ctx, groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.GroupDetail), args.Error(1)
}

func (m *MockCheckinService) CreateGroup(ctx context.Context, req *models.CreateGroupRequest) (*models.Group, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Group), args.Error(1)
}

func (m *MockCheckinService) UpdateGroupStatus(ctx context.Context, groupID string, status models.GroupStatus) (*models.Group, error) {
	args := m.Called(ctx, groupID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Group), args.Error(1)
}

func (m *MockCheckinService) DeleteGroup(ctx context.Context, groupID string) error {
	args := m.Called(ctx, groupID)
	return args.Error(0)
}

func (m *MockCheckinService) GetRoster(ctx context.Context, groupID string) (*models.Roster, error) {
	args := m.Called(ctx, groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Roster), args.Error(1)
}

func (m *MockCheckinService) AddPassenger(ctx context.Context, groupID string, req *models.AddPassengerRequest) (*models.Passenger, error) {
	args := m.Called(ctx, groupID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Passenger), args.Error(1)
}

func (m *MockCheckinService) RemovePassenger(ctx context.Context, groupID string, passengerID int) error {
	args := m.Called(ctx, groupID, passengerID)
	return args.Error(0)
}

func (m *MockCheckinService) GetSeatMap(ctx context.Context, groupID string) (*models.SeatMap, error) {
	args := m.Called(ctx, groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SeatMap), args.Error(1)
}

func (m *MockCheckinService) AssignSeat(ctx context.Context, groupID, seatNumber string, passengerID int) (*models.SeatMap, error) {
	args := m.Called(ctx, groupID, seatNumber, passengerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SeatMap), args.Error(1)
}

func (m *MockCheckinService) GetSelections(ctx context.Context, groupID string) (*models.ServiceSelections, error) {
	args := m.Called(ctx, groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ServiceSelections), args.Error(1)
}

func (m *MockCheckinService) ToggleService(ctx context.Context, groupID string, passengerID, serviceID int) (*models.ServiceSelections, error) {
	args := m.Called(ctx, groupID, passengerID, serviceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ServiceSelections), args.Error(1)
}

func (m *MockCheckinService) SetServiceQuantity(ctx context.Context, groupID string, passengerID, serviceID, quantity int) (*models.ServiceSelections, error) {
	args := m.Called(ctx, groupID, passengerID, serviceID, quantity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ServiceSelections), args.Error(1)
}

func (m *MockCheckinService) SetServiceOption(ctx context.Context, groupID string, passengerID, serviceID int, option string) (*models.ServiceSelections, error) {
	args := m.Called(ctx, groupID, passengerID, serviceID, option)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ServiceSelections), args.Error(1)
}

func (m *MockCheckinService) CopyServicesToAll(ctx context.Context, groupID string, sourcePassengerID int) (*models.ServiceSelections, error) {
	args := m.Called(ctx, groupID, sourcePassengerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ServiceSelections), args.Error(1)
}

func (m *MockCheckinService) GetBoardingPasses(ctx context.Context, groupID string) (*models.BoardingPassSet, error) {
	args := m.Called(ctx, groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BoardingPassSet), args.Error(1)
}

func (m *MockCheckinService) GenerateBoardingPasses(ctx context.Context, groupID string) (*models.BoardingPassSet, error) {
	args := m.Called(ctx, groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BoardingPassSet), args.Error(1)
}

func (m *MockCheckinService) SendBoardingPasses(ctx context.Context, groupID string) (*models.DispatchResponse, error) {
	args := m.Called(ctx, groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DispatchResponse), args.Error(1)
}
