package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cx-tal-miterani/group-checkin/internal/models"
	"github.com/cx-tal-miterani/group-checkin/internal/storage/memory"
)

// fixedSeatProvider returns a deterministic layout: every third seat occupied.
type fixedSeatProvider struct{}

func (fixedSeatProvider) Generate(count int) []models.Seat {
	seats := make([]models.Seat, count)
	for i := range seats {
		seats[i] = models.Seat{
			Number:     fmt.Sprintf("%d", i+1),
			IsOccupied: (i+1)%3 == 0,
		}
	}
	return seats
}

// fixedPassIssuer issues predictable passes keyed by passenger ID.
type fixedPassIssuer struct{}

func (fixedPassIssuer) Issue(passengerID int) models.BoardingPass {
	return models.BoardingPass{
		ID:           passengerID,
		QRCode:       fmt.Sprintf("BP%d", passengerID),
		Gate:         "A7",
		BoardingTime: "08:30",
	}
}

// fakeDispatcher records dispatch calls instead of reaching a workflow engine.
type fakeDispatcher struct {
	calls []string
	err   error
}

func (d *fakeDispatcher) DispatchBoardingPasses(_ context.Context, groupID string) (string, error) {
	if d.err != nil {
		return "", d.err
	}
	d.calls = append(d.calls, groupID)
	return "dispatch-" + groupID, nil
}

func newTestService(t *testing.T) (CheckinService, *fakeDispatcher) {
	t.Helper()
	dispatcher := &fakeDispatcher{}
	svc := NewCheckinServiceWithProviders(memory.New(), dispatcher, fixedSeatProvider{}, fixedPassIssuer{})
	return svc, dispatcher
}

func createTestGroup(t *testing.T, svc CheckinService) *models.Group {
	t.Helper()
	group, err := svc.CreateGroup(context.Background(), &models.CreateGroupRequest{
		Name:           "Team offsite",
		FlightNumber:   "SU1001",
		DepartureCity:  "Moscow",
		ArrivalCity:    "Kazan",
		DepartureDate:  "2099-06-15",
		DepartureTime:  "11:00",
		PassengerCount: 4,
	})
	require.NoError(t, err)
	return group
}

func addTestPassenger(t *testing.T, svc CheckinService, groupID, firstName, email string) *models.Passenger {
	t.Helper()
	p, err := svc.AddPassenger(context.Background(), groupID, &models.AddPassengerRequest{
		FirstName:      firstName,
		LastName:       "Tester",
		PassportNumber: "123456",
		Email:          email,
	})
	require.NoError(t, err)
	return p
}

func TestCreateGroupValidation(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	valid := func() *models.CreateGroupRequest {
		return &models.CreateGroupRequest{
			Name:           "Team offsite",
			FlightNumber:   "SU1001",
			DepartureCity:  "Moscow",
			ArrivalCity:    "Kazan",
			DepartureDate:  "2099-06-15",
			DepartureTime:  "11:00",
			PassengerCount: 4,
		}
	}

	tests := []struct {
		name   string
		mutate func(*models.CreateGroupRequest)
	}{
		{"missing name", func(r *models.CreateGroupRequest) { r.Name = "  " }},
		{"missing flight number", func(r *models.CreateGroupRequest) { r.FlightNumber = "" }},
		{"missing departure city", func(r *models.CreateGroupRequest) { r.DepartureCity = "" }},
		{"missing arrival city", func(r *models.CreateGroupRequest) { r.ArrivalCity = "" }},
		{"bad date format", func(r *models.CreateGroupRequest) { r.DepartureDate = "15.06.2099" }},
		{"past date", func(r *models.CreateGroupRequest) { r.DepartureDate = "2020-01-01" }},
		{"count too low", func(r *models.CreateGroupRequest) { r.PassengerCount = 0 }},
		{"count too high", func(r *models.CreateGroupRequest) { r.PassengerCount = 51 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid()
			tt.mutate(req)
			_, err := svc.CreateGroup(ctx, req)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}

	group, err := svc.CreateGroup(ctx, valid())
	require.NoError(t, err)
	assert.NotEmpty(t, group.ID)
	assert.Equal(t, models.GroupStatusActive, group.Status)
}

func TestListGroupsSeedsSamples(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	groups, err := svc.ListGroups(ctx)
	require.NoError(t, err)
	require.Len(t, groups, 3)
	assert.Equal(t, "Corporate trip", groups[0].Name)
	assert.Equal(t, "SU5678", groups[2].FlightNumber)

	// A second call returns the stored groups, not a fresh seed.
	again, err := svc.ListGroups(ctx)
	require.NoError(t, err)
	require.Len(t, again, 3)
	assert.Equal(t, groups[0].ID, again[0].ID)
}

func TestRosterRoundTrip(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	group := createTestGroup(t, svc)

	first := addTestPassenger(t, svc, group.ID, "Anna", "anna@example.com")
	second := addTestPassenger(t, svc, group.ID, "Boris", "boris@example.com")
	assert.Equal(t, 1, first.ID)
	assert.Equal(t, 2, second.ID)

	roster, err := svc.GetRoster(ctx, group.ID)
	require.NoError(t, err)
	require.Len(t, roster.Passengers, 2)
	assert.Equal(t, "Anna", roster.Passengers[0].FirstName)

	require.NoError(t, svc.RemovePassenger(ctx, group.ID, first.ID))

	// IDs are never reused after a removal.
	third := addTestPassenger(t, svc, group.ID, "Clara", "clara@example.com")
	assert.Equal(t, 3, third.ID)

	roster, err = svc.GetRoster(ctx, group.ID)
	require.NoError(t, err)
	require.Len(t, roster.Passengers, 2)
	assert.Equal(t, "Boris", roster.Passengers[0].FirstName)
	assert.Equal(t, "Clara", roster.Passengers[1].FirstName)
}

func TestRemovePassengerPrunesState(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	group := createTestGroup(t, svc)
	anna := addTestPassenger(t, svc, group.ID, "Anna", "anna@example.com")
	boris := addTestPassenger(t, svc, group.ID, "Boris", "boris@example.com")

	_, err := svc.AssignSeat(ctx, group.ID, "2", boris.ID)
	require.NoError(t, err)
	_, err = svc.ToggleService(ctx, group.ID, boris.ID, 1)
	require.NoError(t, err)
	_, err = svc.GenerateBoardingPasses(ctx, group.ID)
	require.NoError(t, err)

	require.NoError(t, svc.RemovePassenger(ctx, group.ID, boris.ID))

	selections, err := svc.GetSelections(ctx, group.ID)
	require.NoError(t, err)
	assert.NotContains(t, selections.ByPassenger, boris.ID)
	assert.Equal(t, 0.0, selections.TotalPrice())

	passes, err := svc.GetBoardingPasses(ctx, group.ID)
	require.NoError(t, err)
	assert.NotContains(t, passes.ByPassenger, boris.ID)

	seatMap, err := svc.GetSeatMap(ctx, group.ID)
	require.NoError(t, err)
	assert.False(t, seatMap.Find("2").IsSelected)
	assert.Nil(t, seatMap.Find("2").PassengerID)

	detail, err := svc.GetGroup(ctx, group.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, detail.Progress.Passengers)
	assert.Equal(t, 1, detail.Progress.PassesGenerated)
	assert.Equal(t, 0, detail.Progress.SeatsAssigned)

	// Anna's own pass survived the removal.
	pass, ok := passes.ByPassenger[anna.ID]
	require.True(t, ok)
	assert.Equal(t, "BP1", pass.QRCode)
}

func TestAddPassengerValidation(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	group := createTestGroup(t, svc)

	_, err := svc.AddPassenger(ctx, group.ID, &models.AddPassengerRequest{LastName: "Tester", PassportNumber: "1"})
	assert.ErrorIs(t, err, ErrValidation)
	_, err = svc.AddPassenger(ctx, group.ID, &models.AddPassengerRequest{FirstName: "Anna", PassportNumber: "1"})
	assert.ErrorIs(t, err, ErrValidation)
	_, err = svc.AddPassenger(ctx, group.ID, &models.AddPassengerRequest{FirstName: "Anna", LastName: "Tester"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestSeatMapGenerationIsIdempotent(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	group := createTestGroup(t, svc)

	_, err := svc.GetSeatMap(ctx, group.ID)
	assert.ErrorIs(t, err, ErrPrecondition, "seat map requires passengers")

	addTestPassenger(t, svc, group.ID, "Anna", "anna@example.com")

	first, err := svc.GetSeatMap(ctx, group.ID)
	require.NoError(t, err)
	require.Len(t, first.Seats, SeatMapSize)

	second, err := svc.GetSeatMap(ctx, group.ID)
	require.NoError(t, err)
	assert.Equal(t, first.Seats, second.Seats)
}

func TestAssignSeatExclusivity(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	group := createTestGroup(t, svc)
	anna := addTestPassenger(t, svc, group.ID, "Anna", "anna@example.com")
	boris := addTestPassenger(t, svc, group.ID, "Boris", "boris@example.com")

	// Seat "3" is occupied in the fixed layout, "1" and "2" are free.
	_, err := svc.AssignSeat(ctx, group.ID, "3", anna.ID)
	assert.ErrorIs(t, err, ErrPrecondition)

	seatMap, err := svc.AssignSeat(ctx, group.ID, "1", anna.ID)
	require.NoError(t, err)
	seat := seatMap.Find("1")
	require.NotNil(t, seat)
	assert.True(t, seat.IsSelected)
	require.NotNil(t, seat.PassengerID)
	assert.Equal(t, anna.ID, *seat.PassengerID)

	_, err = svc.AssignSeat(ctx, group.ID, "1", boris.ID)
	assert.ErrorIs(t, err, ErrPrecondition, "taken seat is rejected")

	// Re-assigning Anna frees her previous seat.
	seatMap, err = svc.AssignSeat(ctx, group.ID, "2", anna.ID)
	require.NoError(t, err)
	assert.False(t, seatMap.Find("1").IsSelected)
	assert.Nil(t, seatMap.Find("1").PassengerID)
	assert.True(t, seatMap.Find("2").IsSelected)

	roster, err := svc.GetRoster(ctx, group.ID)
	require.NoError(t, err)
	assert.Equal(t, "2", roster.Passengers[0].SeatNumber)

	_, err = svc.AssignSeat(ctx, group.ID, "99", anna.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestToggleServiceSymmetry(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	group := createTestGroup(t, svc)
	anna := addTestPassenger(t, svc, group.ID, "Anna", "anna@example.com")

	selections, err := svc.ToggleService(ctx, group.ID, anna.ID, 1)
	require.NoError(t, err)
	require.Len(t, selections.ByPassenger[anna.ID], 1)
	assert.Equal(t, float64(2500), selections.ByPassenger[anna.ID][0].Price)

	selections, err = svc.ToggleService(ctx, group.ID, anna.ID, 1)
	require.NoError(t, err)
	assert.Empty(t, selections.ByPassenger[anna.ID])

	// State survives the round trip through the store.
	selections, err = svc.GetSelections(ctx, group.ID)
	require.NoError(t, err)
	assert.Empty(t, selections.ByPassenger[anna.ID])

	_, err = svc.ToggleService(ctx, group.ID, anna.ID, 999)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = svc.ToggleService(ctx, group.ID, 999, 1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestServiceQuantityAndOption(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	group := createTestGroup(t, svc)
	anna := addTestPassenger(t, svc, group.ID, "Anna", "anna@example.com")

	_, err := svc.ToggleService(ctx, group.ID, anna.ID, 1) // baggage
	require.NoError(t, err)
	_, err = svc.ToggleService(ctx, group.ID, anna.ID, 4) // vegetarian meal
	require.NoError(t, err)

	selections, err := svc.SetServiceQuantity(ctx, group.ID, anna.ID, 1, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, selections.ByPassenger[anna.ID][0].Quantity)

	_, err = svc.SetServiceQuantity(ctx, group.ID, anna.ID, 1, 0)
	assert.ErrorIs(t, err, ErrValidation)
	_, err = svc.SetServiceQuantity(ctx, group.ID, anna.ID, 4, 2)
	assert.ErrorIs(t, err, ErrValidation, "quantity is baggage-only")
	_, err = svc.SetServiceQuantity(ctx, group.ID, anna.ID, 13, 2)
	assert.ErrorIs(t, err, ErrNotFound, "unselected service")

	selections, err = svc.SetServiceOption(ctx, group.ID, anna.ID, 4, "halal")
	require.NoError(t, err)
	assert.Equal(t, "halal", selections.ByPassenger[anna.ID][1].Option)

	_, err = svc.SetServiceOption(ctx, group.ID, anna.ID, 1, "x")
	assert.ErrorIs(t, err, ErrValidation, "option is meal-only")
	_, err = svc.SetServiceOption(ctx, group.ID, anna.ID, 4, " ")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCopyServicesToAll(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	group := createTestGroup(t, svc)
	anna := addTestPassenger(t, svc, group.ID, "Anna", "anna@example.com")
	boris := addTestPassenger(t, svc, group.ID, "Boris", "boris@example.com")
	clara := addTestPassenger(t, svc, group.ID, "Clara", "clara@example.com")

	_, err := svc.CopyServicesToAll(ctx, group.ID, anna.ID)
	assert.ErrorIs(t, err, ErrPrecondition, "empty source is rejected")

	_, err = svc.ToggleService(ctx, group.ID, anna.ID, 1)
	require.NoError(t, err)
	_, err = svc.ToggleService(ctx, group.ID, anna.ID, 10)
	require.NoError(t, err)

	selections, err := svc.CopyServicesToAll(ctx, group.ID, anna.ID)
	require.NoError(t, err)
	require.Len(t, selections.ByPassenger[boris.ID], 2)
	require.Len(t, selections.ByPassenger[clara.ID], 2)
	assert.Equal(t, selections.ByPassenger[anna.ID], selections.ByPassenger[boris.ID])
}

func TestSelectionsTotalPrice(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	group := createTestGroup(t, svc)
	anna := addTestPassenger(t, svc, group.ID, "Anna", "anna@example.com")
	boris := addTestPassenger(t, svc, group.ID, "Boris", "boris@example.com")

	// Anna: extra bag 2500 + vegetarian meal 800; Boris: extra bag 2500.
	_, err := svc.ToggleService(ctx, group.ID, anna.ID, 1)
	require.NoError(t, err)
	_, err = svc.ToggleService(ctx, group.ID, anna.ID, 4)
	require.NoError(t, err)
	_, err = svc.ToggleService(ctx, group.ID, boris.ID, 1)
	require.NoError(t, err)

	selections, err := svc.GetSelections(ctx, group.ID)
	require.NoError(t, err)
	assert.Equal(t, float64(5800), selections.TotalPrice())

	// Quantity multiplies the per-unit price.
	selections, err = svc.SetServiceQuantity(ctx, group.ID, boris.ID, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, float64(8300), selections.TotalPrice())
}

func TestGenerateBoardingPasses(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	group := createTestGroup(t, svc)

	_, err := svc.GenerateBoardingPasses(ctx, group.ID)
	assert.ErrorIs(t, err, ErrPrecondition, "passes require passengers")

	anna := addTestPassenger(t, svc, group.ID, "Anna", "anna@example.com")
	boris := addTestPassenger(t, svc, group.ID, "Boris", "boris@example.com")

	passes, err := svc.GenerateBoardingPasses(ctx, group.ID)
	require.NoError(t, err)
	require.Len(t, passes.ByPassenger, 2)
	assert.Equal(t, "BP1", passes.ByPassenger[anna.ID].QRCode)
	assert.False(t, passes.ByPassenger[boris.ID].EmailSent)

	got, err := svc.GetBoardingPasses(ctx, group.ID)
	require.NoError(t, err)
	assert.Equal(t, passes.ByPassenger, got.ByPassenger)
}

func TestSendBoardingPassesGating(t *testing.T) {
	svc, dispatcher := newTestService(t)
	ctx := context.Background()
	group := createTestGroup(t, svc)
	addTestPassenger(t, svc, group.ID, "Anna", "anna@example.com")
	noEmail := addTestPassenger(t, svc, group.ID, "Boris", "")

	// No passes generated yet.
	_, err := svc.SendBoardingPasses(ctx, group.ID)
	assert.ErrorIs(t, err, ErrPrecondition)
	assert.Empty(t, dispatcher.calls, "a failed gate never reaches the dispatcher")

	_, err = svc.GenerateBoardingPasses(ctx, group.ID)
	require.NoError(t, err)

	// One passenger still has no email.
	_, err = svc.SendBoardingPasses(ctx, group.ID)
	assert.ErrorIs(t, err, ErrPrecondition)
	assert.Empty(t, dispatcher.calls)

	require.NoError(t, svc.RemovePassenger(ctx, group.ID, noEmail.ID))

	resp, err := svc.SendBoardingPasses(ctx, group.ID)
	require.NoError(t, err)
	assert.Equal(t, "dispatch-"+group.ID, resp.WorkflowID)
	assert.Equal(t, 1, resp.Recipients)
	assert.Equal(t, []string{group.ID}, dispatcher.calls)
}

func TestDeleteGroupCascades(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	group := createTestGroup(t, svc)
	anna := addTestPassenger(t, svc, group.ID, "Anna", "anna@example.com")
	_, err := svc.GetSeatMap(ctx, group.ID)
	require.NoError(t, err)
	_, err = svc.ToggleService(ctx, group.ID, anna.ID, 1)
	require.NoError(t, err)
	_, err = svc.GenerateBoardingPasses(ctx, group.ID)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteGroup(ctx, group.ID))

	_, err = svc.GetGroup(ctx, group.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = svc.GetRoster(ctx, group.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = svc.GetSeatMap(ctx, group.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, svc.DeleteGroup(ctx, group.ID), ErrNotFound)
}

func TestGroupProgress(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	group := createTestGroup(t, svc)
	anna := addTestPassenger(t, svc, group.ID, "Anna", "anna@example.com")
	addTestPassenger(t, svc, group.ID, "Boris", "boris@example.com")

	detail, err := svc.GetGroup(ctx, group.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, detail.Progress.Passengers)
	assert.Equal(t, 0, detail.Progress.SeatsAssigned)

	_, err = svc.AssignSeat(ctx, group.ID, "1", anna.ID)
	require.NoError(t, err)
	_, err = svc.ToggleService(ctx, group.ID, anna.ID, 13)
	require.NoError(t, err)
	_, err = svc.GenerateBoardingPasses(ctx, group.ID)
	require.NoError(t, err)

	detail, err = svc.GetGroup(ctx, group.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, detail.Progress.SeatsAssigned)
	assert.Equal(t, 1, detail.Progress.ServicesSelected)
	assert.Equal(t, 2, detail.Progress.PassesGenerated)
	assert.Equal(t, 0, detail.Progress.PassesSent)
}

func TestUpdateGroupStatus(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	group := createTestGroup(t, svc)

	updated, err := svc.UpdateGroupStatus(ctx, group.ID, models.GroupStatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, models.GroupStatusCompleted, updated.Status)

	_, err = svc.UpdateGroupStatus(ctx, group.ID, models.GroupStatus("archived"))
	assert.ErrorIs(t, err, ErrValidation)
	_, err = svc.UpdateGroupStatus(ctx, "missing", models.GroupStatusActive)
	assert.ErrorIs(t, err, ErrNotFound)
}
