// Package service implements the check-in workflow operations on top of the
// storage layer.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/cx-tal-miterani/group-checkin/internal/catalog"
	"github.com/cx-tal-miterani/group-checkin/internal/models"
	"github.com/cx-tal-miterani/group-checkin/internal/storage"
)

const (
	MinPassengerCount = 1
	MaxPassengerCount = 50
)

// CheckinService defines the group check-in operations.
type CheckinService interface {
	ListGroups(ctx context.Context) ([]models.Group, error)
	GetGroup(ctx context.Context, groupID string) (*models.GroupDetail, error)
	CreateGroup(ctx context.Context, req *models.CreateGroupRequest) (*models.Group, error)
	UpdateGroupStatus(ctx context.Context, groupID string, status models.GroupStatus) (*models.Group, error)
	DeleteGroup(ctx context.Context, groupID string) error

	GetRoster(ctx context.Context, groupID string) (*models.Roster, error)
	AddPassenger(ctx context.Context, groupID string, req *models.AddPassengerRequest) (*models.Passenger, error)
	RemovePassenger(ctx context.Context, groupID string, passengerID int) error

	GetSeatMap(ctx context.Context, groupID string) (*models.SeatMap, error)
	AssignSeat(ctx context.Context, groupID, seatNumber string, passengerID int) (*models.SeatMap, error)

	GetSelections(ctx context.Context, groupID string) (*models.ServiceSelections, error)
	ToggleService(ctx context.Context, groupID string, passengerID, serviceID int) (*models.ServiceSelections, error)
	SetServiceQuantity(ctx context.Context, groupID string, passengerID, serviceID, quantity int) (*models.ServiceSelections, error)
	SetServiceOption(ctx context.Context, groupID string, passengerID, serviceID int, option string) (*models.ServiceSelections, error)
	CopyServicesToAll(ctx context.Context, groupID string, sourcePassengerID int) (*models.ServiceSelections, error)

	GetBoardingPasses(ctx context.Context, groupID string) (*models.BoardingPassSet, error)
	GenerateBoardingPasses(ctx context.Context, groupID string) (*models.BoardingPassSet, error)
	SendBoardingPasses(ctx context.Context, groupID string) (*models.DispatchResponse, error)
}

type checkinService struct {
	store      storage.Store
	seats      SeatAvailabilityProvider
	issuer     BoardingPassIssuer
	dispatcher Dispatcher
}

// NewCheckinService creates a CheckinService with the default random
// providers.
func NewCheckinService(store storage.Store, dispatcher Dispatcher) CheckinService {
	return &checkinService{
		store:      store,
		seats:      NewRandomSeatProvider(),
		issuer:     NewRandomPassIssuer(),
		dispatcher: dispatcher,
	}
}

// NewCheckinServiceWithProviders creates a CheckinService with explicit
// providers, used by tests.
func NewCheckinServiceWithProviders(store storage.Store, dispatcher Dispatcher, seats SeatAvailabilityProvider, issuer BoardingPassIssuer) CheckinService {
	return &checkinService{
		store:      store,
		seats:      seats,
		issuer:     issuer,
		dispatcher: dispatcher,
	}
}

// --- Groups ---

func (s *checkinService) ListGroups(ctx context.Context) ([]models.Group, error) {
	groups, err := s.store.ListGroups(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}
	if len(groups) == 0 {
		return s.seedSampleGroups(ctx)
	}
	return groups, nil
}

// seedSampleGroups populates the registry on first load so that the list
// screen is never empty.
func (s *checkinService) seedSampleGroups(ctx context.Context) ([]models.Group, error) {
	now := time.Now().UTC()
	samples := []models.Group{
		{
			ID:             uuid.New().String(),
			Name:           "Corporate trip",
			FlightNumber:   "SU1234",
			DepartureCity:  "Moscow",
			ArrivalCity:    "Saint Petersburg",
			DepartureDate:  now.AddDate(0, 0, 19).Format("2006-01-02"),
			DepartureTime:  "10:00",
			PassengerCount: 5,
			Status:         models.GroupStatusActive,
			CreatedAt:      now,
			UpdatedAt:      now,
		},
		{
			ID:             uuid.New().String(),
			Name:           "Family vacation",
			FlightNumber:   "S71234",
			DepartureCity:  "Moscow",
			ArrivalCity:    "Sochi",
			DepartureDate:  now.AddDate(0, 0, 24).Format("2006-01-02"),
			DepartureTime:  "14:30",
			PassengerCount: 3,
			Status:         models.GroupStatusActive,
			CreatedAt:      now.Add(time.Second),
			UpdatedAt:      now.Add(time.Second),
		},
		{
			ID:             uuid.New().String(),
			Name:           "Europe tour",
			FlightNumber:   "SU5678",
			DepartureCity:  "Moscow",
			ArrivalCity:    "Paris",
			DepartureDate:  now.AddDate(0, 0, 31).Format("2006-01-02"),
			DepartureTime:  "09:15",
			PassengerCount: 8,
			Status:         models.GroupStatusCompleted,
			CreatedAt:      now.Add(2 * time.Second),
			UpdatedAt:      now.Add(2 * time.Second),
		},
	}

	for i := range samples {
		if err := s.store.PutGroup(ctx, &samples[i]); err != nil {
			return nil, fmt.Errorf("failed to seed groups: %w", err)
		}
	}
	slog.Info("seeded sample groups", "count", len(samples))
	return samples, nil
}

func (s *checkinService) GetGroup(ctx context.Context, groupID string) (*models.GroupDetail, error) {
	group, err := s.getGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}

	roster, err := s.loadRoster(ctx, groupID)
	if err != nil {
		return nil, err
	}
	selections, err := s.loadSelections(ctx, groupID)
	if err != nil {
		return nil, err
	}
	passes, err := s.loadPasses(ctx, groupID)
	if err != nil {
		return nil, err
	}

	progress := models.GroupProgress{
		Passengers:      len(roster.Passengers),
		PassesGenerated: len(passes.ByPassenger),
	}
	for _, p := range roster.Passengers {
		if p.SeatNumber != "" {
			progress.SeatsAssigned++
		}
		if len(selections.ByPassenger[p.ID]) > 0 {
			progress.ServicesSelected++
		}
	}
	for _, bp := range passes.ByPassenger {
		if bp.EmailSent {
			progress.PassesSent++
		}
	}

	return &models.GroupDetail{Group: group, Progress: progress}, nil
}

func (s *checkinService) CreateGroup(ctx context.Context, req *models.CreateGroupRequest) (*models.Group, error) {
	switch {
	case strings.TrimSpace(req.Name) == "":
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	case strings.TrimSpace(req.FlightNumber) == "":
		return nil, fmt.Errorf("%w: flight number is required", ErrValidation)
	case strings.TrimSpace(req.DepartureCity) == "":
		return nil, fmt.Errorf("%w: departure city is required", ErrValidation)
	case strings.TrimSpace(req.ArrivalCity) == "":
		return nil, fmt.Errorf("%w: arrival city is required", ErrValidation)
	case strings.TrimSpace(req.DepartureTime) == "":
		return nil, fmt.Errorf("%w: departure time is required", ErrValidation)
	}
	if req.PassengerCount < MinPassengerCount || req.PassengerCount > MaxPassengerCount {
		return nil, fmt.Errorf("%w: passenger count must be between %d and %d", ErrValidation, MinPassengerCount, MaxPassengerCount)
	}

	departure, err := time.Parse("2006-01-02", req.DepartureDate)
	if err != nil {
		return nil, fmt.Errorf("%w: departure date must be YYYY-MM-DD", ErrValidation)
	}
	today := time.Now().UTC().Truncate(24 * time.Hour)
	if departure.Before(today) {
		return nil, fmt.Errorf("%w: departure date must be today or later", ErrValidation)
	}

	now := time.Now().UTC()
	group := &models.Group{
		ID:             uuid.New().String(),
		Name:           req.Name,
		FlightNumber:   req.FlightNumber,
		DepartureCity:  req.DepartureCity,
		ArrivalCity:    req.ArrivalCity,
		DepartureDate:  req.DepartureDate,
		DepartureTime:  req.DepartureTime,
		PassengerCount: req.PassengerCount,
		Status:         models.GroupStatusActive,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.store.PutGroup(ctx, group); err != nil {
		return nil, fmt.Errorf("failed to create group: %w", err)
	}

	slog.Info("group created", "groupId", group.ID, "flight", group.FlightNumber)
	return group, nil
}

func (s *checkinService) UpdateGroupStatus(ctx context.Context, groupID string, status models.GroupStatus) (*models.Group, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrValidation, status)
	}
	group, err := s.getGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}
	group.Status = status
	group.UpdatedAt = time.Now().UTC()
	if err := s.store.PutGroup(ctx, group); err != nil {
		return nil, fmt.Errorf("failed to update group: %w", err)
	}
	return group, nil
}

func (s *checkinService) DeleteGroup(ctx context.Context, groupID string) error {
	if err := s.store.DeleteGroup(ctx, groupID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%w: group %s", ErrNotFound, groupID)
		}
		return fmt.Errorf("failed to delete group: %w", err)
	}
	slog.Info("group deleted", "groupId", groupID)
	return nil
}

// --- Roster ---

func (s *checkinService) GetRoster(ctx context.Context, groupID string) (*models.Roster, error) {
	if _, err := s.getGroup(ctx, groupID); err != nil {
		return nil, err
	}
	return s.loadRoster(ctx, groupID)
}

func (s *checkinService) AddPassenger(ctx context.Context, groupID string, req *models.AddPassengerRequest) (*models.Passenger, error) {
	switch {
	case strings.TrimSpace(req.FirstName) == "":
		return nil, fmt.Errorf("%w: first name is required", ErrValidation)
	case strings.TrimSpace(req.LastName) == "":
		return nil, fmt.Errorf("%w: last name is required", ErrValidation)
	case strings.TrimSpace(req.PassportNumber) == "":
		return nil, fmt.Errorf("%w: passport number is required", ErrValidation)
	}

	if _, err := s.getGroup(ctx, groupID); err != nil {
		return nil, err
	}
	roster, err := s.loadRoster(ctx, groupID)
	if err != nil {
		return nil, err
	}

	passenger := models.Passenger{
		ID:             roster.NextID,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		MiddleName:     req.MiddleName,
		PassportSeries: req.PassportSeries,
		PassportNumber: req.PassportNumber,
		BirthDate:      req.BirthDate,
		Email:          req.Email,
	}
	roster.NextID++
	roster.Passengers = append(roster.Passengers, passenger)

	if err := s.store.PutRoster(ctx, roster); err != nil {
		return nil, fmt.Errorf("failed to save roster: %w", err)
	}
	return &passenger, nil
}

func (s *checkinService) RemovePassenger(ctx context.Context, groupID string, passengerID int) error {
	if _, err := s.getGroup(ctx, groupID); err != nil {
		return err
	}
	roster, err := s.loadRoster(ctx, groupID)
	if err != nil {
		return err
	}

	kept := roster.Passengers[:0]
	found := false
	for _, p := range roster.Passengers {
		if p.ID == passengerID {
			found = true
			continue
		}
		kept = append(kept, p)
	}
	if !found {
		return fmt.Errorf("%w: passenger %d", ErrNotFound, passengerID)
	}
	roster.Passengers = kept

	if err := s.store.PutRoster(ctx, roster); err != nil {
		return fmt.Errorf("failed to save roster: %w", err)
	}
	return s.pruneDeparted(ctx, groupID, passengerID)
}

// pruneDeparted drops per-passenger state left behind after a roster
// removal, so selections, passes and the seat map never reference a
// passenger the group no longer has.
func (s *checkinService) pruneDeparted(ctx context.Context, groupID string, passengerID int) error {
	selections, err := s.loadSelections(ctx, groupID)
	if err != nil {
		return err
	}
	if _, ok := selections.ByPassenger[passengerID]; ok {
		delete(selections.ByPassenger, passengerID)
		if err := s.saveSelections(ctx, selections); err != nil {
			return err
		}
	}

	passes, err := s.loadPasses(ctx, groupID)
	if err != nil {
		return err
	}
	if _, ok := passes.ByPassenger[passengerID]; ok {
		delete(passes.ByPassenger, passengerID)
		if err := s.store.PutBoardingPasses(ctx, passes); err != nil {
			return fmt.Errorf("failed to save boarding passes: %w", err)
		}
	}

	seatMap, err := s.store.GetSeatMap(ctx, groupID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("failed to load seat map: %w", err)
	}
	if seat := seatMap.AssignedTo(passengerID); seat != nil {
		seat.IsSelected = false
		seat.PassengerID = nil
		if err := s.store.PutSeatMap(ctx, seatMap); err != nil {
			return fmt.Errorf("failed to save seat map: %w", err)
		}
	}
	return nil
}

// --- Seats ---

// GetSeatMap returns the group's seat set, generating and persisting it on
// first access. A saved set is reused as-is, so repeated calls are
// idempotent.
func (s *checkinService) GetSeatMap(ctx context.Context, groupID string) (*models.SeatMap, error) {
	if _, err := s.getGroup(ctx, groupID); err != nil {
		return nil, err
	}
	roster, err := s.loadRoster(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if len(roster.Passengers) == 0 {
		return nil, fmt.Errorf("%w: add passengers to the group first", ErrPrecondition)
	}

	seatMap, err := s.store.GetSeatMap(ctx, groupID)
	if err == nil {
		return seatMap, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("failed to load seat map: %w", err)
	}

	seatMap = &models.SeatMap{
		GroupID: groupID,
		Seats:   s.seats.Generate(SeatMapSize),
	}
	if err := s.store.PutSeatMap(ctx, seatMap); err != nil {
		return nil, fmt.Errorf("failed to save seat map: %w", err)
	}
	slog.Info("seat map generated", "groupId", groupID, "seats", len(seatMap.Seats))
	return seatMap, nil
}

func (s *checkinService) AssignSeat(ctx context.Context, groupID, seatNumber string, passengerID int) (*models.SeatMap, error) {
	seatMap, err := s.GetSeatMap(ctx, groupID)
	if err != nil {
		return nil, err
	}
	roster, err := s.loadRoster(ctx, groupID)
	if err != nil {
		return nil, err
	}
	passenger := roster.Find(passengerID)
	if passenger == nil {
		return nil, fmt.Errorf("%w: passenger %d", ErrNotFound, passengerID)
	}

	seat := seatMap.Find(seatNumber)
	if seat == nil {
		return nil, fmt.Errorf("%w: seat %s", ErrNotFound, seatNumber)
	}
	if seat.IsOccupied {
		return nil, fmt.Errorf("%w: seat %s is already occupied", ErrPrecondition, seatNumber)
	}
	if seat.IsSelected && (seat.PassengerID == nil || *seat.PassengerID != passengerID) {
		return nil, fmt.Errorf("%w: seat %s is taken by another passenger", ErrPrecondition, seatNumber)
	}

	// Moving a passenger frees their previous seat.
	if prev := seatMap.AssignedTo(passengerID); prev != nil && prev.Number != seatNumber {
		prev.IsSelected = false
		prev.PassengerID = nil
	}

	pid := passengerID
	seat.IsSelected = true
	seat.PassengerID = &pid
	passenger.SeatNumber = seatNumber

	if err := s.store.PutSeatMap(ctx, seatMap); err != nil {
		return nil, fmt.Errorf("failed to save seat map: %w", err)
	}
	if err := s.store.PutRoster(ctx, roster); err != nil {
		return nil, fmt.Errorf("failed to save roster: %w", err)
	}

	slog.Info("seat assigned", "groupId", groupID, "seat", seatNumber, "passengerId", passengerID)
	return seatMap, nil
}

// --- Ancillary services ---

func (s *checkinService) GetSelections(ctx context.Context, groupID string) (*models.ServiceSelections, error) {
	if _, err := s.getGroup(ctx, groupID); err != nil {
		return nil, err
	}
	return s.loadSelections(ctx, groupID)
}

// ToggleService adds the catalog entry to the passenger's selection if
// absent, or removes it if present.
func (s *checkinService) ToggleService(ctx context.Context, groupID string, passengerID, serviceID int) (*models.ServiceSelections, error) {
	offering, ok := catalog.ByID(serviceID)
	if !ok {
		return nil, fmt.Errorf("%w: service %d", ErrNotFound, serviceID)
	}

	selections, _, err := s.loadSelectionsForPassenger(ctx, groupID, passengerID)
	if err != nil {
		return nil, err
	}

	current := selections.ByPassenger[passengerID]
	for i, svc := range current {
		if svc.ID == serviceID {
			selections.ByPassenger[passengerID] = append(current[:i], current[i+1:]...)
			return selections, s.saveSelections(ctx, selections)
		}
	}

	selections.ByPassenger[passengerID] = append(current, models.SelectedService{
		ID:       offering.ID,
		Type:     offering.Type,
		Name:     offering.Name,
		Price:    offering.Price,
		Quantity: offering.Quantity,
		Option:   offering.Option,
	})
	return selections, s.saveSelections(ctx, selections)
}

func (s *checkinService) SetServiceQuantity(ctx context.Context, groupID string, passengerID, serviceID, quantity int) (*models.ServiceSelections, error) {
	if quantity < 1 {
		return nil, fmt.Errorf("%w: quantity must be at least 1", ErrValidation)
	}

	selections, _, err := s.loadSelectionsForPassenger(ctx, groupID, passengerID)
	if err != nil {
		return nil, err
	}

	services := selections.ByPassenger[passengerID]
	for i := range services {
		if services[i].ID != serviceID {
			continue
		}
		if services[i].Type != models.ServiceTypeExtraBaggage {
			return nil, fmt.Errorf("%w: quantity only applies to baggage services", ErrValidation)
		}
		services[i].Quantity = quantity
		return selections, s.saveSelections(ctx, selections)
	}
	return nil, fmt.Errorf("%w: service %d is not selected for passenger %d", ErrNotFound, serviceID, passengerID)
}

func (s *checkinService) SetServiceOption(ctx context.Context, groupID string, passengerID, serviceID int, option string) (*models.ServiceSelections, error) {
	if strings.TrimSpace(option) == "" {
		return nil, fmt.Errorf("%w: option is required", ErrValidation)
	}

	selections, _, err := s.loadSelectionsForPassenger(ctx, groupID, passengerID)
	if err != nil {
		return nil, err
	}

	services := selections.ByPassenger[passengerID]
	for i := range services {
		if services[i].ID != serviceID {
			continue
		}
		if services[i].Type != models.ServiceTypeSpecialMeal {
			return nil, fmt.Errorf("%w: options only apply to meal services", ErrValidation)
		}
		services[i].Option = option
		return selections, s.saveSelections(ctx, selections)
	}
	return nil, fmt.Errorf("%w: service %d is not selected for passenger %d", ErrNotFound, serviceID, passengerID)
}

// CopyServicesToAll overwrites every other passenger's selection with a copy
// of the source passenger's.
func (s *checkinService) CopyServicesToAll(ctx context.Context, groupID string, sourcePassengerID int) (*models.ServiceSelections, error) {
	selections, roster, err := s.loadSelectionsForPassenger(ctx, groupID, sourcePassengerID)
	if err != nil {
		return nil, err
	}

	source := selections.ByPassenger[sourcePassengerID]
	if len(source) == 0 {
		return nil, fmt.Errorf("%w: the source passenger has no services selected", ErrPrecondition)
	}

	for _, p := range roster.Passengers {
		if p.ID == sourcePassengerID {
			continue
		}
		copied := make([]models.SelectedService, len(source))
		copy(copied, source)
		selections.ByPassenger[p.ID] = copied
	}
	return selections, s.saveSelections(ctx, selections)
}

// --- Boarding passes ---

func (s *checkinService) GetBoardingPasses(ctx context.Context, groupID string) (*models.BoardingPassSet, error) {
	if _, err := s.getGroup(ctx, groupID); err != nil {
		return nil, err
	}
	return s.loadPasses(ctx, groupID)
}

// GenerateBoardingPasses issues a pass for every passenger on the roster,
// replacing any previously generated set.
func (s *checkinService) GenerateBoardingPasses(ctx context.Context, groupID string) (*models.BoardingPassSet, error) {
	if _, err := s.getGroup(ctx, groupID); err != nil {
		return nil, err
	}
	roster, err := s.loadRoster(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if len(roster.Passengers) == 0 {
		return nil, fmt.Errorf("%w: add passengers to the group first", ErrPrecondition)
	}

	passes := &models.BoardingPassSet{
		GroupID:     groupID,
		ByPassenger: make(map[int]models.BoardingPass, len(roster.Passengers)),
	}
	for _, p := range roster.Passengers {
		passes.ByPassenger[p.ID] = s.issuer.Issue(p.ID)
	}

	if err := s.store.PutBoardingPasses(ctx, passes); err != nil {
		return nil, fmt.Errorf("failed to save boarding passes: %w", err)
	}
	slog.Info("boarding passes generated", "groupId", groupID, "count", len(passes.ByPassenger))
	return passes, nil
}

// SendBoardingPasses checks that every passenger has a generated pass and an
// email address, then hands the group off to the dispatch workflow. On a
// failed check nothing is mutated and nothing is dispatched.
func (s *checkinService) SendBoardingPasses(ctx context.Context, groupID string) (*models.DispatchResponse, error) {
	if _, err := s.getGroup(ctx, groupID); err != nil {
		return nil, err
	}
	roster, err := s.loadRoster(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if len(roster.Passengers) == 0 {
		return nil, fmt.Errorf("%w: add passengers to the group first", ErrPrecondition)
	}
	passes, err := s.loadPasses(ctx, groupID)
	if err != nil {
		return nil, err
	}

	for _, p := range roster.Passengers {
		if _, ok := passes.ByPassenger[p.ID]; !ok {
			return nil, fmt.Errorf("%w: passenger %d has no boarding pass", ErrPrecondition, p.ID)
		}
		if strings.TrimSpace(p.Email) == "" {
			return nil, fmt.Errorf("%w: passenger %d has no email address", ErrPrecondition, p.ID)
		}
	}

	workflowID, err := s.dispatcher.DispatchBoardingPasses(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to dispatch boarding passes: %w", err)
	}

	slog.Info("boarding pass dispatch started", "groupId", groupID, "workflowId", workflowID)
	return &models.DispatchResponse{
		WorkflowID: workflowID,
		Recipients: len(roster.Passengers),
	}, nil
}

// --- helpers ---

func (s *checkinService) getGroup(ctx context.Context, groupID string) (*models.Group, error) {
	group, err := s.store.GetGroup(ctx, groupID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%w: group %s", ErrNotFound, groupID)
		}
		return nil, fmt.Errorf("failed to load group: %w", err)
	}
	return group, nil
}

// loadRoster returns the stored roster or an empty default when none has
// been written yet.
func (s *checkinService) loadRoster(ctx context.Context, groupID string) (*models.Roster, error) {
	roster, err := s.store.GetRoster(ctx, groupID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return &models.Roster{GroupID: groupID, NextID: 1}, nil
		}
		return nil, fmt.Errorf("failed to load roster: %w", err)
	}
	if roster.NextID < 1 {
		roster.NextID = 1
	}
	return roster, nil
}

func (s *checkinService) loadSelections(ctx context.Context, groupID string) (*models.ServiceSelections, error) {
	selections, err := s.store.GetSelections(ctx, groupID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return &models.ServiceSelections{GroupID: groupID, ByPassenger: make(map[int][]models.SelectedService)}, nil
		}
		return nil, fmt.Errorf("failed to load selections: %w", err)
	}
	if selections.ByPassenger == nil {
		selections.ByPassenger = make(map[int][]models.SelectedService)
	}
	return selections, nil
}

func (s *checkinService) loadPasses(ctx context.Context, groupID string) (*models.BoardingPassSet, error) {
	passes, err := s.store.GetBoardingPasses(ctx, groupID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return &models.BoardingPassSet{GroupID: groupID, ByPassenger: make(map[int]models.BoardingPass)}, nil
		}
		return nil, fmt.Errorf("failed to load boarding passes: %w", err)
	}
	if passes.ByPassenger == nil {
		passes.ByPassenger = make(map[int]models.BoardingPass)
	}
	return passes, nil
}

func (s *checkinService) loadSelectionsForPassenger(ctx context.Context, groupID string, passengerID int) (*models.ServiceSelections, *models.Roster, error) {
	if _, err := s.getGroup(ctx, groupID); err != nil {
		return nil, nil, err
	}
	roster, err := s.loadRoster(ctx, groupID)
	if err != nil {
		return nil, nil, err
	}
	if roster.Find(passengerID) == nil {
		return nil, nil, fmt.Errorf("%w: passenger %d", ErrNotFound, passengerID)
	}
	selections, err := s.loadSelections(ctx, groupID)
	if err != nil {
		return nil, nil, err
	}
	return selections, roster, nil
}

func (s *checkinService) saveSelections(ctx context.Context, selections *models.ServiceSelections) error {
	if err := s.store.PutSelections(ctx, selections); err != nil {
		return fmt.Errorf("failed to save selections: %w", err)
	}
	return nil
}
