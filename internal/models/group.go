package models

import "time"

// Group represents a named batch of passengers checking in together on one flight.
type Group struct {
	ID             string      `json:"id"`
	Name           string      `json:"name"`
	FlightNumber   string      `json:"flightNumber"`
	DepartureCity  string      `json:"departureCity"`
	ArrivalCity    string      `json:"arrivalCity"`
	DepartureDate  string      `json:"departureDate"` // YYYY-MM-DD
	DepartureTime  string      `json:"departureTime"` // HH:MM
	PassengerCount int         `json:"passengerCount"`
	Status         GroupStatus `json:"status"`
	CreatedAt      time.Time   `json:"createdAt"`
	UpdatedAt      time.Time   `json:"updatedAt"`
}

type GroupStatus string

const (
	GroupStatusActive    GroupStatus = "active"
	GroupStatusCompleted GroupStatus = "completed"
	GroupStatusCancelled GroupStatus = "cancelled"
)

// Valid reports whether s is one of the known group statuses.
func (s GroupStatus) Valid() bool {
	switch s {
	case GroupStatusActive, GroupStatusCompleted, GroupStatusCancelled:
		return true
	}
	return false
}

// GroupProgress aggregates per-step completion counters for one group.
// Each counter is measured against the actual roster size, not the
// user-declared PassengerCount on the group.
type GroupProgress struct {
	Passengers       int `json:"passengers"`
	SeatsAssigned    int `json:"seatsAssigned"`
	ServicesSelected int `json:"servicesSelected"`
	PassesGenerated  int `json:"passesGenerated"`
	PassesSent       int `json:"passesSent"`
}

// GroupDetail is the group record together with its progress counters.
type GroupDetail struct {
	Group    *Group        `json:"group"`
	Progress GroupProgress `json:"progress"`
}
