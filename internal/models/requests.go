package models

// CreateGroupRequest is the payload for creating a new check-in group.
type CreateGroupRequest struct {
	Name           string `json:"name"`
	FlightNumber   string `json:"flightNumber"`
	DepartureCity  string `json:"departureCity"`
	ArrivalCity    string `json:"arrivalCity"`
	DepartureDate  string `json:"departureDate"`
	DepartureTime  string `json:"departureTime"`
	PassengerCount int    `json:"passengerCount"`
}

// AddPassengerRequest is the payload for adding a passenger to a roster.
type AddPassengerRequest struct {
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	MiddleName     string `json:"middleName"`
	PassportSeries string `json:"passportSeries"`
	PassportNumber string `json:"passportNumber"`
	BirthDate      string `json:"birthDate"`
	Email          string `json:"email"`
}

// AssignSeatRequest binds a free seat to a passenger.
type AssignSeatRequest struct {
	SeatNumber  string `json:"seatNumber"`
	PassengerID int    `json:"passengerId"`
}

// ToggleServiceRequest adds or removes a catalog service for a passenger.
type ToggleServiceRequest struct {
	PassengerID int `json:"passengerId"`
	ServiceID   int `json:"serviceId"`
}

// SetQuantityRequest changes the quantity of a selected baggage service.
type SetQuantityRequest struct {
	PassengerID int `json:"passengerId"`
	ServiceID   int `json:"serviceId"`
	Quantity    int `json:"quantity"`
}

// SetOptionRequest changes the option of a selected meal service.
type SetOptionRequest struct {
	PassengerID int    `json:"passengerId"`
	ServiceID   int    `json:"serviceId"`
	Option      string `json:"option"`
}

// CopyServicesRequest overwrites every other passenger's services with the
// source passenger's selection.
type CopyServicesRequest struct {
	SourcePassengerID int `json:"sourcePassengerId"`
}

// UpdateStatusRequest changes a group's lifecycle status.
type UpdateStatusRequest struct {
	Status GroupStatus `json:"status"`
}

// SelectionsResponse is the services screen payload: per-passenger selections
// plus the running total.
type SelectionsResponse struct {
	Selections *ServiceSelections `json:"selections"`
	TotalPrice float64            `json:"totalPrice"`
}

// DispatchResponse acknowledges a boarding-pass dispatch request.
type DispatchResponse struct {
	WorkflowID string `json:"workflowId"`
	Recipients int    `json:"recipients"`
}
