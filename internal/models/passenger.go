package models

// Passenger is one traveller on a group's roster. IDs are small integers
// scoped to the group and assigned from the roster's monotonic counter, so
// they stay stable across deletions.
type Passenger struct {
	ID             int    `json:"id"`
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	MiddleName     string `json:"middleName,omitempty"`
	PassportSeries string `json:"passportSeries,omitempty"`
	PassportNumber string `json:"passportNumber"`
	BirthDate      string `json:"birthDate,omitempty"` // YYYY-MM-DD
	Email          string `json:"email,omitempty"`
	SeatNumber     string `json:"seatNumber,omitempty"`
}

// Roster is the whole-record passenger list for one group. The record is
// always written back wholesale; NextID never decreases.
type Roster struct {
	GroupID    string      `json:"groupId"`
	NextID     int         `json:"nextId"`
	Passengers []Passenger `json:"passengers"`
}

// Find returns the passenger with the given ID, or nil.
func (r *Roster) Find(id int) *Passenger {
	for i := range r.Passengers {
		if r.Passengers[i].ID == id {
			return &r.Passengers[i]
		}
	}
	return nil
}
