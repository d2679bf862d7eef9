package models

// Seat is one cell of a group's seat map. Numbers are plain strings "1".."30".
// IsOccupied marks seats taken by travellers outside the group at generation
// time; IsSelected marks seats bound to a group passenger.
type Seat struct {
	Number      string `json:"number"`
	IsOccupied  bool   `json:"isOccupied"`
	IsSelected  bool   `json:"isSelected"`
	PassengerID *int   `json:"passengerId,omitempty"`
}

// SeatMap is the whole-record seat set for one group. It is generated once
// and then persisted; a saved set is never regenerated.
type SeatMap struct {
	GroupID string `json:"groupId"`
	Seats   []Seat `json:"seats"`
}

// Find returns the seat with the given number, or nil.
func (m *SeatMap) Find(number string) *Seat {
	for i := range m.Seats {
		if m.Seats[i].Number == number {
			return &m.Seats[i]
		}
	}
	return nil
}

// AssignedTo returns the seat currently bound to the passenger, or nil.
func (m *SeatMap) AssignedTo(passengerID int) *Seat {
	for i := range m.Seats {
		s := &m.Seats[i]
		if s.PassengerID != nil && *s.PassengerID == passengerID {
			return s
		}
	}
	return nil
}
