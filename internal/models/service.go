package models

type ServiceType string

const (
	ServiceTypeExtraBaggage     ServiceType = "EXTRA_BAGGAGE"
	ServiceTypeSpecialMeal      ServiceType = "SPECIAL_MEAL"
	ServiceTypeInsurance        ServiceType = "INSURANCE"
	ServiceTypePriorityBoarding ServiceType = "PRIORITY_BOARDING"
)

// ServiceOffering is one entry of the immutable ancillary-service catalog.
type ServiceOffering struct {
	ID          int         `json:"id"`
	Type        ServiceType `json:"type"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Price       float64     `json:"price"`
	Quantity    int         `json:"quantity,omitempty"` // default qty, baggage only
	Option      string      `json:"option,omitempty"`   // option key, meals only
}

// SelectedService is a catalog entry copied onto a passenger, annotated with
// the chosen quantity/option.
type SelectedService struct {
	ID       int         `json:"id"`
	Type     ServiceType `json:"type"`
	Name     string      `json:"name"`
	Price    float64     `json:"price"`
	Quantity int         `json:"quantity,omitempty"`
	Option   string      `json:"option,omitempty"`
}

// ServiceSelections is the whole-record service state for one group, keyed by
// passenger ID.
type ServiceSelections struct {
	GroupID     string                    `json:"groupId"`
	ByPassenger map[int][]SelectedService `json:"byPassenger"`
}

// TotalPrice sums price x quantity over every passenger and service.
// A zero quantity counts as 1.
func (s *ServiceSelections) TotalPrice() float64 {
	var total float64
	for _, services := range s.ByPassenger {
		for _, svc := range services {
			qty := svc.Quantity
			if qty < 1 {
				qty = 1
			}
			total += svc.Price * float64(qty)
		}
	}
	return total
}
