// Package catalog holds the immutable ancillary-service reference data.
package catalog

import "github.com/cx-tal-miterani/group-checkin/internal/models"

var offerings = []models.ServiceOffering{
	{ID: 1, Type: models.ServiceTypeExtraBaggage, Name: "Extra checked bag (up to 23 kg)", Description: "One additional bag or suitcase weighing up to 23 kg", Price: 2500, Quantity: 1},
	{ID: 2, Type: models.ServiceTypeExtraBaggage, Name: "Extra baggage weight (up to +10 kg)", Description: "Raises the weight allowance of a checked bag", Price: 1500, Quantity: 1},
	{ID: 3, Type: models.ServiceTypeExtraBaggage, Name: "Sports equipment", Description: "Carriage of skis, snowboard, bicycle or other sports gear", Price: 3500, Quantity: 1},

	{ID: 4, Type: models.ServiceTypeSpecialMeal, Name: "Vegetarian meal", Description: "Dishes without meat, fish or seafood", Price: 800, Option: "vegetarian"},
	{ID: 5, Type: models.ServiceTypeSpecialMeal, Name: "Halal meal", Description: "Meal prepared according to Islamic dietary rules", Price: 800, Option: "halal"},
	{ID: 6, Type: models.ServiceTypeSpecialMeal, Name: "Kosher meal", Description: "Meal prepared according to Jewish dietary tradition", Price: 800, Option: "kosher"},
	{ID: 7, Type: models.ServiceTypeSpecialMeal, Name: "Gluten-free meal", Description: "Dishes free of gluten", Price: 900, Option: "gluten_free"},
	{ID: 8, Type: models.ServiceTypeSpecialMeal, Name: "Low-calorie meal", Description: "Dishes with reduced calorie content", Price: 800, Option: "low_calorie"},
	{ID: 9, Type: models.ServiceTypeSpecialMeal, Name: "Children's meal", Description: "Special menu for children", Price: 600, Option: "child"},

	{ID: 10, Type: models.ServiceTypeInsurance, Name: "Basic insurance", Description: "Basic coverage for the duration of the flight", Price: 500},
	{ID: 11, Type: models.ServiceTypeInsurance, Name: "Extended insurance", Description: "Flight coverage with an increased payout limit", Price: 1200},
	{ID: 12, Type: models.ServiceTypeInsurance, Name: "Premium insurance", Description: "Full coverage with the maximum limit and extra options", Price: 2500},

	{ID: 13, Type: models.ServiceTypePriorityBoarding, Name: "Priority boarding", Description: "Board the aircraft ahead of the general queue", Price: 1000},
}

// All returns a copy of the full catalog.
func All() []models.ServiceOffering {
	out := make([]models.ServiceOffering, len(offerings))
	copy(out, offerings)
	return out
}

// ByID returns the offering with the given ID, or false.
func ByID(id int) (models.ServiceOffering, bool) {
	for _, o := range offerings {
		if o.ID == id {
			return o, true
		}
	}
	return models.ServiceOffering{}, false
}

// ByType returns all offerings of the given type.
func ByType(t models.ServiceType) []models.ServiceOffering {
	var out []models.ServiceOffering
	for _, o := range offerings {
		if o.Type == t {
			out = append(out, o)
		}
	}
	return out
}
