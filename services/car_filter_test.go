package services

import (
	"testing"

	"car-rental-backend/models"

	"github.com/stretchr/testify/assert"
)

func names(cars []models.Car) []string {
	out := make([]string, len(cars))
	for i, c := range cars {
		out[i] = c.Name
	}
	return out
}

func TestCarFilter_Apply(t *testing.T) {
	cars := []models.Car{
		{ID: 1, Name: "Toyota Camry", FuelType: "Petrol", RentPerHour: 50},
		{ID: 2, Name: "Tesla Model 3", FuelType: "Electric", RentPerHour: 90},
		{ID: 3, Name: "Honda Civic", FuelType: "Petrol", RentPerHour: 40},
		{ID: 4, Name: "Ford Transit", FuelType: "Diesel", RentPerHour: 80},
	}

	assert.Equal(t, names(cars), names(CarFilter{}.Apply(cars)))
	assert.Equal(t, names(cars), names(CarFilter{Brand: "All", FuelType: "all"}.Apply(cars)))

	assert.Equal(t, []string{"Toyota Camry", "Honda Civic"},
		names(CarFilter{FuelType: "petrol"}.Apply(cars)))

	maxPrice := 50.0
	assert.Equal(t, []string{"Honda Civic", "Toyota Camry"},
		names(CarFilter{MaxPrice: &maxPrice, Sort: SortPriceAsc}.Apply(cars)))

	assert.Equal(t, []string{"Tesla Model 3", "Ford Transit", "Toyota Camry", "Honda Civic"},
		names(CarFilter{Sort: SortPriceDesc}.Apply(cars)))

	assert.Equal(t, []string{"Ford Transit", "Honda Civic", "Tesla Model 3", "Toyota Camry"},
		names(CarFilter{Sort: SortBrandAsc}.Apply(cars)))

	assert.Equal(t, []string{"Toyota Camry", "Tesla Model 3", "Honda Civic", "Ford Transit"},
		names(CarFilter{Sort: SortBrandDesc}.Apply(cars)))

	assert.Empty(t, CarFilter{Brand: "BMW"}.Apply(cars))
}
