package services

import (
	"testing"

	"car-rental-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCarService_CreateAndGet(t *testing.T) {
	f := newFixture(t)

	car := &models.Car{
		ID:              77,
		Name:            "  Toyota Camry ",
		RentPerHour:     50,
		BookedTimeSlots: []models.TimeSlot{{}},
		Specs:           []byte(`[{"name":"Seats","value":5}]`),
	}
	require.NoError(t, f.cars.Create(car))
	assert.NotEqual(t, uint(77), car.ID)
	assert.Equal(t, "Toyota Camry", car.Name)

	got, err := f.cars.Get(car.ID)
	require.NoError(t, err)
	assert.Equal(t, "Toyota Camry", got.Name)
	assert.Empty(t, got.BookedTimeSlots)
	assert.NotNil(t, got.BookedTimeSlots)
	assert.JSONEq(t, `[{"name":"Seats","value":5}]`, string(got.Specs))

	_, err = f.cars.Get(999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCarService_CreateValidation(t *testing.T) {
	f := newFixture(t)
	assert.ErrorIs(t, f.cars.Create(&models.Car{Name: "  "}), ErrValidation)
	assert.ErrorIs(t, f.cars.Create(&models.Car{Name: "X", RentPerHour: -1}), ErrValidation)
	assert.ErrorIs(t, f.cars.Create(&models.Car{Name: "X", Capacity: -2}), ErrValidation)
}

func TestCarService_Update(t *testing.T) {
	f := newFixture(t)
	car := f.car(t, "Toyota Camry", 50)

	rate := 65.0
	name := "Toyota Camry Hybrid"
	got, err := f.cars.Update(car.ID, CarUpdate{Name: &name, RentPerHour: &rate})
	require.NoError(t, err)
	assert.Equal(t, name, got.Name)
	assert.Equal(t, 65.0, got.RentPerHour)
	assert.Equal(t, "Petrol", got.FuelType)

	empty := " "
	_, err = f.cars.Update(car.ID, CarUpdate{Name: &empty})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = f.cars.Update(999, CarUpdate{RentPerHour: &rate})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCarService_DeleteCascadesBookings(t *testing.T) {
	f := newFixture(t)
	car := f.car(t, "Toyota Camry", 50)
	keep := f.car(t, "Honda Civic", 40)
	u := f.user(t, "hank")

	_, err := f.bookings.Create(BookingInput{CarID: car.ID, UserID: u.ID, From: "2024-01-01", To: "2024-01-03"})
	require.NoError(t, err)
	_, err = f.bookings.Create(BookingInput{CarID: keep.ID, UserID: u.ID, From: "2024-01-01", To: "2024-01-03"})
	require.NoError(t, err)

	require.NoError(t, f.cars.Delete(car.ID))
	require.NoError(t, f.cars.Delete(car.ID))

	list, err := f.bookings.GetAllWithRelations()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, keep.ID, list[0].CarID)
}

func TestCarService_ListAppliesFilter(t *testing.T) {
	f := newFixture(t)
	f.car(t, "Toyota Camry", 50)
	f.car(t, "Toyota Yaris", 30)
	f.car(t, "Honda Civic", 40)

	all, err := f.cars.List(CarFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	maxPrice := 45.0
	cheapToyotas, err := f.cars.List(CarFilter{Brand: "toyota", MaxPrice: &maxPrice})
	require.NoError(t, err)
	require.Len(t, cheapToyotas, 1)
	assert.Equal(t, "Toyota Yaris", cheapToyotas[0].Name)
}
