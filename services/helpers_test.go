package services

import (
	"testing"

	"car-rental-backend/models"
	"car-rental-backend/testutil"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fixture struct {
	db       *gorm.DB
	cars     *CarService
	bookings *BookingService
	users    *UserService
}

func newFixture(t *testing.T) *fixture {
	db := testutil.NewDB(t)
	return &fixture{
		db:       db,
		cars:     NewCarService(db),
		bookings: NewBookingService(db),
		users:    NewUserService(db),
	}
}

func (f *fixture) car(t *testing.T, name string, rate float64) *models.Car {
	t.Helper()
	car := &models.Car{Name: name, Capacity: 5, FuelType: "Petrol", RentPerHour: rate}
	require.NoError(t, f.cars.Create(car))
	return car
}

func (f *fixture) user(t *testing.T, username string) *models.User {
	t.Helper()
	u, err := f.users.Register(username, "secret-pass")
	require.NoError(t, err)
	return u
}
