package common

import (
	"testing"
	"time"

	"vrs/src/db"
	"vrs/src/models"
	"vrs/src/types"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	d, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("An error '%s' was not expected when opening the test database", err)
	}
	sqlDB, err := d.DB()
	if err != nil {
		t.Fatalf("Error accessing inner db instance: %s", err.Error())
	}
	// A single connection keeps every query on the same in-memory database.
	sqlDB.SetMaxOpenConns(1)

	if err := d.AutoMigrate(&models.User{}, &models.Vehicle{}, &models.Booking{}); err != nil {
		t.Fatalf("error migration: %s", err.Error())
	}
	if err := d.Exec(`
	CREATE UNIQUE INDEX IF NOT EXISTS idx_bookings_active_vehicle
	ON bookings (vehicle_id) WHERE status = 'active';
	`).Error; err != nil {
		t.Fatalf("Error creating index idx_bookings_active_vehicle: %s", err.Error())
	}

	db.NewDB(d)
	return d
}

func createTestUser(t *testing.T, d *gorm.DB, email string, role types.Role) models.User {
	t.Helper()
	user := models.User{
		Name:     "Test User",
		Email:    email,
		Password: "not-a-real-hash",
		Role:     role,
	}
	if err := d.Create(&user).Error; err != nil {
		t.Fatalf("Could not create user: %s", err.Error())
	}
	return user
}

func createTestVehicle(t *testing.T, d *gorm.DB, registration string, price float64, status types.AvailabilityStatus) models.Vehicle {
	t.Helper()
	vehicle := models.Vehicle{
		VehicleName:        "Test Vehicle",
		Type:               types.VEHICLE_CAR,
		RegistrationNumber: registration,
		DailyRentPrice:     price,
		AvailabilityStatus: status,
	}
	if err := d.Create(&vehicle).Error; err != nil {
		t.Fatalf("Could not create vehicle: %s", err.Error())
	}
	return vehicle
}

func createTestBooking(t *testing.T, d *gorm.DB, customerID, vehicleID uint, start, end time.Time, status types.BookingStatus) models.Booking {
	t.Helper()
	booking := models.Booking{
		CustomerID:    customerID,
		VehicleID:     vehicleID,
		RentStartDate: start,
		RentEndDate:   end,
		TotalPrice:    100,
		Status:        status,
	}
	if err := d.Create(&booking).Error; err != nil {
		t.Fatalf("Could not create booking: %s", err.Error())
	}
	return booking
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
