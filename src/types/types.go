package types

import (
	"time"

	"gorm.io/gorm"
)

type Timestamps struct {
	CreatedAt time.Time      `gorm:"autoCreateTime:nano" json:"created_at,omitempty"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime:nano" json:"updated_at,omitempty"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

type Role string

const (
	ROLE_ADMIN    Role = "admin"
	ROLE_CUSTOMER Role = "customer"
)

type VehicleType string

const (
	VEHICLE_CAR  VehicleType = "car"
	VEHICLE_BIKE VehicleType = "bike"
	VEHICLE_VAN  VehicleType = "van"
	VEHICLE_SUV  VehicleType = "SUV"
)

type AvailabilityStatus string

const (
	VEHICLE_AVAILABLE AvailabilityStatus = "available"
	VEHICLE_BOOKED    AvailabilityStatus = "booked"
)

type BookingStatus string

const (
	BOOKING_ACTIVE    BookingStatus = "active"
	BOOKING_CANCELLED BookingStatus = "cancelled"
	BOOKING_RETURNED  BookingStatus = "returned"
)

type SimpleRequestParams struct {
	ID uint `uri:"id" binding:"required"`
}

type SignupRequestBody struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Phone    string `json:"phone,omitempty"`
	Role     string `json:"role,omitempty" binding:"omitempty,oneof=admin customer"`
}

type SigninRequestBody struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type CreateVehicleRequestBody struct {
	VehicleName        string  `json:"vehicle_name" binding:"required"`
	Type               string  `json:"type" binding:"required,oneof=car bike van SUV"`
	RegistrationNumber string  `json:"registration_number" binding:"required"`
	DailyRentPrice     float64 `json:"daily_rent_price" binding:"required,gt=0"`
	AvailabilityStatus string  `json:"availability_status,omitempty" binding:"omitempty,oneof=available booked"`
}

// UpdateVehicleRequestBody carries a partial update: nil fields keep prior values.
type UpdateVehicleRequestBody struct {
	VehicleName        *string  `json:"vehicle_name,omitempty"`
	Type               *string  `json:"type,omitempty" binding:"omitempty,oneof=car bike van SUV"`
	RegistrationNumber *string  `json:"registration_number,omitempty"`
	DailyRentPrice     *float64 `json:"daily_rent_price,omitempty" binding:"omitempty,gt=0"`
	AvailabilityStatus *string  `json:"availability_status,omitempty" binding:"omitempty,oneof=available booked"`
}

type CreateBookingRequestBody struct {
	CustomerID    uint   `json:"customer_id,omitempty"`
	VehicleID     uint   `json:"vehicle_id" binding:"required"`
	RentStartDate string `json:"rent_start_date" binding:"required,rentaldate"`
	RentEndDate   string `json:"rent_end_date" binding:"required,rentaldate"`
}

type UpdateBookingStatusRequestBody struct {
	Status string `json:"status" binding:"required"`
}

type UpdateUserRequestBody struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty" binding:"omitempty,email"`
	Phone *string `json:"phone,omitempty"`
	Role  *string `json:"role,omitempty" binding:"omitempty,oneof=admin customer"`
}

type APIResponseUser struct {
	ID    uint   `json:"id"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
	Role  string `json:"role,omitempty"`
}

type APIResponseBookingCustomer struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

type APIResponseBookingVehicle struct {
	VehicleName        string   `json:"vehicle_name,omitempty"`
	RegistrationNumber string   `json:"registration_number,omitempty"`
	Type               string   `json:"type,omitempty"`
	DailyRentPrice     *float64 `json:"daily_rent_price,omitempty"`
	AvailabilityStatus string   `json:"availability_status,omitempty"`
}

type APIResponseBooking struct {
	ID            uint    `json:"id"`
	CustomerID    uint    `json:"customer_id,omitempty"`
	VehicleID     uint    `json:"vehicle_id,omitempty"`
	RentStartDate string  `json:"rent_start_date,omitempty"`
	RentEndDate   string  `json:"rent_end_date,omitempty"`
	TotalPrice    float64 `json:"total_price,omitempty"`
	Status        string  `json:"status,omitempty"`

	Customer *APIResponseBookingCustomer `json:"customer,omitempty"`
	Vehicle  *APIResponseBookingVehicle  `json:"vehicle,omitempty"`
}
