package models

import "vrs/src/types"

type Vehicle struct {
	ID                 uint                     `gorm:"primarykey" json:"id"`
	VehicleName        string                   `gorm:"size:128;not null" json:"vehicle_name,omitempty"`
	Type               types.VehicleType        `gorm:"size:16;not null" json:"type,omitempty"`
	RegistrationNumber string                   `gorm:"uniqueIndex;size:32;not null" json:"registration_number,omitempty"`
	DailyRentPrice     float64                  `gorm:"not null" json:"daily_rent_price,omitempty"`
	AvailabilityStatus types.AvailabilityStatus `gorm:"size:16;default:'available';index" json:"availability_status,omitempty"`

	types.Timestamps
}
