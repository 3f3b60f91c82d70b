package models

import (
	"time"

	"vrs/src/types"
)

type Booking struct {
	ID            uint                `gorm:"primarykey" json:"id"`
	CustomerID    uint                `gorm:"index;not null" json:"customer_id,omitempty"`
	VehicleID     uint                `gorm:"index;not null" json:"vehicle_id,omitempty"`
	RentStartDate time.Time           `gorm:"type:date;not null" json:"rent_start_date"`
	RentEndDate   time.Time           `gorm:"type:date;not null" json:"rent_end_date"`
	TotalPrice    float64             `json:"total_price,omitempty"`
	Status        types.BookingStatus `gorm:"size:16;default:'active';index" json:"status,omitempty"`

	Customer *User    `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Vehicle  *Vehicle `gorm:"foreignKey:VehicleID" json:"vehicle,omitempty"`

	types.Timestamps
}
