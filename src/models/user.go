package models

import "vrs/src/types"

type User struct {
	ID       uint       `gorm:"primarykey" json:"id"`
	Name     string     `json:"name,omitempty"`
	Email    string     `gorm:"uniqueIndex;size:128;not null" json:"email,omitempty"`
	Password string     `gorm:"size:128;not null" json:"-"`
	Phone    string     `gorm:"size:32" json:"phone,omitempty"`
	Role     types.Role `gorm:"size:16;default:'customer'" json:"role,omitempty"`

	Bookings []*Booking `gorm:"foreignKey:CustomerID" json:"bookings,omitempty"`

	types.Timestamps
}
