package common

import (
	"errors"

	"vrs/src/db"
	"vrs/src/models"
	"vrs/src/types"

	"gorm.io/gorm"
)

func CreateVehicle(body types.CreateVehicleRequestBody) (*models.Vehicle, error) {
	availability := types.VEHICLE_AVAILABLE
	if body.AvailabilityStatus != "" {
		availability = types.AvailabilityStatus(body.AvailabilityStatus)
	}
	vehicle := models.Vehicle{
		VehicleName:        body.VehicleName,
		Type:               types.VehicleType(body.Type),
		RegistrationNumber: body.RegistrationNumber,
		DailyRentPrice:     body.DailyRentPrice,
		AvailabilityStatus: availability,
	}

	db := db.GetDb()
	err := db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.
			Model(&models.Vehicle{}).
			Where("registration_number = ?", body.RegistrationNumber).
			Count(&count).
			Error; err != nil {
			return err
		}
		if count > 0 {
			return types.NewConflict("vehicle with this registration number already exists")
		}
		return tx.Create(&vehicle).Error
	})
	if err != nil {
		return nil, err
	}
	return &vehicle, nil
}

func ListVehicles() ([]models.Vehicle, error) {
	db := db.GetDb()
	var vehicles []models.Vehicle
	if err := db.Order("id").Find(&vehicles).Error; err != nil {
		return nil, err
	}
	return vehicles, nil
}

func GetVehicle(id uint) (*models.Vehicle, error) {
	db := db.GetDb()
	var vehicle models.Vehicle
	if err := db.Where("id = ?", id).First(&vehicle).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, types.NewNotFound("vehicle not found")
		}
		return nil, err
	}
	return &vehicle, nil
}

// UpdateVehicle merges only the supplied fields over the current record.
func UpdateVehicle(id uint, body types.UpdateVehicleRequestBody) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	db := db.GetDb()
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := lockForUpdate(tx).
			Where("id = ?", id).
			First(&vehicle).
			Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return types.NewNotFound("vehicle not found")
			}
			return err
		}

		if body.RegistrationNumber != nil && *body.RegistrationNumber != vehicle.RegistrationNumber {
			var count int64
			if err := tx.
				Model(&models.Vehicle{}).
				Where("registration_number = ? AND id != ?", *body.RegistrationNumber, id).
				Count(&count).
				Error; err != nil {
				return err
			}
			if count > 0 {
				return types.NewConflict("vehicle with this registration number already exists")
			}
			vehicle.RegistrationNumber = *body.RegistrationNumber
		}
		if body.VehicleName != nil {
			vehicle.VehicleName = *body.VehicleName
		}
		if body.Type != nil {
			vehicle.Type = types.VehicleType(*body.Type)
		}
		if body.DailyRentPrice != nil {
			vehicle.DailyRentPrice = *body.DailyRentPrice
		}
		if body.AvailabilityStatus != nil {
			vehicle.AvailabilityStatus = types.AvailabilityStatus(*body.AvailabilityStatus)
		}
		return tx.Save(&vehicle).Error
	})
	if err != nil {
		return nil, err
	}
	return &vehicle, nil
}

func DeleteVehicle(id uint) error {
	db := db.GetDb()
	return db.Transaction(func(tx *gorm.DB) error {
		var vehicle models.Vehicle
		if err := tx.Where("id = ?", id).First(&vehicle).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return types.NewNotFound("vehicle not found")
			}
			return err
		}
		var activeBookings int64
		if err := tx.
			Model(&models.Booking{}).
			Where("vehicle_id = ? AND status = ?", id, types.BOOKING_ACTIVE).
			Count(&activeBookings).
			Error; err != nil {
			return err
		}
		if activeBookings > 0 {
			return types.NewFailedPrecondition("cannot delete vehicle with active bookings")
		}
		return tx.Delete(&vehicle).Error
	})
}
