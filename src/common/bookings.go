package common

import (
	"errors"
	"fmt"
	"time"

	"vrs/src/config"
	"vrs/src/db"
	"vrs/src/models"
	"vrs/src/types"
	"vrs/src/utils"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// lockForUpdate takes a row-level lock so the availability check and the
// status flip happen against the same snapshot. Concurrent creations on the
// same vehicle serialize here instead of both observing "available".
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "sqlite" {
		// sqlite holds a database-level write lock for the whole transaction.
		return tx
	}
	return tx.Clauses(clause.Locking{
		Strength: "UPDATE",
		Table:    clause.Table{Name: clause.CurrentTable},
	})
}

func CreateBooking(customerID uint, body types.CreateBookingRequestBody) (*types.APIResponseBooking, error) {
	startDate, err := time.Parse(config.DATE_PARSE_FORMAT, body.RentStartDate)
	if err != nil {
		return nil, types.NewInvalidArgument("rent_start_date must be a valid date")
	}
	endDate, err := time.Parse(config.DATE_PARSE_FORMAT, body.RentEndDate)
	if err != nil {
		return nil, types.NewInvalidArgument("rent_end_date must be a valid date")
	}
	if !endDate.After(startDate) {
		return nil, types.NewInvalidArgument("end date must be after start date")
	}

	var booking models.Booking
	var vehicle models.Vehicle
	db := db.GetDb()
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := lockForUpdate(tx).
			Where("id = ?", body.VehicleID).
			First(&vehicle).
			Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return types.NewNotFound("vehicle not found")
			}
			return err
		}
		if vehicle.AvailabilityStatus != types.VEHICLE_AVAILABLE {
			return types.NewConflict("vehicle is not available for booking")
		}

		numberOfDays := utils.CalculateDays(startDate, endDate)
		booking = models.Booking{
			CustomerID:    customerID,
			VehicleID:     vehicle.ID,
			RentStartDate: startDate,
			RentEndDate:   endDate,
			TotalPrice:    vehicle.DailyRentPrice * float64(numberOfDays),
			Status:        types.BOOKING_ACTIVE,
		}
		if err := tx.Create(&booking).Error; err != nil {
			return err
		}
		if err := tx.
			Model(&models.Vehicle{}).
			Where("id = ?", vehicle.ID).
			Update("availability_status", types.VEHICLE_BOOKED).
			Error; err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	resp := bookingResponse(&booking)
	resp.Vehicle = &types.APIResponseBookingVehicle{
		VehicleName:    vehicle.VehicleName,
		DailyRentPrice: &vehicle.DailyRentPrice,
	}
	return resp, nil
}

func ListBookings(userID uint, role types.Role) ([]*types.APIResponseBooking, error) {
	db := db.GetDb()
	q := db.
		Model(&models.Booking{}).
		Preload("Customer").
		Preload("Vehicle")
	if role != types.ROLE_ADMIN {
		q = q.Where("customer_id = ?", userID)
	}
	var bookings []models.Booking
	if err := q.Order("id DESC").Find(&bookings).Error; err != nil {
		return nil, err
	}

	out := make([]*types.APIResponseBooking, 0, len(bookings))
	for i := range bookings {
		b := &bookings[i]
		resp := bookingResponse(b)
		if b.Vehicle != nil {
			resp.Vehicle = &types.APIResponseBookingVehicle{
				VehicleName:        b.Vehicle.VehicleName,
				RegistrationNumber: b.Vehicle.RegistrationNumber,
			}
		}
		if role == types.ROLE_ADMIN {
			if b.Customer != nil {
				resp.Customer = &types.APIResponseBookingCustomer{
					Name:  b.Customer.Name,
					Email: b.Customer.Email,
				}
			}
		} else {
			// Customers get vehicle details but no echo of their own record.
			resp.CustomerID = 0
			if b.Vehicle != nil {
				resp.Vehicle.Type = string(b.Vehicle.Type)
			}
		}
		out = append(out, resp)
	}
	return out, nil
}

func UpdateBookingStatus(bookingID uint, status types.BookingStatus, userID uint, role types.Role, now time.Time) (*types.APIResponseBooking, error) {
	if status != types.BOOKING_CANCELLED && status != types.BOOKING_RETURNED {
		return nil, types.NewInvalidArgument("invalid status update")
	}

	var booking models.Booking
	db := db.GetDb()
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := lockForUpdate(tx).
			Where("id = ?", bookingID).
			First(&booking).
			Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return types.NewNotFound("booking not found")
			}
			return err
		}
		if booking.Status != types.BOOKING_ACTIVE {
			return types.NewFailedPrecondition(fmt.Sprintf("booking is already %s", booking.Status))
		}

		switch status {
		case types.BOOKING_CANCELLED:
			if role == types.ROLE_CUSTOMER && booking.CustomerID != userID {
				return types.NewPermissionDenied("you can only cancel your own bookings")
			}
			if booking.RentStartDate.Before(utils.DateOnly(now)) {
				return types.NewFailedPrecondition("cannot cancel a booking that has already started")
			}
		case types.BOOKING_RETURNED:
			if role != types.ROLE_ADMIN {
				return types.NewPermissionDenied("only admins can mark bookings as returned")
			}
		}

		if err := tx.
			Model(&models.Booking{}).
			Where("id = ?", bookingID).
			Update("status", status).
			Error; err != nil {
			return err
		}
		if err := tx.
			Model(&models.Vehicle{}).
			Where("id = ?", booking.VehicleID).
			Update("availability_status", types.VEHICLE_AVAILABLE).
			Error; err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	booking.Status = status
	resp := bookingResponse(&booking)
	if status == types.BOOKING_RETURNED {
		resp.Vehicle = &types.APIResponseBookingVehicle{
			AvailabilityStatus: string(types.VEHICLE_AVAILABLE),
		}
	}
	return resp, nil
}

func bookingResponse(b *models.Booking) *types.APIResponseBooking {
	return &types.APIResponseBooking{
		ID:            b.ID,
		CustomerID:    b.CustomerID,
		VehicleID:     b.VehicleID,
		RentStartDate: b.RentStartDate.Format(config.DATE_PARSE_FORMAT),
		RentEndDate:   b.RentEndDate.Format(config.DATE_PARSE_FORMAT),
		TotalPrice:    b.TotalPrice,
		Status:        string(b.Status),
	}
}
