package common

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"vrs/src/db"
	"vrs/src/lib"
	"vrs/src/models"
	"vrs/src/types"
	"vrs/src/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProcessExpiredBookings force-returns every active booking whose rental
// period ended before today and releases the vehicles, all in one
// transaction. Returns the number of bookings closed.
func ProcessExpiredBookings(today time.Time) (int, error) {
	today = utils.DateOnly(today)

	var expired []models.Booking
	db := db.GetDb()
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := lockForUpdate(tx).
			Model(&models.Booking{}).
			Select("id", "vehicle_id").
			Where("status = ?", types.BOOKING_ACTIVE).
			Where("rent_end_date < ?", today).
			Find(&expired).
			Error; err != nil {
			return err
		}
		if len(expired) == 0 {
			return nil
		}

		bookingIds := make([]uint, 0, len(expired))
		vehicleIds := make([]uint, 0, len(expired))
		for _, b := range expired {
			bookingIds = append(bookingIds, b.ID)
			vehicleIds = append(vehicleIds, b.VehicleID)
		}

		if err := tx.
			Model(&models.Booking{}).
			Where("id IN (?)", bookingIds).
			Update("status", types.BOOKING_RETURNED).
			Error; err != nil {
			return err
		}
		if err := tx.
			Model(&models.Vehicle{}).
			Where("id IN (?)", vehicleIds).
			Update("availability_status", types.VEHICLE_AVAILABLE).
			Error; err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	if len(expired) > 0 {
		log.Printf("Auto-returned %d expired bookings\n", len(expired))
	}
	recordSweepRun(len(expired))
	return len(expired), nil
}

func recordSweepRun(closed int) {
	rd := lib.GetRedisClient()
	if rd == nil {
		return
	}
	payload, _ := json.Marshal(map[string]any{
		"run_id": uuid.NewString(),
		"closed": closed,
		"ran_at": time.Now().UTC(),
	})
	if err := rd.Set(context.Background(), "auto_return:last_run", payload, 0).Err(); err != nil {
		log.Printf("[redis] Error recording sweep run: %s\n", err.Error())
	}
}
