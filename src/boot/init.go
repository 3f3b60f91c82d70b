package boot

import (
	"log"
	"os"
	"time"

	"vrs/src/common"
	"vrs/src/db"
	"vrs/src/lib"
	"vrs/src/models"
	"vrs/src/types"
	"vrs/src/utils"

	"gorm.io/gorm"
)

func InitDb() *gorm.DB {
	db := db.GetDb()

	err := db.AutoMigrate(
		&models.User{},
		&models.Vehicle{},
		&models.Booking{},
	)
	if err != nil {
		log.Fatalf("error migration: %s", err.Error())
	}

	// Constraint-level backstop for the availability gating: a vehicle can
	// carry at most one active booking.
	if err := db.Exec(`
	CREATE UNIQUE INDEX IF NOT EXISTS idx_bookings_active_vehicle
	ON bookings (vehicle_id) WHERE status = 'active';
	`).Error; err != nil {
		log.Printf("Error creating index idx_bookings_active_vehicle: %s\n", err.Error())
	}

	return db
}

// autoReturnPeriod is how often the overdue-booking sweep runs.
const autoReturnPeriod = 24 * time.Hour

func InitScheduler() {
	jobId, err := lib.CreateRecurringJob(func() {
		if _, err := common.ProcessExpiredBookings(time.Now()); err != nil {
			log.Printf("Auto-return sweep failed: %s\n", err.Error())
		}
	}, autoReturnPeriod)
	if err != nil {
		log.Printf("Error scheduling auto-return job: %s\n", err.Error())
		return
	}
	sched, err := lib.GetScheduler()
	if err != nil {
		log.Println("An error has occurred. Check logs for info")
		return
	}
	log.Printf("Auto-return scheduler started (runs every 24 hours), job: %s\n", *jobId)
	sched.Start()
}

func StopScheduler() {
	sched, err := lib.GetScheduler()
	if err != nil {
		log.Println("Error retrieving Scheduler. Check logs for info")
		return
	}
	if err := sched.Shutdown(); err != nil {
		log.Println("An error has occurred while stopping Scheduler. Check logs for info")
	}
}

// SeedAdminUser creates the bootstrap admin account when ADMIN_EMAIL and
// ADMIN_PASSWORD are set and no user holds that address yet.
func SeedAdminUser() {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		return
	}
	email = utils.NormalizeEmail(email)
	db := db.GetDb()
	var count int64
	if err := db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		log.Printf("Error checking for admin user: %s\n", err.Error())
		return
	}
	if count > 0 {
		return
	}
	hashed, err := utils.HashPassword(password)
	if err != nil {
		log.Printf("Error hashing admin password: %s\n", err.Error())
		return
	}
	admin := models.User{
		Name:     "Administrator",
		Email:    email,
		Password: hashed,
		Role:     types.ROLE_ADMIN,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Printf("Error seeding admin user: %s\n", err.Error())
		return
	}
	log.Printf("Seeded admin user [%d]\n", admin.ID)
}
