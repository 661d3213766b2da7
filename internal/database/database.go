package database

import (
	"log"
	"strings"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"

	// registers the CGO-free "sqlite" driver
	_ "modernc.org/sqlite"

	"agendamentos/internal/domain"
)

func Connect(dsn string) (*gorm.DB, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		log.Println("Connecting to PostgreSQL...")
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}

	log.Println("Using SQLite for local development:", dsn)

	return gorm.Open(
		gormsqlite.New(gormsqlite.Config{
			DriverName: "sqlite",
			DSN:        dsn,
		}),
		&gorm.Config{},
	)
}

// Migrate creates the schema plus the partial unique index that backstops
// the slot-availability check. A booking only holds its slot while its
// status is confirmed or pending_payment, so the index is filtered on those.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.ConsultoriaType{},
		&domain.QualificationResponse{},
		&domain.Booking{},
		&domain.DiscountCode{},
		&domain.AnalyticsEvent{},
	); err != nil {
		return err
	}

	return db.Exec(`
CREATE UNIQUE INDEX IF NOT EXISTS idx_no_double_booking
ON consultoria_bookings (consultoria_type_id, scheduled_date, scheduled_time)
WHERE booking_status IN ('confirmed', 'pending_payment')
`).Error
}
