package testutil

import (
	"absensi_sinergi/database"
	"absensi_sinergi/model"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupTestDB menyiapkan DB sqlite in-memory dengan skema lengkap dan
// memasangnya sebagai database.DB supaya helper/handler bisa dites
// tanpa Postgres.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	// Bersihkan tabel sebelum tiap test
	db.Migrator().DropTable(
		&model.AttendanceLog{},
		&model.SeatAssignment{},
		&model.Seat{},
		&model.Participant{},
		&model.Event{},
		&model.PasswordResetToken{},
		&model.Account{},
	)

	if err := db.AutoMigrate(
		&model.Account{},
		&model.PasswordResetToken{},
		&model.Event{},
		&model.Participant{},
		&model.Seat{},
		&model.SeatAssignment{},
		&model.AttendanceLog{},
	); err != nil {
		t.Fatalf("Failed to migrate schema: %v", err)
	}

	database.DB = db
	return db
}

func CreateEvent(t *testing.T, db *gorm.DB, name string, active bool) model.Event {
	t.Helper()
	event := model.Event{Name: name, Slug: name, IsActive: active}
	if err := db.Create(&event).Error; err != nil {
		t.Fatalf("Failed to create event: %v", err)
	}
	if !active {
		// GORM melewatkan field bool bernilai zero saat insert, sehingga
		// default:true di kolom is_active menimpa nilai false; tulis ulang
		// secara eksplisit supaya event benar-benar nonaktif.
		if err := db.Model(&event).Update("is_active", false).Error; err != nil {
			t.Fatalf("Failed to deactivate event: %v", err)
		}
	}
	return event
}

func CreateParticipant(t *testing.T, db *gorm.DB, eventId uint, code, name string) model.Participant {
	t.Helper()
	participant := model.Participant{EventId: eventId, ParticipantCode: code, FullName: name}
	if err := db.Create(&participant).Error; err != nil {
		t.Fatalf("Failed to create participant: %v", err)
	}
	return participant
}
