package helper

import (
	"absensi_sinergi/constants"
	"absensi_sinergi/database"
	"absensi_sinergi/model"
	"absensi_sinergi/utils"
	"log"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/robfig/cron/v3"
)

var eventScheduler *cron.Cron
var recapScheduler gocron.Scheduler

// StartEventStatusScheduler menonaktifkan event yang sudah lewat ends_at,
// dicek tiap 5 menit.
func StartEventStatusScheduler() {
	eventScheduler = cron.New(cron.WithChain(
		cron.SkipIfStillRunning(cron.DefaultLogger),
	))

	_, err := eventScheduler.AddFunc("*/5 * * * *", deactivateEndedEvents)
	if err != nil {
		log.Printf("Gagal inisialisasi scheduler event: %v", err)
		return
	}

	eventScheduler.Start()
	log.Println("Scheduler status event aktif (tiap 5 menit)")
}

func deactivateEndedEvents() {
	now := time.Now()
	result := database.DB.Model(&model.Event{}).
		Where("is_active = ? AND ends_at IS NOT NULL AND ends_at < ?", true, now).
		Update("is_active", false)

	if result.Error != nil {
		log.Printf("Gagal menonaktifkan event: %v", result.Error)
		return
	}

	if result.RowsAffected > 0 {
		log.Printf("%d event dinonaktifkan karena sudah berakhir", result.RowsAffected)
	}
}

func StopEventStatusScheduler() {
	if eventScheduler != nil {
		eventScheduler.Stop()
	}
}

// StartDailyRecapScheduler kirim rekap absensi ke admin tiap jam 21:00 WIB
func StartDailyRecapScheduler() {
	s, err := gocron.NewScheduler(
		gocron.WithLocation(time.FixedZone("WIB", 7*3600)),
	)
	if err != nil {
		log.Printf("Gagal inisialisasi scheduler rekap: %v", err)
		return
	}
	recapScheduler = s

	_, err = s.NewJob(
		gocron.DailyJob(
			1,
			gocron.NewAtTimes(
				gocron.NewAtTime(21, 0, 0),
			),
		),
		gocron.NewTask(SendDailyRecap),
	)
	if err != nil {
		log.Printf("Gagal mendaftarkan job rekap: %v", err)
		return
	}

	s.Start()
	log.Println("Scheduler rekap harian aktif (21:00 WIB)")
}

func StopDailyRecapScheduler() {
	if recapScheduler != nil {
		_ = recapScheduler.Shutdown()
	}
}

// SendDailyRecap hitung rekap semua event aktif lalu kirim ke admin yang
// punya alamat email.
func SendDailyRecap() {
	db := database.DB

	var events []model.Event
	if err := db.Where("is_active = ?", true).Find(&events).Error; err != nil {
		log.Printf("Gagal memuat event untuk rekap: %v", err)
		return
	}
	if len(events) == 0 {
		return
	}

	var rows []utils.RecapRow
	for _, event := range events {
		stats, err := CountEventStats(event.ID)
		if err != nil {
			log.Printf("Gagal hitung rekap event '%s': %v", event.Name, err)
			continue
		}
		rows = append(rows, utils.RecapRow{
			EventName:           event.Name,
			TotalParticipants:   stats.TotalParticipants,
			ScannedParticipants: stats.ScannedParticipants,
			TotalScans:          stats.TotalScans,
		})
	}
	if len(rows) == 0 {
		return
	}

	var admins []model.Account
	if err := db.Where("role = ? AND active = ? AND email IS NOT NULL", constants.ROLE_ADMIN, true).
		Find(&admins).Error; err != nil {
		log.Printf("Gagal memuat admin untuk rekap: %v", err)
		return
	}

	for _, admin := range admins {
		if admin.Email == nil || *admin.Email == "" {
			continue
		}
		if err := utils.SendAttendanceRecapEmail(*admin.Email, rows); err != nil {
			log.Printf("Gagal kirim rekap ke %s: %v", *admin.Email, err)
		}
	}
}
