package helper

import (
	"absensi_sinergi/database"
	"absensi_sinergi/model"
)

// RecordAttendance menambah satu baris log absensi lalu menghitung total
// scan untuk pasangan (event, peserta), termasuk baris yang baru masuk.
// Scan ulang memang menambah baris lagi, tidak pernah dideduplikasi.
func RecordAttendance(eventId, participantId uint) (int64, error) {
	db := database.DB

	entry := model.AttendanceLog{EventId: eventId, ParticipantId: participantId}
	if err := db.Create(&entry).Error; err != nil {
		return 0, err
	}

	var total int64
	if err := db.Model(&model.AttendanceLog{}).
		Where("event_id = ? AND participant_id = ?", eventId, participantId).
		Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

// CountEventStats rekap absensi satu event
func CountEventStats(eventId uint) (model.EventStats, error) {
	db := database.DB
	stats := model.EventStats{EventId: eventId}

	if err := db.Model(&model.Participant{}).
		Where("event_id = ?", eventId).
		Count(&stats.TotalParticipants).Error; err != nil {
		return stats, err
	}
	if err := db.Model(&model.AttendanceLog{}).
		Where("event_id = ?", eventId).
		Distinct("participant_id").
		Count(&stats.ScannedParticipants).Error; err != nil {
		return stats, err
	}
	if err := db.Model(&model.AttendanceLog{}).
		Where("event_id = ?", eventId).
		Count(&stats.TotalScans).Error; err != nil {
		return stats, err
	}
	return stats, nil
}
