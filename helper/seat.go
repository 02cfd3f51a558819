package helper

import (
	"absensi_sinergi/database"
	"absensi_sinergi/model"
	"errors"

	"gorm.io/gorm"
)

// AssignSeat menempatkan peserta ke kursi (table, seat) dalam satu event.
// Kursi dibuat kalau belum ada. Assignment lama di kursi itu dan assignment
// lama milik peserta dihapus dulu supaya mapping tetap satu-satu.
// Seluruh urutan jalan dalam satu transaksi.
func AssignSeat(eventId uint, participantCode string, tableNumber, seatNumber int) error {
	db := database.DB

	var participant model.Participant
	if err := db.Where("event_id = ? AND participant_code = ?", eventId, participantCode).
		First(&participant).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrParticipantNotFound
		}
		return err
	}

	tx := db.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	seat := model.Seat{EventId: eventId, TableNumber: tableNumber, SeatNumber: seatNumber}
	if err := tx.Where(model.Seat{EventId: eventId, TableNumber: tableNumber, SeatNumber: seatNumber}).
		FirstOrCreate(&seat).Error; err != nil {
		tx.Rollback()
		return err
	}

	// Kosongkan kursi tujuan
	if err := tx.Where("event_id = ? AND seat_id = ?", eventId, seat.ID).
		Delete(&model.SeatAssignment{}).Error; err != nil {
		tx.Rollback()
		return err
	}

	// Lepas kursi lama peserta (kalau ada)
	if err := tx.Where("event_id = ? AND participant_id = ?", eventId, participant.ID).
		Delete(&model.SeatAssignment{}).Error; err != nil {
		tx.Rollback()
		return err
	}

	assignment := model.SeatAssignment{
		EventId:       eventId,
		SeatId:        seat.ID,
		ParticipantId: participant.ID,
	}
	if err := tx.Create(&assignment).Error; err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}

// UnassignSeat melepas assignment di kursi (table, seat).
// Kursi yang tidak ada dianggap sukses (idempotent).
func UnassignSeat(eventId uint, tableNumber, seatNumber int) error {
	db := database.DB

	var seat model.Seat
	if err := db.Where("event_id = ? AND table_number = ? AND seat_number = ?", eventId, tableNumber, seatNumber).
		First(&seat).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	return db.Where("event_id = ? AND seat_id = ?", eventId, seat.ID).
		Delete(&model.SeatAssignment{}).Error
}

// FindSeatForParticipant mencari posisi duduk peserta. nil kalau belum duduk.
func FindSeatForParticipant(eventId, participantId uint) (*model.Seat, error) {
	db := database.DB

	var assignment model.SeatAssignment
	err := db.Preload("Seat").
		Where("event_id = ? AND participant_id = ?", eventId, participantId).
		First(&assignment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &assignment.Seat, nil
}
