package helper

import (
	"absensi_sinergi/model"
	"absensi_sinergi/testutil"
	"errors"
	"testing"

	"gorm.io/gorm"
)

func countAssignments(t *testing.T, db *gorm.DB, eventId uint) int64 {
	t.Helper()
	var count int64
	if err := db.Model(&model.SeatAssignment{}).Where("event_id = ?", eventId).Count(&count).Error; err != nil {
		t.Fatalf("Failed to count assignments: %v", err)
	}
	return count
}

func TestAssignSeatCreatesSeatAndAssignment(t *testing.T) {
	db := testutil.SetupTestDB(t)
	event := testutil.CreateEvent(t, db, "Gala Dinner", true)
	participant := testutil.CreateParticipant(t, db, event.ID, "A100", "Budi Santoso")

	if err := AssignSeat(event.ID, "A100", 3, 5); err != nil {
		t.Fatalf("AssignSeat failed: %v", err)
	}

	seat, err := FindSeatForParticipant(event.ID, participant.ID)
	if err != nil {
		t.Fatalf("FindSeatForParticipant failed: %v", err)
	}
	if seat == nil {
		t.Fatal("expected a seat, got nil")
	}
	if seat.TableNumber != 3 || seat.SeatNumber != 5 {
		t.Errorf("expected seat 3/5, got %d/%d", seat.TableNumber, seat.SeatNumber)
	}
}

func TestAssignSeatIdempotent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	event := testutil.CreateEvent(t, db, "Gala Dinner", true)
	testutil.CreateParticipant(t, db, event.ID, "A100", "Budi Santoso")

	if err := AssignSeat(event.ID, "A100", 3, 5); err != nil {
		t.Fatalf("first AssignSeat failed: %v", err)
	}
	if err := AssignSeat(event.ID, "A100", 3, 5); err != nil {
		t.Fatalf("second AssignSeat failed: %v", err)
	}

	if got := countAssignments(t, db, event.ID); got != 1 {
		t.Errorf("expected 1 assignment, got %d", got)
	}

	var seats int64
	db.Model(&model.Seat{}).Where("event_id = ?", event.ID).Count(&seats)
	if seats != 1 {
		t.Errorf("expected 1 seat, got %d", seats)
	}
}

func TestAssignSeatMovesParticipant(t *testing.T) {
	db := testutil.SetupTestDB(t)
	event := testutil.CreateEvent(t, db, "Gala Dinner", true)
	participant := testutil.CreateParticipant(t, db, event.ID, "A100", "Budi Santoso")

	if err := AssignSeat(event.ID, "A100", 3, 5); err != nil {
		t.Fatalf("AssignSeat 3/5 failed: %v", err)
	}
	if err := AssignSeat(event.ID, "A100", 4, 1); err != nil {
		t.Fatalf("AssignSeat 4/1 failed: %v", err)
	}

	seat, err := FindSeatForParticipant(event.ID, participant.ID)
	if err != nil {
		t.Fatalf("FindSeatForParticipant failed: %v", err)
	}
	if seat == nil || seat.TableNumber != 4 || seat.SeatNumber != 1 {
		t.Fatalf("expected seat 4/1, got %+v", seat)
	}

	// Kursi lama harus kosong
	var oldSeat model.Seat
	if err := db.Where("event_id = ? AND table_number = ? AND seat_number = ?", event.ID, 3, 5).
		First(&oldSeat).Error; err != nil {
		t.Fatalf("old seat lookup failed: %v", err)
	}
	var onOldSeat int64
	db.Model(&model.SeatAssignment{}).Where("seat_id = ?", oldSeat.ID).Count(&onOldSeat)
	if onOldSeat != 0 {
		t.Errorf("expected old seat empty, got %d assignments", onOldSeat)
	}

	if got := countAssignments(t, db, event.ID); got != 1 {
		t.Errorf("expected 1 assignment, got %d", got)
	}
}

func TestAssignSeatReplacesOccupant(t *testing.T) {
	db := testutil.SetupTestDB(t)
	event := testutil.CreateEvent(t, db, "Gala Dinner", true)
	first := testutil.CreateParticipant(t, db, event.ID, "A100", "Budi Santoso")
	second := testutil.CreateParticipant(t, db, event.ID, "A200", "Siti Aminah")

	if err := AssignSeat(event.ID, "A100", 3, 5); err != nil {
		t.Fatalf("AssignSeat A100 failed: %v", err)
	}
	if err := AssignSeat(event.ID, "A200", 3, 5); err != nil {
		t.Fatalf("AssignSeat A200 failed: %v", err)
	}

	seat, err := FindSeatForParticipant(event.ID, second.ID)
	if err != nil {
		t.Fatalf("FindSeatForParticipant failed: %v", err)
	}
	if seat == nil || seat.TableNumber != 3 || seat.SeatNumber != 5 {
		t.Fatalf("expected A200 on seat 3/5, got %+v", seat)
	}

	oldSeat, err := FindSeatForParticipant(event.ID, first.ID)
	if err != nil {
		t.Fatalf("FindSeatForParticipant failed: %v", err)
	}
	if oldSeat != nil {
		t.Errorf("expected A100 unseated, got %+v", oldSeat)
	}
}

func TestAssignSeatParticipantNotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	event := testutil.CreateEvent(t, db, "Gala Dinner", true)

	err := AssignSeat(event.ID, "ZZZ", 1, 1)
	if !errors.Is(err, ErrParticipantNotFound) {
		t.Fatalf("expected ErrParticipantNotFound, got %v", err)
	}
}

func TestAssignSeatScopedPerEvent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	eventA := testutil.CreateEvent(t, db, "Event A", true)
	eventB := testutil.CreateEvent(t, db, "Event B", true)
	testutil.CreateParticipant(t, db, eventA.ID, "A100", "Budi Santoso")
	participantB := testutil.CreateParticipant(t, db, eventB.ID, "A100", "Budi Santoso")

	if err := AssignSeat(eventA.ID, "A100", 3, 5); err != nil {
		t.Fatalf("AssignSeat event A failed: %v", err)
	}
	if err := AssignSeat(eventB.ID, "A100", 3, 5); err != nil {
		t.Fatalf("AssignSeat event B failed: %v", err)
	}

	seat, err := FindSeatForParticipant(eventB.ID, participantB.ID)
	if err != nil {
		t.Fatalf("FindSeatForParticipant failed: %v", err)
	}
	if seat == nil || seat.EventId != eventB.ID {
		t.Fatalf("expected seat in event B, got %+v", seat)
	}
	if got := countAssignments(t, db, eventA.ID); got != 1 {
		t.Errorf("expected event A untouched, got %d assignments", got)
	}
}

func TestUnassignSeat(t *testing.T) {
	db := testutil.SetupTestDB(t)
	event := testutil.CreateEvent(t, db, "Gala Dinner", true)
	participant := testutil.CreateParticipant(t, db, event.ID, "A100", "Budi Santoso")

	if err := AssignSeat(event.ID, "A100", 3, 5); err != nil {
		t.Fatalf("AssignSeat failed: %v", err)
	}
	if err := UnassignSeat(event.ID, 3, 5); err != nil {
		t.Fatalf("UnassignSeat failed: %v", err)
	}

	seat, err := FindSeatForParticipant(event.ID, participant.ID)
	if err != nil {
		t.Fatalf("FindSeatForParticipant failed: %v", err)
	}
	if seat != nil {
		t.Errorf("expected participant unseated, got %+v", seat)
	}
}

func TestUnassignSeatMissingSeatIsNoop(t *testing.T) {
	db := testutil.SetupTestDB(t)
	event := testutil.CreateEvent(t, db, "Gala Dinner", true)

	if err := UnassignSeat(event.ID, 9, 9); err != nil {
		t.Fatalf("expected no error for missing seat, got %v", err)
	}
}

func TestRecordAttendanceAppendsEveryScan(t *testing.T) {
	db := testutil.SetupTestDB(t)
	event := testutil.CreateEvent(t, db, "Gala Dinner", true)
	participant := testutil.CreateParticipant(t, db, event.ID, "A100", "Budi Santoso")

	total, err := RecordAttendance(event.ID, participant.ID)
	if err != nil {
		t.Fatalf("RecordAttendance failed: %v", err)
	}
	if total != 1 {
		t.Errorf("expected total 1, got %d", total)
	}

	total, err = RecordAttendance(event.ID, participant.ID)
	if err != nil {
		t.Fatalf("RecordAttendance failed: %v", err)
	}
	if total != 2 {
		t.Errorf("expected total 2, got %d", total)
	}

	var rows int64
	db.Model(&model.AttendanceLog{}).Where("event_id = ?", event.ID).Count(&rows)
	if rows != 2 {
		t.Errorf("expected 2 log rows, got %d", rows)
	}
}

func TestCountEventStats(t *testing.T) {
	db := testutil.SetupTestDB(t)
	event := testutil.CreateEvent(t, db, "Gala Dinner", true)
	first := testutil.CreateParticipant(t, db, event.ID, "A100", "Budi Santoso")
	testutil.CreateParticipant(t, db, event.ID, "A200", "Siti Aminah")
	testutil.CreateParticipant(t, db, event.ID, "A300", "Joko Susilo")

	RecordAttendance(event.ID, first.ID)
	RecordAttendance(event.ID, first.ID)

	stats, err := CountEventStats(event.ID)
	if err != nil {
		t.Fatalf("CountEventStats failed: %v", err)
	}
	if stats.TotalParticipants != 3 {
		t.Errorf("expected 3 participants, got %d", stats.TotalParticipants)
	}
	if stats.ScannedParticipants != 1 {
		t.Errorf("expected 1 scanned participant, got %d", stats.ScannedParticipants)
	}
	if stats.TotalScans != 2 {
		t.Errorf("expected 2 total scans, got %d", stats.TotalScans)
	}
}
