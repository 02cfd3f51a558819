package handler

import (
	"absensi_sinergi/constants"
	"absensi_sinergi/model"
	"absensi_sinergi/testutil"
	"absensi_sinergi/validate"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func newSeatApp() *fiber.App {
	app := fiber.New()
	app.Post("/api/v1/event/:eventId/assign", validate.AssignSeat("eventId"), AssignSeat)
	app.Delete("/api/v1/event/:eventId/assign", validate.UnassignSeat("eventId"), UnassignSeat)
	return app
}

func doSeatRequest(t *testing.T, app *fiber.App, method, url, body string) (int, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest(method, url, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	var payload map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	return resp.StatusCode, payload
}

func TestAssignSeatEndpoint(t *testing.T) {
	db := testutil.SetupTestDB(t)
	event := testutil.CreateEvent(t, db, "Gala Dinner", true)
	participant := testutil.CreateParticipant(t, db, event.ID, "A100", "Budi Santoso")

	app := newSeatApp()
	url := fmt.Sprintf("/api/v1/event/%d/assign", event.ID)

	status, payload := doSeatRequest(t, app, http.MethodPost, url,
		`{"participantCode":"A100","tableNumber":3,"seatNumber":5}`)
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d: %v", status, payload)
	}

	var assignment model.SeatAssignment
	if err := db.Preload("Seat").Where("event_id = ? AND participant_id = ?", event.ID, participant.ID).
		First(&assignment).Error; err != nil {
		t.Fatalf("assignment lookup failed: %v", err)
	}
	if assignment.Seat.TableNumber != 3 || assignment.Seat.SeatNumber != 5 {
		t.Errorf("expected seat 3/5, got %d/%d", assignment.Seat.TableNumber, assignment.Seat.SeatNumber)
	}
}

func TestAssignSeatEndpointValidation(t *testing.T) {
	db := testutil.SetupTestDB(t)
	event := testutil.CreateEvent(t, db, "Gala Dinner", true)
	testutil.CreateParticipant(t, db, event.ID, "A100", "Budi Santoso")

	app := newSeatApp()
	url := fmt.Sprintf("/api/v1/event/%d/assign", event.ID)

	tests := []struct {
		name string
		body string
	}{
		{"zero table", `{"participantCode":"A100","tableNumber":0,"seatNumber":5}`},
		{"negative seat", `{"participantCode":"A100","tableNumber":3,"seatNumber":-1}`},
		{"missing code", `{"tableNumber":3,"seatNumber":5}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, _ := doSeatRequest(t, app, http.MethodPost, url, tt.body)
			if status != http.StatusBadRequest {
				t.Errorf("expected 400, got %d", status)
			}
		})
	}

	var count int64
	db.Model(&model.SeatAssignment{}).Count(&count)
	if count != 0 {
		t.Errorf("expected no assignments after rejected input, got %d", count)
	}
}

func TestAssignSeatEndpointNotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	event := testutil.CreateEvent(t, db, "Gala Dinner", true)

	app := newSeatApp()

	status, payload := doSeatRequest(t, app, http.MethodPost, "/api/v1/event/9999/assign",
		`{"participantCode":"A100","tableNumber":3,"seatNumber":5}`)
	if status != http.StatusNotFound {
		t.Fatalf("expected 404 for missing event, got %d", status)
	}
	if payload["message"] != constants.EVENT_NOT_FOUND {
		t.Errorf("expected message %q, got %v", constants.EVENT_NOT_FOUND, payload["message"])
	}

	url := fmt.Sprintf("/api/v1/event/%d/assign", event.ID)
	status, payload = doSeatRequest(t, app, http.MethodPost, url,
		`{"participantCode":"ZZZ","tableNumber":3,"seatNumber":5}`)
	if status != http.StatusNotFound {
		t.Fatalf("expected 404 for missing participant, got %d", status)
	}
	if payload["message"] != constants.PARTICIPANT_NOT_FOUND {
		t.Errorf("expected message %q, got %v", constants.PARTICIPANT_NOT_FOUND, payload["message"])
	}
}

func TestUnassignSeatEndpoint(t *testing.T) {
	db := testutil.SetupTestDB(t)
	event := testutil.CreateEvent(t, db, "Gala Dinner", true)
	testutil.CreateParticipant(t, db, event.ID, "A100", "Budi Santoso")

	app := newSeatApp()
	url := fmt.Sprintf("/api/v1/event/%d/assign", event.ID)

	if status, payload := doSeatRequest(t, app, http.MethodPost, url,
		`{"participantCode":"A100","tableNumber":3,"seatNumber":5}`); status != http.StatusOK {
		t.Fatalf("assign failed: %d %v", status, payload)
	}

	status, payload := doSeatRequest(t, app, http.MethodDelete, url, `{"tableNumber":3,"seatNumber":5}`)
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d: %v", status, payload)
	}

	var count int64
	db.Model(&model.SeatAssignment{}).Where("event_id = ?", event.ID).Count(&count)
	if count != 0 {
		t.Errorf("expected seat emptied, got %d assignments", count)
	}

	// Mengosongkan kursi yang sudah kosong tetap sukses
	status, _ = doSeatRequest(t, app, http.MethodDelete, url, `{"tableNumber":3,"seatNumber":5}`)
	if status != http.StatusOK {
		t.Fatalf("expected 200 on repeat unassign, got %d", status)
	}
}
