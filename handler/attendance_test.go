package handler

import (
	"absensi_sinergi/constants"
	"absensi_sinergi/helper"
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

func newScanApp() *fiber.App {
	app := fiber.New()
	app.Post("/api/v1/absensi/scan", validate.Scan(), Scan)
	return app
}

func doScan(t *testing.T, app *fiber.App, body string) (int, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/absensi/scan", strings.NewReader(body))
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

func scanData(t *testing.T, payload map[string]interface{}) map[string]interface{} {
	t.Helper()
	data, ok := payload["data"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected data object, got %v", payload)
	}
	return data
}

func TestScanWithEventId(t *testing.T) {
	db := testutil.SetupTestDB(t)
	event := testutil.CreateEvent(t, db, "Gala Dinner", true)
	testutil.CreateParticipant(t, db, event.ID, "A100", "Budi Santoso")
	if err := helper.AssignSeat(event.ID, "A100", 3, 5); err != nil {
		t.Fatalf("AssignSeat failed: %v", err)
	}

	app := newScanApp()
	body := fmt.Sprintf(`{"eventId":%d,"participantCode":"A100"}`, event.ID)

	status, payload := doScan(t, app, body)
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d: %v", status, payload)
	}
	data := scanData(t, payload)
	if data["participantName"] != "Budi Santoso" {
		t.Errorf("expected participantName Budi Santoso, got %v", data["participantName"])
	}
	if data["eventName"] != "Gala Dinner" {
		t.Errorf("expected eventName Gala Dinner, got %v", data["eventName"])
	}
	if data["tableNumber"] != float64(3) || data["seatNumber"] != float64(5) {
		t.Errorf("expected seat 3/5, got %v/%v", data["tableNumber"], data["seatNumber"])
	}
	if data["totalScans"] != float64(1) {
		t.Errorf("expected totalScans 1, got %v", data["totalScans"])
	}

	// Scan ulang menambah hitungan, tidak dideduplikasi
	status, payload = doScan(t, app, body)
	if status != http.StatusOK {
		t.Fatalf("expected 200 on rescan, got %d", status)
	}
	data = scanData(t, payload)
	if data["totalScans"] != float64(2) {
		t.Errorf("expected totalScans 2, got %v", data["totalScans"])
	}

	var rows int64
	db.Model(&model.AttendanceLog{}).Where("event_id = ?", event.ID).Count(&rows)
	if rows != 2 {
		t.Errorf("expected 2 log rows, got %d", rows)
	}
}

func TestScanQRPayload(t *testing.T) {
	db := testutil.SetupTestDB(t)
	event := testutil.CreateEvent(t, db, "Gala Dinner", true)
	testutil.CreateParticipant(t, db, event.ID, "A100", "Budi Santoso")

	app := newScanApp()
	status, payload := doScan(t, app, fmt.Sprintf(`{"code":"%d:A100"}`, event.ID))
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d: %v", status, payload)
	}
	data := scanData(t, payload)
	if data["eventId"] != float64(event.ID) {
		t.Errorf("expected eventId %d, got %v", event.ID, data["eventId"])
	}
	if data["tableNumber"] != nil {
		t.Errorf("expected tableNumber null for unseated participant, got %v", data["tableNumber"])
	}
}

func TestScanBareCode(t *testing.T) {
	db := testutil.SetupTestDB(t)
	active := testutil.CreateEvent(t, db, "Gala Dinner", true)
	inactive := testutil.CreateEvent(t, db, "Acara Lama", false)
	testutil.CreateParticipant(t, db, active.ID, "A100", "Budi Santoso")
	testutil.CreateParticipant(t, db, inactive.ID, "A100", "Budi Santoso")

	app := newScanApp()
	status, payload := doScan(t, app, `{"code":"A100"}`)
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d: %v", status, payload)
	}
	data := scanData(t, payload)
	if data["eventId"] != float64(active.ID) {
		t.Errorf("expected resolution to active event %d, got %v", active.ID, data["eventId"])
	}
}

func TestScanBareCodeAmbiguous(t *testing.T) {
	db := testutil.SetupTestDB(t)
	first := testutil.CreateEvent(t, db, "Event Pagi", true)
	second := testutil.CreateEvent(t, db, "Event Malam", true)
	testutil.CreateParticipant(t, db, first.ID, "A100", "Budi Santoso")
	testutil.CreateParticipant(t, db, second.ID, "A100", "Budi Santoso")

	app := newScanApp()
	status, payload := doScan(t, app, `{"code":"A100"}`)
	if status != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %v", status, payload)
	}
	if payload["message"] != constants.AMBIGUOUS_CODE {
		t.Errorf("expected message %q, got %v", constants.AMBIGUOUS_CODE, payload["message"])
	}

	var rows int64
	db.Model(&model.AttendanceLog{}).Count(&rows)
	if rows != 0 {
		t.Errorf("expected no log rows on ambiguous scan, got %d", rows)
	}
}

func TestScanBareCodeNoActiveEvent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	event := testutil.CreateEvent(t, db, "Acara Lama", false)
	testutil.CreateParticipant(t, db, event.ID, "A100", "Budi Santoso")

	app := newScanApp()
	status, payload := doScan(t, app, `{"code":"A100"}`)
	if status != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %v", status, payload)
	}
	if payload["message"] != constants.NO_ACTIVE_EVENT {
		t.Errorf("expected message %q, got %v", constants.NO_ACTIVE_EVENT, payload["message"])
	}
}

func TestScanUnknownParticipant(t *testing.T) {
	db := testutil.SetupTestDB(t)
	event := testutil.CreateEvent(t, db, "Gala Dinner", true)

	app := newScanApp()

	status, payload := doScan(t, app, `{"code":"ZZZ999"}`)
	if status != http.StatusNotFound {
		t.Fatalf("expected 404 for bare code, got %d: %v", status, payload)
	}
	if payload["message"] != constants.PARTICIPANT_NOT_FOUND {
		t.Errorf("expected message %q, got %v", constants.PARTICIPANT_NOT_FOUND, payload["message"])
	}

	status, payload = doScan(t, app, fmt.Sprintf(`{"eventId":%d,"participantCode":"ZZZ999"}`, event.ID))
	if status != http.StatusNotFound {
		t.Fatalf("expected 404 for explicit event, got %d: %v", status, payload)
	}
}

func TestScanEventNotFound(t *testing.T) {
	testutil.SetupTestDB(t)

	app := newScanApp()
	status, payload := doScan(t, app, `{"eventId":9999,"participantCode":"A100"}`)
	if status != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %v", status, payload)
	}
	if payload["message"] != constants.EVENT_NOT_FOUND {
		t.Errorf("expected message %q, got %v", constants.EVENT_NOT_FOUND, payload["message"])
	}
}

func TestScanInactiveEvent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	event := testutil.CreateEvent(t, db, "Acara Lama", false)
	testutil.CreateParticipant(t, db, event.ID, "A100", "Budi Santoso")

	app := newScanApp()
	status, payload := doScan(t, app, fmt.Sprintf(`{"code":"%d:A100"}`, event.ID))
	if status != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %v", status, payload)
	}
	if payload["message"] != constants.EVENT_NOT_ACTIVE {
		t.Errorf("expected message %q, got %v", constants.EVENT_NOT_ACTIVE, payload["message"])
	}
}

func TestScanEmptyCode(t *testing.T) {
	testutil.SetupTestDB(t)

	app := newScanApp()
	status, _ := doScan(t, app, `{"code":"  "}`)
	if status != http.StatusBadRequest {
		t.Fatalf("expected 400 for empty code, got %d", status)
	}

	status, _ = doScan(t, app, `{"code":"abc:A100"}`)
	if status != http.StatusBadRequest {
		t.Fatalf("expected 400 for non-numeric event id, got %d", status)
	}
}
