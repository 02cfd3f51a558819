package handler

import (
	"absensi_sinergi/constants"
	"absensi_sinergi/database"
	"absensi_sinergi/helper"
	"absensi_sinergi/model"
	"absensi_sinergi/utils"
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Scan memproses satu hasil scan QR. Kalau eventId tidak ada di payload,
// event dicari lewat kode peserta di antara event yang masih aktif.
// Setiap scan yang berhasil selalu menambah satu baris log.
func Scan(c *fiber.Ctx) error {
	request := c.Locals("scanRequest").(model.ScanRequest)

	var resolved helper.ScanCandidate
	var eventName string

	if request.EventId != nil {
		var event model.Event
		if err := database.DB.First(&event, *request.EventId).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.ErrorResponse(c, 404, constants.EVENT_NOT_FOUND, err)
			}
			return utils.ErrorResponse(c, 500, constants.ERROR_INTERNAL_ERROR, err)
		}
		if !event.IsActive {
			return utils.ErrorResponse(c, 400, constants.EVENT_NOT_ACTIVE, helper.ErrEventNotActive)
		}

		var participant model.Participant
		if err := database.DB.Where("event_id = ? AND participant_code = ?", event.ID, request.ParticipantCode).
			First(&participant).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.ErrorResponse(c, 404, constants.PARTICIPANT_NOT_FOUND, err)
			}
			return utils.ErrorResponse(c, 500, constants.ERROR_INTERNAL_ERROR, err)
		}

		resolved = helper.ScanCandidate{
			ParticipantId: participant.ID,
			EventId:       event.ID,
			FullName:      participant.FullName,
		}
		eventName = event.Name
	} else {
		var participants []model.Participant
		if err := database.DB.Where("participant_code = ?", request.ParticipantCode).
			Find(&participants).Error; err != nil {
			return utils.ErrorResponse(c, 500, constants.ERROR_INTERNAL_ERROR, err)
		}

		candidates := make([]helper.ScanCandidate, 0, len(participants))
		eventIds := make([]uint, 0, len(participants))
		for _, p := range participants {
			candidates = append(candidates, helper.ScanCandidate{
				ParticipantId: p.ID,
				EventId:       p.EventId,
				FullName:      p.FullName,
			})
			eventIds = append(eventIds, p.EventId)
		}

		activeEvents := make(map[uint]bool)
		if len(eventIds) > 0 {
			var events []model.Event
			if err := database.DB.Where("id IN ? AND is_active = ?", eventIds, true).
				Find(&events).Error; err != nil {
				return utils.ErrorResponse(c, 500, constants.ERROR_INTERNAL_ERROR, err)
			}
			for _, e := range events {
				activeEvents[e.ID] = true
			}
		}

		var err error
		resolved, err = helper.ResolveScanCandidates(candidates, activeEvents)
		if err != nil {
			switch {
			case errors.Is(err, helper.ErrParticipantNotFound):
				return utils.ErrorResponse(c, 404, constants.PARTICIPANT_NOT_FOUND, err)
			case errors.Is(err, helper.ErrNoActiveEvent):
				return utils.ErrorResponse(c, 404, constants.NO_ACTIVE_EVENT, err)
			case errors.Is(err, helper.ErrAmbiguousCode):
				return utils.ErrorResponse(c, 400, constants.AMBIGUOUS_CODE, err)
			default:
				return utils.ErrorResponse(c, 500, constants.ERROR_INTERNAL_ERROR, err)
			}
		}

		var event model.Event
		if err := database.DB.First(&event, resolved.EventId).Error; err == nil {
			eventName = event.Name
		}
	}

	// Posisi duduk hanya untuk ditampilkan, bukan mutasi
	seat, err := helper.FindSeatForParticipant(resolved.EventId, resolved.ParticipantId)
	if err != nil {
		return utils.ErrorResponse(c, 500, constants.ERROR_INTERNAL_ERROR, err)
	}

	total, err := helper.RecordAttendance(resolved.EventId, resolved.ParticipantId)
	if err != nil {
		return utils.ErrorResponse(c, 500, constants.ERROR_INTERNAL_ERROR, err)
	}

	result := model.ScanResult{
		ParticipantName: resolved.FullName,
		ParticipantCode: request.ParticipantCode,
		EventId:         resolved.EventId,
		EventName:       eventName,
		TotalScans:      total,
	}
	if seat != nil {
		result.TableNumber = &seat.TableNumber
		result.SeatNumber = &seat.SeatNumber
	}

	PublishAttendance(resolved.EventId, result)

	return utils.SuccessResponse(c, fiber.StatusOK, result)
}

func GetAttendanceLogs(c *fiber.Ctx) error {
	filter := new(model.AttendanceFilter)
	if err := c.QueryParser(filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INPUT, err)
	}

	db := database.DB.Model(&model.AttendanceLog{}).Preload("Participant")
	if filter.EventId != nil {
		db = db.Where("event_id = ?", *filter.EventId)
	}
	if filter.ParticipantId != nil {
		db = db.Where("participant_id = ?", *filter.ParticipantId)
	}

	var total int64
	db.Count(&total)

	db = utils.ApplyPagination(db, filter.Limit, filter.Page)
	var logs []model.AttendanceLog
	db.Order("created_at desc").Find(&logs)

	response := &model.ResponseCustom{
		Rows:       logs,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: total,
	}
	return utils.SuccessResponse(c, fiber.StatusOK, response)
}
