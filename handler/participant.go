package handler

import (
	"absensi_sinergi/constants"
	"absensi_sinergi/database"
	"absensi_sinergi/helper"
	"absensi_sinergi/model"
	"absensi_sinergi/utils"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"gorm.io/datatypes"
)

func GetParticipants(c *fiber.Ctx) error {
	filter := new(model.ParticipantFilter)
	if err := c.QueryParser(filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INPUT, err)
	}

	db := database.DB.Model(&model.Participant{})
	if filter.EventId != nil {
		db = db.Where("event_id = ?", *filter.EventId)
	}
	if filter.Search != nil && *filter.Search != "" {
		pattern := "%" + strings.ToLower(*filter.Search) + "%"
		db = db.Where("LOWER(full_name) LIKE ? OR LOWER(participant_code) LIKE ?", pattern, pattern)
	}

	var total int64
	db.Count(&total)

	db = utils.ApplyPagination(db, filter.Limit, filter.Page)
	var participants []model.Participant
	db.Order("full_name").Find(&participants)

	response := &model.ResponseCustom{
		Rows:       participants,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: total,
	}
	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

func CreateParticipant(c *fiber.Ctx) error {
	input := c.Locals("createInput").(model.CreateParticipantInput)

	var event model.Event
	if err := database.DB.First(&event, input.EventId).Error; err != nil {
		return utils.ErrorResponse(c, 404, constants.EVENT_NOT_FOUND, err)
	}

	var count int64
	database.DB.Model(&model.Participant{}).
		Where("event_id = ? AND participant_code = ?", input.EventId, input.ParticipantCode).
		Count(&count)
	if count > 0 {
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.DUPLICATE_CODE, errors.New("duplicate participant_code"))
	}

	var participant model.Participant
	copier.Copy(&participant, &input)
	if input.Gender != nil {
		participant.Metadata = datatypes.JSONMap{"gender": *input.Gender}
	}

	if err := database.DB.Create(&participant).Error; err != nil {
		return utils.ErrorResponse(c, 500, "Tidak bisa membuat peserta", err)
	}

	return utils.SuccessResponse(c, 201, participant)
}

func UpdateParticipant(c *fiber.Ctx) error {
	participantId := c.Locals("participantId").(int)
	input := c.Locals("updateInput").(model.UpdateParticipantInput)

	var participant model.Participant
	if err := database.DB.First(&participant, participantId).Error; err != nil {
		return utils.ErrorResponse(c, 404, constants.PARTICIPANT_NOT_FOUND, err)
	}

	if input.ParticipantCode != nil && *input.ParticipantCode != participant.ParticipantCode {
		var count int64
		database.DB.Model(&model.Participant{}).
			Where("event_id = ? AND participant_code = ? AND id <> ?", participant.EventId, *input.ParticipantCode, participant.ID).
			Count(&count)
		if count > 0 {
			return utils.ErrorResponse(c, fiber.StatusConflict, constants.DUPLICATE_CODE, errors.New("duplicate participant_code"))
		}
		participant.ParticipantCode = *input.ParticipantCode
	}
	if input.FullName != nil {
		participant.FullName = *input.FullName
	}
	if input.Email != nil {
		participant.Email = input.Email
	}
	if input.Phone != nil {
		participant.Phone = input.Phone
	}
	// gender disimpan di metadata, merge dengan isi lama
	if input.Gender != nil {
		if participant.Metadata == nil {
			participant.Metadata = datatypes.JSONMap{}
		}
		participant.Metadata["gender"] = *input.Gender
	}

	if err := database.DB.Save(&participant).Error; err != nil {
		return utils.ErrorResponse(c, 500, constants.ERROR_UPDATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, participant)
}

func DeleteParticipant(c *fiber.Ctx) error {
	participantId := c.Locals("inputId").(int)

	var participant model.Participant
	if err := database.DB.First(&participant, participantId).Error; err != nil {
		return utils.ErrorResponse(c, 404, constants.PARTICIPANT_NOT_FOUND, err)
	}

	tx := database.DB.Begin()
	if err := tx.Where("participant_id = ?", participant.ID).Delete(&model.SeatAssignment{}).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, 500, constants.ERROR_INTERNAL_ERROR, err)
	}
	if err := tx.Where("participant_id = ?", participant.ID).Delete(&model.AttendanceLog{}).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, 500, constants.ERROR_INTERNAL_ERROR, err)
	}
	if err := tx.Delete(&participant).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, 500, constants.ERROR_INTERNAL_ERROR, err)
	}
	if err := tx.Commit().Error; err != nil {
		return utils.ErrorResponse(c, 500, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"message": "Peserta berhasil dihapus",
		"id":      participant.ID,
	})
}

// ImportParticipants menerima file CSV multipart (field "file").
// Baris tanpa participant_code diberi kode acak.
func ImportParticipants(c *fiber.Ctx) error {
	eventId := c.Locals("inputId").(int)

	var event model.Event
	if err := database.DB.First(&event, eventId).Error; err != nil {
		return utils.ErrorResponse(c, 404, constants.EVENT_NOT_FOUND, err)
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return utils.ErrorResponse(c, 400, "File CSV wajib diunggah", err)
	}
	file, err := fileHeader.Open()
	if err != nil {
		return utils.ErrorResponse(c, 500, constants.ERROR_INTERNAL_ERROR, err)
	}
	defer file.Close()

	rows, err := utils.ParseParticipantCSV(file)
	if err != nil {
		return utils.ErrorResponse(c, 400, "File CSV tidak valid", err)
	}

	created := 0
	skipped := 0
	for _, row := range rows {
		code := row.ParticipantCode
		if code == "" {
			code = strings.ToUpper(uuid.NewString()[:8])
		}

		var count int64
		database.DB.Model(&model.Participant{}).
			Where("event_id = ? AND participant_code = ?", event.ID, code).
			Count(&count)
		if count > 0 {
			skipped++
			continue
		}

		participant := model.Participant{
			EventId:         event.ID,
			ParticipantCode: code,
			FullName:        row.FullName,
			Email:           utils.StringPtr(row.Email),
			Phone:           utils.StringPtr(row.Phone),
		}
		if row.Gender != "" {
			participant.Metadata = datatypes.JSONMap{"gender": row.Gender}
		}
		if err := database.DB.Create(&participant).Error; err != nil {
			skipped++
			continue
		}
		created++
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"message": fmt.Sprintf("%d peserta dibuat, %d dilewati", created, skipped),
		"created": created,
		"skipped": skipped,
	})
}

func ExportParticipants(c *fiber.Ctx) error {
	eventId := c.Locals("inputId").(int)

	var event model.Event
	if err := database.DB.First(&event, eventId).Error; err != nil {
		return utils.ErrorResponse(c, 404, constants.EVENT_NOT_FOUND, err)
	}

	var participants []model.Participant
	if err := database.DB.Where("event_id = ?", event.ID).
		Order("full_name").Find(&participants).Error; err != nil {
		return utils.ErrorResponse(c, 500, constants.ERROR_INTERNAL_ERROR, err)
	}

	rows := make([]utils.ExportParticipantRow, 0, len(participants))
	for _, p := range participants {
		row := utils.ExportParticipantRow{
			FullName:        p.FullName,
			ParticipantCode: p.ParticipantCode,
		}
		if p.Email != nil {
			row.Email = *p.Email
		}
		if p.Phone != nil {
			row.Phone = *p.Phone
		}
		if gender, ok := p.Metadata["gender"].(string); ok {
			row.Gender = gender
		}

		seat, err := helper.FindSeatForParticipant(event.ID, p.ID)
		if err == nil && seat != nil {
			row.TableNumber = strconv.Itoa(seat.TableNumber)
			row.SeatNumber = strconv.Itoa(seat.SeatNumber)
		}

		var total int64
		database.DB.Model(&model.AttendanceLog{}).
			Where("event_id = ? AND participant_id = ?", event.ID, p.ID).
			Count(&total)
		row.TotalScans = strconv.FormatInt(total, 10)

		rows = append(rows, row)
	}

	data, err := utils.WriteParticipantCSV(rows)
	if err != nil {
		return utils.ErrorResponse(c, 500, constants.ERROR_INTERNAL_ERROR, err)
	}

	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="peserta-%s.csv"`, event.Slug))
	return c.Send(data)
}

func GetParticipantQRCode(c *fiber.Ctx) error {
	participantId := c.Locals("inputId").(int)

	var participant model.Participant
	if err := database.DB.First(&participant, participantId).Error; err != nil {
		return utils.ErrorResponse(c, 404, constants.PARTICIPANT_NOT_FOUND, err)
	}

	payload := fmt.Sprintf("%d:%s", participant.EventId, participant.ParticipantCode)
	qrPNG, err := utils.GenerateQRCode(payload, 256)
	if err != nil {
		return utils.ErrorResponse(c, 500, "Gagal membuat QR code", err)
	}

	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(qrPNG)
}

func SendParticipantQR(c *fiber.Ctx) error {
	participantId := c.Locals("inputId").(int)

	var participant model.Participant
	if err := database.DB.Preload("Event").First(&participant, participantId).Error; err != nil {
		return utils.ErrorResponse(c, 404, constants.PARTICIPANT_NOT_FOUND, err)
	}
	if participant.Email == nil || *participant.Email == "" {
		return utils.ErrorResponse(c, 400, "Peserta tidak punya alamat email", errors.New("email empty"))
	}

	payload := fmt.Sprintf("%d:%s", participant.EventId, participant.ParticipantCode)
	qrPNG, err := utils.GenerateQRCode(payload, 256)
	if err != nil {
		return utils.ErrorResponse(c, 500, "Gagal membuat QR code", err)
	}

	data := utils.ParticipantQRData{
		ParticipantName: participant.FullName,
		EventName:       participant.Event.Name,
		ParticipantCode: participant.ParticipantCode,
	}
	if participant.Event.Location != nil {
		data.EventLocation = *participant.Event.Location
	}
	seat, err := helper.FindSeatForParticipant(participant.EventId, participant.ID)
	if err == nil && seat != nil {
		data.TableNumber = strconv.Itoa(seat.TableNumber)
		data.SeatNumber = strconv.Itoa(seat.SeatNumber)
	}

	utils.SendParticipantQREmail(*participant.Email, data, qrPNG)

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"message": "Email QR sedang dikirim",
		"to":      *participant.Email,
	})
}
