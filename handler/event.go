package handler

import (
	"absensi_sinergi/constants"
	"absensi_sinergi/database"
	"absensi_sinergi/helper"
	"absensi_sinergi/model"
	"absensi_sinergi/utils"
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func GetEvents(c *fiber.Ctx) error {
	filter := new(model.EventFilter)
	if err := c.QueryParser(filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INPUT, err)
	}

	db := database.DB.Model(&model.Event{})
	if filter.Search != nil && *filter.Search != "" {
		pattern := "%" + strings.ToLower(*filter.Search) + "%"
		db = db.Where("LOWER(name) LIKE ?", pattern)
	}
	if filter.IsActive != nil {
		db = db.Where("is_active = ?", *filter.IsActive)
	}

	var total int64
	db.Count(&total)

	db = utils.ApplyPagination(db, filter.Limit, filter.Page)
	var events []model.Event
	db.Order("created_at desc").Find(&events)

	response := &model.ResponseCustom{
		Rows:       events,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: total,
	}
	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

func GetEventById(c *fiber.Ctx) error {
	eventId := c.Locals("inputId").(int)

	var event model.Event
	if err := database.DB.First(&event, eventId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.EVENT_NOT_FOUND, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, event)
}

func CreateEvent(c *fiber.Ctx) error {
	_, isAdmin := helper.GetInfoAccountFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, nil)
	}

	event := c.Locals("createInput").(model.Event)
	event.Slug = helper.GenerateUniqueEventSlug(database.DB, event.Name)

	if err := database.DB.Create(&event).Error; err != nil {
		return utils.ErrorResponse(c, 500, "Tidak bisa membuat event", err)
	}

	return utils.SuccessResponse(c, 201, fiber.Map{
		"message": "Event berhasil dibuat",
		"data":    event,
	})
}

func UpdateEvent(c *fiber.Ctx) error {
	eventId := c.Locals("eventId").(int)
	_, isAdmin := helper.GetInfoAccountFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, nil)
	}

	var event model.Event
	if err := database.DB.First(&event, eventId).Error; err != nil {
		return utils.ErrorResponse(c, 404, constants.EVENT_NOT_FOUND, err)
	}

	input := c.Locals("updateInput").(model.UpdateEventInput)

	if input.Name != nil && *input.Name != event.Name {
		event.Name = *input.Name
		event.Slug = helper.GenerateUniqueEventSlug(database.DB, event.Name)
	}
	if input.Location != nil {
		event.Location = input.Location
	}
	if input.StartsAt != nil {
		t, _ := time.Parse(time.RFC3339, *input.StartsAt)
		event.StartsAt = &t
	}
	if input.EndsAt != nil {
		t, _ := time.Parse(time.RFC3339, *input.EndsAt)
		event.EndsAt = &t
	}
	if input.BannerUrl != nil {
		event.BannerUrl = input.BannerUrl
	}
	if input.BannerPublicId != nil {
		event.BannerPublicId = input.BannerPublicId
	}

	if err := database.DB.Save(&event).Error; err != nil {
		return utils.ErrorResponse(c, 500, constants.ERROR_UPDATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, event)
}

func ActiveEvent(c *fiber.Ctx) error {
	_, isAdmin := helper.GetInfoAccountFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, nil)
	}

	eventId, err := c.ParamsInt("eventId")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, err)
	}
	isActive := c.Params("isActive") == "true"

	var event model.Event
	if err := database.DB.First(&event, eventId).Error; err != nil {
		return utils.ErrorResponse(c, 404, constants.EVENT_NOT_FOUND, err)
	}

	event.IsActive = isActive
	if err := database.DB.Save(&event).Error; err != nil {
		return utils.ErrorResponse(c, 500, constants.ERROR_UPDATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, event)
}

func DeleteEvent(c *fiber.Ctx) error {
	eventId := c.Locals("inputId").(int)
	_, isAdmin := helper.GetInfoAccountFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, nil)
	}

	var event model.Event
	if err := database.DB.First(&event, eventId).Error; err != nil {
		return utils.ErrorResponse(c, 404, constants.EVENT_NOT_FOUND, err)
	}

	// Hapus banner di Cloudinary kalau ada
	if event.BannerPublicId != nil && *event.BannerPublicId != "" {
		cld := helper.InitCloudinary()
		invalidate := true
		go func(publicID string) {
			_, err := cld.Upload.Destroy(context.Background(), uploader.DestroyParams{
				PublicID:     publicID,
				ResourceType: "image",
				Invalidate:   &invalidate,
			})
			if err != nil {
				log.Printf("Failed to delete Cloudinary image %s: %v", publicID, err)
			}
		}(*event.BannerPublicId)
	}

	tx := database.DB.Begin()
	if err := tx.Where("event_id = ?", event.ID).Delete(&model.SeatAssignment{}).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, 500, constants.ERROR_INTERNAL_ERROR, err)
	}
	if err := tx.Where("event_id = ?", event.ID).Delete(&model.Seat{}).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, 500, constants.ERROR_INTERNAL_ERROR, err)
	}
	if err := tx.Where("event_id = ?", event.ID).Delete(&model.AttendanceLog{}).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, 500, constants.ERROR_INTERNAL_ERROR, err)
	}
	if err := tx.Where("event_id = ?", event.ID).Delete(&model.Participant{}).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, 500, constants.ERROR_INTERNAL_ERROR, err)
	}
	if err := tx.Delete(&event).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, 500, constants.ERROR_INTERNAL_ERROR, err)
	}
	if err := tx.Commit().Error; err != nil {
		return utils.ErrorResponse(c, 500, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"message": "Event berhasil dihapus",
		"id":      event.ID,
	})
}

func GetEventSeatMap(c *fiber.Ctx) error {
	eventId := c.Locals("inputId").(int)

	var event model.Event
	if err := database.DB.First(&event, eventId).Error; err != nil {
		return utils.ErrorResponse(c, 404, constants.EVENT_NOT_FOUND, err)
	}

	var seats []model.Seat
	if err := database.DB.Where("event_id = ?", event.ID).
		Order("table_number, seat_number").Find(&seats).Error; err != nil {
		return utils.ErrorResponse(c, 500, constants.ERROR_INTERNAL_ERROR, err)
	}

	var assignments []model.SeatAssignment
	if err := database.DB.Preload("Participant").
		Where("event_id = ?", event.ID).Find(&assignments).Error; err != nil {
		return utils.ErrorResponse(c, 500, constants.ERROR_INTERNAL_ERROR, err)
	}
	bySeat := make(map[uint]*model.SeatAssignment, len(assignments))
	for i := range assignments {
		bySeat[assignments[i].SeatId] = &assignments[i]
	}

	rows := make([]model.SeatMapRow, 0, len(seats))
	for _, seat := range seats {
		row := model.SeatMapRow{
			TableNumber: seat.TableNumber,
			SeatNumber:  seat.SeatNumber,
		}
		if assignment, ok := bySeat[seat.ID]; ok {
			row.ParticipantId = &assignment.ParticipantId
			row.ParticipantName = &assignment.Participant.FullName
			row.ParticipantCode = &assignment.Participant.ParticipantCode
		}
		rows = append(rows, row)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"event": event,
		"seats": rows,
	})
}

func GetEventStats(c *fiber.Ctx) error {
	eventId := c.Locals("inputId").(int)

	var event model.Event
	if err := database.DB.First(&event, eventId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, 404, constants.EVENT_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, 500, constants.ERROR_INTERNAL_ERROR, err)
	}

	stats, err := helper.CountEventStats(event.ID)
	if err != nil {
		return utils.ErrorResponse(c, 500, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, stats)
}
