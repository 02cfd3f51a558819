package handler

import (
	"absensi_sinergi/constants"
	"absensi_sinergi/database"
	"absensi_sinergi/helper"
	"absensi_sinergi/model"
	"absensi_sinergi/utils"
	"errors"

	"github.com/gofiber/fiber/v2"
)

func AssignSeat(c *fiber.Ctx) error {
	eventId := c.Locals("eventId").(int)
	input := c.Locals("assignInput").(model.AssignSeatInput)

	var event model.Event
	if err := database.DB.First(&event, eventId).Error; err != nil {
		return utils.ErrorResponse(c, 404, constants.EVENT_NOT_FOUND, err)
	}

	if err := helper.AssignSeat(event.ID, input.ParticipantCode, input.TableNumber, input.SeatNumber); err != nil {
		if errors.Is(err, helper.ErrParticipantNotFound) {
			return utils.ErrorResponse(c, 404, constants.PARTICIPANT_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, 500, "Gagal assign kursi", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"message":     "Kursi berhasil di-assign",
		"tableNumber": input.TableNumber,
		"seatNumber":  input.SeatNumber,
	})
}

func UnassignSeat(c *fiber.Ctx) error {
	eventId := c.Locals("eventId").(int)
	input := c.Locals("unassignInput").(model.UnassignSeatInput)

	var event model.Event
	if err := database.DB.First(&event, eventId).Error; err != nil {
		return utils.ErrorResponse(c, 404, constants.EVENT_NOT_FOUND, err)
	}

	if err := helper.UnassignSeat(event.ID, input.TableNumber, input.SeatNumber); err != nil {
		return utils.ErrorResponse(c, 500, "Gagal unassign kursi", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"message": "Kursi berhasil dikosongkan",
	})
}

func GetSeatsByEvent(c *fiber.Ctx) error {
	eventId := c.Locals("inputId").(int)

	var assignments []model.SeatAssignment
	if err := database.DB.Preload("Seat").Preload("Participant").
		Where("event_id = ?", eventId).Find(&assignments).Error; err != nil {
		return utils.ErrorResponse(c, 500, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"rows":  assignments,
		"total": len(assignments),
	})
}
