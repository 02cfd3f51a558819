package validate

import (
	"absensi_sinergi/constants"
	"absensi_sinergi/model"
	"absensi_sinergi/utils"
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

func AssignSeat(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		params := c.Params(key)
		valueKey, err := strconv.Atoi(params)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}

		var input model.AssignSeatInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, 400, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, 400, "Nomor meja dan kursi harus bilangan positif", err)
		}

		c.Locals("assignInput", input)
		c.Locals("eventId", valueKey)
		return c.Next()
	}
}

func UnassignSeat(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		params := c.Params(key)
		valueKey, err := strconv.Atoi(params)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}

		var input model.UnassignSeatInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, 400, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, 400, "Nomor meja dan kursi harus bilangan positif", err)
		}

		c.Locals("unassignInput", input)
		c.Locals("eventId", valueKey)
		return c.Next()
	}
}
