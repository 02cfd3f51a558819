package validate

import (
	"absensi_sinergi/constants"
	"absensi_sinergi/model"
	"absensi_sinergi/utils"
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

func CreateParticipant() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateParticipantInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, 400, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, 400, "Validation failed", err)
		}

		c.Locals("createInput", input)
		return c.Next()
	}
}

func UpdateParticipant(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		params := c.Params(key)
		valueKey, err := strconv.Atoi(params)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}

		var input model.UpdateParticipantInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, 400, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, 400, "Validation failed", err)
		}

		c.Locals("updateInput", input)
		c.Locals("participantId", valueKey)
		return c.Next()
	}
}
