package validate

import (
	"absensi_sinergi/constants"
	"absensi_sinergi/model"
	"absensi_sinergi/utils"
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
)

func parseRFC3339(value string) (*time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func CreateEvent() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateEventInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, 400, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, 400, "Validation failed", err)
		}

		event := model.Event{
			Name:           input.Name,
			Location:       input.Location,
			IsActive:       true,
			BannerUrl:      input.BannerUrl,
			BannerPublicId: input.BannerPublicId,
		}
		if input.StartsAt != nil {
			t, err := parseRFC3339(*input.StartsAt)
			if err != nil {
				return utils.ErrorResponse(c, 400, "startsAt salah format (RFC3339)", err)
			}
			event.StartsAt = t
		}
		if input.EndsAt != nil {
			t, err := parseRFC3339(*input.EndsAt)
			if err != nil {
				return utils.ErrorResponse(c, 400, "endsAt salah format (RFC3339)", err)
			}
			event.EndsAt = t
		}

		c.Locals("createInput", event)
		return c.Next()
	}
}

func UpdateEvent(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		params := c.Params(key)
		valueKey, err := strconv.Atoi(params)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}

		var input model.UpdateEventInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, 400, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, 400, "Validation failed", err)
		}
		if input.StartsAt != nil {
			if _, err := parseRFC3339(*input.StartsAt); err != nil {
				return utils.ErrorResponse(c, 400, "startsAt salah format (RFC3339)", err)
			}
		}
		if input.EndsAt != nil {
			if _, err := parseRFC3339(*input.EndsAt); err != nil {
				return utils.ErrorResponse(c, 400, "endsAt salah format (RFC3339)", err)
			}
		}

		c.Locals("updateInput", input)
		c.Locals("eventId", valueKey)
		return c.Next()
	}
}
