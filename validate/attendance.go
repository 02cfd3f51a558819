package validate

import (
	"absensi_sinergi/constants"
	"absensi_sinergi/model"
	"absensi_sinergi/utils"
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Scan menormalisasi payload hasil scan. Bentuk yang diterima:
// {"code":"<eventId>:<participantCode>"}, {"code":"<participantCode>"},
// atau {"eventId":..,"participantCode":".."}.
func Scan() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.ScanInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, 400, constants.ERROR_INPUT, err)
		}

		request := model.ScanRequest{
			EventId:         input.EventId,
			ParticipantCode: strings.TrimSpace(input.ParticipantCode),
		}

		code := strings.TrimSpace(input.Code)
		if request.ParticipantCode == "" && code != "" {
			if before, after, found := strings.Cut(code, ":"); found {
				eventId, err := strconv.ParseUint(before, 10, 32)
				if err != nil {
					return utils.ErrorResponse(c, 400, "Format QR tidak dikenal", err)
				}
				id := uint(eventId)
				request.EventId = &id
				request.ParticipantCode = strings.TrimSpace(after)
			} else {
				request.ParticipantCode = code
			}
		}

		if request.ParticipantCode == "" {
			return utils.ErrorResponse(c, 400, "Kode peserta wajib diisi", errors.New("participantCode empty"))
		}

		c.Locals("scanRequest", request)
		return c.Next()
	}
}
