package handler

import (
	"absensi_sinergi/config"

	"github.com/gofiber/fiber/v2"
)

// EnvCheck hanya mengembalikan ada/tidaknya env dan panjangnya,
// tidak pernah mengembalikan nilai rahasia.
func EnvCheck(c *fiber.Ctx) error {
	keys := []string{
		"DB_HOST", "DB_NAME", "JWT_SECRET",
		"SMTP_HOST", "SMTP_USERNAME", "REDIS_ADDR",
		"CLOUDINARY_CLOUD_NAME",
	}

	env := fiber.Map{}
	for _, key := range keys {
		value := config.Config(key)
		env[key+"_present"] = value != ""
		env[key+"_len"] = len(value)
	}

	return c.JSON(fiber.Map{
		"ok":  true,
		"env": env,
	})
}
