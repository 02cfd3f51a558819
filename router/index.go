package router

import (
	"absensi_sinergi/handler"
	"absensi_sinergi/middleware"
	"absensi_sinergi/validate"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1", logger.New())

	auth := v1.Group("/auth")
	auth.Post("/login", handler.Login)
	auth.Post("/refresh-token", handler.RefreshToken)
	auth.Post("/forgot-password", handler.ForgotPassword)
	auth.Post("/reset-password", handler.ResetPassword)

	account := v1.Group("/account", logger.New())
	account.Get("/me", middleware.Protected(), handler.Me)

	event := v1.Group("/event", logger.New())
	event.Get("/", middleware.Protected(), handler.GetEvents)
	event.Post("/", middleware.Protected(), validate.CreateEvent(), handler.CreateEvent)
	event.Get("/:eventId", middleware.Protected(), validate.GetById("eventId"), handler.GetEventById)
	event.Put("/:eventId", middleware.Protected(), validate.UpdateEvent("eventId"), handler.UpdateEvent)
	event.Delete("/:eventId", middleware.Protected(), validate.GetById("eventId"), handler.DeleteEvent)
	event.Patch("/:eventId/active/:isActive", middleware.Protected(), handler.ActiveEvent)
	event.Get("/:eventId/seats", middleware.Protected(), validate.GetById("eventId"), handler.GetEventSeatMap)
	event.Get("/:eventId/stats", middleware.Protected(), validate.GetById("eventId"), handler.GetEventStats)
	event.Post("/:eventId/participants/import", middleware.Protected(), validate.GetById("eventId"), handler.ImportParticipants)
	event.Get("/:eventId/participants/export", middleware.Protected(), validate.GetById("eventId"), handler.ExportParticipants)
	event.Post("/:eventId/assign", middleware.Protected(), validate.AssignSeat("eventId"), handler.AssignSeat)
	event.Delete("/:eventId/assign", middleware.Protected(), validate.UnassignSeat("eventId"), handler.UnassignSeat)
	event.Get("/:eventId/assignments", middleware.Protected(), validate.GetById("eventId"), handler.GetSeatsByEvent)

	participant := v1.Group("/participant", logger.New())
	participant.Get("/", middleware.Protected(), handler.GetParticipants)
	participant.Post("/", middleware.Protected(), validate.CreateParticipant(), handler.CreateParticipant)
	participant.Put("/:participantId", middleware.Protected(), validate.UpdateParticipant("participantId"), handler.UpdateParticipant)
	participant.Delete("/:participantId", middleware.Protected(), validate.GetById("participantId"), handler.DeleteParticipant)
	participant.Get("/:participantId/qrcode", middleware.Protected(), validate.GetById("participantId"), handler.GetParticipantQRCode)
	participant.Post("/:participantId/send-qr", middleware.Protected(), validate.GetById("participantId"), handler.SendParticipantQR)

	absensi := v1.Group("/absensi", logger.New())
	absensi.Post("/scan", validate.Scan(), handler.Scan)
	absensi.Get("/", middleware.Protected(), handler.GetAttendanceLogs)
	absensi.Get("/feed/:eventId", websocket.New(handler.AttendanceFeed))

	v1.Post("/cloudinary-signature", middleware.Protected(), handler.GenerateSignature)
	v1.Get("/debug/env", handler.EnvCheck)
}
