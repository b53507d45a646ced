package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// ErrorHandler renders any error that escapes a handler, including
// recovered panics, in the same envelope the handlers use.
func ErrorHandler(log *logrus.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
		}

		if code >= fiber.StatusInternalServerError {
			log.WithFields(logrus.Fields{
				"request_id": requestID(c),
				"path":       c.Path(),
				"error":      err.Error(),
			}).Error("unhandled request error")
		}

		return c.Status(code).JSON(fiber.Map{
			"success":   false,
			"error":     err.Error(),
			"timestamp": timestamp(),
		})
	}
}

func requestID(c *fiber.Ctx) string {
	return c.GetRespHeader(fiber.HeaderXRequestID)
}
