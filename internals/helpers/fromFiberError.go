package helper

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

// FromFiberError renders err with the standard error envelope.
// *fiber.Error keeps its code and message; anything else is logged and becomes a generic 500.
func FromFiberError(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return JsonError(c, fe.Code, fe.Message)
	}
	log.WithFields(log.Fields{
		"reqid":  c.Locals("reqid"),
		"method": c.Method(),
		"path":   c.Path(),
	}).WithError(err).Error("unhandled error")
	return JsonError(c, fiber.StatusInternalServerError, "Something went wrong, please try again")
}

// ErrorHandler plugs FromFiberError into fiber.Config.
func ErrorHandler(c *fiber.Ctx, err error) error {
	return FromFiberError(c, err)
}
