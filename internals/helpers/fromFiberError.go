package helper

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// FromFiberError turns an error returned from a Transaction (usually a *fiber.Error)
// into the JSON error envelope. Anything else becomes a 500 carrying err.Error().
func FromFiberError(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return JsonError(c, fe.Code, fe.Message)
	}
	return JsonError(c, fiber.StatusInternalServerError, err.Error())
}

// ErrorHandler is the app-wide fiber.Config.ErrorHandler (404 routes, 405, panics).
func ErrorHandler(c *fiber.Ctx, err error) error {
	return FromFiberError(c, err)
}
