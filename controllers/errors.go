package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/beautyplaza/beautyplaza-api/booking"
	"github.com/beautyplaza/beautyplaza-api/utils"
)

// respondError translates booking errors to their HTTP status with the
// standard error body. Anything untyped is a 500.
func respondError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case booking.IsNotFound(err):
		status = fiber.StatusNotFound
	case booking.IsConflict(err):
		status = fiber.StatusConflict
	case booking.IsInvalid(err):
		status = fiber.StatusBadRequest
	}
	return c.Status(status).JSON(utils.NewErrorDetails(err.Error(), c.Method()+" "+c.Path()))
}
