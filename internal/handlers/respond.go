package handlers

import (
	"github.com/edificio-gestion/backend/internal/dto"
	"github.com/gofiber/fiber/v2"
)

func respondOK(c *fiber.Ctx, data interface{}) error {
	return c.JSON(dto.Envelope{Success: true, Data: data})
}

func respondCreated(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(dto.Envelope{Success: true, Data: data})
}

func respondMessage(c *fiber.Ctx, message string) error {
	return c.JSON(dto.Envelope{Success: true, Message: message})
}

func respondError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(dto.Envelope{Success: false, Message: message})
}

// respondValidation reports field-level failures with the fixed 422
// status and the field->messages error map.
func respondValidation(c *fiber.Ctx, errs map[string][]string) error {
	return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.Envelope{
		Success: false,
		Message: "Errores de validación en los datos enviados",
		Errors:  errs,
	})
}
