package handlers

import (
	"errors"
	"log/slog"

	"github.com/aris220/contact-management-api/internal/dto"
	"github.com/aris220/contact-management-api/internal/services"
	"github.com/aris220/contact-management-api/internal/validation"
	"github.com/gofiber/fiber/v2"
)

// writeError maps service errors onto the uniform {errors} envelope.
// Anything unrecognized is a storage or programming failure and surfaces
// as a generic 500.
func writeError(c *fiber.Ctx, err error) error {
	var verr *validation.Error
	if errors.As(err, &verr) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Errors: verr.Fields,
		})
	}

	switch {
	case errors.Is(err, services.ErrUsernameTaken):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Errors: err.Error()})
	case errors.Is(err, services.ErrInvalidCredentials):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Errors: err.Error()})
	case errors.Is(err, services.ErrContactNotFound), errors.Is(err, services.ErrAddressNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Errors: err.Error()})
	}

	slog.Error("request failed", "method", c.Method(), "path", c.Path(), "error", err)
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Errors: "Internal server error",
	})
}

func badRequestBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Errors: "Invalid request body",
	})
}

// paramID reads a positive numeric path parameter. Non-numeric and
// non-positive values are shape errors, reported like any other field
// violation.
func paramID(c *fiber.Ctx, name string) (uint, error) {
	id, err := c.ParamsInt(name)
	if err != nil || id < 1 {
		return 0, &validation.Error{Fields: []validation.FieldError{
			{Field: name, Message: "must be a positive number"},
		}}
	}
	return uint(id), nil
}
