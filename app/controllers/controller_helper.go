package controllers

import (
	"errors"
	"strconv"

	"newswire-backend/app/repository"
	"newswire-backend/app/services"

	"github.com/gofiber/fiber/v2"
)

const defaultSortBy = "created_at,desc"

// parseListParams reads pagination and sorting query args with sane defaults.
func parseListParams(c *fiber.Ctx) repository.ListParams {
	return repository.ListParams{
		Page:   c.QueryInt("page", 0),
		Size:   c.QueryInt("size", 10),
		SortBy: c.Query("sortBy", defaultSortBy),
	}
}

// parseID reads the :id route param as an unsigned integer.
func parseID(c *fiber.Ctx) (uint64, error) {
	return strconv.ParseUint(c.Params("id"), 10, 64)
}

// respondError translates service errors into the JSON error body and status.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not_found", "message": err.Error()})
	case errors.Is(err, services.ErrNotUnique):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "conflict", "message": err.Error()})
	case errors.Is(err, services.ErrValidation):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "validation_error", "message": err.Error()})
	case errors.Is(err, services.ErrUsernameTaken):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "username_taken", "message": err.Error()})
	case errors.Is(err, services.ErrInvalidCredentials):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid_credentials", "message": err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error", "message": "unexpected error happened on server"})
	}
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad_request", "message": message})
}
