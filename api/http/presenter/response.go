package presenter

import "github.com/gofiber/fiber/v2"

// ErrorResponse is the error body for every 4xx answer.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func JSON(c *fiber.Ctx, status int, v any) error {
	return c.Status(status).JSON(v)
}

func Error(c *fiber.Ctx, status int, message string) error {
	return JSON(c, status, ErrorResponse{Error: message})
}

func ErrorWithDetails(c *fiber.Ctx, status int, message, details string) error {
	return JSON(c, status, ErrorResponse{Error: message, Details: details})
}
