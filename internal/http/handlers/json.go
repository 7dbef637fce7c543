package handlers

import "github.com/gofiber/fiber/v2"

// errJSON is the single error shape the API emits: {"error": "..."}.
func errJSON(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{"error": msg})
}
