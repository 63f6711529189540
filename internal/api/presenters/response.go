package presenters

import "github.com/gofiber/fiber/v2"

func Success(c *fiber.Ctx, payload any) error {
	return c.Status(fiber.StatusOK).JSON(payload)
}

// Error responds with the API's flat error envelope: {"error": code}.
func Error(c *fiber.Ctx, status int, code string) error {
	return c.Status(status).JSON(fiber.Map{"error": code})
}

// ErrorDetail adds an opaque detail string for storage-level failures.
func ErrorDetail(c *fiber.Ctx, status int, code string, err error) error {
	return c.Status(status).JSON(fiber.Map{"error": code, "detail": err.Error()})
}

// AuthError responds with the auth envelope: {"ok":false,"error":code}.
func AuthError(c *fiber.Ctx, status int, code string) error {
	return c.Status(status).JSON(fiber.Map{"ok": false, "error": code})
}
