package http

import "github.com/gofiber/fiber/v2"

// ok responde out con 200, o el error mapeado.
func ok(c *fiber.Ctx, out any, err error) error {
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// created responde out con 201, o el error mapeado.
func created(c *fiber.Ctx, out any, err error) error {
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// noContent responde 204, o el error mapeado.
func noContent(c *fiber.Ctx, err error) error {
	if err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
