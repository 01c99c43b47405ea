package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/account-service/pkg/util"
)

// respond writes a success envelope with the status triple's HTTP code.
func respond(c *fiber.Ctx, status util.Status, data any) error {
	return c.Status(status.HTTPStatus).JSON(util.Wrap(status, data))
}
