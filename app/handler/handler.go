// Package handler adapts the portal HTTP surface to the workflow layer:
// parse the request, take the acting role from the session middleware, call
// the orchestrator, translate the error kind to a status code.
package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/Jomy2323/dei-pms-submission/app/gateway"
	"github.com/Jomy2323/dei-pms-submission/app/model"
)

// respondError maps the closed error kinds to HTTP statuses. Backend 4xx
// rejections keep their original status.
func respondError(c *fiber.Ctx, err error) error {
	var e *gateway.Error
	if !errors.As(err, &e) {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{
			Success: false,
			Message: err.Error(),
		})
	}

	status := fiber.StatusInternalServerError
	switch e.Kind {
	case gateway.KindPrecondition:
		status = fiber.StatusBadRequest
	case gateway.KindRejected:
		status = e.Status
	case gateway.KindNotFound:
		status = fiber.StatusNotFound
	case gateway.KindAuthDenied:
		status = fiber.StatusForbidden
	case gateway.KindTransport:
		status = fiber.StatusBadGateway
	}
	if status == 0 {
		status = fiber.StatusBadRequest
	}

	return c.Status(status).JSON(model.ErrorResponse{
		Success: false,
		Message: e.Message,
		Code:    e.Code,
	})
}

func parseID(c *fiber.Ctx, name string) (int64, error) {
	id, err := c.ParamsInt(name)
	if err != nil || id <= 0 {
		return 0, gateway.Precondition("Invalid " + name)
	}
	return int64(id), nil
}
