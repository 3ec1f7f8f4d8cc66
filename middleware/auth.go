package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/Jomy2323/dei-pms-submission/app/model"
	"github.com/Jomy2323/dei-pms-submission/app/session"
	"github.com/Jomy2323/dei-pms-submission/helper"
)

// AuthRequired validates the portal bearer token, rehydrates the session
// record behind it and places identity and role in locals.
func AuthRequired(sessions *session.Context) fiber.Handler {
	return func(c *fiber.Ctx) error {
		bearer := strings.TrimSpace(c.Get("Authorization"))
		if bearer == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(model.ErrorResponse{
				Success: false,
				Message: "Missing token",
			})
		}

		if len(bearer) < 7 || !strings.EqualFold(bearer[:7], "Bearer ") {
			return c.Status(fiber.StatusUnauthorized).JSON(model.ErrorResponse{
				Success: false,
				Message: "Invalid bearer token format",
			})
		}
		token := strings.TrimSpace(bearer[7:])

		claims, err := helper.ValidateToken(token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(model.ErrorResponse{
				Success: false,
				Message: "Invalid token",
			})
		}

		rec, ok := sessions.Current(claims.SessionID)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(model.ErrorResponse{
				Success: false,
				Message: "Session expired or logged out",
			})
		}

		c.Locals("session_id", rec.SessionID)
		c.Locals("user", rec.Person)
		c.Locals("role", rec.Role)

		return c.Next()
	}
}

// RoleFromLocals reads the acting role set by AuthRequired.
func RoleFromLocals(c *fiber.Ctx) model.Role {
	if role, ok := c.Locals("role").(model.Role); ok {
		return role
	}
	return ""
}

// UserFromLocals reads the acting person set by AuthRequired.
func UserFromLocals(c *fiber.Ctx) model.Person {
	if p, ok := c.Locals("user").(model.Person); ok {
		return p
	}
	return model.Person{}
}
