package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Jomy2323/dei-pms-submission/app/model"
	"github.com/Jomy2323/dei-pms-submission/app/session"
	"github.com/Jomy2323/dei-pms-submission/helper"
	"github.com/Jomy2323/dei-pms-submission/middleware"
)

type Auth struct {
	sessions *session.Context
}

func NewAuth(sessions *session.Context) *Auth {
	return &Auth{sessions: sessions}
}

// POST /auth/login
func (h *Auth) Login(c *fiber.Ctx) error {
	var req model.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{
			Success: false,
			Message: "Invalid input",
		})
	}
	if err := helper.ValidateStruct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{
			Success: false,
			Message: helper.FormatValidationErrors(err),
		})
	}

	rec, err := h.sessions.Login(c.Context(), req.IstID, req.Role)
	if err != nil {
		return respondError(c, err)
	}

	token, err := helper.GenerateToken(rec.SessionID, rec.Person, rec.Role)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{
			Success: false,
			Message: "Failed to generate token",
		})
	}

	return c.JSON(model.LoginSuccessResponse{
		Success: true,
		Message: "Login successful",
		Data: model.LoginResponse{
			User:  rec.Person,
			Token: token,
		},
	})
}

// POST /auth/logout
func (h *Auth) Logout(c *fiber.Ctx) error {
	sessionID, _ := c.Locals("session_id").(string)
	if err := h.sessions.Logout(sessionID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{
			Success: false,
			Message: "Failed to clear session",
		})
	}
	return c.JSON(model.SuccessMessageResponse{Success: true, Message: "Logged out"})
}

// GET /auth/profile
func (h *Auth) Profile(c *fiber.Ctx) error {
	user := middleware.UserFromLocals(c)
	return c.JSON(model.ProfileResponse{Success: true, Data: user})
}
