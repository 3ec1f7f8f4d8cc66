package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Jomy2323/dei-pms-submission/app/gateway"
	"github.com/Jomy2323/dei-pms-submission/app/model"
	"github.com/Jomy2323/dei-pms-submission/app/workflow"
	"github.com/Jomy2323/dei-pms-submission/middleware"
)

type Defense struct {
	defenses *workflow.Defenses
}

func NewDefense(defenses *workflow.Defenses) *Defense {
	return &Defense{defenses: defenses}
}

// defenseTransition is the client's copy of the defense it operates on.
// The backend exposes no defense-by-id read, so the screen sends the entity
// state it holds; the backend stays the authority on the real state.
type defenseTransition struct {
	Status      model.DefenseStatus `json:"status"`
	DefenseDate string              `json:"defenseDate"`
	Grade       float64             `json:"grade"`
}

// GET /portal/defense/student/:id
func (h *Defense) ByStudent(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	d, err := h.defenses.ByStudent(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(model.SuccessResponse[*model.Defense]{Success: true, Data: d})
}

// GET /portal/defense/status/:status
func (h *Defense) ByStatus(c *fiber.Ctx) error {
	list, err := h.defenses.ByStatus(c.Context(), model.DefenseStatus(c.Params("status")))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(model.SuccessResponse[[]model.Defense]{Success: true, Data: list})
}

// POST /portal/defense/schedule
func (h *Defense) Schedule(c *fiber.Ctx) error {
	var req model.ScheduleDefenseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{
			Success: false,
			Message: "Invalid input",
		})
	}
	date, err := parseDefenseDate(req.DefenseDate)
	if err != nil {
		return respondError(c, err)
	}
	d, err := h.defenses.Schedule(c.Context(), middleware.RoleFromLocals(c), req.ThesisID, date)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(model.SuccessResponse[*model.Defense]{Success: true, Data: d})
}

// POST /portal/defense/:id/schedule
func (h *Defense) Reschedule(c *fiber.Ctx) error {
	id, body, err := h.transitionInput(c)
	if err != nil {
		return respondError(c, err)
	}
	date, err := parseDefenseDate(body.DefenseDate)
	if err != nil {
		return respondError(c, err)
	}
	d, err := h.defenses.Reschedule(c.Context(), middleware.RoleFromLocals(c),
		&model.Defense{ID: id, Status: body.Status}, date)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(model.SuccessResponse[*model.Defense]{Success: true, Data: d})
}

// POST /portal/defense/:id/review
func (h *Defense) SetUnderReview(c *fiber.Ctx) error {
	id, body, err := h.transitionInput(c)
	if err != nil {
		return respondError(c, err)
	}
	d, err := h.defenses.SetUnderReview(c.Context(), middleware.RoleFromLocals(c),
		&model.Defense{ID: id, Status: body.Status})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(model.SuccessResponse[*model.Defense]{Success: true, Data: d})
}

// POST /portal/defense/:id/grade
func (h *Defense) AssignGrade(c *fiber.Ctx) error {
	id, body, err := h.transitionInput(c)
	if err != nil {
		return respondError(c, err)
	}
	d, err := h.defenses.AssignGrade(c.Context(), middleware.RoleFromLocals(c),
		&model.Defense{ID: id, Status: body.Status}, body.Grade)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(model.SuccessResponse[*model.Defense]{Success: true, Data: d})
}

// POST /portal/defense/update-statuses
func (h *Defense) UpdateStatuses(c *fiber.Ctx) error {
	if err := h.defenses.UpdateStatuses(c.Context(), middleware.RoleFromLocals(c)); err != nil {
		return respondError(c, err)
	}
	return c.JSON(model.SuccessMessageResponse{Success: true, Message: "Statuses updated"})
}

func (h *Defense) transitionInput(c *fiber.Ctx) (int64, *defenseTransition, error) {
	id, err := parseID(c, "id")
	if err != nil {
		return 0, nil, err
	}
	var body defenseTransition
	if err := c.BodyParser(&body); err != nil {
		return 0, nil, gateway.Precondition("Invalid input")
	}
	if !body.Status.Valid() {
		return 0, nil, gateway.Precondition("Current defense status is required")
	}
	return id, &body, nil
}

func parseDefenseDate(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, gateway.Precondition("Defense date is required")
	}
	date, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		// The original scheduling dialogs send local datetimes without a zone.
		date, err = time.ParseInLocation("2006-01-02T15:04", raw, time.Local)
	}
	if err != nil {
		return time.Time{}, gateway.Precondition("Invalid defense date")
	}
	return date, nil
}
