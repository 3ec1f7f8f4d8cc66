package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Jomy2323/dei-pms-submission/app/model"
	"github.com/Jomy2323/dei-pms-submission/app/workflow"
	"github.com/Jomy2323/dei-pms-submission/middleware"
)

type Thesis struct {
	theses *workflow.Theses
}

func NewThesis(theses *workflow.Theses) *Thesis {
	return &Thesis{theses: theses}
}

// GET /portal/thesis/student/:id
func (h *Thesis) ByStudent(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	t, err := h.theses.ByStudent(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(model.SuccessResponse[*model.Thesis]{Success: true, Data: t})
}

// GET /portal/thesis/:id
func (h *Thesis) Get(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	t, err := h.theses.ByID(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(model.SuccessResponse[*model.Thesis]{Success: true, Data: t})
}

// GET /portal/thesis/status/:status
func (h *Thesis) ByStatus(c *fiber.Ctx) error {
	list, err := h.theses.ByStatus(c.Context(), model.ThesisStatus(c.Params("status")))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(model.SuccessResponse[[]model.Thesis]{Success: true, Data: list})
}

// POST /portal/thesis/submit
func (h *Thesis) Submit(c *fiber.Ctx) error {
	var req model.SubmitThesisRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{
			Success: false,
			Message: "Invalid input",
		})
	}
	user := middleware.UserFromLocals(c)
	t, err := h.theses.Submit(c.Context(), middleware.RoleFromLocals(c), user.ID, req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(model.SuccessResponse[*model.Thesis]{Success: true, Data: t})
}

// decision handles approve and reject, which differ only in the verb.
func (h *Thesis) decision(c *fiber.Ctx, approve bool) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	var req model.DecisionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{
			Success: false,
			Message: "Invalid input",
		})
	}

	role := middleware.RoleFromLocals(c)
	if err := workflow.RequireSC(role); err != nil {
		return respondError(c, err)
	}
	thesis, err := h.theses.ByID(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}

	var updated *model.Thesis
	if approve {
		updated, err = h.theses.Approve(c.Context(), role, thesis, req.Comments)
	} else {
		updated, err = h.theses.Reject(c.Context(), role, thesis, req.Comments)
	}
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(model.SuccessResponse[*model.Thesis]{Success: true, Data: updated})
}

// POST /portal/thesis/:id/approve
func (h *Thesis) Approve(c *fiber.Ctx) error {
	return h.decision(c, true)
}

// POST /portal/thesis/:id/reject
func (h *Thesis) Reject(c *fiber.Ctx) error {
	return h.decision(c, false)
}

// POST /portal/thesis/:id/president?presidentId=
func (h *Thesis) AssignPresident(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	presidentID := int64(c.QueryInt("presidentId"))

	role := middleware.RoleFromLocals(c)
	if err := workflow.RequireCoordinator(role); err != nil {
		return respondError(c, err)
	}
	thesis, err := h.theses.ByID(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	updated, err := h.theses.AssignPresident(c.Context(), role, thesis, presidentID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(model.SuccessResponse[*model.Thesis]{Success: true, Data: updated})
}

// POST /portal/thesis/:id/document?documentPath=
func (h *Thesis) UploadDocument(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	role := middleware.RoleFromLocals(c)
	if err := workflow.RequireCoordinator(role); err != nil {
		return respondError(c, err)
	}
	thesis, err := h.theses.ByID(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	updated, err := h.theses.UploadDocument(c.Context(), role, thesis, c.Query("documentPath"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(model.SuccessResponse[*model.Thesis]{Success: true, Data: updated})
}

// POST /portal/thesis/:id/fenix
func (h *Thesis) SubmitToFenix(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	role := middleware.RoleFromLocals(c)
	if err := workflow.RequireStaff(role); err != nil {
		return respondError(c, err)
	}
	thesis, err := h.theses.ByID(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	updated, err := h.theses.SubmitToFenix(c.Context(), role, thesis)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(model.SuccessResponse[*model.Thesis]{Success: true, Data: updated})
}
