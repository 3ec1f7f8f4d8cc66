package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Jomy2323/dei-pms-submission/app/appearance"
	"github.com/Jomy2323/dei-pms-submission/app/model"
	"github.com/Jomy2323/dei-pms-submission/app/workflow"
)

type Dashboard struct {
	dashboard *workflow.Dashboard
	surface   *appearance.Store
}

func NewDashboard(dashboard *workflow.Dashboard, surface *appearance.Store) *Dashboard {
	return &Dashboard{dashboard: dashboard, surface: surface}
}

// GET /portal/dashboard/student/:id
func (h *Dashboard) Student(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	d, err := h.dashboard.Student(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(model.SuccessResponse[*model.StudentDashboard]{Success: true, Data: d})
}

// SurfaceState is the shell's view of the global error surface: whether a
// request is still in flight, plus the faults accumulated since the last poll.
type SurfaceState struct {
	Loading bool                `json:"loading"`
	Errors  []model.RemoteError `json:"errors"`
}

// GET /portal/errors — drains the global error surface so the shell can show
// faults that happened outside any single screen.
func (h *Dashboard) DrainErrors(c *fiber.Ctx) error {
	state := SurfaceState{Loading: h.surface.Loading(), Errors: h.surface.Drain()}
	return c.JSON(model.SuccessResponse[SurfaceState]{Success: true, Data: state})
}
