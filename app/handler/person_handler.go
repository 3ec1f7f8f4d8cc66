package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Jomy2323/dei-pms-submission/app/model"
	"github.com/Jomy2323/dei-pms-submission/app/workflow"
	"github.com/Jomy2323/dei-pms-submission/middleware"
)

type Person struct {
	people *workflow.People
}

func NewPerson(people *workflow.People) *Person {
	return &Person{people: people}
}

// GET /portal/people
func (h *Person) List(c *fiber.Ctx) error {
	people, err := h.people.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(model.SuccessResponse[[]model.Person]{Success: true, Data: people})
}

// GET /portal/people/:id
func (h *Person) Get(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	p, err := h.people.Get(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(model.SuccessResponse[*model.Person]{Success: true, Data: p})
}

// POST /portal/people
func (h *Person) Create(c *fiber.Ctx) error {
	var req model.CreatePersonRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{
			Success: false,
			Message: "Invalid input",
		})
	}
	p, err := h.people.Create(c.Context(), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(model.SuccessResponse[*model.Person]{Success: true, Data: p})
}

// PUT /portal/people/:id
func (h *Person) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	var req model.UpdatePersonRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{
			Success: false,
			Message: "Invalid input",
		})
	}
	p, err := h.people.Update(c.Context(), middleware.RoleFromLocals(c), id, req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(model.SuccessResponse[*model.Person]{Success: true, Data: p})
}

// DELETE /portal/people/:id
func (h *Person) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	if err := h.people.Delete(c.Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(model.SuccessMessageResponse{Success: true, Message: "Deleted"})
}

// GET /portal/people/professors
func (h *Person) Professors(c *fiber.Ctx) error {
	people, err := h.people.Professors(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(model.SuccessResponse[[]model.Person]{Success: true, Data: people})
}

// GET /portal/people/check/istid?istId=
func (h *Person) CheckIstID(c *fiber.Ctx) error {
	available, err := h.people.IstIDAvailable(c.Context(), c.Query("istId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(model.SuccessResponse[bool]{Success: true, Data: available})
}

// GET /portal/people/check/email?email=
func (h *Person) CheckEmail(c *fiber.Ctx) error {
	available, err := h.people.EmailAvailable(c.Context(), c.Query("email"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(model.SuccessResponse[bool]{Success: true, Data: available})
}
