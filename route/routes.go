package route

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Jomy2323/dei-pms-submission/app/appearance"
	"github.com/Jomy2323/dei-pms-submission/app/handler"
	"github.com/Jomy2323/dei-pms-submission/app/session"
	"github.com/Jomy2323/dei-pms-submission/app/workflow"
	"github.com/Jomy2323/dei-pms-submission/middleware"
)

// Services bundles everything the routes need.
type Services struct {
	Sessions  *session.Context
	People    *workflow.People
	Theses    *workflow.Theses
	Defenses  *workflow.Defenses
	Dashboard *workflow.Dashboard
	Surface   *appearance.Store
}

func SetupRoutes(app *fiber.App, s Services) {
	authHandler := handler.NewAuth(s.Sessions)
	personHandler := handler.NewPerson(s.People)
	thesisHandler := handler.NewThesis(s.Theses)
	defenseHandler := handler.NewDefense(s.Defenses)
	dashboardHandler := handler.NewDashboard(s.Dashboard, s.Surface)

	auth := app.Group("/auth")
	auth.Post("/login", authHandler.Login)

	protected := app.Group("", middleware.AuthRequired(s.Sessions))

	protected.Post("/auth/logout", authHandler.Logout)
	protected.Get("/auth/profile", authHandler.Profile)

	portal := protected.Group("/portal")

	people := portal.Group("/people")
	people.Get("/", personHandler.List)
	people.Get("/professors", personHandler.Professors)
	people.Get("/check/istid", personHandler.CheckIstID)
	people.Get("/check/email", personHandler.CheckEmail)
	people.Get("/:id", personHandler.Get)
	people.Post("/", personHandler.Create)
	people.Put("/:id", personHandler.Update)
	people.Delete("/:id", personHandler.Delete)

	thesis := portal.Group("/thesis")
	thesis.Get("/student/:id", thesisHandler.ByStudent)
	thesis.Get("/status/:status", thesisHandler.ByStatus)
	thesis.Get("/:id", thesisHandler.Get)
	thesis.Post("/submit", thesisHandler.Submit)
	thesis.Post("/:id/approve", thesisHandler.Approve)
	thesis.Post("/:id/reject", thesisHandler.Reject)
	thesis.Post("/:id/president", thesisHandler.AssignPresident)
	thesis.Post("/:id/document", thesisHandler.UploadDocument)
	thesis.Post("/:id/fenix", thesisHandler.SubmitToFenix)

	defense := portal.Group("/defense")
	defense.Get("/student/:id", defenseHandler.ByStudent)
	defense.Get("/status/:status", defenseHandler.ByStatus)
	defense.Post("/schedule", defenseHandler.Schedule)
	defense.Post("/update-statuses", defenseHandler.UpdateStatuses)
	defense.Post("/:id/schedule", defenseHandler.Reschedule)
	defense.Post("/:id/review", defenseHandler.SetUnderReview)
	defense.Post("/:id/grade", defenseHandler.AssignGrade)

	portal.Get("/dashboard/student/:id", dashboardHandler.Student)
	portal.Get("/errors", dashboardHandler.DrainErrors)
}
