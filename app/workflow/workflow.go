// Package workflow is the orchestration layer of the portal. Every operation
// follows the same three-phase contract: check the acting role and the input
// shape locally, dispatch through the gateway, interpret the result. A
// violated precondition fails before any network call is made.
package workflow

import (
	"context"

	"github.com/Jomy2323/dei-pms-submission/app/gateway"
	"github.com/Jomy2323/dei-pms-submission/app/model"
)

// Remote is the outbound surface the orchestrator dispatches through.
// *gateway.Gateway satisfies it; tests substitute a fake.
type Remote interface {
	People(ctx context.Context) ([]model.Person, error)
	Person(ctx context.Context, id int64) (*model.Person, error)
	CreatePerson(ctx context.Context, req model.CreatePersonRequest) (*model.Person, error)
	UpdatePerson(ctx context.Context, id int64, req model.UpdatePersonRequest, role model.Role) (*model.Person, error)
	DeletePerson(ctx context.Context, id int64) error
	PersonByIstID(ctx context.Context, istID string) (*model.Person, error)
	IstIDExists(ctx context.Context, istID string) (bool, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	PeopleByType(ctx context.Context, role model.Role) ([]model.Person, error)

	StudentDashboard(ctx context.Context, studentID int64) (*model.StudentDashboard, error)

	ThesisByStudent(ctx context.Context, studentID int64) (*model.Thesis, error)
	ThesisByID(ctx context.Context, id int64) (*model.Thesis, error)
	ThesesByStatus(ctx context.Context, status model.ThesisStatus) ([]model.Thesis, error)
	SubmitThesis(ctx context.Context, studentID int64, req model.SubmitThesisRequest) (*model.Thesis, error)
	ApproveThesis(ctx context.Context, id int64, role model.Role, comments string) (*model.Thesis, error)
	RejectThesis(ctx context.Context, id int64, role model.Role, comments string) (*model.Thesis, error)
	UploadDocument(ctx context.Context, id int64, documentPath string, role model.Role) (*model.Thesis, error)
	AssignPresident(ctx context.Context, id, presidentID int64, role model.Role) (*model.Thesis, error)
	SubmitToFenix(ctx context.Context, id int64, role model.Role) (*model.Thesis, error)

	DefenseByStudent(ctx context.Context, studentID int64) (*model.Defense, error)
	DefensesByStatus(ctx context.Context, status model.DefenseStatus) ([]model.Defense, error)
	ScheduleDefense(ctx context.Context, thesisID int64, defenseDate string, role model.Role) (*model.Defense, error)
	RescheduleDefense(ctx context.Context, defenseID int64, defenseDate string, role model.Role) (*model.Defense, error)
	SetUnderReview(ctx context.Context, defenseID int64, role model.Role) (*model.Defense, error)
	AssignGrade(ctx context.Context, defenseID int64, grade float64, role model.Role) (*model.Defense, error)
	UpdateStatuses(ctx context.Context, role model.Role) error
}

// requireRole gates an operation on the acting role.
func requireRole(actor model.Role, msg string, allowed ...model.Role) error {
	for _, r := range allowed {
		if actor == r {
			return nil
		}
	}
	return gateway.Precondition(msg)
}

const (
	msgCoordinatorOnly        = "This action can only be performed by a coordinator"
	msgStaffOnly              = "This action can only be performed by staff"
	msgCoordinatorOrStaffOnly = "This action can only be performed by coordinator or staff"
	msgSCOnly                 = "This action can only be performed by the scientific council"
)

// The HTTP layer prefetches the thesis before a transition. These gates let it
// reject a wrongly-roled request before that read, with the same message the
// operation itself would produce.

func RequireSC(actor model.Role) error {
	return requireRole(actor, msgSCOnly, model.RoleSC)
}

func RequireCoordinator(actor model.Role) error {
	return requireRole(actor, msgCoordinatorOnly, model.RoleCoordinator)
}

func RequireStaff(actor model.Role) error {
	return requireRole(actor, msgStaffOnly, model.RoleStaff)
}
