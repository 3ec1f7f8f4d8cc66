package workflow

import (
	"context"
	"time"

	"github.com/Jomy2323/dei-pms-submission/app/gateway"
	"github.com/Jomy2323/dei-pms-submission/app/model"
)

// Defenses orchestrates the oral defense workflow: scheduling, the review
// window, grading and the bulk status recomputation.
type Defenses struct {
	remote Remote
	now    func() time.Time
}

func NewDefenses(remote Remote) *Defenses {
	return &Defenses{remote: remote, now: time.Now}
}

// NewDefensesAt injects the clock used for the future-date rule.
func NewDefensesAt(remote Remote, now func() time.Time) *Defenses {
	return &Defenses{remote: remote, now: now}
}

// ByStudent fetches the student's defense workflow, absent (nil, nil) when
// none exists yet.
func (s *Defenses) ByStudent(ctx context.Context, studentID int64) (*model.Defense, error) {
	d, err := s.remote.DefenseByStudent(ctx, studentID)
	if gateway.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return d, nil
}

func (s *Defenses) ByStatus(ctx context.Context, status model.DefenseStatus) ([]model.Defense, error) {
	if !status.Valid() {
		return nil, gateway.Precondition("Unknown defense status: " + string(status))
	}
	list, err := s.remote.DefensesByStatus(ctx, status)
	if gateway.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return list, nil
}

// Schedule creates the defense for an approved thesis on a future date.
func (s *Defenses) Schedule(ctx context.Context, actor model.Role, thesisID int64, defenseDate time.Time) (*model.Defense, error) {
	if err := requireRole(actor, msgCoordinatorOnly, model.RoleCoordinator); err != nil {
		return nil, err
	}
	if thesisID == 0 {
		return nil, gateway.Precondition("Thesis ID is required")
	}
	if !defenseDate.After(s.now()) {
		return nil, gateway.Precondition("Defense date must be in the future")
	}
	return s.remote.ScheduleDefense(ctx, thesisID, defenseDate.Format(time.RFC3339), actor)
}

// Reschedule moves an existing defense to a new future date. Legal until the
// defense has been graded.
func (s *Defenses) Reschedule(ctx context.Context, actor model.Role, defense *model.Defense, defenseDate time.Time) (*model.Defense, error) {
	if err := requireRole(actor, msgCoordinatorOnly, model.RoleCoordinator); err != nil {
		return nil, err
	}
	if !defenseDate.After(s.now()) {
		return nil, gateway.Precondition("Defense date must be in the future")
	}
	if !defenseCan(defense.Status, evSchedule) {
		return nil, gateway.Precondition("This defense can no longer be rescheduled")
	}
	return s.remote.RescheduleDefense(ctx, defense.ID, defenseDate.Format(time.RFC3339), actor)
}

// SetUnderReview moves a scheduled defense into the review window. Normally
// the bulk update does this once the defense date has passed; this is the
// manual override.
func (s *Defenses) SetUnderReview(ctx context.Context, actor model.Role, defense *model.Defense) (*model.Defense, error) {
	if err := requireRole(actor, msgCoordinatorOnly, model.RoleCoordinator); err != nil {
		return nil, err
	}
	if !defenseCan(defense.Status, evReview) {
		return nil, gateway.Precondition("Only a scheduled defense can be set under review")
	}
	return s.remote.SetUnderReview(ctx, defense.ID, actor)
}

// AssignGrade records the final grade, moving the defense to GRADED. A grade
// is never removed once set.
func (s *Defenses) AssignGrade(ctx context.Context, actor model.Role, defense *model.Defense, grade float64) (*model.Defense, error) {
	if err := requireRole(actor, msgCoordinatorOnly, model.RoleCoordinator); err != nil {
		return nil, err
	}
	if !defenseCan(defense.Status, evGrade) {
		return nil, gateway.Precondition("This defense cannot be graded in its current state")
	}
	return s.remote.AssignGrade(ctx, defense.ID, grade, actor)
}

// UpdateStatuses asks the backend to recompute every defense status from the
// current date versus the defense date.
func (s *Defenses) UpdateStatuses(ctx context.Context, actor model.Role) error {
	if err := requireRole(actor, msgCoordinatorOrStaffOnly, model.RoleCoordinator, model.RoleStaff); err != nil {
		return err
	}
	return s.remote.UpdateStatuses(ctx, actor)
}
