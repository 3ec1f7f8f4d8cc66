package workflow

import (
	"context"
	"testing"
	"time"

	"github.com/Jomy2323/dei-pms-submission/app/gateway"
	"github.com/Jomy2323/dei-pms-submission/app/model"
)

var fixedNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func defensesAt(remote *fakeRemote) *Defenses {
	return NewDefensesAt(remote, func() time.Time { return fixedNow })
}

func TestScheduleRequiresCoordinator(t *testing.T) {
	future := fixedNow.Add(24 * time.Hour)

	for _, role := range []model.Role{model.RoleStudent, model.RoleTeacher, model.RoleStaff, model.RoleSC} {
		remote := &fakeRemote{}
		_, err := defensesAt(remote).Schedule(context.Background(), role, 1, future)
		expectPrecondition(t, err, remote)
	}
}

func TestScheduleRequiresFutureDate(t *testing.T) {
	for _, date := range []time.Time{fixedNow, fixedNow.Add(-time.Minute), fixedNow.Add(-24 * time.Hour)} {
		remote := &fakeRemote{}
		_, err := defensesAt(remote).Schedule(context.Background(), model.RoleCoordinator, 1, date)
		expectPrecondition(t, err, remote)
		if err.Error() != "Defense date must be in the future" {
			t.Fatalf("unexpected message %q", err.Error())
		}
	}
}

func TestScheduleDispatches(t *testing.T) {
	remote := &fakeRemote{}
	future := fixedNow.Add(24 * time.Hour)

	d, err := defensesAt(remote).Schedule(context.Background(), model.RoleCoordinator, 5, future)
	if err != nil {
		t.Fatalf("schedule: %v", err)
	}
	if d.Status != model.DefenseScheduled {
		t.Fatalf("expected SCHEDULED, got %s", d.Status)
	}
	if d.DefenseDate != future.Format(time.RFC3339) {
		t.Fatalf("unexpected wire date %q", d.DefenseDate)
	}
}

func TestRescheduleRules(t *testing.T) {
	future := fixedNow.Add(24 * time.Hour)

	remote := &fakeRemote{}
	scheduled := &model.Defense{ID: 2, Status: model.DefenseScheduled}
	_, err := defensesAt(remote).Reschedule(context.Background(), model.RoleCoordinator, scheduled, fixedNow)
	expectPrecondition(t, err, remote)

	remote = &fakeRemote{}
	graded := &model.Defense{ID: 2, Status: model.DefenseGraded}
	_, err = defensesAt(remote).Reschedule(context.Background(), model.RoleCoordinator, graded, future)
	expectPrecondition(t, err, remote)

	remote = &fakeRemote{}
	d, err := defensesAt(remote).Reschedule(context.Background(), model.RoleCoordinator, scheduled, future)
	if err != nil {
		t.Fatalf("reschedule: %v", err)
	}
	if d.Status != model.DefenseScheduled {
		t.Fatalf("expected SCHEDULED, got %s", d.Status)
	}
}

func TestSetUnderReviewRules(t *testing.T) {
	remote := &fakeRemote{}
	unscheduled := &model.Defense{ID: 2, Status: model.DefenseUnscheduled}
	_, err := defensesAt(remote).SetUnderReview(context.Background(), model.RoleCoordinator, unscheduled)
	expectPrecondition(t, err, remote)

	remote = &fakeRemote{}
	scheduled := &model.Defense{ID: 2, Status: model.DefenseScheduled}
	_, err = defensesAt(remote).SetUnderReview(context.Background(), model.RoleStaff, scheduled)
	expectPrecondition(t, err, remote)

	remote = &fakeRemote{}
	d, err := defensesAt(remote).SetUnderReview(context.Background(), model.RoleCoordinator, scheduled)
	if err != nil {
		t.Fatalf("review: %v", err)
	}
	if d.Status != model.DefenseUnderReview {
		t.Fatalf("expected UNDER_REVIEW, got %s", d.Status)
	}
}

func TestAssignGradeRules(t *testing.T) {
	remote := &fakeRemote{}
	unscheduled := &model.Defense{ID: 2, Status: model.DefenseUnscheduled}
	_, err := defensesAt(remote).AssignGrade(context.Background(), model.RoleCoordinator, unscheduled, 17)
	expectPrecondition(t, err, remote)

	remote = &fakeRemote{}
	graded := &model.Defense{ID: 2, Status: model.DefenseGraded}
	_, err = defensesAt(remote).AssignGrade(context.Background(), model.RoleCoordinator, graded, 17)
	expectPrecondition(t, err, remote)

	for _, status := range []model.DefenseStatus{model.DefenseScheduled, model.DefenseUnderReview} {
		remote = &fakeRemote{}
		d, err := defensesAt(remote).AssignGrade(context.Background(), model.RoleCoordinator,
			&model.Defense{ID: 2, Status: status}, 17)
		if err != nil {
			t.Fatalf("grade from %s: %v", status, err)
		}
		if d.Status != model.DefenseGraded || d.Grade == nil || *d.Grade != 17 {
			t.Fatalf("expected GRADED with grade 17, got %+v", d)
		}
	}
}

func TestUpdateStatusesRoles(t *testing.T) {
	for _, role := range []model.Role{model.RoleStudent, model.RoleTeacher, model.RoleSC} {
		remote := &fakeRemote{}
		err := defensesAt(remote).UpdateStatuses(context.Background(), role)
		expectPrecondition(t, err, remote)
	}

	for _, role := range []model.Role{model.RoleCoordinator, model.RoleStaff} {
		remote := &fakeRemote{}
		if err := defensesAt(remote).UpdateStatuses(context.Background(), role); err != nil {
			t.Fatalf("update statuses as %s: %v", role, err)
		}
		if remote.calls != 1 {
			t.Fatalf("expected one dispatch, got %d", remote.calls)
		}
	}
}

func TestDefenseByStudentSuppressesNotFound(t *testing.T) {
	remote := &fakeRemote{
		defenseByStudent: func(int64) (*model.Defense, error) {
			return nil, &gateway.Error{Kind: gateway.KindNotFound, Status: 404, Message: "not found"}
		},
	}

	d, err := defensesAt(remote).ByStudent(context.Background(), 7)
	if err != nil {
		t.Fatalf("expected absent result, got %v", err)
	}
	if d != nil {
		t.Fatalf("expected nil defense, got %+v", d)
	}
}

func TestDefensesByStatusRejectsUnknownStatus(t *testing.T) {
	remote := &fakeRemote{}
	_, err := defensesAt(remote).ByStatus(context.Background(), model.DefenseStatus("PENDING"))
	expectPrecondition(t, err, remote)
}

func TestDefensesByStatusEmptyWhenNoneMatch(t *testing.T) {
	remote := &fakeRemote{
		defensesByStatus: func(model.DefenseStatus) ([]model.Defense, error) {
			return nil, &gateway.Error{Kind: gateway.KindNotFound, Status: 404, Message: "not found"}
		},
	}

	list, err := defensesAt(remote).ByStatus(context.Background(), model.DefenseScheduled)
	if err != nil {
		t.Fatalf("expected empty result, got error %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("expected no defenses, got %+v", list)
	}
}
