package model

import "testing"

func TestRoleValid(t *testing.T) {
	for _, r := range []Role{RoleStudent, RoleTeacher, RoleCoordinator, RoleStaff, RoleSC} {
		if !r.Valid() {
			t.Errorf("%s should be a valid role", r)
		}
	}
	for _, r := range []Role{"", "student", "ADMIN"} {
		if r.Valid() {
			t.Errorf("%q should not be a valid role", r)
		}
	}
}

func TestStatusValid(t *testing.T) {
	if !ThesisSubmittedToFenix.Valid() || ThesisStatus("DRAFT").Valid() {
		t.Error("thesis status validation broken")
	}
	if !DefenseUnderReview.Valid() || DefenseStatus("PENDING").Valid() {
		t.Error("defense status validation broken")
	}
}
