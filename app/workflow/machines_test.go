package workflow

import (
	"testing"

	"github.com/Jomy2323/dei-pms-submission/app/model"
)

func TestThesisMachine(t *testing.T) {
	tests := []struct {
		status model.ThesisStatus
		event  string
		want   bool
	}{
		{model.ThesisProposed, evApprove, true},
		{model.ThesisProposed, evReject, true},
		{model.ThesisProposed, evFenix, false},
		{model.ThesisApproved, evApprove, false},
		{model.ThesisApproved, evFenix, true},
		{model.ThesisRejected, evApprove, false},
		{model.ThesisRejected, evReject, false},
		{model.ThesisSubmittedToFenix, evFenix, false},
	}

	for _, tt := range tests {
		if got := thesisCan(tt.status, tt.event); got != tt.want {
			t.Errorf("thesisCan(%s, %s) = %v, want %v", tt.status, tt.event, got, tt.want)
		}
	}
}

func TestDefenseMachine(t *testing.T) {
	tests := []struct {
		status model.DefenseStatus
		event  string
		want   bool
	}{
		{model.DefenseUnscheduled, evSchedule, true},
		{model.DefenseUnscheduled, evReview, false},
		{model.DefenseUnscheduled, evGrade, false},
		{model.DefenseScheduled, evSchedule, true},
		{model.DefenseScheduled, evReview, true},
		{model.DefenseScheduled, evGrade, true},
		{model.DefenseUnderReview, evGrade, true},
		{model.DefenseUnderReview, evSchedule, false},
		{model.DefenseGraded, evSchedule, false},
		{model.DefenseGraded, evGrade, false},
	}

	for _, tt := range tests {
		if got := defenseCan(tt.status, tt.event); got != tt.want {
			t.Errorf("defenseCan(%s, %s) = %v, want %v", tt.status, tt.event, got, tt.want)
		}
	}
}
