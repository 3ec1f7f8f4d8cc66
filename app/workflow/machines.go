package workflow

import (
	"github.com/looplab/fsm"

	"github.com/Jomy2323/dei-pms-submission/app/model"
)

// Transition events checked against the state machines before dispatch.
const (
	evApprove  = "approve"
	evReject   = "reject"
	evFenix    = "fenix"
	evSchedule = "schedule"
	evReview   = "review"
	evGrade    = "grade"
)

// thesisMachine builds the thesis state machine positioned at the current
// status. REJECTED and SUBMITTED_TO_FENIX are terminal.
func thesisMachine(status model.ThesisStatus) *fsm.FSM {
	return fsm.NewFSM(
		string(status),
		fsm.Events{
			{Name: evApprove, Src: []string{string(model.ThesisProposed)}, Dst: string(model.ThesisApproved)},
			{Name: evReject, Src: []string{string(model.ThesisProposed)}, Dst: string(model.ThesisRejected)},
			{Name: evFenix, Src: []string{string(model.ThesisApproved)}, Dst: string(model.ThesisSubmittedToFenix)},
		},
		fsm.Callbacks{},
	)
}

// defenseMachine builds the defense state machine positioned at the current
// status. Scheduling is re-enterable (reschedule); GRADED is terminal and a
// grade is never removed.
func defenseMachine(status model.DefenseStatus) *fsm.FSM {
	return fsm.NewFSM(
		string(status),
		fsm.Events{
			{Name: evSchedule, Src: []string{string(model.DefenseUnscheduled), string(model.DefenseScheduled)}, Dst: string(model.DefenseScheduled)},
			{Name: evReview, Src: []string{string(model.DefenseScheduled)}, Dst: string(model.DefenseUnderReview)},
			{Name: evGrade, Src: []string{string(model.DefenseScheduled), string(model.DefenseUnderReview)}, Dst: string(model.DefenseGraded)},
		},
		fsm.Callbacks{},
	)
}

// thesisCan reports whether the event is legal from the thesis's current
// status.
func thesisCan(status model.ThesisStatus, event string) bool {
	return thesisMachine(status).Can(event)
}

func defenseCan(status model.DefenseStatus, event string) bool {
	return defenseMachine(status).Can(event)
}
