package model

// DefenseStatus follows the backend DefenseWorkflow states.
type DefenseStatus string

const (
	DefenseUnscheduled DefenseStatus = "UNSCHEDULED"
	DefenseScheduled   DefenseStatus = "SCHEDULED"
	DefenseUnderReview DefenseStatus = "UNDER_REVIEW"
	DefenseGraded      DefenseStatus = "GRADED"
)

func (s DefenseStatus) Valid() bool {
	switch s {
	case DefenseUnscheduled, DefenseScheduled, DefenseUnderReview, DefenseGraded:
		return true
	}
	return false
}

// Defense mirrors the backend DefenseWorkflowDto. Grade is only meaningful
// once the status has reached GRADED.
type Defense struct {
	ID          int64         `json:"id"`
	Status      DefenseStatus `json:"status"`
	DefenseDate string        `json:"defenseDate,omitempty"`
	StudentID   int64         `json:"studentId,omitempty"`
	ThesisID    int64         `json:"thesisId,omitempty"`
	Grade       *float64      `json:"grade,omitempty"`
}

type ScheduleDefenseRequest struct {
	ThesisID    int64  `json:"thesisId" validate:"required"`
	DefenseDate string `json:"defenseDate" validate:"required"`
}
