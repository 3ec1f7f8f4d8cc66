package model

// ThesisStatus follows the backend ThesisWorkflow states.
type ThesisStatus string

const (
	ThesisProposed         ThesisStatus = "PROPOSED"
	ThesisApproved         ThesisStatus = "APPROVED"
	ThesisRejected         ThesisStatus = "REJECTED"
	ThesisSubmittedToFenix ThesisStatus = "SUBMITTED_TO_FENIX"
)

func (s ThesisStatus) Valid() bool {
	switch s {
	case ThesisProposed, ThesisApproved, ThesisRejected, ThesisSubmittedToFenix:
		return true
	}
	return false
}

// Thesis mirrors the backend ThesisWorkflowDto. JuryMembers and JuryPresident
// are denormalized Person snapshots for display only.
type Thesis struct {
	ID             int64        `json:"id"`
	Title          string       `json:"title"`
	Status         ThesisStatus `json:"status"`
	SubmissionDate string       `json:"submissionDate,omitempty"`
	StudentID      int64        `json:"studentId,omitempty"`
	DocumentPath   string       `json:"documentPath,omitempty"`
	JuryMemberIDs  []int64      `json:"juryMemberIds,omitempty"`
	// JuryPresidentID should be one of JuryMemberIDs. The backend is the
	// authority on that invariant; it is not checked here.
	JuryPresidentID int64    `json:"juryPresidentId,omitempty"`
	JuryMembers     []Person `json:"juryMembers,omitempty"`
	JuryPresident   *Person  `json:"juryPresident,omitempty"`
}

type SubmitThesisRequest struct {
	Title         string  `json:"title" validate:"required,min=3"`
	JuryMemberIDs []int64 `json:"juryMemberIds" validate:"required,min=1"`
}

// DecisionRequest carries the SC comment attached to an approve or reject.
type DecisionRequest struct {
	Comments string `json:"comments"`
}
