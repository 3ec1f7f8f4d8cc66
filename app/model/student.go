package model

// StudentDashboard is the aggregate the dashboard endpoint returns for one
// student. Either workflow may be absent: a student with no proposal yet has
// neither, one with an unapproved thesis has no defense.
type StudentDashboard struct {
	ID      int64   `json:"id,omitempty"`
	Name    string  `json:"name,omitempty"`
	IstID   string  `json:"istId,omitempty"`
	Email   string  `json:"email,omitempty"`
	Type    Role    `json:"type,omitempty"`
	Student *Person `json:"student,omitempty"`

	ThesisWorkflow  *Thesis  `json:"thesisWorkflow,omitempty"`
	DefenseWorkflow *Defense `json:"defenseWorkflow,omitempty"`
}
