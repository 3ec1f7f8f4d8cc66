package workflow

import (
	"context"
	"strings"

	"github.com/Jomy2323/dei-pms-submission/app/gateway"
	"github.com/Jomy2323/dei-pms-submission/app/model"
)

// Theses orchestrates the thesis side of the workflow: proposal, the SC
// decision, jury president assignment, signed document upload and the final
// hand-off to Fenix. Transition operations take the loaded thesis so legality
// is checked against its current status without an extra read.
type Theses struct {
	remote Remote
}

func NewTheses(remote Remote) *Theses {
	return &Theses{remote: remote}
}

// Submit files a thesis proposal for a student. The student ends up with a
// thesis in PROPOSED.
func (s *Theses) Submit(ctx context.Context, actor model.Role, studentID int64, req model.SubmitThesisRequest) (*model.Thesis, error) {
	if actor != model.RoleStudent {
		return nil, gateway.Precondition("Only students can submit a thesis proposal")
	}
	if studentID == 0 {
		return nil, gateway.Precondition("Student ID is required")
	}
	if len(req.JuryMemberIDs) == 0 {
		return nil, gateway.Precondition("At least one jury member is required")
	}
	if len(strings.TrimSpace(req.Title)) < 3 {
		return nil, gateway.Precondition("Thesis title must be at least 3 characters long")
	}

	created, err := s.remote.SubmitThesis(ctx, studentID, req)
	if err != nil {
		return nil, err
	}
	if created != nil && created.ID != 0 {
		return created, nil
	}
	// Some backend versions answer the submit with an empty body; fall back to
	// reading the workflow that was just created.
	return s.ByStudent(ctx, studentID)
}

// ByStudent fetches the student's current thesis workflow, absent (nil, nil)
// when none exists yet.
func (s *Theses) ByStudent(ctx context.Context, studentID int64) (*model.Thesis, error) {
	t, err := s.remote.ThesisByStudent(ctx, studentID)
	if gateway.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (s *Theses) ByID(ctx context.Context, id int64) (*model.Thesis, error) {
	return s.remote.ThesisByID(ctx, id)
}

func (s *Theses) ByStatus(ctx context.Context, status model.ThesisStatus) ([]model.Thesis, error) {
	if !status.Valid() {
		return nil, gateway.Precondition("Unknown thesis status: " + string(status))
	}
	list, err := s.remote.ThesesByStatus(ctx, status)
	if gateway.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return list, nil
}

// Approve records the scientific council's approval of a proposed thesis.
func (s *Theses) Approve(ctx context.Context, actor model.Role, thesis *model.Thesis, comments string) (*model.Thesis, error) {
	if err := requireRole(actor, msgSCOnly, model.RoleSC); err != nil {
		return nil, err
	}
	if !thesisCan(thesis.Status, evApprove) {
		return nil, gateway.Precondition("Only a proposed thesis can be approved")
	}
	return s.remote.ApproveThesis(ctx, thesis.ID, actor, comments)
}

// Reject records the scientific council's rejection. A rejection must carry an
// explanation for the student.
func (s *Theses) Reject(ctx context.Context, actor model.Role, thesis *model.Thesis, comments string) (*model.Thesis, error) {
	if err := requireRole(actor, msgSCOnly, model.RoleSC); err != nil {
		return nil, err
	}
	if strings.TrimSpace(comments) == "" {
		return nil, gateway.Precondition("A rejection requires a comment")
	}
	if !thesisCan(thesis.Status, evReject) {
		return nil, gateway.Precondition("Only a proposed thesis can be rejected")
	}
	return s.remote.RejectThesis(ctx, thesis.ID, actor, comments)
}

// AssignPresident sets the jury president on an approved thesis. Whether the
// president is one of the jury members is left to the backend; the original
// system never checked it on this side either.
func (s *Theses) AssignPresident(ctx context.Context, actor model.Role, thesis *model.Thesis, presidentID int64) (*model.Thesis, error) {
	if err := requireRole(actor, msgCoordinatorOnly, model.RoleCoordinator); err != nil {
		return nil, err
	}
	if presidentID == 0 {
		return nil, gateway.Precondition("Jury president is required")
	}
	if thesis.Status != model.ThesisApproved {
		return nil, gateway.Precondition("The jury president can only be assigned to an approved thesis")
	}
	return s.remote.AssignPresident(ctx, thesis.ID, presidentID, actor)
}

// UploadDocument records the signed document path on an approved thesis.
func (s *Theses) UploadDocument(ctx context.Context, actor model.Role, thesis *model.Thesis, documentPath string) (*model.Thesis, error) {
	if err := requireRole(actor, msgCoordinatorOnly, model.RoleCoordinator); err != nil {
		return nil, err
	}
	if documentPath == "" {
		documentPath = "signed_document.pdf"
	}
	if thesis.Status != model.ThesisApproved {
		return nil, gateway.Precondition("A document can only be attached to an approved thesis")
	}
	return s.remote.UploadDocument(ctx, thesis.ID, documentPath, actor)
}

// SubmitToFenix hands the completed thesis record to the institutional
// system. Staff only, and the signed document must already be attached.
func (s *Theses) SubmitToFenix(ctx context.Context, actor model.Role, thesis *model.Thesis) (*model.Thesis, error) {
	if err := requireRole(actor, msgStaffOnly, model.RoleStaff); err != nil {
		return nil, err
	}
	if !thesisCan(thesis.Status, evFenix) {
		return nil, gateway.Precondition("Only an approved thesis can be submitted to Fenix")
	}
	if thesis.DocumentPath == "" {
		return nil, gateway.Precondition("The signed document must be uploaded before submitting to Fenix")
	}
	return s.remote.SubmitToFenix(ctx, thesis.ID, actor)
}
