package workflow

import (
	"context"

	"github.com/Jomy2323/dei-pms-submission/app/model"
)

// fakeRemote counts dispatches so tests can assert that a failed precondition
// never reached the transport layer. Individual behaviors are overridable per
// test; everything else answers with zero values.
type fakeRemote struct {
	calls int

	peopleByType     func(role model.Role) ([]model.Person, error)
	istIDExists      func(istID string) (bool, error)
	emailExists      func(email string) (bool, error)
	personByIstID    func(istID string) (*model.Person, error)
	submitThesis     func(studentID int64, req model.SubmitThesisRequest) (*model.Thesis, error)
	thesisByStudent  func(studentID int64) (*model.Thesis, error)
	approveThesis    func(id int64, role model.Role, comments string) (*model.Thesis, error)
	rejectThesis     func(id int64, role model.Role, comments string) (*model.Thesis, error)
	thesesByStatus   func(status model.ThesisStatus) ([]model.Thesis, error)
	defenseByStudent func(studentID int64) (*model.Defense, error)
	defensesByStatus func(status model.DefenseStatus) ([]model.Defense, error)
	scheduleDefense  func(thesisID int64, defenseDate string, role model.Role) (*model.Defense, error)
	studentDashboard func(studentID int64) (*model.StudentDashboard, error)
}

func (f *fakeRemote) People(ctx context.Context) ([]model.Person, error) {
	f.calls++
	return nil, nil
}

func (f *fakeRemote) Person(ctx context.Context, id int64) (*model.Person, error) {
	f.calls++
	return &model.Person{ID: id}, nil
}

func (f *fakeRemote) CreatePerson(ctx context.Context, req model.CreatePersonRequest) (*model.Person, error) {
	f.calls++
	return &model.Person{ID: 1, Name: req.Name, IstID: req.IstID, Email: req.Email, Type: req.Type}, nil
}

func (f *fakeRemote) UpdatePerson(ctx context.Context, id int64, req model.UpdatePersonRequest, role model.Role) (*model.Person, error) {
	f.calls++
	return &model.Person{ID: id, Name: req.Name, IstID: req.IstID, Email: req.Email, Type: req.Type}, nil
}

func (f *fakeRemote) DeletePerson(ctx context.Context, id int64) error {
	f.calls++
	return nil
}

func (f *fakeRemote) PersonByIstID(ctx context.Context, istID string) (*model.Person, error) {
	f.calls++
	if f.personByIstID != nil {
		return f.personByIstID(istID)
	}
	return &model.Person{IstID: istID}, nil
}

func (f *fakeRemote) IstIDExists(ctx context.Context, istID string) (bool, error) {
	f.calls++
	if f.istIDExists != nil {
		return f.istIDExists(istID)
	}
	return false, nil
}

func (f *fakeRemote) EmailExists(ctx context.Context, email string) (bool, error) {
	f.calls++
	if f.emailExists != nil {
		return f.emailExists(email)
	}
	return false, nil
}

func (f *fakeRemote) PeopleByType(ctx context.Context, role model.Role) ([]model.Person, error) {
	f.calls++
	if f.peopleByType != nil {
		return f.peopleByType(role)
	}
	return nil, nil
}

func (f *fakeRemote) StudentDashboard(ctx context.Context, studentID int64) (*model.StudentDashboard, error) {
	f.calls++
	if f.studentDashboard != nil {
		return f.studentDashboard(studentID)
	}
	return &model.StudentDashboard{ID: studentID}, nil
}

func (f *fakeRemote) ThesisByStudent(ctx context.Context, studentID int64) (*model.Thesis, error) {
	f.calls++
	if f.thesisByStudent != nil {
		return f.thesisByStudent(studentID)
	}
	return &model.Thesis{ID: 1, StudentID: studentID}, nil
}

func (f *fakeRemote) ThesisByID(ctx context.Context, id int64) (*model.Thesis, error) {
	f.calls++
	return &model.Thesis{ID: id}, nil
}

func (f *fakeRemote) ThesesByStatus(ctx context.Context, status model.ThesisStatus) ([]model.Thesis, error) {
	f.calls++
	if f.thesesByStatus != nil {
		return f.thesesByStatus(status)
	}
	return nil, nil
}

func (f *fakeRemote) SubmitThesis(ctx context.Context, studentID int64, req model.SubmitThesisRequest) (*model.Thesis, error) {
	f.calls++
	if f.submitThesis != nil {
		return f.submitThesis(studentID, req)
	}
	return &model.Thesis{ID: 1, Title: req.Title, Status: model.ThesisProposed, StudentID: studentID, JuryMemberIDs: req.JuryMemberIDs}, nil
}

func (f *fakeRemote) ApproveThesis(ctx context.Context, id int64, role model.Role, comments string) (*model.Thesis, error) {
	f.calls++
	if f.approveThesis != nil {
		return f.approveThesis(id, role, comments)
	}
	return &model.Thesis{ID: id, Status: model.ThesisApproved}, nil
}

func (f *fakeRemote) RejectThesis(ctx context.Context, id int64, role model.Role, comments string) (*model.Thesis, error) {
	f.calls++
	if f.rejectThesis != nil {
		return f.rejectThesis(id, role, comments)
	}
	return &model.Thesis{ID: id, Status: model.ThesisRejected}, nil
}

func (f *fakeRemote) UploadDocument(ctx context.Context, id int64, documentPath string, role model.Role) (*model.Thesis, error) {
	f.calls++
	return &model.Thesis{ID: id, Status: model.ThesisApproved, DocumentPath: documentPath}, nil
}

func (f *fakeRemote) AssignPresident(ctx context.Context, id, presidentID int64, role model.Role) (*model.Thesis, error) {
	f.calls++
	return &model.Thesis{ID: id, Status: model.ThesisApproved, JuryPresidentID: presidentID}, nil
}

func (f *fakeRemote) SubmitToFenix(ctx context.Context, id int64, role model.Role) (*model.Thesis, error) {
	f.calls++
	return &model.Thesis{ID: id, Status: model.ThesisSubmittedToFenix}, nil
}

func (f *fakeRemote) DefenseByStudent(ctx context.Context, studentID int64) (*model.Defense, error) {
	f.calls++
	if f.defenseByStudent != nil {
		return f.defenseByStudent(studentID)
	}
	return &model.Defense{ID: 1, StudentID: studentID}, nil
}

func (f *fakeRemote) DefensesByStatus(ctx context.Context, status model.DefenseStatus) ([]model.Defense, error) {
	f.calls++
	if f.defensesByStatus != nil {
		return f.defensesByStatus(status)
	}
	return nil, nil
}

func (f *fakeRemote) ScheduleDefense(ctx context.Context, thesisID int64, defenseDate string, role model.Role) (*model.Defense, error) {
	f.calls++
	if f.scheduleDefense != nil {
		return f.scheduleDefense(thesisID, defenseDate, role)
	}
	return &model.Defense{ID: 1, ThesisID: thesisID, Status: model.DefenseScheduled, DefenseDate: defenseDate}, nil
}

func (f *fakeRemote) RescheduleDefense(ctx context.Context, defenseID int64, defenseDate string, role model.Role) (*model.Defense, error) {
	f.calls++
	return &model.Defense{ID: defenseID, Status: model.DefenseScheduled, DefenseDate: defenseDate}, nil
}

func (f *fakeRemote) SetUnderReview(ctx context.Context, defenseID int64, role model.Role) (*model.Defense, error) {
	f.calls++
	return &model.Defense{ID: defenseID, Status: model.DefenseUnderReview}, nil
}

func (f *fakeRemote) AssignGrade(ctx context.Context, defenseID int64, grade float64, role model.Role) (*model.Defense, error) {
	f.calls++
	return &model.Defense{ID: defenseID, Status: model.DefenseGraded, Grade: &grade}, nil
}

func (f *fakeRemote) UpdateStatuses(ctx context.Context, role model.Role) error {
	f.calls++
	return nil
}
