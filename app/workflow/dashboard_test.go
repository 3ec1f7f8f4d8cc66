package workflow

import (
	"context"
	"testing"

	"github.com/Jomy2323/dei-pms-submission/app/gateway"
	"github.com/Jomy2323/dei-pms-submission/app/model"
)

func TestDashboardRequiresStudentID(t *testing.T) {
	remote := &fakeRemote{}
	_, err := NewDashboard(remote).Student(context.Background(), 0)
	expectPrecondition(t, err, remote)
}

func TestDashboardAbsentOnUnknownStudent(t *testing.T) {
	remote := &fakeRemote{
		studentDashboard: func(int64) (*model.StudentDashboard, error) {
			return nil, &gateway.Error{Kind: gateway.KindNotFound, Status: 404, Message: "not found"}
		},
	}

	dash, err := NewDashboard(remote).Student(context.Background(), 7)
	if err != nil {
		t.Fatalf("expected absent result, got error %v", err)
	}
	if dash != nil {
		t.Fatalf("expected nil dashboard, got %+v", dash)
	}
}

func TestDashboardSurfacesOtherErrors(t *testing.T) {
	remote := &fakeRemote{
		studentDashboard: func(int64) (*model.StudentDashboard, error) {
			return nil, &gateway.Error{Kind: gateway.KindTransport, Status: 502, Message: "boom"}
		},
	}

	_, err := NewDashboard(remote).Student(context.Background(), 7)
	if gateway.KindOf(err) != gateway.KindTransport {
		t.Fatalf("expected transport error, got %v", err)
	}
}

func TestDashboardReturnsAggregate(t *testing.T) {
	thesis := model.ThesisApproved
	remote := &fakeRemote{
		studentDashboard: func(studentID int64) (*model.StudentDashboard, error) {
			return &model.StudentDashboard{ID: studentID, ThesisWorkflow: &model.Thesis{ID: 3, Status: thesis}}, nil
		},
	}

	dash, err := NewDashboard(remote).Student(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dash == nil || dash.ID != 7 {
		t.Fatalf("expected dashboard for student 7, got %+v", dash)
	}
	if dash.ThesisWorkflow == nil || dash.ThesisWorkflow.Status != model.ThesisApproved {
		t.Fatalf("expected approved thesis workflow, got %+v", dash.ThesisWorkflow)
	}
	if dash.DefenseWorkflow != nil {
		t.Fatalf("expected no defense workflow, got %+v", dash.DefenseWorkflow)
	}
}
