package gateway

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/Jomy2323/dei-pms-submission/app/model"
)

func (g *Gateway) StudentDashboard(ctx context.Context, studentID int64) (*model.StudentDashboard, error) {
	var d model.StudentDashboard
	if err := g.do(ctx, http.MethodGet, fmt.Sprintf("/api/dashboard/student/%d", studentID), nil, nil, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

func (g *Gateway) ThesisByStudent(ctx context.Context, studentID int64) (*model.Thesis, error) {
	var t model.Thesis
	if err := g.do(ctx, http.MethodGet, fmt.Sprintf("/api/thesis/student/%d", studentID), nil, nil, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (g *Gateway) ThesisByID(ctx context.Context, id int64) (*model.Thesis, error) {
	var t model.Thesis
	if err := g.do(ctx, http.MethodGet, fmt.Sprintf("/api/thesis/%d", id), nil, nil, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (g *Gateway) ThesesByStatus(ctx context.Context, status model.ThesisStatus) ([]model.Thesis, error) {
	var list []model.Thesis
	if err := g.do(ctx, http.MethodGet, "/api/thesis/status/"+string(status), nil, nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (g *Gateway) SubmitThesis(ctx context.Context, studentID int64, req model.SubmitThesisRequest) (*model.Thesis, error) {
	q := url.Values{"studentId": {strconv.FormatInt(studentID, 10)}}
	var t model.Thesis
	if err := g.do(ctx, http.MethodPost, "/api/thesis/submit", q, req, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (g *Gateway) ApproveThesis(ctx context.Context, id int64, role model.Role, comments string) (*model.Thesis, error) {
	return g.decide(ctx, id, "approve", role, comments)
}

func (g *Gateway) RejectThesis(ctx context.Context, id int64, role model.Role, comments string) (*model.Thesis, error) {
	return g.decide(ctx, id, "reject", role, comments)
}

func (g *Gateway) decide(ctx context.Context, id int64, verb string, role model.Role, comments string) (*model.Thesis, error) {
	q := url.Values{"role": {role.String()}}
	body := model.DecisionRequest{Comments: comments}
	var t model.Thesis
	if err := g.do(ctx, http.MethodPost, fmt.Sprintf("/api/thesis/%d/%s", id, verb), q, body, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (g *Gateway) UploadDocument(ctx context.Context, id int64, documentPath string, role model.Role) (*model.Thesis, error) {
	q := url.Values{
		"documentPath": {documentPath},
		"role":         {role.String()},
	}
	var t model.Thesis
	if err := g.do(ctx, http.MethodPost, fmt.Sprintf("/api/thesis/%d/document", id), q, nil, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (g *Gateway) AssignPresident(ctx context.Context, id, presidentID int64, role model.Role) (*model.Thesis, error) {
	q := url.Values{
		"presidentId": {strconv.FormatInt(presidentID, 10)},
		"role":        {role.String()},
	}
	var t model.Thesis
	if err := g.do(ctx, http.MethodPost, fmt.Sprintf("/api/thesis/%d/president", id), q, nil, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (g *Gateway) SubmitToFenix(ctx context.Context, id int64, role model.Role) (*model.Thesis, error) {
	q := url.Values{"role": {role.String()}}
	var t model.Thesis
	if err := g.do(ctx, http.MethodPost, fmt.Sprintf("/api/thesis/%d/fenix", id), q, nil, &t); err != nil {
		return nil, err
	}
	return &t, nil
}
