package gateway

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/Jomy2323/dei-pms-submission/app/model"
)

func (g *Gateway) DefenseByStudent(ctx context.Context, studentID int64) (*model.Defense, error) {
	var d model.Defense
	if err := g.do(ctx, http.MethodGet, fmt.Sprintf("/api/defense/student/%d", studentID), nil, nil, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

func (g *Gateway) DefensesByStatus(ctx context.Context, status model.DefenseStatus) ([]model.Defense, error) {
	var list []model.Defense
	err := g.do(ctx, http.MethodGet, "/api/defense/status/"+string(status), nil, nil, &list)
	if errors.Is(err, ErrNoContent) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return list, nil
}

// ScheduleDefense creates the defense for a thesis. The role travels in the
// body, matching the backend contract for this endpoint.
func (g *Gateway) ScheduleDefense(ctx context.Context, thesisID int64, defenseDate string, role model.Role) (*model.Defense, error) {
	body := struct {
		ThesisID    int64  `json:"thesisId"`
		DefenseDate string `json:"defenseDate"`
		Role        string `json:"role"`
	}{thesisID, defenseDate, role.String()}

	var d model.Defense
	if err := g.do(ctx, http.MethodPost, "/api/defense/schedule", nil, body, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

// RescheduleDefense updates the date of an existing defense.
func (g *Gateway) RescheduleDefense(ctx context.Context, defenseID int64, defenseDate string, role model.Role) (*model.Defense, error) {
	q := url.Values{
		"defenseDate": {defenseDate},
		"role":        {role.String()},
	}
	var d model.Defense
	if err := g.do(ctx, http.MethodPost, fmt.Sprintf("/api/defense/%d/schedule", defenseID), q, nil, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

func (g *Gateway) SetUnderReview(ctx context.Context, defenseID int64, role model.Role) (*model.Defense, error) {
	q := url.Values{"role": {role.String()}}
	var d model.Defense
	if err := g.do(ctx, http.MethodPost, fmt.Sprintf("/api/defense/%d/review", defenseID), q, nil, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

func (g *Gateway) AssignGrade(ctx context.Context, defenseID int64, grade float64, role model.Role) (*model.Defense, error) {
	q := url.Values{
		"grade": {strconv.FormatFloat(grade, 'f', -1, 64)},
		"role":  {role.String()},
	}
	var d model.Defense
	if err := g.do(ctx, http.MethodPost, fmt.Sprintf("/api/defense/%d/grade", defenseID), q, nil, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

// UpdateStatuses asks the backend to recompute every defense status from the
// current date.
func (g *Gateway) UpdateStatuses(ctx context.Context, role model.Role) error {
	q := url.Values{"role": {role.String()}}
	err := g.do(ctx, http.MethodPost, "/api/defense/update-statuses", q, nil, nil)
	if errors.Is(err, ErrNoContent) {
		return nil
	}
	return err
}
