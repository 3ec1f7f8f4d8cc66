package workflow

import (
	"context"

	"github.com/Jomy2323/dei-pms-submission/app/gateway"
	"github.com/Jomy2323/dei-pms-submission/app/model"
)

// Dashboard serves the student aggregate view.
type Dashboard struct {
	remote Remote
}

func NewDashboard(remote Remote) *Dashboard {
	return &Dashboard{remote: remote}
}

// Student fetches the aggregate for one student: identity plus whichever of
// the thesis and defense workflows exist. Absent (nil, nil) when the backend
// knows no such student.
func (s *Dashboard) Student(ctx context.Context, studentID int64) (*model.StudentDashboard, error) {
	if studentID == 0 {
		return nil, gateway.Precondition("Student ID is required")
	}
	d, err := s.remote.StudentDashboard(ctx, studentID)
	if gateway.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return d, nil
}
