package workflow

import (
	"context"
	"errors"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/Jomy2323/dei-pms-submission/app/gateway"
	"github.com/Jomy2323/dei-pms-submission/app/model"
	"github.com/Jomy2323/dei-pms-submission/helper"
)

const professorsCacheKey = "professors"

// People exposes the person management operations. The professors list is
// cached briefly because every jury-selection screen asks for it.
type People struct {
	remote Remote
	cache  *cache.Cache
}

func NewPeople(remote Remote) *People {
	return &People{
		remote: remote,
		cache:  cache.New(5*time.Minute, 10*time.Minute),
	}
}

func (s *People) List(ctx context.Context) ([]model.Person, error) {
	return s.remote.People(ctx)
}

func (s *People) Get(ctx context.Context, id int64) (*model.Person, error) {
	return s.remote.Person(ctx, id)
}

// Create registers a new person. IST ID and email uniqueness is probed here
// before the write; the backend enforces it authoritatively.
func (s *People) Create(ctx context.Context, req model.CreatePersonRequest) (*model.Person, error) {
	if err := helper.ValidateStruct(req); err != nil {
		return nil, gateway.Precondition(helper.FormatValidationErrors(err))
	}

	taken, err := s.remote.IstIDExists(ctx, req.IstID)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, gateway.Precondition("IST ID is already in use")
	}

	taken, err = s.remote.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, gateway.Precondition("Email is already in use")
	}

	return s.remote.CreatePerson(ctx, req)
}

// Update mutates a person record. Coordinator or staff only.
func (s *People) Update(ctx context.Context, actor model.Role, id int64, req model.UpdatePersonRequest) (*model.Person, error) {
	if err := requireRole(actor, msgCoordinatorOrStaffOnly, model.RoleCoordinator, model.RoleStaff); err != nil {
		return nil, err
	}
	if err := helper.ValidateStruct(req); err != nil {
		return nil, gateway.Precondition(helper.FormatValidationErrors(err))
	}
	return s.remote.UpdatePerson(ctx, id, req, actor)
}

func (s *People) Delete(ctx context.Context, id int64) error {
	return s.remote.DeletePerson(ctx, id)
}

// StudentByIstID resolves a student record, absent (nil, nil) when the IST ID
// is unknown.
func (s *People) StudentByIstID(ctx context.Context, istID string) (*model.Person, error) {
	if istID == "" {
		return nil, gateway.Precondition("IST ID is required")
	}
	p, err := s.remote.PersonByIstID(ctx, istID)
	if errors.Is(err, gateway.ErrNoContent) || gateway.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

// IstIDAvailable reports whether the IST ID is free for registration.
func (s *People) IstIDAvailable(ctx context.Context, istID string) (bool, error) {
	if istID == "" {
		return false, gateway.Precondition("IST ID is required")
	}
	taken, err := s.remote.IstIDExists(ctx, istID)
	if err != nil {
		return false, err
	}
	return !taken, nil
}

func (s *People) EmailAvailable(ctx context.Context, email string) (bool, error) {
	if email == "" {
		return false, gateway.Precondition("Email is required")
	}
	taken, err := s.remote.EmailExists(ctx, email)
	if err != nil {
		return false, err
	}
	return !taken, nil
}

// Professors lists the teachers eligible for jury membership, served from
// cache within the TTL.
func (s *People) Professors(ctx context.Context) ([]model.Person, error) {
	if cached, ok := s.cache.Get(professorsCacheKey); ok {
		return cached.([]model.Person), nil
	}
	people, err := s.remote.PeopleByType(ctx, model.RoleTeacher)
	if err != nil {
		return nil, err
	}
	s.cache.Set(professorsCacheKey, people, cache.DefaultExpiration)
	return people, nil
}
