package gateway

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/Jomy2323/dei-pms-submission/app/model"
)

func (g *Gateway) People(ctx context.Context) ([]model.Person, error) {
	var people []model.Person
	if err := g.do(ctx, http.MethodGet, "/people", nil, nil, &people); err != nil {
		return nil, err
	}
	return people, nil
}

func (g *Gateway) Person(ctx context.Context, id int64) (*model.Person, error) {
	var p model.Person
	if err := g.do(ctx, http.MethodGet, fmt.Sprintf("/people/%d", id), nil, nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (g *Gateway) CreatePerson(ctx context.Context, req model.CreatePersonRequest) (*model.Person, error) {
	var p model.Person
	if err := g.do(ctx, http.MethodPost, "/people", nil, req, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// UpdatePerson carries the acting role as a query parameter; the backend
// checks it independently of any session.
func (g *Gateway) UpdatePerson(ctx context.Context, id int64, req model.UpdatePersonRequest, role model.Role) (*model.Person, error) {
	q := url.Values{"role": {role.String()}}
	var p model.Person
	if err := g.do(ctx, http.MethodPut, fmt.Sprintf("/people/%d", id), q, req, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (g *Gateway) DeletePerson(ctx context.Context, id int64) error {
	err := g.do(ctx, http.MethodDelete, fmt.Sprintf("/people/%d", id), nil, nil, nil)
	if errors.Is(err, ErrNoContent) {
		return nil
	}
	return err
}

// PersonByIstID returns ErrNoContent when no person holds the IST ID.
func (g *Gateway) PersonByIstID(ctx context.Context, istID string) (*model.Person, error) {
	q := url.Values{"istId": {istID}}
	var p model.Person
	if err := g.do(ctx, http.MethodGet, "/people/search/byIstId", q, nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// IstIDExists maps a 204 to "available" and a 200 to "taken".
func (g *Gateway) IstIDExists(ctx context.Context, istID string) (bool, error) {
	_, err := g.PersonByIstID(ctx, istID)
	if errors.Is(err, ErrNoContent) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (g *Gateway) EmailExists(ctx context.Context, email string) (bool, error) {
	q := url.Values{"email": {email}}
	var p model.Person
	err := g.do(ctx, http.MethodGet, "/people/search/byEmail", q, nil, &p)
	if errors.Is(err, ErrNoContent) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (g *Gateway) PeopleByType(ctx context.Context, role model.Role) ([]model.Person, error) {
	q := url.Values{"type": {role.String()}}
	var people []model.Person
	err := g.do(ctx, http.MethodGet, "/people/search/byType", q, nil, &people)
	if errors.Is(err, ErrNoContent) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return people, nil
}

// Login authenticates an IST ID for a role. Failures keep the backend's
// domain code so the session layer can map it to a message.
func (g *Gateway) Login(ctx context.Context, istID string, role model.Role) (*model.Person, error) {
	body := model.LoginRequest{IstID: istID, Role: role}
	var p model.Person
	if err := g.do(ctx, http.MethodPost, "/login", nil, body, &p); err != nil {
		return nil, err
	}
	return &p, nil
}
