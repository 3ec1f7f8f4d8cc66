// Package session owns the authenticated actor: login, current-user lookup
// and logout, plus the durable slot that survives a portal restart. No other
// component writes session state.
package session

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	"github.com/Jomy2323/dei-pms-submission/app/gateway"
	"github.com/Jomy2323/dei-pms-submission/app/model"
)

// Login failure messages. 1001 and 1008 are the backend's domain codes for an
// unknown IST ID and a role permission mismatch; the messages are the ones
// the portal has always shown.
const (
	msgUnknownIstID = "Não existe nenhum utilizador com esse IST ID."
	msgNoPermission = "O seguinte IST ID não tem permissões para aceder a esta função"
	msgLoginFailed  = "Login failed. Please try again."
)

// Remote is the slice of the gateway the session layer needs.
type Remote interface {
	Login(ctx context.Context, istID string, role model.Role) (*model.Person, error)
}

// Context holds the session lifecycle. Reads go through an in-memory cache;
// the sqlite store is the durable copy.
type Context struct {
	remote Remote
	store  Store
	cache  *cache.Cache
}

func New(remote Remote, store Store) *Context {
	return &Context{
		remote: remote,
		store:  store,
		cache:  cache.New(cache.NoExpiration, 10*time.Minute),
	}
}

// Login authenticates an IST ID for a role and persists the identity. Backend
// domain codes are mapped to user-facing messages; anything else falls back
// to the backend message or a generic one.
func (c *Context) Login(ctx context.Context, istID string, role model.Role) (*Record, error) {
	if istID == "" {
		return nil, gateway.Precondition("IST ID is required")
	}
	if !role.Valid() {
		return nil, gateway.Precondition("Unknown role: " + role.String())
	}

	person, err := c.remote.Login(ctx, istID, role)
	if err != nil {
		return nil, mapLoginError(err)
	}

	rec := Record{
		SessionID: uuid.NewString(),
		Person:    *person,
		Role:      role,
		CreatedAt: time.Now(),
	}
	if err := c.store.Save(rec); err != nil {
		return nil, err
	}
	c.cache.Set(rec.SessionID, rec, cache.DefaultExpiration)
	return &rec, nil
}

// Current returns the identity behind a session id without touching the
// network. Absent sessions yield (nil, false).
func (c *Context) Current(sessionID string) (*Record, bool) {
	if sessionID == "" {
		return nil, false
	}
	if cached, ok := c.cache.Get(sessionID); ok {
		rec := cached.(Record)
		return &rec, true
	}
	rec, err := c.store.Find(sessionID)
	if err != nil {
		log.Printf("session: lookup %s: %v", sessionID, err)
		return nil, false
	}
	if rec == nil {
		return nil, false
	}
	c.cache.Set(rec.SessionID, *rec, cache.DefaultExpiration)
	return rec, true
}

// Logout clears the persisted identity and the cached copy.
func (c *Context) Logout(sessionID string) error {
	c.cache.Delete(sessionID)
	return c.store.Delete(sessionID)
}

func mapLoginError(err error) error {
	var e *gateway.Error
	if !errors.As(err, &e) {
		return gateway.AuthDenied(msgLoginFailed, -1)
	}
	// Transport faults were already escalated; keep them as they are.
	if e.Kind == gateway.KindTransport {
		return e
	}
	switch e.Code {
	case 1001:
		return gateway.AuthDenied(msgUnknownIstID, e.Code)
	case 1008:
		return gateway.AuthDenied(msgNoPermission, e.Code)
	}
	if e.Message != "" {
		return gateway.AuthDenied(e.Message, e.Code)
	}
	return gateway.AuthDenied(msgLoginFailed, e.Code)
}
