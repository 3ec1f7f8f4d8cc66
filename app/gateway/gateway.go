package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/Jomy2323/dei-pms-submission/app/model"
)

// ErrorSurface receives the server faults the gateway escalates globally.
// *appearance.Store satisfies it.
type ErrorSurface interface {
	PushError(model.RemoteError)
	SetLoading(bool)
}

// Gateway is the single outbound channel to the DMS backend. Every call goes
// through do, which normalizes the response envelope and classifies failures:
// 204 becomes ErrNoContent, 4xx stays with the caller, 5xx and transport
// failures are pushed to the error surface and returned as well.
type Gateway struct {
	base    string
	client  *http.Client
	surface ErrorSurface
	debug   bool
}

func New(baseURL string, timeout time.Duration, surface ErrorSurface, debug bool) *Gateway {
	return &Gateway{
		base:    baseURL,
		client:  &http.Client{Timeout: timeout},
		surface: surface,
		debug:   debug,
	}
}

func (g *Gateway) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	endpoint := g.base + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return g.fault(fmt.Sprintf("encode request for %s: %v", path, err), 0)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return g.fault(fmt.Sprintf("build request for %s: %v", path, err), 0)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-Request-Id", uuid.NewString())

	if g.debug {
		log.Printf("gateway: %s %s", method, endpoint)
	}

	res, err := g.client.Do(req)
	if err != nil {
		return g.fault(transportMessage(err), 0)
	}
	defer res.Body.Close()

	switch {
	case res.StatusCode == http.StatusNoContent:
		return ErrNoContent
	case res.StatusCode >= 200 && res.StatusCode < 300:
		if out == nil {
			io.Copy(io.Discard, res.Body)
			return nil
		}
		if err := json.NewDecoder(res.Body).Decode(out); err != nil {
			return g.fault(fmt.Sprintf("decode response from %s: %v", path, err), 0)
		}
		return nil
	case res.StatusCode >= 400 && res.StatusCode < 500:
		remote := decodeRemoteError(res.Body)
		kind := KindRejected
		if res.StatusCode == http.StatusNotFound {
			kind = KindNotFound
		}
		msg := remote.Message
		if msg == "" {
			msg = res.Status
		}
		return &Error{Kind: kind, Status: res.StatusCode, Message: msg, Code: remote.Code}
	default:
		remote := decodeRemoteError(res.Body)
		msg := remote.Message
		if msg == "" {
			msg = "Unknown Error"
		}
		err := &Error{Kind: KindTransport, Status: res.StatusCode, Message: msg, Code: remote.Code}
		g.escalate(err)
		return err
	}
}

// fault wraps a failure that never produced an HTTP status.
func (g *Gateway) fault(msg string, code int) *Error {
	err := &Error{Kind: KindTransport, Message: msg, Code: code}
	g.escalate(err)
	return err
}

// escalate dual-reports a server fault: once to the global surface, and the
// caller still gets the error.
func (g *Gateway) escalate(e *Error) {
	code := e.Code
	if code == 0 {
		code = -1
	}
	if g.surface != nil {
		g.surface.PushError(model.RemoteError{Message: e.Message, Code: code})
		g.surface.SetLoading(false)
	}
	log.Printf("gateway: server fault: %s (status %d)", e.Message, e.Status)
}

func transportMessage(err error) string {
	var ne interface{ Timeout() bool }
	if errors.As(err, &ne) && ne.Timeout() {
		return "Request timeout - Server took too long to respond"
	}
	return "Unable to connect to the server"
}

func decodeRemoteError(r io.Reader) model.RemoteError {
	var remote model.RemoteError
	// Best effort: an empty or non-JSON body leaves the zero value.
	json.NewDecoder(r).Decode(&remote)
	return remote
}
