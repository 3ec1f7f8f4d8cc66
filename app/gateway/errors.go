package gateway

import "errors"

// Kind classifies every failure this layer can produce. Callers switch on the
// kind instead of inspecting response shapes.
type Kind int

const (
	// KindPrecondition is a local business-rule violation raised before any
	// network call.
	KindPrecondition Kind = iota + 1
	// KindRejected is a 4xx the backend returned; it is handed to the caller
	// unmodified for local handling.
	KindRejected
	// KindNotFound is a 404. Read paths usually suppress it into an absent
	// result.
	KindNotFound
	// KindTransport covers network failures, timeouts and 5xx responses. These
	// are dual-reported: pushed to the error surface and returned to the
	// caller.
	KindTransport
	// KindAuthDenied is a login rejection mapped from the backend's domain
	// codes.
	KindAuthDenied
)

// Error is the single error type crossing the gateway and workflow layers.
type Error struct {
	Kind    Kind
	Status  int    // HTTP status, 0 when the request never got one
	Message string
	Code    int // backend domain code, 0 when absent
}

func (e *Error) Error() string {
	return e.Message
}

// ErrNoContent marks an empty-success (HTTP 204) response: the resource is
// absent but the request did not fail. Existence probes rely on it.
var ErrNoContent = errors.New("no content")

// Precondition builds a local business-rule failure.
func Precondition(msg string) *Error {
	return &Error{Kind: KindPrecondition, Message: msg}
}

// AuthDenied builds a login failure carrying the backend domain code.
func AuthDenied(msg string, code int) *Error {
	return &Error{Kind: KindAuthDenied, Message: msg, Code: code}
}

// KindOf extracts the kind from any error, 0 for foreign errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

// IsNotFound reports whether err is a 404 classified by the gateway.
func IsNotFound(err error) bool {
	return KindOf(err) == KindNotFound
}
