package planerr

import "fmt"

// Kind classifies a planning error. The set is closed: it is exactly the
// error surface spec.md §6 enumerates.
type Kind string

const (
	InvalidSelection          Kind = "invalid_selection"
	AmbiguousService          Kind = "ambiguous_service"
	AmbiguousAutoConnection   Kind = "ambiguous_auto_connection"
	AmbiguousChildConnection  Kind = "ambiguous_child_connection"
	RecursiveSelection        Kind = "recursive_selection"
	IncompatibleComponentModels Kind = "incompatible_component_models"
	IncompatibleSelections    Kind = "incompatible_selections"
	MissingDeployments        Kind = "missing_deployments"
	NameResolutionError       Kind = "name_resolution_error"
	InternalError             Kind = "internal_error"
)

// Error is a classified planning failure: a Kind a caller can switch on,
// a human-readable message, an optional wrapped cause, and — for kinds
// whose diagnostic value is structured rather than prose, such as
// MissingDeployments' per-task candidate lists — an optional Details
// payload the caller can type-assert.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
	Details any
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

// Is reports whether target is a *Error with the same Kind, so callers can
// write errors.Is(err, planerr.New(planerr.AmbiguousService, "")) — or more
// idiomatically, use the Kind-only sentinel helpers below.
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == other.Kind
}

// New builds an Error of the given kind.
func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap builds an Error of the given kind around a causing error.
func Wrap(kind Kind, cause error, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// WithDetails attaches a structured diagnostic payload to e and returns e,
// for chaining onto New/Wrap at the construction site.
func (e *Error) WithDetails(details any) *Error {
	e.Details = details
	return e
}

// Sentinel returns a zero-message Error of the given kind, suitable only as
// an errors.Is() target: errors.Is(err, planerr.Sentinel(planerr.MissingDeployments)).
func Sentinel(kind Kind) *Error {
	return &Error{Kind: kind}
}

// OfKind reports whether err is a *Error of the given kind, at any point in
// its wrap chain.
func OfKind(err error, kind Kind) bool {
	var pe *Error
	for err != nil {
		if e, ok := err.(*Error); ok {
			pe = e
			break
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			break
		}
		err = u.Unwrap()
	}
	return pe != nil && pe.Kind == kind
}
