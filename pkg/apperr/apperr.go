package apperr

// Error kinds. Controllers map these to HTTP status codes; the message is the
// only detail that ever reaches the client.
const (
	KindValidation   = "VALIDATION"
	KindConflict     = "CONFLICT"
	KindUnauthorized = "UNAUTHORIZED"
	KindForbidden    = "FORBIDDEN"
	KindNotFound     = "NOT_FOUND"
	KindInternal     = "INTERNAL"
)

type Error struct {
	Kind    string
	Message string
	Err     error // wrapped cause, logged but never serialized
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Err }

func New(kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Validation(message string) *Error   { return New(KindValidation, message) }
func Conflict(message string) *Error     { return New(KindConflict, message) }
func Unauthorized(message string) *Error { return New(KindUnauthorized, message) }
func Forbidden(message string) *Error    { return New(KindForbidden, message) }
func NotFound(message string) *Error     { return New(KindNotFound, message) }

// Internal wraps an unexpected failure behind a safe message.
func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Message: "something went wrong", Err: err}
}
