package booking

import "fmt"

// SessionError carries a machine-readable code alongside the message.
type SessionError struct {
	Code    string
	Message string
}

func (e *SessionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func newSessionError(code, msg string) error {
	return &SessionError{Code: code, Message: msg}
}

// Error codes returned by the session engine.
const (
	CodeSessionNotFound  = "sessionNotFound"
	CodeStepMismatch     = "stepMismatch"
	CodeInvalidSelection = "invalidSelection"
	CodeIncomplete       = "incomplete"
)

// IsCode reports whether err is a SessionError with the given code.
func IsCode(err error, code string) bool {
	se, ok := err.(*SessionError)
	return ok && se.Code == code
}
