package diagnostics

import "fmt"

// InternalError marks an engine invariant violation: a condition that must
// never occur in a correctly staged pipeline. It is distinct from
// user-observable diagnostics and must not be swallowed or retried.
type InternalError struct {
	Message string
}

func (e *InternalError) Error() string {
	return "internal compiler error: " + e.Message
}

func Internalf(format string, args ...interface{}) *InternalError {
	return &InternalError{Message: fmt.Sprintf(format, args...)}
}
