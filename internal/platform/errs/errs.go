package errs

import "fmt"

// Kind categorizes scan failures. Failed scans surface as data on the
// per-URL result, not as HTTP errors, so there is no status mapping here.
type Kind int

const (
	// Unknown represents an unclassified error.
	Unknown Kind = iota
	// InvalidInput indicates the target URL was malformed.
	InvalidInput
	// Unreachable indicates the target URL could not be reached.
	Unreachable
	// Timeout indicates the target took too long to respond.
	Timeout
	// ParsingFailed indicates the response could not be parsed.
	ParsingFailed
)

// AppError carries a category, user message, and original cause.
type AppError struct {
	Kind           Kind
	UpstreamStatus int // HTTP status code returned by the target domain
	Message        string
	Cause          error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}
