package domain

// ValidationError reports malformed or out-of-range input as a
// field → message map, rendered as a 400 by the error handler.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "validation failed"
}
