package service

// Domain error taxonomy. Every check resolves to one of these and is
// returned immediately; there is no retry policy since all failures are
// either caller input errors or definitive not-found/conflict states.

// NotFoundError reports an absent target or referenced entity.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

// NotFound builds a NotFoundError with the conventional message.
func NotFound(entity string) *NotFoundError {
	return &NotFoundError{Message: entity + " not found"}
}

// ConflictError reports a uniqueness violation.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

// ValidationError reports missing or malformed caller input.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }
