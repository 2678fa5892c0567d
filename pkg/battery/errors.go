package battery

// ErrorKind tags a service failure so the HTTP layer can pick a status
// code without string-matching messages.
type ErrorKind string

const (
	ErrKindValidation ErrorKind = "validation"
	ErrKindNotFound   ErrorKind = "not_found"
	ErrKindDatabase   ErrorKind = "database"
	ErrKindUnknown    ErrorKind = "unknown"
)

type ServiceError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *ServiceError) Error() string {
	return e.Message
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

// Description is the coarse class reported next to the message in error
// responses, e.g. {"error": ..., "description": "Database error"}.
func (e *ServiceError) Description() string {
	switch e.Kind {
	case ErrKindValidation:
		return "Validation error"
	case ErrKindNotFound:
		return "Not found"
	case ErrKindDatabase:
		return "Database error"
	default:
		return "Unknown error"
	}
}

func newValidationError(message string) *ServiceError {
	return &ServiceError{Kind: ErrKindValidation, Message: message}
}

func newNotFoundError(message string) *ServiceError {
	return &ServiceError{Kind: ErrKindNotFound, Message: message}
}

func newDatabaseError(err error) *ServiceError {
	return &ServiceError{Kind: ErrKindDatabase, Message: err.Error(), Err: err}
}

// asServiceError passes tagged errors through untouched and wraps anything
// else coming out of a transaction as a database failure.
func asServiceError(err error) error {
	if err == nil {
		return nil
	}
	if se, ok := err.(*ServiceError); ok {
		return se
	}
	return newDatabaseError(err)
}
