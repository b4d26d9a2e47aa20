package app_errors

// AppError repräsentiert einen Anwendungsfehler mit einem Code, einer Nachricht und optional einem Feld.
type AppError struct {
	Code       int          // HTTP status code
	Type       string       // VALIDATION_ERROR, NOT_FOUND, usw
	MessageKey string       // i18n key
	Reason     string       // verbatim user-facing text, skips i18n when set
	Details    []FieldError // optional (validation)
	Err        error        // original error (internal only)
}

const (
	ErrValidation   = "VALIDATION_ERROR"
	ErrInvalidBody  = "INVALID_BODY"
	ErrInvalidParam = "INVALID_PARAM"
	ErrInvalidQuery = "INVALID_QUERY"
	ErrUnauthorized = "UNAUTHORIZED"
	ErrForbidden    = "FORBIDDEN"
	ErrNotFound     = "NOT_FOUND"
	ErrConflict     = "CONFLICT"
	ErrRateLimited  = "TOO_MANY_REQUESTS"
	ErrInternal     = "INTERNAL_ERROR"
)

type FieldError struct {
	Field      string         `json:"field"`
	Reason     string         `json:"reason"`
	MessageKey string         `json:"message_key"`
	Params     map[string]any `json:"params,omitempty"`
}

func NewAppError(code int, errType string, messageKey string, err error) *AppError {
	return &AppError{
		Code:       code,
		Type:       errType,
		MessageKey: messageKey,
		Err:        err,
	}
}

func NewValidationError(details []FieldError) *AppError {
	return &AppError{
		Code:       400,
		Type:       ErrValidation,
		MessageKey: "invalid_request",
		Details:    details,
	}
}

// NewPermissionDenied transportiert den Ablehnungsgrund des Validators unverändert bis zum Client.
func NewPermissionDenied(reason string) *AppError {
	return &AppError{
		Code:       403,
		Type:       ErrForbidden,
		MessageKey: "forbidden",
		Reason:     reason,
	}
}

// NewInvalidInput meldet eine fachlich ungültige Eingabe mit lesbarem Grund.
func NewInvalidInput(reason string) *AppError {
	return &AppError{
		Code:       400,
		Type:       ErrInvalidBody,
		MessageKey: "request.invalid_body",
		Reason:     reason,
	}
}

func NewNotFound(messageKey string) *AppError {
	return &AppError{
		Code:       404,
		Type:       ErrNotFound,
		MessageKey: messageKey,
	}
}

func NewInternal(err error) *AppError {
	return &AppError{
		Code:       500,
		Type:       ErrInternal,
		MessageKey: "internal_error",
		Err:        err,
	}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.Reason != "" {
		return e.Reason
	}
	return e.MessageKey
}
