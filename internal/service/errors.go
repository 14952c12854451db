package service

type ErrorCode string

const (
	ErrorCodeNotFound           ErrorCode = "NOT_FOUND"
	ErrorCodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	ErrorCodeValidation         ErrorCode = "VALIDATION_FAILED"
	ErrorCodeInvalidBody        ErrorCode = "INVALID_BODY"
	ErrorCodeUnspecified        ErrorCode = "UNSPECIFIED"
)

// Error is the service-level failure shape. Message is a bundle key resolved
// by the transport layer; Fields maps input field names to bundle keys for
// field-scoped validation errors.
type Error struct {
	Code    ErrorCode         `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

func NewError(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

func NewValidationError(message string, fields map[string]string) *Error {
	return &Error{
		Code:    ErrorCodeValidation,
		Message: message,
		Fields:  fields,
	}
}

func (e *Error) Error() string {
	return e.Message
}
