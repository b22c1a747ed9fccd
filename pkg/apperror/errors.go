package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Webhook intake (WH) ----

// ErrUnauthorized is returned when the shared-secret header is missing or wrong.
func ErrUnauthorized() *AppError {
	return New("WH_001", "Unauthorized", http.StatusUnauthorized)
}

// ErrUnsupportedMediaType is returned for any content type other than JSON or
// URL-encoded form data.
func ErrUnsupportedMediaType() *AppError {
	return New("WH_002", "Content-Type must be application/json or application/x-www-form-urlencoded", http.StatusUnsupportedMediaType)
}

// ErrEmailRequired is returned when no email survives alias resolution.
func ErrEmailRequired() *AppError {
	return New("WH_003", "Email is required.", http.StatusBadRequest)
}

// ErrInvalidBody covers parse failures and unexpected payload shapes. The
// message is deliberately generic so parser internals never leak to callers.
func ErrInvalidBody(err error) *AppError {
	return Wrap("WH_004", "Invalid request body", http.StatusBadRequest, err)
}

// ---- Storage (SYS) ----

// ErrStorage surfaces the store's error message verbatim to the caller.
func ErrStorage(err error) *AppError {
	return Wrap("SYS_001", err.Error(), http.StatusInternalServerError, err)
}

// InternalError wraps an internal error with a generic message.
func InternalError(err error) *AppError {
	return Wrap("SYS_000", "Internal server error", http.StatusInternalServerError, err)
}

// ---- Dashboard authentication (AUTH) ----

func ErrInvalidCredentials() *AppError {
	return New("AUTH_001", "Invalid credentials", http.StatusUnauthorized)
}

func ErrInvalidToken() *AppError {
	return New("AUTH_002", "Invalid or expired token", http.StatusUnauthorized)
}

// ---- Rate limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- Voice proxy (VOICE) ----

func ErrVoiceNotConfigured() *AppError {
	return New("VOICE_001", "Voice agent is not configured", http.StatusInternalServerError)
}

func ErrVoiceCallFailed(err error) *AppError {
	return Wrap("VOICE_002", "Failed to create web call", http.StatusInternalServerError, err)
}

// Validation returns a generic 400 validation error with the given message.
func Validation(message string) *AppError {
	return New("VAL_001", message, http.StatusBadRequest)
}
