package utils

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
)

// Domain-level errors raised below the service layer.
var (
	// For concurrency conflicts
	ErrRowVersionConflict = errors.New("row_version_conflict")

	// Occupancy rules
	ErrBedOccupied      = errors.New("bed_already_occupied")
	ErrBedNotOccupied   = errors.New("bed_not_occupied")
	ErrBedNotInRoom     = errors.New("bed_not_in_room")
	ErrResidentAssigned = errors.New("resident_already_assigned")
	ErrResidentOnBed    = errors.New("resident_occupies_bed")
	ErrPropertyMismatch = errors.New("property_mismatch")

	// Unique violations that are not occupancy related
	ErrDuplicate = errors.New("duplicate")

	ErrExternalServiceFailure = errors.New("external_service_failure")
	ErrNoRowsUpdated          = errors.New("no_rows_updated")
)

// AppError carries the HTTP status, public code and message from services to controllers.
type AppError struct {
	StatusCode int
	Code       string
	Message    string
	Details    any
	Err        error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

func NotFound(message string) *AppError {
	return &AppError{StatusCode: http.StatusNotFound, Code: ErrCodeNotFound, Message: message}
}

func BadRequest(message string, details any) *AppError {
	return &AppError{StatusCode: http.StatusBadRequest, Code: ErrCodeValidation, Message: message, Details: details}
}

func Internal(message string, err error) *AppError {
	return &AppError{StatusCode: http.StatusInternalServerError, Code: ErrCodeInternal, Message: message, Err: err}
}

// HandleAppError centralizes responding to AppErrors.
func HandleAppError(w http.ResponseWriter, err error) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		RespondErrorWithCode(w, appErr.StatusCode, appErr.Code, appErr.Message, appErr.Details, appErr.Err)
	} else {
		RespondErrorWithCode(w, http.StatusInternalServerError, ErrCodeInternal, "An unexpected error occurred", nil, err)
	}
}

// FieldError is one entry of a validation error's details.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationDetails flattens validator errors into field-level messages.
func ValidationDetails(err error) []FieldError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []FieldError{{Field: "", Message: err.Error()}}
	}
	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{Field: fe.Field(), Message: fieldMessage(fe)})
	}
	return out
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "oneof":
		return "Must be one of: " + fe.Param() + "."
	case "email":
		return "Enter a valid email address."
	case "min", "gte":
		return "Must be at least " + fe.Param() + "."
	case "max", "lte":
		return "Must be at most " + fe.Param() + "."
	default:
		return "Invalid value (" + fe.Tag() + ")."
	}
}
