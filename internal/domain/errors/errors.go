package errors

import (
	"net/http"
	"time"

	"checkin/internal/errors"
)

// AppError is an error that knows how it should be reported to a client.
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Machine-readable kind
	Message() string   // Human-readable message
	Details() any      // Structured context for the client, may be nil
}

// BaseError is the plain AppError implementation used for predefined errors.
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   any
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message string, details any) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with a context message, keeping it matchable with errors.As.
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

func (e *BaseError) Message() string {
	return e.message
}

func (e *BaseError) Details() any {
	return e.details
}

// WithDetails returns a copy of e carrying details.
func (e *BaseError) WithDetails(details any) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Is matches predefined errors by code so copies made by WithDetails still match.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
}

// Predefined error types
var (
	// Validation
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		nil,
	)

	ErrMissingCoordinates = NewBaseError(
		http.StatusBadRequest,
		"MISSING_COORDINATES",
		"Missing coordinates",
		nil,
	)

	ErrInvalidCoordinates = NewBaseError(
		http.StatusBadRequest,
		"INVALID_COORDINATES",
		"Coordinates must be finite numbers",
		nil,
	)

	ErrMissingPhoto = NewBaseError(
		http.StatusBadRequest,
		"MISSING_PHOTO",
		"Photo is required",
		nil,
	)

	ErrInvalidDate = NewBaseError(
		http.StatusBadRequest,
		"INVALID_DATE",
		"Date must be formatted as YYYY-MM-DD",
		nil,
	)

	// Authentication
	ErrNotAuthenticated = NewBaseError(
		http.StatusUnauthorized,
		"NOT_AUTHENTICATED",
		"Not authenticated",
		nil,
	)

	ErrOAuthStateInvalid = NewBaseError(
		http.StatusBadRequest,
		"OAUTH_STATE_INVALID",
		"Login request expired or was tampered with",
		nil,
	)

	ErrOAuthFailed = NewBaseError(
		http.StatusUnauthorized,
		"OAUTH_FAILED",
		"Sign-in with the identity provider failed",
		nil,
	)

	// Users
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		nil,
	)

	ErrUserUpsertFailed = NewBaseError(
		http.StatusInternalServerError,
		"USER_UPSERT_FAILED",
		"Failed to save user",
		nil,
	)

	// Check-ins
	ErrCheckInNotFound = NewBaseError(
		http.StatusNotFound,
		"CHECKIN_NOT_FOUND",
		"Check-in not found",
		nil,
	)

	// Reactions
	ErrInvalidReactionType = NewBaseError(
		http.StatusBadRequest,
		"INVALID_REACTION_TYPE",
		"Reaction type must be like or dislike",
		nil,
	)

	ErrReactionAlreadyGiven = NewBaseError(
		http.StatusConflict,
		"REACTION_ALREADY_GIVEN",
		"You already reacted today",
		nil,
	)

	ErrCannotReactToOwnCheckIn = NewBaseError(
		http.StatusBadRequest,
		"CANNOT_REACT_TO_OWN_CHECKIN",
		"You cannot react to your own check-in",
		nil,
	)

	// General
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Database transaction failed",
		nil,
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		nil,
	)
)

// OutOfRangeError reports a position outside the geofence.
type OutOfRangeError struct {
	Distance float64 // meters, rounded to one decimal
	Radius   float64 // meters
}

// NewOutOfRangeError creates a geofence failure for the given distance and radius.
func NewOutOfRangeError(distance, radius float64) *OutOfRangeError {
	return &OutOfRangeError{Distance: distance, Radius: radius}
}

func (e *OutOfRangeError) Error() string {
	return "too far from the check-in site"
}

func (e *OutOfRangeError) HTTPCode() int {
	return http.StatusBadRequest
}

func (e *OutOfRangeError) ErrorCode() string {
	return "OUT_OF_RANGE"
}

func (e *OutOfRangeError) Message() string {
	return "Too far from Science Park"
}

func (e *OutOfRangeError) Details() any {
	return map[string]any{
		"distance":       e.Distance,
		"allowed_radius": e.Radius,
	}
}

// AlreadyCheckedInError reports that the user already holds today's check-in.
type AlreadyCheckedInError struct {
	CheckInTime time.Time
}

// NewAlreadyCheckedInError creates the error for an existing check-in made at checkInTime.
func NewAlreadyCheckedInError(checkInTime time.Time) *AlreadyCheckedInError {
	return &AlreadyCheckedInError{CheckInTime: checkInTime}
}

func (e *AlreadyCheckedInError) Error() string {
	return "already checked in at " + e.CheckInTime.Format(time.RFC3339)
}

func (e *AlreadyCheckedInError) HTTPCode() int {
	return http.StatusConflict
}

func (e *AlreadyCheckedInError) ErrorCode() string {
	return "ALREADY_CHECKED_IN"
}

func (e *AlreadyCheckedInError) Message() string {
	return "Already checked in today"
}

func (e *AlreadyCheckedInError) Details() any {
	return map[string]any{
		"check_in_time": e.CheckInTime.UTC().Format(time.RFC3339Nano),
	}
}

// DatabaseExecuteError wraps an unexpected storage failure.
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, e.details).Error()
}

// Unwrap exposes the driver error.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

func (e *DatabaseExecuteError) Details() any {
	return e.details
}
