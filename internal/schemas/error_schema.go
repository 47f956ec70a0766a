package schemas

// CustomError is a struct that represents a custom error
// Code is a stable application error code, Message a human-readable text.
type CustomError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

var (
	// BadRequest is returned when the request body is invalid
	BadRequest = &CustomError{
		Code:    "ERR-001",
		Message: "The request body is invalid. Please check the request body and try again.",
	}
	// Unauthorized is returned when the request is not authorized
	Unauthorized = &CustomError{
		Code:    "ERR-002",
		Message: "The request is unauthorized. Please login to your account.",
	}
	// InvalidCredentials is returned when the client credentials do not match
	InvalidCredentials = &CustomError{
		Code:    "ERR-003",
		Message: "The credentials are invalid. Please check the credentials and try again.",
	}
	// DatabaseError is returned when a database operation fails
	DatabaseError = &CustomError{
		Code:    "ERR-004",
		Message: "A database error occurred. Please try again later.",
	}
	// InternalServerError is returned for unexpected server-side failures
	InternalServerError = &CustomError{
		Code:    "ERR-005",
		Message: "An internal server error occurred. Please try again later.",
	}
	// CalendarError is returned when the calendar backend rejects a request
	CalendarError = &CustomError{
		Code:    "ERR-006",
		Message: "The calendar service could not complete the request. Please try again later.",
	}
	// HistoryUnavailable is returned when the event log is not configured
	HistoryUnavailable = &CustomError{
		Code:    "ERR-007",
		Message: "The event history is not available on this deployment.",
	}
)
