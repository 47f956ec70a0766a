// Package schemas defines the request structures for the assistant routes.
// Field presence on the assistant routes is checked in the handlers so the
// voice frontend always receives a spoken sentence, the validate tags only
// guard shape and size.
package schemas

// ExtractRequest is a struct that represents an extraction request
// Text must be less than 2048 characters
type ExtractRequest struct {
	Text string `json:"text" validate:"max=2048"`
}

// CheckConflictsRequest is a struct that represents a conflict check request
// Start and End are ISO-like datetimes
type CheckConflictsRequest struct {
	Start string `json:"start" validate:"max=64"`
	End   string `json:"end" validate:"max=64"`
}

// AddEventRequest is a struct that represents an add event request
// Start and End must be ISO-like datetimes when given, Location and
// AttendeeEmail are optional. AttendeeEmail, when given, receives a
// confirmation mail after the insert.
type AddEventRequest struct {
	Title         string `json:"title" validate:"max=256"`
	Start         string `json:"start" validate:"omitempty,iso_datetime"`
	End           string `json:"end" validate:"omitempty,iso_datetime"`
	Location      string `json:"location" validate:"max=512"`
	AttendeeEmail string `json:"attendee_email" validate:"omitempty,email"`
}

// TokenRequest is a struct that represents a client token request
// ClientId identifies the calling frontend, ClientSecret is checked against
// the configured bcrypt hash.
type TokenRequest struct {
	ClientId     string `json:"clientId" validate:"required,max=64,client_id_validation"`
	ClientSecret string `json:"clientSecret" validate:"required,min=8"`
}
