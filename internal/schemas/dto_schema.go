package schemas

import "github.com/google/uuid"

// ErrorDTO is a struct that represents an error response
// Error is the custom error, see CustomError
type ErrorDTO struct {
	Error CustomError `json:"error"`
}

// MetadataDTO is a struct that represents the service metadata returned on the root route
type MetadataDTO struct {
	Status     string `json:"status"`
	ApiName    string `json:"apiName"`
	ApiVersion string `json:"apiVersion"`
}

// ExtractionDTO is a struct that represents the result of an event extraction
// Title, Start, End and Location may be empty strings when the model could not
// find them in the message. SpokenResponse is the sentence a voice frontend
// should read back to the user.
type ExtractionDTO struct {
	Title          string `json:"title"`
	Start          string `json:"start"`
	End            string `json:"end"`
	Location       string `json:"location"`
	SpokenResponse string `json:"spoken_response"`
}

// ConflictDTO is a struct that represents a single conflicting calendar event
type ConflictDTO struct {
	Title string `json:"title"`
	Start string `json:"start"`
	End   string `json:"end"`
}

// ConflictsDTO is a struct that represents the result of a conflict check
type ConflictsDTO struct {
	Conflicts      []ConflictDTO `json:"conflicts"`
	SpokenResponse string        `json:"spoken_response"`
}

// EventCreatedDTO is a struct that represents a successfully added event
// EventId is the identifier assigned by the calendar backend.
type EventCreatedDTO struct {
	Status         string `json:"status"`
	EventId        string `json:"event_id"`
	SpokenResponse string `json:"spoken_response"`
}

// SpokenErrorDTO is a struct that represents an error response on the
// assistant routes, which carry a spoken sentence next to the error tag so
// the voice frontend always has something to say.
type SpokenErrorDTO struct {
	Error          string `json:"error"`
	SpokenResponse string `json:"spoken_response"`
}

// TokenDTO is a struct that represents a token response
// Token is the JWT token
type TokenDTO struct {
	Token string `json:"token"`
}

// EventLogDTO is a struct that represents a single event-log record
type EventLogDTO struct {
	RecordId  uuid.UUID `json:"recordId"`
	EventId   string    `json:"eventId"`
	Title     string    `json:"title"`
	Start     string    `json:"start"`
	End       string    `json:"end"`
	Location  string    `json:"location"`
	CreatedAt string    `json:"createdAt"`
}

// PaginatedResponse is a struct that represents a paginated response
// Records is the records of the response
// Pagination is the pagination of the response
type PaginatedResponse struct {
	Records    interface{} `json:"records"`
	Pagination Pagination  `json:"pagination"`
}

// Pagination is a struct that represents a pagination
// Offset is the given offset of the pagination
// Limit is the given limit of the pagination
// Records is the total records of the pagination
type Pagination struct {
	Offset  int `json:"offset"`
	Limit   int `json:"limit"`
	Records int `json:"records"`
}
