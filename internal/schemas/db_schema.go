// Package schemas defines the data structures
package schemas

import (
	"time"

	"github.com/google/uuid"
)

// EventDetails represents the event fields the extraction model produces and
// the calendar manager consumes. All fields are ISO-like strings since they
// travel unchanged between the model, the frontend and the calendar backend.
type EventDetails struct {
	Title    string `json:"title"`
	Start    string `json:"start"`
	End      string `json:"end"`
	Location string `json:"location"`
}

// EventRecord represents a row of the event log in the database.
type EventRecord struct {
	RecordId  uuid.UUID `json:"record_id"`  // Unique identifier for the log record.
	EventId   string    `json:"event_id"`   // Identifier assigned by the calendar backend.
	Title     string    `json:"title"`      // Title of the event.
	StartsAt  string    `json:"starts_at"`  // Start of the event as submitted.
	EndsAt    string    `json:"ends_at"`    // End of the event as submitted.
	Location  string    `json:"location"`   // Location of the event, may be empty.
	CreatedAt time.Time `json:"created_at"` // Timestamp when the record was written.
}
