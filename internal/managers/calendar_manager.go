package managers

import (
	"context"
	"fmt"
	"os"
	"time"

	"calendar-assistant/internal/schemas"
	"calendar-assistant/internal/utils"

	log "github.com/sirupsen/logrus"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

const primaryCalendarId = "primary"

// CalendarMgr is an interface that outlines the contract for calendar
// management. It includes methods to query conflicting events and to insert
// new events into the primary calendar.
type CalendarMgr interface {
	CheckConflicts(ctx context.Context, start, end string) ([]schemas.ConflictDTO, error)
	InsertEvent(ctx context.Context, details schemas.EventDetails) (string, error)
}

// CalendarManager is a concrete implementation of the CalendarMgr interface
// backed by the Google Calendar API with service account credentials.
type CalendarManager struct {
	service *calendar.Service
}

// NewCalendarManager creates a CalendarManager from the service account JSON
// held in credentialsJSON.
func NewCalendarManager(ctx context.Context, credentialsJSON string) (CalendarMgr, error) {
	log.Info("Initializing calendar manager")

	service, err := calendar.NewService(ctx,
		option.WithCredentialsJSON([]byte(credentialsJSON)),
		option.WithScopes(calendar.CalendarScope))
	if err != nil {
		return nil, fmt.Errorf("error creating calendar service: %w", err)
	}

	return &CalendarManager{service: service}, nil
}

// CheckConflicts lists the events on the primary calendar that overlap the
// [start, end] window. Timestamps without a zone are interpreted in the local
// timezone, and an end not after the start is clamped to start plus one hour.
// Unparsable input yields an empty conflict list.
func (cm *CalendarManager) CheckConflicts(ctx context.Context, start, end string) ([]schemas.ConflictDTO, error) {
	startTime, endTime, ok := QueryWindow(start, end)
	if !ok {
		return []schemas.ConflictDTO{}, nil
	}

	events, err := cm.service.Events.List(primaryCalendarId).
		TimeMin(startTime.Format(time.RFC3339)).
		TimeMax(endTime.Format(time.RFC3339)).
		SingleEvents(true).
		OrderBy("startTime").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("error listing events: %w", err)
	}

	conflicts := make([]schemas.ConflictDTO, 0, len(events.Items))
	for _, item := range events.Items {
		title := item.Summary
		if title == "" {
			title = "Untitled Event"
		}

		conflicts = append(conflicts, schemas.ConflictDTO{
			Title: title,
			Start: eventTimestamp(item.Start),
			End:   eventTimestamp(item.End),
		})
	}

	return conflicts, nil
}

// InsertEvent inserts the event into the primary calendar and returns the
// identifier the calendar backend assigned.
func (cm *CalendarManager) InsertEvent(ctx context.Context, details schemas.EventDetails) (string, error) {
	timeZone := localTimeZoneName()
	event := &calendar.Event{
		Summary:  details.Title,
		Location: details.Location,
		Start:    &calendar.EventDateTime{DateTime: details.Start, TimeZone: timeZone},
		End:      &calendar.EventDateTime{DateTime: details.End, TimeZone: timeZone},
	}

	created, err := cm.service.Events.Insert(primaryCalendarId, event).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("error inserting event: %w", err)
	}

	return created.Id, nil
}

// QueryWindow parses the raw boundaries of a conflict query. Timestamps
// without a zone are interpreted in the local timezone. An end not after the
// start is clamped to start plus one hour. ok is false when either boundary
// is unparsable.
func QueryWindow(start, end string) (time.Time, time.Time, bool) {
	startTime, okStart := utils.SafeParse(start)
	endTime, okEnd := utils.SafeParse(end)
	if !okStart || !okEnd {
		return time.Time{}, time.Time{}, false
	}

	if !endTime.After(startTime) {
		endTime = startTime.Add(time.Hour)
	}

	return startTime, endTime, true
}

// eventTimestamp returns the dateTime of an event boundary, falling back to
// the all-day date.
func eventTimestamp(boundary *calendar.EventDateTime) string {
	if boundary == nil {
		return ""
	}
	if boundary.DateTime != "" {
		return boundary.DateTime
	}
	return boundary.Date
}

// localTimeZoneName resolves an IANA zone name the calendar backend accepts.
func localTimeZoneName() string {
	if tz := os.Getenv("TZ"); tz != "" {
		return tz
	}
	if name := time.Local.String(); name != "Local" {
		return name
	}
	return "UTC"
}
