package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"calendar-assistant/internal/managers"
	"calendar-assistant/internal/schemas"
	"calendar-assistant/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

var errTransactionFailed = errors.New("transaction failed")
var errHistoryNotConfigured = errors.New("event log not configured")

type AssistantHdl interface {
	Extract(c *gin.Context)
	CheckConflicts(c *gin.Context)
	AddEvent(c *gin.Context)
	GetHistory(c *gin.Context)
}

type AssistantHandler struct {
	ExtractionManager managers.ExtractionMgr
	CalendarManager   managers.CalendarMgr
	MailManager       managers.MailMgr
	// DatabaseManager is nil when no event log is configured.
	DatabaseManager managers.DatabaseMgr
	Validator       *utils.Validator
}

func NewAssistantHandler(extractionManager *managers.ExtractionMgr, calendarManager *managers.CalendarMgr,
	mailManager *managers.MailMgr, databaseManager managers.DatabaseMgr) AssistantHdl {
	return &AssistantHandler{
		ExtractionManager: *extractionManager,
		CalendarManager:   *calendarManager,
		MailManager:       *mailManager,
		DatabaseManager:   databaseManager,
		Validator:         utils.GetValidator(),
	}
}

// Extract runs the language model over the user's text and returns the event
// fields it found together with a spoken summary for the voice frontend.
func (handler *AssistantHandler) Extract(ctx *gin.Context) {
	req, ok := ctx.Value(utils.SanitizedPayloadKey.String()).(*schemas.ExtractRequest)
	if !ok || req.Text == "" {
		utils.WriteAndLogSpokenError(ctx, "No text provided", "I didn't hear anything.", http.StatusBadRequest)
		return
	}

	details, err := handler.ExtractionManager.ExtractEventDetails(ctx, req.Text)
	if err != nil {
		utils.WriteAndLogSpokenError(ctx, "extraction_failed",
			"I couldn't process that right now. Please try again.", http.StatusInternalServerError)
		return
	}

	var parts []string
	if details.Title != "" {
		parts = append(parts, "Title: "+details.Title)
	}
	if details.Start != "" {
		parts = append(parts, "Start: "+utils.HumanReadable(details.Start))
	}
	if details.End != "" {
		parts = append(parts, "End: "+utils.HumanReadable(details.End))
	}
	if details.Location != "" {
		parts = append(parts, "Location: "+details.Location)
	}

	var spoken string
	if len(parts) > 0 {
		spoken = "I extracted the following — " + strings.Join(parts, "; ") + ". Is that correct?"
	} else {
		spoken = "I couldn't find clear event details in that. What is the title, start, end, or location?"
	}

	extractionDto := &schemas.ExtractionDTO{
		Title:          details.Title,
		Start:          details.Start,
		End:            details.End,
		Location:       details.Location,
		SpokenResponse: spoken,
	}
	utils.WriteAndLogResponse(ctx, extractionDto, http.StatusOK)
}

// CheckConflicts lists the calendar events overlapping the requested window
// and phrases them for the voice frontend.
func (handler *AssistantHandler) CheckConflicts(ctx *gin.Context) {
	req, ok := ctx.Value(utils.SanitizedPayloadKey.String()).(*schemas.CheckConflictsRequest)
	if !ok || req.Start == "" || req.End == "" {
		utils.WriteAndLogSpokenError(ctx, "start and end required",
			"I need both start and end times to check for conflicts.", http.StatusBadRequest)
		return
	}

	conflicts, err := handler.CalendarManager.CheckConflicts(ctx, req.Start, req.End)
	if err != nil {
		utils.WriteAndLogError(ctx, schemas.CalendarError, http.StatusInternalServerError, err)
		return
	}

	var spoken string
	if len(conflicts) == 0 {
		spoken = "No conflicts found for " + utils.HumanReadable(req.Start) + "."
	} else {
		var items []string
		for _, conflict := range conflicts {
			items = append(items, conflict.Title+" on "+utils.FormatRange(conflict.Start, conflict.End))
		}
		spoken = "You already have the following event(s): " + strings.Join(items, "; ") +
			". Would you like to reschedule the new event?"
	}

	conflictsDto := &schemas.ConflictsDTO{
		Conflicts:      conflicts,
		SpokenResponse: spoken,
	}
	utils.WriteAndLogResponse(ctx, conflictsDto, http.StatusOK)
}

// AddEvent inserts the event into the calendar, records it in the event log
// when one is configured and notifies the attendee when an address was given.
func (handler *AssistantHandler) AddEvent(ctx *gin.Context) {
	req, ok := ctx.Value(utils.SanitizedPayloadKey.String()).(*schemas.AddEventRequest)
	if !ok || req.Title == "" || req.Start == "" || req.End == "" {
		utils.WriteAndLogSpokenError(ctx, "title, start, end required",
			"I need title, start, and end to add the event.", http.StatusBadRequest)
		return
	}

	details := schemas.EventDetails{
		Title:    req.Title,
		Start:    req.Start,
		End:      req.End,
		Location: req.Location,
	}

	eventId, err := handler.CalendarManager.InsertEvent(ctx, details)
	if err != nil {
		utils.LogMessageWithFieldsAndError(ctx, "error", "Error adding event", err)
		utils.WriteAndLogSpokenError(ctx, "failed_to_add",
			"I couldn't add the event due to a server error.", http.StatusInternalServerError)
		return
	}

	if handler.DatabaseManager != nil {
		if err = handler.recordEvent(ctx, eventId, details); err != nil {
			return
		}
	}

	when := utils.FormatRange(req.Start, req.End)
	if req.AttendeeEmail != "" {
		if !handler.Validator.VerifyEmail(req.AttendeeEmail) {
			log.Warn("Attendee address is unreachable, skipping confirmation mail: ", req.AttendeeEmail)
		} else if err = handler.MailManager.SendEventConfirmationMail(req.AttendeeEmail, req.Title, when, req.Location); err != nil {
			// The event exists either way, the mail is best effort.
			log.Warn("Error sending confirmation mail: ", err)
		}
	}

	eventCreatedDto := &schemas.EventCreatedDTO{
		Status:         "added",
		EventId:        eventId,
		SpokenResponse: "Added " + req.Title + " on " + when + ".",
	}
	utils.WriteAndLogResponse(ctx, eventCreatedDto, http.StatusOK)
}

// recordEvent writes the added event to the event log. On failure the error
// response has already been written.
func (handler *AssistantHandler) recordEvent(ctx *gin.Context, eventId string, details schemas.EventDetails) error {
	tx := utils.BeginTransaction(ctx, handler.DatabaseManager.GetPool())
	if tx == nil {
		return errTransactionFailed
	}
	var err error
	defer func() { utils.RollbackTransaction(ctx, tx, err) }()

	queryString := "INSERT INTO assistant_schema.event_log (record_id, event_id, title, starts_at, ends_at, location, created_at) VALUES ($1, $2, $3, $4, $5, $6, $7)"
	if _, err = tx.Exec(ctx, queryString, uuid.New(), eventId, details.Title, details.Start, details.End,
		details.Location, time.Now()); err != nil {
		utils.WriteAndLogError(ctx, schemas.DatabaseError, http.StatusInternalServerError, err)
		return err
	}

	return utils.CommitTransaction(ctx, tx)
}

// GetHistory returns a page of the event log.
func (handler *AssistantHandler) GetHistory(ctx *gin.Context) {
	if handler.DatabaseManager == nil {
		utils.WriteAndLogError(ctx, schemas.HistoryUnavailable, http.StatusServiceUnavailable,
			errHistoryNotConfigured)
		return
	}

	offset, limit := utils.ParsePaginationParams(ctx)
	pool := handler.DatabaseManager.GetPool()

	var records int
	queryString := "SELECT COUNT(*) FROM assistant_schema.event_log"
	if err := pool.QueryRow(ctx, queryString).Scan(&records); err != nil {
		utils.WriteAndLogError(ctx, schemas.DatabaseError, http.StatusInternalServerError, err)
		return
	}

	queryString = "SELECT record_id, event_id, title, starts_at, ends_at, location, created_at FROM assistant_schema.event_log ORDER BY created_at DESC OFFSET $1 LIMIT $2"
	rows, err := pool.Query(ctx, queryString, offset, limit)
	if err != nil {
		utils.WriteAndLogError(ctx, schemas.DatabaseError, http.StatusInternalServerError, err)
		return
	}
	defer rows.Close()

	results := make([]schemas.EventLogDTO, 0, limit)
	for rows.Next() {
		var record schemas.EventRecord
		if err = rows.Scan(&record.RecordId, &record.EventId, &record.Title, &record.StartsAt,
			&record.EndsAt, &record.Location, &record.CreatedAt); err != nil {
			utils.WriteAndLogError(ctx, schemas.DatabaseError, http.StatusInternalServerError, err)
			return
		}

		results = append(results, schemas.EventLogDTO{
			RecordId:  record.RecordId,
			EventId:   record.EventId,
			Title:     record.Title,
			Start:     record.StartsAt,
			End:       record.EndsAt,
			Location:  record.Location,
			CreatedAt: record.CreatedAt.Format(time.RFC3339),
		})
	}

	paginatedResponse := &schemas.PaginatedResponse{
		Records: results,
		Pagination: schemas.Pagination{
			Offset:  offset,
			Limit:   limit,
			Records: records,
		},
	}
	utils.WriteAndLogResponse(ctx, paginatedResponse, http.StatusOK)
}
