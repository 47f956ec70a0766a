package routing

import (
	"crypto/ed25519"
	"crypto/rand"
	"errors"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"
	"time"

	"calendar-assistant/internal/managers"
	"calendar-assistant/internal/managers/mocks"
	"calendar-assistant/internal/schemas"
	"calendar-assistant/internal/utils"

	"github.com/gavv/httpexpect/v2"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v3"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

var errCalendarDown = errors.New("calendar backend down")

type routerMocks struct {
	extractionMgr *mocks.MockExtractionManager
	calendarMgr   *mocks.MockCalendarManager
	mailMgr       *mocks.MockMailManager
	databaseMgr   *mocks.MockDatabaseManager
	poolMock      pgxmock.PgxPoolIface
	jwtMgr        managers.JWTMgr
}

func setupMocks(t *testing.T) routerMocks {
	gin.SetMode(gin.TestMode)
	t.Setenv("ENVIRONMENT", "test")

	poolMock, err := pgxmock.NewPool()
	if err != nil {
		log.Errorf("Error creating mock database pool: %v", err)
	}

	databaseMgrMock := &mocks.MockDatabaseManager{}
	databaseMgrMock.On("GetPool").Return(poolMock)

	publicKey, privateKey, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		log.Errorf("Error generating key pair: %v", err)
	}
	jwtMgr := managers.NewJWTManager(privateKey, publicKey)

	// Attendee addresses in tests never reach a live MX lookup.
	utils.GetValidator().VerifyEmail = func(email string) bool { return true }
	t.Cleanup(func() { utils.GetValidator().VerifyEmail = func(email string) bool { return true } })

	return routerMocks{
		extractionMgr: &mocks.MockExtractionManager{},
		calendarMgr:   &mocks.MockCalendarManager{},
		mailMgr:       &mocks.MockMailManager{},
		databaseMgr:   databaseMgrMock,
		poolMock:      poolMock,
		jwtMgr:        jwtMgr,
	}
}

func newTestServer(t *testing.T, m routerMocks, withDatabase bool) *httpexpect.Expect {
	var databaseMgr managers.DatabaseMgr
	if withDatabase {
		databaseMgr = m.databaseMgr
	}

	router := InitRouter(m.extractionMgr, m.calendarMgr, m.mailMgr, databaseMgr, m.jwtMgr)
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return httpexpect.Default(t, server.URL)
}

func TestStatusRoute(t *testing.T) {
	m := setupMocks(t)
	e := newTestServer(t, m, false)

	obj := e.GET("/").Expect().Status(http.StatusOK).JSON().Object()
	obj.HasValue("status", "ok")
	obj.HasValue("apiName", "Calendar Assistant")
}

func TestHealthRoute(t *testing.T) {
	m := setupMocks(t)
	e := newTestServer(t, m, false)

	e.GET("/health").Expect().Status(http.StatusOK)
}

func TestExtract(t *testing.T) {
	testCases := []struct {
		name    string
		text    string
		details schemas.EventDetails
		status  int
	}{
		{
			"ValidExtraction",
			"dinner with Sam on thursday at 6pm",
			schemas.EventDetails{
				Title: "Dinner with Sam",
				Start: "2025-11-13T18:00:00",
				End:   "2025-11-13T19:30:00",
			},
			http.StatusOK,
		},
		{
			"NothingFound",
			"hello there",
			schemas.EventDetails{},
			http.StatusOK,
		},
		{
			"EmptyText",
			"",
			schemas.EventDetails{},
			http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := setupMocks(t)
			m.extractionMgr.On("ExtractEventDetails", mock.Anything, tc.text).Return(tc.details, nil)
			e := newTestServer(t, m, false)

			obj := e.POST("/extract").WithJSON(map[string]string{"text": tc.text}).
				Expect().Status(tc.status).JSON().Object()

			switch tc.name {
			case "ValidExtraction":
				obj.HasValue("title", "Dinner with Sam")
				obj.HasValue("start", "2025-11-13T18:00:00")
				obj.Value("spoken_response").String().Contains("Thursday, November 13 at 6:00 PM")
				obj.Value("spoken_response").String().Contains("Is that correct?")
			case "NothingFound":
				obj.HasValue("title", "")
				obj.Value("spoken_response").String().
					Contains("I couldn't find clear event details in that")
			case "EmptyText":
				obj.HasValue("error", "No text provided")
				obj.HasValue("spoken_response", "I didn't hear anything.")
				m.extractionMgr.AssertNotCalled(t, "ExtractEventDetails", mock.Anything, mock.Anything)
			}
		})
	}
}

func TestCheckConflicts(t *testing.T) {
	window := map[string]string{
		"start": "2025-11-13T18:00:00",
		"end":   "2025-11-13T19:30:00",
	}

	testCases := []struct {
		name      string
		body      map[string]string
		conflicts []schemas.ConflictDTO
		status    int
	}{
		{
			"NoConflicts",
			window,
			[]schemas.ConflictDTO{},
			http.StatusOK,
		},
		{
			"WithConflicts",
			window,
			[]schemas.ConflictDTO{
				{Title: "Standup", Start: "2025-11-13T18:00:00", End: "2025-11-13T18:30:00"},
			},
			http.StatusOK,
		},
		{
			"MissingTimes",
			map[string]string{"start": "", "end": ""},
			nil,
			http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := setupMocks(t)
			m.calendarMgr.On("CheckConflicts", mock.Anything, tc.body["start"], tc.body["end"]).
				Return(tc.conflicts, nil)
			e := newTestServer(t, m, false)

			obj := e.POST("/check_conflicts").WithJSON(tc.body).
				Expect().Status(tc.status).JSON().Object()

			switch tc.name {
			case "NoConflicts":
				obj.Value("conflicts").Array().IsEmpty()
				obj.HasValue("spoken_response", "No conflicts found for Thursday, November 13 at 6:00 PM.")
			case "WithConflicts":
				obj.Value("conflicts").Array().Length().IsEqual(1)
				spoken := obj.Value("spoken_response").String()
				spoken.Contains("Standup on 11/13/2025 6:00 PM - 6:30 PM")
				spoken.Contains("Would you like to reschedule the new event?")
			case "MissingTimes":
				obj.HasValue("error", "start and end required")
				obj.HasValue("spoken_response", "I need both start and end times to check for conflicts.")
			}
		})
	}
}

func TestAddEvent(t *testing.T) {
	validBody := map[string]string{
		"title": "Dinner with Sam",
		"start": "2025-11-13T18:00:00",
		"end":   "2025-11-13T19:30:00",
	}

	testCases := []struct {
		name   string
		body   map[string]string
		status int
	}{
		{"ValidEvent", validBody, http.StatusOK},
		{"MissingFields", map[string]string{"title": "Dinner with Sam"}, http.StatusBadRequest},
		{"CalendarFailure", validBody, http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := setupMocks(t)

			details := schemas.EventDetails{
				Title: tc.body["title"],
				Start: tc.body["start"],
				End:   tc.body["end"],
			}

			switch tc.name {
			case "ValidEvent":
				m.calendarMgr.On("InsertEvent", mock.Anything, details).Return("evt-123", nil)
				m.poolMock.ExpectBegin()
				m.poolMock.ExpectExec(regexp.QuoteMeta("INSERT INTO assistant_schema.event_log")).
					WithArgs(pgxmock.AnyArg(), "evt-123", "Dinner with Sam", "2025-11-13T18:00:00",
						"2025-11-13T19:30:00", "", pgxmock.AnyArg()).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
				m.poolMock.ExpectCommit()
			case "CalendarFailure":
				m.calendarMgr.On("InsertEvent", mock.Anything, details).
					Return("", errCalendarDown)
			}

			e := newTestServer(t, m, true)

			obj := e.POST("/add_event").WithJSON(tc.body).
				Expect().Status(tc.status).JSON().Object()

			switch tc.name {
			case "ValidEvent":
				obj.HasValue("status", "added")
				obj.HasValue("event_id", "evt-123")
				obj.HasValue("spoken_response", "Added Dinner with Sam on 11/13/2025 6:00 PM - 7:30 PM.")
				if err := m.poolMock.ExpectationsWereMet(); err != nil {
					t.Errorf("unmet database expectations: %v", err)
				}
			case "MissingFields":
				obj.HasValue("error", "title, start, end required")
				obj.HasValue("spoken_response", "I need title, start, and end to add the event.")
			case "CalendarFailure":
				obj.HasValue("error", "failed_to_add")
				obj.HasValue("spoken_response", "I couldn't add the event due to a server error.")
			}
		})
	}
}

func TestAddEventSendsConfirmationMail(t *testing.T) {
	m := setupMocks(t)

	body := map[string]string{
		"title":          "Dinner with Sam",
		"start":          "2025-11-13T18:00:00",
		"end":            "2025-11-13T19:30:00",
		"attendee_email": "sam@example.com",
	}

	m.calendarMgr.On("InsertEvent", mock.Anything, mock.Anything).Return("evt-456", nil)
	m.mailMgr.On("SendEventConfirmationMail", "sam@example.com", "Dinner with Sam",
		"11/13/2025 6:00 PM - 7:30 PM", "").Return(nil)

	e := newTestServer(t, m, false)

	e.POST("/add_event").WithJSON(body).Expect().Status(http.StatusOK)
	m.mailMgr.AssertExpectations(t)
}

func TestAddEventSkipsMailForUnreachableAddress(t *testing.T) {
	m := setupMocks(t)
	utils.GetValidator().VerifyEmail = func(email string) bool { return false }

	body := map[string]string{
		"title":          "Dinner with Sam",
		"start":          "2025-11-13T18:00:00",
		"end":            "2025-11-13T19:30:00",
		"attendee_email": "sam@unreachable.example.com",
	}

	m.calendarMgr.On("InsertEvent", mock.Anything, mock.Anything).Return("evt-456", nil)

	e := newTestServer(t, m, false)

	e.POST("/add_event").WithJSON(body).Expect().Status(http.StatusOK).
		JSON().Object().HasValue("status", "added")
	m.mailMgr.AssertNotCalled(t, "SendEventConfirmationMail",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestGetHistory(t *testing.T) {
	m := setupMocks(t)

	recordId := uuid.New()
	createdAt := time.Date(2025, 11, 10, 9, 0, 0, 0, time.UTC)

	m.poolMock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM assistant_schema.event_log")).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(1))
	m.poolMock.ExpectQuery(regexp.QuoteMeta("SELECT record_id, event_id, title, starts_at, ends_at, location, created_at FROM assistant_schema.event_log")).
		WithArgs(0, 10).
		WillReturnRows(pgxmock.NewRows([]string{"record_id", "event_id", "title", "starts_at", "ends_at", "location", "created_at"}).
			AddRow(recordId, "evt-123", "Dinner with Sam", "2025-11-13T18:00:00", "2025-11-13T19:30:00", "", createdAt))

	e := newTestServer(t, m, true)

	obj := e.GET("/api/history").Expect().Status(http.StatusOK).JSON().Object()
	obj.Value("pagination").Object().HasValue("records", 1)
	record := obj.Value("records").Array().Value(0).Object()
	record.HasValue("eventId", "evt-123")
	record.HasValue("title", "Dinner with Sam")

	if err := m.poolMock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet database expectations: %v", err)
	}
}

func TestGetHistoryWithoutEventLog(t *testing.T) {
	m := setupMocks(t)
	e := newTestServer(t, m, false)

	obj := e.GET("/api/history").Expect().Status(http.StatusServiceUnavailable).JSON().Object()
	obj.Value("error").Object().HasValue("code", "ERR-007")
}

func TestAuthTokenExchange(t *testing.T) {
	secret := "super.Secret123"
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("error hashing secret: %v", err)
	}

	testCases := []struct {
		name   string
		secret string
		status int
	}{
		{"ValidCredentials", secret, http.StatusOK},
		{"WrongSecret", "not.The.Secret1", http.StatusUnauthorized},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := setupMocks(t)
			t.Setenv("CLIENT_SECRET_HASH", string(hash))
			e := newTestServer(t, m, false)

			obj := e.POST("/api/auth/token").WithJSON(map[string]string{
				"clientId":     "voice-frontend",
				"clientSecret": tc.secret,
			}).Expect().Status(tc.status).JSON().Object()

			switch tc.name {
			case "ValidCredentials":
				obj.Value("token").String().NotEmpty()
			case "WrongSecret":
				obj.Value("error").Object().HasValue("code", "ERR-003")
			}
		})
	}
}

func TestAssistantRoutesRequireTokenWhenAuthEnabled(t *testing.T) {
	secret := "super.Secret123"
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("error hashing secret: %v", err)
	}

	m := setupMocks(t)
	t.Setenv("CLIENT_SECRET_HASH", string(hash))
	m.extractionMgr.On("ExtractEventDetails", mock.Anything, mock.Anything).
		Return(schemas.EventDetails{Title: "Dinner"}, nil)
	e := newTestServer(t, m, false)

	// Without a token the route is closed
	e.POST("/extract").WithJSON(map[string]string{"text": "dinner at 6"}).
		Expect().Status(http.StatusUnauthorized)

	// With a freshly exchanged token it is open
	token := e.POST("/api/auth/token").WithJSON(map[string]string{
		"clientId":     "voice-frontend",
		"clientSecret": secret,
	}).Expect().Status(http.StatusOK).JSON().Object().Value("token").String().Raw()

	e.POST("/extract").WithJSON(map[string]string{"text": "dinner at 6"}).
		WithHeader("Authorization", "Bearer "+token).
		Expect().Status(http.StatusOK)
}
