package utils

import (
	"testing"

	"calendar-assistant/internal/schemas"

	"github.com/stretchr/testify/assert"
)

func TestAddEventRequestValidation(t *testing.T) {
	v := GetValidator()

	testCases := []struct {
		name    string
		request schemas.AddEventRequest
		valid   bool
	}{
		{
			"ValidRequest",
			schemas.AddEventRequest{
				Title: "Dinner",
				Start: "2025-11-13T18:00:00",
				End:   "2025-11-13T19:30:00",
			},
			true,
		},
		{
			"ValidWithAttendee",
			schemas.AddEventRequest{
				Title:         "Dinner",
				Start:         "2025-11-13T18:00:00",
				End:           "2025-11-13T19:30:00",
				AttendeeEmail: "sam@example.com",
			},
			true,
		},
		{
			"InvalidStart",
			schemas.AddEventRequest{
				Title: "Dinner",
				Start: "thursday evening",
				End:   "2025-11-13T19:30:00",
			},
			false,
		},
		{
			"InvalidAttendeeEmail",
			schemas.AddEventRequest{
				Title:         "Dinner",
				Start:         "2025-11-13T18:00:00",
				End:           "2025-11-13T19:30:00",
				AttendeeEmail: "sam@example@.com",
			},
			false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := v.Validate.Struct(tc.request)
			if tc.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestTokenRequestValidation(t *testing.T) {
	v := GetValidator()

	testCases := []struct {
		name    string
		request schemas.TokenRequest
		valid   bool
	}{
		{"ValidRequest", schemas.TokenRequest{ClientId: "voice-frontend", ClientSecret: "super.Secret123"}, true},
		{"MissingSecret", schemas.TokenRequest{ClientId: "voice-frontend"}, false},
		{"ShortSecret", schemas.TokenRequest{ClientId: "voice-frontend", ClientSecret: "short"}, false},
		{"InvalidClientId", schemas.TokenRequest{ClientId: "voice frontend!", ClientSecret: "super.Secret123"}, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := v.Validate.Struct(tc.request)
			if tc.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
