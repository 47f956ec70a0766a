// package utils provides utility functions to support various operations within the application.
package utils

import "time"

// isoLayouts are the datetime shapes accepted from the model and the frontend.
var isoLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// SafeParse parses an ISO-like datetime string. Strings without a zone are
// interpreted in the local timezone. The second return value reports whether
// parsing succeeded.
func SafeParse(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}

	for _, layout := range isoLayouts {
		if t, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

// ISOFormat renders a timestamp in the zone-less ISO shape the extraction
// model is asked to produce.
func ISOFormat(t time.Time) string {
	return t.Format("2006-01-02T15:04:05")
}

// HumanReadable converts an ISO-like datetime to a human-friendly string,
// e.g. "Thursday, November 13 at 6:00 PM". Unparsable input is echoed back
// so the frontend can still read something.
func HumanReadable(value string) string {
	t, ok := SafeParse(value)
	if !ok {
		return value
	}

	return t.Format("Monday, January 2 at 3:04 PM")
}

// FormatRange renders a start/end pair as "11/13/2025 6:00 PM - 7:30 PM".
// When either side is unparsable it degrades to "<start> to <end>".
func FormatRange(startValue, endValue string) string {
	start, okStart := SafeParse(startValue)
	end, okEnd := SafeParse(endValue)
	if !okStart || !okEnd {
		return startValue + " to " + endValue
	}

	return start.Format("01/02/2006") + " " + start.Format("3:04 PM") + " - " + end.Format("3:04 PM")
}
