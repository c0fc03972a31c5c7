// Package timeline holds the pure ordering logic for intake timelines:
// parsing free-text approximate dates into comparable instants, projecting
// complaints and company responses into event-shaped entries, and sorting or
// manually arranging the merged sequence.
package timeline

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var yearPattern = regexp.MustCompile(`\b(19|20)\d{2}\b`)

// monthNames in calendar order; three-letter prefixes double as abbreviations.
var monthNames = []string{
	"january", "february", "march", "april", "may", "june",
	"july", "august", "september", "october", "november", "december",
}

// IsExactDate reports whether s is an exact calendar date (YYYY-MM-DD).
// Exact dates are parsed as civil dates, never through a timezone-sensitive
// constructor, so "2024-03-15" means the same day everywhere.
func IsExactDate(s string) bool {
	s = strings.TrimSpace(s)
	if !strings.Contains(s, "-") {
		return false
	}
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

// ParseApproximateDate converts a user-entered date string into a sortable
// instant. It is total: any input, including the empty string, yields a
// deterministic result so ordering stays defined for arbitrary free text.
//
// Exact YYYY-MM-DD strings parse to that day. Otherwise keyword heuristics
// apply, first match wins: season words, then a named month combined with an
// early/mid/late modifier, then holidays, then a bare modifier, and finally a
// mid-year default. The year is the first 19xx/20xx token, or the current
// year if none is present. The parsed instant is only ever used for ordering;
// display always shows the original string.
func ParseApproximateDate(s string) time.Time {
	trimmed := strings.TrimSpace(s)
	if strings.Contains(trimmed, "-") {
		if t, err := time.Parse("2006-01-02", trimmed); err == nil {
			return t
		}
	}

	lower := strings.ToLower(trimmed)

	year := time.Now().Year()
	if m := yearPattern.FindString(trimmed); m != "" {
		year, _ = strconv.Atoi(m)
	}

	// Seasons anchor to a fixed mid-season day.
	switch {
	case strings.Contains(lower, "spring"):
		return civil(year, time.March, 15)
	case strings.Contains(lower, "summer"):
		return civil(year, time.June, 15)
	case strings.Contains(lower, "fall"), strings.Contains(lower, "autumn"):
		return civil(year, time.September, 15)
	case strings.Contains(lower, "winter"):
		return civil(year, time.December, 15)
	}

	for i, month := range monthNames {
		if !strings.Contains(lower, month) && !strings.Contains(lower, month[:3]) {
			continue
		}
		day := 15
		switch {
		case strings.Contains(lower, "early"), strings.Contains(lower, "beginning"):
			day = 5
		case strings.Contains(lower, "late"), strings.Contains(lower, "end"):
			day = 25
		}
		return civil(year, time.Month(i+1), day)
	}

	switch {
	case strings.Contains(lower, "christmas"):
		return civil(year, time.December, 25)
	case strings.Contains(lower, "new year"):
		return civil(year, time.January, 1)
	case strings.Contains(lower, "thanksgiving"):
		return civil(year, time.November, 25)
	case strings.Contains(lower, "halloween"):
		return civil(year, time.October, 31)
	}

	// Bare modifiers refer to the year itself.
	switch {
	case strings.Contains(lower, "beginning"), strings.Contains(lower, "early"):
		return civil(year, time.January, 15)
	case strings.Contains(lower, "end"), strings.Contains(lower, "late"):
		return civil(year, time.December, 15)
	}

	return civil(year, time.June, 15)
}

func civil(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
