// SPDX-License-Identifier: Apache-2.0

package service

import (
	"strconv"
	"time"

	"github.com/fitlog/exercise-tracker/internal/store"
)

const (
	// dateLayout is the calendar-date form accepted on input
	// (request bodies and the from/to query parameters).
	dateLayout = "2006-01-02"

	// logDateLayout is the fixed, locale-independent textual form every
	// response renders dates in. It is intentionally not ISO-8601.
	logDateLayout = "Mon Jan 02 2006"
)

// parseUserID converts the opaque identifier from the URL into the storage
// key. An identifier that cannot possibly resolve (non-numeric, non-positive)
// is reported as [store.ErrUserNotFound]: to the caller it is simply a user
// that does not exist.
func parseUserID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, store.ErrUserNotFound
	}

	return id, nil
}

// parseDuration converts the raw duration field into whole minutes.
// Rejects anything that is not a positive integer.
func parseDuration(raw string) (int, error) {
	duration, err := strconv.Atoi(raw)
	if err != nil || duration < 1 {
		return 0, ErrInvalidDuration
	}

	return duration, nil
}

// parseDate converts a "YYYY-MM-DD" string into a date at midnight UTC.
// An empty input defaults to the server's current date.
func parseDate(raw string) (time.Time, error) {
	if raw == "" {
		return today(), nil
	}

	date, err := time.Parse(dateLayout, raw)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}

	return date, nil
}

// parseLimit converts the raw limit query parameter. An empty input means no
// limit; anything else must be a positive integer.
func parseLimit(raw string) (*int, error) {
	if raw == "" {
		return nil, nil
	}

	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 1 {
		return nil, ErrInvalidLimit
	}

	return &limit, nil
}

// today returns the current calendar date at midnight UTC.
func today() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// formatDate renders a stored date in the fixed response form,
// e.g. "Mon Jan 01 2024".
func formatDate(date time.Time) string {
	return date.Format(logDateLayout)
}

// formatID renders a storage key as the opaque identifier exposed in
// responses.
func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
