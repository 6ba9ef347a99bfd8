package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	apperrors "turnero/internal/errors"
)

const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02 15:04"
)

// TimeToMinutes converts an HH:MM wall-clock string to its minute offset
// from midnight.
func TimeToMinutes(t string) (int, error) {
	parts := strings.Split(t, ":")
	if len(parts) != 2 {
		return 0, apperrors.ErrInvalidRequest(fmt.Sprintf("invalid time format: %q, expected HH:MM", t))
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, apperrors.ErrInvalidRequest(fmt.Sprintf("invalid time format: %q, expected HH:MM", t))
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, apperrors.ErrInvalidRequest(fmt.Sprintf("invalid time format: %q, expected HH:MM", t))
	}
	if hours < 0 || hours > 23 || minutes < 0 || minutes > 59 {
		return 0, apperrors.ErrInvalidRequest(fmt.Sprintf("time out of range: %q", t))
	}
	return hours*60 + minutes, nil
}

// MinutesToTime renders a minute offset as a zero-padded HH:MM string.
// Values must stay within a single day; wrapping at 1440 is not handled.
func MinutesToTime(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// ParseDate validates a YYYY-MM-DD calendar date string.
func ParseDate(date string) error {
	if _, err := time.ParseInLocation(dateLayout, date, time.Local); err != nil {
		return apperrors.ErrInvalidRequest(fmt.Sprintf("invalid date format: %q, expected YYYY-MM-DD", date))
	}
	return nil
}

// SlotTime combines a calendar date and an HH:MM time into a local time.Time.
func SlotTime(date, hhmm string) (time.Time, error) {
	t, err := time.ParseInLocation(dateTimeLayout, date+" "+hhmm, time.Local)
	if err != nil {
		return time.Time{}, apperrors.ErrInvalidRequest(fmt.Sprintf("invalid date or time: %q %q", date, hhmm))
	}
	return t, nil
}

// IsFuture reports whether date+hhmm is strictly after now. Malformed
// inputs count as not in the future.
func IsFuture(date, hhmm string, now time.Time) bool {
	t, err := SlotTime(date, hhmm)
	if err != nil {
		return false
	}
	return t.After(now)
}

// HoursUntil returns the (possibly negative) number of hours between now
// and date+hhmm.
func HoursUntil(date, hhmm string, now time.Time) (float64, error) {
	t, err := SlotTime(date, hhmm)
	if err != nil {
		return 0, err
	}
	return t.Sub(now).Hours(), nil
}
