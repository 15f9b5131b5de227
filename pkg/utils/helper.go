package utils

import (
	"math"
	"strconv"
	"time"
)

// ParseInt converts string to int with default value
func ParseInt(value string, defaultValue int) int {
	if value == "" {
		return defaultValue
	}

	result, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	if result < 1 {
		return defaultValue
	}

	return result
}

// ParseInt64Ptr converts a query parameter to *int64; empty or malformed
// values are dropped rather than rejected.
func ParseInt64Ptr(value string) *int64 {
	if value == "" || value == "undefined" {
		return nil
	}

	result, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return nil
	}

	return &result
}

// ParseIntPtr converts a query parameter to *int, dropping bad values.
func ParseIntPtr(value string) *int {
	if value == "" {
		return nil
	}

	result, err := strconv.Atoi(value)
	if err != nil {
		return nil
	}

	return &result
}

// ParseTimePtr accepts RFC 3339 or plain dates, dropping bad values.
func ParseTimePtr(value string) *time.Time {
	if value == "" {
		return nil
	}

	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, value); err == nil {
			return &t
		}
	}

	return nil
}

// ParseBoolPtr converts a query parameter to *bool, dropping bad values.
func ParseBoolPtr(value string) *bool {
	if value == "" {
		return nil
	}

	result, err := strconv.ParseBool(value)
	if err != nil {
		return nil
	}

	return &result
}

// Round2 rounds to 2 decimal places
func Round2(value float64) float64 {
	return math.Round(value*100) / 100
}

// MonthWindow returns the inclusive bounds of a calendar month in UTC,
// ending at the last second of its final day.
func MonthWindow(year, month int) (time.Time, time.Time) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0).Add(-time.Second)
	return start, end
}
