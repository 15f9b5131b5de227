package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInt(t *testing.T) {
	assert.Equal(t, 30, ParseInt("", 30))
	assert.Equal(t, 30, ParseInt("abc", 30))
	assert.Equal(t, 30, ParseInt("0", 30))
	assert.Equal(t, 30, ParseInt("-5", 30))
	assert.Equal(t, 7, ParseInt("7", 30))
}

func TestParseInt64Ptr(t *testing.T) {
	assert.Nil(t, ParseInt64Ptr(""))
	assert.Nil(t, ParseInt64Ptr("undefined"))
	assert.Nil(t, ParseInt64Ptr("abc"))

	got := ParseInt64Ptr("42")
	require.NotNil(t, got)
	assert.Equal(t, int64(42), *got)
}

func TestParseTimePtr(t *testing.T) {
	assert.Nil(t, ParseTimePtr(""))
	assert.Nil(t, ParseTimePtr("yesterday"))

	rfc := ParseTimePtr("2026-08-29T10:30:00Z")
	require.NotNil(t, rfc)
	assert.Equal(t, time.Date(2026, 8, 29, 10, 30, 0, 0, time.UTC), *rfc)

	plain := ParseTimePtr("2026-08-29")
	require.NotNil(t, plain)
	assert.Equal(t, time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC), *plain)
}

func TestParseBoolPtr(t *testing.T) {
	assert.Nil(t, ParseBoolPtr(""))
	assert.Nil(t, ParseBoolPtr("maybe"))

	got := ParseBoolPtr("true")
	require.NotNil(t, got)
	assert.True(t, *got)
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 33.33, Round2(33.333333))
	assert.Equal(t, 66.67, Round2(66.666666))
	assert.Equal(t, 0.0, Round2(0))
	assert.Equal(t, 100.0, Round2(99.999))
}

func TestMonthWindow(t *testing.T) {
	start, end := MonthWindow(2026, 2)
	assert.Equal(t, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2026, 2, 28, 23, 59, 59, 0, time.UTC), end)

	start, end = MonthWindow(2024, 2)
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, 2, 29, 23, 59, 59, 0, time.UTC), end)

	start, end = MonthWindow(2026, 12)
	assert.Equal(t, time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2026, 12, 31, 23, 59, 59, 0, time.UTC), end)
}
