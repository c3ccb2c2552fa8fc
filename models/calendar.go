package models

import (
	"strconv"
	"time"
)

// Calendar field helpers. The stored shapes match the legacy documents:
// day of month without a leading zero, three-letter month, four-digit year.

func DayOfMonth(t time.Time) string {
	return strconv.Itoa(t.Day())
}

func MonthAbbrev(t time.Time) string {
	return t.Format("Jan")
}

func YearNumber(t time.Time) string {
	return t.Format("2006")
}
