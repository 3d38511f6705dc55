package model

import "time"

const (
	// InputDateLayout is how clients send calendar dates.
	InputDateLayout = "2006-01-02"

	displayDateLayout     = "02.01.2006"
	displayDateTimeLayout = "02.01.2006 15:04"
)

// FormatDate renders t as DD.MM.YYYY, or "" when t is nil.
func FormatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(displayDateLayout)
}

// FormatDateTime renders t as DD.MM.YYYY HH:MM, or "" when t is nil.
func FormatDateTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(displayDateTimeLayout)
}
