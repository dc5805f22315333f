package models

import "time"

// FormatTimeOptional formats t with layout, or returns "" for the zero time.
func FormatTimeOptional(t time.Time, layout string) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(layout)
}

// TimeToUnixMilli converts t to Unix milliseconds, mapping the zero time to 0.
func TimeToUnixMilli(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixMilli()
}
