package common

import (
	"fmt"
	"time"
)

func GetResponseTime(init time.Time) string {
	timeDiff := time.Since(init).Milliseconds()
	return fmt.Sprintf("%dms", timeDiff)
}

// StrPtr is a convenience for optional string fields.
func StrPtr(s string) *string {
	return &s
}

// Deref returns the value behind an optional string, or empty.
func Deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
