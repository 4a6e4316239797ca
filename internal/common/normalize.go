package common

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Spreadsheet date serials count days from this epoch (day 0 = 1899-12-30).
var excelEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"02/01/2006",
	"2006/01/02",
}

// NormalizeDate converts a raw cell value into a timestamp. Date serials
// convert via epoch + serial*86400000ms; strings are tried against a small
// layout list. Empty or unparseable input yields nil, never an error.
func NormalizeDate(raw any) *time.Time {
	switch v := raw.(type) {
	case nil:
		return nil
	case time.Time:
		return &v
	case *time.Time:
		return v
	case float64:
		return serialToDate(v)
	case int:
		return serialToDate(float64(v))
	case int64:
		return serialToDate(float64(v))
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return nil
		}
		if serial, err := strconv.ParseFloat(s, 64); err == nil {
			return serialToDate(serial)
		}
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return &t
			}
		}
		return nil
	default:
		return nil
	}
}

func serialToDate(serial float64) *time.Time {
	if math.IsNaN(serial) || math.IsInf(serial, 0) {
		return nil
	}
	t := excelEpoch.Add(time.Duration(serial*86400000) * time.Millisecond)
	return &t
}

// NormalizeText stringifies and trims a raw cell value. Empty becomes nil.
// Safe to call on already-normalized values.
func NormalizeText(raw any) *string {
	var s string
	switch v := raw.(type) {
	case nil:
		return nil
	case string:
		s = v
	case *string:
		if v == nil {
			return nil
		}
		s = *v
	case float64:
		s = strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		s = strconv.Itoa(v)
	case int64:
		s = strconv.FormatInt(v, 10)
	case bool:
		s = strconv.FormatBool(v)
	default:
		s = fmt.Sprintf("%v", v)
	}

	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// NormalizeQuantity parses a raw cell value as a number. Non-finite or
// negative results fall back to the caller-supplied default.
func NormalizeQuantity(raw any, def float64) float64 {
	var n float64
	switch v := raw.(type) {
	case nil:
		return def
	case float64:
		n = v
	case int:
		n = float64(v)
	case int64:
		n = float64(v)
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return def
		}
		n = parsed
	default:
		return def
	}

	if math.IsNaN(n) || math.IsInf(n, 0) || n < 0 {
		return def
	}
	return n
}

// NormalizeHeader canonicalizes a spreadsheet header or sheet name for
// lookups: trimmed, uppercased, inner whitespace collapsed to single spaces.
func NormalizeHeader(raw string) string {
	return strings.Join(strings.Fields(strings.ToUpper(raw)), " ")
}
