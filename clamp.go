package datetimepicker

import (
	"strconv"
	"time"
	"unicode"
)

// PadZero formats n with at least two digits.
func PadZero(n int) string {
	if n >= 0 && n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}

// trueValue reads the leading integer of s, skipping leading spaces and
// accepting a sign. ok is false if s does not start with digits.
func trueValue(s string) (n int, ok bool) {
	i := 0
	for i < len(s) && unicode.IsSpace(rune(s[i])) {
		i++
	}
	neg := false
	if i < len(s) && (s[i] == '-' || s[i] == '+') {
		neg = s[i] == '-'
		i++
	}
	start := i
	for i < len(s) && unicode.IsDigit(rune(s[i])) {
		// Saturate rather than overflow; the caller clamps anyway.
		if n < 1e9 {
			n = n*10 + int(s[i]-'0')
		}
		i++
	}
	if i == start {
		return 0, false
	}
	if neg {
		n = -n
	}
	return n, true
}

func clampInt(n, low, high int) int {
	if n > high {
		n = high
	}
	if n < low {
		n = low
	}
	return n
}

// Clamp reads the leading integer of raw and returns it clamped into
// [low, high], zero padded to two digits. Input without a leading integer
// resolves to low.
func Clamp(raw string, low, high int) string {
	n, ok := trueValue(raw)
	if !ok {
		n = low
	}
	return PadZero(clampInt(n, low, high))
}

// LastDayOfMonth returns the number of days in the given month.
func LastDayOfMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
