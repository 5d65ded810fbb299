package datetimepicker

import (
	"strconv"
	"strings"
)

// Correct returns v moved to the nearest value allowed by cfg. It never
// fails: a zero calendar value degrades to the min bound. Bounds are taken at
// minute precision.
func Correct(cfg Config, v Value) Value {
	if cfg.Type == TypeTime {
		return Clock(
			clampInt(v.Hour, cfg.MinHour, cfg.MaxHour),
			clampInt(v.Minute, cfg.MinMinute, cfg.MaxMinute),
		)
	}

	loc := cfg.location()
	if v.IsZero() {
		v = cfg.minValue()
	}
	t := v.Time(loc)
	if minT := cfg.minValue().Time(loc); t.Before(minT) {
		t = minT
	}
	if maxT := cfg.maxValue().Time(loc); t.After(maxT) {
		t = maxT
	}
	return ValueOf(t)
}

// CorrectString is Correct for textual input. For TypeTime the input is
// split on ':' and each part clamped separately, so "25:99" is accepted;
// an empty string means the start of the first allowed hour. For the other
// types input which does not parse degrades to the min bound.
func CorrectString(cfg Config, s string) Value {
	if cfg.Type != TypeTime {
		v, err := ParseValue(cfg.Type, s)
		if err != nil {
			v = Value{}
		}
		return Correct(cfg, v)
	}

	if s == "" {
		s = strconv.Itoa(cfg.MinHour) + ":00"
	}
	parts := strings.Split(s, ":")
	minute := ""
	if len(parts) > 1 {
		minute = parts[1]
	}
	hh, _ := trueValue(Clamp(parts[0], cfg.MinHour, cfg.MaxHour))
	mm, _ := trueValue(Clamp(minute, cfg.MinMinute, cfg.MaxMinute))
	return Clock(hh, mm)
}
