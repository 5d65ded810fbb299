package datetimepicker

import "fmt"

// FieldRange is the inclusive range of values a column offers.
type FieldRange struct {
	Field Field
	Low   int
	High  int
}

// String implements fmt.Stringer.
func (r FieldRange) String() string {
	return fmt.Sprintf("%s [%d, %d]", r.Field, r.Low, r.High)
}

// BuildRanges returns the ranges of the columns shown for v, in natural
// order. v should already be corrected.
func BuildRanges(cfg Config, v Value) []FieldRange {
	var ret []FieldRange
	if cfg.Type == TypeTime {
		ret = []FieldRange{
			{Field: FieldHour, Low: cfg.MinHour, High: cfg.MaxHour},
			{Field: FieldMinute, Low: cfg.MinMinute, High: cfg.MaxMinute},
		}
	} else {
		lo := ResolveBoundary(cfg, DirectionMin, v)
		hi := ResolveBoundary(cfg, DirectionMax, v)
		for _, f := range cfg.Type.fields() {
			ret = append(ret, FieldRange{Field: f, Low: lo.get(f), High: hi.get(f)})
		}
	}
	return ret
}
