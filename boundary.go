package datetimepicker

import "time"

// BoundaryTuple holds, for one direction, the limit of every calendar field
// given the fields above it.
type BoundaryTuple struct {
	Year   int
	Month  int
	Day    int
	Hour   int
	Minute int
}

// ResolveBoundary returns the tightest limits in direction dir for the
// columns shown around ref. A field is narrowed to the bound's own value only
// when every field above it in ref equals the bound; otherwise it spans its
// whole natural range. With a min date of 2020-01-15, January 2020 shows days
// from the 15th but February 2020 shows them all.
func ResolveBoundary(cfg Config, dir Direction, ref Value) BoundaryTuple {
	bound := cfg.minValue()
	if dir == DirectionMax {
		bound = cfg.maxValue()
	}

	b := BoundaryTuple{Year: bound.Year, Month: 1, Day: 1, Hour: 0, Minute: 0}
	if dir == DirectionMax {
		b.Month = 12
		b.Day = LastDayOfMonth(ref.Year, ref.Month)
		b.Hour = 23
		b.Minute = 59
	}

	if ref.Year == bound.Year {
		b.Month = int(bound.Month)
		if int(ref.Month) == b.Month {
			b.Day = bound.Day
			if ref.Day == b.Day {
				b.Hour = bound.Hour
				if ref.Hour == b.Hour {
					b.Minute = bound.Minute
				}
			}
		}
	}
	return b
}

func (b BoundaryTuple) get(f Field) int {
	return Value{
		Year:   b.Year,
		Month:  time.Month(b.Month),
		Day:    b.Day,
		Hour:   b.Hour,
		Minute: b.Minute,
	}.get(f)
}
