package datetimepicker

import (
	"bytes"
	"fmt"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/redact"
)

// Type refers to the kind of value the picker selects, which in turn
// determines the columns shown.
type Type uint8

//go:generate stringer -type=Type -trimprefix=Type -linecomment

const (
	// TypeDateTime selects year, month, day, hour and minute.
	TypeDateTime Type = iota // datetime
	// TypeDate selects year, month and day.
	TypeDate // date
	// TypeYearMonth selects year and month. The day is always 1.
	TypeYearMonth // year-month
	// TypeTime selects a time of day. Bounds come from the hour and minute
	// fields of Config rather than MinDate/MaxDate.
	TypeTime // time
)

var allTypes = []Type{TypeDateTime, TypeDate, TypeYearMonth, TypeTime}

// SafeValue implements redact.SafeValue.
func (Type) SafeValue() {}

var _ redact.SafeValue = Type(0)

// ParseType returns the Type with the given name, e.g. "year-month".
func ParseType(s string) (Type, error) {
	for _, t := range allTypes {
		if t.String() == s {
			return t, nil
		}
	}
	return 0, errors.Newf("unknown picker type %q", redact.Safe(s))
}

// fields returns the columns a calendar type shows, in natural order.
func (t Type) fields() []Field {
	switch t {
	case TypeTime:
		return []Field{FieldHour, FieldMinute}
	case TypeDate:
		return calendarFields[:3]
	case TypeYearMonth:
		return calendarFields[:2]
	default:
		return calendarFields
	}
}

// Value is a picker value. For TypeTime only Hour and Minute are meaningful;
// for all other types it is a wall-clock time at minute precision.
type Value struct {
	Year   int
	Month  time.Month
	Day    int
	Hour   int
	Minute int
}

// ValueOf returns the Value for t's wall clock.
func ValueOf(t time.Time) Value {
	return Value{
		Year:   t.Year(),
		Month:  t.Month(),
		Day:    t.Day(),
		Hour:   t.Hour(),
		Minute: t.Minute(),
	}
}

// Clock returns a time-of-day Value.
func Clock(hour, minute int) Value {
	return Value{Hour: hour, Minute: minute}
}

// IsZero reports whether v is the zero Value.
func (v Value) IsZero() bool {
	return v == Value{}
}

// Time returns v as a time.Time in loc. Out of range fields are normalized
// the same way time.Date does. A wall clock skipped by a daylight saving
// transition moves forward by the length of the gap, so 00:30 on a day whose
// clocks jump from 00:00 to 01:00 becomes 01:30 on that same day.
func (v Value) Time(loc *time.Location) time.Time {
	t := time.Date(v.Year, v.Month, v.Day, v.Hour, v.Minute, 0, 0, loc)
	want := time.Date(v.Year, v.Month, v.Day, v.Hour, v.Minute, 0, 0, time.UTC)
	got := time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), 0, 0, time.UTC)
	if got.Before(want) {
		t = t.Add(want.Sub(got))
	}
	return t
}

// get returns the numeric value of f.
func (v Value) get(f Field) int {
	switch f {
	case FieldYear:
		return v.Year
	case FieldMonth:
		return int(v.Month)
	case FieldDay:
		return v.Day
	case FieldHour:
		return v.Hour
	default:
		return v.Minute
	}
}

// Format formats v as appropriate for the given Type.
func (v Value) Format(typ Type) string {
	return Format(typ, v)
}

// String implements fmt.Stringer, formatting v as a full date-time.
func (v Value) String() string {
	return Format(TypeDateTime, v)
}

// WriteToBuffer writes the given value into the given buffer.
func WriteToBuffer(buf *bytes.Buffer, typ Type, v Value) {
	outputYear := func() {
		buf.WriteString(fmt.Sprintf("%04d", int64(v.Year)))
	}
	outputClock := func() {
		buf.WriteString(PadZero(v.Hour))
		buf.WriteByte(':')
		buf.WriteString(PadZero(v.Minute))
	}
	switch typ {
	case TypeTime:
		outputClock()
	case TypeYearMonth:
		outputYear()
		buf.WriteByte('-')
		buf.WriteString(PadZero(int(v.Month)))
	default:
		// Always YMD.
		outputYear()
		buf.WriteByte('-')
		buf.WriteString(PadZero(int(v.Month)))
		buf.WriteByte('-')
		buf.WriteString(PadZero(v.Day))
		if typ == TypeDateTime {
			buf.WriteByte(' ')
			outputClock()
		}
	}
}

// Format formats the given value as the given Type.
func Format(typ Type, v Value) string {
	var b bytes.Buffer
	WriteToBuffer(&b, typ, v)
	return b.String()
}

// Filter narrows or rewrites the zero-padded values of a column. It may
// reorder, drop or replace entries; selections are resolved by position.
type Filter func(f Field, values []string) []string

// Formatter returns the text displayed for a single column value.
type Formatter func(f Field, value string) string

// Config holds the bounds and hooks of a picker.
type Config struct {
	Type Type

	// MinDate and MaxDate bound the calendar types. They are interpreted in
	// Location.
	MinDate time.Time
	MaxDate time.Time

	// MinHour, MaxHour, MinMinute and MaxMinute bound TypeTime.
	MinHour   int
	MaxHour   int
	MinMinute int
	MaxMinute int

	Filter    Filter
	Formatter Formatter

	// Location is the zone values are built in. Leave nil for time.Local.
	Location *time.Location
}

// DefaultConfig returns a Config for typ allowing the ten years either side
// of now and the whole day.
func DefaultConfig(typ Type, now time.Time) Config {
	return Config{
		Type:      typ,
		MinDate:   time.Date(now.Year()-10, time.January, 1, 0, 0, 0, 0, now.Location()),
		MaxDate:   time.Date(now.Year()+10, time.December, 31, 0, 0, 0, 0, now.Location()),
		MinHour:   0,
		MaxHour:   23,
		MinMinute: 0,
		MaxMinute: 59,
		Location:  now.Location(),
	}
}

func (c *Config) location() *time.Location {
	if c.Location == nil {
		return time.Local
	}
	return c.Location
}

// minValue is MinDate at minute precision. Seconds round up so that the
// bound never admits a value before MinDate.
func (c *Config) minValue() Value {
	t := c.MinDate.In(c.location())
	v := ValueOf(t)
	if t.Second() != 0 || t.Nanosecond() != 0 {
		v = ValueOf(v.Time(c.location()).Add(time.Minute))
	}
	return v
}

// maxValue is MaxDate truncated to the minute.
func (c *Config) maxValue() Value {
	return ValueOf(c.MaxDate.In(c.location()))
}

func (c *Config) format(f Field, value string) string {
	if c.Formatter == nil {
		return value
	}
	return c.Formatter(f, value)
}

// Validate reports bounds which would leave a column with no legal values.
// Nothing in this package calls it; keeping the bounds ordered is up to the
// caller.
func (c *Config) Validate() error {
	known := false
	for _, t := range allTypes {
		known = known || t == c.Type
	}
	if !known {
		return errors.Newf("unknown picker type %d", redact.Safe(int(c.Type)))
	}
	if c.Type == TypeTime {
		if c.MinHour < 0 || c.MaxHour > 23 || c.MinHour > c.MaxHour {
			return errors.Newf("invalid hour bounds [%d, %d]", c.MinHour, c.MaxHour)
		}
		if c.MinMinute < 0 || c.MaxMinute > 59 || c.MinMinute > c.MaxMinute {
			return errors.Newf("invalid minute bounds [%d, %d]", c.MinMinute, c.MaxMinute)
		}
		return nil
	}
	if c.MinDate.IsZero() || c.MaxDate.IsZero() {
		return errors.Newf("%s picker requires both a min and a max date", c.Type)
	}
	loc := c.location()
	if minV, maxV := c.minValue(), c.maxValue(); minV.Time(loc).After(maxV.Time(loc)) {
		return errors.Newf(
			"min date %s is after max date %s",
			Format(TypeDateTime, minV),
			Format(TypeDateTime, maxV),
		)
	}
	return nil
}

// ParseError is an error that appears during parsing.
type ParseError struct {
	Description string
	Idx         int
}

// NewParseError returns a ParseError with the given fields.
func NewParseError(idx int, description string) *ParseError {
	return &ParseError{Description: description, Idx: idx}
}

// NewParseErrorf returns a ParseError with the given fields.
func NewParseErrorf(idx int, descriptionf string, args ...interface{}) *ParseError {
	return &ParseError{Description: fmt.Sprintf(descriptionf, args...), Idx: idx}
}

// Error implements the error interface.
func (pe *ParseError) Error() string {
	return fmt.Sprintf(
		"error parsing picker value at index %d: %s",
		pe.Idx,
		pe.Description,
	)
}

var _ error = (*ParseError)(nil)
