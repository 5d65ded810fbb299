package datetimepicker

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"
)

type tokenType int

//go:generate stringer -type=tokenType -trimprefix=tokenType

const (
	// tokenTypeNumber holds a bare run of digits.
	tokenTypeNumber tokenType = iota
	// tokenTypeString holds letters, e.g. the ISO 't' separator.
	tokenTypeString
	// tokenTypeDate holds dates, e.g. 2020-01-15, 2020/1/15 or 2020-01.
	tokenTypeDate
	// tokenTypeTime holds times of day, e.g. 08:30 or 08:30:00.
	tokenTypeTime
)

// token represents a lexical component of a picker value.
type token struct {
	tokenType tokenType
	val       string
	idx       int
}

func tokenizeValue(s string) ([]token, error) {
	s = strings.ToLower(s)
	i := 0
	ret := []token{}
	isDigit := func(b byte) bool {
		return unicode.IsDigit(rune(b))
	}
	isLetter := func(b byte) bool {
		return unicode.IsLetter(rune(b))
	}
	advanceWhen := func(f func(b byte) bool) {
		for i < len(s) && f(s[i]) {
			i++
		}
	}
	appendToken := func(t tokenType, start int) {
		ret = append(
			ret,
			token{tokenType: t, val: s[start:i], idx: start},
		)
	}

	for i < len(s) {
		start := i

		switch {
		case unicode.IsSpace(rune(s[i])):
			// Ignore spaces.
			advanceWhen(func(b byte) bool {
				return unicode.IsSpace(rune(b))
			})
		case isDigit(s[i]):
			advanceWhen(isDigit)
			// If we've reached the end, treat it as a number.
			if i >= len(s) {
				appendToken(tokenTypeNumber, start)
				break
			}
			switch s[i] {
			case ':':
				// It is a time element.
				advanceWhen(func(b byte) bool {
					return isDigit(b) || b == ':'
				})
				appendToken(tokenTypeTime, start)
			case '-', '/', '.':
				// It is a date element; all fields share the first delimiter.
				delimiter := s[i]
				advanceWhen(func(b byte) bool {
					return isDigit(b) || b == delimiter
				})
				appendToken(tokenTypeDate, start)
			default:
				appendToken(tokenTypeNumber, start)
			}
		case isLetter(s[i]):
			advanceWhen(isLetter)
			appendToken(tokenTypeString, start)
		default:
			return nil, NewParseError(start, fmt.Sprintf("unexpected character: %c", s[i]))
		}
	}
	return ret, nil
}

type decodeTokenState struct {
	seen                     uint8
	year, month, day         int
	hour, minute             int
	typ                      Type
	sawDate, sawTime, sawSep bool
}

func (s *decodeTokenState) hasSeen(f Field) bool {
	return s.seen&(1<<f) != 0
}

func (s *decodeTokenState) markSeen(fs ...Field) {
	for _, f := range fs {
		s.seen |= 1 << f
	}
}

// readFields splits t on sep and parses every part as a number.
func readFields(t token, sep string) ([]int, error) {
	parts := strings.Split(t.val, sep)
	ret := make([]int, len(parts))
	idx := t.idx
	for i, p := range parts {
		if p == "" {
			return nil, NewParseErrorf(idx, "expected digits but none found")
		}
		n, err := strconv.ParseInt(p, 10, 64)
		if err != nil {
			return nil, NewParseErrorf(idx, "error parsing digits: %s", err.Error())
		}
		ret[i] = int(n)
		idx += len(p) + len(sep)
	}
	return ret, nil
}

func (s *decodeTokenState) decodeDate(t token) error {
	if s.hasSeen(FieldYear) {
		return NewParseErrorf(t.idx, "duplicate date component: %s", t.val)
	}
	fields, err := readFields(t, t.val[strings.IndexAny(t.val, "-/."):][:1])
	if err != nil {
		return err
	}
	switch len(fields) {
	case 2:
		s.year, s.month, s.day = fields[0], fields[1], 1
	case 3:
		s.year, s.month, s.day = fields[0], fields[1], fields[2]
	default:
		return NewParseErrorf(t.idx, "expected year-month or year-month-day, found %s", t.val)
	}
	s.markSeen(FieldYear, FieldMonth, FieldDay)
	s.sawDate = true
	if s.month < 1 || s.month > 12 {
		return NewParseErrorf(t.idx, "month %d out of range", s.month)
	}
	if last := LastDayOfMonth(s.year, time.Month(s.month)); s.day < 1 || s.day > last {
		return NewParseErrorf(t.idx, "day %d out of range for %04d-%02d", s.day, s.year, s.month)
	}
	return nil
}

func (s *decodeTokenState) decodeTime(t token) error {
	if s.hasSeen(FieldHour) {
		return NewParseErrorf(t.idx, "duplicate time component: %s", t.val)
	}
	fields, err := readFields(t, ":")
	if err != nil {
		return err
	}
	// Seconds are accepted but dropped; values have minute precision.
	if len(fields) != 2 && len(fields) != 3 {
		return NewParseErrorf(t.idx, "expected hh:mm or hh:mm:ss, found %s", t.val)
	}
	s.hour, s.minute = fields[0], fields[1]
	s.markSeen(FieldHour, FieldMinute)
	s.sawTime = true
	if s.hour < 0 || s.hour > 23 {
		return NewParseErrorf(t.idx, "hour %d out of range", s.hour)
	}
	if s.minute < 0 || s.minute > 59 {
		return NewParseErrorf(t.idx, "minute %d out of range", s.minute)
	}
	return nil
}

func decodeTokens(typ Type, tokens []token) (Value, error) {
	s := decodeTokenState{typ: typ}

	for _, t := range tokens {
		switch t.tokenType {
		case tokenTypeDate:
			if err := s.decodeDate(t); err != nil {
				return Value{}, err
			}
		case tokenTypeTime:
			if err := s.decodeTime(t); err != nil {
				return Value{}, err
			}
		case tokenTypeString:
			// Only the ISO separator between a date and a time is allowed.
			if t.val != "t" || !s.sawDate || s.sawTime || s.sawSep {
				return Value{}, NewParseErrorf(t.idx, "unexpected text: %s", t.val)
			}
			s.sawSep = true
		default:
			return Value{}, NewParseErrorf(t.idx, "unexpected %s token: %s", t.tokenType.String(), t.val)
		}
	}
	if typ == TypeTime {
		if !s.sawTime {
			return Value{}, NewParseError(0, "expected a time of day")
		}
		return Clock(s.hour, s.minute), nil
	}
	if !s.sawDate {
		return Value{}, NewParseError(0, "expected a date")
	}
	return Value{
		Year:   s.year,
		Month:  time.Month(s.month),
		Day:    s.day,
		Hour:   s.hour,
		Minute: s.minute,
	}, nil
}

// ParseValue parses s as a value of the given Type. Calendar types accept
// YYYY-MM-DD or YYYY-MM (with '-', '/' or '.' as delimiter), optionally
// followed by a time of day separated by a space or 'T'. TypeTime accepts
// HH:MM, and ignores any date given with it.
func ParseValue(typ Type, s string) (Value, error) {
	tokens, err := tokenizeValue(s)
	if err != nil {
		return Value{}, err
	}
	return decodeTokens(typ, tokens)
}
