package datetimepicker

import "time"

// MapSelection turns the selected index of every column back into a
// corrected value. origin must be the Origin view the wheel was built from.
// Columns are looked up by field; current supplies the field of any column
// that is missing or empty.
//
// An index past the end of its column selects the column's first entry. The
// day is clamped to the end of the selected month, so picking the 31st and
// then February yields the 28th or 29th.
func MapSelection(cfg Config, current Value, indexes []int, origin []Column) Value {
	get := func(f Field) int {
		for i, col := range origin {
			if col.Field != f || len(col.Values) == 0 {
				continue
			}
			raw := col.Values[0]
			if i < len(indexes) && indexes[i] >= 0 && indexes[i] < len(col.Values) {
				raw = col.Values[indexes[i]]
			}
			if n, ok := trueValue(raw); ok {
				return n
			}
			break
		}
		return current.get(f)
	}

	if cfg.Type == TypeTime {
		return Correct(cfg, Clock(get(FieldHour), get(FieldMinute)))
	}

	v := Value{Year: get(FieldYear), Day: 1}
	v.Month = time.Month(get(FieldMonth))
	if cfg.Type != TypeYearMonth {
		v.Day = get(FieldDay)
		if last := LastDayOfMonth(v.Year, v.Month); v.Day > last {
			v.Day = last
		}
	}
	if cfg.Type == TypeDateTime {
		v.Hour = get(FieldHour)
		v.Minute = get(FieldMinute)
	}
	return Correct(cfg, v)
}
