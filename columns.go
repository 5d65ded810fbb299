package datetimepicker

// Column is one wheel of the picker.
type Column struct {
	Field  Field
	Values []string
}

// Columns holds two parallel views of the same columns. Origin holds the
// filtered, zero-padded values and is what selections are read back from.
// Display holds the same entries after the formatter, and is what the wheel
// shows. The two always have the same shape.
type Columns struct {
	Origin  []Column
	Display []Column
}

// Materialize expands ranges into columns. filter and formatter may be nil.
func Materialize(ranges []FieldRange, filter Filter, formatter Formatter) Columns {
	ret := Columns{
		Origin:  make([]Column, len(ranges)),
		Display: make([]Column, len(ranges)),
	}
	for i, r := range ranges {
		values := make([]string, 0, r.High-r.Low+1)
		for n := r.Low; n <= r.High; n++ {
			values = append(values, PadZero(n))
		}
		if filter != nil {
			values = filter(r.Field, values)
		}
		display := make([]string, len(values))
		for j, v := range values {
			if formatter != nil {
				v = formatter(r.Field, v)
			}
			display[j] = v
		}
		ret.Origin[i] = Column{Field: r.Field, Values: values}
		ret.Display[i] = Column{Field: r.Field, Values: display}
	}
	return ret
}

// BuildColumns is BuildRanges followed by Materialize with cfg's hooks.
func BuildColumns(cfg Config, v Value) Columns {
	return Materialize(BuildRanges(cfg, v), cfg.Filter, cfg.Formatter)
}

// Equal reports whether c and o would render identically.
func (c Columns) Equal(o Columns) bool {
	return columnsEqual(c.Display, o.Display) && columnsEqual(c.Origin, o.Origin)
}

func columnsEqual(a, b []Column) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Field != b[i].Field || len(a[i].Values) != len(b[i].Values) {
			return false
		}
		for j := range a[i].Values {
			if a[i].Values[j] != b[i].Values[j] {
				return false
			}
		}
	}
	return true
}
