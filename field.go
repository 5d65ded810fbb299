package datetimepicker

import "github.com/cockroachdb/redact"

// Field is a single wheel column of the picker.
type Field uint8

//go:generate stringer -type=Field -trimprefix=Field -linecomment

const (
	FieldYear   Field = iota // year
	FieldMonth               // month
	FieldDay                 // day
	FieldHour                // hour
	FieldMinute              // minute
)

// calendarFields are the fields of a full date-time, in natural order.
var calendarFields = []Field{FieldYear, FieldMonth, FieldDay, FieldHour, FieldMinute}

// SafeValue implements redact.SafeValue.
func (Field) SafeValue() {}

var _ redact.SafeValue = Field(0)

// Direction selects which bound the boundary resolver works against.
type Direction uint8

//go:generate stringer -type=Direction -trimprefix=Direction -linecomment

const (
	DirectionMin Direction = iota // min
	DirectionMax                  // max
)

// SafeValue implements redact.SafeValue.
func (Direction) SafeValue() {}

var _ redact.SafeValue = Direction(0)
