package datetimepicker

// Wheel is the scrollable column widget the picker drives. Rendering and
// index tracking are entirely its business.
type Wheel interface {
	// SelectedIndexes returns the selected position of every column.
	SelectedIndexes() []int
	// SelectedValues returns the origin values at the selected positions.
	SelectedValues() []string
	// SetColumns replaces the displayed columns. The wheel may re-render
	// asynchronously and must call Picker.Rendered once it has.
	SetColumns(columns []Column)
	// SetColumnPositions scrolls every column to the given display value.
	SetColumnPositions(values []string)
}

// Option configures a Picker.
type Option func(*Picker)

// WithOnChange registers fn to be called with every newly adopted value.
func WithOnChange(fn func(Value)) Option {
	return func(p *Picker) { p.onChange = fn }
}

// WithOnSelect registers fn to be called after every selection the user
// makes on the wheel, with the value it resolved to. Unlike the WithOnChange
// callback it also fires when the selection corrects back to the current
// value.
func WithOnSelect(fn func(Value)) Option {
	return func(p *Picker) { p.onSelect = fn }
}

// WithOnConfirm registers fn to be called when the user confirms.
func WithOnConfirm(fn func(Value)) Option {
	return func(p *Picker) { p.onConfirm = fn }
}

// WithOnCancel registers fn to be called when the user cancels.
func WithOnCancel(fn func()) Option {
	return func(p *Picker) { p.onCancel = fn }
}

// WithInitialValue sets the starting value. It is corrected like any other.
func WithInitialValue(v Value) Option {
	return func(p *Picker) { p.value = v }
}

type memoKey struct {
	typ                  Type
	min, max             Value
	minHour, maxHour     int
	minMinute, maxMinute int
	value                Value
}

// Picker keeps a Wheel consistent with a single bounded value.
//
// Every mutation corrects the value, rebuilds the columns for it, and pushes
// the value's position to the wheel. When the columns changed the push waits
// for Rendered; a newer push replaces one still waiting.
//
// A Picker is not safe for concurrent use.
type Picker struct {
	cfg   Config
	wheel Wheel
	value Value

	columns   Columns
	memo      memoKey
	memoValid bool

	awaitingRender bool
	pending        []string

	onChange  func(Value)
	onSelect  func(Value)
	onConfirm func(Value)
	onCancel  func()
}

// New returns a Picker for cfg driving wheel. Without WithInitialValue the
// picker starts at the min bound, or at MinHour:00 for TypeTime.
func New(cfg Config, wheel Wheel, opts ...Option) *Picker {
	p := &Picker{cfg: cfg, wheel: wheel}
	if cfg.Type == TypeTime {
		p.value = CorrectString(cfg, "")
	}
	for _, o := range opts {
		o(p)
	}
	p.value = Correct(p.cfg, p.value)
	p.sync(false /* fromWheel */)
	return p
}

// Value returns the current, corrected value.
func (p *Picker) Value() Value {
	return p.value
}

// String formats the current value for the picker's type.
func (p *Picker) String() string {
	return Format(p.cfg.Type, p.value)
}

// Config returns the picker's configuration.
func (p *Picker) Config() Config {
	return p.cfg
}

// Columns returns the columns for the current value.
func (p *Picker) Columns() Columns {
	return p.columns
}

// Ranges returns the column ranges for the current value.
func (p *Picker) Ranges() []FieldRange {
	return BuildRanges(p.cfg, p.value)
}

// SetValue adopts v once corrected. It does nothing if the corrected value
// is the current one.
func (p *Picker) SetValue(v Value) {
	v = Correct(p.cfg, v)
	if v == p.value {
		return
	}
	p.adopt(v, false /* fromWheel */)
}

// SetValueString is SetValue for textual input, see CorrectString.
func (p *Picker) SetValueString(s string) {
	v := CorrectString(p.cfg, s)
	if v == p.value {
		return
	}
	p.adopt(v, false /* fromWheel */)
}

// SetConfig replaces the configuration and re-corrects the current value
// against it.
func (p *Picker) SetConfig(cfg Config) {
	p.cfg = cfg
	p.memoValid = false
	p.adopt(Correct(cfg, p.value), false /* fromWheel */)
}

// HandleChange reads the wheel's selection after the user scrolled a column
// and adopts the value it describes.
func (p *Picker) HandleChange() {
	v := MapSelection(p.cfg, p.value, p.wheel.SelectedIndexes(), p.columns.Origin)
	p.adopt(v, true /* fromWheel */)
	if p.onSelect != nil {
		p.onSelect(p.value)
	}
}

// Rendered tells the picker the wheel finished rendering the last columns
// it was given, releasing any pending position push.
func (p *Picker) Rendered() {
	p.awaitingRender = false
	p.flush()
}

// Confirm reports the current value as confirmed. It does not read the
// wheel; selections are adopted as they happen by HandleChange.
func (p *Picker) Confirm() {
	if p.onConfirm != nil {
		p.onConfirm(p.value)
	}
}

// Cancel reports that the user dismissed the picker.
func (p *Picker) Cancel() {
	if p.onCancel != nil {
		p.onCancel()
	}
}

// Positions returns the display value of the current value for every
// column, in column order.
func (p *Picker) Positions() []string {
	return p.positions(true /* formatted */)
}

func (p *Picker) positions(formatted bool) []string {
	ret := make([]string, len(p.columns.Origin))
	for i, col := range p.columns.Origin {
		s := PadZero(p.value.get(col.Field))
		if formatted {
			s = p.cfg.format(col.Field, s)
		}
		ret[i] = s
	}
	return ret
}

func (p *Picker) adopt(v Value, fromWheel bool) {
	changed := v != p.value
	p.value = v
	p.sync(fromWheel)
	if changed && p.onChange != nil {
		p.onChange(v)
	}
}

// sync rebuilds the columns for the current value and pushes the value's
// positions to the wheel.
func (p *Picker) sync(fromWheel bool) {
	key := memoKey{
		typ:       p.cfg.Type,
		min:       p.cfg.minValue(),
		max:       p.cfg.maxValue(),
		minHour:   p.cfg.MinHour,
		maxHour:   p.cfg.MaxHour,
		minMinute: p.cfg.MinMinute,
		maxMinute: p.cfg.MaxMinute,
		value:     p.value,
	}
	columnsChanged := false
	if !p.memoValid || key != p.memo {
		cols := BuildColumns(p.cfg, p.value)
		if !p.memoValid || !cols.Equal(p.columns) {
			p.columns = cols
			p.wheel.SetColumns(cols.Display)
			p.awaitingRender = true
			columnsChanged = true
		}
		p.memo = key
		p.memoValid = true
	}

	if fromWheel && !columnsChanged && !p.awaitingRender &&
		stringsEqual(p.wheel.SelectedValues(), p.positions(false /* formatted */)) {
		// The wheel already shows the value.
		return
	}
	p.pending = p.Positions()
	p.flush()
}

func (p *Picker) flush() {
	if p.awaitingRender || p.pending == nil {
		return
	}
	positions := p.pending
	p.pending = nil
	p.wheel.SetColumnPositions(positions)
}

func stringsEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
