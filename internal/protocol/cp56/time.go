package cp56

const (
	// Size is the encoded length in bytes.
	Size = 7
	// Epoch is the calendar year stored as year offset 0.
	Epoch = 2000
	// InvalidText is what String returns for a value with IV set.
	InvalidText = "[INVALID]"
)

// field masks, one per bit field in the wire layout
const (
	maskMinute  = 0x3F
	maskHour    = 0x1F
	maskDay     = 0x1F
	maskWeekday = 0x07
	maskMonth   = 0x0F
	maskYear    = 0x7F
)

// Time is one CP56Time2a value.
//
// The zero value is the invalid default: every field zero and IV set.
type Time struct {
	ms      uint16
	minute  uint8
	hour    uint8
	day     uint8
	weekday uint8
	month   uint8
	year    uint8
	summer  bool
	valid   bool
}

// New builds a valid Time from raw field values. Inputs are not range
// checked; each one is truncated to its wire width.
func New(year, month, day, hour, minute uint8, ms uint16) Time {
	return Time{
		ms:     ms,
		minute: minute & maskMinute,
		hour:   hour & maskHour,
		day:    day & maskDay,
		month:  month & maskMonth,
		year:   year & maskYear,
		valid:  true,
	}
}

// WithSummer returns a copy with the SU flag set to summer.
func (t Time) WithSummer(summer bool) Time {
	t.summer = summer
	return t
}

// WithWeekday returns a copy carrying day-of-week wd (1 = Monday).
func (t Time) WithWeekday(wd uint8) Time {
	t.weekday = wd & maskWeekday
	return t
}

// Valid reports whether IV is clear.
func (t Time) Valid() bool { return t.valid }

// Summer reports the SU flag.
func (t Time) Summer() bool { return t.summer }

// Milliseconds returns milliseconds within the minute.
func (t Time) Milliseconds() uint16 { return t.ms }

// Second returns whole seconds within the minute.
func (t Time) Second() uint8 { return uint8(t.ms / 1000) }

func (t Time) Minute() uint8  { return t.minute }
func (t Time) Hour() uint8    { return t.hour }
func (t Time) Day() uint8     { return t.day }
func (t Time) Weekday() uint8 { return t.weekday }
func (t Time) Month() uint8   { return t.month }

// Year returns the raw offset from Epoch.
func (t Time) Year() uint8 { return t.year }

// FullYear returns Epoch + Year.
func (t Time) FullYear() int { return Epoch + int(t.year) }
