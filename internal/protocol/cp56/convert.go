package cp56

import "time"

// FromTime converts a wall clock reading to a valid Time. Weekday uses the
// ISO numbering (Monday = 1, Sunday = 7) and SU is left clear. Years the
// wire format cannot hold yield the invalid default.
func FromTime(wall time.Time) Time {
	year := wall.Year() - Epoch
	if year < 0 || year > 99 {
		return Time{}
	}
	wd := uint8(wall.Weekday())
	if wd == 0 {
		wd = 7
	}
	ms := wall.Second()*1000 + wall.Nanosecond()/int(time.Millisecond)
	return New(uint8(year), uint8(wall.Month()), uint8(wall.Day()),
		uint8(wall.Hour()), uint8(wall.Minute()), uint16(ms)).WithWeekday(wd)
}

// ToTime returns the wall clock reading t names in loc. Invalid values and
// values without a date (month or day zero) return the zero time.Time so
// IsZero can be used.
func (t Time) ToTime(loc *time.Location) time.Time {
	if !t.valid || t.month == 0 || t.day == 0 {
		return time.Time{}
	}
	if loc == nil {
		loc = time.UTC
	}
	ms := int(t.ms)
	return time.Date(t.FullYear(), time.Month(t.month), int(t.day),
		int(t.hour), int(t.minute), ms/1000, (ms%1000)*int(time.Millisecond), loc)
}
