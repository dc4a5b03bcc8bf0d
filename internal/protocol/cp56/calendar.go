package cp56

import "time"

const (
	msPerMinute = 60 * 1000
	msPerHour   = 60 * msPerMinute
	msPerDay    = 24 * msPerHour
)

// days before the first of each month in a common year
var daysBefore = [12]int{
	0,
	31,
	31 + 28,
	31 + 28 + 31,
	31 + 28 + 31 + 30,
	31 + 28 + 31 + 30 + 31,
	31 + 28 + 31 + 30 + 31 + 30,
	31 + 28 + 31 + 30 + 31 + 30 + 31,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30 + 31,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30 + 31 + 30,
}

// YearDay returns the day of the year, 1 for January 1st.
//
// Every year offset divisible by four is a leap year. That holds for the
// whole 2000-2099 range the wire format can express. Months outside 1-12
// contribute no prior days, so a time-of-day value (month 0) yields its
// day field unchanged.
func (t Time) YearDay() int {
	n := int(t.day)
	if t.month >= 1 && t.month <= 12 {
		n += daysBefore[t.month-1]
	}
	if t.month > 2 && t.year%4 == 0 {
		n++
	}
	return n
}

// Millis returns milliseconds elapsed since the start of year 2000.
func (t Time) Millis() uint64 {
	y := uint64(t.year)
	days := y*365 + (y+3)/4
	return uint64(t.ms) +
		uint64(t.minute)*msPerMinute +
		uint64(t.hour)*msPerHour +
		uint64(t.YearDay())*msPerDay +
		days*msPerDay
}

// Sub returns the milliseconds from u to t. Validity is not checked.
func (t Time) Sub(u Time) int64 {
	return int64(t.Millis()) - int64(u.Millis())
}

// SubDuration is Sub expressed as a time.Duration.
func (t Time) SubDuration(u Time) time.Duration {
	return time.Duration(t.Sub(u)) * time.Millisecond
}

// Difference returns a.Sub(b).
func Difference(a, b Time) int64 {
	return a.Sub(b)
}
