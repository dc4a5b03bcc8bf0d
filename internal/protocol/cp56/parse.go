package cp56

import (
	"fmt"
	"strconv"
)

// Parse reads text according to format and returns the resulting Time.
//
// Directives:
//
//	%Y   four digit year, stored as year-2000
//	%m   month
//	%ms  value added to the millisecond field
//	%d   day of month
//	%H   hour
//	%M   minute
//	%S   value/1000 added to the millisecond field
//
// Every other format byte must match text exactly. On the first mismatch,
// unknown directive, or missing number the partially filled value is
// returned with IV still set. Text left over after the format is ignored.
func Parse(text, format string) Time {
	t, _ := Scan(text, format)
	return t
}

// Scan is Parse with the reason for an aborted parse reported as an error.
// The returned Time is the same value Parse would give.
func Scan(text, format string) (Time, error) {
	var t Time
	pos := 0
	for i := 0; i < len(format); i++ {
		c := format[i]
		if c != '%' {
			if pos >= len(text) || text[pos] != c {
				return t, fmt.Errorf("%w: want %q at %d", ErrLiteralMismatch, c, pos)
			}
			pos++
			continue
		}
		i++
		if i >= len(format) {
			return t, ErrTruncatedFormat
		}
		verb := format[i]
		if !isDirective(verb) {
			return t, fmt.Errorf("%w: %%%c", ErrUnknownDirective, verb)
		}
		val, n, err := readInt(text[pos:])
		if err != nil {
			return t, fmt.Errorf("%w: %%%c at %d", ErrMissingNumber, verb, pos)
		}
		pos += n
		switch verb {
		case 'Y':
			t.year = uint8(val-Epoch) & maskYear
		case 'm':
			if i+1 < len(format) && format[i+1] == 's' {
				i++
				t.ms += uint16(val)
			} else {
				t.month = uint8(val) & maskMonth
			}
		case 'd':
			t.day = uint8(val) & maskDay
		case 'H':
			t.hour = uint8(val) & maskHour
		case 'M':
			t.minute = uint8(val) & maskMinute
		case 'S':
			// Adds val/1000 rather than val*1000; existing captures depend on it.
			t.ms += uint16(uint8(val / 1000))
		}
	}
	t.valid = true
	return t, nil
}

func isDirective(c byte) bool {
	switch c {
	case 'Y', 'm', 'd', 'H', 'M', 'S':
		return true
	}
	return false
}

// readInt reads an optionally signed decimal prefix of s and returns the
// value and the number of bytes consumed.
func readInt(s string) (int, int, error) {
	n := 0
	if n < len(s) && (s[n] == '+' || s[n] == '-') {
		n++
	}
	start := n
	for n < len(s) && s[n] >= '0' && s[n] <= '9' {
		n++
	}
	if n == start {
		return 0, 0, strconv.ErrSyntax
	}
	v, err := strconv.Atoi(s[:n])
	if err != nil {
		return 0, 0, err
	}
	return v, n, nil
}

// CheckFormat reports the first unknown or dangling directive in format
// without reading any text.
func CheckFormat(format string) error {
	for i := 0; i < len(format); i++ {
		if format[i] != '%' {
			continue
		}
		i++
		if i >= len(format) {
			return ErrTruncatedFormat
		}
		if !isDirective(format[i]) {
			return fmt.Errorf("%w: %%%c", ErrUnknownDirective, format[i])
		}
	}
	return nil
}
