package cp56

import "encoding/binary"

const (
	flagIV = 0x80
	flagSU = 0x80
)

// Fits reports whether buf holds Size bytes starting at offset.
func Fits(buf []byte, offset int) bool {
	return offset >= 0 && len(buf)-offset >= Size
}

// Decode reads one Time from buf starting at offset.
//
// When the buffer does not fit a timestamp at offset the invalid default
// is returned; nothing is read. Padding bits are ignored.
func Decode(buf []byte, offset int) Time {
	if !Fits(buf, offset) {
		return Time{}
	}
	return decodeBytes(buf[offset : offset+Size])
}

func decodeBytes(b []byte) Time {
	return Time{
		ms:      binary.LittleEndian.Uint16(b[0:2]),
		minute:  b[2] & maskMinute,
		valid:   b[2]&flagIV == 0,
		hour:    b[3] & maskHour,
		summer:  b[3]&flagSU != 0,
		day:     b[4] & maskDay,
		weekday: (b[4] >> 5) & maskWeekday,
		month:   b[5] & maskMonth,
		year:    b[6] & maskYear,
	}
}

// Encode writes t into a fresh seven byte array with all padding bits zero.
func Encode(t Time) [Size]byte {
	var out [Size]byte
	binary.LittleEndian.PutUint16(out[0:2], t.ms)
	out[2] = t.minute & maskMinute
	if !t.valid {
		out[2] |= flagIV
	}
	out[3] = t.hour & maskHour
	if t.summer {
		out[3] |= flagSU
	}
	out[4] = t.day&maskDay | (t.weekday&maskWeekday)<<5
	out[5] = t.month & maskMonth
	out[6] = t.year & maskYear
	return out
}

// AppendBinary appends the encoded form of t to b.
func (t Time) AppendBinary(b []byte) ([]byte, error) {
	enc := Encode(t)
	return append(b, enc[:]...), nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (t Time) MarshalBinary() ([]byte, error) {
	return t.AppendBinary(make([]byte, 0, Size))
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. Unlike Decode it
// reports a short buffer as ErrShortBuffer; t is reset to the invalid
// default in that case.
func (t *Time) UnmarshalBinary(data []byte) error {
	if len(data) < Size {
		*t = Time{}
		return ErrShortBuffer
	}
	*t = decodeBytes(data[:Size])
	return nil
}
