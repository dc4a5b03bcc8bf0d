// Package hexbytes converts between operator supplied hex text and the byte
// buffers the codecs consume.
package hexbytes

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrOverflow = errors.New("hexbytes: value wider than 64 bits")
	ErrRange    = errors.New("hexbytes: range outside buffer")
	ErrBadToken = errors.New("hexbytes: bad hex token")
)

// ParseHexAll reads every byte of code as one big-endian integer.
func ParseHexAll(code []byte) (uint64, error) {
	if len(code) > 8 {
		return 0, ErrOverflow
	}
	var v uint64
	for _, b := range code {
		v = v<<8 | uint64(b)
	}
	return v, nil
}

// ParseHexRange reads code[begin:begin+n] as a little-endian integer, the
// byte order used on the wire.
func ParseHexRange(code []byte, begin, n int) (uint64, error) {
	if begin < 0 || n < 0 || begin > len(code) || n > len(code)-begin {
		return 0, fmt.Errorf("%w: [%d:+%d] of %d", ErrRange, begin, n, len(code))
	}
	if n > 8 {
		return 0, ErrOverflow
	}
	var v uint64
	for i := n - 1; i >= 0; i-- {
		v = v<<8 | uint64(code[begin+i])
	}
	return v, nil
}

// Bytes parses s as a list of hex bytes. Tokens may be separated by white
// space, commas or colons and may carry a 0x prefix. A token longer than two
// digits is split into bytes and must have an even length.
func Bytes(s string) ([]byte, error) {
	tokens := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ':' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	out := make([]byte, 0, len(tokens))
	for _, tok := range tokens {
		raw := trimPrefix(tok)
		if len(raw) == 1 {
			raw = "0" + raw
		}
		if raw == "" || len(raw)%2 != 0 {
			return nil, fmt.Errorf("%w: %q", ErrBadToken, tok)
		}
		b, err := hex.DecodeString(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrBadToken, tok)
		}
		out = append(out, b...)
	}
	return out, nil
}

// Int parses s as a single hex integer.
func Int(s string) (int64, error) {
	v, err := strconv.ParseInt(trimPrefix(strings.TrimSpace(s)), 16, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadToken, s)
	}
	return v, nil
}

// Dump renders b as upper case bytes separated by single spaces.
func Dump(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.Grow(len(b) * 3)
	for i, c := range b {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%02X", c)
	}
	return sb.String()
}

func trimPrefix(s string) string {
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		return s[2:]
	}
	return s
}
