package hexbytes

import (
	"bytes"
	"errors"
	"testing"
)

func TestParseHexAll(t *testing.T) {
	v, err := ParseHexAll([]byte{0x01, 0x02, 0xFF})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if v != 0x0102FF {
		t.Fatalf("unexpected value: %#x", v)
	}
	if v, _ := ParseHexAll(nil); v != 0 {
		t.Fatalf("empty input should be zero, got %d", v)
	}
	if _, err := ParseHexAll(make([]byte, 9)); !errors.Is(err, ErrOverflow) {
		t.Fatalf("expected ErrOverflow, got %v", err)
	}
}

func TestParseHexRangeLittleEndian(t *testing.T) {
	code := []byte{0xAA, 0x5F, 0xEA, 0xBB}
	v, err := ParseHexRange(code, 1, 2)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if v != 59999 {
		t.Fatalf("expected 59999, got %d", v)
	}
	cases := []struct {
		begin, n int
	}{
		{begin: -1, n: 1},
		{begin: 3, n: 2},
		{begin: 5, n: 0},
		{begin: 0, n: -1},
	}
	for _, tc := range cases {
		if _, err := ParseHexRange(code, tc.begin, tc.n); !errors.Is(err, ErrRange) {
			t.Fatalf("[%d:+%d]: expected ErrRange, got %v", tc.begin, tc.n, err)
		}
	}
}

func TestBytes(t *testing.T) {
	cases := []struct {
		in   string
		want []byte
	}{
		{in: "5F EA 05 0D 19 0C 18", want: []byte{0x5F, 0xEA, 0x05, 0x0D, 0x19, 0x0C, 0x18}},
		{in: "0x5f,0xea:5", want: []byte{0x5F, 0xEA, 0x05}},
		{in: "5FEA05", want: []byte{0x5F, 0xEA, 0x05}},
		{in: "  \n", want: []byte{}},
	}
	for _, tc := range cases {
		got, err := Bytes(tc.in)
		if err != nil {
			t.Fatalf("%q: %v", tc.in, err)
		}
		if !bytes.Equal(got, tc.want) {
			t.Fatalf("%q: got % X want % X", tc.in, got, tc.want)
		}
	}
	for _, bad := range []string{"zz", "ABC", "0x"} {
		if _, err := Bytes(bad); !errors.Is(err, ErrBadToken) {
			t.Fatalf("%q: expected ErrBadToken, got %v", bad, err)
		}
	}
}

func TestIntAndDump(t *testing.T) {
	v, err := Int(" 0x1F ")
	if err != nil || v != 31 {
		t.Fatalf("unexpected: %d %v", v, err)
	}
	if _, err := Int("nope"); !errors.Is(err, ErrBadToken) {
		t.Fatalf("expected ErrBadToken, got %v", err)
	}
	if got := Dump([]byte{0x05, 0xAB}); got != "05 AB" {
		t.Fatalf("unexpected dump: %q", got)
	}
	if got := Dump(nil); got != "" {
		t.Fatalf("unexpected dump: %q", got)
	}
}
