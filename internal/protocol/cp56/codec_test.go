package cp56

import (
	"bytes"
	"errors"
	"testing"
)

func TestDefaultIsInvalid(t *testing.T) {
	var ts Time
	if ts.Valid() {
		t.Fatalf("zero value must be invalid")
	}
	if got := ts.String(); got != InvalidText {
		t.Fatalf("expected %q, got %q", InvalidText, got)
	}
	enc := Encode(ts)
	want := [Size]byte{0, 0, 0x80, 0, 0, 0, 0}
	if enc != want {
		t.Fatalf("unexpected default encoding: % X", enc)
	}
}

func TestEncodeLayout(t *testing.T) {
	ts := New(24, 12, 25, 13, 5, 59999).WithSummer(true).WithWeekday(3)
	got := Encode(ts)
	want := [Size]byte{
		0x5F, 0xEA, // 59999 little endian
		5,
		13 | 0x80,
		25 | 3<<5,
		12,
		24,
	}
	if got != want {
		t.Fatalf("encode mismatch: got % X want % X", got, want)
	}
}

func TestDecodeRoundTripZeroesPadding(t *testing.T) {
	cases := [][]byte{
		{0x00, 0x00, 0x00, 0x00, 0x01, 0x01, 0x00},
		{0x5F, 0xEA, 0x3B, 0x17, 0xFF, 0x0C, 0x63},
		{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF},
		{0x10, 0x27, 0x40, 0x60, 0x1F, 0xF5, 0x80},
	}
	pad := [Size]byte{0xFF, 0xFF, 0xBF, 0x9F, 0xFF, 0x0F, 0x7F}
	for _, in := range cases {
		got := Encode(Decode(in, 0))
		for i := range got {
			want := in[i] & pad[i]
			if got[i] != want {
				t.Fatalf("byte %d of % X: got %02X want %02X", i, in, got[i], want)
			}
		}
	}
}

func TestDecodeAtOffset(t *testing.T) {
	want := New(1, 2, 3, 4, 5, 6006)
	enc := Encode(want)
	buf := append([]byte{0xAA, 0xBB, 0xCC}, enc[:]...)
	if got := Decode(buf, 3); got != want {
		t.Fatalf("decode at offset: got %+v want %+v", got, want)
	}
}

func TestDecodeShortBufferIsInvalid(t *testing.T) {
	buf := make([]byte, 9)
	cases := []struct {
		name   string
		buf    []byte
		offset int
	}{
		{name: "nil", buf: nil, offset: 0},
		{name: "six bytes", buf: buf[:6], offset: 0},
		{name: "offset past end", buf: buf, offset: 3},
		{name: "negative offset", buf: buf, offset: -1},
	}
	for _, tc := range cases {
		if Fits(tc.buf, tc.offset) {
			t.Fatalf("%s: Fits should report false", tc.name)
		}
		if got := Decode(tc.buf, tc.offset); got != (Time{}) {
			t.Fatalf("%s: expected invalid default, got %+v", tc.name, got)
		}
	}
	if !Fits(buf, 2) {
		t.Fatalf("exact fit at offset 2 should report true")
	}
	if got := Decode(buf, 2); !got.Valid() {
		t.Fatalf("exact fit at offset 2 should decode")
	}
}

func TestDecodeFlags(t *testing.T) {
	ts := Decode([]byte{0, 0, 0x80 | 7, 0x80 | 9, 2 | 7<<5, 6, 50}, 0)
	if ts.Valid() {
		t.Fatalf("IV bit should mark value invalid")
	}
	if !ts.Summer() {
		t.Fatalf("SU bit should be set")
	}
	if ts.Minute() != 7 || ts.Hour() != 9 || ts.Day() != 2 || ts.Weekday() != 7 || ts.Month() != 6 || ts.Year() != 50 {
		t.Fatalf("unexpected fields: %+v", ts)
	}
}

func TestBinaryMarshalers(t *testing.T) {
	in := New(24, 2, 29, 23, 59, 59999).WithWeekday(4)
	b, err := in.MarshalBinary()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	enc := Encode(in)
	if !bytes.Equal(b, enc[:]) {
		t.Fatalf("marshal mismatch: % X", b)
	}

	var out Time
	if err := out.UnmarshalBinary(b); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out != in {
		t.Fatalf("unmarshal mismatch: got %+v want %+v", out, in)
	}

	out = in
	if err := out.UnmarshalBinary(b[:3]); !errors.Is(err, ErrShortBuffer) {
		t.Fatalf("expected ErrShortBuffer, got %v", err)
	}
	if out.Valid() {
		t.Fatalf("short unmarshal should reset to invalid")
	}

	appended, _ := in.AppendBinary([]byte{0x01})
	if len(appended) != Size+1 || appended[0] != 0x01 {
		t.Fatalf("append mismatch: % X", appended)
	}
}

func TestNewMasksFieldWidths(t *testing.T) {
	ts := New(0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFFFF)
	if ts.Year() != 0x7F || ts.Month() != 0x0F || ts.Day() != 0x1F || ts.Hour() != 0x1F || ts.Minute() != 0x3F {
		t.Fatalf("fields not masked: %+v", ts)
	}
	if !ts.Valid() {
		t.Fatalf("New must clear IV")
	}
	if ts.Summer() || ts.Weekday() != 0 {
		t.Fatalf("New must leave SU and weekday clear")
	}
}
