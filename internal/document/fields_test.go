package document

import (
	"errors"
	"testing"
	"time"
)

func TestBoolFieldCodec(t *testing.T) {
	field := BoolField("Bold", false)

	cases := []struct {
		text string
		want bool
	}{
		{"-1", true},
		{"0", false},
		{"1", true},
	}
	for _, tc := range cases {
		value, err := field.Parse(tc.text)
		if err != nil {
			t.Fatalf("parse %q: %v", tc.text, err)
		}
		if value != tc.want {
			t.Fatalf("parse %q: expected %v, got %v", tc.text, tc.want, value)
		}
	}

	if got := field.Dump(true); got != "-1" {
		t.Fatalf("expected true to dump as -1, got %q", got)
	}
	if got := field.Dump(false); got != "0" {
		t.Fatalf("expected false to dump as 0, got %q", got)
	}
}

func TestFloatFieldDumpShortestForm(t *testing.T) {
	field := FloatField("Fontsize", 20)
	if got := field.Dump(20.0); got != "20" {
		t.Fatalf("expected shortest form 20, got %q", got)
	}
	if got := field.Dump(100.5); got != "100.5" {
		t.Fatalf("expected 100.5, got %q", got)
	}
}

func TestFieldDumpNil(t *testing.T) {
	if got := StringField("Name", "").Dump(nil); got != "" {
		t.Fatalf("expected nil to dump empty, got %q", got)
	}
}

func TestOpaqueFieldPassesThrough(t *testing.T) {
	field := OpaqueField("Text")
	value, err := field.Parse(" raw, text ")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if value != " raw, text " {
		t.Fatalf("expected opaque text to pass through, got %q", value)
	}
}

func TestTimecodeParse(t *testing.T) {
	span, err := ParseTimecode("1:02:03.45")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := time.Hour + 2*time.Minute + 3*time.Second + 45*centisecond
	if span != want {
		t.Fatalf("expected %v, got %v", want, span)
	}
	if got := FormatTimecode(span); got != "1:02:03.45" {
		t.Fatalf("expected round trip 1:02:03.45, got %q", got)
	}
}

func TestTimecodeTruncatesSubCentiseconds(t *testing.T) {
	span := time.Second + 999*time.Microsecond
	if got := FormatTimecode(span); got != "0:00:01.00" {
		t.Fatalf("expected truncation, got %q", got)
	}
}

func TestTimecodeNegative(t *testing.T) {
	span, err := ParseTimecode("-0:00:01.50")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if span != -(time.Second + 50*centisecond) {
		t.Fatalf("unexpected span %v", span)
	}
	if got := FormatTimecode(span); got != "-0:00:01.50" {
		t.Fatalf("expected -0:00:01.50, got %q", got)
	}
}

func TestTimecodeMalformed(t *testing.T) {
	for _, text := range []string{"", "1:02", "1:xx:03.00", "12:34"} {
		if _, err := ParseTimecode(text); !errors.Is(err, ErrTimecodeFormat) {
			t.Fatalf("expected ErrTimecodeFormat for %q, got %v", text, err)
		}
	}
}

func TestColorParse(t *testing.T) {
	color, err := ParseColor("&H00000000")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if color != (Color{}) {
		t.Fatalf("expected zero channels, got %+v", color)
	}

	color, err = ParseColor("&HDDCCBBAA")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := Color{R: 0xAA, G: 0xBB, B: 0xCC, A: 0xDD}
	if color != want {
		t.Fatalf("expected %+v, got %+v", want, color)
	}
	if got := color.String(); got != "&HDDCCBBAA" {
		t.Fatalf("expected round trip &HDDCCBBAA, got %q", got)
	}
}

func TestColorUint32Packing(t *testing.T) {
	color := Color{R: 0xAA, G: 0xBB, B: 0xCC, A: 0xDD}
	packed := color.Uint32()
	if packed != 0xAABBCCDD {
		t.Fatalf("expected 0xAABBCCDD, got 0x%08X", packed)
	}
	if got := ColorFromUint32(packed); got != color {
		t.Fatalf("expected unpack round trip, got %+v", got)
	}
}

func TestColorMalformed(t *testing.T) {
	for _, text := range []string{"", "FFFFFF00", "&HZZ000000", "&HFFF"} {
		if _, err := ParseColor(text); !errors.Is(err, ErrColorFormat) {
			t.Fatalf("expected ErrColorFormat for %q, got %v", text, err)
		}
	}
}
