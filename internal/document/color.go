package document

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is an RGBA color as used by style and override color fields. The
// script text form is "&H" followed by eight hex digits ordered alpha,
// blue, green, red from the most significant pair down.
type Color struct {
	R, G, B, A uint8
}

// Common style defaults.
var (
	White = Color{R: 255, G: 255, B: 255}
	Red   = Color{R: 255}
	Black = Color{}
)

// ParseColor decodes the &HAABBGGRR text form.
func ParseColor(text string) (Color, error) {
	trimmed := strings.TrimSpace(text)
	if len(trimmed) != 10 || !strings.HasPrefix(trimmed, "&H") {
		return Color{}, fmt.Errorf("%w: %q", ErrColorFormat, text)
	}
	packed, err := strconv.ParseUint(trimmed[2:], 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q", ErrColorFormat, text)
	}
	return Color{
		A: uint8(packed >> 24),
		B: uint8(packed >> 16),
		G: uint8(packed >> 8),
		R: uint8(packed),
	}, nil
}

// ColorFromUint32 unpacks a color stored as red, green, blue, alpha from
// the most significant byte down.
func ColorFromUint32(packed uint32) Color {
	return Color{
		R: uint8(packed >> 24),
		G: uint8(packed >> 16),
		B: uint8(packed >> 8),
		A: uint8(packed),
	}
}

// Uint32 packs the channels as red, green, blue, alpha from the most
// significant byte down.
func (c Color) Uint32() uint32 {
	return uint32(c.R)<<24 | uint32(c.G)<<16 | uint32(c.B)<<8 | uint32(c.A)
}

// String renders the canonical &HAABBGGRR form.
func (c Color) String() string {
	return fmt.Sprintf("&H%02X%02X%02X%02X", c.A, c.B, c.G, c.R)
}

// colorCodec adapts Color to the field Codec interface.
type colorCodec struct{}

func (colorCodec) Decode(text string) (any, error) {
	return ParseColor(text)
}

func (colorCodec) Encode(value any) string {
	color, ok := value.(Color)
	if !ok {
		return ""
	}
	return color.String()
}
