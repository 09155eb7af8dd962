package document

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const centisecond = 10 * time.Millisecond

// ParseTimecode decodes the H:MM:SS.CC timestamp form into a signed span.
// Hours carry no fixed width; an optional leading minus negates the span.
func ParseTimecode(text string) (time.Duration, error) {
	trimmed := strings.TrimSpace(text)
	body := trimmed
	negative := false
	if strings.HasPrefix(body, "-") {
		negative = true
		body = body[1:]
	}

	parts := strings.Split(body, ":")
	if len(parts) != 3 {
		return 0, fmt.Errorf("%w: %q", ErrTimecodeFormat, text)
	}
	seconds, fraction, hasFraction := strings.Cut(parts[2], ".")

	hours, errH := strconv.Atoi(parts[0])
	minutes, errM := strconv.Atoi(parts[1])
	secs, errS := strconv.Atoi(seconds)
	if errH != nil || errM != nil || errS != nil || hours < 0 || minutes < 0 || secs < 0 {
		return 0, fmt.Errorf("%w: %q", ErrTimecodeFormat, text)
	}

	centis := 0
	if hasFraction {
		// Centisecond resolution: extra fractional digits are truncated.
		digits := fraction
		if len(digits) > 2 {
			digits = digits[:2]
		}
		for len(digits) < 2 {
			digits += "0"
		}
		parsed, err := strconv.Atoi(digits)
		if err != nil || parsed < 0 {
			return 0, fmt.Errorf("%w: %q", ErrTimecodeFormat, text)
		}
		centis = parsed
	}

	span := time.Duration(hours)*time.Hour +
		time.Duration(minutes)*time.Minute +
		time.Duration(secs)*time.Second +
		time.Duration(centis)*centisecond
	if negative {
		span = -span
	}
	return span, nil
}

// FormatTimecode renders a span as H:MM:SS.CC, truncating sub-centisecond
// precision rather than rounding.
func FormatTimecode(span time.Duration) string {
	sign := ""
	if span < 0 {
		sign = "-"
		span = -span
	}
	total := int64(span / centisecond)
	hours := total / 360000
	minutes := total / 6000 % 60
	seconds := total / 100 % 60
	centis := total % 100
	return fmt.Sprintf("%s%d:%02d:%02d.%02d", sign, hours, minutes, seconds, centis)
}

// timecodeCodec adapts timecodes to the field Codec interface.
type timecodeCodec struct{}

func (timecodeCodec) Decode(text string) (any, error) {
	return ParseTimecode(text)
}

func (timecodeCodec) Encode(value any) string {
	span, ok := value.(time.Duration)
	if !ok {
		return ""
	}
	return FormatTimecode(span)
}
