// Package tags scans the inline override mini-language embedded in
// dialogue text: plain runs interleaved with {...} tag blocks, backslash
// escapes, and the raw drawing spans bounded by \p tags.
package tags

import "strings"

// Kind discriminates scanned segments.
type Kind int

const (
	// Text is a plain run of dialogue characters.
	Text Kind = iota
	// Override is one {...} block; Value holds the inner text verbatim.
	Override
)

// Segment is one scanned piece of a dialogue line.
type Segment struct {
	Kind  Kind
	Value string
}

// Parse splits dialogue text into plain runs and override blocks. A
// backslash before { yields a literal brace; any other escaped character
// keeps its backslash so markers like \N pass through. A { opens a block
// collected verbatim until the next unescaped }; an unterminated block
// consumes the rest of the input. A trailing lone backslash is emitted
// literally.
func Parse(text string) []Segment {
	var segments []Segment
	var run strings.Builder

	flush := func() {
		if run.Len() > 0 {
			segments = append(segments, Segment{Kind: Text, Value: run.String()})
			run.Reset()
		}
	}

	escaped := false
	for i := 0; i < len(text); i++ {
		c := text[i]
		if escaped {
			if c != '{' {
				run.WriteByte('\\')
			}
			run.WriteByte(c)
			escaped = false
			continue
		}
		switch c {
		case '\\':
			escaped = true
		case '{':
			flush()
			body, next := scanBlock(text, i+1)
			segments = append(segments, Segment{Kind: Override, Value: body})
			i = next
		default:
			run.WriteByte(c)
		}
	}
	if escaped {
		run.WriteByte('\\')
	}
	flush()
	return segments
}

// scanBlock collects a block body starting at from and returns it along
// with the index of the closing brace (or the last index when the block is
// unterminated). Escaped closing braces stay part of the body.
func scanBlock(text string, from int) (string, int) {
	var body strings.Builder
	escaped := false
	for i := from; i < len(text); i++ {
		c := text[i]
		if escaped {
			body.WriteByte(c)
			escaped = false
			continue
		}
		switch c {
		case '\\':
			escaped = true
			body.WriteByte(c)
		case '}':
			return body.String(), i
		default:
			body.WriteByte(c)
		}
	}
	return body.String(), len(text) - 1
}

// drawingScale reports the scale of the last \p tag in an override body,
// if any. A digit must follow \p directly, which keeps \pos and \pbo from
// matching.
func drawingScale(body string) (int, bool) {
	scale, found := 0, false
	for i := 0; i+2 < len(body); i++ {
		if body[i] != '\\' || body[i+1] != 'p' {
			continue
		}
		j := i + 2
		if body[j] < '0' || body[j] > '9' {
			continue
		}
		value := 0
		for j < len(body) && body[j] >= '0' && body[j] <= '9' {
			value = value*10 + int(body[j]-'0')
			j++
		}
		scale, found = value, true
	}
	return scale, found
}

// PlainText returns the dialogue text with every override block removed.
// An override enabling drawing mode suppresses everything, the marker
// included, until an override disables it again.
func PlainText(text string) string {
	var b strings.Builder
	drawing := false
	for _, segment := range Parse(text) {
		switch segment.Kind {
		case Override:
			if scale, ok := drawingScale(segment.Value); ok {
				drawing = scale != 0
			}
		case Text:
			if !drawing {
				b.WriteString(segment.Value)
			}
		}
	}
	return b.String()
}
