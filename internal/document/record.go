package document

import (
	"fmt"
	"strings"
	"time"
)

// LineType is a record archetype: a type tag (the text before the colon in
// dump form) and an ordered list of field descriptors. The field list of a
// derived type is the parent's list with the type's own descriptors
// appended; declaration order is append-only and fixed at definition time.
type LineType struct {
	Tag    string
	Fields []Field

	byName map[string]Field
}

// NewLineType defines a record archetype. A non-nil parent contributes its
// field list first, in order.
func NewLineType(tag string, parent *LineType, fields ...Field) *LineType {
	t := &LineType{Tag: tag}
	if parent != nil {
		t.Fields = append(t.Fields, parent.Fields...)
	}
	t.Fields = append(t.Fields, fields...)
	t.byName = make(map[string]Field, len(t.Fields))
	for _, field := range t.Fields {
		t.byName[foldKey(field.Name)] = field
	}
	return t
}

// FieldOrder returns the declared field names in declaration order.
func (t *LineType) FieldOrder() []string {
	order := make([]string, len(t.Fields))
	for i, field := range t.Fields {
		order[i] = field.Name
	}
	return order
}

func (t *LineType) descriptor(name string) (Field, bool) {
	field, ok := t.byName[foldKey(name)]
	return field, ok
}

// Line is one concrete record. Its tag is fixed at construction or carried
// from the parsed text for kinds the section did not recognize. Field
// values not declared by the type are kept as opaque text so unknown
// extensions survive a round trip.
type Line struct {
	Tag  string
	Type *LineType

	values *Map[any]
}

// New constructs an empty record of this type with every declared field at
// its default value.
func (t *LineType) New() *Line {
	line := &Line{Tag: t.Tag, Type: t, values: &Map[any]{}}
	for _, field := range t.Fields {
		line.values.Set(field.Name, field.Default)
	}
	return line
}

// ParseLine decodes one comma-delimited record body against the given
// field order. The split is limited to len(order)-1 cuts so the final
// field keeps any embedded commas verbatim. The tag is recorded on the
// resulting line as written in the source.
func (t *LineType) ParseLine(tag, text string, order []string) (*Line, error) {
	if len(order) == 0 {
		return nil, fmt.Errorf("%w: empty field order", ErrFieldCount)
	}
	parts := strings.SplitN(text, ",", len(order))
	if len(parts) != len(order) {
		return nil, fmt.Errorf("%w: got %d fields, format declares %d", ErrFieldCount, len(parts), len(order))
	}

	line := &Line{Tag: tag, Type: t, values: &Map[any]{}}
	for i, name := range order {
		if field, ok := t.descriptor(name); ok {
			value, err := field.Parse(parts[i])
			if err != nil {
				return nil, err
			}
			line.values.Set(name, value)
			continue
		}
		line.values.Set(name, parts[i])
	}
	return line, nil
}

// Get returns the value stored under name.
func (l *Line) Get(name string) (any, bool) {
	return l.values.Get(name)
}

// Set stores a value under name.
func (l *Line) Set(name string, value any) {
	l.values.Set(name, value)
}

// GetString returns the string field value, or "" when absent or not a
// string.
func (l *Line) GetString(name string) string {
	value, _ := l.Get(name)
	text, _ := value.(string)
	return text
}

// GetInt returns the integer field value, or 0.
func (l *Line) GetInt(name string) int {
	value, _ := l.Get(name)
	number, _ := value.(int)
	return number
}

// GetFloat returns the real field value, or 0.
func (l *Line) GetFloat(name string) float64 {
	value, _ := l.Get(name)
	number, _ := value.(float64)
	return number
}

// GetBool returns the boolean field value, or false.
func (l *Line) GetBool(name string) bool {
	value, _ := l.Get(name)
	flag, _ := value.(bool)
	return flag
}

// GetTimecode returns the timestamp field value, or 0.
func (l *Line) GetTimecode(name string) time.Duration {
	value, _ := l.Get(name)
	span, _ := value.(time.Duration)
	return span
}

// GetColor returns the color field value, or the zero Color.
func (l *Line) GetColor(name string) Color {
	value, _ := l.Get(name)
	color, _ := value.(Color)
	return color
}

func (l *Line) dumpField(name string) string {
	if field, ok := l.Type.descriptor(name); ok {
		value, set := l.values.Get(name)
		if !set {
			value = field.Default
		}
		return field.Dump(value)
	}
	value, _ := l.values.Get(name)
	text, _ := value.(string)
	return text
}

// Dump renders the record body in the given field order, defaulting to the
// type's declaration order.
func (l *Line) Dump(order []string) string {
	if order == nil {
		order = l.Type.FieldOrder()
	}
	parts := make([]string, len(order))
	for i, name := range order {
		parts[i] = l.dumpField(name)
	}
	return strings.Join(parts, ",")
}

// DumpWithTag renders the full content line, type tag first.
func (l *Line) DumpWithTag(order []string) string {
	return l.Tag + ": " + l.Dump(order)
}
