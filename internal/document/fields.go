package document

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Codec converts a custom field value to and from its script text form.
// Color and timecode fields use codecs; future value types plug in the
// same way.
type Codec interface {
	Decode(text string) (any, error)
	Encode(value any) string
}

// FieldType selects the textual codec for a field descriptor.
type FieldType int

const (
	// TypeOpaque passes text through unchanged in both directions.
	TypeOpaque FieldType = iota
	TypeString
	TypeInt
	TypeFloat
	TypeBool
	TypeCustom
)

// Field describes one named slot of a record or field section: its name as
// written in the script, its type, and its default value. A record type's
// field order is fixed by the position of each descriptor in the type's
// declaration list.
type Field struct {
	Name    string
	Type    FieldType
	Codec   Codec
	Default any
}

// StringField declares a text field.
func StringField(name, fallback string) Field {
	return Field{Name: name, Type: TypeString, Default: fallback}
}

// IntField declares an integer field.
func IntField(name string, fallback int) Field {
	return Field{Name: name, Type: TypeInt, Default: fallback}
}

// FloatField declares a real-number field.
func FloatField(name string, fallback float64) Field {
	return Field{Name: name, Type: TypeFloat, Default: fallback}
}

// BoolField declares a boolean field. The script encoding is -1 for true
// and 0 for false; that exact encoding is format-mandated.
func BoolField(name string, fallback bool) Field {
	return Field{Name: name, Type: TypeBool, Default: fallback}
}

// TimecodeField declares an H:MM:SS.CC timestamp field.
func TimecodeField(name string) Field {
	return Field{Name: name, Type: TypeCustom, Codec: timecodeCodec{}, Default: time.Duration(0)}
}

// ColorField declares an &HAABBGGRR color field.
func ColorField(name string, fallback Color) Field {
	return Field{Name: name, Type: TypeCustom, Codec: colorCodec{}, Default: fallback}
}

// OpaqueField declares an untyped field whose text is kept verbatim.
func OpaqueField(name string) Field {
	return Field{Name: name, Type: TypeOpaque, Default: ""}
}

// Parse decodes the script text form of a single field value.
func (f Field) Parse(text string) (any, error) {
	switch f.Type {
	case TypeOpaque, TypeString:
		return text, nil
	case TypeInt:
		value, err := strconv.Atoi(strings.TrimSpace(text))
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", f.Name, err)
		}
		return value, nil
	case TypeFloat:
		value, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", f.Name, err)
		}
		return value, nil
	case TypeBool:
		value, err := strconv.Atoi(strings.TrimSpace(text))
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", f.Name, err)
		}
		return value != 0, nil
	case TypeCustom:
		value, err := f.Codec.Decode(text)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", f.Name, err)
		}
		return value, nil
	default:
		return text, nil
	}
}

// Dump encodes a field value back to its script text form. A nil value
// dumps to empty text.
func (f Field) Dump(value any) string {
	if value == nil {
		return ""
	}
	if f.Type == TypeCustom && f.Codec != nil {
		return f.Codec.Encode(value)
	}
	switch v := value.(type) {
	case bool:
		if v {
			return "-1"
		}
		return "0"
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case int:
		return strconv.Itoa(v)
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}
