package document

import (
	"fmt"
	"strings"
)

// Section is one [Header]-delimited block of a script.
type Section interface {
	// Name returns the header text without brackets, as first seen.
	Name() string
	// AddLine routes one content line, already split at the first colon.
	AddLine(kind, text string) error
	// Dump renders the header line followed by the section body.
	Dump() []string
}

// RecordSection holds an ordered sequence of typed records, such as the
// styles or events block. A Format directive declares the field order used
// to decode lines that follow it; lines parsed before a redeclaration keep
// the order that was active when they were read.
type RecordSection struct {
	name  string
	kinds *Map[*LineType]
	order []string
	Lines []*Line
}

// NewStylesSection builds a section recognizing Style lines.
func NewStylesSection(name string) *RecordSection {
	kinds, _ := NewMap(Pair[*LineType]{Key: StyleType.Tag, Value: StyleType})
	return &RecordSection{name: name, kinds: kinds, order: StyleType.FieldOrder()}
}

// NewEventsSection builds a section recognizing the event line kinds.
func NewEventsSection(name string) *RecordSection {
	kinds, _ := NewMap(
		Pair[*LineType]{Key: DialogueType.Tag, Value: DialogueType},
		Pair[*LineType]{Key: CommentType.Tag, Value: CommentType},
		Pair[*LineType]{Key: PictureType.Tag, Value: PictureType},
		Pair[*LineType]{Key: SoundType.Tag, Value: SoundType},
		Pair[*LineType]{Key: MovieType.Tag, Value: MovieType},
		Pair[*LineType]{Key: CommandType.Tag, Value: CommandType},
	)
	return &RecordSection{name: name, kinds: kinds, order: DialogueType.FieldOrder()}
}

// NewGenericSection builds a section accepting any line kind as an opaque
// record, for headers the document registry does not know.
func NewGenericSection(name string) *RecordSection {
	return &RecordSection{name: name}
}

// Name returns the section header.
func (s *RecordSection) Name() string { return s.name }

// FieldOrder returns the order used to decode and render record bodies:
// the most recent Format declaration, or the section's default. Generic
// sections without a Format directive have none.
func (s *RecordSection) FieldOrder() []string {
	return s.order
}

// AddLine parses one content line into a record, or records a Format
// directive. Unrecognized kinds are an error for a typed section and an
// opaque record for a generic one.
func (s *RecordSection) AddLine(kind, text string) error {
	if strings.EqualFold(kind, "Format") {
		names := strings.Split(text, ",")
		order := make([]string, len(names))
		for i, name := range names {
			order[i] = strings.TrimSpace(name)
		}
		s.order = order
		return nil
	}

	lineType := UnknownType
	if s.kinds != nil {
		known, ok := s.kinds.Get(kind)
		if !ok {
			return fmt.Errorf("%w: %q in section [%s]", ErrUnknownLineKind, kind, s.name)
		}
		lineType = known
	}

	order := s.order
	if order == nil {
		order = lineType.FieldOrder()
	}
	line, err := lineType.ParseLine(kind, text, order)
	if err != nil {
		return fmt.Errorf("section [%s]: %w", s.name, err)
	}
	s.Lines = append(s.Lines, line)
	return nil
}

// Append adds a constructed record to the end of the section.
func (s *RecordSection) Append(line *Line) {
	s.Lines = append(s.Lines, line)
}

// Dump renders the header, the Format directive when a field order is
// established, then every record in sequence order.
func (s *RecordSection) Dump() []string {
	out := make([]string, 0, len(s.Lines)+2)
	out = append(out, "["+s.name+"]")
	if s.order != nil {
		out = append(out, "Format: "+strings.Join(s.order, ", "))
	}
	for _, line := range s.Lines {
		out = append(out, line.DumpWithTag(s.order))
	}
	return out
}

// FieldSection holds ordered name/value fields, such as the script info
// block. Recognized names decode to typed values; anything else is kept as
// raw text.
type FieldSection struct {
	name   string
	typed  map[string]Field
	fields *Map[any]
}

// NewFieldSection builds a field section with no typed keys.
func NewFieldSection(name string) *FieldSection {
	return &FieldSection{name: name, fields: &Map[any]{}}
}

// NewScriptInfoSection builds the script info section with its typed keys.
func NewScriptInfoSection(name string) *FieldSection {
	s := NewFieldSection(name)
	s.typed = make(map[string]Field, len(scriptInfoFields))
	for _, field := range scriptInfoFields {
		s.typed[foldKey(field.Name)] = field
	}
	return s
}

// Name returns the section header.
func (s *FieldSection) Name() string { return s.name }

// AddLine stores one field, decoding it when the name is recognized.
func (s *FieldSection) AddLine(name, text string) error {
	if field, ok := s.typed[foldKey(name)]; ok {
		value, err := field.Parse(text)
		if err != nil {
			return fmt.Errorf("section [%s]: %w", s.name, err)
		}
		s.fields.Set(name, value)
		return nil
	}
	s.fields.Set(name, text)
	return nil
}

// Get returns the value stored under name.
func (s *FieldSection) Get(name string) (any, bool) {
	return s.fields.Get(name)
}

// GetString returns the field as text, using the descriptor's dump form
// for typed values. Absent fields return "".
func (s *FieldSection) GetString(name string) string {
	value, ok := s.fields.Get(name)
	if !ok {
		return ""
	}
	if field, typed := s.typed[foldKey(name)]; typed {
		return field.Dump(value)
	}
	text, _ := value.(string)
	return text
}

// GetInt returns the integer field value, or 0.
func (s *FieldSection) GetInt(name string) int {
	value, _ := s.fields.Get(name)
	number, _ := value.(int)
	return number
}

// Set stores a value under name.
func (s *FieldSection) Set(name string, value any) {
	s.fields.Set(name, value)
}

// Delete removes name and reports whether it was present.
func (s *FieldSection) Delete(name string) bool {
	return s.fields.Delete(name)
}

// Len returns the number of stored fields.
func (s *FieldSection) Len() int { return s.fields.Len() }

// Keys returns the stored field names in insertion order.
func (s *FieldSection) Keys() []string { return s.fields.Keys() }

// Dump renders the header then each field in insertion order.
func (s *FieldSection) Dump() []string {
	out := make([]string, 0, s.fields.Len()+1)
	out = append(out, "["+s.name+"]")
	s.fields.Each(func(name string, value any) bool {
		if field, ok := s.typed[foldKey(name)]; ok {
			out = append(out, name+": "+field.Dump(value))
		} else {
			text, _ := value.(string)
			out = append(out, name+": "+text)
		}
		return true
	})
	return out
}
