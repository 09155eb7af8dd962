package document

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Well-known section headers.
const (
	ScriptInfoHeader     = "Script Info"
	AegisubGarbageHeader = "Aegisub Project Garbage"
	StyleSSAHeader       = "V4 Styles"
	StyleASSHeader       = "V4+ Styles"
	EventsHeader         = "Events"
)

// defaultHeaders are the sections every document carries even when the
// source text omits them.
var defaultHeaders = []string{ScriptInfoHeader, StyleASSHeader, EventsHeader}

// newSection instantiates the section shape registered for a header.
// Headers outside the registry get a generic record section.
func newSection(header string) Section {
	switch foldKey(header) {
	case foldKey(ScriptInfoHeader):
		return NewScriptInfoSection(header)
	case foldKey(AegisubGarbageHeader):
		return NewFieldSection(header)
	case foldKey(StyleSSAHeader), foldKey(StyleASSHeader):
		return NewStylesSection(header)
	case foldKey(EventsHeader):
		return NewEventsSection(header)
	default:
		return NewGenericSection(header)
	}
}

// Document is an ordered, case-insensitive collection of sections. The
// script info, V4+ styles, and events sections always exist.
type Document struct {
	Sections *Map[Section]
}

// New creates an empty document holding the default sections in their
// default order.
func New() *Document {
	doc := &Document{Sections: &Map[Section]{}}
	for _, header := range defaultHeaders {
		doc.Sections.Set(header, newSection(header))
	}
	return doc
}

// Info returns the script info section.
func (d *Document) Info() *FieldSection {
	section, _ := d.Sections.Get(ScriptInfoHeader)
	info, _ := section.(*FieldSection)
	return info
}

// Styles returns the V4+ styles section.
func (d *Document) Styles() *RecordSection {
	section, _ := d.Sections.Get(StyleASSHeader)
	styles, _ := section.(*RecordSection)
	return styles
}

// Events returns the events section.
func (d *Document) Events() *RecordSection {
	section, _ := d.Sections.Get(EventsHeader)
	events, _ := section.(*RecordSection)
	return events
}

// Section returns the section stored under the given header.
func (d *Document) Section(header string) (Section, bool) {
	return d.Sections.Get(header)
}

// SetSection stores a section under the given header, replacing any
// existing one while keeping its position.
func (d *Document) SetSection(header string, section Section) {
	d.Sections.Set(header, section)
}

var bomSequences = []string{"\xef\xbb\xbf", "\xff\xfe", "\xfe\xff"}

// Parse reads a script from r. Input must already be decoded text without
// a byte order mark; blank lines and ;-comments are skipped, and content
// lines lacking a colon are tolerated and dropped. Sections appear in the
// document in encounter order, with never-seen default sections appended
// afterward in their default order.
func Parse(r io.Reader) (*Document, error) {
	doc := New()

	var current Section
	seen := &Map[Section]{}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		raw := scanner.Text()
		lineNo++
		if lineNo == 1 {
			for _, seq := range bomSequences {
				if strings.HasPrefix(raw, seq) {
					return nil, ErrBOMDetected
				}
			}
		}

		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, ";") {
			continue
		}

		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			header := line[1 : len(line)-1]
			// Reuse a previously seen section or a pre-created default
			// when the header matches one, so content accumulates.
			if existing, ok := seen.Get(header); ok {
				current = existing
			} else if existing, ok := doc.Sections.Get(header); ok {
				current = existing
			} else {
				current = newSection(header)
			}
			seen.Set(header, current)
			continue
		}

		if current == nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, ErrContentOutsideSection)
		}

		kind, rest, ok := strings.Cut(line, ":")
		if !ok {
			// Stray content without a separator is legacy noise.
			continue
		}
		if err := current.AddLine(kind, strings.TrimLeft(rest, " \t")); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}

	// Default sections the source never mentioned keep their default
	// order after everything that was encountered.
	doc.Sections.Each(func(header string, section Section) bool {
		if !seen.Contains(header) {
			seen.Set(header, section)
		}
		return true
	})
	doc.Sections = seen

	return doc, nil
}

// ParseString parses a script held in memory.
func ParseString(text string) (*Document, error) {
	return Parse(strings.NewReader(text))
}

// Dump renders the document as lines, each section followed by one blank
// separator line.
func (d *Document) Dump() []string {
	var out []string
	d.Sections.Each(func(_ string, section Section) bool {
		out = append(out, section.Dump()...)
		out = append(out, "")
		return true
	})
	return out
}

// WriteTo writes the rendered document to w.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	var written int64
	var failure error
	d.Sections.Each(func(_ string, section Section) bool {
		n, err := io.WriteString(w, strings.Join(section.Dump(), "\n")+"\n\n")
		written += int64(n)
		if err != nil {
			failure = err
			return false
		}
		return true
	})
	return written, failure
}

// DumpString renders the document as a single string.
func (d *Document) DumpString() string {
	var b strings.Builder
	_, _ = d.WriteTo(&b)
	return b.String()
}
