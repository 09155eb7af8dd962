package document

import (
	"errors"
	"testing"
	"time"
)

func TestParseLineArityMismatch(t *testing.T) {
	order := []string{"A", "B", "C"}
	lineType := NewLineType("Test", nil, OpaqueField("A"), OpaqueField("B"), OpaqueField("C"))

	if _, err := lineType.ParseLine("Test", "a,b", order); !errors.Is(err, ErrFieldCount) {
		t.Fatalf("expected ErrFieldCount for short line, got %v", err)
	}
}

func TestParseLineLastFieldKeepsCommas(t *testing.T) {
	order := []string{"A", "B", "C"}
	lineType := NewLineType("Test", nil, OpaqueField("A"), OpaqueField("B"), OpaqueField("C"))

	line, err := lineType.ParseLine("Test", "a,b,c,d", order)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got := line.GetString("C"); got != "c,d" {
		t.Fatalf("expected last field to keep embedded comma, got %q", got)
	}
}

func TestParseLineUndeclaredFieldStoredOpaque(t *testing.T) {
	line, err := DialogueType.ParseLine("Dialogue",
		"0,0:00:00.00,0:00:01.00,Default,,0,0,0,,extra,hi",
		[]string{"Layer", "Start", "End", "Style", "Name", "MarginL", "MarginR", "MarginV", "Effect", "FutureField", "Text"},
	)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got := line.GetString("FutureField"); got != "extra" {
		t.Fatalf("expected undeclared field kept as text, got %q", got)
	}
	if got := line.GetString("Text"); got != "hi" {
		t.Fatalf("expected text field, got %q", got)
	}
}

func TestLineTypeInheritanceConcatenatesFields(t *testing.T) {
	order := DialogueType.FieldOrder()
	want := []string{"Layer", "Start", "End", "Style", "Name", "MarginL", "MarginR", "MarginV", "Effect", "Text"}
	if len(order) != len(want) {
		t.Fatalf("expected %d fields, got %v", len(want), order)
	}
	for i, name := range want {
		if order[i] != name {
			t.Fatalf("field %d: expected %q, got %q", i, name, order[i])
		}
	}
	if DialogueType.Tag != "Dialogue" || CommentType.Tag != "Comment" {
		t.Fatalf("unexpected tags %q/%q", DialogueType.Tag, CommentType.Tag)
	}
}

func TestNewLinePopulatesDefaults(t *testing.T) {
	style := StyleType.New()
	if got := style.GetString("Fontname"); got != "Arial" {
		t.Fatalf("expected default fontname, got %q", got)
	}
	if got := style.GetColor("PrimaryColour"); got != White {
		t.Fatalf("expected white primary colour, got %+v", got)
	}
	if got := style.GetInt("MarginL"); got != 10 {
		t.Fatalf("expected default margin 10, got %d", got)
	}
}

func TestLineDumpWithTag(t *testing.T) {
	line := DialogueType.New()
	line.Set("Start", 90*time.Second)
	line.Set("End", 92*time.Second+50*centisecond)
	line.Set("Text", "Hello, world")

	want := "Dialogue: 0,0:01:30.00,0:01:32.50,Default,,0,0,0,,Hello, world"
	if got := line.DumpWithTag(nil); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestLineDumpMissingFieldUsesDefault(t *testing.T) {
	line, err := StyleType.ParseLine("Style", "Narrator,Georgia", []string{"Name", "Fontname"})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	// Fontsize was never parsed; the declared default fills the slot.
	if got := line.Dump([]string{"Name", "Fontname", "Fontsize"}); got != "Narrator,Georgia,20" {
		t.Fatalf("unexpected dump %q", got)
	}
}
