package catalog

import (
	"path/filepath"
	"strings"
	"time"

	"substation/internal/document"
	"substation/internal/tags"
)

// Item is one indexed script.
type Item struct {
	ID            int64
	UUID          string
	Path          string
	Title         string
	ScriptType    string
	PlayResX      int
	PlayResY      int
	StyleCount    int
	EventCount    int
	LastEvent     time.Duration
	FirstDialogue string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Summarize builds a catalog item from a parsed script. The title falls
// back to the file name when the script info block does not carry one.
func Summarize(path string, doc *document.Document) *Item {
	info := doc.Info()

	title := strings.TrimSpace(info.GetString("Title"))
	if title == "" {
		base := filepath.Base(path)
		title = strings.TrimSuffix(base, filepath.Ext(base))
	}

	var last time.Duration
	events := 0
	for _, line := range doc.Events().Lines {
		events++
		if end := line.GetTimecode("End"); end > last {
			last = end
		}
	}

	styles := len(doc.Styles().Lines)
	if ssa, ok := doc.Section(document.StyleSSAHeader); ok {
		if records, isRecords := ssa.(*document.RecordSection); isRecords {
			styles += len(records.Lines)
		}
	}

	return &Item{
		Path:          path,
		Title:         title,
		ScriptType:    info.GetString("ScriptType"),
		PlayResX:      info.GetInt("PlayResX"),
		PlayResY:      info.GetInt("PlayResY"),
		StyleCount:    styles,
		EventCount:    events,
		LastEvent:     last,
		FirstDialogue: FirstDialogue(doc),
	}
}

// FirstDialogue returns the plain text of the first dialogue event, with
// override tags and drawing spans stripped. Used for listings.
func FirstDialogue(doc *document.Document) string {
	for _, line := range doc.Events().Lines {
		if !strings.EqualFold(line.Tag, "Dialogue") {
			continue
		}
		if text := strings.TrimSpace(tags.PlainText(line.GetString("Text"))); text != "" {
			return text
		}
	}
	return ""
}
