// Package testsupport provides shared helpers for building test
// configurations and sample subtitle scripts.
package testsupport

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"substation/internal/config"
)

// NewConfig produces a config whose catalog lives in a unique temp
// directory per test.
func NewConfig(t testing.TB) *config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.Catalog.Path = filepath.Join(t.TempDir(), "catalog.db")
	return &cfg
}

// SampleScript returns a small, well-formed script with one style and the
// given dialogue lines.
func SampleScript(dialogue ...string) string {
	var b strings.Builder
	b.WriteString("[Script Info]\nTitle: Sample\nScriptType: v4.00+\nPlayResX: 1280\nPlayResY: 720\n\n")
	b.WriteString("[V4+ Styles]\nFormat: Name, Fontname, Fontsize, PrimaryColour, SecondaryColour, OutlineColour, BackColour, Bold, Italic, Underline, StrikeOut, ScaleX, ScaleY, Spacing, Angle, BorderStyle, Outline, Shadow, Alignment, MarginL, MarginR, MarginV, Encoding\n")
	b.WriteString("Style: Default,Arial,20,&H00FFFFFF,&H000000FF,&H00000000,&H00000000,0,0,0,0,100,100,0,0,1,2,2,2,10,10,10,1\n\n")
	b.WriteString("[Events]\nFormat: Layer, Start, End, Style, Name, MarginL, MarginR, MarginV, Effect, Text\n")
	for i, text := range dialogue {
		start := i * 2
		b.WriteString("Dialogue: 0,")
		b.WriteString(timecode(start))
		b.WriteString(",")
		b.WriteString(timecode(start + 1))
		b.WriteString(",Default,,0,0,0,,")
		b.WriteString(text)
		b.WriteString("\n")
	}
	return b.String()
}

func timecode(seconds int) string {
	return fmt.Sprintf("0:%02d:%02d.00", seconds/60, seconds%60)
}

// WriteScript writes a script file into dir and returns its path.
func WriteScript(t testing.TB, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write script %s: %v", name, err)
	}
	return path
}
