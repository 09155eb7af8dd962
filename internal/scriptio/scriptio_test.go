package scriptio

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"substation/internal/document"
)

const sampleScript = "[Script Info]\nTitle: IO Test\n\n[Events]\nFormat: Layer, Start, End, Style, Name, MarginL, MarginR, MarginV, Effect, Text\nDialogue: 0,0:00:01.00,0:00:02.00,Default,,0,0,0,,hello\n"

func TestWriteUTF8SigEmitsBOM(t *testing.T) {
	doc, err := document.ParseString(sampleScript)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	var buf bytes.Buffer
	if err := Write(&buf, doc, DefaultEncoding); err != nil {
		t.Fatalf("write: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte{0xEF, 0xBB, 0xBF}) {
		t.Fatalf("expected UTF-8 BOM prefix, got % X", buf.Bytes()[:4])
	}

	// Reading with the same convention strips the BOM again.
	again, err := Read(bytes.NewReader(buf.Bytes()), DefaultEncoding)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if got := again.Info().GetString("Title"); got != "IO Test" {
		t.Fatalf("expected title to survive, got %q", got)
	}
}

func TestReadPlainUTF8RejectsBOM(t *testing.T) {
	data := append([]byte{0xEF, 0xBB, 0xBF}, []byte(sampleScript)...)
	_, err := Read(bytes.NewReader(data), "utf-8")
	if !errors.Is(err, document.ErrBOMDetected) {
		t.Fatalf("expected ErrBOMDetected, got %v", err)
	}
}

func TestReadUTF16LE(t *testing.T) {
	var buf bytes.Buffer
	buf.Write([]byte{0xFF, 0xFE})
	for _, r := range sampleScript {
		buf.WriteByte(byte(r))
		buf.WriteByte(byte(r >> 8))
	}

	doc, err := Read(&buf, "utf-16le")
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if got := doc.Info().GetString("Title"); got != "IO Test" {
		t.Fatalf("expected title, got %q", got)
	}
}

func TestLoadAndSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sample.ass")
	if err := os.WriteFile(path, []byte(sampleScript), 0o644); err != nil {
		t.Fatalf("write sample: %v", err)
	}

	doc, err := Load(path, "utf-8")
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	out := filepath.Join(dir, "out.ass")
	if err := Save(out, doc, DefaultEncoding); err != nil {
		t.Fatalf("save: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !bytes.HasPrefix(data, []byte{0xEF, 0xBB, 0xBF}) {
		t.Fatal("expected saved file to carry a BOM")
	}
	if !strings.Contains(string(data), "Dialogue: 0,0:00:01.00,0:00:02.00,Default,,0,0,0,,hello") {
		t.Fatalf("expected dialogue in output, got %q", string(data))
	}
}

func TestUnsupportedEncoding(t *testing.T) {
	if _, err := Read(strings.NewReader(sampleScript), "klingon"); err == nil {
		t.Fatal("expected error for unsupported encoding")
	}
}
