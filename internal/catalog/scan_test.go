package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

const scanScript = "[Script Info]\nTitle: Scanned\n\n[Events]\nFormat: Layer, Start, End, Style, Name, MarginL, MarginR, MarginV, Effect, Text\nDialogue: 0,0:00:01.00,0:00:02.00,Default,,0,0,0,,hi\n"

func TestScanIndexesScriptsAndSkipsBroken(t *testing.T) {
	store, cfg := newTestStore(t)
	root := t.TempDir()

	writeFile := func(name, content string) {
		t.Helper()
		path := filepath.Join(root, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}

	writeFile("good.ass", scanScript)
	writeFile(filepath.Join("nested", "also.ssa"), scanScript)
	writeFile("broken.ass", "Dialogue: content before any section\n")
	writeFile("notes.txt", "not a script")

	result, err := store.Scan(context.Background(), cfg, root, "", nil)
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if result.Indexed != 2 {
		t.Fatalf("expected 2 indexed scripts, got %d", result.Indexed)
	}
	if len(result.Skipped) != 1 || filepath.Base(result.Skipped[0]) != "broken.ass" {
		t.Fatalf("expected broken.ass to be skipped, got %v", result.Skipped)
	}

	items, err := store.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 catalog entries, got %d", len(items))
	}
	for _, item := range items {
		if item.Title != "Scanned" {
			t.Fatalf("expected parsed title, got %+v", item)
		}
		if item.FirstDialogue != "hi" {
			t.Fatalf("expected first dialogue to be stored, got %+v", item)
		}
	}
}

func TestScanHonorsRequestedEncoding(t *testing.T) {
	store, cfg := newTestStore(t)
	root := t.TempDir()

	// UTF-16LE with BOM: every script character fits in one code unit.
	encoded := []byte{0xff, 0xfe}
	for _, r := range scanScript {
		encoded = append(encoded, byte(r), byte(r>>8))
	}
	if err := os.WriteFile(filepath.Join(root, "wide.ass"), encoded, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	result, err := store.Scan(context.Background(), cfg, root, "utf-16le", nil)
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if result.Indexed != 1 || len(result.Skipped) != 0 {
		t.Fatalf("expected the utf-16 script to index, got %+v", result)
	}

	item, err := store.GetByPath(context.Background(), mustAbs(t, filepath.Join(root, "wide.ass")))
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if item.Title != "Scanned" {
		t.Fatalf("expected decoded title, got %+v", item)
	}
}

func mustAbs(t *testing.T, path string) string {
	t.Helper()
	abs, err := filepath.Abs(path)
	if err != nil {
		t.Fatalf("abs %s: %v", path, err)
	}
	return abs
}

func TestScanRespectsConfiguredExtensions(t *testing.T) {
	store, cfg := newTestStore(t)
	cfg.Catalog.Extensions = []string{".ssa"}
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "only.ass"), []byte(scanScript), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	result, err := store.Scan(context.Background(), cfg, root, "", nil)
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if result.Indexed != 0 {
		t.Fatalf("expected no matches for .ssa-only scan, got %d", result.Indexed)
	}
}
