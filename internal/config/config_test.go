package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.normalize(); err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
	if cfg.Output.Encoding != "utf-8-sig" {
		t.Fatalf("unexpected default encoding %q", cfg.Output.Encoding)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, _, exists, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if exists {
		t.Fatal("expected missing config to be reported")
	}
	if len(cfg.Catalog.Extensions) != 2 {
		t.Fatalf("expected default extensions, got %v", cfg.Catalog.Extensions)
	}
}

func TestLoadParsesAndNormalizes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := strings.Join([]string{
		`log_level = "DEBUG"`,
		`[catalog]`,
		`path = "` + filepath.Join(dir, "catalog.db") + `"`,
		`extensions = ["ASS", ".ssa"]`,
		`[output]`,
		`encoding = "UTF-8"`,
	}, "\n")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("expected config at %s to load, got %s (exists=%v)", path, resolved, exists)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("expected lowered log level, got %q", cfg.LogLevel)
	}
	if cfg.Output.Encoding != "utf-8" {
		t.Fatalf("expected lowered encoding, got %q", cfg.Output.Encoding)
	}
	if cfg.Catalog.Extensions[0] != ".ass" {
		t.Fatalf("expected dotted lowercase extension, got %v", cfg.Catalog.Extensions)
	}
}

func TestLoadRejectsBadLogFormat(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte(`log_format = "xml"`), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, _, _, err := Load(path); err == nil {
		t.Fatal("expected validation error for bad log format")
	}
}

func TestSampleConfigParses(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte(SampleConfig()), 0o644); err != nil {
		t.Fatalf("write sample: %v", err)
	}
	cfg, _, _, err := Load(path)
	if err != nil {
		t.Fatalf("sample config must load: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("sample config must validate: %v", err)
	}
}
