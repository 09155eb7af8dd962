// Package scriptio reads and writes subtitle scripts on disk, handling
// text encodings and byte order marks before the document model sees any
// text. The model itself rejects input still carrying a BOM.
package scriptio

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"substation/internal/document"
)

// DefaultEncoding is the conventional encoding for .ass files: UTF-8 with
// a byte order mark, for compatibility with legacy readers.
const DefaultEncoding = "utf-8-sig"

func lookup(name string) (encoding.Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", DefaultEncoding, "utf_8_sig":
		return unicode.UTF8BOM, nil
	case "utf-8", "utf8":
		return unicode.UTF8, nil
	case "utf-16le", "utf16le":
		return unicode.UTF16(unicode.LittleEndian, unicode.UseBOM), nil
	case "utf-16be", "utf16be":
		return unicode.UTF16(unicode.BigEndian, unicode.UseBOM), nil
	case "shift-jis", "shift_jis", "sjis", "cp932":
		return japanese.ShiftJIS, nil
	default:
		return nil, fmt.Errorf("unsupported encoding %q", name)
	}
}

// Read decodes r using the named encoding and parses the script.
func Read(r io.Reader, encodingName string) (*document.Document, error) {
	enc, err := lookup(encodingName)
	if err != nil {
		return nil, err
	}
	doc, err := document.Parse(transform.NewReader(r, enc.NewDecoder()))
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// Load reads and parses the script at path.
func Load(path, encodingName string) (*document.Document, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open script: %w", err)
	}
	defer file.Close()

	doc, err := Read(file, encodingName)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return doc, nil
}

// Write renders doc to w using the named encoding. The utf-8-sig encoding
// emits the leading byte order mark expected by legacy players.
func Write(w io.Writer, doc *document.Document, encodingName string) error {
	enc, err := lookup(encodingName)
	if err != nil {
		return err
	}
	encoded := transform.NewWriter(w, enc.NewEncoder())
	if _, err := doc.WriteTo(encoded); err != nil {
		return fmt.Errorf("write script: %w", err)
	}
	if err := encoded.Close(); err != nil {
		return fmt.Errorf("flush script: %w", err)
	}
	return nil
}

// Save renders doc to the file at path.
func Save(path string, doc *document.Document, encodingName string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create script: %w", err)
	}
	if err := Write(file, doc, encodingName); err != nil {
		_ = file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("close script: %w", err)
	}
	return nil
}
