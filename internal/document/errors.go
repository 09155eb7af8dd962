package document

import "errors"

var (
	// ErrBOMDetected indicates the input text still carries a byte order
	// mark. The caller opened the file with the wrong encoding; the parser
	// never strips a BOM silently.
	ErrBOMDetected = errors.New("byte order mark detected; decode the input with a BOM-aware encoding first")

	// ErrDuplicateKey indicates two case-insensitively equal keys were
	// supplied to a single map construction.
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrKeyNotFound indicates a strict lookup of an absent key.
	ErrKeyNotFound = errors.New("key not found")

	// ErrContentOutsideSection indicates a content line appeared before
	// any [Header] line.
	ErrContentOutsideSection = errors.New("content outside of any section")

	// ErrUnknownLineKind indicates a line kind that a strictly typed
	// section does not recognize.
	ErrUnknownLineKind = errors.New("unrecognized line kind")

	// ErrFieldCount indicates a record line whose comma-delimited part
	// count does not match the active field order.
	ErrFieldCount = errors.New("field count does not match format")

	// ErrColorFormat indicates a color literal that is not of the
	// &HAABBGGRR form.
	ErrColorFormat = errors.New("malformed color literal")

	// ErrTimecodeFormat indicates a timestamp that is not of the
	// H:MM:SS.CC form.
	ErrTimecodeFormat = errors.New("malformed timecode")
)
