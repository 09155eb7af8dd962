// Package document implements the structural model for Advanced SubStation
// Alpha (.ass) and SubStation Alpha (.ssa) subtitle scripts.
//
// A script is a sequence of named sections introduced by [Header] lines.
// Sections hold either typed, comma-delimited records (styles, events) or
// free-form key/value fields (script info). Record shapes are declared once
// as ordered lists of field descriptors; both parsing and serialization are
// derived from that declaration. Unknown sections, line kinds, and fields
// are preserved verbatim so that dump(parse(text)) round-trips scripts
// written by newer tools.
package document
