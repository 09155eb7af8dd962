// Package catalog maintains a local SQLite index of subtitle scripts. Each
// entry summarizes one parsed script: its title, play resolution, style
// and event counts, and the timecode of the last event. The scan operation
// walks a directory tree, parses every script it finds, and upserts the
// summaries, holding a file lock so two scans never write concurrently.
package catalog
