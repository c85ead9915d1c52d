package domain

import (
	"strings"
	"time"
)

// Line terminator flavours recognised at load.
const (
	// EOLUnix is a bare line feed.
	EOLUnix = "\n"

	// EOLWindows is a carriage return plus line feed.
	EOLWindows = "\r\n"
)

// Path suffixes for the files a clean run may create next to the document.
const (
	// backupTimeFormat is the timestamp layout in backup filenames.
	backupTimeFormat = "20060102_150405"

	// backupInfix separates the document name from the backup timestamp.
	backupInfix = ".backup_"

	// FallbackSuffix marks the sibling file written when the primary
	// document could not be rewritten in place.
	FallbackSuffix = ".cleaned"
)

// Document is an in-memory working copy of a text file, split into lines.
// Line numbers are 1-based and contiguous over Lines. A run exclusively
// owns its Document; nothing is shared across runs.
type Document struct {
	// Path is the on-disk location the content was loaded from.
	Path string

	// Lines holds the content in order, without terminators.
	Lines []string

	// EOL is the terminator flavour detected at load.
	// Mixed terminators are normalised to this flavour on rewrite.
	EOL string

	// TrailingNewline records whether the on-disk content ended
	// with a terminator, so a rewrite reproduces it.
	TrailingNewline bool
}

// ParseDocument splits raw file content into a Document.
// A zero-byte file is a zero-line document. Lines are split on line
// feeds with any trailing carriage return stripped, so both Unix and
// Windows files number their lines the way an editor would.
func ParseDocument(path string, data []byte) *Document {
	doc := &Document{Path: path, EOL: EOLUnix}
	if len(data) == 0 {
		doc.Lines = []string{}
		return doc
	}

	content := string(data)
	if strings.Contains(content, EOLWindows) {
		doc.EOL = EOLWindows
	}
	if strings.HasSuffix(content, EOLUnix) {
		doc.TrailingNewline = true
		content = content[:len(content)-1]
		content = strings.TrimSuffix(content, "\r")
	}

	lines := strings.Split(content, EOLUnix)
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	doc.Lines = lines
	return doc
}

// LineCount returns the number of lines in the document.
func (d *Document) LineCount() int {
	return len(d.Lines)
}

// Bytes serialises the document back to file content using the
// terminator flavour detected at load. A zero-line document
// serialises to zero bytes.
func (d *Document) Bytes() []byte {
	if len(d.Lines) == 0 {
		return []byte{}
	}
	eol := d.EOL
	if eol == "" {
		eol = EOLUnix
	}
	content := strings.Join(d.Lines, eol)
	if d.TrailingNewline {
		content += eol
	}
	return []byte(content)
}

// BackupPath returns the timestamped backup location for a document
// path. Backups are siblings of the document, second resolution.
func BackupPath(path string, at time.Time) string {
	return path + backupInfix + at.Format(backupTimeFormat)
}

// BackupPrefix returns the filename prefix shared by every backup of
// the given document path. Used to discover existing backups.
func BackupPrefix(path string) string {
	return path + backupInfix
}

// BackupTime extracts the creation timestamp from a backup path
// produced by BackupPath. ok is false when backupPath does not name
// a backup of path.
func BackupTime(path, backupPath string) (at time.Time, ok bool) {
	prefix := BackupPrefix(path)
	if !strings.HasPrefix(backupPath, prefix) {
		return time.Time{}, false
	}
	at, err := time.ParseInLocation(backupTimeFormat, strings.TrimPrefix(backupPath, prefix), time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return at, true
}

// FallbackPath returns the sibling location used when the primary
// document cannot be rewritten in place.
func FallbackPath(path string) string {
	return path + FallbackSuffix
}
