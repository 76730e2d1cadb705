package lexer

import (
	"unicode/utf8"

	"stylist/internal/source"
)

// Cursor walks the raw bytes of one file and hands out spans.
type Cursor struct {
	file *source.File
	Off  uint32
}

func NewCursor(file *source.File) Cursor {
	return Cursor{file: file}
}

func (c *Cursor) EOF() bool {
	return int(c.Off) >= len(c.file.Content)
}

// Peek returns the current byte, or 0 at EOF.
func (c *Cursor) Peek() byte {
	if c.EOF() {
		return 0
	}
	return c.file.Content[c.Off]
}

// PeekAt returns the byte at offset+delta, or 0 past EOF.
func (c *Cursor) PeekAt(delta uint32) byte {
	idx := int(c.Off + delta)
	if idx >= len(c.file.Content) {
		return 0
	}
	return c.file.Content[idx]
}

// PeekRune decodes the rune at the current offset.
func (c *Cursor) PeekRune() (rune, int) {
	if c.EOF() {
		return utf8.RuneError, 0
	}
	return utf8.DecodeRune(c.file.Content[c.Off:])
}

// Bump advances by one byte.
func (c *Cursor) Bump() {
	if !c.EOF() {
		c.Off++
	}
}

// BumpN advances by n bytes, clamped to EOF.
func (c *Cursor) BumpN(n uint32) {
	c.Off += n
	if int(c.Off) > len(c.file.Content) {
		c.Off = uint32(len(c.file.Content)) //nolint:gosec // content length fits in a span
	}
}

// Mark remembers the current offset for SpanFrom.
func (c *Cursor) Mark() uint32 { return c.Off }

// SpanFrom builds a span from a mark to the current offset.
func (c *Cursor) SpanFrom(mark uint32) source.Span {
	return source.Span{File: c.file.ID, Start: mark, End: c.Off}
}

// TextFrom returns the text between a mark and the current offset.
func (c *Cursor) TextFrom(mark uint32) string {
	return string(c.file.Content[mark:c.Off])
}
