package parser

import (
	"unicode/utf8"

	"github.com/pkg/errors"
)

// ByteCursor is a position tracked view over an immutable input buffer.
// The tokenizer reads from it one code point at a time and uses the peek
// methods for keyword and entity lookahead.
type ByteCursor struct {
	buf []byte
	pos int
}

// NewByteCursor wraps b. The cursor never writes to b.
func NewByteCursor(b []byte) *ByteCursor {
	return &ByteCursor{buf: b}
}

// Len is the total length of the underlying buffer.
func (c *ByteCursor) Len() int {
	return len(c.buf)
}

// Pos is the offset of the next byte to be read.
func (c *ByteCursor) Pos() int {
	return c.pos
}

// EOF reports whether every byte has been consumed.
func (c *ByteCursor) EOF() bool {
	return c.pos == len(c.buf)
}

// Bytes returns the whole underlying buffer.
func (c *ByteCursor) Bytes() []byte {
	return c.buf
}

// Peek returns the byte offset bytes ahead of the current position without
// consuming anything.
func (c *ByteCursor) Peek(offset int) (byte, error) {
	i := c.pos + offset
	if offset < 0 || i >= len(c.buf) {
		return 0, errors.Wrapf(ErrOutOfRange, "peek %d at position %d of %d", offset, c.pos, len(c.buf))
	}
	return c.buf[i], nil
}

// PeekRemaining returns the unread part of the buffer. The returned slice
// aliases the input and must not be modified.
func (c *ByteCursor) PeekRemaining() []byte {
	return c.buf[c.pos:]
}

// Read consumes a single byte.
func (c *ByteCursor) Read() (byte, error) {
	if c.pos >= len(c.buf) {
		return 0, errors.Wrapf(ErrOutOfRange, "read at position %d of %d", c.pos, len(c.buf))
	}
	b := c.buf[c.pos]
	c.pos++
	return b, nil
}

// ReadRune consumes one UTF-8 encoded code point and returns it with its
// width in bytes. Invalid encodings decode to U+FFFD and consume one byte.
func (c *ByteCursor) ReadRune() (rune, int, error) {
	if c.pos >= len(c.buf) {
		return 0, 0, errors.Wrapf(ErrOutOfRange, "read rune at position %d of %d", c.pos, len(c.buf))
	}
	if b := c.buf[c.pos]; b < utf8.RuneSelf {
		c.pos++
		return rune(b), 1, nil
	}
	r, n := utf8.DecodeRune(c.buf[c.pos:])
	c.pos += n
	return r, n, nil
}

// Unread steps back a single byte. Callers never unread twice in a row.
func (c *ByteCursor) Unread() error {
	if c.pos == 0 {
		return errors.Wrap(ErrUnderflow, "unread at position 0")
	}
	c.pos--
	return nil
}

// Skip advances the position by n bytes.
func (c *ByteCursor) Skip(n int) error {
	if n < 0 || n > len(c.buf)-c.pos {
		return errors.Wrapf(ErrOutOfRange, "skip %d at position %d of %d", n, c.pos, len(c.buf))
	}
	c.pos += n
	return nil
}

// MatchFold reports whether word starts at the byte just consumed, comparing
// ASCII letters case-insensitively. The position is left untouched whether
// or not the word matches; callers skip the rest of the word themselves.
func (c *ByteCursor) MatchFold(word string) bool {
	return c.match(word, true)
}

// Match is MatchFold without case folding.
func (c *ByteCursor) Match(word string) bool {
	return c.match(word, false)
}

func (c *ByteCursor) match(word string, fold bool) bool {
	start := c.pos - 1
	if start < 0 || len(word) > len(c.buf)-start {
		return false
	}
	for i := 0; i < len(word); i++ {
		a, b := c.buf[start+i], word[i]
		if fold {
			a, b = toLowerASCII(a), toLowerASCII(b)
		}
		if a != b {
			return false
		}
	}
	return true
}

func toLowerASCII(b byte) byte {
	if 'A' <= b && b <= 'Z' {
		return b + 0x20
	}
	return b
}
