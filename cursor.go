package typeenc

import (
	"fmt"
	"strings"
)

// cursor is a position-tracking view over the remaining input. All
// operations consume bytes, never runes: the grammar's structural
// characters are ASCII, and anything else (UTF-8 in quoted names
// included) passes through verbatim. No operation backtracks.
type cursor struct {
	s   string
	pos int
}

func newCursor(s string) *cursor {
	return &cursor{s: s}
}

func (c *cursor) empty() bool {
	return c.pos >= len(c.s)
}

// peek returns the next byte without consuming it.
func (c *cursor) peek() (byte, bool) {
	if c.empty() {
		return 0, false
	}
	return c.s[c.pos], true
}

func (c *cursor) next() byte {
	b := c.s[c.pos]
	c.pos++
	return b
}

// advanceIf consumes the next byte iff it equals ch.
func (c *cursor) advanceIf(ch byte) bool {
	if c.empty() || c.s[c.pos] != ch {
		return false
	}
	c.pos++
	return true
}

// number consumes a maximal run of ASCII decimal digits and returns the
// parsed non-negative integer. Zero digits consumed is ErrMissingDigit.
// Only bytes '0'..'9' count; this must not pick up the wider set of
// characters unicode.IsDigit would accept.
func (c *cursor) number() (int, error) {
	start := c.pos
	n := 0
	for !c.empty() {
		b := c.s[c.pos]
		if b < '0' || b > '9' {
			break
		}
		n = n*10 + int(b-'0')
		c.pos++
	}
	if c.pos == start {
		return 0, fmt.Errorf("%w at offset %d", ErrMissingDigit, start)
	}
	return n, nil
}

// quoted consumes a `"`-delimited segment and returns its interior
// verbatim; there is no escape processing. ok is false when the next
// byte is not an opening quote (nothing consumed). An opening quote
// with no closing quote is a structural failure.
func (c *cursor) quoted() (string, bool, error) {
	if c.empty() || c.s[c.pos] != '"' {
		return "", false, nil
	}
	end := strings.IndexByte(c.s[c.pos+1:], '"')
	if end < 0 {
		return "", false, fmt.Errorf("%w: quote opened at offset %d never closes", ErrUnterminated, c.pos)
	}
	inner := c.s[c.pos+1 : c.pos+1+end]
	c.pos += end + 2
	return inner, true, nil
}

// readUntil consumes up to the first occurrence of any byte in delims,
// returning the consumed prefix and the delimiter, which is consumed
// too. Running out of input before a delimiter is a structural failure.
func (c *cursor) readUntil(delims string) (string, byte, error) {
	idx := strings.IndexAny(c.s[c.pos:], delims)
	if idx < 0 {
		return "", 0, fmt.Errorf("%w: no %q after offset %d", ErrUnterminated, delims, c.pos)
	}
	prefix := c.s[c.pos : c.pos+idx]
	delim := c.s[c.pos+idx]
	c.pos += idx + 1
	return prefix, delim, nil
}
