package typeenc

import (
	"errors"
	"fmt"
	"strings"
)

// Parse failures form a small closed set so callers and tests can match
// on the failure kind with errors.Is. Structural failures anywhere in a
// recursive parse abort the whole parse; there are no partial results.
var (
	ErrUnknownType    = errors.New("unknown type code")
	ErrUnterminated   = errors.New("unterminated encoding")
	ErrMissingDigit   = errors.New("expected digit")
	ErrBadObjectName  = errors.New("malformed object name")
	ErrTrailingData   = errors.New("trailing data after type")
	ErrOffsetMismatch = errors.New("offset annotations inconsistent with types")
	ErrNestingTooDeep = errors.New("nesting too deep")
)

// maxNestingDepth bounds recursion so a hostile, pathologically nested
// input becomes a parse error rather than stack exhaustion. Real C++
// template encodings reach depths in the thousands; this cap leaves
// ample headroom above anything a producer emits.
const maxNestingDepth = 100000

type parser struct {
	cur   *cursor
	depth int
}

// ParseType parses a single complete type encoding. Unlike the internal
// cursor form, trailing unparsed input after a complete type is an
// error here. The empty string is not an error: it parses to the
// KindEmpty sentinel.
func ParseType(s string) (*TypeEncoding, error) {
	if s == "" {
		return &TypeEncoding{Kind: KindEmpty}, nil
	}
	p := &parser{cur: newCursor(s)}
	t, err := p.parseType()
	if err != nil {
		return nil, err
	}
	if !p.cur.empty() {
		return nil, fmt.Errorf("%w at offset %d: %q", ErrTrailingData, p.cur.pos, s[p.cur.pos:])
	}
	return t, nil
}

// parseType parses one type starting at the cursor and leaves the
// remainder unconsumed. The leading byte selects the rule.
func (p *parser) parseType() (*TypeEncoding, error) {
	if p.depth++; p.depth > maxNestingDepth {
		return nil, fmt.Errorf("%w at offset %d", ErrNestingTooDeep, p.cur.pos)
	}
	defer func() { p.depth-- }()

	ch, ok := p.cur.peek()
	if !ok {
		return nil, fmt.Errorf("%w: type expected at offset %d", ErrUnterminated, p.cur.pos)
	}
	if kind, ok := scalarKinds[ch]; ok {
		p.cur.next()
		return &TypeEncoding{Kind: kind}, nil
	}
	if kind, ok := qualifierKinds[ch]; ok {
		p.cur.next()
		inner, err := p.parseType()
		if err != nil {
			return nil, err
		}
		return &TypeEncoding{Kind: kind, Elem: inner}, nil
	}
	switch ch {
	case 'b':
		p.cur.next()
		width, err := p.cur.number()
		if err != nil {
			return nil, err
		}
		return &TypeEncoding{Kind: KindBitfield, Count: width}, nil
	case '^':
		p.cur.next()
		pointee, err := p.parseOptionalType()
		if err != nil {
			return nil, err
		}
		return &TypeEncoding{Kind: KindPointer, Elem: pointee}, nil
	case '[':
		p.cur.next()
		return p.parseArray()
	case '{':
		p.cur.next()
		return p.parseRecord(KindStruct, '}')
	case '(':
		p.cur.next()
		return p.parseRecord(KindUnion, ')')
	case '@':
		p.cur.next()
		return p.parseObject()
	}
	return nil, fmt.Errorf("%w %q at offset %d", ErrUnknownType, ch, p.cur.pos)
}

// optionalTypeTerminators are the bytes that signal "no nested type
// here": compound closers, a quoted name, the attribute/parameter
// separators, and field-offset digits.
func isOptionalTypeTerminator(b byte) bool {
	switch b {
	case ']', '}', ')', '"', ',', '>':
		return true
	}
	return b >= '0' && b <= '9'
}

// parseOptionalType peeks one byte to decide whether a nested type is
// present. On a terminator byte or end of input it returns (nil, nil)
// with the cursor untouched; otherwise it behaves exactly like
// parseType, including its failures. This single-byte lookahead is what
// distinguishes compound terminators from the start of a nested type
// without backtracking.
func (p *parser) parseOptionalType() (*TypeEncoding, error) {
	ch, ok := p.cur.peek()
	if !ok || isOptionalTypeTerminator(ch) {
		return nil, nil
	}
	return p.parseType()
}

func (p *parser) parseArray() (*TypeEncoding, error) {
	count, err := p.cur.number()
	if err != nil {
		return nil, err
	}
	elem, err := p.parseOptionalType()
	if err != nil {
		return nil, err
	}
	if !p.cur.advanceIf(']') {
		return nil, fmt.Errorf("%w: ']' expected at offset %d", ErrUnterminated, p.cur.pos)
	}
	return &TypeEncoding{Kind: KindArray, Count: count, Elem: elem}, nil
}

// parseRecord parses a struct or union body after the opening
// delimiter. The name runs to the first `=` or the closing delimiter;
// without an `=` the field list stays absent (forward declaration).
func (p *parser) parseRecord(kind Kind, close byte) (*TypeEncoding, error) {
	name, delim, err := p.cur.readUntil("=" + string(close))
	if err != nil {
		return nil, err
	}
	t := &TypeEncoding{Kind: kind, Name: name}
	if delim == close {
		return t, nil
	}
	t.Fields = []Field{}
	for {
		if p.cur.advanceIf(close) {
			return t, nil
		}
		f, ok, err := p.parseField()
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fmt.Errorf("%w: %q expected at offset %d", ErrUnterminated, close, p.cur.pos)
		}
		t.Fields = append(t.Fields, f)
	}
}

// parseField parses one struct/union member: an optional quoted name
// followed by an optional type. ok is false when neither is present.
func (p *parser) parseField() (Field, bool, error) {
	var f Field
	name, named, err := p.cur.quoted()
	if err != nil {
		return f, false, err
	}
	if named {
		f.Name, f.HasName = name, true
	}
	typ, err := p.parseOptionalType()
	if err != nil {
		return f, false, err
	}
	f.Type = typ
	return f, named || typ != nil, nil
}

// parseObject parses the rule for `@`: a block when `?` follows, a bare
// id when no quoted section follows, otherwise a quoted class name and
// protocol list. The quoted content splits on `<`; the leading segment
// (unless it ends in `>`) is the class name and every `>`-terminated
// segment is a protocol. Any other mix is malformed.
func (p *parser) parseObject() (*TypeEncoding, error) {
	if p.cur.advanceIf('?') {
		return p.parseBlock()
	}
	start := p.cur.pos
	name, quotedName, err := p.cur.quoted()
	if err != nil {
		return nil, err
	}
	t := &TypeEncoding{Kind: KindObject}
	if !quotedName {
		return t, nil
	}
	for i, seg := range strings.Split(name, "<") {
		switch {
		case strings.HasSuffix(seg, ">"):
			t.Protocols = append(t.Protocols, strings.TrimSuffix(seg, ">"))
		case i == 0:
			t.Name, t.HasName = seg, true
		default:
			return nil, fmt.Errorf("%w %q at offset %d", ErrBadObjectName, name, start)
		}
	}
	return t, nil
}

// parseBlock parses the rule for `@?`. Without a `<` the parameter list
// is absent; with one, types repeat until `>`. parseOptionalType may
// legally report "no type" only immediately before the closing `>`.
func (p *parser) parseBlock() (*TypeEncoding, error) {
	if !p.cur.advanceIf('<') {
		return &TypeEncoding{Kind: KindBlock}, nil
	}
	t := &TypeEncoding{Kind: KindBlock, Params: []*TypeEncoding{}}
	for {
		if p.cur.advanceIf('>') {
			return t, nil
		}
		param, err := p.parseOptionalType()
		if err != nil {
			return nil, err
		}
		if param == nil {
			return nil, fmt.Errorf("%w: '>' expected at offset %d", ErrUnterminated, p.cur.pos)
		}
		t.Params = append(t.Params, param)
	}
}
