package typeenc

import (
	"fmt"
	"strconv"
	"strings"
)

// MethodTypeEncodings is the parsed form of a method type string: an
// ordered sequence of type encodings (conventionally return type,
// receiver, selector, then parameters), optionally annotated with
// per-type stack offsets and a stray leading integer some producers
// emit before the first type code.
//
// Offsets and the leading integer are positional metadata, not
// semantic content: Equal ignores them, Encode reproduces them exactly.
type MethodTypeEncodings struct {
	Types []*TypeEncoding

	// Offsets parallels Types when the source carried offset
	// annotations; nil otherwise. A parsed value always has either no
	// offsets or exactly one per type.
	Offsets []int

	// Leading holds digits that preceded the first recognizable type,
	// a defect pattern seen in the wild. Only legal alongside offsets.
	Leading    int
	HasLeading bool
}

// ParseMethodTypes parses a concatenated sequence of type encodings
// with optional per-type trailing offsets. Unlike parseOptionalType,
// every type in the sequence must parse: any structural failure fails
// the whole string. After the types are consumed the offset
// annotations must be consistent: all-or-none against the type count,
// and a leading integer is only meaningful when offsets are present.
func ParseMethodTypes(s string) (*MethodTypeEncodings, error) {
	m := &MethodTypeEncodings{}
	cur := newCursor(s)
	if n, err := cur.number(); err == nil {
		m.Leading, m.HasLeading = n, true
	}
	p := &parser{cur: cur}
	for !cur.empty() {
		t, err := p.parseType()
		if err != nil {
			return nil, err
		}
		m.Types = append(m.Types, t)
		if n, err := cur.number(); err == nil {
			m.Offsets = append(m.Offsets, n)
		}
	}
	if m.Offsets != nil && len(m.Offsets) != len(m.Types) {
		return nil, fmt.Errorf("%w: %d offsets for %d types", ErrOffsetMismatch, len(m.Offsets), len(m.Types))
	}
	if m.HasLeading && m.Offsets == nil {
		return nil, fmt.Errorf("%w: leading %d without per-type offsets", ErrOffsetMismatch, m.Leading)
	}
	return m, nil
}

// Encode serializes the sequence back to its source form: with offsets
// recorded, the leading integer (when present) then each type followed
// by its offset digits; without offsets, the bare concatenation.
func (m *MethodTypeEncodings) Encode() string {
	var sb strings.Builder
	if m.Offsets == nil {
		for _, t := range m.Types {
			t.encode(&sb)
		}
		return sb.String()
	}
	if m.HasLeading {
		sb.WriteString(strconv.Itoa(m.Leading))
	}
	for i, t := range m.Types {
		t.encode(&sb)
		sb.WriteString(strconv.Itoa(m.Offsets[i]))
	}
	return sb.String()
}

// String returns the encoded form.
func (m *MethodTypeEncodings) String() string {
	return m.Encode()
}

// Equal compares only the type sequences; offsets and the leading
// integer are cosmetic and excluded.
func (m *MethodTypeEncodings) Equal(o *MethodTypeEncodings) bool {
	if m == nil || o == nil {
		return m == nil && o == nil
	}
	if len(m.Types) != len(o.Types) {
		return false
	}
	for i := range m.Types {
		if !m.Types[i].Equal(o.Types[i]) {
			return false
		}
	}
	return true
}

// NewMethodTypes builds the conventional method shape: the return type,
// the fixed receiver/selector pair, then the parameter types. The
// result carries no offsets.
func NewMethodTypes(ret *TypeEncoding, params ...*TypeEncoding) *MethodTypeEncodings {
	types := make([]*TypeEncoding, 0, len(params)+3)
	types = append(types,
		ret,
		&TypeEncoding{Kind: KindObject},
		&TypeEncoding{Kind: KindSelector},
	)
	types = append(types, params...)
	return &MethodTypeEncodings{Types: types}
}

// NewGetterTypes builds the signature of a getter returning t.
func NewGetterTypes(t *TypeEncoding) *MethodTypeEncodings {
	return NewMethodTypes(t)
}

// NewSetterTypes builds the signature of a void setter taking one
// parameter of type t.
func NewSetterTypes(t *TypeEncoding) *MethodTypeEncodings {
	return NewMethodTypes(&TypeEncoding{Kind: KindVoid}, t)
}
