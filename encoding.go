package typeenc

import (
	"strconv"
	"strings"
)

// Kind identifies which variant of the type-encoding grammar a
// TypeEncoding represents.
type Kind string

const (
	// KindEmpty is the zero-length encoding: the "no type present"
	// sentinel the runtime emits for some degenerate declarations.
	KindEmpty Kind = "empty"
	// KindBlank is a single space, another degenerate but legal form.
	KindBlank Kind = "blank"

	KindChar             Kind = "char"
	KindInt              Kind = "int"
	KindShort            Kind = "short"
	KindLong             Kind = "long"
	KindLongLong         Kind = "longLong"
	KindUnsignedChar     Kind = "unsignedChar"
	KindUnsignedInt      Kind = "unsignedInt"
	KindUnsignedShort    Kind = "unsignedShort"
	KindUnsignedLong     Kind = "unsignedLong"
	KindUnsignedLongLong Kind = "unsignedLongLong"
	KindFloat            Kind = "float"
	KindDouble           Kind = "double"
	KindBool             Kind = "bool"
	KindInt128           Kind = "int128"
	KindLongDouble       Kind = "longDouble"
	KindVoid             Kind = "void"
	KindCString          Kind = "cString"
	KindClass            Kind = "class"
	KindSelector         Kind = "selector"
	KindUnknown          Kind = "unknown"

	KindObject   Kind = "object"
	KindBlock    Kind = "block"
	KindArray    Kind = "array"
	KindStruct   Kind = "struct"
	KindUnion    Kind = "union"
	KindBitfield Kind = "bitfield"
	KindPointer  Kind = "pointer"

	KindConst  Kind = "const"
	KindAtomic Kind = "atomic"
	KindIn     Kind = "in"
	KindOut    Kind = "out"
	KindInOut  Kind = "inOut"
	KindOneWay Kind = "oneWay"
	KindByCopy Kind = "byCopy"
	KindByRef  Kind = "byRef"
)

// scalarKinds maps a leading encoding byte to its scalar variant.
var scalarKinds = map[byte]Kind{
	'c': KindChar,
	'i': KindInt,
	's': KindShort,
	'l': KindLong,
	'q': KindLongLong,
	'C': KindUnsignedChar,
	'I': KindUnsignedInt,
	'S': KindUnsignedShort,
	'L': KindUnsignedLong,
	'Q': KindUnsignedLongLong,
	'f': KindFloat,
	'd': KindDouble,
	'B': KindBool,
	't': KindInt128,
	'D': KindLongDouble,
	'v': KindVoid,
	'*': KindCString,
	'#': KindClass,
	':': KindSelector,
	'?': KindUnknown,
	' ': KindBlank,
}

// qualifierKinds maps a qualifier byte to its wrapper variant. Each
// wraps exactly one mandatory inner type.
var qualifierKinds = map[byte]Kind{
	'r': KindConst,
	'A': KindAtomic,
	'n': KindIn,
	'o': KindOut,
	'N': KindInOut,
	'V': KindOneWay,
	'O': KindByCopy,
	'R': KindByRef,
}

// scalarCodes and qualifierCodes are the exact inverses of the parse
// tables above, built once at init.
var (
	scalarCodes    = make(map[Kind]byte, len(scalarKinds))
	qualifierCodes = make(map[Kind]byte, len(qualifierKinds))
)

func init() {
	for b, k := range scalarKinds {
		scalarCodes[k] = b
	}
	for b, k := range qualifierKinds {
		qualifierCodes[k] = b
	}
}

// TypeEncoding is one parsed type description, a recursive tagged
// value: Kind selects the variant and determines which other fields
// carry meaning. Values are immutable once constructed; derive new ones
// by building new values, never by mutating in place.
type TypeEncoding struct {
	Kind Kind

	// Name is the struct/union tag or the object class name. HasName
	// distinguishes an object with a quoted class name (possibly
	// empty, `@""`) from a bare `@`.
	Name    string
	HasName bool

	// Protocols lists object protocol names in appearance order.
	Protocols []string

	// Params holds block parameter types. nil means no `<...>` group
	// was present in the source; an empty non-nil slice means `<>`
	// was. The two re-encode differently.
	Params []*TypeEncoding

	// Count is the array element count or the bitfield width.
	Count int

	// Elem is the array element type, the pointer pointee, or the
	// single type wrapped by a qualifier. nil where the grammar allows
	// absence (`[3]`, bare `^`).
	Elem *TypeEncoding

	// Fields holds struct/union members. nil means no `=` was present
	// (name-only forward declaration); an empty non-nil slice means
	// `=` immediately followed by the closing delimiter.
	Fields []Field
}

// Field is one struct/union member: an optional quoted name and an
// optional nested type. At least one of the two is always present.
type Field struct {
	Name    string
	HasName bool
	Type    *TypeEncoding
}

// Encode serializes the value back to its source form. For every value
// the parser produces, Encode reproduces the exact input substring,
// including the absent-vs-empty distinctions on field lists, block
// parameter lists, and object name sections.
func (t *TypeEncoding) Encode() string {
	var sb strings.Builder
	t.encode(&sb)
	return sb.String()
}

func (t *TypeEncoding) encode(sb *strings.Builder) {
	if t == nil {
		return
	}
	if b, ok := scalarCodes[t.Kind]; ok {
		sb.WriteByte(b)
		return
	}
	if b, ok := qualifierCodes[t.Kind]; ok {
		sb.WriteByte(b)
		t.Elem.encode(sb)
		return
	}
	switch t.Kind {
	case KindEmpty:
		// zero-length by definition
	case KindObject:
		sb.WriteByte('@')
		if !t.HasName && len(t.Protocols) == 0 {
			return
		}
		sb.WriteByte('"')
		sb.WriteString(t.Name)
		for _, p := range t.Protocols {
			sb.WriteByte('<')
			sb.WriteString(p)
			sb.WriteByte('>')
		}
		sb.WriteByte('"')
	case KindBlock:
		sb.WriteString("@?")
		if t.Params == nil {
			return
		}
		sb.WriteByte('<')
		for _, p := range t.Params {
			p.encode(sb)
		}
		sb.WriteByte('>')
	case KindArray:
		sb.WriteByte('[')
		sb.WriteString(strconv.Itoa(t.Count))
		t.Elem.encode(sb)
		sb.WriteByte(']')
	case KindStruct, KindUnion:
		open, close := byte('{'), byte('}')
		if t.Kind == KindUnion {
			open, close = '(', ')'
		}
		sb.WriteByte(open)
		sb.WriteString(t.Name)
		if t.Fields != nil {
			sb.WriteByte('=')
			for _, f := range t.Fields {
				if f.HasName {
					sb.WriteByte('"')
					sb.WriteString(f.Name)
					sb.WriteByte('"')
				}
				f.Type.encode(sb)
			}
		}
		sb.WriteByte(close)
	case KindBitfield:
		sb.WriteByte('b')
		sb.WriteString(strconv.Itoa(t.Count))
	case KindPointer:
		sb.WriteByte('^')
		t.Elem.encode(sb)
	}
}

// String returns the encoded form.
func (t *TypeEncoding) String() string {
	return t.Encode()
}

// Equal reports structural equality, including the absent-vs-empty
// distinctions that Encode preserves.
func (t *TypeEncoding) Equal(o *TypeEncoding) bool {
	if t == nil || o == nil {
		return t == nil && o == nil
	}
	if t.Kind != o.Kind || t.Name != o.Name || t.HasName != o.HasName || t.Count != o.Count {
		return false
	}
	if len(t.Protocols) != len(o.Protocols) {
		return false
	}
	for i := range t.Protocols {
		if t.Protocols[i] != o.Protocols[i] {
			return false
		}
	}
	if (t.Params == nil) != (o.Params == nil) || len(t.Params) != len(o.Params) {
		return false
	}
	for i := range t.Params {
		if !t.Params[i].Equal(o.Params[i]) {
			return false
		}
	}
	if !t.Elem.Equal(o.Elem) {
		return false
	}
	if (t.Fields == nil) != (o.Fields == nil) || len(t.Fields) != len(o.Fields) {
		return false
	}
	for i := range t.Fields {
		a, b := t.Fields[i], o.Fields[i]
		if a.Name != b.Name || a.HasName != b.HasName || !a.Type.Equal(b.Type) {
			return false
		}
	}
	return true
}
