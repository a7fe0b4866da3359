package typeenc

import (
	"strings"
)

// Property attribute codes, as emitted by property_getAttributes.
const (
	propertyType      = 'T' // followed by a type encoding
	propertyReadOnly  = 'R' // property is read-only
	propertyCopy      = 'C' // setter copies the assigned value
	propertyRetain    = '&' // setter retains the assigned value
	propertyWeak      = 'W' // weak reference
	propertyNonAtomic = 'N' // property is non-atomic
	propertyDynamic   = 'D' // accessors provided at runtime
	propertyGetter    = 'G' // followed by the getter selector name
	propertySetter    = 'S' // followed by the setter selector name
	propertyIVar      = 'V' // followed by the backing ivar name
)

func isAttributeCode(b byte) bool {
	switch b {
	case propertyType, propertyReadOnly, propertyCopy, propertyRetain,
		propertyWeak, propertyNonAtomic, propertyDynamic,
		propertyGetter, propertySetter, propertyIVar:
		return true
	}
	return false
}

// Attribute is one raw entry of a property attribute list: a
// single-letter code and its value.
type Attribute struct {
	Code  byte
	Value string
}

// SetterKind describes how a property's setter treats the assigned
// value.
type SetterKind int

const (
	SetterAssign SetterKind = iota
	SetterRetain            // strong reference
	SetterCopy
	SetterWeak
)

func (k SetterKind) String() string {
	switch k {
	case SetterRetain:
		return "retain"
	case SetterCopy:
		return "copy"
	case SetterWeak:
		return "weak"
	}
	return "assign"
}

// Attributes is a decoded property attribute set.
type Attributes struct {
	// Type is the property's parsed type encoding; nil when the
	// attribute string carried no type attribute at all. A `T,` entry
	// (type code with empty value) parses to the KindEmpty sentinel.
	Type *TypeEncoding

	// RawType preserves a type value the grammar could not parse
	// (extremely exotic C++ encodings); it re-encodes verbatim. Empty
	// whenever Type carries the parsed form.
	RawType string

	ReadOnly  bool
	NonAtomic bool
	Dynamic   bool
	Setter    SetterKind

	// Getter and SetterName are custom accessor selector names;
	// IvarName is the backing instance variable. Empty when absent.
	Getter     string
	SetterName string
	IvarName   string
}

// ParseAttributes decodes a comma-delimited property attribute string.
//
// The leading `T<type>,` attribute is parsed with the type grammar's
// own structural rules, so commas inside the type (C++ template
// parameter lists) are consumed as part of it rather than splitting
// the list. The remainder is split on commas; a segment whose leading
// byte is not a recognized attribute code is not a new attribute but
// the continuation of the previous one, shredded by a literal comma
// inside a value the grammar could not claim, and is merged back with
// the comma restored. Decoding never fails: later entries with the
// same code overwrite earlier ones, unknown codes are ignored.
func ParseAttributes(s string) *Attributes {
	a := &Attributes{}
	rest := s
	if strings.HasPrefix(s, "T") {
		if strings.HasPrefix(s, "T,") {
			a.Type = &TypeEncoding{Kind: KindEmpty}
			rest = s[2:]
		} else if value, ok := splitLeadingType(s); ok {
			// Round-trip law: the parsed type re-encodes to value, so
			// keeping only the tree loses nothing.
			a.Type, _ = ParseType(value)
			rest = s[1+len(value):]
			rest = strings.TrimPrefix(rest, ",")
		}
	}
	for _, e := range splitAttributes(rest) {
		a.apply(e)
	}
	return a
}

// splitLeadingType structurally parses the type value after a leading
// `T`. ok is false when the grammar rejects it or when the type is not
// followed by a comma or the end of the string; the caller then falls
// back to the comma-split recovery path.
func splitLeadingType(s string) (string, bool) {
	cur := newCursor(s[1:])
	p := &parser{cur: cur}
	if _, err := p.parseType(); err != nil {
		return "", false
	}
	if !cur.empty() {
		if ch, _ := cur.peek(); ch != ',' {
			return "", false
		}
	}
	return s[1 : 1+cur.pos], true
}

// splitAttributes comma-splits a list into raw entries, applying the
// merge-back recovery rule for unrecognized leading bytes.
func splitAttributes(s string) []Attribute {
	if s == "" {
		return nil
	}
	var entries []Attribute
	for _, seg := range strings.Split(s, ",") {
		if len(entries) > 0 && (seg == "" || !isAttributeCode(seg[0])) {
			last := &entries[len(entries)-1]
			last.Value += "," + seg
			continue
		}
		if seg == "" {
			continue
		}
		entries = append(entries, Attribute{Code: seg[0], Value: seg[1:]})
	}
	return entries
}

// apply folds one raw entry into the decoded set.
func (a *Attributes) apply(e Attribute) {
	switch e.Code {
	case propertyType:
		if e.Value == "" {
			a.Type, a.RawType = &TypeEncoding{Kind: KindEmpty}, ""
			return
		}
		if t, err := ParseType(e.Value); err == nil {
			a.Type, a.RawType = t, ""
		} else {
			a.Type, a.RawType = nil, e.Value
		}
	case propertyReadOnly:
		a.ReadOnly = true
	case propertyNonAtomic:
		a.NonAtomic = true
	case propertyDynamic:
		a.Dynamic = true
	case propertyCopy:
		a.Setter = SetterCopy
	case propertyRetain:
		a.Setter = SetterRetain
	case propertyWeak:
		a.Setter = SetterWeak
	case propertyGetter:
		a.Getter = e.Value
	case propertySetter:
		a.SetterName = e.Value
	case propertyIVar:
		a.IvarName = e.Value
	}
}

// Encode serializes the set in the canonical fixed order: type,
// read-only, non-atomic, dynamic, setter-behavior flag (omitted for
// assign), custom getter, custom setter, ivar name. Attribute order is
// not semantically meaningful, so re-encoding normalizes it.
func (a *Attributes) Encode() string {
	var parts []string
	switch {
	case a.RawType != "":
		parts = append(parts, string(propertyType)+a.RawType)
	case a.Type != nil:
		parts = append(parts, string(propertyType)+a.Type.Encode())
	}
	if a.ReadOnly {
		parts = append(parts, string(propertyReadOnly))
	}
	if a.NonAtomic {
		parts = append(parts, string(propertyNonAtomic))
	}
	if a.Dynamic {
		parts = append(parts, string(propertyDynamic))
	}
	switch a.Setter {
	case SetterCopy:
		parts = append(parts, string(propertyCopy))
	case SetterRetain:
		parts = append(parts, string(propertyRetain))
	case SetterWeak:
		parts = append(parts, string(propertyWeak))
	}
	if a.Getter != "" {
		parts = append(parts, string(propertyGetter)+a.Getter)
	}
	if a.SetterName != "" {
		parts = append(parts, string(propertySetter)+a.SetterName)
	}
	if a.IvarName != "" {
		parts = append(parts, string(propertyIVar)+a.IvarName)
	}
	return strings.Join(parts, ",")
}

// String returns the canonical encoded form.
func (a *Attributes) String() string {
	return a.Encode()
}
