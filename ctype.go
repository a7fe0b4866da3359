package typeenc

import (
	"fmt"
	"strings"
)

// ref - https://developer.apple.com/library/archive/documentation/Cocoa/Conceptual/ObjCRuntimeGuide/Articles/ocrtTypeEncodings.html

var scalarCTypes = map[Kind]string{
	KindChar:             "char",
	KindInt:              "int",
	KindShort:            "short",
	KindLong:             "long",
	KindLongLong:         "long long",
	KindUnsignedChar:     "unsigned char",
	KindUnsignedInt:      "unsigned int",
	KindUnsignedShort:    "unsigned short",
	KindUnsignedLong:     "unsigned long",
	KindUnsignedLongLong: "unsigned long long",
	KindFloat:            "float",
	KindDouble:           "double",
	KindBool:             "BOOL",
	KindInt128:           "__int128",
	KindLongDouble:       "long double",
	KindVoid:             "void",
	KindCString:          "char *",
	KindClass:            "Class",
	KindSelector:         "SEL",
	KindUnknown:          "void",
	KindBlank:            "void",
	KindEmpty:            "void",
}

var qualifierCTypes = map[Kind]string{
	KindConst:  "const",
	KindAtomic: "_Atomic",
	KindIn:     "in",
	KindOut:    "out",
	KindInOut:  "inout",
	KindOneWay: "oneway",
	KindByCopy: "bycopy",
	KindByRef:  "byref",
}

// CType renders the parsed encoding as a readable C/Objective-C
// declaration fragment, e.g. `^{Foo=ii}` as
// `struct Foo { int x0; int x1; } *`. The rendering is lossy and for
// humans; round-trip guarantees apply to Encode only.
func (t *TypeEncoding) CType() string {
	if t == nil {
		return "void"
	}
	if name, ok := scalarCTypes[t.Kind]; ok {
		return name
	}
	if qual, ok := qualifierCTypes[t.Kind]; ok {
		return qual + " " + t.Elem.CType()
	}
	switch t.Kind {
	case KindObject:
		var sb strings.Builder
		if t.HasName && t.Name != "" {
			sb.WriteString(t.Name)
		} else {
			sb.WriteString("id")
		}
		if len(t.Protocols) > 0 {
			sb.WriteString("<" + strings.Join(t.Protocols, ", ") + ">")
		}
		if t.HasName && t.Name != "" {
			sb.WriteString(" *")
		}
		return sb.String()
	case KindBlock:
		if t.Params == nil {
			return "id /* block */"
		}
		args := make([]string, 0, len(t.Params))
		ret := "void"
		for i, p := range t.Params {
			if i == 0 {
				ret = p.CType()
				continue
			}
			args = append(args, p.CType())
		}
		return fmt.Sprintf("%s (^)(%s)", ret, strings.Join(args, ", "))
	case KindPointer:
		if t.Elem == nil {
			return "void *"
		}
		return t.Elem.CType() + " *"
	case KindArray:
		elem := "void"
		if t.Elem != nil {
			elem = t.Elem.CType()
		}
		return fmt.Sprintf("%s x[%d]", elem, t.Count)
	case KindBitfield:
		return fmt.Sprintf("unsigned int x:%d", t.Count)
	case KindStruct, KindUnion:
		keyword := "struct"
		if t.Kind == KindUnion {
			keyword = "union"
		}
		var sb strings.Builder
		sb.WriteString(keyword)
		// "?" is the runtime's anonymous tag
		if t.Name != "" && t.Name != "?" {
			sb.WriteString(" " + t.Name)
		}
		if t.Fields == nil {
			return sb.String()
		}
		sb.WriteString(" {")
		for i, f := range t.Fields {
			name := f.Name
			if !f.HasName {
				name = fmt.Sprintf("x%d", i)
			}
			switch {
			case f.Type == nil:
				sb.WriteString(fmt.Sprintf(" %s;", name))
			case f.Type.Kind == KindBitfield:
				sb.WriteString(fmt.Sprintf(" unsigned int %s:%d;", name, f.Type.Count))
			default:
				sb.WriteString(fmt.Sprintf(" %s %s;", f.Type.CType(), name))
			}
		}
		sb.WriteString(" }")
		return sb.String()
	}
	return string(t.Kind)
}

// Summary renders the decoded attribute set the way a property appears
// in an interface declaration, e.g. `(nonatomic, copy) NSString *`.
func (a *Attributes) Summary() string {
	var flags []string
	if a.NonAtomic {
		flags = append(flags, "nonatomic")
	}
	if a.ReadOnly {
		flags = append(flags, "readonly")
	}
	if a.Setter != SetterAssign {
		flags = append(flags, a.Setter.String())
	}
	if a.Dynamic {
		flags = append(flags, "dynamic")
	}
	if a.Getter != "" {
		flags = append(flags, "getter="+a.Getter)
	}
	if a.SetterName != "" {
		flags = append(flags, "setter="+a.SetterName)
	}
	var sb strings.Builder
	if len(flags) > 0 {
		sb.WriteString("(" + strings.Join(flags, ", ") + ") ")
	}
	if a.RawType != "" {
		sb.WriteString(a.RawType)
	} else {
		sb.WriteString(a.Type.CType())
	}
	return sb.String()
}
