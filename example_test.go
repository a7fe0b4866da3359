package typeenc_test

import (
	"fmt"

	typeenc "github.com/appsworld/go-typeenc"
)

func ExampleParseType() {
	typ, err := typeenc.ParseType("^{_NSZone=}")
	if err != nil {
		panic(err)
	}
	fmt.Println(typ.Kind)
	fmt.Println(typ.Encode())
	fmt.Println(typ.CType())
	// Output:
	// pointer
	// ^{_NSZone=}
	// struct _NSZone { } *
}

func ExampleParseMethodTypes() {
	m, err := typeenc.ParseMethodTypes("v24@0:8@16")
	if err != nil {
		panic(err)
	}
	fmt.Println(len(m.Types))
	fmt.Println(m.Encode())
	// Output:
	// 4
	// v24@0:8@16
}

func ExampleParseAttributes() {
	a := typeenc.ParseAttributes(`T@"NSString",C,N,V_title`)
	fmt.Println(a.Summary())
	fmt.Println(a.Encode())
	// Output:
	// (nonatomic, copy) NSString *
	// T@"NSString",N,C,V_title
}
