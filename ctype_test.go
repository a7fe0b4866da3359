package typeenc

import "testing"

func TestCType(t *testing.T) {
	tests := []struct {
		name string
		enc  string
		want string
	}{
		{
			name: "nested struct and union",
			enc:  "^{OutterStruct=(InnerUnion=q{InnerStruct=ii})b1b2b10b1q}",
			want: "struct OutterStruct { union InnerUnion { long long x0; struct InnerStruct { int x0; int x1; } x1; } x0; unsigned int x1:1; unsigned int x2:2; unsigned int x3:10; unsigned int x4:1; long long x5; } *",
		},
		{
			name: "array",
			enc:  "[2^v]",
			want: "void * x[2]",
		},
		{
			name: "bitfield",
			enc:  "b13",
			want: "unsigned int x:13",
		},
		{
			name: "struct",
			enc:  "{test=@*i}",
			want: "struct test { id x0; char * x1; int x2; }",
		},
		{
			name: "struct with named fields",
			enc:  `{test="a"i}`,
			want: "struct test { int a; }",
		},
		{
			name: "anonymous union",
			enc:  "(?=i)",
			want: "union { int x0; }",
		},
		{
			name: "block",
			enc:  "@?",
			want: "id /* block */",
		},
		{
			name: "block with signature",
			enc:  "@?<v@?i>",
			want: "void (^)(id /* block */, int)",
		},
		{
			name: "named object",
			enc:  `@"NSString"`,
			want: "NSString *",
		},
		{
			name: "object with protocols",
			enc:  `@"NSObject<NSCopying>"`,
			want: "NSObject<NSCopying> *",
		},
		{
			name: "bare id",
			enc:  "@",
			want: "id",
		},
		{
			name: "const qualifier",
			enc:  "ri",
			want: "const int",
		},
		{
			name: "bare pointer",
			enc:  "^",
			want: "void *",
		},
		{
			name: "forward declaration",
			enc:  "{Foo}",
			want: "struct Foo",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			typ, err := ParseType(tt.enc)
			if err != nil {
				t.Fatalf("ParseType(%q) failed: %v", tt.enc, err)
			}
			if got := typ.CType(); got != tt.want {
				t.Errorf("CType() = %v, want %v", got, tt.want)
			}
		})
	}
}
