package typeenc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMethodTypesWithOffsets(t *testing.T) {
	m, err := ParseMethodTypes("@24@0:8^{_NSZone=}16")
	require.NoError(t, err)
	require.Len(t, m.Types, 4)
	assert.Equal(t, []int{24, 0, 8, 16}, m.Offsets)
	assert.False(t, m.HasLeading)
	assert.Equal(t, "@24@0:8^{_NSZone=}16", m.Encode())

	assert.Equal(t, KindObject, m.Types[0].Kind)
	assert.Equal(t, KindObject, m.Types[1].Kind)
	assert.Equal(t, KindSelector, m.Types[2].Kind)
	assert.Equal(t, KindPointer, m.Types[3].Kind)
}

func TestMethodEqualityIgnoresOffsets(t *testing.T) {
	withOffsets, err := ParseMethodTypes("@24@0:8^{_NSZone=}16")
	require.NoError(t, err)

	zonePtr := &TypeEncoding{
		Kind: KindPointer,
		Elem: &TypeEncoding{Kind: KindStruct, Name: "_NSZone", Fields: []Field{}},
	}
	constructed := NewMethodTypes(&TypeEncoding{Kind: KindObject}, zonePtr)

	assert.True(t, withOffsets.Equal(constructed))
	assert.True(t, constructed.Equal(withOffsets))
	// Same types, different serialization: no offsets are invented.
	assert.Equal(t, "@@:^{_NSZone=}", constructed.Encode())
	assert.NotEqual(t, withOffsets.Encode(), constructed.Encode())
}

func TestMethodLeadingGarbage(t *testing.T) {
	// Some producers emit stray digits before the first type code; the
	// string is semantically malformed but must round-trip exactly.
	m, err := ParseMethodTypes("68@0:8163248f64")
	require.NoError(t, err)
	require.True(t, m.HasLeading)
	assert.Equal(t, 68, m.Leading)
	require.Len(t, m.Types, 3)
	assert.Equal(t, []int{0, 8163248, 64}, m.Offsets)
	assert.Equal(t, "68@0:8163248f64", m.Encode())
}

func TestMethodNoOffsets(t *testing.T) {
	// "ii" fails the single-type parse but is a valid two-type sequence.
	m, err := ParseMethodTypes("ii")
	require.NoError(t, err)
	require.Len(t, m.Types, 2)
	assert.Nil(t, m.Offsets)
	assert.Equal(t, "ii", m.Encode())

	_, err = ParseType("ii")
	require.ErrorIs(t, err, ErrTrailingData)
}

func TestMethodRoundTrip(t *testing.T) {
	for _, s := range []string{
		"v24@0:8@16",
		"@@:",
		"v@:@",
		`@?<v@?@"NSURLRequest">16@0:8`,
		"r^{__CFString=}8@0:4",
		"",
	} {
		m, err := ParseMethodTypes(s)
		require.NoError(t, err, "parse %q", s)
		assert.Equal(t, s, m.Encode(), "round trip %q", s)
	}
}

func TestMethodConsistencyFailures(t *testing.T) {
	// Offsets are all-or-none against the type count.
	_, err := ParseMethodTypes("i0i")
	require.ErrorIs(t, err, ErrOffsetMismatch)

	// A leading integer is only meaningful when offsets follow.
	_, err = ParseMethodTypes("12")
	require.ErrorIs(t, err, ErrOffsetMismatch)

	// Any structural failure fails the whole sequence.
	_, err = ParseMethodTypes("i0z")
	require.ErrorIs(t, err, ErrUnknownType)
	_, err = ParseMethodTypes("v@:{Foo")
	require.ErrorIs(t, err, ErrUnterminated)
}

func TestMethodConstructors(t *testing.T) {
	obj := &TypeEncoding{Kind: KindObject}

	method := NewMethodTypes(&TypeEncoding{Kind: KindVoid}, obj, &TypeEncoding{Kind: KindInt})
	assert.Equal(t, "v@:@i", method.Encode())

	getter := NewGetterTypes(obj)
	assert.Equal(t, "@@:", getter.Encode())

	setter := NewSetterTypes(obj)
	assert.Equal(t, "v@:@", setter.Encode())

	// Constructor output parses back equal to itself.
	parsed, err := ParseMethodTypes(setter.Encode())
	require.NoError(t, err)
	assert.True(t, parsed.Equal(setter))
}
