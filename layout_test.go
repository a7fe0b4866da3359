package typeenc

import (
	"errors"
	"testing"
)

func TestSizeAndAlignment(t *testing.T) {
	typ, err := ParseType("i")
	if err != nil {
		t.Fatalf("ParseType failed: %v", err)
	}
	size, align, err := SizeAndAlignment(typ)
	if err != nil {
		// Off the Objective-C runtime the capability is reported as
		// unavailable, never as a bogus answer.
		if !errors.Is(err, ErrLayoutUnavailable) {
			t.Fatalf("SizeAndAlignment error = %v, want ErrLayoutUnavailable", err)
		}
		t.Skipf("layout lookup unavailable on this platform: %v", err)
	}
	if size == 0 || align == 0 {
		t.Fatalf("SizeAndAlignment = %d, %d; want non-zero", size, align)
	}
}
