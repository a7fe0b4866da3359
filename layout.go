package typeenc

import "errors"

// ErrLayoutUnavailable reports that the host platform cannot answer
// size-and-alignment queries (any platform without the Objective-C
// runtime, or a build without cgo).
var ErrLayoutUnavailable = errors.New("size and alignment lookup requires the Objective-C runtime")

// SizeAndAlignment reports the byte size and alignment the platform
// runtime assigns to the type. The numbers come entirely from the
// host's NSGetSizeAndAlignment; this library performs no ABI
// computation of its own.
func SizeAndAlignment(t *TypeEncoding) (size, align uint64, err error) {
	return platformSizeAndAlignment(t.Encode())
}
