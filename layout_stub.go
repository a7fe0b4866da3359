//go:build !darwin || !cgo

package typeenc

func platformSizeAndAlignment(enc string) (uint64, uint64, error) {
	return 0, 0, ErrLayoutUnavailable
}
