//go:build darwin && cgo

package typeenc

/*
#include <stdlib.h>
#include <dlfcn.h>

typedef const char *ns_get_size_and_alignment(const char *typePtr, unsigned long *sizep, unsigned long *alignp);

int TypeEncodingSizeAndAlignment(const char *enc, unsigned long *size, unsigned long *align) {
    if (enc == NULL || enc[0] == '\0' || size == NULL || align == NULL) {
        return -3;
    }

    void *handle = dlopen("/System/Library/Frameworks/Foundation.framework/Foundation", RTLD_LAZY);
    if (!handle) {
        return -2;
    }

    ns_get_size_and_alignment *fn = dlsym(handle, "NSGetSizeAndAlignment");
    if (!fn) {
        dlclose(handle);
        return -1;
    }

    fn(enc, size, align);
    dlclose(handle);
    return 0;
}
*/
import "C"

import (
	"fmt"
	"unsafe"
)

func platformSizeAndAlignment(enc string) (uint64, uint64, error) {
	if enc == "" {
		return 0, 0, fmt.Errorf("%w: empty encoding", ErrLayoutUnavailable)
	}

	cenc := C.CString(enc)
	defer C.free(unsafe.Pointer(cenc))

	var size, align C.ulong
	switch ret := C.TypeEncodingSizeAndAlignment(cenc, &size, &align); ret {
	case 0:
		return uint64(size), uint64(align), nil
	case -1:
		return 0, 0, fmt.Errorf("%w: NSGetSizeAndAlignment not found", ErrLayoutUnavailable)
	case -2:
		return 0, 0, fmt.Errorf("%w: failed to load Foundation", ErrLayoutUnavailable)
	default:
		return 0, 0, fmt.Errorf("%w: lookup failed (%d)", ErrLayoutUnavailable, int(ret))
	}
}
