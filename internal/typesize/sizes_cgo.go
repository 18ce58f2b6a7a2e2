//go:build cgo

package typesize

/*
#include <stdbool.h>
#include <stddef.h>

enum {
	scalars_sizeof_char      = sizeof(char),
	scalars_sizeof_short     = sizeof(short),
	scalars_sizeof_int       = sizeof(int),
	scalars_sizeof_long      = sizeof(long),
	scalars_sizeof_long_long = sizeof(long long),
	scalars_sizeof_float     = sizeof(float),
	scalars_sizeof_double    = sizeof(double),
	scalars_sizeof_bool      = sizeof(bool),
	scalars_sizeof_pointer   = sizeof(void *),
};
*/
import "C"

// source names where the host sizes come from.
const source = "c toolchain"

func toolchainSizes() Sizes {
	return Sizes{
		Char:     uintptr(C.scalars_sizeof_char),
		Short:    uintptr(C.scalars_sizeof_short),
		Int:      uintptr(C.scalars_sizeof_int),
		Long:     uintptr(C.scalars_sizeof_long),
		LongLong: uintptr(C.scalars_sizeof_long_long),
		Float:    uintptr(C.scalars_sizeof_float),
		Double:   uintptr(C.scalars_sizeof_double),
		Bool:     uintptr(C.scalars_sizeof_bool),
		Pointer:  uintptr(C.scalars_sizeof_pointer),
	}
}
