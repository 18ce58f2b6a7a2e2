//go:build !cgo

package typesize

import (
	"runtime"
	"unsafe"
)

const source = "go compiler"

// Without a C compiler the widths follow the host data model: long tracks
// the pointer everywhere except Windows (LLP64).
func toolchainSizes() Sizes {
	ptr := unsafe.Sizeof(uintptr(0))
	long := ptr
	if runtime.GOOS == "windows" {
		long = unsafe.Sizeof(int32(0))
	}
	return Sizes{
		Char:     unsafe.Sizeof(byte(0)),
		Short:    unsafe.Sizeof(int16(0)),
		Int:      unsafe.Sizeof(int32(0)),
		Long:     long,
		LongLong: unsafe.Sizeof(int64(0)),
		Float:    unsafe.Sizeof(float32(0)),
		Double:   unsafe.Sizeof(float64(0)),
		Bool:     unsafe.Sizeof(false),
		Pointer:  ptr,
	}
}
