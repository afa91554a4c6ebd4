//go:build !htab_opt_cachelinesize_64

package htab

import (
	"unsafe"

	"golang.org/x/sys/cpu"
)

// CacheLineSize is the alignment unit of the Table header.
// Taken from `golang.org/x/sys/cpu` for the target architecture.
const CacheLineSize = unsafe.Sizeof(cpu.CacheLinePad{})
