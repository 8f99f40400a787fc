// Package mmio is the single place where device registers are touched. The
// rest of the system sees registers only through Bus, so the same code runs
// against the real address space, an mmap'd register image, or plain memory.
package mmio

import "bl602/src/lib/fault"

// Bus performs one access of the stated width per call. Implementations must
// never merge, split, cache, reorder or drop an access: reading a counter or
// writing a pending bit has effects the compiler cannot see.
type Bus interface {
	LoadUint8(addr uintptr) uint8
	StoreUint8(addr uintptr, val uint8)
	LoadUint32(addr uintptr) uint32
	StoreUint32(addr uintptr, val uint32)
	LoadUint64(addr uintptr) uint64
	StoreUint64(addr uintptr, val uint64)
}

// Window is a contiguous range of device addresses.
type Window struct {
	Base uintptr
	Size uintptr
}

func (w Window) End() uintptr {
	return w.Base + w.Size
}

func (w Window) contains(addr uintptr, width uintptr) bool {
	return addr >= w.Base && addr-w.Base+width <= w.Size
}

func (w Window) overlaps(o Window) bool {
	return w.Base < o.End() && o.Base < w.End()
}

func checkWindows(windows []Window) error {
	for i, w := range windows {
		if w.Base&7 != 0 || w.Size&7 != 0 {
			return fault.ErrWindowUnaligned
		}
		for _, o := range windows[i+1:] {
			if w.overlaps(o) {
				return fault.ErrWindowOverlap
			}
		}
	}
	return nil
}

func outsideWindows(addr uintptr) {
	panic("mmio: access outside every mapped window")
}
