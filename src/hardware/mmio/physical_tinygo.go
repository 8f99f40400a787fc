//go:build tinygo

package mmio

import (
	"runtime/volatile"
	"unsafe"
)

// Physical is the hart's own address space. Every call compiles to exactly
// one volatile load or store.
var Physical Bus = physical{}

type physical struct{}

func (physical) LoadUint8(addr uintptr) uint8 {
	return volatile.LoadUint8((*uint8)(unsafe.Pointer(addr)))
}

func (physical) StoreUint8(addr uintptr, val uint8) {
	volatile.StoreUint8((*uint8)(unsafe.Pointer(addr)), val)
}

func (physical) LoadUint32(addr uintptr) uint32 {
	return volatile.LoadUint32((*uint32)(unsafe.Pointer(addr)))
}

func (physical) StoreUint32(addr uintptr, val uint32) {
	volatile.StoreUint32((*uint32)(unsafe.Pointer(addr)), val)
}

func (physical) LoadUint64(addr uintptr) uint64 {
	return volatile.LoadUint64((*uint64)(unsafe.Pointer(addr)))
}

func (physical) StoreUint64(addr uintptr, val uint64) {
	volatile.StoreUint64((*uint64)(unsafe.Pointer(addr)), val)
}
