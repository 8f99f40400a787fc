//go:build linux && !baremetal

package mmio

import (
	"fmt"
	"os"
	"sync/atomic"
	"unsafe"

	"golang.org/x/sys/unix"

	"bl602/src/lib/fault"
)

// Device is a Bus over windows mmap'd from a file: /dev/mem on a host that can
// see the register bank, or a register image shared with another process.
// Offsets into the file are the physical addresses themselves.
type Device struct {
	f       *os.File
	windows []Window
	views   [][]byte
	maps    [][]byte
}

func OpenDevice(path string, windows ...Window) (*Device, error) {
	if err := checkWindows(windows); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(path, os.O_RDWR|os.O_SYNC, 0)
	if err != nil {
		return nil, fmt.Errorf("open register device: %w", err)
	}
	d := &Device{f: f, windows: append([]Window(nil), windows...)}
	page := uintptr(unix.Getpagesize())
	for _, w := range windows {
		start := w.Base &^ (page - 1)
		length := (w.End() - start + page - 1) &^ (page - 1)
		b, err := unix.Mmap(int(f.Fd()), int64(start), int(length), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
		if err != nil {
			d.Close()
			return nil, fmt.Errorf("mmap window %#x+%#x: %w", w.Base, w.Size, err)
		}
		d.maps = append(d.maps, b)
		off := w.Base - start
		d.views = append(d.views, b[off:off+w.Size])
	}
	return d, nil
}

func (d *Device) Close() error {
	var first error
	for _, b := range d.maps {
		if err := unix.Munmap(b); err != nil && first == nil {
			first = err
		}
	}
	d.maps = nil
	d.views = nil
	if err := d.f.Close(); err != nil && first == nil {
		first = err
	}
	return first
}

func (d *Device) Windows() []Window {
	return append([]Window(nil), d.windows...)
}

func (d *Device) ptr(addr uintptr, width uintptr) unsafe.Pointer {
	for i, w := range d.windows {
		if w.contains(addr, width) {
			if d.views == nil {
				panic(fault.ErrWindowMissing)
			}
			return unsafe.Pointer(&d.views[i][addr-w.Base])
		}
	}
	outsideWindows(addr)
	return nil
}

//go:noinline
func (d *Device) LoadUint8(addr uintptr) uint8 {
	return *(*uint8)(d.ptr(addr, 1))
}

//go:noinline
func (d *Device) StoreUint8(addr uintptr, val uint8) {
	*(*uint8)(d.ptr(addr, 1)) = val
}

func (d *Device) LoadUint32(addr uintptr) uint32 {
	return atomic.LoadUint32((*uint32)(d.ptr(addr, 4)))
}

func (d *Device) StoreUint32(addr uintptr, val uint32) {
	atomic.StoreUint32((*uint32)(d.ptr(addr, 4)), val)
}

func (d *Device) LoadUint64(addr uintptr) uint64 {
	return atomic.LoadUint64((*uint64)(d.ptr(addr, 8)))
}

func (d *Device) StoreUint64(addr uintptr, val uint64) {
	atomic.StoreUint64((*uint64)(d.ptr(addr, 8)), val)
}
