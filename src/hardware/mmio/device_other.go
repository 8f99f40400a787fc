//go:build !linux || baremetal

package mmio

import "errors"

// Device is only available on linux hosts; bare metal builds use Physical.
type Device struct{}

func OpenDevice(path string, windows ...Window) (*Device, error) {
	return nil, errors.New("mmio: register devices need linux mmap")
}

func (d *Device) Close() error                         { return nil }
func (d *Device) Windows() []Window                    { return nil }
func (d *Device) LoadUint8(addr uintptr) uint8         { outsideWindows(addr); return 0 }
func (d *Device) StoreUint8(addr uintptr, val uint8)   { outsideWindows(addr) }
func (d *Device) LoadUint32(addr uintptr) uint32       { outsideWindows(addr); return 0 }
func (d *Device) StoreUint32(addr uintptr, val uint32) { outsideWindows(addr) }
func (d *Device) LoadUint64(addr uintptr) uint64       { outsideWindows(addr); return 0 }
func (d *Device) StoreUint64(addr uintptr, val uint64) { outsideWindows(addr) }
