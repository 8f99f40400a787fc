//go:build tinygo && riscv

package riscv

import (
	dev "device/riscv"
)

// CSRHart is the hart this code is running on.
type CSRHart struct{}

func (CSRHart) DisableInterrupts() {
	dev.MSTATUS.ClearBits(mstatusMIE)
}

func (CSRHart) EnableInterrupts() {
	dev.MSTATUS.SetBits(mstatusMIE)
}

func (CSRHart) WriteTrapVector(mtvec uintptr) {
	dev.MTVEC.Set(mtvec)
}

func (CSRHart) Cause() Cause {
	return Cause(dev.MCAUSE.Get())
}
