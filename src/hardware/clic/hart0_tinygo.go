//go:build tinygo

package clic

import "bl602/src/hardware/mmio"

var hart0 = NewRegisters(mmio.Physical)

// Hart0 is the register bank of the only hart, at its physical address.
func Hart0() *Registers {
	return hart0
}
