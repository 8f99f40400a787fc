package trap

import (
	"bl602/src/hardware/clic"
	"bl602/src/hardware/riscv"
	"bl602/src/lib/trust"
)

// SetupInterrupts is the reset path of the interrupt core: with interrupts
// masked it points mtvec at entry in direct mode, disables and unflags every
// line, then unmasks interrupts. Run it once, before anything enables a line.
func SetupInterrupts(hart riscv.Hart, regs *clic.Registers, entry uintptr) {
	hart.DisableInterrupts()
	hart.WriteTrapVector(entry | riscv.TrapModeDirect)
	regs.Reset()
	hart.EnableInterrupts()
	trust.Infof("trap: vector at %#x, %d lines cleared", entry, regs.IntEnable.Len())
}
