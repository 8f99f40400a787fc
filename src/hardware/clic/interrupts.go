package clic

import "bl602/src/hardware/bl602"

// EnableInterrupt sets the enable byte of i.
//
//	regs.EnableInterrupt(bl602.TimerCh0)
//
//	func timerCh0(frame *trap.Frame) {
//		// ...
//		regs.ClearInterrupt(bl602.TimerCh0)
//	}
func (r *Registers) EnableInterrupt(i bl602.Interrupt) {
	r.IntEnable.Set(i.IRQ(), 1)
}

// DisableInterrupt clears the enable byte of i.
func (r *Registers) DisableInterrupt(i bl602.Interrupt) {
	r.IntEnable.Set(i.IRQ(), 0)
}

// ClearInterrupt clears the pending byte of i and no other. Most peripherals
// also latch the interrupt in their own status register; that has to be
// cleared by the handler as well or the line is raised again.
func (r *Registers) ClearInterrupt(i bl602.Interrupt) {
	r.IntPending.Set(i.IRQ(), 0)
}

// Pend sets the pending byte of i, raising it in software.
func (r *Registers) Pend(i bl602.Interrupt) {
	r.IntPending.Set(i.IRQ(), 1)
}

func (r *Registers) IsEnabled(i bl602.Interrupt) bool {
	return r.IntEnable.Get(i.IRQ()) != 0
}

func (r *Registers) IsPending(i bl602.Interrupt) bool {
	return r.IntPending.Get(i.IRQ()) != 0
}

// Reset disables and unflags every line, including the ones with no name.
func (r *Registers) Reset() {
	r.IntEnable.Fill(0)
	r.IntPending.Fill(0)
}
