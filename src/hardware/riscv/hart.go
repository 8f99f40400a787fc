// Package riscv is the handful of machine mode control and status registers
// the interrupt core needs from the hart it runs on.
package riscv

// mstatus: machine interrupt enable
const mstatusMIE = 1 << 3

// TrapModeDirect goes in the low bits of mtvec: every trap enters at the base
// address and the cause is decoded in software.
const TrapModeDirect = 0b10

// Hart is global interrupt masking, trap vector installation and the trap
// cause of one hart.
type Hart interface {
	DisableInterrupts()
	EnableInterrupts()
	WriteTrapVector(mtvec uintptr)
	Cause() Cause
}

// Cause is the value of mcause on a 32-bit hart.
type Cause uint32

const causeInterrupt Cause = 1 << 31

// InterruptCause builds the mcause value for interrupt line code.
func InterruptCause(code uint32) Cause {
	return causeInterrupt | Cause(code)&^causeInterrupt
}

// ExceptionCause builds the mcause value for synchronous exception code.
func ExceptionCause(code uint32) Cause {
	return Cause(code) &^ causeInterrupt
}

func (c Cause) IsInterrupt() bool {
	return c&causeInterrupt != 0
}

func (c Cause) IsException() bool {
	return !c.IsInterrupt()
}

// Code is the cause with the interrupt flag removed.
func (c Cause) Code() uint32 {
	return uint32(c &^ causeInterrupt)
}
