//go:build tinygo && riscv

package trap

import (
	"unsafe"

	"bl602/src/hardware/clic"
	"bl602/src/hardware/riscv"
)

// _start_trap_hal saves the registers into a Frame on the stack and calls
// trap_dispatch_hal with a pointer to it.
//
//go:extern _start_trap_hal
var trapEntry [0]byte

// Default is the registry the trap entry dispatches through.
var Default = NewRegistry()

var hartDispatcher = NewDispatcher(riscv.CSRHart{}, Default)

// Setup runs SetupInterrupts on this hart with the assembly trap entry.
func Setup() {
	SetupInterrupts(riscv.CSRHart{}, clic.Hart0(), uintptr(unsafe.Pointer(&trapEntry)))
}

// Stats returns the dispatcher behind the trap entry.
func Stats() *Dispatcher {
	return hartDispatcher
}

//export trap_dispatch_hal
func dispatchHAL(frame *Frame) {
	hartDispatcher.Dispatch(frame)
}
