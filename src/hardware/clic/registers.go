package clic

import (
	"bl602/src/hardware/bl602"
	"bl602/src/hardware/mmio"
)

// Registers is the part of the core local interruptor this package drives:
// the mtime/mtimecmp pair and hart 0's pending and enable banks. Both banks
// have one byte per irq line.
type Registers struct {
	MTime      mmio.Register64
	MTimeCmp   mmio.Register64
	IntPending mmio.ByteBank
	IntEnable  mmio.ByteBank
}

func NewRegisters(bus mmio.Bus) *Registers {
	return &Registers{
		MTime:      mmio.NewRegister64(bus, bl602.CLICCtrlAddr+bl602.CLICMTime),
		MTimeCmp:   mmio.NewRegister64(bus, bl602.CLICCtrlAddr+bl602.CLICMTimeCmp),
		IntPending: mmio.NewByteBank(bus, bl602.CLICHart0Addr+bl602.CLICIntIP, bl602.IRQTableSize),
		IntEnable:  mmio.NewByteBank(bus, bl602.CLICHart0Addr+bl602.CLICIntIE, bl602.IRQTableSize),
	}
}

// Windows is the address space NewRegisters needs mapped.
func Windows() []mmio.Window {
	return []mmio.Window{
		{Base: bl602.CLICCtrlAddr, Size: bl602.CLICTimerBlockSize},
		{Base: bl602.CLICHart0Addr, Size: bl602.CLICHartBlockSize},
	}
}
