package riscv

// SimHart keeps the three CSRs in memory. With Trace set, Log records every
// CSR write in order.
type SimHart struct {
	MStatus uintptr
	MTVec   uintptr
	MCause  Cause
	Trace   bool
	Log     []string
}

func (h *SimHart) record(op string) {
	if h.Trace {
		h.Log = append(h.Log, op)
	}
}

func (h *SimHart) DisableInterrupts() {
	h.MStatus &^= mstatusMIE
	h.record("disable")
}

func (h *SimHart) EnableInterrupts() {
	h.MStatus |= mstatusMIE
	h.record("enable")
}

func (h *SimHart) InterruptsEnabled() bool {
	return h.MStatus&mstatusMIE != 0
}

func (h *SimHart) WriteTrapVector(mtvec uintptr) {
	h.MTVec = mtvec
	h.record("mtvec")
}

func (h *SimHart) Cause() Cause {
	return h.MCause
}

// Raise loads mcause as the hardware would on trap entry.
func (h *SimHart) Raise(c Cause) {
	h.MCause = c
}
