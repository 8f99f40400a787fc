package trap

// Frame is the register file saved by the assembly trap entry before it calls
// into Go. The layout is shared with that assembly and must not change.
// Handlers get it for the length of one call and must not keep it.
type Frame struct {
	RA  uintptr
	T0  uintptr
	T1  uintptr
	T2  uintptr
	T3  uintptr
	T4  uintptr
	T5  uintptr
	T6  uintptr
	A0  uintptr
	A1  uintptr
	A2  uintptr
	A3  uintptr
	A4  uintptr
	A5  uintptr
	A6  uintptr
	A7  uintptr
	S0  uintptr
	S1  uintptr
	S2  uintptr
	S3  uintptr
	S4  uintptr
	S5  uintptr
	S6  uintptr
	S7  uintptr
	S8  uintptr
	S9  uintptr
	S10 uintptr
	S11 uintptr
	GP  uintptr
	TP  uintptr
	SP  uintptr
}
