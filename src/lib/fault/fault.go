package fault

const subsystemMask = 0xff00_0000
const errorNumberMask = 0x0000_ffff

// MMIO errors
const MMIOSubsystem = 1
const MMIOWindowMissing = 1
const MMIOWindowOverlap = 2
const MMIOWindowUnaligned = 3

var ErrWindowMissing = errorValue(MMIOSubsystem, MMIOWindowMissing)
var ErrWindowOverlap = errorValue(MMIOSubsystem, MMIOWindowOverlap)
var ErrWindowUnaligned = errorValue(MMIOSubsystem, MMIOWindowUnaligned)

// Trap errors
const TrapSubsystem = 2
const TrapUnknownSource = 1
const TrapNilHandler = 2
const TrapMissingHandler = 3

var ErrUnknownSource = errorValue(TrapSubsystem, TrapUnknownSource)
var ErrNilHandler = errorValue(TrapSubsystem, TrapNilHandler)
var ErrMissingHandler = errorValue(TrapSubsystem, TrapMissingHandler)

// Error is a subsystem number and an error number packed into one word so it
// can be compared with == (and errors.Is) without allocating.
type Error uint32

var errorMap = map[Error]string{}

func init() {
	createError(MMIOSubsystem, MMIOWindowMissing, "no register window is mapped at that address")
	createError(MMIOSubsystem, MMIOWindowOverlap, "register windows overlap")
	createError(MMIOSubsystem, MMIOWindowUnaligned, "register window is not 8 byte aligned")
	createError(TrapSubsystem, TrapUnknownSource, "interrupt source has no irq number")
	createError(TrapSubsystem, TrapNilHandler, "handler is nil")
	createError(TrapSubsystem, TrapMissingHandler, "no handler registered")
}

func createError(subsys byte, errorNumber uint16, text string) {
	errorMap[errorValue(subsys, errorNumber)] = text
}

func errorValue(subsys byte, errorNumber uint16) Error {
	ss := subsystemMask & (uint32(subsys) << 24)
	en := errorNumberMask & uint32(errorNumber)
	return Error(ss | en)
}

func (e Error) Subsystem() byte {
	return byte((uint32(e) & subsystemMask) >> 24)
}

func (e Error) Number() uint16 {
	return uint16(uint32(e) & errorNumberMask)
}

func (e Error) Error() string {
	t, ok := errorMap[e]
	if !ok {
		return "unknown error code"
	}
	return t
}
