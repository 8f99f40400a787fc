package trap

import (
	"bl602/src/hardware/bl602"
	"bl602/src/hardware/riscv"
	"bl602/src/lib/trust"
)

// the clic reports the irq number in the low byte of the cause code
const causeCodeMask = 0xff

type State int

const (
	Idle State = iota
	Dispatching
)

func (s State) String() string {
	if s == Dispatching {
		return "dispatching"
	}
	return "idle"
}

// Dispatcher routes each trap to its handler. There is one per hart; it runs
// with the interrupted context suspended and is not safe for use from more
// than one goroutine.
type Dispatcher struct {
	hart       riscv.Hart
	registry   *Registry
	depth      int
	counts     [bl602.NumInterrupts]uint64
	exceptions uint64
}

func NewDispatcher(hart riscv.Hart, registry *Registry) *Dispatcher {
	return &Dispatcher{hart: hart, registry: registry}
}

// Dispatch is entered on every trap with the frame saved by the trap entry.
// Exceptions and undecodable interrupts go to the exception handler; known
// interrupts go to their registered handler. It returns when the handler does.
func (d *Dispatcher) Dispatch(frame *Frame) {
	d.depth++
	defer func() { d.depth-- }()

	cause := d.hart.Cause()
	if cause.IsException() {
		d.exceptions++
		d.exception(frame, cause)
		return
	}

	irq := cause.Code()
	if irq >= bl602.IRQNumBase {
		irq &= causeCodeMask
	}
	source := bl602.FromIRQ(irq)
	d.counts[source]++
	if source == bl602.Unknown {
		trust.Warnf("trap: unknown interrupt line %d (mcause %#x)", irq, uint32(cause))
		d.exception(frame, cause)
		return
	}
	h := d.registry.handlers[source]
	if h == nil {
		trust.Warnf("trap: no handler for %s", source)
		d.exception(frame, cause)
		return
	}
	trust.Debugf("trap: %s (irq %d)", source, irq)
	h(frame)
}

func (d *Dispatcher) exception(frame *Frame, cause riscv.Cause) {
	if d.registry.exception != nil {
		d.registry.exception(frame)
		return
	}
	trust.Errorf("trap: unhandled mcause %#x, ra %#x sp %#x", uint32(cause), frame.RA, frame.SP)
}

func (d *Dispatcher) State() State {
	if d.depth > 0 {
		return Dispatching
	}
	return Idle
}

// Depth is the number of traps currently being dispatched; more than one
// means a handler was preempted.
func (d *Dispatcher) Depth() int {
	return d.depth
}

// Count is the number of interrupts decoded as i. Count(bl602.Unknown) counts
// interrupt lines with no name.
func (d *Dispatcher) Count(i bl602.Interrupt) uint64 {
	if int(i) >= bl602.NumInterrupts {
		return 0
	}
	return d.counts[i]
}

func (d *Dispatcher) ExceptionCount() uint64 {
	return d.exceptions
}

// LogStats reports the counters through trust.Statsf.
func (d *Dispatcher) LogStats() {
	for _, i := range bl602.Interrupts() {
		if d.counts[i] != 0 {
			trust.Statsf("trap", "%s=%d", i, d.counts[i])
		}
	}
	trust.Statsf("trap", "unknown=%d exceptions=%d", d.counts[bl602.Unknown], d.exceptions)
}
