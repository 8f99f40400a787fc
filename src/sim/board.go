// Package sim is a host side model of a BL602 hart: the clic register bank in
// ordinary memory (or an mmap'd image), a hart with the three CSRs the
// interrupt core uses, and the trap path wired the way the firmware wires it.
package sim

import (
	"fmt"
	"io"
	"math"
	"os"

	"bl602/src/hardware/bl602"
	"bl602/src/hardware/bl602/clock"
	"bl602/src/hardware/clic"
	"bl602/src/hardware/mmio"
	"bl602/src/hardware/riscv"
	"bl602/src/lib/fault"
	"bl602/src/lib/trap"
	"bl602/src/lib/trust"
)

// TrapEntry is where the simulated trap vector points: the start of XIP flash.
const TrapEntry = 0x2300_0000

type Config struct {
	SysClk        clock.Hertz
	RTC           clock.Hertz // zero leaves the rtc off, and Board.Clic nil
	SplitTickRead bool
	Image         string // register image to mmap instead of private memory
	// Bus, when set, is used as is and Image is ignored. It must map
	// clic.Windows().
	Bus mmio.Bus
}

type Board struct {
	Hart       *riscv.SimHart
	Regs       *clic.Registers
	Clic       *clic.Clic
	Registry   *trap.Registry
	Dispatcher *trap.Dispatcher

	frame  trap.Frame
	closer io.Closer
}

func NewBoard(cfg Config) (*Board, error) {
	bus := cfg.Bus
	var closer io.Closer
	switch {
	case bus != nil:
	case cfg.Image != "":
		d, err := mmio.OpenDevice(cfg.Image, clic.Windows()...)
		if err != nil {
			return nil, err
		}
		if err := checkImage(cfg.Image, d.Windows()); err != nil {
			d.Close()
			return nil, err
		}
		bus, closer = d, d
	default:
		m, err := mmio.NewMemory(clic.Windows()...)
		if err != nil {
			return nil, err
		}
		bus = m
	}

	b := &Board{
		Hart:     &riscv.SimHart{},
		Regs:     clic.NewRegisters(bus),
		Registry: trap.NewRegistry(),
		closer:   closer,
	}
	b.Dispatcher = trap.NewDispatcher(b.Hart, b.Registry)
	trap.SetupInterrupts(b.Hart, b.Regs, TrapEntry)
	// mtimecmp has no reset value; park it so the timer line starts low
	b.Regs.MTimeCmp.Set(math.MaxUint64)

	clocks := clock.New(cfg.SysClk).WithRTC(cfg.RTC)
	var opts []clic.Option
	if cfg.SplitTickRead {
		opts = append(opts, clic.WithSplitTickRead())
	}
	if c, ok := clic.TryNew(clocks, b.Regs, opts...); ok {
		b.Clic = c
	} else {
		trust.Warnf("sim: rtc clock is off, no mtime time base")
	}
	return b, nil
}

// checkImage refuses an image file that ends before a mapped window does;
// touching such a page faults instead of failing.
func checkImage(path string, windows []mmio.Window) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("register image: %w", err)
	}
	for _, w := range windows {
		if uintptr(info.Size()) < w.End() {
			return fmt.Errorf("register image %s is %d bytes, window %#x+%#x runs past it: %w",
				path, info.Size(), w.Base, w.Size, fault.ErrWindowMissing)
		}
	}
	return nil
}

func (b *Board) Close() error {
	if b.closer == nil {
		return nil
	}
	c := b.closer
	b.closer = nil
	return c.Close()
}

// Advance moves mtime forward and delivers whatever became pending.
func (b *Board) Advance(ticks uint64) {
	b.Regs.MTime.Set(b.Regs.MTime.Get() + ticks)
	b.Deliver()
}

// Raise flags source as pending, the way its peripheral would, and delivers.
func (b *Board) Raise(source bl602.Interrupt) {
	b.Regs.Pend(source)
	b.Deliver()
}

// RaiseLine traps on a raw interrupt line regardless of the banks; used for
// lines the core has no name for.
func (b *Board) RaiseLine(irq uint32) {
	b.trap(riscv.InterruptCause(irq))
}

// Exception takes a synchronous exception with the given code.
func (b *Board) Exception(code uint32) {
	b.trap(riscv.ExceptionCause(code))
}

// Deliver takes one trap for every line that is pending and enabled, lowest
// irq first, as long as global interrupts are enabled. The machine timer line
// is level triggered on mtime >= mtimecmp.
func (b *Board) Deliver() {
	if !b.Hart.InterruptsEnabled() {
		return
	}
	for _, source := range bl602.Interrupts() {
		if source == bl602.MachineTimer {
			b.updateTimerLine()
		}
		if b.Regs.IsPending(source) && b.Regs.IsEnabled(source) {
			b.trap(riscv.InterruptCause(source.IRQ()))
		}
	}
}

func (b *Board) updateTimerLine() {
	if b.Regs.MTime.Get() >= b.Regs.MTimeCmp.Get() {
		b.Regs.Pend(bl602.MachineTimer)
	} else {
		b.Regs.ClearInterrupt(bl602.MachineTimer)
	}
}

// trap does what the hardware and the assembly entry do: mask interrupts, load
// mcause, save the frame and call the dispatcher, then restore.
func (b *Board) trap(cause riscv.Cause) {
	b.Hart.Raise(cause)
	b.Hart.DisableInterrupts()
	b.Dispatcher.Dispatch(&b.frame)
	b.Hart.EnableInterrupts()
}
