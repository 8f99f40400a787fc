// Package clic drives the BL602 core local interruptor: the per line enable
// and pending banks and the mtime counter with its compare register.
package clic

import (
	"math"
	"math/bits"
	"time"

	"bl602/src/hardware/bl602/clock"
)

// RTCSource supplies the frequency mtime counts at. On the BL602 that is the
// rtc clock, and it is only available when the rtc is running.
type RTCSource interface {
	RTCClk() (clock.Hertz, bool)
}

// Clic is the mtime based time base.
type Clic struct {
	regs      *Registers
	freq      clock.Hertz
	msScale   uint64
	usScale   uint64
	splitRead bool
}

type Option func(*Clic)

// WithSplitTickRead reads mtime as two 32-bit halves, retrying until the high
// half is stable, for buses that cannot do an atomic 64-bit read.
func WithSplitTickRead() Option {
	return func(c *Clic) {
		c.splitRead = true
	}
}

// TryNew returns a Clic if the rtc is enabled.
func TryNew(clocks RTCSource, regs *Registers, opts ...Option) (*Clic, bool) {
	freq, ok := clocks.RTCClk()
	if !ok || freq == 0 {
		return nil, false
	}
	c := &Clic{
		regs:    regs,
		freq:    freq,
		msScale: uint64(freq.Kilohertz()),
		usScale: uint64(freq.Megahertz()),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, true
}

func (c *Clic) Frequency() clock.Hertz {
	return c.freq
}

// Ticks reads the current value of mtime.
func (c *Clic) Ticks() uint64 {
	if c.splitRead {
		return c.regs.MTime.GetSplit()
	}
	return c.regs.MTime.Get()
}

// TimeMs is ticks divided by the frequency in whole kilohertz, so anything
// below a kilohertz of the rate is dropped.
func (c *Clic) TimeMs() uint64 {
	return c.scale(c.Ticks(), c.msScale, 1_000)
}

// TimeUs is ticks divided by the frequency in whole megahertz.
func (c *Clic) TimeUs() uint64 {
	return c.scale(c.Ticks(), c.usScale, 1_000_000)
}

// scale falls back to ticks*perSecond/freq when the clock is slower than one
// unit per tick and the truncated divisor is zero.
func (c *Clic) scale(ticks uint64, divisor uint64, perSecond uint64) uint64 {
	if divisor != 0 {
		return ticks / divisor
	}
	hi, lo := bits.Mul64(ticks, perSecond)
	if hi >= uint64(c.freq) {
		return math.MaxUint64
	}
	q, _ := bits.Div64(hi, lo, uint64(c.freq))
	return q
}

// SetTimeCmp arms the timer interrupt delay ticks from now. The read of mtime
// and the write of mtimecmp are not atomic: callers that can be preempted by
// another user of SetTimeCmp have to mask interrupts around it.
func (c *Clic) SetTimeCmp(delay uint64) {
	c.regs.MTimeCmp.Set(c.Ticks() + delay)
}

// TimeCmp reads back mtimecmp.
func (c *Clic) TimeCmp() uint64 {
	return c.regs.MTimeCmp.Get()
}

// TicksFor converts d to ticks, rounding down and saturating.
func (c *Clic) TicksFor(d time.Duration) uint64 {
	if d <= 0 {
		return 0
	}
	hi, lo := bits.Mul64(uint64(d), uint64(c.freq))
	if hi >= uint64(time.Second) {
		return math.MaxUint64
	}
	q, _ := bits.Div64(hi, lo, uint64(time.Second))
	return q
}

// SetTimeout arms the timer interrupt d from now.
func (c *Clic) SetTimeout(d time.Duration) {
	c.SetTimeCmp(c.TicksFor(d))
}
