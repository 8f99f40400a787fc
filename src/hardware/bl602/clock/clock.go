// Package clock is the small slice of the BL602 clock configuration the
// interrupt core depends on: the system clock and the rtc clock that drives
// the mtime counter.
package clock

type Hertz uint32

// Kilohertz truncates to whole kilohertz.
func (h Hertz) Kilohertz() uint32 {
	return uint32(h) / 1_000
}

// Megahertz truncates to whole megahertz.
func (h Hertz) Megahertz() uint32 {
	return uint32(h) / 1_000_000
}

// Clocks is a frozen clock configuration.
type Clocks struct {
	sysclk Hertz
	rtc    Hertz
}

func New(sysclk Hertz) Clocks {
	return Clocks{sysclk: sysclk}
}

// WithRTC returns a copy of c with the rtc clock running at f. Zero turns the
// rtc off.
func (c Clocks) WithRTC(f Hertz) Clocks {
	c.rtc = f
	return c
}

func (c Clocks) SysClk() Hertz {
	return c.sysclk
}

// RTCClk reports the rtc frequency and whether the rtc is enabled at all.
func (c Clocks) RTCClk() (Hertz, bool) {
	return c.rtc, c.rtc != 0
}
