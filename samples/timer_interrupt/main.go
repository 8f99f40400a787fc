//go:build tinygo && riscv

package main

import (
	"runtime/volatile"
	"time"

	"bl602/src/hardware/bl602"
	"bl602/src/hardware/bl602/clock"
	"bl602/src/hardware/clic"
	"bl602/src/lib/trap"
	"bl602/src/lib/trust"
)

const period = 500 * time.Millisecond

var timebase *clic.Clic

//bumped from the trap handler, so read it volatile
var fired volatile.Register32

func main() {
	//interrupts are masked and every line is off until this returns
	trap.Setup()

	clocks := clock.New(160_000_000).WithRTC(32_768)
	var ok bool
	timebase, ok = clic.TryNew(clocks, clic.Hart0())
	if !ok {
		trust.Fatalf(1, "rtc is off, no time base for the machine timer")
	}
	if err := trap.Default.Register(bl602.MachineTimer, machineTimer); err != nil {
		trust.Fatalf(1, "%v", err)
	}

	timebase.SetTimeout(period)
	clic.Hart0().EnableInterrupt(bl602.MachineTimer)

	last := fired.Get()
	for {
		if n := fired.Get(); n != last {
			last = n
			trust.Infof("tick %d at %d ms", n, timebase.TimeMs())
		}
	}
}

func machineTimer(frame *trap.Frame) {
	fired.Set(fired.Get() + 1)
	//writing mtimecmp is what lowers the line
	timebase.SetTimeout(period)
}
